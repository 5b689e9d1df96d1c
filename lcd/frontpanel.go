package lcd

import (
	"geekstat/draw"
	"geekstat/emu"
)

// Classic front panel: three rows of 16 LEDs with two-letter labels.
//
//	P7 P6 P5 P4 P3 P2 P1 P0              IE RU WA HO
//	() () () () () () () ()              () () () ()
//	                  __
//	MR IP M1 OP HA ST WO IA  D7 D6 D5 D4 D3 D2 D1 D0
//	() () () () () () () ()  () () () () () () () ()
//
//	15 14 13 12 11 10 A9 A8  A7 A6 A5 A4 A3 A2 A1 A0
//	() () () () () () () ()  () () () () () () () ()
//
// The output port LEDs show the inverted latch, a cleared bit is a
// lit LED on the real hardware.

const (
	pXOff  = 6                 // panel x offset
	pYOff  = 6                 // panel y offset
	pLblW  = 2*6 - 1           // two label characters, less one spacing
	pLblS  = 2                 // label to LED vertical spacing
	pLedS  = 3                 // LED spacing
	pLedBS = 6                 // extra spacing between banks of 8
	pLedD  = 10                // LED diameter
	pLedXO = (pLblW - pLedD + 1) / 2
	pLedYO = 8 + pLblS         // label height plus spacing
	pLedHO = pLblW + pLedS     // horizontal offset to next LED
	pLedVO = 3 * 8             // vertical offset to next row
)

func ledX(x int) int { return pXOff + pLedXO + pLedBS*(x/8) + pLedHO*x }
func ledY(y int) int { return pYOff + pLedYO + pLedVO*y }

// panelLED is one LED with its label; b or w selects the source latch,
// inv is xored in before masking so active-low latches light *unset*
// bits.
type panelLED struct {
	x, y   int
	c1, c2 byte
	b      *byte
	w      *uint16
	inv    byte
	mask   uint16
}

func panelLEDs(m *emu.Machine) []panelLED {
	l := []panelLED{
		{ledX(12), ledY(0), 'I', 'E', &m.IFF, nil, 0, 0x01},
		{ledX(13), ledY(0), 'R', 'U', &m.CPUState, nil, 0, 0x01},
		{ledX(14), ledY(0), 'W', 'A', &m.LedWait, nil, 0, 0x01},
		{ledX(15), ledY(0), 'H', 'O', &m.BusRequest, nil, 0, 0x01},
	}
	for i := 0; i < 8; i++ {
		l = append(l, panelLED{
			ledX(i), ledY(0), 'P', byte('7' - i),
			&m.LedOutput, nil, 0xff, 0x80 >> i,
		})
	}
	busLbl := [8][2]byte{
		{'M', 'R'}, {'I', 'P'}, {'M', '1'}, {'O', 'P'},
		{'H', 'A'}, {'S', 'T'}, {'W', 'O'}, {'I', 'A'},
	}
	for i := 0; i < 8; i++ {
		l = append(l, panelLED{
			ledX(i), ledY(1), busLbl[i][0], busLbl[i][1],
			&m.CPUBus, nil, 0, 0x80 >> i,
		})
	}
	for i := 0; i < 8; i++ {
		l = append(l, panelLED{
			ledX(8 + i), ledY(1), 'D', byte('7' - i),
			&m.LedData, nil, 0, 0x80 >> i,
		})
	}
	addrLbl := [16][2]byte{
		{'1', '5'}, {'1', '4'}, {'1', '3'}, {'1', '2'},
		{'1', '1'}, {'1', '0'}, {'A', '9'}, {'A', '8'},
		{'A', '7'}, {'A', '6'}, {'A', '5'}, {'A', '4'},
		{'A', '3'}, {'A', '2'}, {'A', '1'}, {'A', '0'},
	}
	for i := 0; i < 16; i++ {
		l = append(l, panelLED{
			ledX(i), ledY(2), addrLbl[i][0], addrLbl[i][1],
			nil, &m.LedAddress, 0, 0x8000 >> i,
		})
	}
	return l
}

type frontPanel struct {
	e    *Engine
	ov   *overlay
	leds []panelLED
}

func (p *frontPanel) Render(f *draw.Pixmap, first bool) {
	e := p.e
	if p.leds == nil {
		p.leds = panelLEDs(e.m)
	}

	if first {
		f.Clear(e.pal.DkBlue)

		font := draw.Font6x8
		for i := range p.leds {
			l := &p.leds[i]
			f.Char(l.x-pLedXO, l.y-pLedYO, l.c1, font,
				e.pal.White, e.pal.DkBlue)
			f.Char(l.x-pLedXO+font.Width, l.y-pLedYO, l.c2, font,
				e.pal.White, e.pal.DkBlue)
			if l.c1 == 'W' && l.c2 == 'O' {
				// WO is active low, mark it with an overbar
				f.HLine(l.x-pLedXO, l.y-pLedYO-2, pLblW,
					e.pal.White)
			}
			f.LEDBracket(l.x, l.y, e.pal.Gray)
		}
	} else {
		for i := range p.leds {
			l := &p.leds[i]
			col := e.pal.DkRed
			if l.b != nil {
				if (*l.b^l.inv)&byte(l.mask) != 0 {
					col = e.pal.Red
				}
			} else if *l.w&l.mask != 0 {
				col = e.pal.Red
			}
			f.LED(l.x, l.y, col)
		}
	}

	p.ov.draw(f, first)
}
