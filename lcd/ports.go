package lcd

import (
	"geekstat/draw"
	"geekstat/emu"
)

// Ports panel: a 32x8 matrix of split indicators, one per I/O port.
// The top half lights green for a read, the bottom half red for a
// write, showing accesses since the previous frame.
//
//	00 88888888888888888888888888888888
//	20 88888888888888888888888888888888
//	...
//	E0 88888888888888888888888888888888

const (
	ioXOff  = 0
	ioYOff  = 0
	ioLedW  = 6
	ioLedXS = 1
	ioLedGW = ioLedW + ioLedXS
	ioLedH  = 7
	ioLedYS = 1
	ioLedGH = 2*ioLedH + ioLedYS
)

type portsPanel struct {
	e  *Engine
	ov *overlay
}

func (p *portsPanel) Render(f *draw.Pixmap, first bool) {
	e := p.e
	font := draw.Font6x8
	lblW := 2*font.Width + 1

	if first {
		f.Clear(e.pal.DkBlue)

		for j := 0; j < 8; j++ {
			f.Char(ioXOff, j*ioLedGH+ioYOff, "02468ACE"[j],
				font, e.pal.White, e.pal.DkBlue)
			f.Char(font.Width+ioXOff, j*ioLedGH+ioYOff, '0',
				font, e.pal.White, e.pal.DkBlue)
			if j > 0 {
				f.HLine(lblW+ioXOff, j*ioLedGH-ioLedYS+ioYOff,
					32*ioLedGW-ioLedXS, e.pal.DkYellow)
			}
		}
		for i := 1; i < 32; i++ {
			f.VLine(lblW+i*ioLedGW-ioLedXS+ioXOff, ioYOff,
				8*ioLedGH-ioLedYS, e.pal.DkYellow)
		}
	} else {
		for j := 0; j < 8; j++ {
			for i := 0; i < 32; i++ {
				flags := &e.m.Ports[j*32+i]
				col := e.pal.DkBlue
				if flags.In {
					col = e.pal.Green
				}
				for k := 0; k < ioLedH; k++ {
					f.HLine(lblW+i*ioLedGW+ioXOff,
						k+j*ioLedGH+ioYOff,
						ioLedW, col)
				}
				col = e.pal.DkBlue
				if flags.Out {
					col = e.pal.Red
				}
				for k := 0; k < ioLedH; k++ {
					f.HLine(lblW+i*ioLedGW+ioXOff,
						k+j*ioLedGH+ioLedH+ioYOff,
						ioLedW, col)
				}
			}
		}

		// accesses show for one frame
		for i := range e.m.Ports {
			e.m.Ports[i] = emu.PortFlag{}
		}
	}

	p.ov.draw(f, first)
}
