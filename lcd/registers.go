package lcd

import (
	"geekstat/draw"
	"geekstat/emu"
)

// Register panel layouts:
//
//	Z80 using the 12x16 font (20 columns):
//
//	  01234567890123456789
//	0 AF xxxx |  BC xxxx
//	1 DE xxxx |  HL xxxx
//	2 AF'xxxx |  BC'xxxx
//	3 DE'xxxx |  HL'xxxx
//	4 IX xxxx |  IY xxxx
//	5 SP xxxx |  PC xxxx
//	6 F SZHPNC IF 12 IR xxxx
//
//	8080 using the 12x24 font (20 columns):
//
//	  01234567890123456789
//	0 AF xxxx |  BC xxxx
//	1 DE xxxx |  HL xxxx
//	2 SP xxxx |  PC xxxx
//	3 F SZHPC    IF 1

type regKind uint8

const (
	regByte    regKind = iota // two hex digits from *b
	regWord                   // four hex digits from *w
	regFlag                   // condition flag letter, colored by F
	regIntr                   // interrupt flag digit, colored by IFF
	regRefresh                // Z80 R register composed from R7 and R
)

// regField places one register value or flag letter on the grid. The
// x column is the rightmost hex digit; labels sit left of the value.
type regField struct {
	x, y  int
	kind  regKind
	label string
	b     *byte
	w     *uint16
	c     byte
	mask  byte
}

func z80Fields(m *emu.Machine) []regField {
	return []regField{
		{x: 4, y: 0, kind: regByte, label: "AF", b: &m.A},
		{x: 6, y: 0, kind: regByte, b: &m.F},
		{x: 13, y: 0, kind: regByte, label: "BC", b: &m.B},
		{x: 15, y: 0, kind: regByte, b: &m.C},
		{x: 4, y: 1, kind: regByte, label: "DE", b: &m.D},
		{x: 6, y: 1, kind: regByte, b: &m.E},
		{x: 13, y: 1, kind: regByte, label: "HL", b: &m.H},
		{x: 15, y: 1, kind: regByte, b: &m.L},
		{x: 4, y: 2, kind: regByte, label: "AF'", b: &m.AltA},
		{x: 6, y: 2, kind: regByte, b: &m.AltF},
		{x: 13, y: 2, kind: regByte, label: "BC'", b: &m.AltB},
		{x: 15, y: 2, kind: regByte, b: &m.AltC},
		{x: 4, y: 3, kind: regByte, label: "DE'", b: &m.AltD},
		{x: 6, y: 3, kind: regByte, b: &m.AltE},
		{x: 13, y: 3, kind: regByte, label: "HL'", b: &m.AltH},
		{x: 15, y: 3, kind: regByte, b: &m.AltL},
		{x: 6, y: 4, kind: regWord, label: "IX", w: &m.IX},
		{x: 15, y: 4, kind: regWord, label: "IY", w: &m.IY},
		{x: 6, y: 5, kind: regWord, label: "SP", w: &m.SP},
		{x: 15, y: 5, kind: regWord, label: "PC", w: &m.PC},
		{x: 2, y: 6, kind: regFlag, c: 'S', mask: emu.SFlag},
		{x: 3, y: 6, kind: regFlag, c: 'Z', mask: emu.ZFlag},
		{x: 4, y: 6, kind: regFlag, label: "F", c: 'H', mask: emu.HFlag},
		{x: 5, y: 6, kind: regFlag, c: 'P', mask: emu.PFlag},
		{x: 6, y: 6, kind: regFlag, c: 'N', mask: emu.NFlag},
		{x: 7, y: 6, kind: regFlag, c: 'C', mask: emu.CFlag},
		{x: 11, y: 6, kind: regIntr, c: '1', mask: 1},
		{x: 12, y: 6, kind: regIntr, label: "IF", c: '2', mask: 2},
		{x: 17, y: 6, kind: regByte, label: "IR", b: &m.I},
		{x: 19, y: 6, kind: regRefresh},
	}
}

func i8080Fields(m *emu.Machine) []regField {
	return []regField{
		{x: 4, y: 0, kind: regByte, label: "AF", b: &m.A},
		{x: 6, y: 0, kind: regByte, b: &m.F},
		{x: 13, y: 0, kind: regByte, label: "BC", b: &m.B},
		{x: 15, y: 0, kind: regByte, b: &m.C},
		{x: 4, y: 1, kind: regByte, label: "DE", b: &m.D},
		{x: 6, y: 1, kind: regByte, b: &m.E},
		{x: 13, y: 1, kind: regByte, label: "HL", b: &m.H},
		{x: 15, y: 1, kind: regByte, b: &m.L},
		{x: 6, y: 2, kind: regWord, label: "SP", w: &m.SP},
		{x: 15, y: 2, kind: regWord, label: "PC", w: &m.PC},
		{x: 2, y: 3, kind: regFlag, c: 'S', mask: emu.SFlag},
		{x: 3, y: 3, kind: regFlag, c: 'Z', mask: emu.ZFlag},
		{x: 4, y: 3, kind: regFlag, label: "F", c: 'H', mask: emu.HFlag},
		{x: 5, y: 3, kind: regFlag, c: 'P', mask: emu.PFlag},
		{x: 6, y: 3, kind: regFlag, c: 'C', mask: emu.CFlag},
		{x: 13, y: 3, kind: regIntr, label: "IF", c: '1', mask: 3},
	}
}

type registersPanel struct {
	e  *Engine
	ov *overlay

	cpu    emu.CPU
	inited bool
	grid   draw.Grid
	fields []regField
}

func (p *registersPanel) Render(f *draw.Pixmap, first bool) {
	e := p.e

	// a CPU switch forces a static redraw
	if cpu := e.m.CPU(); !p.inited || cpu != p.cpu {
		p.cpu = cpu
		p.inited = true
		first = true
	}

	if first {
		f.Clear(e.pal.DkBlue)

		if p.cpu == emu.I8080 {
			p.grid = draw.NewGrid(f, 0, 0, -1, 4, draw.Font12x24, 2)
			p.fields = i8080Fields(e.m)
			p.grid.VLine(8, 0, 4, e.pal.DkYellow)
			for i := 1; i < 4; i++ {
				p.grid.HLine(0, i, p.grid.Cols, e.pal.DkYellow)
			}
		} else {
			p.grid = draw.NewGrid(f, 0, 0, -1, 7, draw.Font12x16, 1)
			p.fields = z80Fields(e.m)
			p.grid.VLine(8, 0, 6, e.pal.DkYellow)
			for i := 1; i < 7; i++ {
				p.grid.HLine(0, i, p.grid.Cols, e.pal.DkYellow)
			}
		}

		for i := range p.fields {
			r := &p.fields[i]
			if r.label == "" {
				continue
			}
			x := r.x - 4
			if r.kind == regWord {
				x = r.x - 6
			}
			if r.kind == regIntr {
				x++
			}
			p.grid.Text(x, r.y, r.label, e.pal.White, e.pal.DkBlue)
		}
	} else {
		for i := range p.fields {
			r := &p.fields[i]
			var w uint16
			var j int
			switch r.kind {
			case regByte:
				w = uint16(*r.b)
				j = 2
			case regWord:
				w = *r.w
				j = 4
			case regFlag:
				fg := e.pal.Red
				if e.m.F&r.mask != 0 {
					fg = e.pal.Green
				}
				p.grid.Char(r.x, r.y, r.c, fg, e.pal.DkBlue)
				continue
			case regIntr:
				fg := e.pal.Red
				if e.m.IFF&r.mask == r.mask {
					fg = e.pal.Green
				}
				p.grid.Char(r.x, r.y, r.c, fg, e.pal.DkBlue)
				continue
			case regRefresh:
				w = uint16(e.m.R7&0x80 | e.m.R&0x7f)
				j = 2
			}
			x := r.x
			for ; j > 0; j-- {
				c := byte(w & 0xf)
				if c < 10 {
					c += '0'
				} else {
					c += 'A' - 10
				}
				p.grid.Char(x, r.y, c, e.pal.Green, e.pal.DkBlue)
				x--
				w >>= 4
			}
		}
	}

	p.ov.draw(f, first)
}
