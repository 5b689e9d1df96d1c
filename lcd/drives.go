package lcd

import "geekstat/draw"

// Drives panel: one row per diskette drive showing the access LED and
// the last track, sector and DMA address.
//
//	  0123456789012345
//	0 A oTxx Sxx Axxxx
//	1 B oTxx Sxx Axxxx
//	2 C oTxx Sxx Axxxx
//	3 D oTxx Sxx Axxxx
//
// A drive clears ten seconds after its last access; a zero sector
// marks it idle.

const (
	drvXOff = 8
	drvYOff = 0
	drvSpc  = 1
)

type drivesPanel struct {
	e    *Engine
	ov   *overlay
	grid draw.Grid
}

func (p *drivesPanel) Render(f *draw.Pixmap, first bool) {
	e := p.e

	n := len(e.m.Drives)
	if n > 4 {
		n = 4
	}

	if first {
		f.Clear(e.pal.DkBlue)

		p.grid = draw.NewGrid(f, drvXOff, drvYOff, -1, 4,
			draw.Font12x24, drvSpc)
		g := &p.grid
		lfont := draw.Font12x16
		for i := 0; i < n; i++ {
			g.Char(0, i, byte('A'+i), e.pal.Cyan, e.pal.DkBlue)
			f.LEDBracket(g.CW+(2*g.CW-10)/2+g.XOff,
				i*g.CH+(g.CH-g.Spc-10)/2+g.YOff, e.pal.Gray)
			ly := i*g.CH + g.YOff + g.Font.Height - lfont.Height - 2
			f.Char(3*g.CW+g.XOff, ly, 'T', lfont, e.pal.Wheat, e.pal.DkBlue)
			f.Char(7*g.CW+g.XOff, ly, 'S', lfont, e.pal.Wheat, e.pal.DkBlue)
			f.Char(11*g.CW+g.XOff, ly, 'A', lfont, e.pal.Wheat, e.pal.DkBlue)
			if i > 0 {
				g.HLine(0, i, g.Cols, e.pal.DkYellow)
			}
		}
	} else {
		g := &p.grid
		frames := e.frames.Load()
		for i := 0; i < n; i++ {
			d := &e.m.Drives[i]

			// clear the drive ten seconds after last access
			clr := false
			if frames-d.LastAccess >= 10*e.refresh {
				d.Sector = 0
				clr = true
			}

			if d.Sector == 0 && !clr {
				continue
			}

			led := e.pal.Green
			if clr {
				led = e.pal.DkBlue
			} else if d.Write {
				led = e.pal.Red
			}
			f.LED(g.CW+(2*g.CW-10)/2+g.XOff,
				i*g.CH+(g.CH-g.Spc-10)/2+g.YOff, led)

			digits := [4]byte{
				'0' + d.Track/10, '0' + d.Track%10,
				'0' + d.Sector/10, '0' + d.Sector%10,
			}
			if clr {
				digits = [4]byte{' ', ' ', ' ', ' '}
			}
			g.Char(4, i, digits[0], e.pal.Yellow, e.pal.DkBlue)
			g.Char(5, i, digits[1], e.pal.Yellow, e.pal.DkBlue)
			g.Char(8, i, digits[2], e.pal.Yellow, e.pal.DkBlue)
			g.Char(9, i, digits[3], e.pal.Yellow, e.pal.DkBlue)

			w := d.Addr
			for j := 0; j < 4; j++ {
				c := byte(w & 0xf)
				if c < 10 {
					c += '0'
				} else {
					c += 'A' - 10
				}
				if clr {
					c = ' '
				}
				g.Char(15-j, i, c, e.pal.Yellow, e.pal.DkBlue)
				w >>= 4
			}
		}
	}

	p.ov.draw(f, first)
}
