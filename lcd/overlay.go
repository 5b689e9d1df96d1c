package lcd

import "geekstat/draw"

// overlay is the info strip at the bottom of the status panels:
//
//	xx.xx øC  o  xxx.xx MHz
//
// Static labels are drawn once, the temperature and frequency values
// once per second, the activity LED every frame.
type overlay struct {
	e       *Engine
	lastUpd uint32
}

func (o *overlay) draw(pm *draw.Pixmap, first bool) {
	e := o.e
	font := draw.Font12x16
	w := font.Width
	n := pm.Width / w
	x := (pm.Width - n*w) / 2
	y := pm.Height - font.Height
	ly := y + (font.Height-10)/2

	if first {
		pm.Char(2*w+x, y, '.', font, e.pal.Orange, e.pal.DkBlue)
		pm.Char(5*w+x, y, 0x7f, font, e.pal.Orange, e.pal.DkBlue)
		pm.Char(6*w+x, y, 'C', font, e.pal.Orange, e.pal.DkBlue)

		pm.Char((n-7)*w+x, y, '.', font, e.pal.Orange, e.pal.DkBlue)
		pm.Char((n-3)*w+x, y, 'M', font, e.pal.Orange, e.pal.DkBlue)
		pm.Char((n-2)*w+x, y, 'H', font, e.pal.Orange, e.pal.DkBlue)
		pm.Char((n-1)*w+x, y, 'z', font, e.pal.Orange, e.pal.DkBlue)

		pm.LEDBracket(8*w+x+1, ly, e.pal.Gray)

		// force a value update on the next frame
		o.lastUpd = e.frames.Load() - e.refresh + 1
		return
	}

	if e.frames.Load()-o.lastUpd >= e.refresh {
		o.lastUpd = e.frames.Load()

		var tc float32
		if e.m.Temp != nil {
			tc = e.m.Temp()
		}
		temp := int(tc*100 + 0.5)
		for i := 0; i < 5; i++ {
			pm.Char((4-i)*w+x, y, byte('0'+temp%10), font,
				e.pal.Orange, e.pal.DkBlue)
			if i < 4 {
				temp /= 10
			}
			if i == 1 {
				i++ // skip decimal point
			}
		}

		var hz uint64
		if e.m.Freq != nil {
			hz = e.m.Freq()
		}
		f := int(hz / 10000)
		digit := 10000
		onlyz := true
		for i := 0; i < 6; i++ {
			c := byte('0')
			for f > digit {
				f -= digit
				c++
			}
			if onlyz && i < 2 && c == '0' {
				c = ' '
			} else {
				onlyz = false
			}
			pm.Char((n-10+i)*w+x, y, c, font,
				e.pal.Orange, e.pal.DkBlue)
			if i < 5 {
				digit /= 10
			}
			if i == 2 {
				i++ // skip decimal point
			}
		}
	}

	pm.LED(8*w+x+1, ly, draw.Color(e.ch.LEDColor()))
}
