package draw

// BannerLine is one line of framed banner text.
type BannerLine struct {
	Text  string
	Color Color
}

// Banner clears the pixmap and draws centered text lines inside a
// single-pixel frame. Used by splash screens.
func (p *Pixmap) Banner(lines []BannerLine, font *Font, frame Color) {
	p.Clear(0)
	p.HLine(0, 0, p.Width, frame)
	p.VLine(0, 0, p.Height, frame)
	p.VLine(p.Width-1, 0, p.Height, frame)
	p.HLine(0, p.Height-1, p.Width, frame)
	y0 := (p.Height - len(lines)*(font.Height+2)) / 2
	for i, l := range lines {
		x := (p.Width - len(l.Text)*font.Width) / 2
		p.String(x, y0+i*(font.Height+2), l.Text, font, l.Color, 0)
	}
}
