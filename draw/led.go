package draw

// LEDBracket draws the static 10x10 circular ring around an indicator.
func (p *Pixmap) LEDBracket(x, y int, c Color) {
	p.HLine(x+2, y, 6, c)
	p.Pixel(x+1, y+1, c)
	p.Pixel(x+8, y+1, c)
	p.VLine(x, y+2, 6, c)
	p.VLine(x+9, y+2, 6, c)
	p.Pixel(x+1, y+8, c)
	p.Pixel(x+8, y+8, c)
	p.HLine(x+2, y+9, 6, c)
}

// LED fills the inside of a 10x10 bracket with the indicator color.
func (p *Pixmap) LED(x, y int, c Color) {
	for i := 1; i < 9; i++ {
		if i == 1 || i == 8 {
			p.HLine(x+2, y+i, 6, c)
		} else {
			p.HLine(x+1, y+i, 8, c)
		}
	}
}
