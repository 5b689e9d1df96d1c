package draw

import "log"

// Font is an immutable fixed-cell bitmap font. Each glyph occupies
// Height rows of ceil(Width/8) bytes, most significant bit first.
// Glyphs are indexed by the low 7 bits of the character code.
type Font struct {
	Width  int
	Height int
	Bits   []byte
}

// RowBytes returns the byte width of one glyph row, including the
// padding byte when Width is not a multiple of 8.
func (f *Font) RowBytes() int {
	return (f.Width + 7) / 8
}

// Glyph returns the bitmap rows for a character code.
func (f *Font) Glyph(c byte) []byte {
	n := f.Height * f.RowBytes()
	off := int(c&0x7f) * n
	if off+n > len(f.Bits) {
		return f.Bits[:n]
	}
	return f.Bits[off : off+n]
}

// Scale builds a new font with every glyph pixel repeated sx times
// horizontally and sy times vertically.
func (f *Font) Scale(sx, sy int) *Font {
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	nf := &Font{Width: f.Width * sx, Height: f.Height * sy}
	srcRB := f.RowBytes()
	dstRB := nf.RowBytes()
	nf.Bits = make([]byte, 128*nf.Height*dstRB)
	for c := 0; c < 128; c++ {
		src := f.Bits[c*f.Height*srcRB:]
		dst := nf.Bits[c*nf.Height*dstRB:]
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				if src[y*srcRB+x/8]&(0x80>>(x%8)) == 0 {
					continue
				}
				for dy := 0; dy < sy; dy++ {
					for dx := 0; dx < sx; dx++ {
						bx := x*sx + dx
						dst[(y*sy+dy)*dstRB+bx/8] |= 0x80 >> (bx % 8)
					}
				}
			}
		}
	}
	return nf
}

// Char draws one character as a full opaque cell: set bits in the
// glyph become fg, clear bits become bg. Panels rely on the opaque
// overwrite to redraw values in place without clearing first.
// A cell that does not fit inside the pixmap is rejected whole.
func (p *Pixmap) Char(x, y int, c byte, font *Font, fg, bg Color) {
	if font == nil {
		log.Printf("draw: nil font at (%d,%d)", x, y)
		return
	}
	if x < 0 || y < 0 || x+font.Width > p.Width || y+font.Height > p.Height {
		log.Printf("draw: char %q at (%d,%d)-(%d,%d) outside %dx%d",
			c, x, y, x+font.Width-1, y+font.Height-1, p.Width, p.Height)
		return
	}
	g := font.Glyph(c)
	rb := font.RowBytes()
	for j := 0; j < font.Height; j++ {
		row := g[j*rb:]
		for i := 0; i < font.Width; i++ {
			if row[i/8]&(0x80>>(i%8)) != 0 {
				p.Pixel(x+i, y+j, fg)
			} else {
				p.Pixel(x+i, y+j, bg)
			}
		}
	}
}

// String draws a string left to right starting at x.
func (p *Pixmap) String(x, y int, s string, font *Font, fg, bg Color) {
	for i := 0; i < len(s); i++ {
		p.Char(x, y, s[i], font, fg, bg)
		x += font.Width
	}
}
