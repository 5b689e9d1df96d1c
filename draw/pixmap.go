// Package draw provides the pixel buffer and the text/LED drawing
// primitives every status panel is built on.
package draw

import (
	"image/color"
	"log"
)

// Color is a packed pixel value in the pixmap's color depth
// (RGB 565 for depth 16, RGB 444 for depth 12).
type Color uint16

// Supported color depths.
const (
	Depth12 = 12 // two pixels packed into three bytes
	Depth16 = 16 // one pixel per two bytes, big endian
)

// Stride returns the row size in bytes for the given width and depth.
func Stride(width int, depth uint8) int {
	if depth == Depth12 {
		return (width + 1) / 2 * 3
	}
	return width * 2
}

// Pixmap is a fixed-size pixel buffer. The stride is derived from the
// width and depth once at creation and never changes.
type Pixmap struct {
	Bits   []byte
	Depth  uint8
	Width  int
	Height int
	Stride int
}

// NewPixmap allocates a pixmap of the given size and depth.
func NewPixmap(width, height int, depth uint8) *Pixmap {
	if depth != Depth12 && depth != Depth16 {
		depth = Depth16
	}
	stride := Stride(width, depth)
	return &Pixmap{
		Bits:   make([]byte, height*stride),
		Depth:  depth,
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// Pixel writes one pixel. Out-of-bounds coordinates are ignored.
func (p *Pixmap) Pixel(x, y int, c Color) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return
	}
	if p.Depth == Depth12 {
		b := p.Bits[x>>1*3+y*p.Stride:]
		if x&1 == 0 {
			b[0] = byte(c >> 4)
			b[1] = byte(c&0x0f)<<4 | b[1]&0x0f
		} else {
			b[1] = b[1]&0xf0 | byte(c>>8)&0x0f
			b[2] = byte(c)
		}
		return
	}
	b := p.Bits[x*2+y*p.Stride:]
	b[0] = byte(c >> 8)
	b[1] = byte(c)
}

// At reads one pixel back. Out-of-bounds coordinates return black.
func (p *Pixmap) At(x, y int) Color {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return 0
	}
	if p.Depth == Depth12 {
		b := p.Bits[x>>1*3+y*p.Stride:]
		if x&1 == 0 {
			return Color(b[0])<<4 | Color(b[1])>>4
		}
		return Color(b[1]&0x0f)<<8 | Color(b[2])
	}
	b := p.Bits[x*2+y*p.Stride:]
	return Color(b[0])<<8 | Color(b[1])
}

// Clear fills the whole pixmap with one color.
func (p *Pixmap) Clear(c Color) {
	row := p.Bits[:p.Stride]
	if p.Depth == Depth12 {
		var pair [3]byte
		pair[0] = byte(c >> 4)
		pair[1] = byte(c&0x0f)<<4 | byte(c>>8)&0x0f
		pair[2] = byte(c)
		for x := 0; x < p.Stride; x++ {
			row[x] = pair[x%3]
		}
	} else {
		for x := 0; x < p.Width; x++ {
			row[x*2] = byte(c >> 8)
			row[x*2+1] = byte(c)
		}
	}
	for y := 1; y < p.Height; y++ {
		copy(p.Bits[y*p.Stride:(y+1)*p.Stride], row)
	}
}

// HLine draws a horizontal line. Lines reaching outside the pixmap are
// rejected whole, like a misplaced glyph.
func (p *Pixmap) HLine(x, y, w int, c Color) {
	if x < 0 || y < 0 || w < 0 || x+w > p.Width || y >= p.Height {
		log.Printf("draw: hline (%d,%d)+%d outside %dx%d", x, y, w, p.Width, p.Height)
		return
	}
	for ; w > 0; w-- {
		p.Pixel(x, y, c)
		x++
	}
}

// VLine draws a vertical line.
func (p *Pixmap) VLine(x, y, h int, c Color) {
	if x < 0 || y < 0 || h < 0 || y+h > p.Height || x >= p.Width {
		log.Printf("draw: vline (%d,%d)+%d outside %dx%d", x, y, h, p.Width, p.Height)
		return
	}
	for ; h > 0; h-- {
		p.Pixel(x, y, c)
		y++
	}
}

// RGB565 packs an 8-bit RGB triple for depth 16 pixmaps.
func RGB565(r, g, b uint8) Color {
	return Color(r>>3)<<11 | Color(g>>2)<<5 | Color(b>>3)
}

// RGB444 packs an 8-bit RGB triple for depth 12 pixmaps.
func RGB444(r, g, b uint8) Color {
	return Color(r>>4)<<8 | Color(g>>4)<<4 | Color(b>>4)
}

// Size implements drivers.Displayer.
func (p *Pixmap) Size() (int16, int16) {
	return int16(p.Width), int16(p.Height)
}

// SetPixel implements drivers.Displayer so tinyfont and other
// tinygo.org/x/drivers consumers can draw straight into the pixmap.
func (p *Pixmap) SetPixel(x, y int16, c color.RGBA) {
	if p.Depth == Depth12 {
		p.Pixel(int(x), int(y), RGB444(c.R, c.G, c.B))
		return
	}
	p.Pixel(int(x), int(y), RGB565(c.R, c.G, c.B))
}

// Display implements drivers.Displayer. Presenting the pixmap is the
// scheduler's job, so this is a no-op.
func (p *Pixmap) Display() error { return nil }
