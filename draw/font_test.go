package draw

import "testing"

func TestFontSizes(t *testing.T) {
	if Font6x8.Width != 6 || Font6x8.Height != 8 {
		t.Fatalf("Font6x8 is %dx%d", Font6x8.Width, Font6x8.Height)
	}
	if Font12x16.Width != 12 || Font12x16.Height != 16 {
		t.Fatalf("Font12x16 is %dx%d", Font12x16.Width, Font12x16.Height)
	}
	if Font12x24.Width != 12 || Font12x24.Height != 24 {
		t.Fatalf("Font12x24 is %dx%d", Font12x24.Width, Font12x24.Height)
	}
}

func TestGlyphSpacing(t *testing.T) {
	// column 5 and row 7 are spacing and must stay blank in every glyph
	for c := 0x20; c < 0x80; c++ {
		g := Font6x8.Glyph(byte(c))
		for j := 0; j < 8; j++ {
			if g[j]&(0x80>>5) != 0 {
				t.Fatalf("glyph %#x row %d has set spacing column", c, j)
			}
		}
		if g[7] != 0 {
			t.Fatalf("glyph %#x has set spacing row: %#x", c, g[7])
		}
	}
}

func TestGlyphDash(t *testing.T) {
	// '-' is a single horizontal stroke on row 3
	g := Font6x8.Glyph('-')
	for j := 0; j < 8; j++ {
		if j == 3 {
			if g[j] != 0xf8 {
				t.Fatalf("dash row %d=%#x, want 0xf8", j, g[j])
			}
		} else if g[j] != 0 {
			t.Fatalf("dash row %d=%#x, want 0", j, g[j])
		}
	}
}

func TestScaleMatchesBase(t *testing.T) {
	g := Font6x8.Glyph('H')
	s := Font12x16.Glyph('H')
	rb := Font12x16.RowBytes()
	for y := 0; y < 8; y++ {
		for x := 0; x < 6; x++ {
			base := g[y]&(0x80>>x) != 0
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					bx := x*2 + dx
					got := s[(y*2+dy)*rb+bx/8]&(0x80>>(bx%8)) != 0
					if got != base {
						t.Fatalf("scaled pixel (%d,%d)=%v, base (%d,%d)=%v",
							bx, y*2+dy, got, x, y, base)
					}
				}
			}
		}
	}
}

func TestCharOpaqueCell(t *testing.T) {
	p := NewPixmap(12, 10, Depth16)
	p.Clear(0x1111)
	p.Char(2, 1, ' ', Font6x8, 0xffff, 0x2222)

	// every pixel of the cell becomes bg, surroundings keep the fill
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			want := Color(0x1111)
			if x >= 2 && x < 8 && y >= 1 && y < 9 {
				want = 0x2222
			}
			if got := p.At(x, y); got != want {
				t.Fatalf("At(%d,%d)=%#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestCharSetsForeground(t *testing.T) {
	p := NewPixmap(6, 8, Depth16)
	p.Char(0, 0, '!', Font6x8, 0xffff, 0)

	// '!' has its stroke in column 2
	if got := p.At(2, 1); got != 0xffff {
		t.Fatalf("stroke pixel=%#x, want white", got)
	}
	if got := p.At(0, 1); got != 0 {
		t.Fatalf("blank pixel=%#x, want black", got)
	}
}

func TestCharRejectedWhole(t *testing.T) {
	p := NewPixmap(10, 10, Depth16)
	p.Char(5, 0, 'X', Font6x8, 0xffff, 0xffff) // right edge past width
	p.Char(0, 3, 'X', Font6x8, 0xffff, 0xffff) // bottom past height
	for _, b := range p.Bits {
		if b != 0 {
			t.Fatal("clipped char was partially drawn")
		}
	}
}

func TestCharCornerFits(t *testing.T) {
	dot := &Font{Width: 1, Height: 1, Bits: []byte{0x80}}

	p := NewPixmap(10, 10, Depth16)
	p.Char(9, 9, 0, dot, 0xffff, 0)
	if got := p.At(9, 9); got != 0xffff {
		t.Fatalf("corner pixel=%#x, want white", got)
	}

	// one past the edge is a no-op
	p = NewPixmap(10, 10, Depth16)
	p.Char(10, 9, 0, dot, 0xffff, 0xffff)
	for _, b := range p.Bits {
		if b != 0 {
			t.Fatal("out-of-bounds char was drawn")
		}
	}
}

func TestStringAdvance(t *testing.T) {
	p := NewPixmap(18, 8, Depth16)
	p.String(0, 0, "AB", Font6x8, 0xffff, 0x1111)
	// column 5 of every glyph cell is spacing, so x=11 is background
	// of the second cell no matter the glyph
	if got := p.At(11, 0); got != 0x1111 {
		t.Fatalf("second cell bg=%#x, want 0x1111", got)
	}
	if got := p.At(12, 0); got != 0 {
		t.Fatalf("cell past string=%#x, want untouched", got)
	}
}
