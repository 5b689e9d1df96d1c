package draw

import "testing"

func TestStride(t *testing.T) {
	if got := Stride(240, Depth16); got != 480 {
		t.Fatalf("stride=%d, want 480", got)
	}
	if got := Stride(240, Depth12); got != 360 {
		t.Fatalf("stride=%d, want 360", got)
	}
	// odd widths round up to a full byte triple
	if got := Stride(135, Depth12); got != 204 {
		t.Fatalf("stride=%d, want 204", got)
	}
}

func TestNewPixmapSize(t *testing.T) {
	p := NewPixmap(240, 135, Depth16)
	if len(p.Bits) != 240*135*2 {
		t.Fatalf("len(Bits)=%d, want %d", len(p.Bits), 240*135*2)
	}
	p = NewPixmap(240, 135, Depth12)
	if len(p.Bits) != 360*135 {
		t.Fatalf("len(Bits)=%d, want %d", len(p.Bits), 360*135)
	}
}

func TestPixelRoundTrip16(t *testing.T) {
	p := NewPixmap(8, 4, Depth16)
	p.Pixel(3, 2, 0xbeef)
	if got := p.At(3, 2); got != 0xbeef {
		t.Fatalf("At=%#x, want 0xbeef", got)
	}
	if p.Bits[2*p.Stride+3*2] != 0xbe || p.Bits[2*p.Stride+3*2+1] != 0xef {
		t.Fatalf("big endian bytes wrong: % x", p.Bits[2*p.Stride+6:2*p.Stride+8])
	}
}

func TestPixelRoundTrip12(t *testing.T) {
	p := NewPixmap(8, 4, Depth12)

	// even and odd pixels share a byte triple and must not clobber
	// each other
	p.Pixel(4, 1, 0xabc)
	p.Pixel(5, 1, 0xdef)
	if got := p.At(4, 1); got != 0xabc {
		t.Fatalf("even At=%#x, want 0xabc", got)
	}
	if got := p.At(5, 1); got != 0xdef {
		t.Fatalf("odd At=%#x, want 0xdef", got)
	}

	b := p.Bits[p.Stride+6:]
	if b[0] != 0xab || b[1] != 0xcd || b[2] != 0xef {
		t.Fatalf("packed triple=% x, want ab cd ef", b[:3])
	}
}

func TestPixelOutOfBoundsIgnored(t *testing.T) {
	p := NewPixmap(4, 4, Depth16)
	p.Pixel(-1, 0, 0xffff)
	p.Pixel(4, 0, 0xffff)
	p.Pixel(0, 4, 0xffff)
	for _, b := range p.Bits {
		if b != 0 {
			t.Fatal("out of bounds write reached the buffer")
		}
	}
}

func TestClear(t *testing.T) {
	for _, depth := range []uint8{Depth16, Depth12} {
		p := NewPixmap(7, 3, depth)
		p.Clear(0x123)
		for y := 0; y < p.Height; y++ {
			for x := 0; x < p.Width; x++ {
				if got := p.At(x, y); got != 0x123 {
					t.Fatalf("depth %d: At(%d,%d)=%#x, want 0x123",
						depth, x, y, got)
				}
			}
		}
	}
}

func TestLinesRejectedWhole(t *testing.T) {
	p := NewPixmap(8, 8, Depth16)
	p.HLine(4, 0, 5, 0xffff) // reaches x=8
	p.VLine(0, 4, 5, 0xffff) // reaches y=8
	for _, b := range p.Bits {
		if b != 0 {
			t.Fatal("clipped line was partially drawn")
		}
	}
	p.HLine(0, 7, 8, 0xffff)
	if p.At(7, 7) != 0xffff {
		t.Fatal("in-bounds hline missing")
	}
}

func TestRGBPackers(t *testing.T) {
	if got := RGB565(0xff, 0xff, 0xff); got != 0xffff {
		t.Fatalf("RGB565 white=%#x", got)
	}
	if got := RGB565(0xff, 0, 0); got != 0xf800 {
		t.Fatalf("RGB565 red=%#x", got)
	}
	if got := RGB444(0xff, 0xff, 0xff); got != 0xfff {
		t.Fatalf("RGB444 white=%#x", got)
	}
	if got := RGB444(0, 0xff, 0); got != 0x0f0 {
		t.Fatalf("RGB444 green=%#x", got)
	}
}
