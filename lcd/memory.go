package lcd

import (
	"encoding/binary"

	"geekstat/draw"
)

// Memory panel: the 64K and 48K banks as one 128x128 and one 96x128
// pixel block, four consecutive bytes hashed into one pixel so that
// changing memory shimmers. Runs without the info overlay, the hash
// loop alone fills the frame time.

const (
	memXOff = 3
	memYOff = 0
	memBrdr = 3 // free space around and between the blocks
)

// knuthMul is 2^32 divided by the golden ratio.
const knuthMul = 2654435769

type memoryPanel struct {
	e *Engine
}

func (p *memoryPanel) Render(f *draw.Pixmap, first bool) {
	e := p.e

	if first {
		f.Clear(e.pal.DkBlue)

		w := 128 + 96 + 4*memBrdr - 1
		h := 128 + 2*memBrdr
		f.HLine(memXOff, memYOff, w, e.pal.Green)
		f.HLine(memXOff, memYOff+h-1, w, e.pal.Green)
		f.VLine(memXOff, memYOff, h, e.pal.Green)
		f.VLine(memXOff+128+2*memBrdr-1, memYOff, h, e.pal.Green)
		f.VLine(memXOff+128+96+4*memBrdr-2, memYOff, h, e.pal.Green)
		return
	}

	shift := uint(16)
	if f.Depth == draw.Depth12 {
		shift = 20
	}

	i := 0
	for x := memXOff + memBrdr; x < memXOff+memBrdr+128; x++ {
		for y := memYOff + memBrdr; y < memYOff+memBrdr+128; y++ {
			w := binary.LittleEndian.Uint32(e.m.Bank0[i:])
			f.Pixel(x, y, draw.Color(w*knuthMul>>shift))
			i += 4
		}
	}

	i = 0
	x0 := memXOff + 3*memBrdr - 1 + 128
	for x := x0; x < x0+96; x++ {
		for y := memYOff + memBrdr; y < memYOff+memBrdr+128; y++ {
			w := binary.LittleEndian.Uint32(e.m.Bank1[i:])
			f.Pixel(x, y, draw.Color(w*knuthMul>>shift))
			i += 4
		}
	}
}
