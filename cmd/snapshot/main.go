// Command snapshot renders one status panel into a PNG, for docs and
// for eyeballing layout changes without a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"

	"geekstat/draw"
	"geekstat/emu"
	"geekstat/hal"
	"geekstat/lcd"
)

func main() {
	var (
		panel = flag.String("panel", "registers", "Panel to render.")
		out   = flag.String("o", "panel.png", "Output file.")
		depth = flag.Int("depth", 16, "Color depth, 12 or 16.")
		seed  = flag.Int64("seed", 1, "Seed for the sample machine state.")
	)
	flag.Parse()

	p, ok := lcd.PanelByName(*panel)
	if !ok {
		fmt.Fprintf(os.Stderr, "snapshot: unknown panel %q\n", *panel)
		os.Exit(1)
	}

	d := uint8(draw.Depth16)
	if *depth == 12 {
		d = uint8(draw.Depth12)
	}

	m := sampleMachine(*seed)
	dev := hal.NewHeadlessDevice()
	eng := lcd.New(dev, m, lcd.Options{
		Width: 240, Height: 135, Depth: d, RefreshHz: 30,
	})

	frame := eng.RenderOnce(p)

	if err := writePNG(*out, frame); err != nil {
		fmt.Fprintln(os.Stderr, "snapshot:", err)
		os.Exit(1)
	}
}

// sampleMachine fills a machine with plausible mid-run state.
func sampleMachine(seed int64) *emu.Machine {
	rng := rand.New(rand.NewSource(seed))
	m := emu.NewMachine(4)

	m.A, m.F = 0x3e, 0x45
	m.B, m.C = 0x12, 0x34
	m.D, m.E = 0xab, 0xcd
	m.H, m.L = 0x40, 0x80
	m.IX, m.IY = 0xdead, 0xbeef
	m.SP, m.PC = 0xff00, 0x0100
	m.I, m.R = 0x3f, 0x55
	m.IFF = 3
	m.CPUState = 1
	m.CPUBus = emu.BusMemRead | emu.BusM1
	m.LedAddress = m.PC
	m.LedData = 0xc3
	m.Temp = func() float32 { return 36.75 }
	m.Freq = func() uint64 { return 4_000_000 }

	for i := range m.Bank0 {
		m.Bank0[i] = byte(rng.Intn(256))
	}
	for i := 0; i < 3; i++ {
		m.Drives[i] = emu.DriveStatus{
			Track:  uint8(rng.Intn(77)),
			Sector: uint8(1 + rng.Intn(26)),
			Addr:   uint16(rng.Intn(0x10000)),
			Write:  i == 1,
		}
	}
	for i := 0; i < 24; i++ {
		if rng.Intn(2) == 0 {
			m.PortIn(byte(rng.Intn(256)))
		} else {
			m.PortOut(byte(rng.Intn(256)))
		}
	}
	return m
}

func writePNG(path string, pm *draw.Pixmap) error {
	img := image.NewRGBA(image.Rect(0, 0, pm.Width, pm.Height))
	for y := 0; y < pm.Height; y++ {
		for x := 0; x < pm.Width; x++ {
			c := pm.At(x, y)
			var r, g, b uint8
			if pm.Depth == draw.Depth12 {
				r = uint8(c>>8) << 4
				g = uint8(c>>4) << 4
				b = uint8(c) << 4
			} else {
				r = uint8(c>>11) << 3
				g = uint8(c>>5&0x3f) << 2
				b = uint8(c&0x1f) << 3
			}
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
