package lcd

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"geekstat/draw"
	"geekstat/internal/buildinfo"
)

var _ drivers.Displayer = (*draw.Pixmap)(nil)

// Splash is a custom renderer showing a framed banner with a version
// footer. Show it with Engine.Custom while the machine boots. The
// first line is highlighted.
type Splash struct {
	Lines []string
}

func (s *Splash) Render(f *draw.Pixmap, first bool) {
	if !first {
		return
	}
	pal := draw.PaletteFor(f.Depth)
	lines := make([]draw.BannerLine, len(s.Lines))
	for i, t := range s.Lines {
		c := pal.White
		if i == 0 {
			c = pal.Cyan
		}
		lines[i] = draw.BannerLine{Text: t, Color: c}
	}
	f.Banner(lines, draw.Font12x16, pal.Green)

	// version tag, bottom left inside the frame
	fc := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	tinyfont.WriteLine(f, &tinyfont.Org01, 4, int16(f.Height-4),
		buildinfo.Short(), fc)
}
