package draw

// Palette maps the named panel colors to packed values for one depth.
type Palette struct {
	Black     Color
	Red       Color
	Green     Color
	Blue      Color
	Cyan      Color
	Magenta   Color
	Yellow    Color
	White     Color
	DkRed     Color
	DkGreen   Color
	DkBlue    Color
	DkCyan    Color
	DkMagenta Color
	DkYellow  Color
	Gray      Color
	Orange    Color
	Wheat     Color
}

// Pal565 is the palette for depth 16 pixmaps.
var Pal565 = Palette{
	Black:     0x0000,
	Red:       0xf800,
	Green:     0x07e0,
	Blue:      0x001f,
	Cyan:      0x7fff,
	Magenta:   0xf81f,
	Yellow:    0xffe0,
	White:     0xffff,
	DkRed:     0x8800,
	DkGreen:   0x0440,
	DkBlue:    0x0011,
	DkCyan:    0x0451,
	DkMagenta: 0x8811,
	DkYellow:  0x4c40,
	Gray:      0x8410,
	Orange:    0xfd20,
	Wheat:     0xf6f6,
}

// Pal444 is the palette for depth 12 pixmaps.
var Pal444 = Palette{
	Black:     0x0000,
	Red:       0x0f00,
	Green:     0x00f0,
	Blue:      0x000f,
	Cyan:      0x00ff,
	Magenta:   0x0f0f,
	Yellow:    0x0ff0,
	White:     0x0fff,
	DkRed:     0x0800,
	DkGreen:   0x0080,
	DkBlue:    0x0008,
	DkCyan:    0x0088,
	DkMagenta: 0x0808,
	DkYellow:  0x0880,
	Gray:      0x0888,
	Orange:    0x0fa0,
	Wheat:     0x0edb,
}

// PaletteFor returns the palette matching a pixmap depth.
func PaletteFor(depth uint8) Palette {
	if depth == Depth12 {
		return Pal444
	}
	return Pal565
}
