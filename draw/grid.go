package draw

// Grid lays a text grid over a pixmap so panels can address characters
// and separator rules by column and row instead of raw pixel math.
type Grid struct {
	pm   *Pixmap
	Font *Font
	XOff int
	YOff int
	Spc  int // extra pixels between rows
	CW   int // cell width
	CH   int // cell height including spacing
	Cols int
	Rows int
}

// NewGrid computes a grid descriptor. Negative cols or rows mean
// "as many as fit the pixmap".
func NewGrid(pm *Pixmap, xoff, yoff, cols, rows int, font *Font, spc int) Grid {
	g := Grid{
		pm:   pm,
		Font: font,
		XOff: xoff,
		YOff: yoff,
		Spc:  spc,
		CW:   font.Width,
		CH:   font.Height + spc,
	}
	if cols < 0 {
		g.Cols = (pm.Width - xoff) / g.CW
	} else {
		g.Cols = cols
	}
	if rows < 0 {
		g.Rows = (pm.Height - yoff + spc) / g.CH
	} else {
		g.Rows = rows
	}
	return g
}

// CellX returns the pixel x of a grid column.
func (g *Grid) CellX(col int) int { return col*g.CW + g.XOff }

// CellY returns the pixel y of a grid row.
func (g *Grid) CellY(row int) int { return row*g.CH + g.YOff }

// Char draws a character at grid coordinates.
func (g *Grid) Char(col, row int, c byte, fg, bg Color) {
	g.pm.Char(g.CellX(col), g.CellY(row), c, g.Font, fg, bg)
}

// Text draws a string starting at grid coordinates.
func (g *Grid) Text(col, row int, s string, fg, bg Color) {
	for i := 0; i < len(s); i++ {
		g.Char(col+i, row, s[i], fg, bg)
	}
}

// HLine draws a horizontal rule spanning w columns, placed in the
// middle of the row spacing above the given row.
func (g *Grid) HLine(col, row, w int, c Color) {
	if w == 0 {
		return
	}
	x := col * g.CW
	y := 0
	if row > 0 {
		y = row*g.CH - (g.Spc+1)/2
	}
	g.pm.HLine(x+g.XOff, y+g.YOff, w*g.CW, c)
}

// VLine draws a vertical rule spanning h rows, centered in the given
// column.
func (g *Grid) VLine(col, row, h int, c Color) {
	if h == 0 {
		return
	}
	x := col*g.CW + (g.CW+1)/2
	hadj := 0
	if row+h < g.Rows {
		hadj += g.Spc/2 + 1
	}
	y := 0
	if row > 0 {
		y = row*g.CH - (g.Spc+1)/2
		hadj += (g.Spc + 1) / 2
	}
	g.pm.VLine(x+g.XOff, y+g.YOff, h*g.CH-g.Spc+hadj, c)
}
