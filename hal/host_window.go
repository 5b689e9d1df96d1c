//go:build !tinygo && !periph

package hal

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"geekstat/draw"
	"geekstat/internal/buildinfo"
)

// WindowDevice shows the frame in a desktop window. Send snapshots the
// pixel buffer under a lock; the ebiten draw callback converts the
// snapshot to RGBA, honoring backlight and rotation.
type WindowDevice struct {
	mu        sync.Mutex
	shadow    *draw.Pixmap
	backlight uint8
	rotated   bool
	closed    bool
}

// NewWindowDevice returns a window device for the given frame geometry.
func NewWindowDevice(width, height int, depth uint8) *WindowDevice {
	return &WindowDevice{shadow: draw.NewPixmap(width, height, depth)}
}

func (d *WindowDevice) Init(backlight uint8) error {
	d.mu.Lock()
	d.backlight = backlight
	d.mu.Unlock()
	return nil
}

func (d *WindowDevice) Backlight(pct uint8) {
	d.mu.Lock()
	d.backlight = pct
	d.mu.Unlock()
}

func (d *WindowDevice) Rotation(rotated bool) {
	d.mu.Lock()
	d.rotated = rotated
	d.mu.Unlock()
}

func (d *WindowDevice) Send(pm *draw.Pixmap) {
	d.mu.Lock()
	copy(d.shadow.Bits, pm.Bits)
	d.mu.Unlock()
}

func (d *WindowDevice) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}

// RunWindow opens the window and blocks until it is closed or the
// device is shut down.
func RunWindow(d *WindowDevice, scale int) error {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle(buildinfo.Short())
	ebiten.SetWindowSize(d.shadow.Width*scale, d.shadow.Height*scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(&windowGame{dev: d})
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type windowGame struct {
	dev   *WindowDevice
	pix   []byte
	fbImg *ebiten.Image
}

func (g *windowGame) Update() error {
	g.dev.mu.Lock()
	closed := g.dev.closed
	g.dev.mu.Unlock()
	if closed {
		return ebiten.Termination
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	d := g.dev
	d.mu.Lock()
	pm := d.shadow
	w, h := pm.Width, pm.Height
	if g.pix == nil {
		g.pix = make([]byte, w*h*4)
		g.fbImg = ebiten.NewImage(w, h)
	}
	bl := uint32(d.backlight)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, gg, b := unpack(pm.At(x, y), pm.Depth)
			dx, dy := x, y
			if d.rotated {
				dx, dy = w-1-x, h-1-y
			}
			i := (dy*w + dx) * 4
			g.pix[i+0] = uint8(uint32(r) * bl / 100)
			g.pix[i+1] = uint8(uint32(gg) * bl / 100)
			g.pix[i+2] = uint8(uint32(b) * bl / 100)
			g.pix[i+3] = 0xff
		}
	}
	d.mu.Unlock()

	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.dev.shadow.Width, g.dev.shadow.Height
}

func unpack(c draw.Color, depth uint8) (r, g, b uint8) {
	if depth == draw.Depth12 {
		r = uint8((c >> 8 & 0x0f) * 255 / 15)
		g = uint8((c >> 4 & 0x0f) * 255 / 15)
		b = uint8((c & 0x0f) * 255 / 15)
		return r, g, b
	}
	r = uint8((c >> 11 & 0x1f) * 255 / 31)
	g = uint8((c >> 5 & 0x3f) * 255 / 63)
	b = uint8((c & 0x1f) * 255 / 31)
	return r, g, b
}
