package lcd

import "sync/atomic"

// rendererRef boxes a Renderer so the channel can swap it atomically.
type rendererRef struct {
	r Renderer
}

// Channel is the lock-free control state shared by the owning context
// and the scheduler. Every field has exactly one writer and one reader
// context; that discipline is what makes unsynchronized access safe.
// A nil renderer reference is the shutdown sentinel.
type Channel struct {
	renderer  atomic.Pointer[rendererRef] // W: owner, R: scheduler
	backlight atomic.Uint32               // W: owner, R: scheduler
	rotated   atomic.Bool                 // W: owner, R: scheduler
	ledColor  atomic.Uint32               // W: owner, R: scheduler
	stopping  atomic.Bool                 // W: owner, R: owner
	exited    atomic.Bool                 // W: scheduler, R: owner
}

// SetRenderer makes r the active renderer from the next frame on.
// Once shutdown has been requested the sentinel must survive any
// in-flight swap, so a stale call is undone here.
func (c *Channel) SetRenderer(r Renderer) {
	if c.stopping.Load() {
		return
	}
	c.renderer.Store(&rendererRef{r: r})
	if c.stopping.Load() {
		c.renderer.Store(nil)
	}
}

// requestExit raises the shutdown sentinel.
func (c *Channel) requestExit() {
	c.stopping.Store(true)
	c.renderer.Store(nil)
}

// SetBacklight sets the backlight level (0-100), applied by the
// scheduler on its next frame.
func (c *Channel) SetBacklight(pct uint8) {
	if pct > 100 {
		pct = 100
	}
	c.backlight.Store(uint32(pct))
}

// SetRotated sets the display orientation.
func (c *Channel) SetRotated(rotated bool) {
	c.rotated.Store(rotated)
}

// SetLEDColor pushes a new activity LED color to the overlay.
func (c *Channel) SetLEDColor(color uint16) {
	c.ledColor.Store(uint32(color))
}

// LEDColor returns the current activity LED color.
func (c *Channel) LEDColor() uint16 {
	return uint16(c.ledColor.Load())
}

// Backlight returns the requested backlight level.
func (c *Channel) Backlight() uint8 {
	return uint8(c.backlight.Load())
}

// Rotated returns the requested orientation.
func (c *Channel) Rotated() bool {
	return c.rotated.Load()
}

// Exited reports whether the scheduler loop has terminated.
func (c *Channel) Exited() bool {
	return c.exited.Load()
}

func (c *Channel) markExited() {
	c.exited.Store(true)
}
