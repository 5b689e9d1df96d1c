// Package hal hides the physical display controller behind a small
// device interface with interchangeable drivers: an ST7789 panel on
// TinyGo baremetal, a periph.io SPI driver on Linux hosts, and an
// ebiten window or headless device for development.
package hal

import "geekstat/draw"

// Device is the display controller as seen by the refresh scheduler.
// All calls are best-effort: the scheduler never inspects a result
// beyond logging, and the next frame is the retry.
type Device interface {
	// Init brings the controller up with the given backlight level.
	Init(backlight uint8) error
	// Backlight sets the backlight intensity (0-100).
	Backlight(pct uint8)
	// Rotation flips the panel orientation by 180 degrees.
	Rotation(rotated bool)
	// Send transmits a finished frame.
	Send(pm *draw.Pixmap)
	// Close shuts the controller down.
	Close()
}
