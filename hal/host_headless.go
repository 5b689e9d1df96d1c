//go:build !tinygo

package hal

import (
	"sync"

	"geekstat/draw"
)

// HeadlessDevice discards frames and records what the scheduler asked
// for. Used by the -headless host mode and by tests.
type HeadlessDevice struct {
	mu sync.Mutex

	inited     bool
	closed     bool
	frames     int
	backlights []uint8
	rotations  []bool
}

func NewHeadlessDevice() *HeadlessDevice { return &HeadlessDevice{} }

func (d *HeadlessDevice) Init(backlight uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inited = true
	d.backlights = append(d.backlights, backlight)
	return nil
}

func (d *HeadlessDevice) Backlight(pct uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.backlights = append(d.backlights, pct)
}

func (d *HeadlessDevice) Rotation(rotated bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rotations = append(d.rotations, rotated)
}

func (d *HeadlessDevice) Send(pm *draw.Pixmap) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames++
}

func (d *HeadlessDevice) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// Frames returns the number of frames sent so far.
func (d *HeadlessDevice) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Closed reports whether the scheduler tore the device down.
func (d *HeadlessDevice) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Backlights returns every backlight level applied, first the Init
// value, then one entry per change.
func (d *HeadlessDevice) Backlights() []uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]uint8(nil), d.backlights...)
}

// Rotations returns every rotation change applied.
func (d *HeadlessDevice) Rotations() []bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]bool(nil), d.rotations...)
}
