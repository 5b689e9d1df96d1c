// Package lcd is the status display engine: the cross-core control
// channel, the fixed-rate refresh scheduler and the panel renderers.
//
// Two execution contexts touch this package. The owning (emulation)
// context calls the Engine's control surface; the scheduler goroutine
// runs the refresh loop. They share the Channel and the live machine
// state without locks, relying on a single writer and a single reader
// per field. A read that is stale by one frame is expected and
// harmless, every field is a current snapshot rather than an event
// that must not be missed.
package lcd

import "geekstat/draw"

// Renderer paints one full-screen panel into the frame.
//
// With first true it draws everything static (background, grid rules,
// labels) and resets any cached state; this happens on the first frame
// after the renderer becomes active. With first false it draws only
// the dynamic fields.
type Renderer interface {
	Render(f *draw.Pixmap, first bool)
}

// Panel selects one of the built-in status panels.
type Panel uint8

// Constant order is the cycle order of NextPanel.
const (
	PanelRegisters Panel = iota
	PanelFrontPanel
	PanelDrives
	PanelPorts
	PanelMemory
	numPanels
)

// PanelByName maps a configuration name to a panel selector.
func PanelByName(name string) (Panel, bool) {
	switch name {
	case "registers":
		return PanelRegisters, true
	case "frontpanel":
		return PanelFrontPanel, true
	case "memory":
		return PanelMemory, true
	case "drives":
		return PanelDrives, true
	case "ports":
		return PanelPorts, true
	}
	return 0, false
}

// blank clears the screen once and then leaves it alone. It is the
// active renderer until the owner selects something.
type blank struct{}

func (blank) Render(f *draw.Pixmap, first bool) {
	if first {
		f.Clear(0)
	}
}
