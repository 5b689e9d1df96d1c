package lcd

import (
	"log"
	"sync/atomic"
	"time"

	"geekstat/draw"
	"geekstat/emu"
	"geekstat/hal"
)

// Options configures the engine.
type Options struct {
	Width     int
	Height    int
	Depth     uint8 // draw.Depth12 or draw.Depth16
	RefreshHz int   // frames per second
	Backlight uint8 // initial level, 0-100
	Rotated   bool
}

// DefaultOptions matches the Waveshare GEEK panel.
var DefaultOptions = Options{
	Width:     240,
	Height:    135,
	Depth:     draw.Depth16,
	RefreshHz: 30,
	Backlight: 90,
}

// Engine owns the frame, the channel and the scheduler loop.
//
// The control methods (Select, NextPanel, Custom, SetBacklight,
// SetRotated, DriveAccess, Stop) belong to the owning context and
// never block it; everything they do is fire-and-forget through the
// channel. The scheduler runs on its own goroutine until Stop.
type Engine struct {
	dev   hal.Device
	m     *emu.Machine
	frame *draw.Pixmap
	pal   draw.Palette
	ch    Channel

	refresh uint32 // frames per second
	period  time.Duration
	frames  atomic.Uint32

	renderers [numPanels]Renderer

	// Panel cycling state, owner context only.
	statusSel   Panel
	showsStatus bool
}

// New builds an engine for the given device and machine. Start must be
// called before the display shows anything.
func New(dev hal.Device, m *emu.Machine, opt Options) *Engine {
	if opt.Width <= 0 || opt.Height <= 0 {
		opt.Width, opt.Height = DefaultOptions.Width, DefaultOptions.Height
	}
	if opt.RefreshHz <= 0 {
		opt.RefreshHz = DefaultOptions.RefreshHz
	}
	e := &Engine{
		dev:     dev,
		m:       m,
		frame:   draw.NewPixmap(opt.Width, opt.Height, opt.Depth),
		pal:     draw.PaletteFor(opt.Depth),
		refresh: uint32(opt.RefreshHz),
		period:  time.Second / time.Duration(opt.RefreshHz),
	}

	ov := &overlay{e: e}
	e.renderers[PanelRegisters] = &registersPanel{e: e, ov: ov}
	e.renderers[PanelFrontPanel] = &frontPanel{e: e, ov: ov}
	e.renderers[PanelMemory] = &memoryPanel{e: e}
	e.renderers[PanelDrives] = &drivesPanel{e: e, ov: ov}
	e.renderers[PanelPorts] = &portsPanel{e: e, ov: ov}

	e.ch.SetRenderer(blank{})
	e.ch.SetBacklight(opt.Backlight)
	e.ch.SetRotated(opt.Rotated)
	e.ch.SetLEDColor(uint16(e.pal.Black))
	e.statusSel = PanelRegisters
	return e
}

// Channel exposes the control channel (owner side).
func (e *Engine) Channel() *Channel { return &e.ch }

// Frames returns the scheduler's frame counter.
func (e *Engine) Frames() uint32 { return e.frames.Load() }

// Start launches the refresh loop on its own goroutine.
func (e *Engine) Start() { go e.run() }

// Stop raises the shutdown sentinel and polls until the loop has torn
// the device down. Idempotent; safe to call while the scheduler is
// mid-frame.
func (e *Engine) Stop() {
	e.ch.requestExit()
	for !e.ch.Exited() {
		time.Sleep(20 * time.Millisecond)
	}
}

// Select shows a built-in status panel and remembers it as the current
// one for cycling.
func (e *Engine) Select(p Panel) {
	if p >= numPanels {
		return
	}
	e.statusSel = p
	e.showsStatus = true
	e.ch.SetRenderer(e.renderers[p])
}

// NextPanel advances to the next status panel in the fixed cycle. If a
// custom renderer is showing, only the remembered panel advances.
func (e *Engine) NextPanel() {
	e.statusSel = (e.statusSel + 1) % numPanels
	if e.showsStatus {
		e.ch.SetRenderer(e.renderers[e.statusSel])
	}
}

// Current returns the remembered status panel.
func (e *Engine) Current() Panel { return e.statusSel }

// Custom shows a full-screen custom renderer (splash screens and the
// like). It does not join the cycle and does not overwrite the
// remembered status panel.
func (e *Engine) Custom(r Renderer) {
	if r == nil {
		r = blank{}
	}
	e.showsStatus = false
	e.ch.SetRenderer(r)
}

// SetBacklight sets the backlight level (0-100).
func (e *Engine) SetBacklight(pct uint8) { e.ch.SetBacklight(pct) }

// SetRotated sets the display orientation.
func (e *Engine) SetRotated(rotated bool) { e.ch.SetRotated(rotated) }

// SetLEDColor pushes an activity LED color.
func (e *Engine) SetLEDColor(c draw.Color) { e.ch.SetLEDColor(uint16(c)) }

// DriveAccess records a disk access for the drives panel and folds the
// access direction into the activity LED: red for writes, green for
// reads, cleared when the controller reports idle.
func (e *Engine) DriveAccess(drive int, track, sector uint8, addr uint16, write, active bool) {
	if drive < 0 || drive >= len(e.m.Drives) {
		return
	}
	d := &e.m.Drives[drive]
	d.Track = track
	d.Sector = sector
	d.Addr = addr
	d.Write = write
	d.Active = active
	d.LastAccess = e.frames.Load()

	led := draw.Color(e.ch.LEDColor())
	if active {
		if write {
			led = led&^e.pal.Red | e.pal.Red
		} else {
			led = led&^e.pal.Green | e.pal.Green
		}
	} else {
		led &^= e.pal.Red | e.pal.Green
	}
	e.ch.SetLEDColor(uint16(led))
}

// RenderOnce draws one panel synchronously, static pass then dynamic
// pass, and returns the frame. For tools and tests only; do not call
// while the scheduler is running.
func (e *Engine) RenderOnce(p Panel) *draw.Pixmap {
	if p >= numPanels {
		p = PanelRegisters
	}
	r := e.renderers[p]
	r.Render(e.frame, true)
	// step the counter so once-per-second content renders too
	e.frames.Add(e.refresh)
	r.Render(e.frame, false)
	return e.frame
}

// run is the refresh loop. It owns the device from Init to Close and
// is the only context that touches the frame.
func (e *Engine) run() {
	backlight := e.ch.Backlight()
	if err := e.dev.Init(backlight); err != nil {
		log.Printf("lcd: device init: %v", err)
	}

	rotated := false
	var cur Renderer
	first := true

	for {
		start := time.Now()

		ref := e.ch.renderer.Load()
		if ref == nil {
			break
		}

		if bl := e.ch.Backlight(); bl != backlight {
			backlight = bl
			e.dev.Backlight(bl)
		}
		if rot := e.ch.Rotated(); rot != rotated {
			rotated = rot
			e.dev.Rotation(rot)
		}
		if ref.r != cur {
			cur = ref.r
			first = true
		}

		cur.Render(e.frame, first)
		first = false
		e.dev.Send(e.frame)

		e.frames.Add(1)

		if d := time.Since(start); d < e.period {
			time.Sleep(e.period - d)
		}
		// A late frame is not compensated; the next one starts now.
	}

	e.dev.Close()
	e.ch.markExited()
}
