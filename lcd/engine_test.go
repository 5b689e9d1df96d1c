package lcd

import (
	"sync"
	"testing"
	"time"

	"geekstat/draw"
	"geekstat/emu"
	"geekstat/hal"
)

func testOptions() Options {
	return Options{
		Width:     240,
		Height:    135,
		Depth:     draw.Depth16,
		RefreshHz: 100,
		Backlight: 90,
	}
}

// recordRenderer notes the first flag of every call.
type recordRenderer struct {
	firsts []bool
}

func (r *recordRenderer) Render(f *draw.Pixmap, first bool) {
	r.firsts = append(r.firsts, first)
}

func TestEngineStartStop(t *testing.T) {
	dev := hal.NewHeadlessDevice()
	eng := New(dev, emu.NewMachine(4), testOptions())

	eng.Start()
	time.Sleep(100 * time.Millisecond)
	eng.Stop()

	if !dev.Closed() {
		t.Fatal("device not closed after Stop")
	}
	if dev.Frames() == 0 {
		t.Fatal("no frames sent")
	}
	if eng.Frames() == 0 {
		t.Fatal("frame counter did not advance")
	}
}

func TestEngineStopIsIdempotent(t *testing.T) {
	dev := hal.NewHeadlessDevice()
	eng := New(dev, emu.NewMachine(1), testOptions())
	eng.Start()
	eng.Stop()
	eng.Stop()
}

func TestEngineStopSurvivesLateSwap(t *testing.T) {
	dev := hal.NewHeadlessDevice()
	eng := New(dev, emu.NewMachine(1), testOptions())
	eng.Start()
	eng.Select(PanelRegisters)
	time.Sleep(30 * time.Millisecond)

	// a panel swap landing between the shutdown request and the
	// scheduler's next poll must not keep the loop alive
	eng.ch.requestExit()
	eng.NextPanel()

	deadline := time.Now().Add(time.Second)
	for !eng.Channel().Exited() {
		if time.Now().After(deadline) {
			t.Fatal("scheduler still running after shutdown request")
		}
		time.Sleep(5 * time.Millisecond)
	}
	eng.Stop()
	if !dev.Closed() {
		t.Fatal("device not closed")
	}
}

func TestEngineConcurrentStop(t *testing.T) {
	dev := hal.NewHeadlessDevice()
	eng := New(dev, emu.NewMachine(1), testOptions())
	eng.Start()
	time.Sleep(30 * time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			eng.Stop()
		}()
	}
	wg.Wait()

	if !eng.Channel().Exited() {
		t.Fatal("loop did not acknowledge shutdown")
	}
	if !dev.Closed() {
		t.Fatal("device not closed after Stop")
	}
}

func TestEngineAppliesControlChanges(t *testing.T) {
	dev := hal.NewHeadlessDevice()
	eng := New(dev, emu.NewMachine(1), testOptions())
	eng.Start()
	time.Sleep(50 * time.Millisecond)

	eng.SetBacklight(40)
	eng.SetRotated(true)
	time.Sleep(50 * time.Millisecond)
	eng.Stop()

	bl := dev.Backlights()
	if len(bl) < 2 || bl[0] != 90 || bl[len(bl)-1] != 40 {
		t.Fatalf("backlights=%v, want init 90 then change to 40", bl)
	}
	rot := dev.Rotations()
	if len(rot) != 1 || !rot[0] {
		t.Fatalf("rotations=%v, want single change to true", rot)
	}
}

func TestEngineFirstFrameOnSwap(t *testing.T) {
	dev := hal.NewHeadlessDevice()
	eng := New(dev, emu.NewMachine(1), testOptions())
	r1 := &recordRenderer{}
	r2 := &recordRenderer{}

	eng.Start()
	eng.Custom(r1)
	time.Sleep(60 * time.Millisecond)
	eng.Custom(r2)
	time.Sleep(60 * time.Millisecond)
	eng.Stop()

	for _, r := range []*recordRenderer{r1, r2} {
		if len(r.firsts) < 2 {
			t.Fatalf("renderer got %d frames, want several", len(r.firsts))
		}
		if !r.firsts[0] {
			t.Fatal("first frame after swap not flagged")
		}
		for _, f := range r.firsts[1:] {
			if f {
				t.Fatal("first flag repeated after the swap frame")
			}
		}
	}
}

func TestEnginePanelCycle(t *testing.T) {
	dev := hal.NewHeadlessDevice()
	eng := New(dev, emu.NewMachine(1), testOptions())

	eng.Select(PanelRegisters)
	order := []Panel{
		PanelFrontPanel, PanelDrives, PanelPorts, PanelMemory,
		PanelRegisters,
	}
	for i, want := range order {
		eng.NextPanel()
		if got := eng.Current(); got != want {
			t.Fatalf("step %d: panel=%v, want %v", i, got, want)
		}
	}
}

func TestEngineCustomDoesNotJoinCycle(t *testing.T) {
	dev := hal.NewHeadlessDevice()
	eng := New(dev, emu.NewMachine(1), testOptions())

	eng.Select(PanelDrives)
	eng.Custom(&recordRenderer{})
	if got := eng.Current(); got != PanelDrives {
		t.Fatalf("custom renderer overwrote remembered panel: %v", got)
	}

	// cycling while a custom renderer shows only moves the memory
	eng.NextPanel()
	if got := eng.Current(); got != PanelPorts {
		t.Fatalf("panel=%v, want %v", got, PanelPorts)
	}
}

func TestEngineDriveAccessFoldsLED(t *testing.T) {
	dev := hal.NewHeadlessDevice()
	eng := New(dev, emu.NewMachine(2), testOptions())

	eng.DriveAccess(1, 12, 3, 0x8000, false, true)
	if got := draw.Color(eng.Channel().LEDColor()); got&eng.pal.Green == 0 {
		t.Fatalf("led=%#x, want green folded in", got)
	}

	eng.DriveAccess(1, 12, 4, 0x8000, true, true)
	if got := draw.Color(eng.Channel().LEDColor()); got&eng.pal.Red != eng.pal.Red {
		t.Fatalf("led=%#x, want red folded in", got)
	}

	eng.DriveAccess(1, 0, 0, 0, false, false)
	if got := draw.Color(eng.Channel().LEDColor()); got&(eng.pal.Red|eng.pal.Green) != 0 {
		t.Fatalf("led=%#x, want read/write bits cleared", got)
	}

	d := eng.m.Drives[1]
	if d.Track != 0 || d.Sector != 0 || d.Active {
		t.Fatalf("drive record not updated: %+v", d)
	}
}
