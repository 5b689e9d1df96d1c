package lcd

import "testing"

func TestChannelRendererSwap(t *testing.T) {
	var c Channel
	if c.renderer.Load() != nil {
		t.Fatal("fresh channel has a renderer")
	}

	c.SetRenderer(blank{})
	ref := c.renderer.Load()
	if ref == nil || ref.r == nil {
		t.Fatal("renderer not stored")
	}

	c.requestExit()
	if c.renderer.Load() != nil {
		t.Fatal("exit sentinel should read as nil")
	}
}

func TestChannelSentinelSurvivesLateSwap(t *testing.T) {
	var c Channel
	c.SetRenderer(blank{})
	c.requestExit()

	// a swap racing past the shutdown request must not resurrect the
	// renderer, or the scheduler would run forever
	c.SetRenderer(blank{})
	if c.renderer.Load() != nil {
		t.Fatal("late swap overwrote the shutdown sentinel")
	}
}

func TestChannelBacklightClamp(t *testing.T) {
	var c Channel
	c.SetBacklight(130)
	if got := c.Backlight(); got != 100 {
		t.Fatalf("backlight=%d, want 100", got)
	}
	c.SetBacklight(42)
	if got := c.Backlight(); got != 42 {
		t.Fatalf("backlight=%d, want 42", got)
	}
}

func TestChannelLEDColor(t *testing.T) {
	var c Channel
	c.SetLEDColor(0xf800)
	if got := c.LEDColor(); got != 0xf800 {
		t.Fatalf("led color=%#x, want 0xf800", got)
	}
}

func TestChannelExitHandshake(t *testing.T) {
	var c Channel
	if c.Exited() {
		t.Fatal("fresh channel reads exited")
	}
	c.markExited()
	if !c.Exited() {
		t.Fatal("markExited not visible")
	}
}
