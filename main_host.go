//go:build !tinygo && !periph

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"geekstat/config"
	"geekstat/draw"
	"geekstat/emu"
	"geekstat/hal"
	"geekstat/internal/buildinfo"
	"geekstat/lcd"
)

func main() {
	var (
		headless = flag.Bool("headless", false, "Run without a window.")
		ticks    = flag.Uint64("ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
		scale    = flag.Int("scale", 3, "Window scale factor.")
		cfgPath  = flag.String("config", "", "Path to display.yaml.")
		cycle    = flag.Duration("cycle", 5*time.Second, "Panel cycle interval (0 = off).")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	depth := uint8(draw.Depth16)
	if cfg.Display.Depth == 12 {
		depth = draw.Depth12
	}
	opts := lcd.Options{
		Width:     240,
		Height:    135,
		Depth:     depth,
		RefreshHz: cfg.Display.RefreshHz,
		Backlight: uint8(cfg.Display.Backlight),
		Rotated:   cfg.Display.Rotated,
	}

	m := emu.NewMachine(cfg.Display.Drives)

	if *headless {
		if err := runHeadless(m, cfg, opts, *ticks, *cycle); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	dev := hal.NewWindowDevice(opts.Width, opts.Height, opts.Depth)
	eng := lcd.New(dev, m, opts)
	eng.Start()

	eng.Custom(&lcd.Splash{Lines: []string{
		buildinfo.Name,
		"Z80 status display",
	}})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-done:
			return
		case <-time.After(2 * time.Second):
		}
		if p, ok := lcd.PanelByName(cfg.Display.Panel); ok {
			eng.Select(p)
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		runDemo(m, eng, *cycle, done)
	}()

	err := hal.RunWindow(dev, *scale)

	// both goroutines write the renderer cell, so they must be parked
	// before Stop raises the shutdown sentinel
	close(done)
	wg.Wait()
	eng.Stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHeadless(m *emu.Machine, cfg *config.Config, opts lcd.Options, ticks uint64, cycle time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dev := hal.NewHeadlessDevice()
	eng := lcd.New(dev, m, opts)
	eng.Start()

	if p, ok := lcd.PanelByName(cfg.Display.Panel); ok {
		eng.Select(p)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runDemo(m, eng, cycle, done)
	}()
	defer func() {
		close(done)
		wg.Wait()
		eng.Stop()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(100 * time.Millisecond):
		}
		if ticks != 0 && uint64(eng.Frames()) >= ticks {
			return nil
		}
	}
}
