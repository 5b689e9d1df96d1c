//go:build periph && !tinygo

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

// Linux build driving a real ST7789 panel over spidev, for boards like
// a Pi with the GEEK display wired to SPI0.
func main() {
	var (
		cfgPath = flag.String("config", "", "Path to display.yaml.")
		port    = flag.String("spi", "SPI0.0", "SPI port name.")
		dc      = flag.String("dc", "GPIO25", "Data/command GPIO name.")
		rst     = flag.String("reset", "GPIO27", "Reset GPIO name.")
		hz      = flag.Int("hz", 40_000_000, "SPI clock in Hz.")
		cycle   = flag.Duration("cycle", 5*time.Second, "Panel cycle interval (0 = off).")
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

	m := emu.NewMachine(cfg.Display.Drives)

	dev := hal.NewSPIDevice(hal.SPIConfig{
		Port:  *port,
		DC:    *dc,
		Reset: *rst,
		Hz:    *hz,
	})
	eng := lcd.New(dev, m, lcd.Options{
		Width:     240,
		Height:    135,
		Depth:     depth,
		RefreshHz: cfg.Display.RefreshHz,
		Backlight: uint8(cfg.Display.Backlight),
		Rotated:   cfg.Display.Rotated,
	})
	eng.Start()

	eng.Custom(&lcd.Splash{Lines: []string{
		buildinfo.Name,
		"Z80 status display",
	}})
	time.Sleep(2 * time.Second)
	if p, ok := lcd.PanelByName(cfg.Display.Panel); ok {
		eng.Select(p)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runDemo(m, eng, *cycle, done)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()

	// the demo writes the renderer cell, so it must be parked before
	// Stop raises the shutdown sentinel
	close(done)
	wg.Wait()
	eng.Stop()
}
