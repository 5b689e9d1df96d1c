//go:build tinygo

package main

import (
	"time"

	"geekstat/emu"
	"geekstat/hal"
	"geekstat/internal/buildinfo"
	"geekstat/lcd"
)

func main() {
	m := emu.NewMachine(4)
	m.Temp = hal.ReadTemp
	m.Freq = func() uint64 { return 4_000_000 }

	eng := lcd.New(hal.NewGeekDevice(), m, lcd.DefaultOptions)
	eng.Start()

	eng.Custom(&lcd.Splash{Lines: []string{
		buildinfo.Name,
		"Z80 status display",
	}})
	time.Sleep(2 * time.Second)
	eng.Select(lcd.PanelRegisters)

	// the emulation loop owns this context from here on
	for {
		time.Sleep(5 * time.Second)
		eng.NextPanel()
	}
}
