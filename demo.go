//go:build !tinygo

package main

import (
	"math/rand"
	"time"

	"geekstat/emu"
	"geekstat/hal"
	"geekstat/lcd"
)

// runDemo mutates the machine the way a running emulation would, so
// every panel has something to show. It stops when done is closed.
func runDemo(m *emu.Machine, eng *lcd.Engine, cycle time.Duration, done <-chan struct{}) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	m.Temp = hal.ReadTemp
	m.Freq = func() uint64 { return 4_000_000 }
	m.CPUState = 1
	m.IFF = 3

	for i := range m.Bank0 {
		m.Bank0[i] = byte(rng.Intn(256))
	}

	tick := time.NewTicker(20 * time.Millisecond)
	defer tick.Stop()
	next := time.Now().Add(cycle)

	for {
		select {
		case <-done:
			return
		case <-tick.C:
		}

		// register churn
		m.PC += uint16(rng.Intn(7))
		m.SP = 0xff00 - uint16(rng.Intn(64))
		m.A = byte(rng.Intn(256))
		m.F = byte(rng.Intn(256))
		m.B, m.C = byte(m.PC>>8), byte(m.PC)
		m.H, m.L = 0x40, m.A
		m.R += 3

		// front panel latches follow the fetch
		m.LedAddress = m.PC
		m.LedData = m.Bank0[m.PC]
		m.CPUBus = emu.BusMemRead | emu.BusM1

		// background memory writes keep the heat map moving
		for i := 0; i < 64; i++ {
			m.Bank0[rng.Intn(len(m.Bank0))] = byte(rng.Intn(256))
			m.Bank1[rng.Intn(len(m.Bank1))] = byte(rng.Intn(256))
		}

		// occasional I/O and disk traffic
		if rng.Intn(4) == 0 {
			m.PortIn(byte(rng.Intn(256)))
		}
		if rng.Intn(4) == 0 {
			m.PortOut(byte(rng.Intn(256)))
		}
		if rng.Intn(25) == 0 {
			drive := rng.Intn(len(m.Drives))
			eng.DriveAccess(drive, uint8(rng.Intn(77)),
				uint8(1+rng.Intn(26)), uint16(rng.Intn(0x10000)),
				rng.Intn(2) == 0, true)
		}

		if cycle > 0 && time.Now().After(next) {
			next = time.Now().Add(cycle)
			eng.NextPanel()
		}
	}
}
