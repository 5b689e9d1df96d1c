// Package emu holds the live machine state the display engine reads:
// the register file, front panel latches, memory banks, drive records
// and I/O port flags. The emulation context owns and mutates this
// state; the display scheduler only reads it. Values are plain fields
// on purpose: each is a current snapshot, and a read that is stale by
// one frame is harmless.
package emu

import "sync/atomic"

// CPU selects the emulated CPU variant.
type CPU uint8

const (
	Z80 CPU = iota
	I8080
)

// Condition flag bits shared by both CPU variants (N is Z80 only).
const (
	SFlag byte = 0x80
	ZFlag byte = 0x40
	HFlag byte = 0x10
	PFlag byte = 0x04
	NFlag byte = 0x02
	CFlag byte = 0x01
)

// CPU bus state bits, as latched for the front panel.
const (
	BusMemRead  byte = 0x80
	BusInput    byte = 0x40
	BusM1       byte = 0x20
	BusOutput   byte = 0x10
	BusHalt     byte = 0x08
	BusStack    byte = 0x04
	BusWriteOut byte = 0x02
	BusIntAck   byte = 0x01
)

// Machine is the emulation-side state read by the panel renderers.
type Machine struct {
	cpu atomic.Uint32

	// Register file. The alt set, IX/IY and R exist on the Z80 only.
	A, F, B, C, D, E, H, L                         byte
	AltA, AltF, AltB, AltC, AltD, AltE, AltH, AltL byte
	IX, IY, SP, PC                                 uint16
	I                                              byte
	R, R7                                          byte
	IFF                                            byte

	// Front panel latches.
	CPUState   byte
	BusRequest byte
	CPUBus     byte
	LedOutput  byte
	LedData    byte
	LedWait    byte
	LedAddress uint16

	// Memory banks shown by the heat map.
	Bank0 [64 * 1024]byte
	Bank1 [48 * 1024]byte

	Drives []DriveStatus
	Ports  [256]PortFlag

	// Sensor hooks provided by the platform.
	Temp func() float32
	Freq func() uint64
}

// NewMachine returns a machine with the given number of disk drives.
func NewMachine(drives int) *Machine {
	if drives < 1 {
		drives = 1
	}
	m := &Machine{Drives: make([]DriveStatus, drives)}
	m.Temp = func() float32 { return 0 }
	m.Freq = func() uint64 { return 0 }
	return m
}

// CPU returns the active CPU variant.
func (m *Machine) CPU() CPU { return CPU(m.cpu.Load()) }

// SetCPU switches the CPU variant. The registers panel redraws its
// static layout when it notices the change.
func (m *Machine) SetCPU(c CPU) { m.cpu.Store(uint32(c)) }
