package emu

import "testing"

func TestNewMachineDrives(t *testing.T) {
	m := NewMachine(0)
	if len(m.Drives) != 1 {
		t.Fatalf("drives=%d, want clamp to 1", len(m.Drives))
	}
	m = NewMachine(4)
	if len(m.Drives) != 4 {
		t.Fatalf("drives=%d, want 4", len(m.Drives))
	}
	if m.Temp == nil || m.Freq == nil {
		t.Fatal("sensor hooks not defaulted")
	}
}

func TestCPUSwitch(t *testing.T) {
	m := NewMachine(1)
	if m.CPU() != Z80 {
		t.Fatalf("default cpu=%v, want Z80", m.CPU())
	}
	m.SetCPU(I8080)
	if m.CPU() != I8080 {
		t.Fatalf("cpu=%v, want I8080", m.CPU())
	}
}

func TestPortFlags(t *testing.T) {
	m := NewMachine(1)
	m.PortIn(0x10)
	m.PortOut(0x10)
	m.PortOut(0xff)
	if !m.Ports[0x10].In || !m.Ports[0x10].Out {
		t.Fatal("port 0x10 flags not set")
	}
	if m.Ports[0xff].In || !m.Ports[0xff].Out {
		t.Fatal("port 0xff flags wrong")
	}
}
