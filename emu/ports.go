package emu

// PortFlag records I/O port activity since the last rendered frame.
// The ports panel clears both flags after each draw, so a set flag is
// a single-frame pulse, not a sticky indicator.
type PortFlag struct {
	In  bool
	Out bool
}

// PortIn marks a port as read by the CPU.
func (m *Machine) PortIn(port byte) { m.Ports[port].In = true }

// PortOut marks a port as written by the CPU.
func (m *Machine) PortOut(port byte) { m.Ports[port].Out = true }
