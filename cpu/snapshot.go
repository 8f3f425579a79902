package cpu

// State is the CPU's gob-encodable register and interrupt-latch state.
// The bus wiring and opcode dispatch table are rebuilt by the machine
// and NewCPU respectively, so neither is part of it.
type State struct {
	A, X, Y byte
	S       byte
	PC      uint16
	P       StatusRegister

	IRQLine  bool
	NMIEdge  bool
	PrevNMI  bool
	BreakHit bool
}

// Snapshot captures the CPU's current state.
func (c *CPU) Snapshot() State {
	return State{
		A: c.A, X: c.X, Y: c.Y,
		S:  c.S,
		PC: c.PC,
		P:  c.P,

		IRQLine:  c.irqLine,
		NMIEdge:  c.nmiEdge,
		PrevNMI:  c.prevNMI,
		BreakHit: c.breakHit,
	}
}

// Restore puts the CPU into the state previously captured by Snapshot.
func (c *CPU) Restore(s State) {
	c.A, c.X, c.Y = s.A, s.X, s.Y
	c.S = s.S
	c.PC = s.PC
	c.P = s.P

	c.irqLine = s.IRQLine
	c.nmiEdge = s.NMIEdge
	c.prevNMI = s.PrevNMI
	c.breakHit = s.BreakHit
}
