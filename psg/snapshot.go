package psg

// ChannelState mirrors one of the PSG's three tone/noise mixer channels.
type ChannelState struct {
	Volume        uint16
	TonePeriod    uint32
	Counter       uint32
	Value         uint16
	OutputBit     uint16
	Disabled      uint16
	NoiseDisabled uint16
	UseEnvelope   bool
}

// PendingChange is one not-yet-applied timestamped register write, as
// carried in the PSG's register-change log.
type PendingChange struct {
	Cycle    uint32
	Register byte
	Value    byte
}

// State is the PSG's gob-encodable state: the fifteen AY-3-8912
// registers, the mixer's derived run state, and the pending
// register-change log, the way the original machine's own snapshot
// format copies the whole sound state, log included, rather than just
// the register file.
type State struct {
	BDIR, BC1, BC2  bool
	CurrentRegister byte
	Registers       [NumRegisters]byte
	AudioRegisters  [NumRegisters]byte
	AudioOut        int32

	Channels [3]ChannelState
	Noise    struct {
		OutputBit uint16
		Period    uint16
		Counter   uint16
		RNG       uint32
	}
	Envelope struct {
		Shape        uint8
		ShapeCounter uint8
		Period       uint32
		Counter      uint32
	}

	CyclesPerSample uint32
	CycleCount      uint32
	LastCycle       uint32

	PendingChanges []PendingChange
	LogCycle       uint32
	NewLogCycle    uint32
	UpdateLogCycle bool
}

// Snapshot captures the PSG's current register and mixer state.
func (p *PSG) Snapshot() State {
	var s State
	s.BDIR, s.BC1, s.BC2 = p.bdir, p.bc1, p.bc2
	s.CurrentRegister = p.currentRegister
	s.Registers = p.registers
	s.AudioRegisters = p.audioRegisters
	s.AudioOut = p.audioOut

	for i := range p.channels {
		c := &p.channels[i]
		s.Channels[i] = ChannelState{
			Volume: c.volume, TonePeriod: c.tonePeriod, Counter: c.counter,
			Value: c.value, OutputBit: c.outputBit,
			Disabled: c.disabled, NoiseDisabled: c.noiseDisabled,
			UseEnvelope: c.useEnvelope,
		}
	}

	s.Noise.OutputBit, s.Noise.Period = p.noise.outputBit, p.noise.period
	s.Noise.Counter, s.Noise.RNG = p.noise.counter, p.noise.rng

	s.Envelope.Shape, s.Envelope.ShapeCounter = p.envelope.shape, p.envelope.shapeCounter
	s.Envelope.Period, s.Envelope.Counter = p.envelope.period, p.envelope.counter

	s.CyclesPerSample, s.CycleCount, s.LastCycle = p.cyclesPerSample, p.cycleCount, p.lastCycle

	for _, c := range p.changes.buffer {
		s.PendingChanges = append(s.PendingChanges, PendingChange{Cycle: c.cycle, Register: c.register, Value: c.value})
	}
	s.LogCycle, s.NewLogCycle, s.UpdateLogCycle = p.changes.logCycle, p.changes.newLogCycle, p.changes.updateLogCycle
	return s
}

// Restore puts the PSG into the state previously captured by Snapshot.
func (p *PSG) Restore(s State) {
	p.bdir, p.bc1, p.bc2 = s.BDIR, s.BC1, s.BC2
	p.currentRegister = s.CurrentRegister
	p.registers = s.Registers
	p.audioRegisters = s.AudioRegisters
	p.audioOut = s.AudioOut

	for i := range p.channels {
		c := s.Channels[i]
		p.channels[i] = channel{
			volume: c.Volume, tonePeriod: c.TonePeriod, counter: c.Counter,
			value: c.Value, outputBit: c.OutputBit,
			disabled: c.Disabled, noiseDisabled: c.NoiseDisabled,
			useEnvelope: c.UseEnvelope,
		}
	}

	p.noise.outputBit, p.noise.period = s.Noise.OutputBit, s.Noise.Period
	p.noise.counter, p.noise.rng = s.Noise.Counter, s.Noise.RNG

	p.envelope.shape, p.envelope.shapeCounter = s.Envelope.Shape, s.Envelope.ShapeCounter
	p.envelope.period, p.envelope.counter = s.Envelope.Period, s.Envelope.Counter

	p.cyclesPerSample, p.cycleCount, p.lastCycle = s.CyclesPerSample, s.CycleCount, s.LastCycle

	p.changes.buffer = p.changes.buffer[:0]
	for _, c := range s.PendingChanges {
		p.changes.buffer = append(p.changes.buffer, registerChange{cycle: c.Cycle, register: c.Register, value: c.Value})
	}
	p.changes.logCycle, p.changes.newLogCycle, p.changes.updateLogCycle = s.LogCycle, s.NewLogCycle, s.UpdateLogCycle
}
