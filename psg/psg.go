package psg

import "sync"

// AudioSink receives mixed mono PSG samples at the fixed 44.1kHz output
// rate, written to both stereo channels by the caller.
type AudioSink interface {
	WriteSample(v int16)
}

// PSG is a cycle-stepped AY-3-8912. Update (called from the emu thread on
// every bus-protocol write) and MixSamples (called from the audio
// collaborator's own producer thread) share the register log and mixer
// state, so both take audioLock for as long as they touch it: Update for
// the duration of the enqueue, MixSamples for the entire per-buffer mixing
// pass.
type PSG struct {
	bdir, bc1, bc2 bool

	currentRegister byte
	registers       [NumRegisters]byte
	audioRegisters  [NumRegisters]byte
	audioOut        int32

	changes  registerChangeLog
	channels [3]channel
	noise    noise
	envelope envelope

	cyclesPerSample uint32
	cycleCount      uint32
	lastCycle       uint32

	audioLock sync.Mutex
}

// New creates a PSG in its power-on state.
func New() *PSG {
	p := &PSG{}
	p.Reset()
	return p
}

// Reset puts the PSG into its power-on state.
func (p *PSG) Reset() {
	*p = PSG{cyclesPerSample: (cyclesPerSecond << cycleShift) / audioFrequency}
	for i := range p.channels {
		p.channels[i].reset()
	}
	p.noise.reset()
	p.envelope.reset()
	p.changes.reset()
}

// Tick advances the register-change log's cycle clock by cycles bus
// cycles; the machine calls it with 1 once per bus cycle.
func (p *PSG) Tick(cycles uint8) { p.changes.tick(cycles) }

// SetBC1 drives the BC1 bus-control line (wired to the VIA's CA2 output).
func (p *PSG) SetBC1(level bool) { p.bc1 = level }

// SetBDIR drives the BDIR bus-control line (wired to the VIA's CB2 output).
func (p *PSG) SetBDIR(level bool) { p.bdir = level }

// Register returns the current value of reg, for the keyboard matrix
// reading IO_PORT_A as a column mask.
func (p *PSG) Register(reg byte) byte { return p.registers[reg] }

// Update re-evaluates the bus protocol against the current BDIR/BC1 state
// and the byte currently on the data bus (the VIA's ORA register), the way
// a falling/rising edge on either control line would on real hardware.
// warpMode suppresses register-change logging, since emulated time runs
// far ahead of real audio time under warp and sample-accurate timing no
// longer matters.
func (p *PSG) Update(dataBus byte, warpMode bool) {
	p.audioLock.Lock()
	defer p.audioLock.Unlock()

	if !p.bdir {
		return // read-from-PSG and inactive states are not implemented
	}
	if p.bc1 {
		// Latch address: data bus selects the current register.
		if dataBus < NumRegisters {
			p.currentRegister = dataBus
		}
		return
	}
	// Write to PSG: data bus value is stored to the current register.
	p.registers[p.currentRegister] = dataBus
	if p.currentRegister == RegIOPortA {
		return
	}
	if !warpMode {
		p.changes.push(p.currentRegister, dataBus)
	}
}

func (p *PSG) applyChange(c registerChange) {
	switch c.register {
	case RegChAPeriodLow, RegChAPeriodHigh:
		p.audioRegisters[c.register] = c.value
		p.channels[0].tonePeriod = chanPeriod(p.audioRegisters[RegChAPeriodHigh], p.audioRegisters[RegChAPeriodLow])
	case RegChBPeriodLow, RegChBPeriodHigh:
		p.audioRegisters[c.register] = c.value
		p.channels[1].tonePeriod = chanPeriod(p.audioRegisters[RegChBPeriodHigh], p.audioRegisters[RegChBPeriodLow])
	case RegChCPeriodLow, RegChCPeriodHigh:
		p.audioRegisters[c.register] = c.value
		p.channels[2].tonePeriod = chanPeriod(p.audioRegisters[RegChCPeriodHigh], p.audioRegisters[RegChCPeriodLow])
	case RegNoisePeriod:
		p.audioRegisters[c.register] = c.value
		p.noise.period = uint16(c.value&0x1f) * 8
	case RegEnable:
		p.audioRegisters[c.register] = c.value
		p.channels[0].disabled = boolToU16(c.value&0x01 != 0)
		p.channels[1].disabled = boolToU16(c.value&0x02 != 0)
		p.channels[2].disabled = boolToU16(c.value&0x04 != 0)
		p.channels[0].noiseDisabled = boolToU16(c.value&0x08 != 0)
		p.channels[1].noiseDisabled = boolToU16(c.value&0x10 != 0)
		p.channels[2].noiseDisabled = boolToU16(c.value&0x20 != 0)
	case RegChAAmplitude:
		p.setAmplitude(0, c.value)
	case RegChBAmplitude:
		p.setAmplitude(1, c.value)
	case RegChCAmplitude:
		p.setAmplitude(2, c.value)
	case RegEnvDurationLow, RegEnvDurationHigh:
		p.audioRegisters[c.register] = c.value
		period := (uint32(p.audioRegisters[RegEnvDurationHigh])<<8 | uint32(p.audioRegisters[RegEnvDurationLow])) * 16
		p.envelope.setPeriod(period)
	case RegEnvShape:
		if c.value == 0xff {
			return
		}
		p.audioRegisters[c.register] = c.value
		p.envelope.setShape(c.value & 0x0f)
		p.refreshEnvelopeVolumes()
	}
}

func (p *PSG) setAmplitude(ch int, value byte) {
	p.audioRegisters[RegChAAmplitude+ch] = value
	p.channels[ch].useEnvelope = value&0x10 != 0
	if p.channels[ch].useEnvelope {
		p.channels[ch].volume = p.envelope.level()
	} else {
		p.channels[ch].volume = voltab[value&0x0f]
	}
}

func (p *PSG) refreshEnvelopeVolumes() {
	for i := range p.channels {
		if p.channels[i].useEnvelope {
			p.channels[i].volume = p.envelope.level()
		}
	}
}

func chanPeriod(hi, lo byte) uint32 {
	period := (uint32(hi&0x0f)<<8 + uint32(lo)) * 8
	if period == 0 {
		period = 1
	}
	return period
}

func boolToU16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// execRegisterChanges applies every queued change whose producing cycle
// has arrived by cycle.
func (p *PSG) execRegisterChanges(cycle uint32) {
	for len(p.changes.buffer) > 0 && cycle >= p.changes.buffer[0].cycle {
		p.applyChange(p.changes.buffer[0])
		p.changes.buffer = p.changes.buffer[1:]
	}
}

// trimRegisterChanges rebases queued cycle stamps against lastCycle, and
// if the queue has grown past its watermark, applies everything queued in
// one pass rather than let it grow unbounded (the warp-mode escape valve).
func (p *PSG) trimRegisterChanges() {
	for i := range p.changes.buffer {
		rc := &p.changes.buffer[i]
		if rc.cycle > p.lastCycle {
			rc.cycle -= p.lastCycle
		} else {
			rc.cycle = 0
		}
	}
	if len(p.changes.buffer) > registerChangeLogWatermark {
		for _, rc := range p.changes.buffer {
			p.applyChange(rc)
		}
		p.changes.buffer = p.changes.buffer[:0]
	}
}

// execAudio advances channel/noise/envelope generators and mixes a new
// audioOut value for every integer cycle between lastCycle and cycle.
func (p *PSG) execAudio(cycle uint32) {
	if cycle <= p.lastCycle {
		return
	}
	cycles := cycle - p.lastCycle
	var out int32
	for i := uint32(0); i < cycles; i++ {
		p.channels[0].execCycle()
		p.channels[1].execCycle()
		p.channels[2].execCycle()
		p.noise.execCycle()

		if p.envelope.execCycle() {
			p.refreshEnvelopeVolumes()
		}

		for c := range p.channels {
			toneGate := p.channels[c].outputBit | p.channels[c].disabled
			noiseGate := p.noise.outputBit | p.channels[c].noiseDisabled
			if toneGate&noiseGate != 0 {
				p.channels[c].value = p.channels[c].volume
			} else {
				p.channels[c].value = 0
			}
			out += int32(p.channels[c].value)
		}
	}
	out /= int32(cycles)
	if out > 32767 {
		out = 32767
	}
	p.audioOut = out
	p.lastCycle = cycle
}

// MixSamples generates n stereo samples at the fixed 44.1kHz output rate,
// writing each to sink, and advances the audio-side cycle counter
// accordingly. warpMode true skips output entirely, matching real
// hardware behaviour of the frontend's audio callback under warp.
func (p *PSG) MixSamples(n int, sink AudioSink, warpMode bool) {
	if warpMode {
		return
	}
	p.audioLock.Lock()
	defer p.audioLock.Unlock()

	for i := 0; i < n; i++ {
		currentCycle := p.cycleCount >> cycleShift
		p.execRegisterChanges(currentCycle)
		p.execAudio(currentCycle)
		sink.WriteSample(int16(p.audioOut))
		p.cycleCount += p.cyclesPerSample
	}
	p.trimRegisterChanges()
	p.cycleCount -= p.lastCycle << cycleShift
	p.lastCycle = 0
	p.changes.newLogCycle = p.cycleCount >> cycleShift
	p.changes.updateLogCycle = true
}
