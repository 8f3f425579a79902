package via

// State is the 6522's gob-encodable register and timer state. The irq
// collaborator and the ORBChanged/CA2Changed/CB2Changed/PSGChanged
// callback wiring are supplied fresh by the machine on restore.
type State struct {
	CA1, CA2   bool
	CA2DoPulse bool
	CB1, CB2   bool
	CB2DoPulse bool

	IRA, IRALatch byte
	ORA           byte
	DDRA          byte

	IRB, IRBLatch byte
	ORB           byte
	DDRB          byte

	T1LatchLow, T1LatchHigh byte
	T1Counter               uint16
	T1Run                   bool
	T1Reload                uint16

	T2LatchLow, T2LatchHigh byte
	T2Counter               uint16
	T2Run                   bool
	T2Reload                bool

	SR           byte
	SRRun        bool
	SRFirst      bool
	SRCounter    int
	SRTimer      byte
	SROutStarted bool
	SROutGapPend bool

	ACR, PCR byte
	IFR, IER byte
}

// Snapshot captures the VIA's current register and timer state.
func (v *VIA) Snapshot() State {
	return State{
		CA1: v.ca1, CA2: v.ca2, CA2DoPulse: v.ca2DoPulse,
		CB1: v.cb1, CB2: v.cb2, CB2DoPulse: v.cb2DoPulse,

		IRA: v.ira, IRALatch: v.iraLatch, ORA: v.ora, DDRA: v.ddra,
		IRB: v.irb, IRBLatch: v.irbLatch, ORB: v.orb, DDRB: v.ddrb,

		T1LatchLow: v.t1LatchLow, T1LatchHigh: v.t1LatchHigh,
		T1Counter: v.t1Counter, T1Run: v.t1Run, T1Reload: v.t1Reload,

		T2LatchLow: v.t2LatchLow, T2LatchHigh: v.t2LatchHigh,
		T2Counter: v.t2Counter, T2Run: v.t2Run, T2Reload: v.t2Reload,

		SR: v.sr, SRRun: v.srRun, SRFirst: v.srFirst, SRCounter: v.srCounter,
		SRTimer: v.srTimer, SROutStarted: v.srOutStarted, SROutGapPend: v.srOutGapPend,

		ACR: v.acr, PCR: v.pcr, IFR: v.ifr, IER: v.ier,
	}
}

// Restore puts the VIA into the state previously captured by Snapshot,
// and re-evaluates the aggregate IRQ line against the restored IFR/IER.
// It does not re-fire ORBChanged, CA2Changed, CB2Changed or PSGChanged;
// the machine is responsible for re-deriving any collaborator state
// (the PSG's latched register, the tape motor) that depends on them
// once every chip has been restored.
func (v *VIA) Restore(s State) {
	v.ca1, v.ca2, v.ca2DoPulse = s.CA1, s.CA2, s.CA2DoPulse
	v.cb1, v.cb2, v.cb2DoPulse = s.CB1, s.CB2, s.CB2DoPulse

	v.ira, v.iraLatch, v.ora, v.ddra = s.IRA, s.IRALatch, s.ORA, s.DDRA
	v.irb, v.irbLatch, v.orb, v.ddrb = s.IRB, s.IRBLatch, s.ORB, s.DDRB

	v.t1LatchLow, v.t1LatchHigh = s.T1LatchLow, s.T1LatchHigh
	v.t1Counter, v.t1Run, v.t1Reload = s.T1Counter, s.T1Run, s.T1Reload

	v.t2LatchLow, v.t2LatchHigh = s.T2LatchLow, s.T2LatchHigh
	v.t2Counter, v.t2Run, v.t2Reload = s.T2Counter, s.T2Run, s.T2Reload

	v.sr, v.srRun, v.srFirst, v.srCounter = s.SR, s.SRRun, s.SRFirst, s.SRCounter
	v.srTimer, v.srOutStarted, v.srOutGapPend = s.SRTimer, s.SROutStarted, s.SROutGapPend

	// IFR bit 7 is left clear so irqCheck sees the pending flags as new
	// and asserts the IRQ line (setting bit 7 again) when one is enabled.
	v.acr, v.pcr, v.ifr, v.ier = s.ACR, s.PCR, s.IFR&0x7F, s.IER
	v.irqCheck()
}
