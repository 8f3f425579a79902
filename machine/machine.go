// Package machine wires the CPU, VIA, PSG, ULA, disk controller and tape
// transport into a single cycle-stepped Oric: it owns the shared address
// space and the per-cycle scheduler that keeps every chip in lockstep.
package machine

import (
	"time"

	"github.com/pugo/oric8/cpu"
	"github.com/pugo/oric8/drive"
	"github.com/pugo/oric8/environment"
	"github.com/pugo/oric8/fdc"
	"github.com/pugo/oric8/memory"
	"github.com/pugo/oric8/notifications"
	"github.com/pugo/oric8/psg"
	"github.com/pugo/oric8/tape"
	"github.com/pugo/oric8/ula"
	"github.com/pugo/oric8/via"
)

const (
	cyclesPerRaster = 64
	frameInterval   = 20 * time.Millisecond

	// soundPauseTarget is the number of completed frames Run counts after
	// New or Reset before SoundPaused starts reporting false.
	soundPauseTarget = 1000
)

// FramePresenter is the display collaborator: Present pushes one
// completed frame's pixels and reports false once the UI wants the
// emulator to stop (its window closed, say).
type FramePresenter interface {
	Present(pixels []byte) bool
}

// irqLine wire-ORs the VIA and FDC's independent interrupt sources onto
// the CPU's single level-sensitive IRQ input: only when neither source
// is asserting does the line actually release.
type irqLine struct {
	cpu                      *cpu.CPU
	viaAsserted, fdcAsserted bool
}

func (l *irqLine) setVIA(asserted bool) {
	l.viaAsserted = asserted
	l.update()
}

func (l *irqLine) setFDC(asserted bool) {
	l.fdcAsserted = asserted
	l.update()
}

func (l *irqLine) update() {
	if l.viaAsserted || l.fdcAsserted {
		l.cpu.IRQAssert()
	} else {
		l.cpu.IRQRelease()
	}
}

type viaIRQAdapter struct{ line *irqLine }

func (a viaIRQAdapter) IRQAssert()  { a.line.setVIA(true) }
func (a viaIRQAdapter) IRQRelease() { a.line.setVIA(false) }

type fdcIRQAdapter struct{ line *irqLine }

func (a fdcIRQAdapter) IRQAssert()  { a.line.setFDC(true) }
func (a fdcIRQAdapter) IRQRelease() { a.line.setFDC(false) }

// Machine is a complete Oric: every chip, the flat address space wiring
// them to the CPU, and the scheduler that steps them all in lockstep.
type Machine struct {
	CPU    *cpu.CPU
	VIA    *via.VIA
	PSG    *psg.PSG
	ULA    *ula.ULA
	FDC    *fdc.FDC
	Glue   *fdc.Glue
	Tape   *tape.Tape
	Memory *memory.Memory
	Bus    *Bus

	Drives [4]*drive.Drive

	irq irqLine

	keyRows [8]byte

	warpMode bool

	soundPaused     bool
	soundPauseCount int

	frameDeadline time.Time

	notifier notifications.Notify
}

// New builds a complete, wired-together Oric with mem as its RAM/ROM
// address space. The returned Machine is reset and ready to run.
func New(mem *memory.Memory) *Machine {
	m := &Machine{Memory: mem, soundPaused: true}

	m.VIA = via.New(viaIRQAdapter{&m.irq})
	m.Glue = fdc.NewGlue(fdcIRQAdapter{&m.irq})
	m.FDC = fdc.New(m.Glue)
	m.PSG = psg.New()
	m.Tape = tape.New(m.VIA)

	for i := range m.Drives {
		d := drive.New()
		m.Drives[i] = d
		m.Glue.AttachDrive(i, d)
	}

	m.Bus = NewBus(mem, m.VIA, m.FDC, m.Glue)
	m.CPU = cpu.NewCPU(m.Bus)
	m.irq.cpu = m.CPU

	m.ULA = ula.New(m.Bus)

	m.VIA.ORBChanged = m.onORBChanged
	m.VIA.CA2Changed = func(level bool) { m.PSG.SetBC1(level) }
	m.VIA.CB2Changed = func(level bool) { m.PSG.SetBDIR(level) }
	m.VIA.PSGChanged = func() { m.PSG.Update(m.VIA.ORA(), m.warpMode) }

	return m
}

// ApplyEnvironment randomizes RAM and CPU register power-on contents when
// env's RandomState preference is enabled, rather than the all-zero state
// New and Reset otherwise leave them in. Called once at startup; env may
// be nil, in which case nothing changes.
func (m *Machine) ApplyEnvironment(env *environment.Environment) {
	if env == nil || env.Prefs == nil {
		return
	}
	on, _ := env.Prefs.RandomState.Get().(bool)
	if !on {
		return
	}
	m.Memory.Randomize(env.Random)
	m.CPU.RandomizeRegisters(env.Random)
}

// Reset returns every chip to its power-on state, except for loaded ROM,
// disk and tape images, which survive.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.VIA.Reset()
	m.PSG.Reset()
	m.FDC.Reset()
	m.Tape.Reset()
	m.keyRows = [8]byte{}
	m.soundPaused = true
	m.soundPauseCount = 0
}

// WarpMode reports whether the run loop is currently skipping frame
// pacing and audio output in favour of running as fast as possible.
func (m *Machine) WarpMode() bool { return m.warpMode }

// SetWarpMode enables or disables warp mode.
func (m *Machine) SetWarpMode(on bool) {
	m.warpMode = on
	if on {
		m.Notify(notifications.NotifyWarpModeOn)
	} else {
		m.Notify(notifications.NotifyWarpModeOff)
	}
}

// SetNotifier attaches a notifications.Notify sink (typically a status-bar
// collaborator) that is told about presentation-relevant events: tape
// motor state, warp mode, disk changes and snapshot save/load. n may be
// nil, in which case notifications are silently dropped.
func (m *Machine) SetNotifier(n notifications.Notify) { m.notifier = n }

// Notify forwards notice to the attached notifier, if any. Exported so
// collaborators outside this package (snapshot) can raise notices too.
func (m *Machine) Notify(notice notifications.Notice) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(notice)
}

// SoundPaused reports whether the audio collaborator should currently
// hold its output muted (during the startup settle period).
func (m *Machine) SoundPaused() bool { return m.soundPaused }

// InsertDisk mounts disk into drive n (0-3) and spins its motor up.
func (m *Machine) InsertDisk(n int, disk *drive.Disk, writeProtect bool) {
	d := m.Drives[n&3]
	d.Insert(disk, writeProtect)
	d.SetMotor(true)
	m.Notify(notifications.NotifyDiskChanged)
}

// EjectDisk stops drive n's motor and removes its disk.
func (m *Machine) EjectDisk(n int) {
	d := m.Drives[n&3]
	d.SetMotor(false)
	d.Eject()
	m.Notify(notifications.NotifyDiskChanged)
}

// LoadTape replaces the loaded tape image.
func (m *Machine) LoadTape(data []byte) {
	m.Tape.Load(data)
}

// KeyDown marks the key at (row, col) of the 64-key matrix as pressed
// and refreshes the VIA's keyboard sense line.
func (m *Machine) KeyDown(row, col int) {
	m.keyRows[row&7] |= 1 << uint(col&7)
	m.updateKeyOutput()
}

// KeyUp marks the key at (row, col) as released.
func (m *Machine) KeyUp(row, col int) {
	m.keyRows[row&7] &^= 1 << uint(col&7)
	m.updateKeyOutput()
}

// updateKeyOutput recomputes the VIA's port B bit 3, the keyboard sense
// line: the currently selected row comes from the VIA's own port B
// output (bits 0-2), gated by the PSG's ENABLE register bit 0x40, which
// the real hardware uses to read port A's data direction.
func (m *Machine) updateKeyOutput() {
	row := m.VIA.ORB() & 0x07
	if m.PSG.Register(psg.RegEnable)&0x40 == 0 {
		m.VIA.SetIRBBit(3, false)
		return
	}
	columnMask := m.PSG.Register(psg.RegIOPortA) ^ 0xFF
	m.VIA.SetIRBBit(3, m.keyRows[row]&columnMask != 0)
}

// onORBChanged is the VIA's port B output observer: bit 6 is the tape
// motor relay.
func (m *Machine) onORBChanged(orb byte) {
	motorOn := orb&0x40 != 0
	if motorOn != m.Tape.MotorRunning() {
		m.Tape.MotorOn(motorOn)
		if motorOn {
			m.Notify(notifications.NotifyTapeMotorOn)
		} else {
			m.Notify(notifications.NotifyTapeMotorOff)
		}
	}
}

// tickCycle advances every cycle-stepped chip but the CPU by one bus
// cycle, in the order the hardware's shared clock actually reaches them:
// tape, then VIA, then PSG, then the disk controller's deferred timers.
func (m *Machine) tickCycle() {
	m.Tape.Tick()
	m.VIA.Tick()
	m.PSG.Tick(1)
	m.FDC.Tick(1)
}

// Step executes a single CPU instruction (or serviced interrupt),
// ticking every other cycle-stepped chip alongside it, and returns the
// number of bus cycles it consumed. A monitor's "s" command steps one
// instruction at a time this way, outside of Run's raster pacing.
func (m *Machine) Step() int {
	cycles := m.CPU.Step()
	for i := 0; i < cycles; i++ {
		m.tickCycle()
	}
	m.updateKeyOutput()
	return cycles
}

// Run executes instructions until the CPU hits a BRK with a monitor
// attached, or display reports the UI has closed. display may be nil to
// run headless (as a test harness does).
func (m *Machine) Run(display FramePresenter) {
	rasterBudget := cyclesPerRaster

	for !m.CPU.BreakRequested() {
		cycles := m.Step()

		rasterBudget -= cycles
		if rasterBudget > 0 {
			continue
		}
		rasterBudget += cyclesPerRaster

		if !m.ULA.PaintRaster(m.warpMode) {
			continue
		}

		if m.soundPaused {
			m.soundPauseCount++
			if m.soundPauseCount > soundPauseTarget {
				m.soundPaused = false
			}
		}

		if display != nil && !display.Present(m.ULA.Pixels()) {
			return
		}
		if !m.warpMode {
			m.paceFrame()
		}
	}
}

// paceFrame sleeps, if necessary, so that frames are presented no faster
// than one every 20ms. If the deadline has already passed (a slow host,
// or the previous frame skipped), it is reset to now rather than trying
// to catch up.
func (m *Machine) paceFrame() {
	now := time.Now()
	if m.frameDeadline.IsZero() || now.After(m.frameDeadline) {
		m.frameDeadline = now.Add(frameInterval)
		return
	}
	time.Sleep(m.frameDeadline.Sub(now))
	m.frameDeadline = m.frameDeadline.Add(frameInterval)
}
