package machine

import (
	"github.com/pugo/oric8/cpu"
	"github.com/pugo/oric8/drive"
	"github.com/pugo/oric8/fdc"
	"github.com/pugo/oric8/memory"
	"github.com/pugo/oric8/psg"
	"github.com/pugo/oric8/tape"
	"github.com/pugo/oric8/via"
)

// State is the whole machine's gob-encodable state: every chip, the
// keyboard matrix and the scheduler's own run-state, grouped the way
// machine.cpp's save_snapshot/load_snapshot save and restore one
// sub-system at a time.
type State struct {
	CPU    cpu.State
	VIA    via.State
	PSG    psg.State
	Memory memory.State
	FDC    fdc.State
	Glue   fdc.GlueState
	Tape   tape.PlaybackState
	Drives [4]drive.State

	KeyRows [8]byte

	WarpMode        bool
	SoundPaused     bool
	SoundPauseCount int
}

// Snapshot captures the state of every chip and the scheduler itself.
func (m *Machine) Snapshot() State {
	s := State{
		CPU:    m.CPU.Snapshot(),
		VIA:    m.VIA.Snapshot(),
		PSG:    m.PSG.Snapshot(),
		Memory: m.Memory.Snapshot(),
		FDC:    m.FDC.Snapshot(),
		Glue:   m.Glue.Snapshot(),
		Tape:   m.Tape.Snapshot(),

		KeyRows: m.keyRows,

		WarpMode:        m.warpMode,
		SoundPaused:     m.soundPaused,
		SoundPauseCount: m.soundPauseCount,
	}
	for i, d := range m.Drives {
		s.Drives[i] = d.Snapshot()
	}
	return s
}

// Restore puts every chip and the scheduler back into the state
// previously captured by Snapshot. Restoring the VIA and the glue
// register re-derives the aggregate IRQ line through their own IRQLine
// callbacks; the keyboard sense line is recomputed explicitly
// afterwards, since it depends on both the VIA and PSG state together.
func (m *Machine) Restore(s State) {
	m.CPU.Restore(s.CPU)
	m.VIA.Restore(s.VIA)
	m.PSG.Restore(s.PSG)
	m.Memory.Restore(s.Memory)
	m.FDC.Restore(s.FDC)
	m.Glue.Restore(s.Glue)
	m.Tape.Restore(s.Tape)

	for i := range m.Drives {
		m.Drives[i].RestoreSnapshot(s.Drives[i])
	}

	m.keyRows = s.KeyRows

	m.warpMode = s.WarpMode
	m.soundPaused = s.SoundPaused
	m.soundPauseCount = s.SoundPauseCount

	m.updateKeyOutput()
}
