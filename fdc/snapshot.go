package fdc

import "github.com/pugo/oric8/drive"

// SectorState is a value copy of the sector the FDC's current operation
// is transferring, if any.
type SectorState struct {
	Track, Side, Number, SizeCode byte
	Deleted                       bool
	Data                          []byte
}

// State is the WD1793's gob-encodable command and timing state. The
// drive it is currently addressing is identified by the Glue's own
// state, not duplicated here.
type State struct {
	TrackReg, SectorReg, Data, Command, Status byte

	Operation Operation
	HasSector bool
	Sector    SectorState
	Offset    int
	Multiple  bool

	AddressBuf []byte
	TrackBuf   []byte

	LastStepDirection int

	InterruptCounter   int
	DataRequestCounter int
	DeferredStatus     byte
	HaveDeferredStatus bool
}

// Snapshot captures the FDC's current command and timing state. A
// transfer caught mid-sector is captured as a detached copy of the
// sector being read or written; restoring mid-write loses the link back
// into the disk image's track buffer, so a write in progress will not
// resume correctly after a restore (an FDC reset, which any real
// interruption of a transfer would also require, avoids the case).
func (f *FDC) Snapshot() State {
	s := State{
		TrackReg: f.trackReg, SectorReg: f.sectorReg, Data: f.data,
		Command: f.command, Status: f.status,

		Operation: f.operation, Offset: f.offset, Multiple: f.multiple,

		LastStepDirection: f.lastStepDirection,

		InterruptCounter:   f.interruptCounter,
		DataRequestCounter: f.dataRequestCounter,
		DeferredStatus:     f.deferredStatus,
		HaveDeferredStatus: f.haveDeferredStatus,
	}
	if f.sector != nil {
		s.HasSector = true
		s.Sector = SectorState{
			Track: f.sector.Track, Side: f.sector.Side,
			Number: f.sector.Number, SizeCode: f.sector.SizeCode,
			Deleted: f.sector.Deleted,
			Data:    append([]byte(nil), f.sector.Data...),
		}
	}
	if f.addressBuf != nil {
		s.AddressBuf = append([]byte(nil), f.addressBuf...)
	}
	if f.trackBuf != nil {
		s.TrackBuf = append([]byte(nil), f.trackBuf...)
	}
	return s
}

// Restore puts the FDC into the state previously captured by Snapshot.
func (f *FDC) Restore(s State) {
	f.trackReg, f.sectorReg, f.data = s.TrackReg, s.SectorReg, s.Data
	f.command, f.status = s.Command, s.Status

	f.operation, f.offset, f.multiple = s.Operation, s.Offset, s.Multiple

	f.lastStepDirection = s.LastStepDirection

	f.interruptCounter = s.InterruptCounter
	f.dataRequestCounter = s.DataRequestCounter
	f.deferredStatus = s.DeferredStatus
	f.haveDeferredStatus = s.HaveDeferredStatus

	f.sector = nil
	if s.HasSector {
		f.sector = &drive.Sector{
			Track: s.Sector.Track, Side: s.Sector.Side,
			Number: s.Sector.Number, SizeCode: s.Sector.SizeCode,
			Deleted: s.Sector.Deleted, Data: s.Sector.Data,
		}
	}
	f.addressBuf = s.AddressBuf
	f.trackBuf = s.TrackBuf
}

// GlueState is the disk interface glue register's gob-encodable state.
type GlueState struct {
	DriveNumber int
	Side        int

	InterruptsEnabled bool
	BasicROMOverlay   bool
	DiskROMEnable     bool
	Density           bool
	FastClock         bool

	IRQPending bool
	DRQPending bool
}

// Snapshot captures the glue register's current state. The attached
// drives themselves are snapshotted separately, through drive.Drive.
func (g *Glue) Snapshot() GlueState {
	return GlueState{
		DriveNumber: g.driveNumber, Side: g.side,

		InterruptsEnabled: g.interruptsEnabled,
		BasicROMOverlay:   g.basicROMOverlay,
		DiskROMEnable:     g.diskROMEnable,
		Density:           g.density,
		FastClock:         g.fastClock,

		IRQPending: g.irqPending,
		DRQPending: g.drqPending,
	}
}

// Restore puts the glue register into the state previously captured by
// Snapshot, and re-evaluates the IRQ line against the restored pending
// flag and enable bit.
func (g *Glue) Restore(s GlueState) {
	g.driveNumber, g.side = s.DriveNumber, s.Side

	g.interruptsEnabled = s.InterruptsEnabled
	g.basicROMOverlay = s.BasicROMOverlay
	g.diskROMEnable = s.DiskROMEnable
	g.density = s.Density
	g.fastClock = s.FastClock

	g.irqPending = s.IRQPending
	g.drqPending = s.DRQPending

	if g.interruptsEnabled && g.irqPending {
		g.irq.IRQAssert()
	} else {
		g.irq.IRQRelease()
	}
}
