// Package fdc implements the WD1793 floppy disk controller: command
// decode, the tagged current-operation state machine driving sector and
// track transfers, and the deferred IRQ/DRQ timing the real chip
// exposes through its status register.
package fdc

import "github.com/pugo/oric8/drive"

// Operation is the FDC's current tagged operation, driving how reads
// and writes of the data register behave.
type Operation int

const (
	OpIdle Operation = iota
	OpReadSector
	OpWriteSector
	OpReadAddress
	OpReadTrack
	OpWriteTrack
)

// FDC is a cycle-stepped WD1793.
type FDC struct {
	glue *Glue

	trackReg  byte
	sectorReg byte
	data      byte
	command   byte
	status    byte

	operation Operation
	sector    *drive.Sector
	offset    int
	multiple  bool

	addressBuf []byte
	trackBuf   []byte

	lastStepDirection int // +1 = in, -1 = out

	interruptCounter   int
	dataRequestCounter int
	deferredStatus     byte
	haveDeferredStatus bool
}

// New returns an FDC wired to glue for drive selection and interrupt
// delivery.
func New(glue *Glue) *FDC {
	f := &FDC{glue: glue, lastStepDirection: 1}
	f.Reset()
	return f
}

// Reset returns the FDC to its idle, powered-on state.
func (f *FDC) Reset() {
	f.trackReg = 0
	f.sectorReg = 0
	f.data = 0
	f.command = 0
	f.status = 0
	f.operation = OpIdle
	f.sector = nil
	f.offset = 0
	f.multiple = false
	f.addressBuf = nil
	f.trackBuf = nil
	f.interruptCounter = 0
	f.dataRequestCounter = 0
	f.haveDeferredStatus = false
}

// Tick advances the FDC's deferred IRQ/DRQ timers by cycles.
func (f *FDC) Tick(cycles int) {
	if f.interruptCounter > 0 {
		f.interruptCounter -= cycles
		if f.interruptCounter <= 0 {
			f.interruptCounter = 0
			if f.haveDeferredStatus {
				f.status = f.deferredStatus
				f.haveDeferredStatus = false
			}
			f.glue.RequestInterrupt()
		}
	}
	if f.dataRequestCounter > 0 {
		f.dataRequestCounter -= cycles
		if f.dataRequestCounter <= 0 {
			f.dataRequestCounter = 0
			f.status |= StatusDataRequest
			f.glue.RequestDRQ()
		}
	}
}

// ReadByte reads one of the WD1793's own four registers.
func (f *FDC) ReadByte(offset uint16) byte {
	switch offset {
	case RegStatusCommand:
		f.glue.ClearInterrupt()
		return f.status
	case RegTrack:
		return f.trackReg
	case RegSector:
		return f.sectorReg
	case RegData:
		return f.readData()
	}
	return 0
}

// WriteByte writes one of the WD1793's own four registers.
func (f *FDC) WriteByte(offset uint16, value byte) {
	switch offset {
	case RegStatusCommand:
		f.glue.ClearInterrupt()
		f.doCommand(value)
	case RegTrack:
		f.trackReg = value
	case RegSector:
		f.sectorReg = value
	case RegData:
		f.writeData(value)
	}
}

func (f *FDC) doCommand(command byte) {
	f.command = command
	d := f.glue.ActiveDrive()

	switch command & 0xE0 {
	case 0x00:
		if command&0x10 != 0 {
			f.seek(d)
		} else {
			f.restore(d)
		}
		if command&0x08 != 0 {
			f.status |= StatusHeadLoaded
		}
		f.scheduleTypeICompletion(d)

	case 0x20:
		f.step(d, f.lastStepDirection)
		f.scheduleTypeICompletion(d)

	case 0x40:
		f.lastStepDirection = 1
		f.step(d, 1)
		f.scheduleTypeICompletion(d)

	case 0x60:
		f.lastStepDirection = -1
		f.step(d, -1)
		f.scheduleTypeICompletion(d)

	case 0x80:
		f.beginReadSector(d, command)

	case 0xA0:
		f.beginWriteSector(d, command)

	case 0xC0:
		if command&0x10 != 0 {
			f.forceInterrupt()
		} else {
			f.beginReadAddress(d)
		}

	case 0xE0:
		if command&0x10 != 0 {
			f.beginWriteTrack(d)
		} else {
			f.beginReadTrack(d)
		}
	}
}

func (f *FDC) seek(d *drive.Drive) {
	f.operation = OpIdle
	f.status = StatusBusy
	if d == nil {
		f.status |= StatusNotReady
		return
	}
	d.SeekTo(int(f.data))
	f.trackReg = byte(d.Track())
}

func (f *FDC) restore(d *drive.Drive) {
	f.operation = OpIdle
	f.status = StatusBusy
	if d == nil {
		f.status |= StatusNotReady
		return
	}
	d.Restore()
	f.trackReg = 0
}

func (f *FDC) step(d *drive.Drive, direction int) {
	f.operation = OpIdle
	f.status = StatusBusy
	if d == nil {
		f.status |= StatusNotReady
		return
	}
	if direction > 0 {
		d.StepIn()
	} else {
		d.StepOut()
	}
	f.trackReg = byte(d.Track())
}

func (f *FDC) scheduleTypeICompletion(d *drive.Drive) {
	f.deferredStatus = f.status &^ StatusBusy
	f.haveDeferredStatus = true
	f.interruptCounter = typeICompletionDelay
}

func (f *FDC) beginReadSector(d *drive.Drive, command byte) {
	f.operation = OpReadSector
	f.multiple = command&0x10 != 0
	f.offset = 0
	f.status = StatusBusy
	if d == nil {
		f.finishWithError(StatusNotReady)
		return
	}
	sector, err := d.ReadSector(f.sectorReg)
	if err != nil {
		f.sector = nil
		f.finishWithError(StatusRecordNotFound)
		return
	}
	f.sector = sector
	f.dataRequestCounter = readSectorDRQDelay
}

func (f *FDC) beginWriteSector(d *drive.Drive, command byte) {
	f.operation = OpWriteSector
	f.multiple = command&0x10 != 0
	f.offset = 0
	f.status = StatusBusy
	if d == nil {
		f.finishWithError(StatusNotReady)
		return
	}
	if d.WriteProtected() {
		f.finishWithError(StatusWriteProtect)
		return
	}
	sector, err := d.ReadSector(f.sectorReg)
	if err != nil {
		f.sector = nil
		f.finishWithError(StatusRecordNotFound)
		return
	}
	f.sector = sector
	f.sector.Data = append([]byte(nil), sector.Data...)
	f.dataRequestCounter = writeSectorDRQDelay
}

func (f *FDC) beginReadAddress(d *drive.Drive) {
	f.operation = OpReadAddress
	f.offset = 0
	f.status = StatusBusy
	if d == nil {
		f.finishWithError(StatusNotReady)
		return
	}
	sector, err := d.ReadAddress()
	if err != nil {
		f.finishWithError(StatusRecordNotFound)
		return
	}
	f.addressBuf = []byte{sector.Track, sector.Side, sector.Number, sector.SizeCode, 0, 0}
	f.trackReg = sector.Track
	f.sectorReg = sector.Number
	f.dataRequestCounter = readSectorDRQDelay
}

func (f *FDC) beginReadTrack(d *drive.Drive) {
	f.operation = OpReadTrack
	f.offset = 0
	f.status = StatusBusy
	if d == nil {
		f.finishWithError(StatusNotReady)
		return
	}
	f.trackBuf = d.RawTrack()
	f.dataRequestCounter = readSectorDRQDelay
}

func (f *FDC) beginWriteTrack(d *drive.Drive) {
	f.operation = OpWriteTrack
	f.offset = 0
	f.status = StatusBusy
	if d == nil {
		f.finishWithError(StatusNotReady)
		return
	}
	if d.WriteProtected() {
		f.finishWithError(StatusWriteProtect)
		return
	}
	f.trackBuf = append([]byte(nil), d.RawTrack()...)
	f.dataRequestCounter = writeSectorDRQDelay
}

func (f *FDC) forceInterrupt() {
	f.operation = OpIdle
	f.status = 0
	f.interruptCounter = 0
	f.dataRequestCounter = 0
	f.haveDeferredStatus = false
	f.glue.RequestInterrupt()
}

// finishWithError ends the current operation immediately, without
// waiting for a data-request cadence, reporting extra in status.
func (f *FDC) finishWithError(extra byte) {
	f.operation = OpIdle
	f.status = extra
	f.deferredStatus = extra
	f.haveDeferredStatus = true
	f.interruptCounter = interruptDelayCycles
}

func (f *FDC) readData() byte {
	switch f.operation {
	case OpReadSector:
		if f.sector == nil {
			f.finishWithError(StatusRecordNotFound)
			return 0
		}
		v := f.sector.Data[f.offset]
		f.offset++
		f.status &^= StatusDataRequest
		f.glue.ClearDRQ()
		if f.offset >= len(f.sector.Data) {
			f.advanceOrComplete()
		}
		return v

	case OpReadAddress:
		if f.offset >= len(f.addressBuf) {
			return 0
		}
		v := f.addressBuf[f.offset]
		f.offset++
		f.status &^= StatusDataRequest
		f.glue.ClearDRQ()
		if f.offset >= len(f.addressBuf) {
			f.finishWithError(0)
		}
		return v

	case OpReadTrack:
		if f.offset >= len(f.trackBuf) {
			return 0
		}
		v := f.trackBuf[f.offset]
		f.offset++
		f.status &^= StatusDataRequest
		f.glue.ClearDRQ()
		if f.offset >= len(f.trackBuf) {
			f.finishWithError(0)
		}
		return v
	}
	return f.data
}

func (f *FDC) writeData(value byte) {
	f.data = value

	switch f.operation {
	case OpWriteSector:
		if f.sector == nil {
			f.finishWithError(StatusRecordNotFound)
			return
		}
		f.sector.Data[f.offset] = value
		f.offset++
		f.status &^= StatusDataRequest
		f.glue.ClearDRQ()
		if f.offset >= len(f.sector.Data) {
			d := f.glue.ActiveDrive()
			if d != nil {
				if err := d.WriteSector(f.sectorReg, f.sector.Data); err != nil {
					f.finishWithError(StatusWriteFault)
					return
				}
			}
			f.advanceOrComplete()
		}

	case OpWriteTrack:
		if f.offset >= len(f.trackBuf) {
			f.finishWithError(0)
			return
		}
		f.trackBuf[f.offset] = value
		f.offset++
		f.status &^= StatusDataRequest
		f.glue.ClearDRQ()
		if f.offset >= len(f.trackBuf) {
			f.finishWithError(0)
		}
	}
}

// advanceOrComplete moves to the next sector under multiple-sector mode,
// or schedules the operation's completion interrupt.
func (f *FDC) advanceOrComplete() {
	if f.multiple {
		f.sectorReg++
		d := f.glue.ActiveDrive()
		if d != nil {
			if sector, err := d.ReadSector(f.sectorReg); err == nil {
				f.sector = sector
				f.offset = 0
				f.dataRequestCounter = readSectorDRQDelay
				return
			}
		}
	}
	if f.operation == OpReadSector {
		f.finishWithError(recordTypeBit(f.sector))
		return
	}
	f.finishWithError(0)
}

// recordTypeBit reports the completion status's StatusRecordType bit for
// a finished read: set when the sector just read carried a deleted-data
// address mark (0xF8) rather than the normal one (0xFB).
func recordTypeBit(sector *drive.Sector) byte {
	if sector != nil && sector.Deleted {
		return StatusRecordType
	}
	return 0
}

// Status returns the FDC's current status byte, for inspection by a
// monitor/debugger collaborator without side effects.
func (f *FDC) Status() byte { return f.status }

// CurrentOperation returns the FDC's current tagged operation.
func (f *FDC) CurrentOperation() Operation { return f.operation }
