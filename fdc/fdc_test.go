package fdc

import (
	"encoding/binary"
	"testing"

	"github.com/pugo/oric8/drive"
)

type testIRQ struct {
	asserted int
	released int
}

func (t *testIRQ) IRQAssert()  { t.asserted++ }
func (t *testIRQ) IRQRelease() { t.released++ }

func buildTestDisk(t *testing.T) *drive.Disk {
	t.Helper()
	const sides, tracks, headerSize, bytesPerTrack = 1, 2, 256, 6400
	img := make([]byte, headerSize+sides*tracks*bytesPerTrack)
	copy(img, "MFM_DISK")
	binary.LittleEndian.PutUint32(img[8:], sides)
	binary.LittleEndian.PutUint32(img[12:], tracks)

	track := img[headerSize : headerSize+bytesPerTrack]
	pos := 10
	track[pos], track[pos+1], track[pos+2], track[pos+3] = 0xA1, 0xA1, 0xA1, 0xFE
	track[pos+4], track[pos+5], track[pos+6], track[pos+7] = 0, 0, 1, 1 // track,side,sector,size(256)
	dataMarkPos := pos + 4 + 4 + 7
	track[dataMarkPos] = 0xFB
	for i := 0; i < 256; i++ {
		track[dataMarkPos+1+i] = byte(i)
	}

	disk, err := drive.LoadImage(img)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	return disk
}

func newTestFDC(t *testing.T) (*FDC, *Glue, *drive.Drive, *testIRQ) {
	t.Helper()
	irq := &testIRQ{}
	glue := NewGlue(irq)
	d := drive.New()
	d.Insert(buildTestDisk(t), false)
	d.SetMotor(true)
	glue.AttachDrive(0, d)
	glue.WriteByte(RegGlueControl, 0x01) // interrupts enabled, drive 0, side 0
	f := New(glue)
	return f, glue, d, irq
}

func TestRestoreSeeksToTrackZero(t *testing.T) {
	f, _, d, _ := newTestFDC(t)
	d.SeekTo(10)
	f.WriteByte(RegStatusCommand, 0x03) // Restore
	if d.Track() != 0 {
		t.Fatalf("track = %d, want 0", d.Track())
	}
	if f.status&StatusBusy == 0 {
		t.Fatal("expected busy immediately after issuing command")
	}
}

func TestSeekMovesToDataRegisterTrack(t *testing.T) {
	f, _, d, _ := newTestFDC(t)
	f.WriteByte(RegData, 5)
	f.WriteByte(RegStatusCommand, 0x10) // Seek
	if d.Track() != 5 {
		t.Fatalf("track = %d, want 5", d.Track())
	}
}

func TestTypeICommandRaisesInterruptOnCompletion(t *testing.T) {
	f, _, _, irq := newTestFDC(t)
	f.WriteByte(RegStatusCommand, 0x03) // Restore
	f.Tick(typeICompletionDelay)
	if irq.asserted == 0 {
		t.Fatal("expected IRQ to be asserted once the Type I command completes")
	}
	if f.status&StatusBusy != 0 {
		t.Fatal("expected busy cleared after completion")
	}
}

func TestReadSectorReturnsSectorBytes(t *testing.T) {
	f, _, _, _ := newTestFDC(t)
	f.WriteByte(RegSector, 1)
	f.WriteByte(RegStatusCommand, 0x80) // Read Sector, single
	f.Tick(readSectorDRQDelay)

	if f.status&StatusDataRequest == 0 {
		t.Fatal("expected data request after initial delay")
	}
	for i := 0; i < 256; i++ {
		v := f.ReadByte(RegData)
		if v != byte(i) {
			t.Fatalf("byte %d = %d, want %d", i, v, byte(i))
		}
	}
	if f.CurrentOperation() != OpIdle {
		t.Fatalf("expected operation idle after full sector read, got %v", f.CurrentOperation())
	}
}

func TestReadSectorNotFoundSetsStatus(t *testing.T) {
	f, _, _, _ := newTestFDC(t)
	f.WriteByte(RegSector, 99)
	f.WriteByte(RegStatusCommand, 0x80)
	if f.status&StatusRecordNotFound == 0 {
		t.Fatal("expected RecordNotFound status for missing sector")
	}
}

func TestWriteSectorRejectsWhenWriteProtected(t *testing.T) {
	irq := &testIRQ{}
	glue := NewGlue(irq)
	d := drive.New()
	d.Insert(buildTestDisk(t), true)
	d.SetMotor(true)
	glue.AttachDrive(0, d)
	f := New(glue)

	f.WriteByte(RegSector, 1)
	f.WriteByte(RegStatusCommand, 0xA0) // Write Sector
	if f.status&StatusWriteProtect == 0 {
		t.Fatal("expected WriteProtect status")
	}
}

func TestWriteSectorRoundTrips(t *testing.T) {
	f, _, _, _ := newTestFDC(t)
	f.WriteByte(RegSector, 1)
	f.WriteByte(RegStatusCommand, 0xA0) // Write Sector
	f.Tick(writeSectorDRQDelay)

	for i := 0; i < 256; i++ {
		f.WriteByte(RegData, 0xAA)
	}
	if f.CurrentOperation() != OpIdle {
		t.Fatal("expected operation idle after full sector write")
	}

	f.WriteByte(RegSector, 1)
	f.WriteByte(RegStatusCommand, 0x80) // Read Sector back
	f.Tick(readSectorDRQDelay)
	if v := f.ReadByte(RegData); v != 0xAA {
		t.Fatalf("readback byte = %#x, want 0xAA", v)
	}
}

func TestForceInterruptClearsBusyImmediately(t *testing.T) {
	f, _, _, irq := newTestFDC(t)
	f.WriteByte(RegSector, 1)
	f.WriteByte(RegStatusCommand, 0xA0) // begin a Write Sector, now busy
	f.WriteByte(RegStatusCommand, 0xD0) // Force Interrupt
	if f.status != 0 {
		t.Fatalf("status = %#x after force interrupt, want 0", f.status)
	}
	if irq.asserted == 0 {
		t.Fatal("expected force interrupt to assert IRQ immediately")
	}
}

func TestGlueIRQStatusByte(t *testing.T) {
	f, glue, _, _ := newTestFDC(t)
	f.WriteByte(RegSector, 1)
	f.WriteByte(RegStatusCommand, 0x03) // Restore: schedules a completion IRQ
	f.Tick(typeICompletionDelay)

	if glue.ReadByte(RegGlueControl)&0x80 != 0 {
		t.Fatal("expected IRQ status bit 7 clear while an interrupt is pending")
	}
	f.ReadByte(RegStatusCommand) // reading status clears the pending interrupt
	if glue.ReadByte(RegGlueControl)&0x80 == 0 {
		t.Fatal("expected IRQ status bit 7 set once the interrupt is cleared")
	}
}

func TestReadAddressReturnsIDField(t *testing.T) {
	f, _, _, _ := newTestFDC(t)
	f.WriteByte(RegStatusCommand, 0xC0) // Read Address
	f.Tick(readSectorDRQDelay)

	track := f.ReadByte(RegData)
	side := f.ReadByte(RegData)
	sector := f.ReadByte(RegData)
	if track != 0 || side != 0 || sector != 1 {
		t.Fatalf("got track=%d side=%d sector=%d, want 0,0,1", track, side, sector)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	f, _, d, _ := newTestFDC(t)
	d.SeekTo(5)
	f.WriteByte(RegTrack, 5)
	f.WriteByte(RegSector, 3)

	s := f.Snapshot()

	other, _, _, _ := newTestFDC(t)
	other.Restore(s)

	if other.Status() != f.Status() {
		t.Fatal("restored status does not match the snapshot")
	}
	if got := other.ReadByte(RegTrack); got != 5 {
		t.Fatalf("restored track register = %d, want 5", got)
	}
}

func TestGlueSnapshotRestoreRoundTrip(t *testing.T) {
	_, glue, _, _ := newTestFDC(t)
	glue.WriteByte(RegGlueControl, 0x23) // interrupts enabled, BASIC ROM overlay, side 0, drive 1

	s := glue.Snapshot()

	other := NewGlue(&testIRQ{})
	other.Restore(s)

	if other.DiskROMEnabled() != glue.DiskROMEnabled() {
		t.Fatal("restored disk ROM enable does not match the snapshot")
	}
	if other.ActiveDrive() != nil {
		t.Fatal("restored glue should have no drives attached until AttachDrive is called again")
	}
}
