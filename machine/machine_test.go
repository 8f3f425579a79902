package machine

import (
	"testing"

	"github.com/pugo/oric8/assert"
	"github.com/pugo/oric8/environment"
	"github.com/pugo/oric8/memory"
	"github.com/pugo/oric8/psg"
	"github.com/pugo/oric8/via"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	return New(memory.New())
}

func TestBusRoutesVIAWindow(t *testing.T) {
	m := newTestMachine(t)
	m.Bus.WriteByte(0x0300+via.RegORB, 0x42)
	if got := m.VIA.ORB(); got != 0x42 {
		t.Fatalf("VIA ORB = %#x, want 0x42", got)
	}
}

func TestBusRoutesFDCWindow(t *testing.T) {
	m := newTestMachine(t)
	m.Bus.WriteByte(0x0310+2, 0x07) // sector register
	if got := m.Bus.ReadByte(0x0310 + 2); got != 0x07 {
		t.Fatalf("FDC sector register = %#x, want 0x07", got)
	}
}

func TestBusRoutesMemoryElsewhere(t *testing.T) {
	m := newTestMachine(t)
	m.Bus.WriteByte(0x0200, 0x99)
	if got := m.Bus.ReadByte(0x0200); got != 0x99 {
		t.Fatalf("RAM byte = %#x, want 0x99", got)
	}
}

func TestGlueControlWriteEnablesDiskROM(t *testing.T) {
	m := newTestMachine(t)
	m.Bus.WriteByte(0x0314, 0x00) // bit 7 clear -> disk ROM enabled (inverted)
	if !m.Memory.DiskROMEnabled() {
		t.Fatal("expected disk ROM overlay enabled after glue control write")
	}
	m.Bus.WriteByte(0x0314, 0x80)
	if m.Memory.DiskROMEnabled() {
		t.Fatal("expected disk ROM overlay disabled after setting bit 7")
	}
}

func TestTapeMotorFollowsVIAPortBBit6(t *testing.T) {
	m := newTestMachine(t)
	m.Tape.Load([]byte{0x16, 0x16, 0x16, 0x16, 0x24})
	m.VIA.WriteByte(via.RegORB, 0x40)
	if !m.Tape.MotorRunning() {
		t.Fatal("expected tape motor on after ORB bit 6 set")
	}
	m.VIA.WriteByte(via.RegORB, 0x00)
	if m.Tape.MotorRunning() {
		t.Fatal("expected tape motor off after ORB bit 6 cleared")
	}
}

func TestKeyboardSenseLineGatedByPSGEnable(t *testing.T) {
	m := newTestMachine(t)
	m.VIA.WriteByte(via.RegORB, 0x02) // select row 2

	m.KeyDown(2, 5)

	// PSG ENABLE bit 0x40 clear: sense line must read low regardless.
	if m.VIA.ReadByte(via.RegORB)&0x08 != 0 {
		t.Fatal("expected sense bit low while PSG ENABLE gate bit is clear")
	}

	// Latch ENABLE (register 7) via the PSG's VIA-mediated bus protocol:
	// CA2/CB2 are the 6522's manual-output pins wired to BC1/BDIR, driven
	// through PCR writes. BDIR+BC1 high latches the address register;
	// BDIR high/BC1 low then writes the data byte.
	m.VIA.WriteByte(via.RegPCR, 0xEE) // CA2 (BC1) high, CB2 (BDIR) high
	m.VIA.WriteByte(via.RegORA, psg.RegEnable)
	m.VIA.WriteByte(via.RegPCR, 0xEC) // CA2 (BC1) low, CB2 (BDIR) stays high
	m.VIA.WriteByte(via.RegORA, 0x40)
	m.VIA.WriteByte(via.RegPCR, 0xCC) // CB2 (BDIR) low: strobe done

	m.updateKeyOutput()
	if m.VIA.ReadByte(via.RegORB)&0x08 == 0 {
		t.Fatal("expected sense bit high once ENABLE gate and matching column are set")
	}
}

func TestInsertAndEjectDisk(t *testing.T) {
	m := newTestMachine(t)
	if m.Drives[0].Ready() {
		t.Fatal("expected drive not ready before a disk is inserted")
	}
	m.InsertDisk(0, nil, false)
	// Inserting a nil *Disk still spins the motor; Ready() requires both
	// a non-nil disk and a running motor, so it stays false here.
	if m.Drives[0].Ready() {
		t.Fatal("expected drive not ready with a nil disk image")
	}
	m.EjectDisk(0)
}

func TestRunStopsAtBRK(t *testing.T) {
	m := newTestMachine(t)
	m.Memory.WriteByte(0xFFFC, 0x00)
	m.Memory.WriteByte(0xFFFD, 0x10)
	m.Memory.WriteByte(0x1000, 0x00) // BRK
	m.Memory.WriteByte(0xFFFE, 0x00)
	m.Memory.WriteByte(0xFFFF, 0x20)
	m.CPU.Reset()

	m.Run(nil)

	if !m.CPU.BreakRequested() {
		t.Fatal("expected Run to stop with BreakRequested set after BRK")
	}
}

// presenterGoroutine is a FramePresenter that records which goroutine
// called Present, so a test can confirm Run never hands frame pacing off
// to a background goroutine of its own.
type presenterGoroutine struct {
	id   uint64
	seen bool
}

func (p *presenterGoroutine) Present(pixels []byte) bool {
	p.id = assert.GetGoRoutineID()
	p.seen = true
	return false // close immediately, Run should return
}

func TestRunCallsPresentOnCallingGoroutine(t *testing.T) {
	m := newTestMachine(t)
	m.Memory.WriteByte(0xFFFC, 0x00)
	m.Memory.WriteByte(0xFFFD, 0x10)
	// JMP $1000: spins forever, giving Run enough cycles to reach a full
	// frame (ULA.PaintRaster only returns true once every 312 rasters)
	// without ever hitting a BRK of its own.
	m.Memory.WriteByte(0x1000, 0x4C)
	m.Memory.WriteByte(0x1001, 0x00)
	m.Memory.WriteByte(0x1002, 0x10)
	m.CPU.Reset()

	want := assert.GetGoRoutineID()
	p := &presenterGoroutine{}
	m.Run(p)

	if !p.seen {
		t.Fatal("expected Present to be called")
	}
	if p.id != want {
		t.Fatalf("Present ran on goroutine %d, want %d (Run's caller)", p.id, want)
	}
}

func TestApplyEnvironmentLeavesStateAloneByDefault(t *testing.T) {
	m := newTestMachine(t)
	env, err := environment.NewEnvironment("", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.ApplyEnvironment(env)

	if m.Memory.ReadByte(0x0000) != 0 {
		t.Fatal("expected RAM to remain zeroed when RandomState is off")
	}
	if m.CPU.A != 0 || m.CPU.X != 0 || m.CPU.Y != 0 {
		t.Fatal("expected registers to remain at their Reset values when RandomState is off")
	}
}

func TestApplyEnvironmentRandomizesWhenEnabled(t *testing.T) {
	m := newTestMachine(t)
	env, err := environment.NewEnvironment("", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := env.Prefs.RandomState.Set(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.ApplyEnvironment(env)

	var nonZero bool
	for addr := 0; addr < 256; addr++ {
		if m.Memory.ReadByte(uint16(addr)) != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Fatal("expected at least one non-zero byte in randomized RAM")
	}
}

func TestStepAdvancesOneInstructionAtATime(t *testing.T) {
	m := newTestMachine(t)
	m.Memory.WriteByte(0x1000, 0xA9) // LDA #$55
	m.Memory.WriteByte(0x1001, 0x55)
	m.CPU.SetPC(0x1000)

	m.Step()

	if m.CPU.PCRegister() != 0x1002 {
		t.Fatalf("PC = %04X after one Step, want 1002", m.CPU.PCRegister())
	}
}
