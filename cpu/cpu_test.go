package cpu

import (
	"testing"

	"github.com/pugo/oric8/random"
)

type testBus struct {
	mem [0x10000]byte
}

func (b *testBus) ReadByte(addr uint16) byte         { return b.mem[addr] }
func (b *testBus) WriteByte(addr uint16, value byte) { b.mem[addr] = value }

func newTestCPU(resetVector uint16, program ...byte) (*CPU, *testBus) {
	bus := &testBus{}
	bus.mem[vectorReset] = byte(resetVector)
	bus.mem[vectorReset+1] = byte(resetVector >> 8)
	for i, b := range program {
		bus.mem[int(resetVector)+i] = b
	}
	return NewCPU(bus), bus
}

func TestResetLoadsPCFromVector(t *testing.T) {
	c, _ := newTestCPU(0x1000)
	if c.PC != 0x1000 {
		t.Fatalf("PC = %04X, want 1000", c.PC)
	}
	if c.S != 0xFD {
		t.Fatalf("S = %02X, want FD", c.S)
	}
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, _ := newTestCPU(0x1000, 0xA9, 0x00, 0xA9, 0x80, 0xA9, 0x7F)
	c.Step()
	if !c.P.Zero || c.P.Sign {
		t.Fatalf("LDA #$00: Z=%v S=%v, want Z=true S=false", c.P.Zero, c.P.Sign)
	}
	c.Step()
	if c.P.Zero || !c.P.Sign {
		t.Fatalf("LDA #$80: Z=%v S=%v, want Z=false S=true", c.P.Zero, c.P.Sign)
	}
	c.Step()
	if c.A != 0x7F || c.P.Zero || c.P.Sign {
		t.Fatalf("LDA #$7F: A=%02X Z=%v S=%v", c.A, c.P.Zero, c.P.Sign)
	}
}

func TestSTAAbsolute(t *testing.T) {
	c, bus := newTestCPU(0x1000, 0xA9, 0x42, 0x8D, 0x00, 0x30)
	c.Step()
	cycles := c.Step()
	if bus.mem[0x3000] != 0x42 {
		t.Fatalf("mem[3000] = %02X, want 42", bus.mem[0x3000])
	}
	if cycles != 4 {
		t.Fatalf("STA abs cycles = %d, want 4", cycles)
	}
}

func TestAbsoluteXPageCrossExtraCycle(t *testing.T) {
	c, bus := newTestCPU(0x1000, 0xBD, 0xFF, 0x30)
	bus.mem[0x3100] = 0x99 // base $30FF + X(1) = $3100, crosses page
	c.X = 1
	cycles := c.Step()
	if cycles != 5 {
		t.Fatalf("LDA abs,X page-cross cycles = %d, want 5", cycles)
	}
	if c.A != 0x99 {
		t.Fatalf("A = %02X, want 99", c.A)
	}
}

func TestADCBinaryOverflowAndCarry(t *testing.T) {
	c, _ := newTestCPU(0x1000, 0xA9, 0x7F, 0x69, 0x01)
	c.Step()
	c.Step()
	if c.A != 0x80 {
		t.Fatalf("A = %02X, want 80", c.A)
	}
	if !c.P.Overflow {
		t.Fatal("expected overflow set for 7F+01")
	}
	if c.P.Carry {
		t.Fatal("expected carry clear")
	}
}

func TestADCDecimalMode(t *testing.T) {
	c, _ := newTestCPU(0x1000, 0xF8, 0xA9, 0x09, 0x69, 0x01)
	c.Step() // SED
	c.Step() // LDA #$09
	c.Step() // ADC #$01 -> BCD 10
	if c.A != 0x10 {
		t.Fatalf("A = %02X, want 10 (BCD)", c.A)
	}
	if c.P.Carry {
		t.Fatal("expected no decimal carry for 09+01")
	}
}

func TestSBCDecimalMode(t *testing.T) {
	c, _ := newTestCPU(0x1000, 0xF8, 0x38, 0xA9, 0x10, 0xE9, 0x01)
	c.Step() // SED
	c.Step() // SEC (borrow clear)
	c.Step() // LDA #$10
	c.Step() // SBC #$01 -> BCD 09
	if c.A != 0x09 {
		t.Fatalf("A = %02X, want 09 (BCD)", c.A)
	}
}

func TestBranchTaken(t *testing.T) {
	c, _ := newTestCPU(0x1000, 0xA9, 0x00, 0xF0, 0x02, 0xA9, 0xFF, 0xA9, 0x55)
	c.Step() // LDA #$00 -> Z set
	cycles := c.Step()
	if c.PC != 0x1006 {
		t.Fatalf("PC after BEQ = %04X, want 1006", c.PC)
	}
	if cycles != 3 {
		t.Fatalf("branch-taken cycles = %d, want 3", cycles)
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, bus := newTestCPU(0x1000, 0x6C, 0xFF, 0x30)
	bus.mem[0x30FF] = 0x34
	bus.mem[0x3000] = 0x12 // high byte wrongly fetched from $3000, not $3100
	bus.mem[0x3100] = 0xFF
	c.Step()
	if c.PC != 0x1234 {
		t.Fatalf("PC = %04X, want 1234 (page-wrap bug)", c.PC)
	}
}

func TestStackPushPull(t *testing.T) {
	c, _ := newTestCPU(0x1000, 0xA9, 0x77, 0x48, 0xA9, 0x00, 0x68)
	c.Step() // LDA #$77
	c.Step() // PHA
	c.Step() // LDA #$00
	c.Step() // PLA
	if c.A != 0x77 {
		t.Fatalf("A = %02X, want 77", c.A)
	}
}

func TestIRQHonoredWhenUnmasked(t *testing.T) {
	c, bus := newTestCPU(0x1000, 0x58, 0xEA, 0xEA)
	bus.mem[vectorIRQ] = 0x00
	bus.mem[vectorIRQ+1] = 0x40
	c.Step() // CLI
	c.IRQAssert()
	c.Step()
	if c.PC != 0x4000 {
		t.Fatalf("PC after IRQ = %04X, want 4000", c.PC)
	}
	if c.P.InterruptDisable != true {
		t.Fatal("expected I flag set after servicing IRQ")
	}
}

func TestIRQMaskedByInterruptDisable(t *testing.T) {
	c, bus := newTestCPU(0x1000, 0x78, 0xEA)
	bus.mem[vectorIRQ] = 0x00
	bus.mem[vectorIRQ+1] = 0x40
	c.Step() // SEI
	c.IRQAssert()
	c.Step() // NOP, IRQ stays pending but masked
	if c.PC == 0x4000 {
		t.Fatal("IRQ should not have been serviced while I flag set")
	}
}

func TestNMIEdgeTriggeredOnce(t *testing.T) {
	c, bus := newTestCPU(0x1000, 0xEA, 0xEA, 0xEA)
	bus.mem[vectorNMI] = 0x00
	bus.mem[vectorNMI+1] = 0x50
	c.NMI()
	c.Step()
	if c.PC != 0x5000 {
		t.Fatalf("PC after NMI = %04X, want 5000", c.PC)
	}
}

func TestBRKSetsBreakFlagAndVector(t *testing.T) {
	c, bus := newTestCPU(0x1000, 0x00)
	bus.mem[vectorIRQ] = 0x00
	bus.mem[vectorIRQ+1] = 0x60
	c.Step()
	if c.PC != 0x6000 {
		t.Fatalf("PC after BRK = %04X, want 6000", c.PC)
	}
	if !c.BreakRequested() {
		t.Fatal("expected BreakRequested true after BRK")
	}
	c.ClearBreak()
	if c.BreakRequested() {
		t.Fatal("expected BreakRequested false after ClearBreak")
	}
}

func TestCompareFlags(t *testing.T) {
	c, _ := newTestCPU(0x1000, 0xA9, 0x10, 0xC9, 0x10)
	c.Step()
	c.Step()
	if !c.P.Zero || !c.P.Carry {
		t.Fatalf("CMP equal: Z=%v C=%v, want both true", c.P.Zero, c.P.Carry)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	c, _ := newTestCPU(0x1000, 0xA9, 0x42, 0xAA) // LDA #$42; TAX
	c.Step()
	c.Step()

	s := c.Snapshot()

	other, _ := newTestCPU(0x1000, 0xEA) // unrelated program, different bus
	other.Restore(s)

	if other.A != c.A || other.X != c.X || other.PC != c.PC {
		t.Fatalf("restored A/X/PC = %02X/%02X/%04X, want %02X/%02X/%04X",
			other.A, other.X, other.PC, c.A, c.X, c.PC)
	}
}

func TestDisassembleImmediateAndAbsolute(t *testing.T) {
	_, bus := newTestCPU(0x1000, 0xA9, 0x42, 0x8D, 0x00, 0xC0)
	d := Disassemble(bus.ReadByte, 0x1000)
	if d.Text != "LDA #$42" || len(d.Bytes) != 2 {
		t.Fatalf("got %q (%d bytes), want %q (2 bytes)", d.Text, len(d.Bytes), "LDA #$42")
	}
	d = Disassemble(bus.ReadByte, 0x1002)
	if d.Text != "STA $C000" || len(d.Bytes) != 3 {
		t.Fatalf("got %q (%d bytes), want %q (3 bytes)", d.Text, len(d.Bytes), "STA $C000")
	}
}

func TestDisassembleRelativeBranchResolvesTarget(t *testing.T) {
	_, bus := newTestCPU(0x1000, 0xF0, 0x05) // BEQ +5
	d := Disassemble(bus.ReadByte, 0x1000)
	if d.Text != "BEQ $1007" {
		t.Fatalf("got %q, want %q", d.Text, "BEQ $1007")
	}
}

func TestDisassembleIllegalOpcode(t *testing.T) {
	_, bus := newTestCPU(0x1000, 0x02)
	d := Disassemble(bus.ReadByte, 0x1000)
	if d.Text != ".byte $02" || len(d.Bytes) != 1 {
		t.Fatalf("got %q (%d bytes), want %q (1 byte)", d.Text, len(d.Bytes), ".byte $02")
	}
}

func TestRandomizeRegistersOverwritesAXYS(t *testing.T) {
	c, _ := newTestCPU(0x1000)
	a, x, y, s := c.A, c.X, c.Y, c.S
	pc := c.PC

	c.RandomizeRegisters(random.NewRandom(nil))

	if c.A == a && c.X == x && c.Y == y && c.S == s {
		t.Fatal("expected at least one register to differ from its post-Reset value")
	}
	if c.PC != pc {
		t.Fatalf("PC = %#04x, want unchanged %#04x", c.PC, pc)
	}
}
