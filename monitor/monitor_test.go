package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pugo/oric8/machine"
	"github.com/pugo/oric8/memory"
)

func newTestMachine(t *testing.T) *machine.Machine {
	t.Helper()
	return machine.New(memory.New())
}

func TestGoWithoutBreakpointReturnsControlToRunLoop(t *testing.T) {
	m := newTestMachine(t)
	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("g\n"), out)

	action := mon.Run()
	if action != ActionRun {
		t.Fatalf("action = %v, want ActionRun", action)
	}
}

func TestGoWithAddressSetsPC(t *testing.T) {
	m := newTestMachine(t)
	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("g 1f00\n"), out)

	mon.Run()
	if m.CPU.PCRegister() != 0x1F00 {
		t.Fatalf("PC = %04X, want 1F00", m.CPU.PCRegister())
	}
}

func TestBreakpointStopsGoAtTargetAddress(t *testing.T) {
	m := newTestMachine(t)
	m.Memory.WriteByte(0x1000, 0xEA) // NOP
	m.Memory.WriteByte(0x1001, 0xEA) // NOP
	m.Memory.WriteByte(0x1002, 0xEA) // NOP
	m.CPU.SetPC(0x1000)

	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("bs 1002\ng\n"), out)

	action := mon.Run()
	if action != ActionQuit {
		t.Fatalf("action = %v, want ActionQuit (stopped back in the monitor, then input ran out)", action)
	}
	if m.CPU.PCRegister() != 0x1002 {
		t.Fatalf("PC = %04X, want 1002 (stopped at breakpoint)", m.CPU.PCRegister())
	}
	if !strings.Contains(out.String(), "Breakpoint hit at $1002") {
		t.Fatalf("expected breakpoint message, got %q", out.String())
	}
}

func TestQuitReturnsActionQuit(t *testing.T) {
	m := newTestMachine(t)
	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("q\n"), out)

	if action := mon.Run(); action != ActionQuit {
		t.Fatalf("action = %v, want ActionQuit", action)
	}
}

func TestStepAdvancesPCAndPrintsStatus(t *testing.T) {
	m := newTestMachine(t)
	m.Memory.WriteByte(0x1000, 0xA9) // LDA #$42
	m.Memory.WriteByte(0x1001, 0x42)
	m.CPU.SetPC(0x1000)

	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("s\ng\n"), out)

	mon.Run()
	if m.CPU.PCRegister() != 0x1002 {
		t.Fatalf("PC = %04X after step, want 1002", m.CPU.PCRegister())
	}
	if !strings.Contains(out.String(), "PC: $1002") {
		t.Fatalf("expected PC status line, got %q", out.String())
	}
}

func TestSetPCCommand(t *testing.T) {
	m := newTestMachine(t)
	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("pc 2000\ng\n"), out)

	mon.Run()
	if m.CPU.PCRegister() != 0x2000 {
		t.Fatalf("PC = %04X, want 2000", m.CPU.PCRegister())
	}
}

func TestDumpMemoryCommand(t *testing.T) {
	m := newTestMachine(t)
	m.Memory.WriteByte(0x3000, 0xAB)
	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("m 3000 1\ng\n"), out)

	mon.Run()
	if !strings.Contains(out.String(), "AB") {
		t.Fatalf("expected dumped byte AB in output, got %q", out.String())
	}
}

func TestDisassembleCommand(t *testing.T) {
	m := newTestMachine(t)
	m.Memory.WriteByte(0x4000, 0xA9) // LDA #$10
	m.Memory.WriteByte(0x4001, 0x10)
	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("d 4000 1\ng\n"), out)

	mon.Run()
	if !strings.Contains(out.String(), "LDA #$10") {
		t.Fatalf("expected disassembly of LDA #$10, got %q", out.String())
	}
}

func TestEmptyLineRepeatsLastCommand(t *testing.T) {
	m := newTestMachine(t)
	m.Memory.WriteByte(0x1000, 0xEA)
	m.Memory.WriteByte(0x1001, 0xEA)
	m.CPU.SetPC(0x1000)

	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("s\n\ng\n"), out)

	mon.Run()
	if m.CPU.PCRegister() != 0x1002 {
		t.Fatalf("PC = %04X after two steps, want 1002", m.CPU.PCRegister())
	}
}

func TestUnknownCommandReportsError(t *testing.T) {
	m := newTestMachine(t)
	out := &bytes.Buffer{}
	mon := New(m, strings.NewReader("bogus\ng\n"), out)

	mon.Run()
	if !strings.Contains(out.String(), "Unknown command") {
		t.Fatalf("expected unknown command message, got %q", out.String())
	}
}
