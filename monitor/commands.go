package monitor

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/pugo/oric8/cpu"
	"github.com/pugo/oric8/snapshot"
)

func (mon *Monitor) cmdSetBreakpoint(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(mon.out, "Error: missing address")
		return
	}
	addr, err := parseWord(parts[1])
	if err != nil {
		fmt.Fprintln(mon.out, err)
		return
	}
	mon.breakpoint = addr
	mon.hasBreak = true
	fmt.Fprintf(mon.out, "Breakpoint set at $%04X\n", addr)
}

func (mon *Monitor) cmdDisassemble(parts []string) {
	var addr uint16
	n := 30
	switch {
	case len(parts) == 1:
		if mon.lastAddress == 0 {
			addr = mon.m.CPU.PCRegister()
		} else {
			addr = mon.lastAddress
		}
	case len(parts) >= 3:
		a, err := parseWord(parts[1])
		if err != nil {
			fmt.Fprintln(mon.out, err)
			return
		}
		count, err := parseInt(parts[2])
		if err != nil {
			fmt.Fprintln(mon.out, err)
			return
		}
		addr, n = a, count
	default:
		fmt.Fprintln(mon.out, "Use: d <start address> <count>")
		return
	}

	for i := 0; i < n; i++ {
		d := cpu.Disassemble(mon.m.Memory.ReadByte, addr)
		fmt.Fprintf(mon.out, "%04X  %-8s %s\n", d.Address, hexBytes(d.Bytes), d.Text)
		addr += uint16(len(d.Bytes))
	}
	mon.lastAddress = addr
}

func hexBytes(b []byte) string {
	s := ""
	for _, v := range b {
		s += fmt.Sprintf("%02X ", v)
	}
	return s
}

func (mon *Monitor) cmdGo(parts []string) (Action, bool) {
	if len(parts) >= 2 {
		addr, err := parseWord(parts[1])
		if err != nil {
			fmt.Fprintln(mon.out, err)
			return ActionRun, false
		}
		mon.m.CPU.SetPC(addr)
	}

	if !mon.hasBreak {
		return ActionRun, true
	}

	for {
		mon.m.Step()
		if mon.traceExec {
			d := cpu.Disassemble(mon.m.Memory.ReadByte, mon.m.CPU.PCRegister())
			fmt.Fprintf(mon.out, "%04X  %s\n", d.Address, d.Text)
		}
		if mon.m.CPU.PCRegister() == mon.breakpoint {
			fmt.Fprintf(mon.out, "Breakpoint hit at $%04X\n", mon.breakpoint)
			mon.printMachineInfo()
			return ActionRun, false
		}
		if mon.m.CPU.BreakRequested() {
			mon.m.CPU.ClearBreak()
			fmt.Fprintln(mon.out, "Instruction BRK executed.")
			mon.printMachineInfo()
			return ActionRun, false
		}
	}
}

func (mon *Monitor) cmdStep(parts []string) {
	n := 1
	if len(parts) == 2 {
		count, err := parseInt(parts[1])
		if err != nil {
			fmt.Fprintln(mon.out, err)
			return
		}
		n = count
	}

	brk := false
	for i := 0; i < n && !brk; i++ {
		mon.m.Step()
		brk = mon.m.CPU.BreakRequested()
	}
	if brk {
		mon.m.CPU.ClearBreak()
		fmt.Fprintln(mon.out, "Instruction BRK executed.")
	}
	mon.printMachineInfo()
}

func (mon *Monitor) cmdDumpMemory(parts []string) {
	if len(parts) < 3 {
		fmt.Fprintln(mon.out, "Use: m <start address> <length>")
		return
	}
	addr, err := parseWord(parts[1])
	if err != nil {
		fmt.Fprintln(mon.out, err)
		return
	}
	n, err := parseInt(parts[2])
	if err != nil {
		fmt.Fprintln(mon.out, err)
		return
	}

	for row := 0; row < n; row += 16 {
		fmt.Fprintf(mon.out, "%04X ", addr+uint16(row))
		for col := 0; col < 16 && row+col < n; col++ {
			fmt.Fprintf(mon.out, " %02X", mon.m.Memory.ReadByte(addr+uint16(row+col)))
		}
		fmt.Fprintln(mon.out)
	}
}

func (mon *Monitor) cmdSetPC(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(mon.out, "Error: missing address")
		return
	}
	addr, err := parseWord(parts[1])
	if err != nil {
		fmt.Fprintln(mon.out, err)
		return
	}
	mon.m.CPU.SetPC(addr)
	mon.printMachineInfo()
}

func (mon *Monitor) cmdSaveSnapshot(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(mon.out, "Use: save <file>")
		return
	}
	if err := snapshot.Save(parts[1], mon.m); err != nil {
		fmt.Fprintln(mon.out, err)
		return
	}
	fmt.Fprintf(mon.out, "Saved snapshot to %s\n", parts[1])
}

func (mon *Monitor) cmdLoadSnapshot(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(mon.out, "Use: load <file>")
		return
	}
	if err := snapshot.Load(parts[1], mon.m); err != nil {
		fmt.Fprintln(mon.out, err)
		return
	}
	fmt.Fprintf(mon.out, "Restored snapshot from %s\n", parts[1])
}

// cmdMemoryGraph writes a graphviz dot file of the machine's live chip
// state, a debugging aid for tracking down unwanted reference cycles in
// the chip ownership graph.
func (mon *Monitor) cmdMemoryGraph(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(mon.out, "Use: mg <file>")
		return
	}
	f, err := os.Create(parts[1])
	if err != nil {
		fmt.Fprintln(mon.out, err)
		return
	}
	defer f.Close()
	memviz.Map(f, mon.m)
	fmt.Fprintf(mon.out, "Wrote memory graph to %s\n", parts[1])
}

func (mon *Monitor) printMachineInfo() {
	fmt.Fprintf(mon.out, "PC: $%04X\n", mon.m.CPU.PCRegister())
	fmt.Fprintln(mon.out, mon.m.CPU.String())
}

func (mon *Monitor) printVIAStatus() {
	s := mon.m.VIA.Snapshot()
	fmt.Fprintf(mon.out, "ORA=%02X DDRA=%02X ORB=%02X DDRB=%02X\n", s.ORA, s.DDRA, s.ORB, s.DDRB)
	fmt.Fprintf(mon.out, "T1=%d (latch %02X%02X) T2=%d (latch %02X%02X)\n",
		s.T1Counter, s.T1LatchHigh, s.T1LatchLow, s.T2Counter, s.T2LatchHigh, s.T2LatchLow)
	fmt.Fprintf(mon.out, "ACR=%02X PCR=%02X IFR=%02X IER=%02X\n", s.ACR, s.PCR, s.IFR, s.IER)
}

func (mon *Monitor) printPSGStatus() {
	s := mon.m.PSG.Snapshot()
	fmt.Fprintf(mon.out, "current register: %d\n", s.CurrentRegister)
	for i, r := range s.Registers {
		fmt.Fprintf(mon.out, "R%-2d = %02X", i, r)
		if (i+1)%4 == 0 {
			fmt.Fprintln(mon.out)
		} else {
			fmt.Fprint(mon.out, "   ")
		}
	}
	fmt.Fprintln(mon.out)
	for i, ch := range s.Channels {
		fmt.Fprintf(mon.out, "channel %c: period=%d volume=%d\n", 'A'+i, ch.TonePeriod, ch.Volume)
	}
}
