// Package monitor is a line-mode debugger REPL for an Oric machine: the
// same breakpoint/step/disassemble/register-dump command set as the
// original machine's monitor, read one line at a time from a raw
// terminal.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pugo/oric8/errors"
	"github.com/pugo/oric8/machine"
)

// Action tells the caller what to do once the REPL returns control: keep
// running the machine, or shut the emulator down entirely.
type Action int

const (
	// ActionRun resumes the machine's normal run loop.
	ActionRun Action = iota
	// ActionQuit shuts the emulator down.
	ActionQuit
)

// Monitor is the debugger REPL, attached to one machine and a terminal.
type Monitor struct {
	m    *machine.Machine
	in   *bufio.Scanner
	out  io.Writer
	term *rawTerm

	lastCommand string
	lastAddress uint16
	breakpoint  uint16
	hasBreak    bool
	traceExec   bool
}

// New creates a Monitor reading commands from in and writing output to
// out, attached to m.
func New(m *machine.Machine, in io.Reader, out io.Writer) *Monitor {
	return &Monitor{
		m:    m,
		in:   bufio.NewScanner(in),
		out:  out,
		term: newRawTerm(),
	}
}

// Enter prints the monitor's entry banner, matching the original's
// distinct messages for "dropped into the monitor via Ctrl-C" versus "the
// monitor returned here after a quit command wasn't issued".
func (mon *Monitor) Enter(fromBreak bool) {
	mon.term.canonicalMode()
	if fromBreak {
		fmt.Fprintln(mon.out)
		fmt.Fprintln(mon.out, "* Oric Monitor *")
		fmt.Fprintln(mon.out)
		fmt.Fprintln(mon.out, "        Ctrl-c : to exit the emulator")
		fmt.Fprintln(mon.out, "    g <return> : to continue the emulation")
		fmt.Fprintln(mon.out, "    h <return> : for help (more commands)")
		fmt.Fprintln(mon.out)
	}
}

// Leave restores the terminal to whatever mode it was in before Enter.
func (mon *Monitor) Leave() {
	mon.term.restore()
}

// Run reads and executes commands until one of them returns control to
// the caller (ActionRun) or asks to quit (ActionQuit).
func (mon *Monitor) Run() Action {
	for {
		fmt.Fprint(mon.out, ">> ")
		if !mon.in.Scan() {
			return ActionQuit
		}
		action, handled := mon.dispatch(mon.in.Text())
		if handled {
			return action
		}
	}
}

// dispatch executes one command line. handled reports whether the REPL
// should return to the caller with action; otherwise the loop prompts
// again.
func (mon *Monitor) dispatch(line string) (action Action, handled bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		if mon.lastCommand == "" {
			return ActionRun, false
		}
		line = mon.lastCommand
	} else {
		mon.lastCommand = line
	}

	parts := strings.Fields(line)
	cmd := parts[0]

	switch cmd {
	case "h":
		mon.printHelp()
	case "ay":
		mon.printPSGStatus()
	case "bs":
		mon.cmdSetBreakpoint(parts)
	case "d":
		mon.cmdDisassemble(parts)
	case "debug":
		mon.traceExec = true
		fmt.Fprintln(mon.out, "Debug mode enabled")
	case "g":
		return mon.cmdGo(parts)
	case "i":
		mon.printMachineInfo()
	case "m":
		mon.cmdDumpMemory(parts)
	case "mg":
		mon.cmdMemoryGraph(parts)
	case "pc":
		mon.cmdSetPC(parts)
	case "q":
		fmt.Fprintln(mon.out, "quit")
		return ActionQuit, true
	case "quiet":
		mon.traceExec = false
		fmt.Fprintln(mon.out, "Quiet mode enabled")
	case "s":
		mon.cmdStep(parts)
	case "save":
		mon.cmdSaveSnapshot(parts)
	case "load":
		mon.cmdLoadSnapshot(parts)
	case "sr", "softreset":
		mon.m.CPU.NMI()
		fmt.Fprintln(mon.out, "NMI triggered")
	case "v":
		mon.printVIAStatus()
	default:
		fmt.Fprintf(mon.out, "Unknown command %q. Use command \"h\" to get help.\n", cmd)
	}

	return ActionRun, false
}

func (mon *Monitor) printHelp() {
	fmt.Fprintln(mon.out, "Available monitor commands:")
	fmt.Fprintln(mon.out)
	fmt.Fprintln(mon.out, "ay              : print AY-3-8912 sound chip info")
	fmt.Fprintln(mon.out, "bs <address>    : set breakpoint for address")
	fmt.Fprintln(mon.out, "d               : disassemble from last address or PC")
	fmt.Fprintln(mon.out, "d <address> <n> : disassemble from address and n instructions ahead")
	fmt.Fprintln(mon.out, "debug           : show executed instructions at run time")
	fmt.Fprintln(mon.out, "g               : go (continue)")
	fmt.Fprintln(mon.out, "g <address>     : go to address and run")
	fmt.Fprintln(mon.out, "h               : help (showing this text)")
	fmt.Fprintln(mon.out, "i               : print machine info")
	fmt.Fprintln(mon.out, "load <file>     : restore machine state from a snapshot")
	fmt.Fprintln(mon.out, "m <address> <n> : dump memory from address and n bytes ahead")
	fmt.Fprintln(mon.out, "mg <file>       : write a graphviz dump of live chip state")
	fmt.Fprintln(mon.out, "pc <address>    : set program counter to address")
	fmt.Fprintln(mon.out, "quiet           : stop showing executed instructions at run time")
	fmt.Fprintln(mon.out, "q               : quit")
	fmt.Fprintln(mon.out, "s [n]           : step one or n instructions")
	fmt.Fprintln(mon.out, "save <file>     : save machine state to a snapshot")
	fmt.Fprintln(mon.out, "sr, softreset   : soft reset oric")
	fmt.Fprintln(mon.out, "v               : print VIA (6522) info")
}

func parseWord(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errors.New(errors.CommandInvalid, fmt.Sprintf("bad address %q", s))
	}
	return uint16(v), nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.CommandInvalid, fmt.Sprintf("bad number %q", s))
	}
	return v, nil
}
