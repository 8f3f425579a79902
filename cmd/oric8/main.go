// Command oric8 is a cycle-stepped emulator for the Oric-1/Atmos family of
// 8-bit home computers: a 6502 CPU, a 6522 VIA, an AY-3-8912 PSG, a ULA
// video engine, a WD1793 floppy controller and a TAP tape transport, all
// kept in lockstep by the machine package's scheduler.
package main

import (
	"fmt"
	"os"

	"github.com/pugo/oric8/audio"
	"github.com/pugo/oric8/cli"
	"github.com/pugo/oric8/display"
	"github.com/pugo/oric8/drive"
	"github.com/pugo/oric8/environment"
	"github.com/pugo/oric8/loader"
	"github.com/pugo/oric8/logger"
	"github.com/pugo/oric8/machine"
	"github.com/pugo/oric8/memory"
	"github.com/pugo/oric8/modalflag"
	"github.com/pugo/oric8/monitor"
	"github.com/pugo/oric8/paths"
	"github.com/pugo/oric8/statusbar"
	"github.com/pugo/oric8/version"
)

func main() {
	opts, result, err := cli.Parse(os.Args[1:], os.Stdout)
	switch result {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		v, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, rev)
		return
	}

	if err := run(opts); err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *cli.Options) error {
	env, err := environment.NewEnvironment("", nil, nil)
	if err != nil {
		return err
	}
	p := env.Prefs

	mem := memory.New()
	if err := loadROM(mem, opts.ResolveROM(p)); err != nil {
		return err
	}

	bar := statusbar.New(os.Stdout)
	defer bar.Close()

	m := machine.New(mem)
	m.ApplyEnvironment(env)
	m.SetNotifier(bar)
	m.SetWarpMode(opts.ResolveWarp(p))

	if opts.Disk != "" {
		if err := loadDisk(m, opts.Disk); err != nil {
			return err
		}
	}
	if opts.Tape != "" {
		if err := loadTape(m, opts.Tape); err != nil {
			return err
		}
	}

	ctrl := newController(m, paths.ResourcePath("snapshot.dat"))

	disp, err := display.New(m, ctrl, opts.ResolveZoom(p))
	if err != nil {
		return err
	}
	defer disp.Close()

	dev, err := audio.Open()
	if err != nil {
		return err
	}
	defer dev.Close()

	if opts.Record != "" {
		if err := dev.StartRecording(opts.Record); err != nil {
			return err
		}
	}
	go dev.Run(m)

	launchStats(os.Stdout)

	mon := monitor.New(m, os.Stdin, os.Stdout)
	defer mon.Leave()

	if opts.Monitor {
		mon.Enter(false)
		action := mon.Run()
		mon.Leave()
		if action == monitor.ActionQuit {
			return nil
		}
	}

	for {
		m.Run(disp)
		if !m.CPU.BreakRequested() {
			return nil
		}

		mon.Enter(true)
		action := mon.Run()
		mon.Leave()
		if action == monitor.ActionQuit {
			return nil
		}
	}
}

// loadROM reads filename and installs it as the BASIC ROM overlay.
func loadROM(mem *memory.Memory, filename string) error {
	ld := loader.NewLoader(filename, loader.KindROM)
	if err := ld.Load(); err != nil {
		return err
	}
	return mem.LoadBasicROM(ld.Data)
}

// loadDisk reads filename as a disk image and inserts it into drive 0,
// also loading the disk controller's boot ROM overlay so software can
// actually reach it.
func loadDisk(m *machine.Machine, filename string) error {
	diskROM := loader.NewLoader(paths.ResourcePath("roms", "microdisc.rom"), loader.KindROM)
	if err := diskROM.Load(); err != nil {
		logger.Logf(logger.Allow, "oric8", "disk controller ROM unavailable, disk support disabled: %v", err)
	} else if err := m.Memory.LoadDiskROM(diskROM.Data); err != nil {
		return err
	}

	ld := loader.NewLoader(filename, loader.KindDisk)
	if err := ld.Load(); err != nil {
		return err
	}
	disk, err := drive.LoadImage(ld.Data)
	if err != nil {
		return err
	}
	m.InsertDisk(0, disk, false)
	return nil
}

// loadTape reads filename as a TAP image and loads it into the tape
// transport.
func loadTape(m *machine.Machine, filename string) error {
	ld := loader.NewLoader(filename, loader.KindTape)
	if err := ld.Load(); err != nil {
		return err
	}
	m.LoadTape(ld.Data)
	return nil
}
