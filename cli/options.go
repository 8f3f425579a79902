package cli

import (
	"io"

	"github.com/pugo/oric8/modalflag"
	"github.com/pugo/oric8/paths"
	"github.com/pugo/oric8/prefs"
)

// Options is the result of parsing the command line.
type Options struct {
	ROM     string
	Disk    string
	Tape    string
	Zoom    int
	Monitor bool
	Warp    bool
	Record  string
	Version bool
}

// Parse reads args (conventionally os.Args[1:]) into an Options value.
// Help text and flag errors are written to output. The returned
// modalflag.ParseResult tells the caller whether to continue (ParseContinue),
// whether help was already printed (ParseHelp), or whether err describes a
// fatal parse failure (ParseError).
func Parse(args []string, output io.Writer) (*Options, modalflag.ParseResult, error) {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()

	rom := md.AddString("rom", "", "ROM image to load (defaults to the romvariant preference's boot ROM)")
	disk := md.AddString("disk", "", "disk image to insert into drive 0")
	tape := md.AddString("tape", "", "tape image to load")
	zoom := md.AddInt("zoom", 0, "display zoom factor (0 uses the saved preference)")
	monitor := md.AddBool("monitor", false, "start with the monitor active")
	warp := md.AddBool("warp", false, "start in warp mode")
	record := md.AddString("record", "", "record audio output to a wav file")
	version := md.AddBool("version", false, "print version information and exit")

	result, err := md.Parse()
	if result != modalflag.ParseContinue {
		return nil, result, err
	}

	return &Options{
		ROM:     *rom,
		Disk:    *disk,
		Tape:    *tape,
		Zoom:    *zoom,
		Monitor: *monitor,
		Warp:    *warp,
		Record:  *record,
		Version: *version,
	}, result, nil
}

// ResolveZoom returns the zoom factor to use: the flag value if given, the
// saved preference otherwise.
func (o *Options) ResolveZoom(p *prefs.Preferences) int {
	if o.Zoom > 0 {
		return o.Zoom
	}
	if z, ok := p.Zoom.Get().(int); ok && z > 0 {
		return z
	}
	return 1
}

// ResolveWarp returns whether to start in warp mode: the flag if set, the
// saved preference otherwise.
func (o *Options) ResolveWarp(p *prefs.Preferences) bool {
	if o.Warp {
		return true
	}
	on, _ := p.WarpOnStart.Get().(bool)
	return on
}

// ResolveROM returns the boot ROM path to load: the flag if given,
// otherwise the file named after the romvariant preference in the
// resource directory's roms/ subdirectory.
func (o *Options) ResolveROM(p *prefs.Preferences) string {
	if o.ROM != "" {
		return o.ROM
	}
	variant, _ := p.ROMVariant.Get().(string)
	if variant == "" {
		variant = "atmos"
	}
	return paths.ResourcePath("roms", variant+".rom")
}
