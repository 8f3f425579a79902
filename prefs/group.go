package prefs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pugo/oric8/paths"
)

// Preferences groups together every registered pref value and knows how to
// persist itself to disk as a flat "key = value" file.
type Preferences struct {
	path string
	keys map[string]pref

	// RandomState, when true, causes RAM and chip register power-on state
	// to be randomised rather than zeroed.
	RandomState Bool

	// ROMVariant selects which BASIC/boot ROM image to load by default.
	ROMVariant String

	// Zoom is the default display scale factor for the window collaborator.
	Zoom Int

	// WarpOnStart starts the scheduler in warp mode.
	WarpOnStart Bool
}

// NewPreferences creates a Preferences group with sensible defaults and
// loads any existing values from disk, ignoring a missing file.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		path: paths.ResourcePath("prefs"),
		keys: make(map[string]pref),
	}

	p.ROMVariant.Set("atmos")
	p.Zoom.Set(2)

	p.register("machine.randomstate", &p.RandomState)
	p.register("machine.romvariant", &p.ROMVariant)
	p.register("display.zoom", &p.Zoom)
	p.register("machine.warponstart", &p.WarpOnStart)

	if err := p.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) register(key string, v pref) {
	p.keys[key] = v
}

// SetDefaults resets every registered pref to its zero value, then sets
// ROMVariant to "atmos" and Zoom to 2, used by regression-style tests
// that need a known starting state.
func (p *Preferences) SetDefaults() {
	for _, v := range p.keys {
		_ = v.Reset()
	}
	p.ROMVariant.Set("atmos")
	p.Zoom.Set(2)
}

// Load reads the preferences file, ignoring unrecognised and defunct keys.
func (p *Preferences) Load() error {
	f, err := os.Open(p.path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		if isDefunct(key) {
			continue
		}
		if v, ok := p.keys[key]; ok {
			if err := v.Set(value); err != nil {
				return fmt.Errorf("prefs: loading %s: %w", key, err)
			}
		}
	}
	return s.Err()
}

// Save writes every registered pref to the preferences file.
func (p *Preferences) Save() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0700); err != nil {
		return err
	}

	f, err := os.Create(p.path)
	if err != nil {
		return err
	}
	defer f.Close()

	keys := make([]string, 0, len(p.keys))
	for k := range p.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := bufio.NewWriter(f)
	for _, k := range keys {
		fmt.Fprintf(w, "%s = %s\n", k, p.keys[k].String())
	}
	return w.Flush()
}
