// Package environment carries the cross-cutting context a running
// emulation needs but that would otherwise have to be threaded through
// every chip constructor: a label identifying which emulation this is (the
// main one, or a disposable one used for rewind search), a random number
// source, and the active preferences.
package environment

import (
	"github.com/pugo/oric8/prefs"
	"github.com/pugo/oric8/random"
)

// Label names an emulation instance.
type Label string

// Environment provides context shared by every chip in one emulation.
type Environment struct {
	Label  Label
	Random *random.Random
	Prefs  *prefs.Preferences
}

// NewEnvironment is the preferred method of initialisation. If prefs is
// nil a fresh default Preferences is created.
func NewEnvironment(label Label, cycles func() uint64, p *prefs.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(cycles),
	}

	if p == nil {
		var err error
		p, err = prefs.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	env.Prefs = p

	return env, nil
}

// IsMainEmulation returns true if this is the primary, user-facing
// emulation rather than a disposable one used internally for rewind search.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == ""
}
