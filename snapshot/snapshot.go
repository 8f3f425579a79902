// Package snapshot saves and restores a machine's complete state as an
// opaque, versioned gob-encoded file: every chip's register and timer
// state, the keyboard matrix, and the scheduler's own run-state, the
// way machine.cpp's save_snapshot/load_snapshot persist the whole
// machine in one pass.
package snapshot

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/pugo/oric8/errors"
	"github.com/pugo/oric8/machine"
	"github.com/pugo/oric8/notifications"
)

const (
	magic = "ORIC8SNAP"

	// Version is bumped whenever the shape of machine.State changes in a
	// way that would otherwise let gob silently decode a stale field
	// layout into the wrong place.
	Version = 1
)

// Envelope is the versioned wrapper persisted to a snapshot file.
type Envelope struct {
	Magic   string
	Version int
	State   machine.State
}

// Save captures m's current state and gob-encodes it to filename,
// overwriting any existing file.
func Save(filename string, m *machine.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.New(errors.SnapshotFailure, err.Error())
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	env := Envelope{Magic: magic, Version: Version, State: m.Snapshot()}
	if err := gob.NewEncoder(w).Encode(&env); err != nil {
		return errors.New(errors.SnapshotFailure, err.Error())
	}
	if err := w.Flush(); err != nil {
		return errors.New(errors.SnapshotFailure, err.Error())
	}
	m.Notify(notifications.NotifySnapshotSaved)
	return nil
}

// Load decodes the snapshot at filename and restores m to the state it
// captured.
func Load(filename string, m *machine.Machine) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.New(errors.SnapshotFailure, err.Error())
	}
	defer f.Close()

	var env Envelope
	if err := gob.NewDecoder(bufio.NewReader(f)).Decode(&env); err != nil {
		return errors.New(errors.SnapshotFailure, err.Error())
	}
	if env.Magic != magic {
		return errors.New(errors.SnapshotFailure, fmt.Sprintf("not an oric8 snapshot file: %s", filename))
	}
	if env.Version != Version {
		return errors.New(errors.SnapshotFailure, fmt.Sprintf("snapshot version %d unsupported, want %d", env.Version, Version))
	}

	m.Restore(env.State)
	m.Notify(notifications.NotifySnapshotLoaded)
	return nil
}
