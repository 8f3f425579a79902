package monitor

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// rawTerm remembers stdin's terminal attributes on entry to the monitor
// and restores them on exit, the way a display package leaving the
// terminal in a different mode (or none at all) would otherwise bleed
// into the monitor's line-based prompt.
type rawTerm struct {
	saved unix.Termios
	ok    bool
}

func newRawTerm() *rawTerm {
	t := &rawTerm{}
	if err := termios.Tcgetattr(os.Stdin.Fd(), &t.saved); err == nil {
		t.ok = true
	}
	return t
}

// canonicalMode puts stdin into ordinary line-buffered, echoing mode for
// the monitor's getline-style prompt.
func (t *rawTerm) canonicalMode() {
	if !t.ok {
		return
	}
	canon := t.saved
	canon.Lflag |= unix.ICANON | unix.ECHO
	termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &canon)
}

// restore puts stdin back exactly the way it was found.
func (t *rawTerm) restore() {
	if !t.ok {
		return
	}
	termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &t.saved)
}
