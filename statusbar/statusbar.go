package statusbar

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pugo/oric8/notifications"
)

// messages maps each notice to the text the bar shows for it.
var messages = map[notifications.Notice]string{
	notifications.NotifyTapeMotorOn:    "tape: playing",
	notifications.NotifyTapeMotorOff:   "tape: stopped",
	notifications.NotifyDiskChanged:    "disk changed",
	notifications.NotifyWarpModeOn:     "warp mode: on",
	notifications.NotifyWarpModeOff:    "warp mode: off",
	notifications.NotifySnapshotSaved:  "snapshot saved",
	notifications.NotifySnapshotLoaded: "snapshot loaded",
}

// Bar is the status-bar painter thread's double buffer: Notify fills the
// back buffer and wakes the painter goroutine, which swaps it to the
// front buffer under the same lock before rendering it. The swap is the
// only synchronized operation; rendering itself happens outside the lock.
type Bar struct {
	mu   sync.Mutex
	cond *sync.Cond

	back  string
	front string

	closed bool
	done   chan struct{}
}

// New creates a Bar and starts its painter goroutine, which writes each
// message to out as it arrives.
func New(out io.Writer) *Bar {
	b := &Bar{done: make(chan struct{})}
	b.cond = sync.NewCond(&b.mu)
	go b.paint(out)
	return b
}

// Notify implements notifications.Notify. It never blocks on the
// painter: it fills the back buffer and returns.
func (b *Bar) Notify(notice notifications.Notice) error {
	text, ok := messages[notice]
	if !ok {
		return nil
	}

	b.mu.Lock()
	b.back = text
	b.mu.Unlock()
	b.cond.Signal()
	return nil
}

// paint is the painter goroutine: it wakes whenever Notify signals a new
// back-buffer message, swaps it to front under the lock, and renders
// front outside the lock so a slow writer never holds up Notify.
func (b *Bar) paint(out io.Writer) {
	defer close(b.done)

	for {
		b.mu.Lock()
		for b.back == "" && !b.closed {
			b.cond.Wait()
		}
		if b.closed {
			b.mu.Unlock()
			return
		}
		b.front, b.back = b.back, ""
		text := b.front
		b.mu.Unlock()

		fmt.Fprintf(out, "%s [%s]\n", time.Now().Format("15:04:05"), text)
	}
}

// Close stops the painter goroutine and waits for it to exit.
func (b *Bar) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.cond.Signal()
	<-b.done
}
