package statusbar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pugo/oric8/notifications"
)

func TestNotifyRendersKnownNotice(t *testing.T) {
	out := &bytes.Buffer{}
	b := New(out)
	defer b.Close()

	if err := b.Notify(notifications.NotifyWarpModeOn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), "warp mode: on") {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("expected rendered message, got %q", out.String())
}

func TestNotifyIgnoresUnknownNotice(t *testing.T) {
	out := &bytes.Buffer{}
	b := New(out)
	defer b.Close()

	if err := b.Notify(notifications.Notice("bogus")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if out.Len() != 0 {
		t.Fatalf("expected no output for an unmapped notice, got %q", out.String())
	}
}

func TestCloseStopsPainterGoroutine(t *testing.T) {
	out := &bytes.Buffer{}
	b := New(out)
	b.Close()

	// A Notify after Close should not panic or hang; the painter has
	// already exited so the message is simply never rendered.
	_ = b.Notify(notifications.NotifyDiskChanged)
}
