//go:build statsdash
// +build statsdash

// Package statsdash is an optional package, built only when the "statsdash"
// build tag is present, offering a small HTTP dashboard of the Go
// runtime's own statistics (memory, goroutines, GC); it shows no emulator
// counters. Underlying functionality is provided by
// "github.com/go-echarts/statsview".
//
// After Launch, graphical statistics are viewable at:
//
//	localhost:12800/debug/statsview
//
// and standard Go pprof statistics at:
//
//	localhost:12800/debug/pprof/
package statsdash

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the host:port the dashboard listens on.
const Address = "localhost:12800"

const path = "/debug/statsview"

// Launch starts the dashboard in a new goroutine.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats dashboard available at %s%s\n", Address, path)
}

// Available reports whether a dashboard implementation was compiled in.
func Available() bool {
	return true
}
