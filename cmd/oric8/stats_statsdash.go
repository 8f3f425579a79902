//go:build statsdash
// +build statsdash

package main

import (
	"io"

	"github.com/pugo/oric8/statsdash"
)

func launchStats(output io.Writer) {
	statsdash.Launch(output)
}
