// Package cli parses command line arguments into a set of Options the
// cmd/oric8 entrypoint uses to build a Machine and its collaborators,
// falling back to saved preferences wherever a flag is left at its zero
// value.
package cli
