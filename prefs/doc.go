// Package prefs implements a small typed preferences system. Values are
// registered under a dotted key ("machine.randomstate"), and the whole set
// can be loaded
// from or saved to a flat key=value file in the user's config directory.
package prefs
