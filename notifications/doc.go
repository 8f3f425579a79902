// Package notifications allows a chip deep inside the emulation core to
// signal a transient, presentation-relevant event outward without the core
// depending on the display/audio/status-bar collaborators directly.
package notifications
