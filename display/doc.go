// Package display is the video collaborator: an SDL window presenting
// the ULA's ARGB8888 framebuffer via a streaming texture, and the source
// of keyboard events translated into the Oric's 8x8 key matrix.
package display
