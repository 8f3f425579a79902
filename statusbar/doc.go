// Package statusbar is the status-bar painter thread: a UI collaborator
// that turns machine notices into short-lived on-screen messages. It runs
// on its own goroutine, entirely outside the emu thread, and never
// touches core machine state directly.
package statusbar
