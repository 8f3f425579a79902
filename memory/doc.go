// Package memory implements the Oric's 64KiB address space: flat RAM with
// overlayable ROM banks for BASIC and the disk controller's boot ROM. Writes
// always land in the underlying RAM, even where a ROM overlay currently
// shadows them for reads, so disabling an overlay exposes whatever the CPU
// last wrote there.
package memory
