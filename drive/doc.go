// Package drive implements the floppy disk drives a WD1793 FDC commands:
// disk image loading, head positioning, and sector lookup by (track,
// side, sector) address. Up to four drives can be attached; the FDC's
// glue register selects which one is live.
package drive
