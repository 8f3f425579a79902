// Package errors is a helper package for the error type used throughout
// oric8. It defines Errno, a small closed set of error categories, and
// Error, an implementation of the error interface that renders a category
// against a printf-style message template.
//
// Categories are deliberately coarse: LoadFailure for anything that
// prevents a ROM/disk/tape image being brought into the emulation,
// ImageFormat for a file that loaded but whose contents don't parse,
// CommandInvalid for malformed monitor/CLI input, Overflow for a chip
// resource exceeding its documented capacity, and ChipBusy for an
// operation requested while a chip cannot service it.
package errors
