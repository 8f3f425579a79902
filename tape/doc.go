// Package tape implements the Oric's cassette transport reading TAP
// files: header parsing, leader/gap pacing, and the bit-pulse state
// machine that drives the VIA's CB1 input line one cycle at a time.
package tape
