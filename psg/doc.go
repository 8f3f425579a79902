// Package psg implements the AY-3-8912 Programmable Sound Generator, the
// Oric's PSG. It is driven over the VIA port A data bus under the
// BDIR/BC1/BC2 bus-control protocol (BC2 is tied high on the Oric and
// ignored):
//
//	BDIR  BC1   Function
//	  0    0    Inactive
//	  0    1    Read from PSG (unimplemented on real hardware use)
//	  1    0    Write to PSG
//	  1    1    Latch register address
//
// Audio-affecting register writes are timestamped into a bounded
// register-change log rather than applied immediately, so that the audio
// mixer (running on its own 44.1kHz clock) can apply them at the correct
// point within each sample's cycle window. MixSamples drains that log and
// emits mixed mono samples to an AudioSink.
package psg
