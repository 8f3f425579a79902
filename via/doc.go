// Package via implements the 6522 Versatile Interface Adapter wired into
// the Oric as its keyboard, printer, tape and PSG-bus controller.
//
// Port and line usage on the Oric:
//
//	PA0..PA7  PSG data bus, printer data lines
//	CA1       printer acknowledge
//	CA2       PSG BC1
//	PB0..PB2  keyboard row select (demultiplexer)
//	PB3       keyboard sense line
//	PB4       printer strobe
//	PB6       tape motor control
//	PB7       tape output
//	CB1       tape input
//	CB2       PSG BDIR
//
// VIA implements the 16-register bus interface, the T1/T2 timers, the
// 8-bit shift register in five of its seven modes (the two external-clock
// modes just stop the register), and CA1/CA2/CB1/CB2 edge and
// pulse handling, all ticked one bus cycle at a time via Tick.
package via
