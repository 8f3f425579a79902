// Package cpu implements a cycle-stepped MOS 6502, the processor at the
// heart of the Oric. Step executes exactly one instruction and reports how
// many bus cycles it consumed; addressing modes, flag updates and decimal
// mode ADC/SBC follow the original chip bit for bit. The CPU talks to the
// rest of the machine only through the Bus interface, so it has no
// knowledge of RAM, ROM overlays or any other chip.
package cpu
