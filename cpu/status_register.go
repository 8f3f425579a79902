package cpu

// StatusRegister holds the 6502 processor status flags. The unused bit 5 is
// always set when the register is pushed to the stack or read as a byte.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// String renders the flags as a labelled bit pattern, upper case when set.
func (sr StatusRegister) String() string {
	bit := func(set bool, c byte) byte {
		if set {
			return c
		}
		return c + ('a' - 'A')
	}
	v := []byte{
		bit(sr.Sign, 'S'),
		bit(sr.Overflow, 'V'),
		'-',
		bit(sr.Break, 'B'),
		bit(sr.DecimalMode, 'D'),
		bit(sr.InterruptDisable, 'I'),
		bit(sr.Zero, 'Z'),
		bit(sr.Carry, 'C'),
	}
	return string(v)
}

// ToUint8 packs the flags into a byte suitable for pushing to the stack.
func (sr StatusRegister) ToUint8() uint8 {
	var v uint8
	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	v |= 0x20 // unused bit, always reads 1
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	return v
}

// FromUint8 unpacks a byte (pulled from the stack, say) into the flags.
func (sr *StatusRegister) FromUint8(v uint8) {
	sr.Sign = v&0x80 != 0
	sr.Overflow = v&0x40 != 0
	sr.Break = v&0x10 != 0
	sr.DecimalMode = v&0x08 != 0
	sr.InterruptDisable = v&0x04 != 0
	sr.Zero = v&0x02 != 0
	sr.Carry = v&0x01 != 0
}

func (sr *StatusRegister) setNZ(v uint8) uint8 {
	sr.Sign = v&0x80 != 0
	sr.Zero = v == 0
	return v
}
