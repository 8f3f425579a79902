package cpu

type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

// operand is the resolved address (or accumulator) an instruction acts on.
type operand struct {
	addr          uint16
	isAccumulator bool
	pageCrossed   bool
}

// resolve fetches whatever operand bytes mode requires and computes the
// effective address, following the table of addressing modes a 6502
// instruction may specify.
func (c *CPU) resolve(mode addrMode) operand {
	switch mode {
	case modeAccumulator:
		return operand{isAccumulator: true}
	case modeImmediate:
		addr := c.PC
		c.PC++
		return operand{addr: addr}
	case modeZeroPage:
		return operand{addr: uint16(c.fetch())}
	case modeZeroPageX:
		return operand{addr: uint16(c.fetch() + c.X)}
	case modeZeroPageY:
		return operand{addr: uint16(c.fetch() + c.Y)}
	case modeAbsolute:
		return operand{addr: c.fetchWord()}
	case modeAbsoluteX:
		base := c.fetchWord()
		addr := base + uint16(c.X)
		return operand{addr: addr, pageCrossed: crossesPage(base, addr)}
	case modeAbsoluteY:
		base := c.fetchWord()
		addr := base + uint16(c.Y)
		return operand{addr: addr, pageCrossed: crossesPage(base, addr)}
	case modeIndirect:
		ptr := c.fetchWord()
		// Faithful to the NMOS 6502 page-wrap bug: if ptr is $xxFF the high
		// byte is fetched from $xx00, not $(xx+1)00.
		lo := c.read(ptr)
		hiAddr := (ptr & 0xFF00) | uint16(byte(ptr)+1)
		hi := c.read(hiAddr)
		return operand{addr: uint16(hi)<<8 | uint16(lo)}
	case modeIndirectX:
		ptr := c.fetch() + c.X
		lo := c.read(uint16(ptr))
		hi := c.read(uint16(ptr + 1))
		return operand{addr: uint16(hi)<<8 | uint16(lo)}
	case modeIndirectY:
		ptr := c.fetch()
		lo := c.read(uint16(ptr))
		hi := c.read(uint16(ptr + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		return operand{addr: addr, pageCrossed: crossesPage(base, addr)}
	default:
		return operand{}
	}
}

func (c *CPU) loadOperand(op operand) byte {
	if op.isAccumulator {
		return c.A
	}
	return c.read(op.addr)
}

func (c *CPU) storeOperand(op operand, v byte) {
	if op.isAccumulator {
		c.A = v
		return
	}
	c.write(op.addr, v)
}
