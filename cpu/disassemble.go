package cpu

import "fmt"

// operandLen is the number of bytes following the opcode byte itself, by
// addressing mode.
func operandLen(mode addrMode) int {
	switch mode {
	case modeImplied, modeAccumulator:
		return 0
	case modeZeroPage, modeZeroPageX, modeZeroPageY,
		modeIndirectX, modeIndirectY, modeRelative, modeImmediate:
		return 1
	default:
		return 2
	}
}

// Disassembly is one decoded instruction, as reported by Disassemble.
type Disassembly struct {
	Address uint16
	Bytes   []byte
	Text    string
}

// Disassemble decodes the instruction at addr, reading its bytes through
// read, and reports its length in bytes so a caller can advance to the
// next instruction. Illegal opcodes are reported as a raw ".byte" the way
// a monitor would rather than guessing at undocumented behaviour.
func Disassemble(read func(uint16) byte, addr uint16) Disassembly {
	opcode := read(addr)
	info, ok := instrTable[opcode]
	if !ok {
		return Disassembly{
			Address: addr,
			Bytes:   []byte{opcode},
			Text:    fmt.Sprintf(".byte $%02X", opcode),
		}
	}

	length := 1 + operandLen(info.mode)
	raw := make([]byte, length)
	for i := range raw {
		raw[i] = read(addr + uint16(i))
	}

	var operand string
	switch info.mode {
	case modeImplied:
		operand = ""
	case modeAccumulator:
		operand = "A"
	case modeImmediate:
		operand = fmt.Sprintf("#$%02X", raw[1])
	case modeZeroPage:
		operand = fmt.Sprintf("$%02X", raw[1])
	case modeZeroPageX:
		operand = fmt.Sprintf("$%02X,X", raw[1])
	case modeZeroPageY:
		operand = fmt.Sprintf("$%02X,Y", raw[1])
	case modeAbsolute:
		operand = fmt.Sprintf("$%04X", uint16(raw[2])<<8|uint16(raw[1]))
	case modeAbsoluteX:
		operand = fmt.Sprintf("$%04X,X", uint16(raw[2])<<8|uint16(raw[1]))
	case modeAbsoluteY:
		operand = fmt.Sprintf("$%04X,Y", uint16(raw[2])<<8|uint16(raw[1]))
	case modeIndirect:
		operand = fmt.Sprintf("($%04X)", uint16(raw[2])<<8|uint16(raw[1]))
	case modeIndirectX:
		operand = fmt.Sprintf("($%02X,X)", raw[1])
	case modeIndirectY:
		operand = fmt.Sprintf("($%02X),Y", raw[1])
	case modeRelative:
		target := uint16(int32(addr) + 2 + int32(int8(raw[1])))
		operand = fmt.Sprintf("$%04X", target)
	}

	text := info.mnemonic
	if operand != "" {
		text = fmt.Sprintf("%s %s", info.mnemonic, operand)
	}

	return Disassembly{Address: addr, Bytes: raw, Text: text}
}
