package mos6502

type AddressingMode int

const (
	IMP AddressingMode = iota
	IMM
	REL
	ZP0
	ZPX
	ZPY
	ABS
	ABX
	ABY
	IND
	IZX
	IZY
)

var addressingModeNames = [...]string{
	IMP: "IMP",
	IMM: "IMM",
	REL: "REL",
	ZP0: "ZP0",
	ZPX: "ZPX",
	ZPY: "ZPY",
	ABS: "ABS",
	ABX: "ABX",
	ABY: "ABY",
	IND: "IND",
	IZX: "IZX",
	IZY: "IZY",
}

func (m AddressingMode) String() string {
	if m < 0 || int(m) >= len(addressingModeNames) {
		return "???"
	}
	return addressingModeNames[m]
}

// OperandBytes returns how many bytes following the opcode the mode consumes.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case IMP:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	default:
		return 1
	}
}

////////////////////////////////////////////////////////////////
// Addressing Modes
// These functions resolve cpu.addrAbs (or cpu.addrRel) and return 1 when the
// instruction may need an extra cycle for crossing a page.

// Implied: the operand, if any, is the accumulator.
func (cpu *Cpu6502) amIMP() byte {
	cpu.fetched = cpu.A

	return 0
}

// Immediate:
func (cpu *Cpu6502) amIMM() byte {
	// The second byte of the instruction contains the operand.
	cpu.addrAbs = cpu.Pc
	cpu.Pc++

	return 0
}

// Relative: signed 8-bit displacement, applied by the branch instructions.
func (cpu *Cpu6502) amREL() byte {
	cpu.addrRel = uint16(cpu.read(cpu.Pc))
	cpu.Pc++

	// Sign extend.
	if cpu.addrRel&0x80 != 0 {
		cpu.addrRel |= 0xFF00
	}

	return 0
}

// Zero Page:
func (cpu *Cpu6502) amZP0() byte {
	cpu.addrAbs = uint16(cpu.read(cpu.Pc))
	cpu.Pc++

	return 0
}

// Zero Page, X: the sum wraps within page zero.
func (cpu *Cpu6502) amZPX() byte {
	cpu.addrAbs = uint16(cpu.read(cpu.Pc) + cpu.X)
	cpu.Pc++

	return 0
}

// Zero Page, Y
func (cpu *Cpu6502) amZPY() byte {
	cpu.addrAbs = uint16(cpu.read(cpu.Pc) + cpu.Y)
	cpu.Pc++

	return 0
}

// Absolute:
func (cpu *Cpu6502) amABS() byte {
	// The second byte of the instruction contains the low order byte of the
	// address. The third byte of the instruction contains the high order byte.
	cpu.addrAbs = cpu.readOperandWord()

	return 0
}

// Absolute, X:
func (cpu *Cpu6502) amABX() byte {
	base := cpu.readOperandWord()
	cpu.addrAbs = base + uint16(cpu.X)

	return pageCrossed(base, cpu.addrAbs)
}

// Absolute, Y:
func (cpu *Cpu6502) amABY() byte {
	base := cpu.readOperandWord()
	cpu.addrAbs = base + uint16(cpu.Y)

	return pageCrossed(base, cpu.addrAbs)
}

// Indirect: only used by JMP. A pointer at $xxFF reads its high byte from
// $xx00 instead of the next page, as the original hardware does.
func (cpu *Cpu6502) amIND() byte {
	ptr := cpu.readOperandWord()

	lo := cpu.read(ptr)
	var hi byte
	if ptr&0x00FF == 0x00FF {
		hi = cpu.read(ptr & 0xFF00)
	} else {
		hi = cpu.read(ptr + 1)
	}
	cpu.addrAbs = uint16(hi)<<8 | uint16(lo)

	return 0
}

// Indexed Indirect:
func (cpu *Cpu6502) amIZX() byte {
	// Add the second byte of the instruction with the contents of register X.
	// This result is a zero page memory location pointing to the low order byte
	// of the effective address. The next memory location contains the high
	// order byte. Both memory locations must be in page zero.
	ptr := cpu.read(cpu.Pc) + cpu.X
	cpu.Pc++

	lo := cpu.read(uint16(ptr))
	hi := cpu.read(uint16(ptr + 1)) // Zero page wraparound
	cpu.addrAbs = uint16(hi)<<8 | uint16(lo)

	return 0
}

// Indirect Indexed:
func (cpu *Cpu6502) amIZY() byte {
	// The second byte of the instruction points to a zero page memory location
	// holding a base address, which is then offset by register Y.
	ptr := cpu.read(cpu.Pc)
	cpu.Pc++

	lo := cpu.read(uint16(ptr))
	hi := cpu.read(uint16(ptr + 1)) // Zero page wraparound

	base := uint16(hi)<<8 | uint16(lo)
	cpu.addrAbs = base + uint16(cpu.Y)

	return pageCrossed(base, cpu.addrAbs)
}

// Read the two operand bytes at the program counter (little endian order).
func (cpu *Cpu6502) readOperandWord() uint16 {
	lo := cpu.read(cpu.Pc)
	cpu.Pc++
	hi := cpu.read(cpu.Pc)
	cpu.Pc++

	return uint16(hi)<<8 | uint16(lo)
}

func pageCrossed(a, b uint16) byte {
	if a&0xFF00 != b&0xFF00 {
		return 1
	}
	return 0
}
