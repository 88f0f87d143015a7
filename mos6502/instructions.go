package mos6502

import (
	"github.com/retroenv/retrogolib/log"
)

// CPU instructions. Each instruction method returns 1 if it is able to take
// an extra cycle when its addressing mode crossed a page, else 0.

// ADC - Add with Carry
func (cpu *Cpu6502) opADC() byte {
	cpu.fetch()
	cpu.addWithCarry(cpu.fetched)

	return 1
}

// SBC - Subtract with Carry
//
// A - M - (1 - C) equals A + ^M + C, so subtraction reuses the adder with the
// operand inverted. Carry then acts as an inverted borrow.
func (cpu *Cpu6502) opSBC() byte {
	cpu.fetch()
	cpu.addWithCarry(cpu.fetched ^ 0xFF)

	return 1
}

func (cpu *Cpu6502) addWithCarry(value byte) {
	// 16-bit to keep any carry.
	cpu.temp = uint16(cpu.A) + uint16(value) + uint16(cpu.GetFlag(StatusFlagC))

	cpu.SetFlag(StatusFlagC, cpu.temp > 0xFF)

	// Overflow when both inputs share a sign that the result does not.
	a := uint16(cpu.A)
	m := uint16(value)
	cpu.SetFlag(StatusFlagV, (^(a^m)&(a^cpu.temp))&0x0080 != 0)

	cpu.setZN(byte(cpu.temp))

	cpu.A = byte(cpu.temp)
}

// AND - Logical AND
func (cpu *Cpu6502) opAND() byte {
	cpu.fetch()

	cpu.A &= cpu.fetched
	cpu.setZN(cpu.A)

	return 1
}

// ASL - Arithmetic Shift Left
func (cpu *Cpu6502) opASL() byte {
	cpu.fetch()

	cpu.temp = uint16(cpu.fetched) << 1

	cpu.SetFlag(StatusFlagC, cpu.temp&0xFF00 != 0)
	cpu.setZN(byte(cpu.temp))

	cpu.writeBack(byte(cpu.temp))

	return 0
}

// Shared by all branch instructions, which only differ in their condition.
func (cpu *Cpu6502) branch(condition bool) {
	if !condition {
		return
	}

	// Extra cycle when branch succeeds
	cpu.cycles++

	cpu.addrAbs = cpu.Pc + cpu.addrRel

	// Extra cycle if cross pages
	if cpu.addrAbs&0xFF00 != cpu.Pc&0xFF00 {
		cpu.cycles++
	}

	cpu.Pc = cpu.addrAbs
}

// BCC - Branch if Carry Clear
func (cpu *Cpu6502) opBCC() byte {
	cpu.branch(cpu.GetFlag(StatusFlagC) == 0)
	return 0
}

// BCS - Branch if Carry Set
func (cpu *Cpu6502) opBCS() byte {
	cpu.branch(cpu.GetFlag(StatusFlagC) == 1)
	return 0
}

// BEQ - Branch if Equal
func (cpu *Cpu6502) opBEQ() byte {
	cpu.branch(cpu.GetFlag(StatusFlagZ) == 1)
	return 0
}

// BMI - Branch if Minus
func (cpu *Cpu6502) opBMI() byte {
	cpu.branch(cpu.GetFlag(StatusFlagN) == 1)
	return 0
}

// BNE - Branch if Not Equal
func (cpu *Cpu6502) opBNE() byte {
	cpu.branch(cpu.GetFlag(StatusFlagZ) == 0)
	return 0
}

// BPL - Branch if Positive
func (cpu *Cpu6502) opBPL() byte {
	cpu.branch(cpu.GetFlag(StatusFlagN) == 0)
	return 0
}

// BVC - Branch if Overflow Clear
func (cpu *Cpu6502) opBVC() byte {
	cpu.branch(cpu.GetFlag(StatusFlagV) == 0)
	return 0
}

// BVS - Branch if Overflow Set
func (cpu *Cpu6502) opBVS() byte {
	cpu.branch(cpu.GetFlag(StatusFlagV) == 1)
	return 0
}

// BIT - Bit Test
func (cpu *Cpu6502) opBIT() byte {
	cpu.fetch()

	cpu.temp = uint16(cpu.A & cpu.fetched)

	cpu.SetFlag(StatusFlagZ, cpu.temp == 0)

	// N and V come from the operand, not from the AND result.
	cpu.SetFlag(StatusFlagN, cpu.fetched&(1<<7) != 0)
	cpu.SetFlag(StatusFlagV, cpu.fetched&(1<<6) != 0)

	return 0
}

// BRK - Force Interrupt
func (cpu *Cpu6502) opBRK() byte {
	// Dummy read of the padding byte.
	cpu.read(cpu.Pc - 1)

	cpu.stackPushWord(cpu.Pc)

	// Set B flag according to: http://visual6502.org/wiki/index.php?title=6502_BRK_and_B_bit
	cpu.stackPush(cpu.Status | byte(StatusFlagB))

	// Load the IRQ interrupt vector at $FFFE/F to the PC.
	cpu.Pc = cpu.readWord(irqVectAddr)

	cpu.SetFlag(StatusFlagI, true)

	return 0
}

// CLC - Clear Carry Flag
func (cpu *Cpu6502) opCLC() byte {
	cpu.SetFlag(StatusFlagC, false)
	return 0
}

// CLD - Clear Decimal Mode
func (cpu *Cpu6502) opCLD() byte {
	cpu.SetFlag(StatusFlagD, false)
	return 0
}

// CLI - Clear Interrupt Disable
func (cpu *Cpu6502) opCLI() byte {
	cpu.SetFlag(StatusFlagI, false)
	return 0
}

// CLV - Clear Overflow Flag
func (cpu *Cpu6502) opCLV() byte {
	cpu.SetFlag(StatusFlagV, false)
	return 0
}

// Non-destructive register - memory subtraction used by CMP, CPX and CPY.
func (cpu *Cpu6502) compare(reg byte) {
	cpu.fetch()

	cpu.temp = uint16(reg) - uint16(cpu.fetched)

	cpu.SetFlag(StatusFlagC, reg >= cpu.fetched)
	cpu.setZN(byte(cpu.temp))
}

// CMP - Compare (Accumulator)
func (cpu *Cpu6502) opCMP() byte {
	cpu.compare(cpu.A)
	return 1
}

// CPX - Compare X Register
func (cpu *Cpu6502) opCPX() byte {
	cpu.compare(cpu.X)
	return 0
}

// CPY - Compare Y Register
func (cpu *Cpu6502) opCPY() byte {
	cpu.compare(cpu.Y)
	return 0
}

// DEC - Decrement Memory
func (cpu *Cpu6502) opDEC() byte {
	cpu.fetch()

	cpu.temp = uint16(cpu.fetched - 1)
	cpu.writeBack(byte(cpu.temp))
	cpu.setZN(byte(cpu.temp))

	return 0
}

// DEX - Decrement X Register
func (cpu *Cpu6502) opDEX() byte {
	cpu.X--
	cpu.setZN(cpu.X)
	return 0
}

// DEY - Decrement Y Register
func (cpu *Cpu6502) opDEY() byte {
	cpu.Y--
	cpu.setZN(cpu.Y)
	return 0
}

// EOR - Exclusive OR
func (cpu *Cpu6502) opEOR() byte {
	cpu.fetch()

	cpu.A ^= cpu.fetched
	cpu.setZN(cpu.A)

	return 1
}

// INC - Increment Memory
func (cpu *Cpu6502) opINC() byte {
	cpu.fetch()

	cpu.temp = uint16(cpu.fetched + 1)
	cpu.writeBack(byte(cpu.temp))
	cpu.setZN(byte(cpu.temp))

	return 0
}

// INX - Increment X Register
func (cpu *Cpu6502) opINX() byte {
	cpu.X++
	cpu.setZN(cpu.X)
	return 0
}

// INY - Increment Y Register
func (cpu *Cpu6502) opINY() byte {
	cpu.Y++
	cpu.setZN(cpu.Y)
	return 0
}

// JMP - Jump
func (cpu *Cpu6502) opJMP() byte {
	cpu.Pc = cpu.addrAbs
	return 0
}

// JSR - Jump to Subroutine
func (cpu *Cpu6502) opJSR() byte {
	// The pushed return address is the last byte of the JSR instruction, RTS
	// adds the missing one.
	cpu.Pc--
	cpu.stackPushWord(cpu.Pc)

	cpu.Pc = cpu.addrAbs

	return 0
}

// LDA - Load Accumulator
func (cpu *Cpu6502) opLDA() byte {
	cpu.fetch()

	cpu.A = cpu.fetched
	cpu.setZN(cpu.A)

	return 1
}

// LDX - Load X Register
func (cpu *Cpu6502) opLDX() byte {
	cpu.fetch()

	cpu.X = cpu.fetched
	cpu.setZN(cpu.X)

	return 1
}

// LDY - Load Y Register
func (cpu *Cpu6502) opLDY() byte {
	cpu.fetch()

	cpu.Y = cpu.fetched
	cpu.setZN(cpu.Y)

	return 1
}

// LSR - Logical Shift Right
func (cpu *Cpu6502) opLSR() byte {
	cpu.fetch()

	// Set carry flag to old bit 0.
	cpu.SetFlag(StatusFlagC, cpu.fetched&0x01 != 0)

	cpu.temp = uint16(cpu.fetched >> 1)
	cpu.setZN(byte(cpu.temp))

	cpu.writeBack(byte(cpu.temp))

	return 0
}

// NOP - No Operation
func (cpu *Cpu6502) opNOP() byte { return 0 }

// ORA - Logical Inclusive OR
func (cpu *Cpu6502) opORA() byte {
	cpu.fetch()

	cpu.A |= cpu.fetched
	cpu.setZN(cpu.A)

	return 1
}

// PHA - Push Accumulator
func (cpu *Cpu6502) opPHA() byte {
	cpu.stackPush(cpu.A)
	return 0
}

// PHP - Push Processor Status
func (cpu *Cpu6502) opPHP() byte {
	// The pushed copy always has B and U set.
	cpu.stackPush(cpu.Status | byte(StatusFlagB) | byte(StatusFlagU))

	cpu.SetFlag(StatusFlagB, false)
	cpu.SetFlag(StatusFlagU, false)

	return 0
}

// PLA - Pull Accumulator
func (cpu *Cpu6502) opPLA() byte {
	cpu.A = cpu.stackPop()
	cpu.setZN(cpu.A)
	return 0
}

// PLP - Pull Processor Status
func (cpu *Cpu6502) opPLP() byte {
	cpu.Status = cpu.stackPop()

	// Always set unused flag.
	cpu.SetFlag(StatusFlagU, true)

	return 0
}

// ROL - Rotate Left
func (cpu *Cpu6502) opROL() byte {
	cpu.fetch()

	// Shift left one, old carry goes into bit 0.
	cpu.temp = uint16(cpu.fetched)<<1 | uint16(cpu.GetFlag(StatusFlagC))

	cpu.SetFlag(StatusFlagC, cpu.temp&0xFF00 != 0)
	cpu.setZN(byte(cpu.temp))

	cpu.writeBack(byte(cpu.temp))

	return 0
}

// ROR - Rotate Right
func (cpu *Cpu6502) opROR() byte {
	cpu.fetch()

	// Shift right one, old carry goes into bit 7.
	cpu.temp = uint16(cpu.GetFlag(StatusFlagC))<<7 | uint16(cpu.fetched>>1)

	cpu.SetFlag(StatusFlagC, cpu.fetched&0x01 != 0)
	cpu.setZN(byte(cpu.temp))

	cpu.writeBack(byte(cpu.temp))

	return 0
}

// RTI - Return from Interrupt
func (cpu *Cpu6502) opRTI() byte {
	// Dummy read
	cpu.read(cpu.Pc)

	// Pull the status flags then the program counter from the stack. B and U
	// do not survive the round trip.
	cpu.Status = cpu.stackPop()
	cpu.Status &^= byte(StatusFlagB)
	cpu.Status &^= byte(StatusFlagU)

	cpu.Pc = cpu.stackPopWord()

	return 0
}

// RTS - Return from Subroutine
func (cpu *Cpu6502) opRTS() byte {
	// Dummy read
	cpu.read(cpu.Pc)

	cpu.Pc = cpu.stackPopWord()
	cpu.Pc++

	return 0
}

// SEC - Set Carry Flag
func (cpu *Cpu6502) opSEC() byte {
	cpu.SetFlag(StatusFlagC, true)
	return 0
}

// SED - Set Decimal Flag
func (cpu *Cpu6502) opSED() byte {
	cpu.SetFlag(StatusFlagD, true)
	return 0
}

// SEI - Set Interrupt Disable
func (cpu *Cpu6502) opSEI() byte {
	cpu.SetFlag(StatusFlagI, true)
	return 0
}

// STA - Store Accumulator
func (cpu *Cpu6502) opSTA() byte {
	cpu.write(cpu.addrAbs, cpu.A)
	return 0
}

// STX - Store X Register
func (cpu *Cpu6502) opSTX() byte {
	cpu.write(cpu.addrAbs, cpu.X)
	return 0
}

// STY - Store Y Register
func (cpu *Cpu6502) opSTY() byte {
	cpu.write(cpu.addrAbs, cpu.Y)
	return 0
}

// TAX - Transfer Accumulator to X
func (cpu *Cpu6502) opTAX() byte {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
	return 0
}

// TAY - Transfer Accumulator to Y
func (cpu *Cpu6502) opTAY() byte {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
	return 0
}

// TSX - Transfer Stack Pointer to X
func (cpu *Cpu6502) opTSX() byte {
	cpu.X = cpu.Sp
	cpu.setZN(cpu.X)
	return 0
}

// TXA - Transfer X to Accumulator
func (cpu *Cpu6502) opTXA() byte {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
	return 0
}

// TXS - Transfer X to Stack Pointer
func (cpu *Cpu6502) opTXS() byte {
	cpu.Sp = cpu.X
	return 0
}

// TYA - Transfer Y to Accumulator
func (cpu *Cpu6502) opTYA() byte {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
	return 0
}

// Catch-all instruction for illegal opcodes. The table still charges the
// opcode's cycles.
func (cpu *Cpu6502) opXXX() byte {
	cpu.logger.Debug("illegal opcode",
		log.Hex("opcode", cpu.opcode),
		log.Hex("pc", cpu.Pc-1))

	return 0
}
