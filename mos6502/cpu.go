package mos6502

import (
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/log"
)

type Cpu6502 struct {
	Pc     uint16 // Program Counter
	Sp     byte   // Stack Pointer: low 8 bits of next free location on stack.
	A      byte   // Accumulator Register
	X      byte   // X Register
	Y      byte   // Y Register
	Status byte   // Processor Status Flags

	bus AddressSpace // Communication Bus

	// Internal variables
	cycles     byte   // Remaining cycles for current instruction
	opcode     byte   // Opcode of the instruction being executed
	addrAbs    uint16 // Set by addressing mode functions, used by instructions
	addrRel    uint16 // Relative displacement address used for branching
	fetched    byte   // Byte of memory used by CPU instructions
	temp       uint16 // Working value of the current instruction
	CycleCount uint32 // Total # of cycles executed by the CPU

	instLookup [16 * 16]Instruction // Instruction operation lookup

	logger  *log.Logger
	tracer  TraceFunc
	maskIRQ bool
}

const (
	stackBase uint16 = 0x0100

	resetVectAddr = uint16(m6502.ResetAddress) // $FFFC/D
	irqVectAddr   = uint16(m6502.IrqAddress)   // $FFFE/F, shared with BRK
	nmiVectAddr   = uint16(m6502.NMIAddress)   // $FFFA/B
)

// New creates a CPU attached to the given address space and resets it, so
// registers are never observed in an undefined pre-reset state.
func New(bus AddressSpace, opts ...Option) *Cpu6502 {
	cpu := &Cpu6502{
		bus: bus,
	}

	for _, opt := range opts {
		opt(cpu)
	}
	if cpu.logger == nil {
		cpu.logger = log.NewWithConfig(log.DefaultConfig())
	}

	cpu.instLookup = cpu.newInstructionTable()

	cpu.Reset()

	return cpu
}

// Read from the attached bus.
func (cpu *Cpu6502) read(addr uint16) byte {
	return cpu.bus.Read(addr, false)
}

// Write to the attached bus.
func (cpu *Cpu6502) write(addr uint16, data byte) {
	cpu.bus.Write(addr, data)
}

// Read a word from memory (little endian order).
func (cpu *Cpu6502) readWord(addr uint16) uint16 {
	lo := cpu.read(addr)
	hi := cpu.read(addr + 1)

	return uint16(hi)<<8 | uint16(lo)
}

// Read a byte from memory at the address previously set by the addressing
// mode function. In implied mode the addressing mode already loaded the
// accumulator into fetched.
func (cpu *Cpu6502) fetch() byte {
	if cpu.instLookup[cpu.opcode].Mode != IMP {
		cpu.fetched = cpu.read(cpu.addrAbs)
	}
	return cpu.fetched
}

// The result of ASL, LSR, ROL and ROR goes back to where the operand came
// from: the accumulator in implied mode, memory otherwise.
func (cpu *Cpu6502) writeBack(data byte) {
	if cpu.instLookup[cpu.opcode].Mode == IMP {
		cpu.A = data
	} else {
		cpu.write(cpu.addrAbs, data)
	}
}

// Functions to push and pop from the stack. The stack pointer wraps within
// page one.
func (cpu *Cpu6502) stackPush(data byte) {
	cpu.write(stackBase|uint16(cpu.Sp), data)
	cpu.Sp--
}

func (cpu *Cpu6502) stackPop() byte {
	cpu.Sp++
	return cpu.read(stackBase | uint16(cpu.Sp))
}

func (cpu *Cpu6502) stackPushWord(data uint16) {
	cpu.stackPush(byte(data >> 8))
	cpu.stackPush(byte(data))
}

func (cpu *Cpu6502) stackPopWord() uint16 {
	lo := cpu.stackPop()
	hi := cpu.stackPop()

	return uint16(hi)<<8 | uint16(lo)
}

////////////////////////////////////////////////////////////////
// Status Flags
type SF6502 byte // 6502 Status Flag

const (
	StatusFlagC SF6502 = 1 << iota // Carry
	StatusFlagZ                    // Zero
	StatusFlagI                    // Interrupt Disable
	StatusFlagD                    // Decimal Mode (stored only, no BCD arithmetic)
	StatusFlagB                    // Break Command
	StatusFlagU                    // UNUSED, reads as 1
	StatusFlagV                    // Overflow
	StatusFlagN                    // Negative
)

// GetFlag returns 1 if the flag is set, else 0.
func (cpu *Cpu6502) GetFlag(f SF6502) byte {
	if cpu.Status&byte(f) != 0 {
		return 1
	}
	return 0
}

// SetFlag sets or clears a single flag, leaving the other bits untouched.
func (cpu *Cpu6502) SetFlag(f SF6502, v bool) {
	if v {
		cpu.Status |= byte(f)
	} else {
		cpu.Status &^= byte(f)
	}
}

// Set the zero and negative flags from a result byte.
func (cpu *Cpu6502) setZN(v byte) {
	cpu.SetFlag(StatusFlagZ, v == 0)
	cpu.SetFlag(StatusFlagN, v&0x80 != 0)
}

////////////////////////////////////////////////////////////////
// Interrupts

// Reset forces the CPU into a known state and loads the program counter from
// the reset vector.
func (cpu *Cpu6502) Reset() {
	cpu.Pc = cpu.readWord(resetVectAddr)

	// Clear registers, reset stack pointer
	cpu.A = 0x00
	cpu.X = 0x00
	cpu.Y = 0x00
	cpu.Sp = 0xFD
	cpu.Status = byte(StatusFlagU)

	// Clear internal variables
	cpu.addrRel = 0x0000
	cpu.addrAbs = 0x0000
	cpu.fetched = 0x00
	cpu.temp = 0x0000
	cpu.opcode = 0x00

	// Spend time on reset
	cpu.cycles = 8

	cpu.logger.Debug("CPU reset", log.Hex("pc", cpu.Pc))
}

// IRQ - Interrupt Request. Unless IRQ masking was enabled with
// WithIRQMasking, the request is taken regardless of the I flag.
func (cpu *Cpu6502) IRQ() {
	if cpu.maskIRQ && cpu.GetFlag(StatusFlagI) == 1 {
		cpu.logger.Debug("IRQ masked", log.Hex("pc", cpu.Pc))
		return
	}

	cpu.interrupt(irqVectAddr)

	// An IRQ takes 7 cycles
	cpu.cycles = 7
}

// NMI - Non-Maskable Interrupt.
func (cpu *Cpu6502) NMI() {
	cpu.interrupt(nmiVectAddr)

	// An NMI takes 8 cycles
	cpu.cycles = 8
}

// Push the program counter and status, then jump through the given vector.
func (cpu *Cpu6502) interrupt(vector uint16) {
	returnAddr := cpu.Pc
	cpu.stackPushWord(returnAddr)

	cpu.SetFlag(StatusFlagB, false)
	cpu.SetFlag(StatusFlagU, true)
	cpu.SetFlag(StatusFlagI, true)
	cpu.stackPush(cpu.Status)

	cpu.Pc = cpu.readWord(vector)

	cpu.logger.Debug("interrupt",
		log.Hex("vector", vector),
		log.Hex("return", returnAddr),
		log.Hex("pc", cpu.Pc))
}

////////////////////////////////////////////////////////////////
// Clock

// Clock represents one CPU clock cycle. The whole instruction executes on the
// first cycle; the remaining cycles only count down.
func (cpu *Cpu6502) Clock() {
	if cpu.cycles == 0 {
		oldpc := cpu.Pc

		// Get the next opcode by reading from the bus at the location of the
		// current program counter.
		cpu.opcode = cpu.read(cpu.Pc)
		cpu.SetFlag(StatusFlagU, true)
		cpu.Pc++

		// Lookup by opcode the instruction to be executed.
		inst := cpu.instLookup[cpu.opcode]

		var before Trace
		if cpu.tracer != nil {
			before = cpu.traceState(oldpc, inst)
		}

		// Set required cycles for instruction execution.
		cpu.cycles = inst.Cycles

		// The extra cycle is only granted when both the addressing mode and the
		// instruction ask for it.
		extraCycles1 := inst.AddrMode()
		extraCycles2 := inst.Execute()
		cpu.cycles += extraCycles1 & extraCycles2

		cpu.SetFlag(StatusFlagU, true)

		if cpu.tracer != nil {
			before.Cycles = cpu.cycles
			cpu.tracer(before)
		}
	}

	cpu.CycleCount++

	cpu.cycles--
}

// Complete reports whether the current instruction has finished, which lets
// a host step one instruction at a time by clocking until it returns true.
func (cpu *Cpu6502) Complete() bool {
	return cpu.cycles == 0
}

// Opcode returns the opcode of the last decoded instruction.
func (cpu *Cpu6502) Opcode() byte { return cpu.opcode }

// Cycles returns the cycles left before the current instruction completes.
func (cpu *Cpu6502) Cycles() byte { return cpu.cycles }

// Lookup returns a copy of the instruction table entry for an opcode.
func (cpu *Cpu6502) Lookup(opcode byte) Instruction {
	return cpu.instLookup[opcode]
}
