package mos6502

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Disassembly maps the address of each instruction to its text.
type Disassembly map[uint16]string

// Addresses returns the instruction addresses in ascending order.
func (d Disassembly) Addresses() []uint16 {
	addrs := maps.Keys(d)
	slices.Sort(addrs)
	return addrs
}

// Lines returns the disassembled instructions in address order.
func (d Disassembly) Lines() []string {
	addrs := d.Addresses()
	lines := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		lines = append(lines, d[addr])
	}
	return lines
}

// Disassemble the program in memory between startAddr and endAddr (both
// inclusive) into human-readable CPU instructions mapped to their respective
// memory address. Memory is read in read-only mode and no CPU state changes.
//
// Much help from https://github.com/OneLoneCoder/olcNES
func (cpu *Cpu6502) Disassemble(startAddr, endAddr uint16) Disassembly {
	var lineDiss strings.Builder

	// this needs to be bigger than uint16, to determine when larger than endAddr
	addr := uint32(startAddr)

	disassembly := make(Disassembly)

	readOperand := func() byte {
		value := cpu.bus.Read(uint16(addr), true)
		addr++
		return value
	}

	for addr <= uint32(endAddr) {
		// Instruction memory address
		lineAddr := uint16(addr)
		fmt.Fprintf(&lineDiss, "$%04X: ", lineAddr)

		// Readable instruction name
		inst := cpu.instLookup[readOperand()]
		lineDiss.WriteString(inst.Name)
		lineDiss.WriteByte(' ')

		var lo, hi byte
		switch inst.Mode.OperandBytes() {
		case 1:
			lo = readOperand()
		case 2:
			lo = readOperand()
			hi = readOperand()
		}
		word := uint16(hi)<<8 | uint16(lo)

		switch inst.Mode {
		case IMP:
		case IMM:
			fmt.Fprintf(&lineDiss, "#$%02X ", lo)
		case REL:
			// addr already points past the operand, which is where the branch
			// displacement is taken from.
			target := uint16(addr) + uint16(int8(lo))
			fmt.Fprintf(&lineDiss, "$%02X [$%04X] ", lo, target)
		case ZP0:
			fmt.Fprintf(&lineDiss, "$%02X ", lo)
		case ZPX:
			fmt.Fprintf(&lineDiss, "$%02X, X ", lo)
		case ZPY:
			fmt.Fprintf(&lineDiss, "$%02X, Y ", lo)
		case IZX:
			fmt.Fprintf(&lineDiss, "($%02X, X) ", lo)
		case IZY:
			fmt.Fprintf(&lineDiss, "($%02X), Y ", lo)
		case ABS:
			fmt.Fprintf(&lineDiss, "$%04X ", word)
		case ABX:
			fmt.Fprintf(&lineDiss, "$%04X, X ", word)
		case ABY:
			fmt.Fprintf(&lineDiss, "$%04X, Y ", word)
		case IND:
			fmt.Fprintf(&lineDiss, "($%04X) ", word)
		}
		fmt.Fprintf(&lineDiss, "{%s}", inst.Mode)

		// Add to map
		disassembly[lineAddr] = lineDiss.String()
		lineDiss.Reset()
	}

	return disassembly
}
