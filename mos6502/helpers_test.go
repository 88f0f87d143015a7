package mos6502

import (
	"testing"

	"github.com/retroenv/retrogolib/log"
)

const testOrigin uint16 = 0x8000

func newTestCpu(t *testing.T, opts ...Option) (*Cpu6502, *Bus) {
	t.Helper()

	bus := NewBus()
	opts = append([]Option{WithLogger(log.NewTestLogger(t))}, opts...)
	cpu := New(bus, opts...)

	return cpu, bus
}

// Write a program to memory, point the reset vector at it and clock away the
// reset cycles so the next Clock fetches the first instruction.
func load(cpu *Cpu6502, bus *Bus, addr uint16, program ...byte) {
	for i, b := range program {
		bus.Write(addr+uint16(i), b)
	}
	bus.Write(resetVectAddr, byte(addr))
	bus.Write(resetVectAddr+1, byte(addr>>8))

	cpu.Reset()
	for !cpu.Complete() {
		cpu.Clock()
	}
}

// Execute one instruction and return the number of cycles it took.
func step(cpu *Cpu6502) int {
	cycles := 0
	for {
		cpu.Clock()
		cycles++
		if cpu.Complete() {
			return cycles
		}
	}
}

func setVector(bus *Bus, vector, target uint16) {
	bus.Write(vector, byte(target))
	bus.Write(vector+1, byte(target>>8))
}

// Execute instructions until the program counter reaches pc. Returns the
// cycles spent, or false if pc was not reached within limit instructions.
func runUntil(cpu *Cpu6502, pc uint16, limit int) (int, bool) {
	cycles := 0
	for i := 0; cpu.Pc != pc; i++ {
		if i == limit {
			return cycles, false
		}
		cycles += step(cpu)
	}
	return cycles, true
}
