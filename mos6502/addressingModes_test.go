package mos6502

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestAddressingModeString(t *testing.T) {
	assert.Equal(t, "IMP", IMP.String())
	assert.Equal(t, "ZP0", ZP0.String())
	assert.Equal(t, "IZY", IZY.String())
	assert.Equal(t, "???", AddressingMode(42).String())
	assert.Equal(t, "???", AddressingMode(-1).String())
}

func TestOperandBytes(t *testing.T) {
	tests := []struct {
		mode     AddressingMode
		expected int
	}{
		{IMP, 0},
		{IMM, 1},
		{REL, 1},
		{ZP0, 1},
		{ZPX, 1},
		{ZPY, 1},
		{IZX, 1},
		{IZY, 1},
		{ABS, 2},
		{ABX, 2},
		{ABY, 2},
		{IND, 2},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.OperandBytes())
		})
	}
}

func TestEffectiveAddress(t *testing.T) {
	tests := []struct {
		name     string
		operands []byte
		resolve  func(cpu *Cpu6502) byte
		x, y     byte
		setup    map[uint16]byte
		expected uint16
		crossed  byte
	}{
		{
			name:     "immediate",
			operands: []byte{0x42},
			resolve:  (*Cpu6502).amIMM,
			expected: 0x0200,
		},
		{
			name:     "zero page",
			operands: []byte{0x42},
			resolve:  (*Cpu6502).amZP0,
			expected: 0x0042,
		},
		{
			name:     "zero page x wraps",
			operands: []byte{0xF0},
			resolve:  (*Cpu6502).amZPX,
			x:        0x20,
			expected: 0x0010,
		},
		{
			name:     "zero page y wraps",
			operands: []byte{0xFF},
			resolve:  (*Cpu6502).amZPY,
			y:        0x02,
			expected: 0x0001,
		},
		{
			name:     "absolute",
			operands: []byte{0x34, 0x12},
			resolve:  (*Cpu6502).amABS,
			expected: 0x1234,
		},
		{
			name:     "absolute x",
			operands: []byte{0x00, 0x10},
			resolve:  (*Cpu6502).amABX,
			x:        0x05,
			expected: 0x1005,
		},
		{
			name:     "absolute x page cross",
			operands: []byte{0xFF, 0x10},
			resolve:  (*Cpu6502).amABX,
			x:        0x01,
			expected: 0x1100,
			crossed:  1,
		},
		{
			name:     "absolute y page cross",
			operands: []byte{0x80, 0x10},
			resolve:  (*Cpu6502).amABY,
			y:        0x80,
			expected: 0x1100,
			crossed:  1,
		},
		{
			name:     "absolute y wraps address space",
			operands: []byte{0xFF, 0xFF},
			resolve:  (*Cpu6502).amABY,
			y:        0x02,
			expected: 0x0001,
			crossed:  1,
		},
		{
			name:     "indirect",
			operands: []byte{0x20, 0x30},
			resolve:  (*Cpu6502).amIND,
			setup:    map[uint16]byte{0x3020: 0x34, 0x3021: 0x12},
			expected: 0x1234,
		},
		{
			name:     "indirect page boundary bug",
			operands: []byte{0xFF, 0x30},
			resolve:  (*Cpu6502).amIND,
			setup:    map[uint16]byte{0x30FF: 0x40, 0x3000: 0x80, 0x3100: 0x50},
			expected: 0x8040,
		},
		{
			name:     "indexed indirect",
			operands: []byte{0x20},
			resolve:  (*Cpu6502).amIZX,
			x:        0x04,
			setup:    map[uint16]byte{0x0024: 0x74, 0x0025: 0x20},
			expected: 0x2074,
		},
		{
			name:     "indexed indirect pointer wraps",
			operands: []byte{0xFE},
			resolve:  (*Cpu6502).amIZX,
			x:        0x01,
			setup:    map[uint16]byte{0x00FF: 0x34, 0x0000: 0x12, 0x0100: 0x99},
			expected: 0x1234,
		},
		{
			name:     "indirect indexed",
			operands: []byte{0x86},
			resolve:  (*Cpu6502).amIZY,
			y:        0x10,
			setup:    map[uint16]byte{0x0086: 0x28, 0x0087: 0x40},
			expected: 0x4038,
		},
		{
			name:     "indirect indexed page cross",
			operands: []byte{0x86},
			resolve:  (*Cpu6502).amIZY,
			y:        0x10,
			setup:    map[uint16]byte{0x0086: 0xF8, 0x0087: 0x40},
			expected: 0x4108,
			crossed:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, bus := newTestCpu(t)
			for i, b := range tt.operands {
				bus.Write(0x0200+uint16(i), b)
			}
			for addr, value := range tt.setup {
				bus.Write(addr, value)
			}
			cpu.Pc = 0x0200
			cpu.X = tt.x
			cpu.Y = tt.y

			crossed := tt.resolve(cpu)

			assert.Equal(t, tt.expected, cpu.addrAbs)
			assert.Equal(t, tt.crossed, crossed)
			assert.Equal(t, 0x0200+uint16(len(tt.operands)), cpu.Pc)
		})
	}
}

func TestRelativeSignExtension(t *testing.T) {
	tests := []struct {
		offset   byte
		expected uint16
	}{
		{0x00, 0x0000},
		{0x7F, 0x007F},
		{0x80, 0xFF80},
		{0xFA, 0xFFFA},
	}

	for _, tt := range tests {
		cpu, bus := newTestCpu(t)
		bus.Write(0x0200, tt.offset)
		cpu.Pc = 0x0200

		assert.Equal(t, byte(0), cpu.amREL())
		assert.Equal(t, tt.expected, cpu.addrRel)
		assert.Equal(t, uint16(0x0201), cpu.Pc)
	}
}

func TestImpliedLoadsAccumulator(t *testing.T) {
	cpu, _ := newTestCpu(t)
	cpu.A = 0x5A
	cpu.Pc = 0x0200

	assert.Equal(t, byte(0), cpu.amIMP())
	assert.Equal(t, byte(0x5A), cpu.fetched)
	assert.Equal(t, uint16(0x0200), cpu.Pc)
}

func TestJMPIndirectPageBoundary(t *testing.T) {
	cpu, bus := newTestCpu(t)
	load(cpu, bus, testOrigin, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	bus.Write(0x30FF, 0x40)
	bus.Write(0x3000, 0x80)
	bus.Write(0x3100, 0x50)

	assert.Equal(t, 5, step(cpu))
	assert.Equal(t, uint16(0x8040), cpu.Pc)
}
