package mos6502

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/assert"
)

func TestInstructionTable(t *testing.T) {
	cpu, _ := newTestCpu(t)

	named := 0
	mnemonics := map[string]struct{}{}
	for i := 0; i < 256; i++ {
		inst := cpu.Lookup(byte(i))
		assert.NotNil(t, inst.Execute)
		assert.NotNil(t, inst.AddrMode)
		assert.True(t, inst.Cycles >= 2 && inst.Cycles <= 8)

		if inst.Name == "???" {
			assert.Equal(t, IMP, inst.Mode)
			continue
		}
		named++
		mnemonics[inst.Name] = struct{}{}
	}

	// 151 documented opcodes plus the $DA and $FA NOPs.
	assert.Equal(t, 153, named)
	assert.Equal(t, 56, len(mnemonics))
}

func TestInstructionTableEntries(t *testing.T) {
	cpu, _ := newTestCpu(t)

	tests := []struct {
		opcode byte
		name   string
		mode   AddressingMode
		cycles byte
	}{
		{0x00, "BRK", IMM, 7},
		{0x0A, "ASL", IMP, 2},
		{0x20, "JSR", ABS, 6},
		{0x4C, "JMP", ABS, 3},
		{0x6C, "JMP", IND, 5},
		{0x91, "STA", IZY, 6},
		{0xA1, "LDA", IZX, 6},
		{0xB6, "LDX", ZPY, 4},
		{0xBE, "LDX", ABY, 4},
		{0xD0, "BNE", REL, 2},
		{0xDA, "NOP", IMP, 2},
		{0xEA, "NOP", IMP, 2},
		{0xEB, "???", IMP, 2},
		{0xFE, "INC", ABX, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := cpu.Lookup(tt.opcode)
			assert.Equal(t, tt.name, inst.Name)
			assert.Equal(t, tt.mode, inst.Mode)
			assert.Equal(t, tt.cycles, inst.Cycles)
		})
	}
}

// The documented opcodes must decode to the same mnemonic and operand size as
// the retrogolib 6502 definitions.
func TestInstructionTableMatchesRetrogolib(t *testing.T) {
	cpu, _ := newTestCpu(t)

	modes := map[m6502.AddressingMode]AddressingMode{
		m6502.ImpliedAddressing:     IMP,
		m6502.AccumulatorAddressing: IMP,
		m6502.ImmediateAddressing:   IMM,
		m6502.RelativeAddressing:    REL,
		m6502.ZeroPageAddressing:    ZP0,
		m6502.ZeroPageXAddressing:   ZPX,
		m6502.ZeroPageYAddressing:   ZPY,
		m6502.AbsoluteAddressing:    ABS,
		m6502.AbsoluteXAddressing:   ABX,
		m6502.AbsoluteYAddressing:   ABY,
		m6502.IndirectAddressing:    IND,
		m6502.IndirectXAddressing:   IZX,
		m6502.IndirectYAddressing:   IZY,
	}

	for i, ref := range m6502.Opcodes {
		opcode := byte(i)
		if ref.Instruction == nil || ref.Instruction.Unofficial {
			continue
		}
		// BRK is implied there, here it consumes its padding byte.
		if opcode == 0x00 {
			continue
		}

		inst := cpu.Lookup(opcode)
		if !strings.EqualFold(ref.Instruction.Name, inst.Name) {
			t.Errorf("opcode %02X: got %s, want %s", opcode, inst.Name, ref.Instruction.Name)
			continue
		}
		mode, ok := modes[ref.Addressing]
		assert.True(t, ok)
		assert.Equal(t, mode.OperandBytes(), inst.Mode.OperandBytes())
	}
}
