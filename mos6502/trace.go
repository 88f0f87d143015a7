package mos6502

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Trace describes one decoded instruction together with the register state
// from before it executed.
type Trace struct {
	Pc     uint16 // Address of the opcode
	Opcode byte
	Name   string
	Mode   AddressingMode

	A, X, Y, Sp, Status byte

	Cycles     byte   // Cycles charged for the instruction, extra cycles included
	CycleCount uint32 // Total CPU cycles before the instruction started
}

type TraceFunc func(Trace)

func (t Trace) String() string {
	return fmt.Sprintf("%04X  %02X - %s {%s}\tA:%02X X:%02X Y:%02X P:%02X SP:%02X\tCYC:%d",
		t.Pc, t.Opcode, t.Name, t.Mode, t.A, t.X, t.Y, t.Status, t.Sp, t.CycleCount)
}

// NewLogTracer returns a TraceFunc writing one debug line per instruction.
func NewLogTracer(logger *log.Logger) TraceFunc {
	return func(t Trace) {
		logger.Debug(t.Name,
			log.Hex("pc", t.Pc),
			log.Hex("opcode", t.Opcode),
			log.String("mode", t.Mode.String()),
			log.Hex("a", t.A),
			log.Hex("x", t.X),
			log.Hex("y", t.Y),
			log.Hex("p", t.Status),
			log.Hex("sp", t.Sp),
			log.Int("cycles", int(t.Cycles)),
			log.Int("cycle_count", int(t.CycleCount)))
	}
}

func (cpu *Cpu6502) traceState(pc uint16, inst Instruction) Trace {
	return Trace{
		Pc:         pc,
		Opcode:     cpu.opcode,
		Name:       inst.Name,
		Mode:       inst.Mode,
		A:          cpu.A,
		X:          cpu.X,
		Y:          cpu.Y,
		Sp:         cpu.Sp,
		Status:     cpu.Status,
		CycleCount: cpu.CycleCount,
	}
}
