package mos6502

// State is a snapshot of everything the CPU owns except its bus and
// configuration.
type State struct {
	Pc, AddrAbs, AddrRel, Temp           uint16
	Sp, A, X, Y, Status, Opcode, Fetched byte
	Cycles                               byte
	CycleCount                           uint32
}

func (cpu *Cpu6502) SaveState() State {
	return State{
		Pc:         cpu.Pc,
		AddrAbs:    cpu.addrAbs,
		AddrRel:    cpu.addrRel,
		Temp:       cpu.temp,
		Sp:         cpu.Sp,
		A:          cpu.A,
		X:          cpu.X,
		Y:          cpu.Y,
		Status:     cpu.Status,
		Opcode:     cpu.opcode,
		Fetched:    cpu.fetched,
		Cycles:     cpu.cycles,
		CycleCount: cpu.CycleCount,
	}
}

func (cpu *Cpu6502) LoadState(s State) {
	cpu.Pc, cpu.addrAbs, cpu.addrRel, cpu.temp = s.Pc, s.AddrAbs, s.AddrRel, s.Temp
	cpu.Sp, cpu.A, cpu.X, cpu.Y, cpu.Status = s.Sp, s.A, s.X, s.Y, s.Status
	cpu.opcode, cpu.fetched = s.Opcode, s.Fetched
	cpu.cycles, cpu.CycleCount = s.Cycles, s.CycleCount
}
