package mos6502

// AddressSpace is the memory the CPU and disassembler talk to. readOnly marks
// passive inspection (disassembly, debugging) so an implementation with
// side-effecting regions can skip them.
type AddressSpace interface {
	Read(addr uint16, readOnly bool) byte
	Write(addr uint16, data byte)
}

const (
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0xFFFF
)

// Flat 64kb address space: no mirroring, no bank switching, no devices.
type Bus struct {
	Ram [64 * 1024]byte

	onWrite func(addr uint16, data byte)
}

func NewBus() *Bus {
	return &Bus{
		Ram: [64 * 1024]byte{},
	}
}

// OnWrite attaches an observer called after every write. Pass nil to detach.
func (b *Bus) OnWrite(fn func(addr uint16, data byte)) { b.onWrite = fn }

func (b *Bus) Read(addr uint16, readOnly bool) byte {
	if addr >= ramMinAddr && addr <= ramMaxAddr {
		return b.Ram[addr]
	}
	return 0x00
}

func (b *Bus) Write(addr uint16, data byte) {
	if addr >= ramMinAddr && addr <= ramMaxAddr {
		b.Ram[addr] = data

		if b.onWrite != nil {
			b.onWrite(addr, data)
		}
	}
}
