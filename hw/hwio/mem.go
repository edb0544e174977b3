package hwio

import "m6502/emu/log"

// MemSize is the size of the whole 6502 address space.
const MemSize = 0x10000

// Mem is a flat 64KB memory covering the whole address space.
//
// Indexing the backing array with a uint16 reduces every address modulo
// 64KB, so no access can fall outside of it.
type Mem struct {
	Name string // name of the memory area (for debugging)

	data [MemSize]uint8
}

// NewMem returns a zeroed 64KB memory.
func NewMem(name string) *Mem {
	return &Mem{Name: name}
}

func (m *Mem) Read8(addr uint16) uint8 {
	return m.data[addr]
}

// Peek8 is a convenience function.
func (m *Mem) Peek8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *Mem) Write8(addr uint16, val uint8) {
	m.data[addr] = val
}

func (m *Mem) Read16(addr uint16) uint16 {
	return Read16(m, addr)
}

func (m *Mem) Write16(addr uint16, val uint16) {
	Write16(m, addr, val)
}

// Load copies buf into memory starting at addr. Bytes past $FFFF wrap around
// to $0000. If buf is larger than the address space, only its last 64KB end
// up in memory.
func (m *Mem) Load(addr uint16, buf []byte) {
	log.ModMem.DebugZ("load").
		String("name", m.Name).
		Hex16("addr", addr).
		Int("size", len(buf)).
		End()

	for i, b := range buf {
		m.data[addr+uint16(i)] = b
	}
}

// Reset zeroes the whole memory.
func (m *Mem) Reset() {
	clear(m.data[:])
}
