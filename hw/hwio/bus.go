package hwio

// Bus is the CPU view of the address space. Every 16-bit address is valid;
// implementations never fail.
type Bus interface {
	Read8(addr uint16) uint8
	// Peek8 reads a byte without side effects. It's meant for debugging
	// tools, it's not a CPU access.
	Peek8(addr uint16) uint8
	Write8(addr uint16, val uint8)

	// Read16 reads a little-endian word: low byte at addr, high byte at
	// addr+1, wrapping to $0000 past $FFFF.
	Read16(addr uint16) uint16
	// Write16 mirrors Read16.
	Write16(addr uint16, val uint16)
}

// Read16 assembles a little-endian word from two byte reads on b.
func Read16(b Bus, addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 splits val into two byte writes on b, low byte first.
func Write16(b Bus, addr uint16, val uint16) {
	lo := uint8(val & 0xff)
	hi := uint8(val >> 8)
	b.Write8(addr, lo)
	b.Write8(addr+1, hi)
}
