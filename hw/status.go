package hw

import "m6502/hw/hwio"

// P is the processor status register. Flags are kept as discrete booleans;
// the packed byte form only exists on the stack (PHP/PLP) and for
// inspection, see Pack and Unpack.
type P struct {
	C bool // carry
	Z bool // zero
	I bool // interrupt disable
	D bool // decimal mode
	B bool // break
	V bool // overflow
	N bool // negative
}

// Bit positions in the packed status byte.
const (
	pbitC = iota // Carry flag
	pbitZ        // Zero flag
	pbitI        // Interrupt disable flag
	pbitD        // Decimal mode flag
	pbitB        // Break flag
	pbitU        // Unused, always reads as 1
	pbitV        // oVerflow flag
	pbitN        // Negative flag
)

// Pack returns the status register as a byte. The unused bit 5 is always set,
// like on hardware.
func (p P) Pack() uint8 {
	var v uint8
	hwio.WriteBit8(&v, pbitC, p.C)
	hwio.WriteBit8(&v, pbitZ, p.Z)
	hwio.WriteBit8(&v, pbitI, p.I)
	hwio.WriteBit8(&v, pbitD, p.D)
	hwio.WriteBit8(&v, pbitB, p.B)
	hwio.SetBit8(&v, pbitU)
	hwio.WriteBit8(&v, pbitV, p.V)
	hwio.WriteBit8(&v, pbitN, p.N)
	return v
}

// Unpack sets all seven flags from v. Bit 5 is ignored.
func (p *P) Unpack(v uint8) {
	p.C = hwio.GetBit8(v, pbitC)
	p.Z = hwio.GetBit8(v, pbitZ)
	p.I = hwio.GetBit8(v, pbitI)
	p.D = hwio.GetBit8(v, pbitD)
	p.B = hwio.GetBit8(v, pbitB)
	p.V = hwio.GetBit8(v, pbitV)
	p.N = hwio.GetBit8(v, pbitN)
}

// checkNZ sets Z if v is 0 and N if bit 7 of v is set, clears them otherwise.
func (p *P) checkNZ(v uint8) {
	p.Z = v == 0
	p.N = v&0x80 != 0
}

func (p P) String() string {
	const bits = "nvubdizcNVUBDIZC"

	v := p.Pack()
	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		ibit := (v & (1 << (7 - i))) >> (7 - i)
		s[i] = bits[i+int(8*ibit)]
	}
	return string(s)
}
