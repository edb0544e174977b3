package hw

//go:generate go tool stringer -type=AddrMode -linecomment

// AddrMode is a 6502 addressing mode. It determines how many operand bytes
// follow the opcode and how the effective address is computed.
type AddrMode uint8

const (
	Implied   AddrMode = iota // imp
	Immediate                 // imm
	ZeroPage                  // zpg
	ZeroPageX                 // zpx
	ZeroPageY                 // zpy
	Absolute                  // abs
	AbsoluteX                 // abx
	AbsoluteY                 // aby
	IndirectX                 // izx
	IndirectY                 // izy
)

// Size returns the total instruction length, in bytes, for an opcode using
// this addressing mode.
func (m AddrMode) Size() int {
	switch m {
	case Implied:
		return 1
	case Absolute, AbsoluteX, AbsoluteY:
		return 3
	}
	return 2
}

// resolver computes the effective address of an operand, fetching operand
// bytes at PC. It reports whether indexing crossed a page boundary.
type resolver func(cpu *CPU) (oper uint16, crossed bool)

var resolvers = [...]resolver{
	Implied:   (*CPU).imp,
	Immediate: (*CPU).imm,
	ZeroPage:  (*CPU).zpg,
	ZeroPageX: (*CPU).zpx,
	ZeroPageY: (*CPU).zpy,
	Absolute:  (*CPU).abs,
	AbsoluteX: (*CPU).abx,
	AbsoluteY: (*CPU).aby,
	IndirectX: (*CPU).izx,
	IndirectY: (*CPU).izy,
}

func pagecrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// implied addressing.
func (c *CPU) imp() (uint16, bool) {
	return 0, false
}

// immediate addressing: the operand is the byte following the opcode, the
// effective address is the address of that byte.
func (c *CPU) imm() (uint16, bool) {
	oper := c.PC
	c.PC++
	return oper, false
}

// zero page addressing.
func (c *CPU) zpg() (uint16, bool) {
	return uint16(c.FetchByte()), false
}

// indexed addressing: zeropage,X. Stays in page zero.
func (c *CPU) zpx() (uint16, bool) {
	return uint16(c.FetchByte() + c.X), false
}

// indexed addressing: zeropage,Y. Stays in page zero.
func (c *CPU) zpy() (uint16, bool) {
	return uint16(c.FetchByte() + c.Y), false
}

// absolute addressing.
func (c *CPU) abs() (uint16, bool) {
	return c.FetchWord(), false
}

// absolute indexed X.
func (c *CPU) abx() (uint16, bool) {
	base := c.FetchWord()
	oper := base + uint16(c.X)
	return oper, pagecrossed(base, oper)
}

// absolute indexed Y.
func (c *CPU) aby() (uint16, bool) {
	base := c.FetchWord()
	oper := base + uint16(c.Y)
	return oper, pagecrossed(base, oper)
}

// indexed addressing (zp,X).
func (c *CPU) izx() (uint16, bool) {
	ptr := c.FetchByte() + c.X
	return c.zpRead16(ptr), false
}

// indexed addressing (zp),Y.
func (c *CPU) izy() (uint16, bool) {
	base := c.zpRead16(c.FetchByte())
	oper := base + uint16(c.Y)
	return oper, pagecrossed(base, oper)
}

// zpRead16 reads a pointer from page zero. The high byte of a pointer stored
// at $FF is read from $00.
func (c *CPU) zpRead16(ptr uint8) uint16 {
	lo := c.bus.Read8(uint16(ptr))
	hi := c.bus.Read8(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}
