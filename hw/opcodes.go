package hw

type opdef struct {
	n string             // mnemonic
	m AddrMode           // addressing mode
	c uint8              // base cycle count
	x bool               // +1 cycle when indexing crosses a page
	f func(*CPU, uint16) // nil for opcodes that aren't implemented
}

// ops is the instruction table, indexed by opcode.
var ops = [256]opdef{
	0x01: {n: "ORA", m: IndirectX, c: 6, f: ORA},
	0x05: {n: "ORA", m: ZeroPage, c: 3, f: ORA},
	0x08: {n: "PHP", m: Implied, c: 3, f: PHP},
	0x09: {n: "ORA", m: Immediate, c: 2, f: ORA},
	0x0D: {n: "ORA", m: Absolute, c: 4, f: ORA},
	0x11: {n: "ORA", m: IndirectY, c: 5, x: true, f: ORA},
	0x15: {n: "ORA", m: ZeroPageX, c: 4, f: ORA},
	0x18: {n: "CLC", m: Implied, c: 2, f: CLC},
	0x19: {n: "ORA", m: AbsoluteY, c: 4, x: true, f: ORA},
	0x1D: {n: "ORA", m: AbsoluteX, c: 4, x: true, f: ORA},
	0x21: {n: "AND", m: IndirectX, c: 6, f: AND},
	0x25: {n: "AND", m: ZeroPage, c: 3, f: AND},
	0x28: {n: "PLP", m: Implied, c: 4, f: PLP},
	0x29: {n: "AND", m: Immediate, c: 2, f: AND},
	0x2D: {n: "AND", m: Absolute, c: 4, f: AND},
	0x31: {n: "AND", m: IndirectY, c: 5, x: true, f: AND},
	0x35: {n: "AND", m: ZeroPageX, c: 4, f: AND},
	0x38: {n: "SEC", m: Implied, c: 2, f: SEC},
	0x39: {n: "AND", m: AbsoluteY, c: 4, x: true, f: AND},
	0x3D: {n: "AND", m: AbsoluteX, c: 4, x: true, f: AND},
	0x41: {n: "EOR", m: IndirectX, c: 6, f: EOR},
	0x45: {n: "EOR", m: ZeroPage, c: 3, f: EOR},
	0x48: {n: "PHA", m: Implied, c: 3, f: PHA},
	0x49: {n: "EOR", m: Immediate, c: 2, f: EOR},
	0x4D: {n: "EOR", m: Absolute, c: 4, f: EOR},
	0x51: {n: "EOR", m: IndirectY, c: 5, x: true, f: EOR},
	0x55: {n: "EOR", m: ZeroPageX, c: 4, f: EOR},
	0x58: {n: "CLI", m: Implied, c: 2, f: CLI},
	0x59: {n: "EOR", m: AbsoluteY, c: 4, x: true, f: EOR},
	0x5D: {n: "EOR", m: AbsoluteX, c: 4, x: true, f: EOR},
	0x68: {n: "PLA", m: Implied, c: 4, f: PLA},
	0x78: {n: "SEI", m: Implied, c: 2, f: SEI},
	0x81: {n: "STA", m: IndirectX, c: 6, f: STA},
	0x84: {n: "STY", m: ZeroPage, c: 3, f: STY},
	0x85: {n: "STA", m: ZeroPage, c: 3, f: STA},
	0x86: {n: "STX", m: ZeroPage, c: 3, f: STX},
	0x88: {n: "DEY", m: Implied, c: 2, f: DEY},
	0x8A: {n: "TXA", m: Implied, c: 2, f: TXA},
	0x8C: {n: "STY", m: Absolute, c: 4, f: STY},
	0x8D: {n: "STA", m: Absolute, c: 4, f: STA},
	0x8E: {n: "STX", m: Absolute, c: 4, f: STX},
	0x91: {n: "STA", m: IndirectY, c: 6, f: STA},
	0x94: {n: "STY", m: ZeroPageX, c: 4, f: STY},
	0x95: {n: "STA", m: ZeroPageX, c: 4, f: STA},
	0x96: {n: "STX", m: ZeroPageY, c: 4, f: STX},
	0x98: {n: "TYA", m: Implied, c: 2, f: TYA},
	0x99: {n: "STA", m: AbsoluteY, c: 5, f: STA},
	0x9A: {n: "TXS", m: Implied, c: 2, f: TXS},
	0x9D: {n: "STA", m: AbsoluteX, c: 5, f: STA},
	0xA0: {n: "LDY", m: Immediate, c: 2, f: LDY},
	0xA1: {n: "LDA", m: IndirectX, c: 6, f: LDA},
	0xA2: {n: "LDX", m: Immediate, c: 2, f: LDX},
	0xA4: {n: "LDY", m: ZeroPage, c: 3, f: LDY},
	0xA5: {n: "LDA", m: ZeroPage, c: 3, f: LDA},
	0xA6: {n: "LDX", m: ZeroPage, c: 3, f: LDX},
	0xA8: {n: "TAY", m: Implied, c: 2, f: TAY},
	0xA9: {n: "LDA", m: Immediate, c: 2, f: LDA},
	0xAA: {n: "TAX", m: Implied, c: 2, f: TAX},
	0xAC: {n: "LDY", m: Absolute, c: 4, f: LDY},
	0xAD: {n: "LDA", m: Absolute, c: 4, f: LDA},
	0xAE: {n: "LDX", m: Absolute, c: 4, f: LDX},
	0xB1: {n: "LDA", m: IndirectY, c: 5, x: true, f: LDA},
	0xB4: {n: "LDY", m: ZeroPageX, c: 4, f: LDY},
	0xB5: {n: "LDA", m: ZeroPageX, c: 4, f: LDA},
	0xB6: {n: "LDX", m: ZeroPageY, c: 4, f: LDX},
	0xB8: {n: "CLV", m: Implied, c: 2, f: CLV},
	0xB9: {n: "LDA", m: AbsoluteY, c: 4, x: true, f: LDA},
	0xBA: {n: "TSX", m: Implied, c: 2, f: TSX},
	0xBC: {n: "LDY", m: AbsoluteX, c: 4, x: true, f: LDY},
	0xBD: {n: "LDA", m: AbsoluteX, c: 4, x: true, f: LDA},
	0xBE: {n: "LDX", m: AbsoluteY, c: 4, x: true, f: LDX},
	0xC8: {n: "INY", m: Implied, c: 2, f: INY},
	0xCA: {n: "DEX", m: Implied, c: 2, f: DEX},
	0xD8: {n: "CLD", m: Implied, c: 2, f: CLD},
	0xE8: {n: "INX", m: Implied, c: 2, f: INX},
	0xEA: {n: "NOP", m: Implied, c: 2, f: NOP},
	0xF8: {n: "SED", m: Implied, c: 2, f: SED},
}

// Opcode describes one entry of the instruction table.
type Opcode struct {
	Code      uint8
	Name      string
	Mode      AddrMode
	Cycles    int  // base cycle count
	PageCross bool // whether crossing a page costs one more cycle
}

func (op Opcode) Size() int { return op.Mode.Size() }

func (d *opdef) opcode(code uint8) Opcode {
	return Opcode{
		Code:      code,
		Name:      d.n,
		Mode:      d.m,
		Cycles:    int(d.c),
		PageCross: d.x,
	}
}

// LookupOpcode returns the description of opcode, and false if the opcode is
// not part of the instruction set.
func LookupOpcode(opcode uint8) (Opcode, bool) {
	d := &ops[opcode]
	if d.f == nil {
		return Opcode{}, false
	}
	return d.opcode(opcode), true
}

// Opcodes returns all implemented opcodes, sorted by opcode value.
func Opcodes() []Opcode {
	var all []Opcode
	for i := range ops {
		if ops[i].f != nil {
			all = append(all, ops[i].opcode(uint8(i)))
		}
	}
	return all
}

/* load / store */

func LDA(cpu *CPU, oper uint16) { cpu.setreg(&cpu.A, cpu.Read8(oper)) }
func LDX(cpu *CPU, oper uint16) { cpu.setreg(&cpu.X, cpu.Read8(oper)) }
func LDY(cpu *CPU, oper uint16) { cpu.setreg(&cpu.Y, cpu.Read8(oper)) }

func STA(cpu *CPU, oper uint16) { cpu.Write8(oper, cpu.A) }
func STX(cpu *CPU, oper uint16) { cpu.Write8(oper, cpu.X) }
func STY(cpu *CPU, oper uint16) { cpu.Write8(oper, cpu.Y) }

/* register transfers */

func TAX(cpu *CPU, _ uint16) { cpu.setreg(&cpu.X, cpu.A) }
func TAY(cpu *CPU, _ uint16) { cpu.setreg(&cpu.Y, cpu.A) }
func TXA(cpu *CPU, _ uint16) { cpu.setreg(&cpu.A, cpu.X) }
func TYA(cpu *CPU, _ uint16) { cpu.setreg(&cpu.A, cpu.Y) }
func TSX(cpu *CPU, _ uint16) { cpu.setreg(&cpu.X, cpu.SP) }

// TXS is the only transfer leaving flags untouched.
func TXS(cpu *CPU, _ uint16) { cpu.SP = cpu.X }

/* stack */

func PHA(cpu *CPU, _ uint16) { cpu.Push8(cpu.A) }
func PHP(cpu *CPU, _ uint16) { cpu.Push8(cpu.Status()) }
func PLA(cpu *CPU, _ uint16) { cpu.setreg(&cpu.A, cpu.Pull8()) }
func PLP(cpu *CPU, _ uint16) { cpu.SetStatus(cpu.Pull8()) }

/* logical */

func AND(cpu *CPU, oper uint16) { cpu.setreg(&cpu.A, cpu.A&cpu.Read8(oper)) }
func EOR(cpu *CPU, oper uint16) { cpu.setreg(&cpu.A, cpu.A^cpu.Read8(oper)) }
func ORA(cpu *CPU, oper uint16) { cpu.setreg(&cpu.A, cpu.A|cpu.Read8(oper)) }

/* increments / decrements */

func INX(cpu *CPU, _ uint16) { cpu.setreg(&cpu.X, cpu.X+1) }
func INY(cpu *CPU, _ uint16) { cpu.setreg(&cpu.Y, cpu.Y+1) }
func DEX(cpu *CPU, _ uint16) { cpu.setreg(&cpu.X, cpu.X-1) }
func DEY(cpu *CPU, _ uint16) { cpu.setreg(&cpu.Y, cpu.Y-1) }

/* flags */

func CLC(cpu *CPU, _ uint16) { cpu.P.C = false }
func SEC(cpu *CPU, _ uint16) { cpu.P.C = true }
func CLI(cpu *CPU, _ uint16) { cpu.P.I = false }
func SEI(cpu *CPU, _ uint16) { cpu.P.I = true }
func CLD(cpu *CPU, _ uint16) { cpu.P.D = false }
func SED(cpu *CPU, _ uint16) { cpu.P.D = true }
func CLV(cpu *CPU, _ uint16) { cpu.P.V = false }

func NOP(*CPU, uint16) {}
