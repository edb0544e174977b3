package hw

import (
	"io"

	"m6502/emu/log"
	"m6502/hw/hwio"
	"m6502/hw/snapshot"
)

// ResetVector holds the address PC is loaded from on reset.
const ResetVector = uint16(0xFFFC)

// StackBase is the address of the stack page, the stack pointer is an offset
// into it.
const StackBase = uint16(0x0100)

// CPU is a 6502 execution core. It is not safe for concurrent use: a host
// sharing a bus between several CPUs must serialize their Step calls.
type CPU struct {
	bus hwio.Bus

	// Non-nil when execution tracing is enabled.
	tracer *tracer

	Cycles int64 // cycles consumed since last reset

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P
}

// NewCPU creates a CPU accessing memory through bus. The bus is not owned by
// the CPU and may be shared with other components.
func NewCPU(bus hwio.Bus) *CPU {
	return &CPU{
		bus: bus,
		SP:  0xFF,
	}
}

// Reset loads PC from the reset vector and puts every other register and
// flag back to its startup state. Memory is left untouched.
func (c *CPU) Reset() {
	c.A = 0x00
	c.X = 0x00
	c.Y = 0x00
	c.SP = 0xFF
	c.P = P{}
	c.Cycles = 0

	c.PC = c.bus.Read16(ResetVector)

	log.ModCPU.DebugZ("reset").
		Hex16("PC", c.PC).
		End()
}

// Step executes one instruction and returns the number of cycles it took.
//
// If the opcode at PC is not part of the instruction set, Step returns an
// *UnknownOpcodeError. In that case PC has moved past the opcode byte and no
// other register, flag or memory location has been modified.
func (c *CPU) Step() (int, error) {
	if c.tracer != nil {
		c.traceOp()
	}

	pc := c.PC
	opcode := c.FetchByte()
	op := &ops[opcode]
	if op.f == nil {
		log.ModCPU.DebugZ("unknown opcode").
			Hex16("PC", pc).
			Hex8("opcode", opcode).
			End()
		return 0, &UnknownOpcodeError{Opcode: opcode, PC: pc}
	}

	oper, crossed := resolvers[op.m](c)
	op.f(c, oper)

	cycles := int(op.c)
	if crossed && op.x {
		cycles++
	}
	c.Cycles += int64(cycles)
	return cycles, nil
}

// FetchByte reads the byte at PC and advances PC.
func (c *CPU) FetchByte() uint8 {
	val := c.bus.Read8(c.PC)
	c.PC++
	return val
}

// FetchWord reads the little-endian word at PC and advances PC by 2.
func (c *CPU) FetchWord() uint16 {
	val := c.bus.Read16(c.PC)
	c.PC += 2
	return val
}

func (c *CPU) Read8(addr uint16) uint8 {
	return c.bus.Read8(addr)
}

func (c *CPU) Write8(addr uint16, val uint8) {
	c.bus.Write8(addr, val)
}

/* stack operations */

// Push8 writes val at the top of the stack, then decrements SP.
func (c *CPU) Push8(val uint8) {
	top := StackBase + uint16(c.SP)
	c.bus.Write8(top, val)
	c.SP--
}

// Pull8 increments SP, then reads the value at the top of the stack.
func (c *CPU) Pull8() uint8 {
	c.SP++
	top := StackBase + uint16(c.SP)
	return c.bus.Read8(top)
}

/* status register */

// Status returns the packed status register.
func (c *CPU) Status() uint8 {
	return c.P.Pack()
}

// SetStatus sets all flags from the packed status byte v.
func (c *CPU) SetStatus(v uint8) {
	c.P.Unpack(v)
}

// setreg stores val into reg and updates the N and Z flags accordingly.
func (c *CPU) setreg(reg *uint8, val uint8) {
	*reg = val
	c.P.checkNZ(val)
}

/* snapshots */

// Snapshot returns the current register state.
func (c *CPU) Snapshot() *snapshot.CPU {
	return &snapshot.CPU{
		PC:     c.PC,
		SP:     c.SP,
		P:      c.Status(),
		A:      c.A,
		X:      c.X,
		Y:      c.Y,
		Cycles: c.Cycles,
	}
}

// Restore loads registers, flags and cycle counter from state.
func (c *CPU) Restore(state *snapshot.CPU) {
	c.PC = state.PC
	c.SP = state.SP
	c.SetStatus(state.P)
	c.A = state.A
	c.X = state.X
	c.Y = state.Y
	c.Cycles = state.Cycles
}

/* tracing */

// SetTraceOutput enables execution tracing: one line is written to w before
// each executed instruction. A nil w disables tracing.
func (c *CPU) SetTraceOutput(w io.Writer) {
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = &tracer{w: w}
}

func (c *CPU) traceOp() {
	c.tracer.write(cpuState{
		A:     c.A,
		X:     c.X,
		Y:     c.Y,
		P:     c.P,
		SP:    c.SP,
		PC:    c.PC,
		Clock: c.Cycles,
	}, c.bus)
}
