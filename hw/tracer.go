package hw

import (
	"fmt"
	"io"

	"m6502/hw/hwio"
)

// cpuState stores the CPU state for the execution trace.
type cpuState struct {
	A, X, Y uint8
	P       P
	SP      uint8
	PC      uint16

	Clock int64
}

type tracer struct {
	w   io.Writer
	buf []byte
}

func hexEncode(dst []byte, v byte) {
	const hextable = "0123456789ABCDEF"
	dst[0] = hextable[v>>4]
	dst[1] = hextable[v&0x0f]
}

// write the execution trace line for the instruction at state.PC, with the
// register state before it executes:
//
//	1234  BD 78 56  LDA abx  A:00 X:10 Y:00 P:24 SP:FF CYC:7
func (t *tracer) write(state cpuState, bus hwio.Bus) {
	const opcodeCol = 16

	buf := append(t.buf[:0], "0000  "...)
	hexEncode(buf[0:], byte(state.PC>>8))
	hexEncode(buf[2:], byte(state.PC))

	opcode := bus.Peek8(state.PC)
	op, ok := LookupOpcode(opcode)
	size := 1
	if ok {
		size = op.Size()
	}

	for i := 0; i < size; i++ {
		var hex [2]byte
		hexEncode(hex[:], bus.Peek8(state.PC+uint16(i)))
		buf = append(buf, hex[0], hex[1], ' ')
	}
	for len(buf) < opcodeCol {
		buf = append(buf, ' ')
	}

	if ok {
		buf = fmt.Appendf(buf, "%s %s ", op.Name, op.Mode)
	} else {
		buf = append(buf, "??? ??? "...)
	}

	buf = fmt.Appendf(buf, " A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
		state.A, state.X, state.Y, state.P.Pack(), state.SP, state.Clock)
	t.buf = buf
	t.w.Write(buf)
}
