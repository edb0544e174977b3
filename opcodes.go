package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-faster/jx"

	"m6502/hw"
)

// listOpcodes writes the table of supported opcodes, either as text or as a
// JSON array.
func listOpcodes(w io.Writer, asJSON bool) error {
	ops := hw.Opcodes()
	if asJSON {
		var e jx.Encoder
		e.SetIdent(2)
		e.ArrStart()
		for _, op := range ops {
			e.ObjStart()
			e.FieldStart("opcode")
			e.UInt8(op.Code)
			e.FieldStart("name")
			e.Str(op.Name)
			e.FieldStart("mode")
			e.Str(op.Mode.String())
			e.FieldStart("size")
			e.Int(op.Size())
			e.FieldStart("cycles")
			e.Int(op.Cycles)
			e.FieldStart("page_cross")
			e.Bool(op.PageCross)
			e.ObjEnd()
		}
		e.ArrEnd()
		_, err := w.Write(append(e.Bytes(), '\n'))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OPCODE\tNAME\tMODE\tSIZE\tCYCLES")
	for _, op := range ops {
		cycles := fmt.Sprint(op.Cycles)
		if op.PageCross {
			cycles += "*"
		}
		fmt.Fprintf(tw, "$%02X\t%s\t%s\t%d\t%s\n", op.Code, op.Name, op.Mode, op.Size(), cycles)
	}
	fmt.Fprintln(tw, "\n* one more cycle when a page boundary is crossed")
	return tw.Flush()
}
