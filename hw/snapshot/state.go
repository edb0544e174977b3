// Package snapshot holds the serializable state of the emulated CPU.
package snapshot

import (
	"fmt"

	"github.com/go-faster/jx"
)

// CPU holds the CPU registers. JSON keys follow the naming used by
// the TomHarte processor tests ("pc", "s", "a", "x", "y", "p").
type CPU struct {
	PC uint16
	SP uint8
	P  uint8 // packed status register
	A  uint8
	X  uint8
	Y  uint8

	Cycles int64
}

// Encode writes the state as a JSON object.
func (s *CPU) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("pc")
	e.UInt16(s.PC)
	e.FieldStart("s")
	e.UInt8(s.SP)
	e.FieldStart("a")
	e.UInt8(s.A)
	e.FieldStart("x")
	e.UInt8(s.X)
	e.FieldStart("y")
	e.UInt8(s.Y)
	e.FieldStart("p")
	e.UInt8(s.P)
	e.FieldStart("cycles")
	e.Int64(s.Cycles)
	e.ObjEnd()
}

// Decode reads the state from a JSON object. Missing keys leave the
// corresponding fields untouched, unknown keys are skipped.
func (s *CPU) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "pc":
			s.PC, err = d.UInt16()
		case "s":
			s.SP, err = d.UInt8()
		case "a":
			s.A, err = d.UInt8()
		case "x":
			s.X, err = d.UInt8()
		case "y":
			s.Y, err = d.UInt8()
		case "p":
			s.P, err = d.UInt8()
		case "cycles":
			s.Cycles, err = d.Int64()
		default:
			return d.Skip()
		}
		if err != nil {
			return fmt.Errorf("snapshot: %q: %w", key, err)
		}
		return nil
	})
}

func (s *CPU) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	s.Encode(&e)
	return e.Bytes(), nil
}

func (s *CPU) UnmarshalJSON(data []byte) error {
	return s.Decode(jx.DecodeBytes(data))
}
