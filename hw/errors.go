package hw

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode matches any *UnknownOpcodeError with errors.Is.
var ErrUnknownOpcode = errors.New("unknown opcode")

// UnknownOpcodeError is returned by Step when the fetched opcode has no entry
// in the instruction table.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16 // address the opcode was fetched from
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode $%02X at $%04X", e.Opcode, e.PC)
}

func (e *UnknownOpcodeError) Is(target error) bool {
	return target == ErrUnknownOpcode
}
