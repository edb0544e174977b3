package log

import (
	"strconv"
	"time"
)

type FieldType int

const (
	FieldTypeUnknown FieldType = iota
	FieldTypeString
	FieldTypeHex8
	FieldTypeHex16
	FieldTypeInt
	FieldTypeError
	FieldTypeDuration
)

type ZField struct {
	Type FieldType
	Key  string

	// Only one of these is populated, depending on Type.
	String   string
	Integer  uint64
	Duration time.Duration
	Error    error
}

const hextable = "0123456789ABCDEF"

func hexString(v uint64, ndigits int) string {
	buf := make([]byte, ndigits+1)
	buf[0] = '$'
	for i := ndigits; i > 0; i-- {
		buf[i] = hextable[v&0x0f]
		v >>= 4
	}
	return string(buf)
}

// Value renders the field the way it appears in log output. Hexadecimal
// fields use the 6502 assembler notation ($12, $1234).
func (f *ZField) Value() string {
	switch f.Type {
	case FieldTypeString:
		return f.String
	case FieldTypeInt:
		return strconv.FormatInt(int64(f.Integer), 10)
	case FieldTypeHex8:
		return hexString(f.Integer, 2)
	case FieldTypeHex16:
		return hexString(f.Integer, 4)
	case FieldTypeError:
		if f.Error == nil {
			return "<nil>"
		}
		return f.Error.Error()
	case FieldTypeDuration:
		return f.Duration.String()
	}
	return ""
}
