package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestZFieldValue(t *testing.T) {
	tests := []struct {
		f    ZField
		want string
	}{
		{ZField{Type: FieldTypeHex8, Integer: 0x0a}, "$0A"},
		{ZField{Type: FieldTypeHex16, Integer: 0xfffc}, "$FFFC"},
		{ZField{Type: FieldTypeInt, Integer: 42}, "42"},
		{ZField{Type: FieldTypeDuration, Duration: 1500 * time.Millisecond}, "1.5s"},
		{ZField{Type: FieldTypeString, String: "LDA"}, "LDA"},
		{ZField{Type: FieldTypeError}, "<nil>"},
		{ZField{Type: FieldTypeError, Error: errors.New("boom")}, "boom"},
	}
	for _, tt := range tests {
		if got := tt.f.Value(); got != tt.want {
			t.Errorf("Value() = %q, want %q", got, tt.want)
		}
	}
}

func TestModuleByName(t *testing.T) {
	mod, ok := ModuleByName("cpu")
	if !ok || mod != ModCPU {
		t.Fatalf("ModuleByName(cpu) = %v, %t", mod, ok)
	}
	if _, ok := ModuleByName("ppu"); ok {
		t.Errorf("ModuleByName(ppu) should not be found")
	}
}

func TestDebugMask(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	if ModMem.DebugZ("hidden") != nil {
		t.Fatalf("debug entry should be nil when module is not enabled")
	}

	EnableDebugModules(ModMem.Mask())
	t.Cleanup(func() { DisableDebugModules(ModMem.Mask()) })

	ModMem.DebugZ("write").Hex16("addr", 0x0200).Hex8("val", 0x42).End()

	out := buf.String()
	for _, want := range []string{"write", "$0200", "$42", "mem"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q doesn't contain %q", out, want)
		}
	}
}

func TestNilEntryZ(t *testing.T) {
	var z *EntryZ
	// must not panic
	z.Hex8("a", 1).String("b", "c").End()
}

func TestErrorAlwaysShown(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	ModEmu.ErrorZ("run failed").Error("err", errors.New("boom")).End()

	out := buf.String()
	for _, want := range []string{"level=error", "run failed", "boom", "emu"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q doesn't contain %q", out, want)
		}
	}

	buf.Reset()
	Disable()
	t.Cleanup(Enable)
	if ModEmu.ErrorZ("hidden") != nil {
		t.Errorf("error entry should be nil when logging is disabled")
	}
}
