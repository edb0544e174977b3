package hwio_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"m6502/hw/hwio"
)

func TestMemReadWrite8(t *testing.T) {
	m := hwio.NewMem("ram")
	for addr := 0; addr < hwio.MemSize; addr++ {
		val := uint8(addr ^ addr>>8)
		m.Write8(uint16(addr), val)
		if got := m.Read8(uint16(addr)); got != val {
			t.Fatalf("Read8($%04X) = $%02X, want $%02X", addr, got, val)
		}
	}
}

func TestMemReadWrite16(t *testing.T) {
	tests := []struct {
		addr uint16
		val  uint16
	}{
		{0x0000, 0x5678},
		{0x1234, 0x5678},
		{0x00FF, 0xBEEF},
		{0xFFFC, 0x1234},
		{0xFFFE, 0xABCD},
		{0xFFFF, 0xCAFE},
	}
	for _, tt := range tests {
		m := hwio.NewMem("ram")
		m.Write16(tt.addr, tt.val)
		if got := m.Read16(tt.addr); got != tt.val {
			t.Errorf("Read16($%04X) = $%04X, want $%04X", tt.addr, got, tt.val)
		}
	}
}

func TestMemLittleEndian(t *testing.T) {
	m := hwio.NewMem("ram")
	m.Write16(0x1234, 0x5678)
	if got := m.Read8(0x1234); got != 0x78 {
		t.Errorf("low byte = $%02X, want $78", got)
	}
	if got := m.Read8(0x1235); got != 0x56 {
		t.Errorf("high byte = $%02X, want $56", got)
	}
}

func TestMemWordWrapsAtTop(t *testing.T) {
	m := hwio.NewMem("ram")
	m.Write16(0xFFFF, 0x1234)

	if got := m.Read8(0xFFFF); got != 0x34 {
		t.Errorf("$FFFF = $%02X, want $34", got)
	}
	if got := m.Read8(0x0000); got != 0x12 {
		t.Errorf("$0000 = $%02X, want $12", got)
	}

	m.Write8(0xFFFF, 0xCD)
	m.Write8(0x0000, 0xAB)
	if got := m.Read16(0xFFFF); got != 0xABCD {
		t.Errorf("Read16($FFFF) = $%04X, want $ABCD", got)
	}
}

func TestMemLoad(t *testing.T) {
	m := hwio.NewMem("ram")
	m.Load(0xFFFE, []byte{0x01, 0x02, 0x03, 0x04})

	got := []byte{m.Read8(0xFFFE), m.Read8(0xFFFF), m.Read8(0x0000), m.Read8(0x0001)}
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}

	m.Reset()
	if got := m.Read8(0xFFFE); got != 0 {
		t.Errorf("after Reset, $FFFE = $%02X, want $00", got)
	}
}

func TestWatch(t *testing.T) {
	type access struct {
		Addr uint16
		Val  uint8
	}
	var reads, writes []access

	m := hwio.NewMem("ram")
	w := &hwio.Watch{
		Bus:     m,
		ReadCb:  func(addr uint16, val uint8) { reads = append(reads, access{addr, val}) },
		WriteCb: func(addr uint16, val uint8) { writes = append(writes, access{addr, val}) },
	}

	w.Write16(0xFFFF, 0x1234)
	if got := w.Read16(0xFFFF); got != 0x1234 {
		t.Fatalf("Read16($FFFF) = $%04X, want $1234", got)
	}

	want := []access{{0xFFFF, 0x34}, {0x0000, 0x12}}
	if diff := cmp.Diff(want, writes); diff != "" {
		t.Errorf("writes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, reads); diff != "" {
		t.Errorf("reads mismatch (-want +got):\n%s", diff)
	}

	// Accesses through the watch reach the underlying memory.
	if got := m.Read16(0xFFFF); got != 0x1234 {
		t.Errorf("underlying Read16($FFFF) = $%04X, want $1234", got)
	}

	// Peeks are not reported.
	reads = nil
	if got := w.Peek8(0xFFFF); got != 0x34 {
		t.Errorf("Peek8($FFFF) = $%02X, want $34", got)
	}
	if len(reads) != 0 {
		t.Errorf("Peek8 reported reads: %v", reads)
	}
}

func TestWriteBit8(t *testing.T) {
	var v uint8
	hwio.WriteBit8(&v, 7, true)
	hwio.WriteBit8(&v, 0, true)
	if v != 0x81 {
		t.Fatalf("v = $%02X, want $81", v)
	}
	hwio.WriteBit8(&v, 7, false)
	if v != 0x01 || hwio.GetBit8(v, 7) || !hwio.GetBit8(v, 0) {
		t.Fatalf("v = $%02X, want $01", v)
	}
}
