package hw

import (
	"strings"
	"testing"

	"m6502/hw/hwio"
)

// tbwriter writes the execution trace into the test log.
type tbwriter struct{ tb testing.TB }

func (w tbwriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// newTestCPU returns a CPU with PC at $1234 and code loaded there.
func newTestCPU(tb testing.TB, code ...uint8) (*CPU, *hwio.Mem) {
	tb.Helper()

	mem := hwio.NewMem("ram")
	mem.Load(0x1234, code)
	cpu := NewCPU(mem)
	cpu.PC = 0x1234
	if testing.Verbose() {
		cpu.SetTraceOutput(tbwriter{tb})
	}
	return cpu, mem
}

func b2i(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func wantMem8(t *testing.T, bus hwio.Bus, addr uint16, want uint8) {
	t.Helper()

	if got := bus.Read8(addr); got != want {
		t.Errorf("$%04X = $%02X want $%02X", addr, got, want)
	}
}

// stepAndCheckState executes one instruction, checks that it took ncycles
// and then checks the given states, which are pairs of register name and
// expected value:
//
//	"A", "X", "Y", "SP", "P"   uint8
//	"PC"                       uint16
//	"Pnvbdizc" (any subset)    uint8, 0 or 1, expected value for all listed flags
func stepAndCheckState(t *testing.T, cpu *CPU, ncycles int, states ...any) {
	t.Helper()

	if len(states)%2 != 0 {
		panic("odd number of states")
	}

	cycles, err := cpu.Step()
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if cycles != ncycles {
		t.Errorf("got %d cycles, want %d", cycles, ncycles)
	}

	checkState(t, cpu, states...)
}

func checkState(t *testing.T, cpu *CPU, states ...any) {
	t.Helper()

	checkbool := func(name string, got, want uint8) {
		t.Helper()
		if got != want {
			t.Errorf("got %s=%d, want %d", name, got, want)
		}
	}
	checkuint8 := func(name string, got, want uint8) {
		t.Helper()
		if got != want {
			t.Errorf("got %s=$%02X, want $%02X", name, got, want)
		}
	}
	checkuint16 := func(name string, got, want uint16) {
		t.Helper()
		if got != want {
			t.Errorf("got %s=$%04X, want $%04X", name, got, want)
		}
	}

	for i := 0; i < len(states); i += 2 {
		s := states[i].(string)
		switch {
		case s == "A":
			checkuint8("A", cpu.A, states[i+1].(uint8))
		case s == "X":
			checkuint8("X", cpu.X, states[i+1].(uint8))
		case s == "Y":
			checkuint8("Y", cpu.Y, states[i+1].(uint8))
		case s == "SP":
			checkuint8("SP", cpu.SP, states[i+1].(uint8))
		case s == "PC":
			checkuint16("PC", cpu.PC, states[i+1].(uint16))
		case s == "P":
			if got, want := cpu.Status(), states[i+1].(uint8); got != want {
				t.Errorf("got P=$%02X(%s), want $%02X", got, cpu.P, want)
			}
		case len(s) > 1 && s[0] == 'P':
			bit := states[i+1].(uint8)
			for j := 1; j < len(s); j++ {
				switch s[j] {
				case 'n':
					checkbool("Pn", b2i(cpu.P.N), bit)
				case 'v':
					checkbool("Pv", b2i(cpu.P.V), bit)
				case 'b':
					checkbool("Pb", b2i(cpu.P.B), bit)
				case 'd':
					checkbool("Pd", b2i(cpu.P.D), bit)
				case 'i':
					checkbool("Pi", b2i(cpu.P.I), bit)
				case 'z':
					checkbool("Pz", b2i(cpu.P.Z), bit)
				case 'c':
					checkbool("Pc", b2i(cpu.P.C), bit)
				default:
					panic("unknown P bit: " + string(s[j]))
				}
			}
		default:
			panic("unknown state: " + s)
		}
	}
}
