package emu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"m6502/emu/log"
	"m6502/hw"
	"m6502/hw/hwio"
)

// Machine is a minimal host for the CPU core: 64KB of RAM and a CPU, driven
// by a step loop.
type Machine struct {
	Name string
	Mem  *hwio.Mem
	CPU  *hw.CPU

	cfg     RunConfig
	elapsed time.Duration // wall time spent in Run
}

// number of instructions between two checks of the context.
const ctxCheckInterval = 1024

// NewMachine creates a machine with zeroed memory. The CPU is not reset,
// call Reset once memory has been loaded.
func NewMachine(name string, cfg Config) *Machine {
	mem := hwio.NewMem(name)

	var bus hwio.Bus = mem
	if log.ModHwIo.Enabled(log.DebugLevel) {
		bus = &hwio.Watch{
			Bus: mem,
			ReadCb: func(addr uint16, val uint8) {
				log.ModHwIo.DebugZ("read").
					String("machine", name).
					Hex16("addr", addr).
					Hex8("val", val).
					End()
			},
			WriteCb: func(addr uint16, val uint8) {
				log.ModHwIo.DebugZ("write").
					String("machine", name).
					Hex16("addr", addr).
					Hex8("val", val).
					End()
			},
		}
	}

	cpu := hw.NewCPU(bus)
	switch {
	case cfg.TraceOut != nil:
		cpu.SetTraceOutput(cfg.TraceOut)
	case log.ModTrace.Enabled(log.DebugLevel):
		cpu.SetTraceOutput(traceLogger(name))
	}

	return &Machine{
		Name: name,
		Mem:  mem,
		CPU:  cpu,
		cfg:  cfg.Run,
	}
}

// LoadImage loads a raw memory image at the configured load address and,
// unless configured otherwise, points the reset vector at it.
func (m *Machine) LoadImage(r io.Reader) error {
	buf, err := io.ReadAll(io.LimitReader(r, hwio.MemSize+1))
	if err != nil {
		return fmt.Errorf("%s: read image: %w", m.Name, err)
	}
	if len(buf) > hwio.MemSize {
		return fmt.Errorf("%s: image larger than address space", m.Name)
	}

	m.Mem.Load(m.cfg.LoadAddr, buf)
	if !m.cfg.KeepVector {
		m.Mem.Write16(hw.ResetVector, m.cfg.LoadAddr)
	}

	log.ModEmu.InfoZ("image loaded").
		String("machine", m.Name).
		Hex16("addr", m.cfg.LoadAddr).
		Int("size", len(buf)).
		End()
	return nil
}

// Elapsed returns the total wall time spent running the machine.
func (m *Machine) Elapsed() time.Duration {
	return m.elapsed
}

func (m *Machine) Reset() {
	m.CPU.Reset()
}

// Run executes instructions until maxCycles have been consumed (no limit if
// maxCycles <= 0), ctx is cancelled, or the CPU hits an unknown opcode that
// the configured policy doesn't skip.
func (m *Machine) Run(ctx context.Context, maxCycles int64) error {
	start := time.Now()
	defer func() { m.elapsed += time.Since(start) }()

	until := m.CPU.Cycles + maxCycles
	for n := 0; maxCycles <= 0 || m.CPU.Cycles < until; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		_, err := m.CPU.Step()
		if err == nil {
			continue
		}

		var uerr *hw.UnknownOpcodeError
		if errors.As(err, &uerr) && m.cfg.OnUnknown == SkipOnUnknown {
			log.ModEmu.WarnZ("skipping unknown opcode").
				String("machine", m.Name).
				Hex16("PC", uerr.PC).
				Hex8("opcode", uerr.Opcode).
				End()
			m.CPU.Cycles += 2
			continue
		}

		log.ModEmu.WarnZ("CPU halted").
			String("machine", m.Name).
			Hex16("PC", m.CPU.PC).
			Error("err", err).
			End()
		return fmt.Errorf("%s: %w", m.Name, err)
	}
	return nil
}

// RunAll runs each machine in its own goroutine, each for at most maxCycles.
// Machines don't share memory; each one stays single-threaded. The returned
// error joins the errors of all machines that stopped on an error.
func RunAll(ctx context.Context, maxCycles int64, machines ...*Machine) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	// Errors are kept in errs rather than returned to the group, so that a
	// machine stopping on an error doesn't cancel the others.
	errs := make([]error, len(machines))
	for i, m := range machines {
		g.Go(func() error {
			errs[i] = m.Run(ctx, maxCycles)
			return nil
		})
	}
	g.Wait()
	return errors.Join(errs...)
}

// traceLogger sends execution trace lines to the trace log module.
type traceLogger string

func (t traceLogger) Write(p []byte) (int, error) {
	log.ModTrace.DebugZ("exec").
		String("machine", string(t)).
		String("op", strings.TrimSuffix(string(p), "\n")).
		End()
	return len(p), nil
}
