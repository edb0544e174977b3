package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/go-faster/jx"

	"m6502/emu"
	"m6502/emu/log"
)

// runMain creates one machine per image and runs them all.
func runMain(cfg emu.Config, args Run) error {
	args.apply(&cfg.Run)

	if args.Trace != nil {
		defer args.Trace.Close()
		if len(args.Images) > 1 {
			return fmt.Errorf("--trace requires a single image")
		}
		cfg.TraceOut = args.Trace
	}
	if args.DumpState != nil {
		defer args.DumpState.Close()
	}

	var state []byte
	if args.State != "" {
		var err error
		if state, err = os.ReadFile(args.State); err != nil {
			return err
		}
		if err := jx.DecodeBytes(state).Validate(); err != nil {
			return fmt.Errorf("state %s: %w", args.State, err)
		}
	}

	machines := make([]*emu.Machine, 0, len(args.Images))
	for _, path := range args.Images {
		m, err := newMachine(path, cfg, state)
		if err != nil {
			return err
		}
		machines = append(machines, m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := emu.RunAll(ctx, cfg.Run.MaxCycles, machines...)
	for _, m := range machines {
		log.ModEmu.InfoZ("machine stopped").
			String("machine", m.Name).
			Hex16("PC", m.CPU.PC).
			Int64("cycles", m.CPU.Cycles).
			Duration("elapsed", m.Elapsed()).
			End()
	}
	if err != nil {
		log.ModEmu.ErrorZ("run failed").
			Error("err", err).
			End()
	}

	if args.DumpState != nil {
		if derr := dumpStates(args.DumpState, machines); derr != nil {
			return derr
		}
	}
	return err
}

// newMachine loads the image at path into a new machine and resets it. If
// state is not empty, the CPU registers it holds override the reset state.
func newMachine(path string, cfg emu.Config, state []byte) (*emu.Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := emu.NewMachine(filepath.Base(path), cfg)
	if err := m.LoadImage(f); err != nil {
		return nil, err
	}
	m.Reset()

	if len(state) != 0 {
		snap := m.CPU.Snapshot()
		if err := snap.Decode(jx.DecodeBytes(state)); err != nil {
			return nil, err
		}
		m.CPU.Restore(snap)
	}
	return m, nil
}

// dumpStates writes the CPU state of each machine, one JSON object per line.
func dumpStates(w io.Writer, machines []*emu.Machine) error {
	var e jx.Encoder
	for _, m := range machines {
		e.Reset()
		e.ObjStart()
		e.FieldStart("image")
		e.Str(m.Name)
		e.FieldStart("cpu")
		m.CPU.Snapshot().Encode(&e)
		e.ObjEnd()

		if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
			return err
		}
	}
	return nil
}
