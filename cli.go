package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"m6502/emu"
	"m6502/emu/log"
)

type mode byte

const (
	runMode        mode = iota // Run memory images
	opcodesMode                // List supported opcodes
	saveConfigMode             // Write effective configuration
	versionMode                // Show m6502 version
)

type (
	CLI struct {
		Run        Run        `cmd:"" help:"Run memory images on the 6502 core."`
		Opcodes    Opcodes    `cmd:"" help:"List supported opcodes."`
		SaveConfig SaveConfig `cmd:"" help:"Write the effective configuration to the config file." name:"save-config"`
		Version    Version    `cmd:"" help:"Show m6502 version."`

		ConfigPath string     `name:"config" help:"${config_help}" type:"path" default:"m6502.toml" placeholder:"FILE"`
		Log        logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Run struct {
		Images []string `arg:"" name:"/path/to/image" help:"${images_help}" type:"existingfile"`

		LoadAddr  *addrFlag   `name:"load-addr" help:"Address at which images are loaded." placeholder:"ADDR"`
		MaxCycles *int64      `name:"max-cycles" help:"Stop after that many cycles (0: no limit)."`
		OnUnknown *policyFlag `name:"on-unknown" help:"What to do on unknown opcodes." placeholder:"halt|nop"`
		Trace     *outfile    `name:"trace" help:"Write CPU trace log." placeholder:"FILE|stdout|stderr"`
		State     string      `name:"state" help:"${state_help}" type:"existingfile"`
		DumpState *outfile    `name:"dump-state" help:"Write final CPU state of each machine." placeholder:"FILE|stdout|stderr"`
	}

	Opcodes struct {
		JSON bool `name:"json" help:"Output JSON."`
	}

	SaveConfig struct{}

	Version struct{}
)

var vars = kong.Vars{
	"config_help": "Configuration file.",
	"images_help": "Raw memory images, each one runs on its own machine.",
	"state_help":  "Restore CPU registers from a JSON state file after reset.",
	"log_help":    "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("m6502"),
		kong.Description("MOS 6502 CPU core emulator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "opcodes":
		cfg.mode = opcodesMode
	case "save-config":
		cfg.mode = saveConfigMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

// apply overrides cfg with the flags that have been set.
func (r *Run) apply(cfg *emu.RunConfig) {
	if r.LoadAddr != nil {
		cfg.LoadAddr = uint16(*r.LoadAddr)
	}
	if r.MaxCycles != nil {
		cfg.MaxCycles = *r.MaxCycles
	}
	if r.OnUnknown != nil {
		cfg.OnUnknown = emu.UnknownPolicy(*r.OnUnknown)
	}
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	return lm.set(ctx.Scan.Pop().Value.(string))
}

func (lm logModMask) set(s string) error {
	nolog := false
	allLogs := false

	for _, v := range strings.Split(s, ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

// addrFlag is a 16-bit address, accepting decimal, 0x-prefixed or
// $-prefixed hexadecimal.
type addrFlag uint16

// Implements kong.MapperValue interface.
func (a *addrFlag) Decode(ctx *kong.DecodeContext) error {
	return a.set(ctx.Scan.Pop().Value.(string))
}

func (a *addrFlag) set(s string) error {
	if rest, ok := strings.CutPrefix(s, "$"); ok {
		s = "0x" + rest
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid address %q", s)
	}
	*a = addrFlag(v)
	return nil
}

type policyFlag emu.UnknownPolicy

// Implements kong.MapperValue interface.
func (p *policyFlag) Decode(ctx *kong.DecodeContext) error {
	return (*emu.UnknownPolicy)(p).UnmarshalText([]byte(ctx.Scan.Pop().Value.(string)))
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	return f.open(ctx.Scan.Pop().Value.(string))
}

func (f *outfile) open(name string) error {
	f.name = name
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
