package emu

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"m6502/emu/log"
)

type Config struct {
	Run RunConfig `toml:"run"`

	TraceOut io.Writer `toml:"-"`
}

type RunConfig struct {
	// Address at which images are loaded.
	LoadAddr uint16 `toml:"load_addr"`
	// If true, the reset vector is taken from the loaded image rather than
	// pointed at LoadAddr.
	KeepVector bool `toml:"keep_vector"`
	// Maximum number of cycles to run, 0 means no limit.
	MaxCycles int64 `toml:"max_cycles"`
	// What to do when the CPU hits an unknown opcode.
	OnUnknown UnknownPolicy `toml:"on_unknown"`
}

// UnknownPolicy decides how a Machine reacts to an unknown opcode.
type UnknownPolicy uint8

const (
	HaltOnUnknown UnknownPolicy = iota // stop and report the error
	SkipOnUnknown                      // treat the opcode as a 2-cycle NOP
)

func (p UnknownPolicy) String() string {
	switch p {
	case HaltOnUnknown:
		return "halt"
	case SkipOnUnknown:
		return "nop"
	}
	return fmt.Sprintf("UnknownPolicy(%d)", uint8(p))
}

func (p UnknownPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *UnknownPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "halt":
		*p = HaltOnUnknown
	case "nop":
		*p = SkipOnUnknown
	default:
		return fmt.Errorf("invalid unknown opcode policy %q (want halt or nop)", text)
	}
	return nil
}

var DefaultConfig = Config{
	Run: RunConfig{
		LoadAddr:  0x0600,
		MaxCycles: 0,
		OnUnknown: HaltOnUnknown,
	},
}

// LoadConfigOrDefault loads the configuration from path. Settings missing
// from the file keep their default value. If the file doesn't exist, the
// default configuration is returned.
func LoadConfigOrDefault(path string) (Config, error) {
	cfg := DefaultConfig
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.ModEmu.DebugZ("no config file, using defaults").
			String("path", path).
			End()
		return DefaultConfig, nil
	}
	if err != nil {
		return DefaultConfig, fmt.Errorf("config %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		log.ModEmu.WarnZ("unknown config key").
			String("path", path).
			String("key", key.String()).
			End()
	}
	return cfg, nil
}

// SaveConfig writes cfg to path.
func SaveConfig(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0644)
}
