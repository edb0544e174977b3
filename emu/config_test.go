package emu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	const content = `
[run]
load_addr = 0xC000
on_unknown = "nop"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigOrDefault(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig
	want.Run.LoadAddr = 0xC000
	want.Run.OnUnknown = SkipOnUnknown
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []string{
		"[run]\non_unknown = \"crash\"\n",
		"[run]\nload_addr = 0x10000\n",
		"[run\n",
	}
	for _, content := range tests {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigOrDefault(path); err == nil {
			t.Errorf("LoadConfigOrDefault(%q): expected an error", content)
		}
	}
}

func TestSaveConfig(t *testing.T) {
	cfg := DefaultConfig
	cfg.Run.LoadAddr = 0x8000
	cfg.Run.MaxCycles = 1_000_000
	cfg.Run.OnUnknown = SkipOnUnknown
	cfg.Run.KeepVector = true

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfigOrDefault(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
