package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"m6502/emu"
)

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case versionMode:
		printVersion()
		return
	case opcodesMode:
		checkf(listOpcodes(os.Stdout, cli.Opcodes.JSON), "failed to list opcodes")
		return
	}

	cfg, err := emu.LoadConfigOrDefault(cli.ConfigPath)
	checkf(err, "failed to load config")

	switch cli.mode {
	case saveConfigMode:
		checkf(emu.SaveConfig(cli.ConfigPath, cfg), "failed to save config")
	case runMode:
		checkf(runMain(cfg, cli.Run), "run failed")
	}
}

func printVersion() {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	fmt.Println("m6502", version)
}
