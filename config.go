package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const stateEnv = "CHATHEAD_STATE"

type config struct {
	statePath string
	logPath   string
	debug     bool
	sound     bool
	reset     bool
}

// parseConfig reads flags from args. getenv supplies environment overrides.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("chathead", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.statePath, "state", "", "path of the state file (default: user config dir)")
	fs.StringVar(&cfg.logPath, "log", "", "write logs to this file")
	fs.BoolVar(&cfg.debug, "debug", false, "log debug records")
	fs.BoolVar(&cfg.sound, "sound", false, "play a click when the bubble snaps into place")
	fs.BoolVar(&cfg.reset, "reset", false, "forget the saved bubble position")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if cfg.statePath == "" {
		cfg.statePath = getenv(stateEnv)
	}
	if cfg.statePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return config{}, fmt.Errorf("locating config dir: %w", err)
		}
		cfg.statePath = filepath.Join(dir, "chathead", "state.json")
	}
	return cfg, nil
}
