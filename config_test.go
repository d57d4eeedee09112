package main

import (
	"errors"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{"-state", "/tmp/s.json", "-log", "/tmp/c.log", "-debug", "-sound", "-reset"}, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.statePath != "/tmp/s.json" || cfg.logPath != "/tmp/c.log" || !cfg.debug || !cfg.sound || !cfg.reset {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	cfg, err := parseConfig(nil, env(map[string]string{stateEnv: "/var/state.json"}), io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.statePath != "/var/state.json" {
		t.Fatalf("expected env state path, got %q", cfg.statePath)
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	cfg, err := parseConfig([]string{"-state", "a.json"}, env(map[string]string{stateEnv: "b.json"}), io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.statePath != "a.json" {
		t.Fatalf("expected flag to win, got %q", cfg.statePath)
	}
}

func TestParseConfigDefaultStatePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := parseConfig(nil, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasSuffix(cfg.statePath, filepath.Join("chathead", "state.json")) {
		t.Fatalf("unexpected default state path %q", cfg.statePath)
	}
}

func TestParseConfigRejectsArgs(t *testing.T) {
	if _, err := parseConfig([]string{"extra"}, env(nil), io.Discard); err == nil {
		t.Fatal("expected positional argument to be rejected")
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := parseConfig([]string{"-h"}, env(nil), io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
}
