package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/chathead/internal/logging"
	"github.com/olivier-w/chathead/internal/sound"
	"github.com/olivier-w/chathead/internal/store"
	"github.com/olivier-w/chathead/internal/ui"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.logPath != "" {
		logger, f, err := logging.OpenFile(cfg.logPath, cfg.debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logging.Set(logger)
	}
	log := logging.Logger()

	positions := store.NewPositionStore(store.NewFileKV(cfg.statePath)).WithLogger(log)
	if cfg.reset {
		positions.Clear()
	}

	var clicker sound.Clicker = sound.Nop{}
	if cfg.sound {
		p, err := sound.New()
		if err != nil {
			// Sound is optional; keep going silently.
			log.Warn("sound disabled", "err", err)
		} else {
			clicker = p
		}
	}

	model := ui.New(ui.Options{Store: positions, Clicker: clicker, Logger: log})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())

	log.Info("starting", "state", cfg.statePath)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
