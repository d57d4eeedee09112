package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/chathead/internal/drawer"
)

type keyMap struct {
	Open key.Binding
	Quit key.Binding
	// drawerOpen switches the help line to the drawer's bindings.
	drawerOpen bool
}

func newKeyMap() keyMap {
	return keyMap{
		Open: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	if k.drawerOpen {
		return append(drawer.HelpKeys(), k.Quit)
	}
	return []key.Binding{k.Open, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func isForceQuit(msg tea.KeyMsg) bool {
	return msg.String() == "ctrl+c"
}
