package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a transient status line stays up.
const statusTTL = 4 * time.Second

type statusExpiredMsg struct {
	seq uint64
}

func statusExpiryCmd(seq uint64) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
