// Package frame provides the per-frame tick source and a coalescing guard
// that keeps at most one frame request outstanding.
package frame

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Interval is the frame period, matching the spring time step.
const Interval = time.Second / 60

// TickMsg is delivered once per requested frame.
type TickMsg struct {
	Seq  uint64
	Time time.Time
}

// Tick schedules a single TickMsg tagged with seq.
func Tick(seq uint64) tea.Cmd {
	return tea.Tick(Interval, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}

// Coalescer is a single pending flag. The zero value has nothing pending.
type Coalescer struct {
	pending bool
}

// Request marks work pending. It returns true only when the caller must
// schedule a new frame; false means one is already queued.
func (c *Coalescer) Request() bool {
	if c.pending {
		return false
	}
	c.pending = true
	return true
}

// Fire clears the pending flag and reports whether work was pending.
func (c *Coalescer) Fire() bool {
	was := c.pending
	c.pending = false
	return was
}

// Pending reports whether a frame is queued.
func (c *Coalescer) Pending() bool { return c.pending }
