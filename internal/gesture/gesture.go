// Package gesture turns a pointer event stream into drag positions and a
// release decision: tap, rail snap, or free snap.
package gesture

import (
	"math"
	"time"

	"github.com/olivier-w/chathead/internal/geometry"
)

// Thresholds in pixels unless noted.
const (
	// MoveThreshold is the displacement past which a gesture counts as moved.
	MoveThreshold = 3.0
	// RailNudge is how far the pointer must travel toward the edge the
	// gesture started near before the rail locks.
	RailNudge = 4.0
	// RailRelease is the reverse pull that unlocks a rail.
	RailRelease = 10.0
	// RailLockDistance is how close to a rail the bubble must be at
	// pointer-down to become a rail candidate.
	RailLockDistance = 20.0
	// MagnetDistance pre-snaps x onto a rail during free drag.
	MagnetDistance = 18.0
	// TapMaxDistance and TapMaxDuration bound a tap.
	TapMaxDistance = 6.0
	TapMaxDuration = 250 * time.Millisecond
)

// State is the machine state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Session is the ephemeral state of one drag.
type Session struct {
	Start      geometry.Point
	Base       geometry.Point
	StartedAt  time.Time
	Moved      bool
	EdgeAtDown geometry.Edge
	Rail       geometry.Edge
}

// ReleaseKind says how a gesture ended.
type ReleaseKind int

const (
	// ReleaseNone means there was no gesture to end.
	ReleaseNone ReleaseKind = iota
	// ReleaseTap means the gesture was a tap; nothing should move.
	ReleaseTap
	// ReleaseSnap means the bubble should animate to Target.
	ReleaseSnap
)

// Release is the outcome of ending a gesture.
type Release struct {
	Kind   ReleaseKind
	Target geometry.Point
	// Rail is the rail the target sits on.
	Rail geometry.Edge
	// Locked is true when the rail was locked during the drag, in which case
	// Target.Y is an anchor.
	Locked bool
}

// Machine is the gesture state machine. The zero value is Idle.
type Machine struct {
	state   State
	session Session
	moved   bool
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Session returns the live session. Only meaningful while Dragging.
func (m *Machine) Session() Session { return m.session }

// Moved reports whether the current or most recent gesture moved the bubble.
// Click handlers defer to it.
func (m *Machine) Moved() bool { return m.moved }

// Down starts a drag from pointer with the bubble at pos. A Down while
// already Dragging discards the old session and reports true.
func (m *Machine) Down(pointer, pos geometry.Point, at time.Time, b geometry.Bounds) (restarted bool) {
	restarted = m.state == Dragging
	m.state = Dragging
	m.moved = false
	m.session = Session{
		Start:      pointer,
		Base:       pos,
		StartedAt:  at,
		EdgeAtDown: b.EdgeWithin(pos.X, RailLockDistance),
	}
	return restarted
}

// Catch marks the active session as having grabbed a bubble in flight. A
// caught bubble always ends in a snap, never a tap.
func (m *Machine) Catch() {
	if m.state != Dragging {
		return
	}
	m.session.Moved = true
	m.moved = true
}

// Move returns the live bubble position for pointer. It returns false when
// no drag is active.
func (m *Machine) Move(pointer geometry.Point, b geometry.Bounds) (geometry.Point, bool) {
	if m.state != Dragging {
		return geometry.Point{}, false
	}
	s := &m.session
	dx := pointer.X - s.Start.X
	dy := pointer.Y - s.Start.Y

	if !s.Moved && (math.Abs(dx) > MoveThreshold || math.Abs(dy) > MoveThreshold) {
		s.Moved = true
		m.moved = true
	}

	if s.Rail == geometry.EdgeNone && s.EdgeAtDown != geometry.EdgeNone {
		switch {
		case s.EdgeAtDown == geometry.EdgeLeft && dx < -RailNudge:
			s.Rail = geometry.EdgeLeft
		case s.EdgeAtDown == geometry.EdgeRight && dx > RailNudge:
			s.Rail = geometry.EdgeRight
		}
	}
	switch {
	case s.Rail == geometry.EdgeLeft && dx > RailRelease:
		s.Rail = geometry.EdgeNone
	case s.Rail == geometry.EdgeRight && dx < -RailRelease:
		s.Rail = geometry.EdgeNone
	}

	y := b.ClampY(s.Base.Y + dy)
	if x, ok := b.RailX(s.Rail); ok {
		return geometry.Point{X: x, Y: y}, true
	}

	x := s.Base.X + dx
	left, right := b.LeftX(), b.RightX()
	if math.Abs(x-left) < MagnetDistance {
		x = left
	} else if math.Abs(x-right) < MagnetDistance {
		x = right
	}
	return geometry.Point{X: x, Y: y}, true
}

// Up ends the drag at pointer with the bubble at live.
func (m *Machine) Up(pointer geometry.Point, at time.Time, live geometry.Point, b geometry.Bounds) Release {
	if m.state != Dragging {
		return Release{}
	}
	s := m.session
	if !s.Moved && at.Sub(s.StartedAt) < TapMaxDuration &&
		math.Hypot(pointer.X-s.Start.X, pointer.Y-s.Start.Y) < TapMaxDistance {
		m.end()
		return Release{Kind: ReleaseTap}
	}
	return m.release(live, b)
}

// Cancel ends the drag without tap detection.
func (m *Machine) Cancel(live geometry.Point, b geometry.Bounds) Release {
	if m.state != Dragging {
		return Release{}
	}
	return m.release(live, b)
}

func (m *Machine) release(live geometry.Point, b geometry.Bounds) Release {
	rail := m.session.Rail
	m.end()
	if x, ok := b.RailX(rail); ok {
		return Release{
			Kind:   ReleaseSnap,
			Target: geometry.Point{X: x, Y: b.NearestAnchor(live.Y)},
			Rail:   rail,
			Locked: true,
		}
	}
	rail = b.NearestRail(live.X)
	x, _ := b.RailX(rail)
	return Release{
		Kind:   ReleaseSnap,
		Target: geometry.Point{X: x, Y: b.ClampY(live.Y)},
		Rail:   rail,
	}
}

func (m *Machine) end() {
	m.state = Idle
	m.session = Session{}
}
