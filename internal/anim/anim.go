// Package anim drives the bubble toward a target one frame at a time using a
// spring channel per axis.
package anim

import (
	"github.com/olivier-w/chathead/internal/geometry"
	"github.com/olivier-w/chathead/internal/spring"
)

// Animation is a pending move toward Target. OnDone may be nil.
type Animation struct {
	Target geometry.Point
	OnDone func()
}

// Scheduler runs at most one animation at a time. It is not safe for
// concurrent use; the host calls it from its single update loop.
type Scheduler struct {
	x, y    spring.Channel
	current Animation
	active  bool
	gen     uint64
}

// Start cancels any running animation and begins a new one from from toward
// target. It returns the animation's generation.
func (s *Scheduler) Start(from, target geometry.Point, onDone func()) uint64 {
	s.Cancel()
	s.x.Reset(from.X)
	s.y.Reset(from.Y)
	s.current = Animation{Target: target, OnDone: onDone}
	s.active = true
	s.gen++
	return s.gen
}

// Cancel stops the running animation without invoking its callback and
// returns it along with whether one was running.
func (s *Scheduler) Cancel() (Animation, bool) {
	if !s.active {
		return Animation{}, false
	}
	interrupted := s.current
	s.active = false
	s.current = Animation{}
	return interrupted, true
}

// Active reports whether an animation is running.
func (s *Scheduler) Active() bool { return s.active }

// Generation identifies the most recently started animation.
func (s *Scheduler) Generation() uint64 { return s.gen }

// Target returns the running animation's target.
func (s *Scheduler) Target() (geometry.Point, bool) {
	return s.current.Target, s.active
}

// Step advances both channels one frame. When both settle it snaps exactly
// to the target, finishes the animation and invokes OnDone once.
func (s *Scheduler) Step() (pos geometry.Point, done bool) {
	if !s.active {
		return geometry.Point{X: s.x.Position, Y: s.y.Position}, true
	}
	t := s.current.Target
	s.x.Step(t.X)
	s.y.Step(t.Y)

	if s.x.Settled(t.X) && s.y.Settled(t.Y) {
		s.x.Reset(t.X)
		s.y.Reset(t.Y)
		onDone := s.current.OnDone
		s.active = false
		s.current = Animation{}
		if onDone != nil {
			onDone()
		}
		return t, true
	}
	return geometry.Point{X: s.x.Position, Y: s.y.Position}, false
}
