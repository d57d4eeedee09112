package anim

import (
	"testing"

	"github.com/olivier-w/chathead/internal/geometry"
)

func run(t *testing.T, s *Scheduler, limit int) (geometry.Point, int) {
	t.Helper()
	for i := 1; i <= limit; i++ {
		pos, done := s.Step()
		if done {
			return pos, i
		}
	}
	t.Fatalf("animation did not settle within %d frames", limit)
	return geometry.Point{}, 0
}

func TestStepSettlesExactlyOnTarget(t *testing.T) {
	var s Scheduler
	calls := 0
	target := geometry.Point{X: -8, Y: 352}
	s.Start(geometry.Point{X: 244, Y: 360}, target, func() { calls++ })

	pos, _ := run(t, &s, 600)
	if pos != target {
		t.Fatalf("expected exact target %+v, got %+v", target, pos)
	}
	if calls != 1 {
		t.Fatalf("expected onDone once, got %d", calls)
	}
	if s.Active() {
		t.Fatal("expected scheduler to be idle after settle")
	}

	// Further steps must not re-invoke the callback.
	s.Step()
	if calls != 1 {
		t.Fatalf("expected onDone to stay at 1, got %d", calls)
	}
}

func TestStartCancelsPrevious(t *testing.T) {
	var s Scheduler
	firstCalls := 0
	s.Start(geometry.Point{}, geometry.Point{X: 100}, func() { firstCalls++ })
	s.Step()
	gen := s.Start(geometry.Point{X: 5}, geometry.Point{X: 50, Y: 50}, nil)
	if gen != 2 {
		t.Fatalf("expected generation 2, got %d", gen)
	}

	pos, _ := run(t, &s, 600)
	if pos != (geometry.Point{X: 50, Y: 50}) {
		t.Fatalf("expected second target, got %+v", pos)
	}
	if firstCalls != 0 {
		t.Fatal("cancelled animation must not call onDone")
	}
}

func TestCancelReturnsInterrupted(t *testing.T) {
	var s Scheduler
	target := geometry.Point{X: 944, Y: 52}
	s.Start(geometry.Point{}, target, nil)
	s.Step()

	a, ok := s.Cancel()
	if !ok || a.Target != target {
		t.Fatalf("expected interrupted animation toward %+v, got %+v ok=%v", target, a, ok)
	}
	if s.Active() {
		t.Fatal("expected inactive after cancel")
	}
	if _, ok := s.Cancel(); ok {
		t.Fatal("second cancel must report nothing")
	}
}

func TestStartFromRestAtTarget(t *testing.T) {
	var s Scheduler
	p := geometry.Point{X: 10, Y: 10}
	s.Start(p, p, nil)
	pos, frames := run(t, &s, 2)
	if pos != p || frames != 1 {
		t.Fatalf("expected immediate settle at %+v, got %+v after %d frames", p, pos, frames)
	}
}
