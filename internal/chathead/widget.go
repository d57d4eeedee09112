// Package chathead is the draggable bubble: it owns the single mutable state
// bag and wires the gesture machine, spring animation and position store
// together. All methods must be called from one goroutine.
package chathead

import (
	"log/slog"
	"time"

	"github.com/olivier-w/chathead/internal/anim"
	"github.com/olivier-w/chathead/internal/frame"
	"github.com/olivier-w/chathead/internal/geometry"
	"github.com/olivier-w/chathead/internal/gesture"
	"github.com/olivier-w/chathead/internal/logging"
	"github.com/olivier-w/chathead/internal/store"
)

// Widget is one bubble instance.
type Widget struct {
	bounds  geometry.Bounds
	store   *store.PositionStore
	gesture gesture.Machine
	anim    anim.Scheduler
	apply   frame.Coalescer

	pos      geometry.Point // motion state, authoritative
	rendered geometry.Point // last applied transform
	rest     geometry.Edge  // rail the bubble last came to rest on
	mounted  bool

	onTap    func()
	onSettle func(geometry.Point, bool)
	now      func() time.Time
	log      *slog.Logger
}

// New creates an unmounted widget measuring through m and persisting to st.
func New(m geometry.Measurer, st *store.PositionStore, opts ...Option) *Widget {
	w := &Widget{
		bounds: geometry.New(m),
		store:  st,
		now:    time.Now,
		log:    logging.Logger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Mount places the bubble at its persisted (or default) position. A stored
// position that no longer fits is corrected with a non-persisting settle.
func (w *Widget) Mount() {
	w.pos = w.store.Load(w.bounds)
	w.rendered = w.pos
	w.rest = w.bounds.RailAt(w.pos.X)
	w.mounted = true
	w.log.Debug("mounted", "x", w.pos.X, "y", w.pos.Y, "rail", w.rest)
	if !w.bounds.Contains(w.pos) {
		w.Resize()
	}
}

// Unmount stops the widget from reacting to viewport changes and drops any
// running animation.
func (w *Widget) Unmount() {
	w.mounted = false
	w.anim.Cancel()
	w.apply.Fire()
}

// PointerDown starts a drag. Direct manipulation always preempts animation;
// a bubble caught mid-settle is re-released with a snap rather than a tap,
// so taps never start a positional animation.
func (w *Widget) PointerDown(p geometry.Point) {
	if !w.mounted {
		return
	}
	_, caught := w.anim.Cancel()
	if restarted := w.gesture.Down(p, w.pos, w.now(), w.bounds); restarted {
		w.log.Debug("pointer down during drag, restarting gesture")
	}
	if caught {
		w.gesture.Catch()
	}
}

// PointerMove updates the live position. The rendered transform follows at
// the next frame.
func (w *Widget) PointerMove(p geometry.Point) {
	pos, ok := w.gesture.Move(p, w.bounds)
	if !ok {
		return
	}
	w.pos = pos
	w.apply.Request()
}

// PointerUp ends the drag at p.
func (w *Widget) PointerUp(p geometry.Point) {
	w.finish(w.gesture.Up(p, w.now(), w.pos, w.bounds))
}

// PointerCancel ends the drag without tap detection.
func (w *Widget) PointerCancel() {
	w.finish(w.gesture.Cancel(w.pos, w.bounds))
}

func (w *Widget) finish(rel gesture.Release) {
	switch rel.Kind {
	case gesture.ReleaseTap:
		w.Click()
	case gesture.ReleaseSnap:
		// Rail-locked and free releases both persist: each ends a drag.
		w.rest = rel.Rail
		target := rel.Target
		w.log.Debug("release", "x", target.X, "y", target.Y, "rail", rel.Rail, "locked", rel.Locked)
		w.anim.Start(w.pos, target, func() {
			w.store.Save(target)
			w.settled(target, true)
		})
	}
}

// Click opens the drawer unless the gesture that produced it moved the
// bubble.
func (w *Widget) Click() {
	if w.gesture.State() == gesture.Dragging || w.gesture.Moved() {
		w.log.Debug("click suppressed after drag")
		return
	}
	if w.onTap != nil {
		w.onTap()
	}
}

// Resize re-validates the position against the current viewport and
// animates into bounds when needed. It never writes the store, is a no-op
// while dragging or unmounted, and is idempotent.
func (w *Widget) Resize() {
	if !w.mounted || w.gesture.State() == gesture.Dragging {
		return
	}
	target := w.correction()
	if current, ok := w.anim.Target(); ok {
		if current == target {
			return
		}
	} else if w.pos == target {
		return
	}
	w.log.Debug("correcting position", "x", target.X, "y", target.Y)
	w.anim.Start(w.pos, target, func() {
		w.settled(target, false)
	})
}

func (w *Widget) correction() geometry.Point {
	from := w.pos
	if t, ok := w.anim.Target(); ok {
		from = t
	}
	x := w.bounds.ClampX(from.X)
	if rx, ok := w.bounds.RailX(w.rest); ok {
		x = rx
	}
	return geometry.Point{X: x, Y: w.bounds.ClampY(from.Y)}
}

func (w *Widget) settled(p geometry.Point, persisted bool) {
	w.log.Debug("settled", "x", p.X, "y", p.Y, "persisted", persisted)
	if w.onSettle != nil {
		w.onSettle(p, persisted)
	}
}

// Frame runs one frame: it steps the animation or applies a pending drag
// position. It reports whether another frame is wanted.
func (w *Widget) Frame() bool {
	if w.anim.Active() {
		w.pos, _ = w.anim.Step()
		w.apply.Fire()
		w.rendered = w.pos
	} else if w.apply.Fire() {
		w.rendered = w.pos
	}
	return w.NeedsFrame()
}

// NeedsFrame reports whether an animation is running or a drag position is
// waiting to be applied.
func (w *Widget) NeedsFrame() bool {
	return w.anim.Active() || w.apply.Pending()
}

// Position returns the motion state.
func (w *Widget) Position() geometry.Point { return w.pos }

// Rendered returns the position last applied to the screen.
func (w *Widget) Rendered() geometry.Point { return w.rendered }

// Size returns the bubble's current square dimension.
func (w *Widget) Size() float64 { return w.bounds.Size() }

// Bounds exposes the widget's geometry.
func (w *Widget) Bounds() geometry.Bounds { return w.bounds }

// Dragging reports whether a drag is active.
func (w *Widget) Dragging() bool { return w.gesture.State() == gesture.Dragging }

// Animating reports whether an animation is running.
func (w *Widget) Animating() bool { return w.anim.Active() }

// Rail returns the rail the bubble last settled on, or the rail locked by the
// active drag.
func (w *Widget) Rail() geometry.Edge {
	if w.Dragging() {
		return w.gesture.Session().Rail
	}
	return w.rest
}
