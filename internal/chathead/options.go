package chathead

import (
	"log/slog"
	"time"

	"github.com/olivier-w/chathead/internal/geometry"
)

// Option configures a Widget during creation.
type Option func(*Widget)

// WithOnTap sets the callback run when a tap is detected. The host uses it to
// open its drawer.
func WithOnTap(fn func()) Option {
	return func(w *Widget) {
		w.onTap = fn
	}
}

// WithOnSettle sets the callback run whenever an animation settles. persisted
// is true for drag-driven settles that were written to the store.
func WithOnSettle(fn func(p geometry.Point, persisted bool)) Option {
	return func(w *Widget) {
		w.onSettle = fn
	}
}

// WithClock replaces time.Now for tap timing.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) {
		w.now = now
	}
}

// WithLogger sets the widget logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.log = l
		}
	}
}
