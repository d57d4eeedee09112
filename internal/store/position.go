// Package store persists the bubble's last manually settled position.
package store

import (
	"encoding/json"
	"log/slog"
	"math"

	"github.com/olivier-w/chathead/internal/geometry"
	"github.com/olivier-w/chathead/internal/logging"
)

// Key is the fixed slot the position is stored under.
const Key = "chathead-pos"

// Offsets of the default position from the bottom-right corner.
const (
	defaultRightInset  = 20.0
	defaultBottomInset = 30.0
)

type record struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// PositionStore reads and writes the persisted position. It never returns
// errors: reads fall back to a default and failed writes are dropped.
type PositionStore struct {
	kv  KV
	log *slog.Logger
}

// NewPositionStore wraps kv.
func NewPositionStore(kv KV) *PositionStore {
	return &PositionStore{kv: kv, log: logging.Logger()}
}

// WithLogger sets the logger used for dropped reads and writes.
func (s *PositionStore) WithLogger(l *slog.Logger) *PositionStore {
	if l != nil {
		s.log = l
	}
	return s
}

// Load returns the persisted position, or the default position for b when
// nothing usable is stored.
func (s *PositionStore) Load(b geometry.Bounds) geometry.Point {
	p, ok := s.stored()
	if !ok {
		return Default(b)
	}
	return p
}

func (s *PositionStore) stored() (geometry.Point, bool) {
	raw, ok, err := s.kv.Get(Key)
	if err != nil {
		s.log.Debug("position read failed", "err", err)
		return geometry.Point{}, false
	}
	if !ok {
		return geometry.Point{}, false
	}
	var r record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		s.log.Debug("ignoring malformed position", "err", err)
		return geometry.Point{}, false
	}
	if r.X == nil || r.Y == nil || !finite(*r.X) || !finite(*r.Y) {
		s.log.Debug("ignoring incomplete position", "raw", raw)
		return geometry.Point{}, false
	}
	return geometry.Point{X: *r.X, Y: *r.Y}, true
}

// Save writes p. Failures are logged and discarded.
func (s *PositionStore) Save(p geometry.Point) {
	data, err := json.Marshal(record{X: &p.X, Y: &p.Y})
	if err != nil {
		s.log.Debug("position encode failed", "err", err)
		return
	}
	if err := s.kv.Set(Key, string(data)); err != nil {
		s.log.Debug("position write failed", "err", err)
		return
	}
	s.log.Debug("position saved", "x", p.X, "y", p.Y)
}

// Clear forgets the stored position.
func (s *PositionStore) Clear() {
	if err := s.kv.Delete(Key); err != nil {
		s.log.Debug("position clear failed", "err", err)
	}
}

// Default is the initial bottom-right placement for b.
func Default(b geometry.Bounds) geometry.Point {
	vw, vh := b.Viewport()
	size := b.Size()
	return b.Clamp(geometry.Point{
		X: vw - size - defaultRightInset,
		Y: vh - size - defaultBottomInset,
	})
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
