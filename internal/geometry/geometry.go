// Package geometry computes viewport-aware bounds, rails and anchors for the
// bubble. Every query re-reads the live viewport and widget size so nothing
// goes stale across resizes.
package geometry

import "math"

const (
	// Margin lets the bubble rest slightly beyond the viewport edge.
	Margin = -8.0
	// AnchorSpacing is the distance between consecutive anchors on a rail.
	AnchorSpacing = 60.0
	// FallbackSize is used while the widget has not been measured.
	FallbackSize = 64.0
)

// Point is a top-left offset in viewport pixels.
type Point struct {
	X, Y float64
}

// Measurer reports live dimensions in pixels.
type Measurer interface {
	ViewportSize() (w, h float64)
	WidgetSize() (w, h float64)
}

// Edge names one of the two vertical rails.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "none"
	}
}

// Bounds answers geometry queries against a Measurer.
type Bounds struct {
	m Measurer
}

// New returns Bounds backed by m.
func New(m Measurer) Bounds {
	return Bounds{m: m}
}

// Viewport returns the live viewport dimensions.
func (b Bounds) Viewport() (w, h float64) {
	return b.m.ViewportSize()
}

// Size returns the bubble's square dimension: the larger of the measured
// width and height, or FallbackSize when unmeasured.
func (b Bounds) Size() float64 {
	w, h := b.m.WidgetSize()
	s := math.Max(w, h)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return FallbackSize
	}
	return math.Round(s)
}

// LeftX is the rest offset on the left rail.
func (b Bounds) LeftX() float64 {
	return Margin
}

// RightX is the rest offset on the right rail. It never drops below LeftX.
func (b Bounds) RightX() float64 {
	vw, _ := b.m.ViewportSize()
	return farEdge(vw, b.Size())
}

// TopY is the smallest valid y offset.
func (b Bounds) TopY() float64 {
	return Margin
}

// BottomY is the largest valid y offset. It never drops below TopY.
func (b Bounds) BottomY() float64 {
	_, vh := b.m.ViewportSize()
	return farEdge(vh, b.Size())
}

// farEdge is the largest offset along an axis of the given extent. A viewport
// that is too small or not a finite number collapses to Margin.
func farEdge(extent, size float64) float64 {
	v := extent - size - Margin
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Margin
	}
	return math.Max(Margin, v)
}

// ClampX constrains x to [LeftX, RightX].
func (b Bounds) ClampX(x float64) float64 {
	return clamp(x, b.LeftX(), b.RightX())
}

// ClampY constrains y to [TopY, BottomY].
func (b Bounds) ClampY(y float64) float64 {
	return clamp(y, b.TopY(), b.BottomY())
}

// Clamp constrains both axes.
func (b Bounds) Clamp(p Point) Point {
	return Point{X: b.ClampX(p.X), Y: b.ClampY(p.Y)}
}

// Contains reports whether p is already within bounds.
func (b Bounds) Contains(p Point) bool {
	return b.Clamp(p) == p
}

// RailX returns the fixed x offset of a rail. EdgeNone has no offset and
// returns false.
func (b Bounds) RailX(e Edge) (float64, bool) {
	switch e {
	case EdgeLeft:
		return b.LeftX(), true
	case EdgeRight:
		return b.RightX(), true
	}
	return 0, false
}

// NearestRail picks the rail horizontally closer to x. Ties go right.
func (b Bounds) NearestRail(x float64) Edge {
	if x-b.LeftX() < b.RightX()-x {
		return EdgeLeft
	}
	return EdgeRight
}

// EdgeWithin reports which rail x lies within threshold of, checking the
// left rail first.
func (b Bounds) EdgeWithin(x, threshold float64) Edge {
	if math.Abs(x-b.LeftX()) <= threshold {
		return EdgeLeft
	}
	if math.Abs(x-b.RightX()) <= threshold {
		return EdgeRight
	}
	return EdgeNone
}

// RailAt reports which rail x sits exactly on.
func (b Bounds) RailAt(x float64) Edge {
	return b.EdgeWithin(x, 0)
}

// Anchors returns the allowed y offsets along a rail, top to bottom. The
// exact BottomY is always the last entry.
func (b Bounds) Anchors() []float64 {
	bottom := b.BottomY()
	anchors := make([]float64, 0, int((bottom-Margin)/AnchorSpacing)+2)
	for y := Margin; y <= bottom; y += AnchorSpacing {
		anchors = append(anchors, y)
	}
	if anchors[len(anchors)-1] != bottom {
		anchors = append(anchors, bottom)
	}
	return anchors
}

// NearestAnchor returns the anchor closest to y. On a tie the topmost
// anchor wins.
func (b Bounds) NearestAnchor(y float64) float64 {
	anchors := b.Anchors()
	nearest := anchors[0]
	best := math.Abs(y - nearest)
	for _, a := range anchors[1:] {
		if d := math.Abs(y - a); d < best {
			best = d
			nearest = a
		}
	}
	return nearest
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Static is a fixed-size Measurer, handy for tests and headless use.
type Static struct {
	ViewportW, ViewportH float64
	WidgetW, WidgetH     float64
}

func (s Static) ViewportSize() (float64, float64) { return s.ViewportW, s.ViewportH }
func (s Static) WidgetSize() (float64, float64)   { return s.WidgetW, s.WidgetH }
