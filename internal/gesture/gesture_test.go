package gesture

import (
	"testing"
	"time"

	"github.com/olivier-w/chathead/internal/geometry"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testBounds() geometry.Bounds {
	return geometry.New(geometry.Static{ViewportW: 1000, ViewportH: 800, WidgetW: 64, WidgetH: 64})
}

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

func TestTapWhenStillAndQuick(t *testing.T) {
	var m Machine
	b := testBounds()
	pos := pt(944, 352)

	m.Down(pt(970, 380), pos, t0, b)
	rel := m.Up(pt(970, 380), t0.Add(50*time.Millisecond), pos, b)
	if rel.Kind != ReleaseTap {
		t.Fatalf("expected tap, got %+v", rel)
	}
	if m.State() != Idle {
		t.Fatalf("expected idle after release, got %v", m.State())
	}
	if m.Moved() {
		t.Fatal("expected moved flag to stay clear for a tap")
	}
}

func TestSlowPressIsNotTap(t *testing.T) {
	var m Machine
	b := testBounds()
	pos := pt(944, 352)

	m.Down(pt(970, 380), pos, t0, b)
	rel := m.Up(pt(970, 380), t0.Add(TapMaxDuration), pos, b)
	if rel.Kind != ReleaseSnap {
		t.Fatalf("expected snap, got %+v", rel)
	}
	if rel.Target != pos {
		t.Fatalf("expected snap in place at %+v, got %+v", pos, rel.Target)
	}
}

func TestDisplacedReleaseIsNeverTap(t *testing.T) {
	var m Machine
	b := testBounds()
	pos := pt(500, 300)

	m.Down(pt(520, 320), pos, t0, b)
	if _, ok := m.Move(pt(530, 320), b); !ok {
		t.Fatal("expected move to be accepted")
	}
	// Pointer returns home but the gesture already moved.
	rel := m.Up(pt(520, 320), t0.Add(10*time.Millisecond), pos, b)
	if rel.Kind == ReleaseTap {
		t.Fatal("moved gesture must not be a tap")
	}
	if !m.Moved() {
		t.Fatal("expected moved flag to survive release for click suppression")
	}
}

func TestJitterDoesNotSetMoved(t *testing.T) {
	var m Machine
	b := testBounds()
	m.Down(pt(520, 320), pt(500, 300), t0, b)
	m.Move(pt(522, 318), b)
	if m.Session().Moved {
		t.Fatal("jitter under threshold must not set moved")
	}
	rel := m.Up(pt(522, 318), t0.Add(30*time.Millisecond), pt(502, 298), b)
	if rel.Kind != ReleaseTap {
		t.Fatalf("expected jitter to remain a tap, got %+v", rel)
	}
}

func TestMoveIgnoredWhenIdle(t *testing.T) {
	var m Machine
	if _, ok := m.Move(pt(1, 1), testBounds()); ok {
		t.Fatal("expected idle move to be rejected")
	}
	if rel := m.Up(pt(1, 1), t0, pt(0, 0), testBounds()); rel.Kind != ReleaseNone {
		t.Fatalf("expected no release when idle, got %+v", rel)
	}
}

func TestRailLocksOnlyAfterNudgeTowardEdge(t *testing.T) {
	var m Machine
	b := testBounds()
	m.Down(pt(970, 380), pt(944, 352), t0, b)
	if m.Session().EdgeAtDown != geometry.EdgeRight {
		t.Fatalf("expected right edge hint, got %v", m.Session().EdgeAtDown)
	}

	m.Move(pt(974, 400), b)
	if m.Session().Rail != geometry.EdgeNone {
		t.Fatal("rail must not lock before the nudge")
	}

	p, _ := m.Move(pt(975, 420), b)
	if m.Session().Rail != geometry.EdgeRight {
		t.Fatalf("expected right rail lock, got %v", m.Session().Rail)
	}
	if p.X != 944 {
		t.Fatalf("expected x pinned to 944, got %v", p.X)
	}
}

func TestRailPinsXUntilReversePull(t *testing.T) {
	var m Machine
	b := testBounds()
	m.Down(pt(20, 100), pt(-8, 52), t0, b)
	m.Move(pt(14, 110), b)
	if m.Session().Rail != geometry.EdgeLeft {
		t.Fatalf("expected left rail lock, got %v", m.Session().Rail)
	}

	for i, x := range []float64{0, 10, 25, 30} {
		p, _ := m.Move(pt(x, 200+float64(i)*40), b)
		if p.X != -8 {
			t.Fatalf("move %d: expected x pinned to -8, got %v", i, p.X)
		}
	}

	p, _ := m.Move(pt(200, 400), b)
	if m.Session().Rail != geometry.EdgeNone {
		t.Fatal("expected reverse pull to release the rail")
	}
	if p.X != 172 {
		t.Fatalf("expected free x 172, got %v", p.X)
	}
}

func TestRailReleaseSnapsToAnchor(t *testing.T) {
	var m Machine
	b := testBounds()
	m.Down(pt(970, 380), pt(944, 352), t0, b)
	m.Move(pt(980, 380), b)
	live, _ := m.Move(pt(980, 470), b)

	rel := m.Up(pt(980, 470), t0.Add(time.Second), live, b)
	if rel.Kind != ReleaseSnap || !rel.Locked || rel.Rail != geometry.EdgeRight {
		t.Fatalf("unexpected release %+v", rel)
	}
	if rel.Target.X != 944 {
		t.Fatalf("expected rail x 944, got %v", rel.Target.X)
	}
	if rel.Target.Y != b.NearestAnchor(live.Y) {
		t.Fatalf("expected anchor %v, got %v", b.NearestAnchor(live.Y), rel.Target.Y)
	}
}

func TestFreeReleasePicksNearerRail(t *testing.T) {
	var m Machine
	b := testBounds()
	m.Down(pt(970, 380), pt(944, 352), t0, b)
	live, _ := m.Move(pt(270, 380), b)
	if live.X != 244 {
		t.Fatalf("expected live x 244, got %v", live.X)
	}

	rel := m.Up(pt(270, 380), t0.Add(400*time.Millisecond), live, b)
	if rel.Kind != ReleaseSnap || rel.Locked {
		t.Fatalf("unexpected release %+v", rel)
	}
	if rel.Target != pt(-8, 352) {
		t.Fatalf("expected target (-8, 352), got %+v", rel.Target)
	}
}

func TestMagnetPreSnapsDuringFreeDrag(t *testing.T) {
	var m Machine
	b := testBounds()
	m.Down(pt(520, 320), pt(500, 300), t0, b)

	p, _ := m.Move(pt(20, 320), b)
	if p.X != -8 {
		t.Fatalf("expected magnet to left rail, got %v", p.X)
	}
	if m.Session().Rail != geometry.EdgeNone {
		t.Fatal("magnet must not lock a rail")
	}

	p, _ = m.Move(pt(950, 320), b)
	if p.X != 944 {
		t.Fatalf("expected magnet to right rail, got %v", p.X)
	}

	p, _ = m.Move(pt(700, 320), b)
	if p.X != 680 {
		t.Fatalf("expected free x 680, got %v", p.X)
	}
}

func TestMoveClampsY(t *testing.T) {
	var m Machine
	b := testBounds()
	m.Down(pt(520, 320), pt(500, 300), t0, b)
	p, _ := m.Move(pt(520, -500), b)
	if p.Y != -8 {
		t.Fatalf("expected y clamped to -8, got %v", p.Y)
	}
	p, _ = m.Move(pt(520, 5000), b)
	if p.Y != 744 {
		t.Fatalf("expected y clamped to 744, got %v", p.Y)
	}
}

func TestDownWhileDraggingRestarts(t *testing.T) {
	var m Machine
	b := testBounds()
	m.Down(pt(520, 320), pt(500, 300), t0, b)
	m.Move(pt(600, 320), b)

	if restarted := m.Down(pt(100, 100), pt(580, 300), t0.Add(time.Second), b); !restarted {
		t.Fatal("expected second down to report a restart")
	}
	s := m.Session()
	if s.Base != pt(580, 300) || s.Start != pt(100, 100) || s.Moved {
		t.Fatalf("expected fresh session, got %+v", s)
	}
}

func TestCancelNeverTaps(t *testing.T) {
	var m Machine
	b := testBounds()
	pos := pt(944, 352)
	m.Down(pt(970, 380), pos, t0, b)
	rel := m.Cancel(pos, b)
	if rel.Kind != ReleaseSnap {
		t.Fatalf("expected snap on cancel, got %+v", rel)
	}
}

func TestCaughtPressNeverTaps(t *testing.T) {
	var m Machine
	b := testBounds()
	pos := pt(500, 300)

	m.Catch()
	if m.Moved() {
		t.Fatal("catch while idle must be ignored")
	}

	m.Down(pt(520, 320), pos, t0, b)
	m.Catch()
	rel := m.Up(pt(520, 320), t0.Add(20*time.Millisecond), pos, b)
	if rel.Kind != ReleaseSnap {
		t.Fatalf("expected snap for a caught bubble, got %+v", rel)
	}
	if !m.Moved() {
		t.Fatal("expected click suppression after a catch")
	}
}
