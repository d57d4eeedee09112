package frame

import "testing"

func TestCoalescerSchedulesOnce(t *testing.T) {
	var c Coalescer
	if !c.Request() {
		t.Fatal("expected first request to schedule")
	}
	for i := 0; i < 5; i++ {
		if c.Request() {
			t.Fatalf("request %d should coalesce into the pending frame", i)
		}
	}
	if !c.Fire() {
		t.Fatal("expected fire to report pending work")
	}
	if c.Fire() {
		t.Fatal("expected second fire to report nothing")
	}
	if !c.Request() {
		t.Fatal("expected request after fire to schedule again")
	}
}

func TestTickCarriesSeq(t *testing.T) {
	cmd := Tick(7)
	if cmd == nil {
		t.Fatal("expected tick command")
	}
	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg, got %T", cmd())
	}
	if msg.Seq != 7 {
		t.Fatalf("expected seq 7, got %d", msg.Seq)
	}
}
