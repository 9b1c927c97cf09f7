package lockerroom

import (
	"testing"
	"time"
)

func TestInjectClickQueuesTwoEvents(t *testing.T) {
	s := newTestSession(t)
	s.InjectClick(10, 20)
	if len(s.injectQueue) != 2 {
		t.Fatalf("queue = %d, want 2", len(s.injectQueue))
	}
	if !s.injectQueue[0].pressed || s.injectQueue[1].pressed {
		t.Error("expected press then release")
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	s := newTestSession(t)
	s.InjectDrag(0, 0, 100, 0, 5)
	if len(s.injectQueue) != 5 {
		t.Fatalf("queue = %d, want 5", len(s.injectQueue))
	}
	if s.injectQueue[2].x != 50 {
		t.Errorf("midpoint x = %v, want 50", s.injectQueue[2].x)
	}
	if s.injectQueue[4].pressed || s.injectQueue[4].x != 100 {
		t.Errorf("last event = %+v", s.injectQueue[4])
	}

	s.InjectDrag(0, 0, 10, 10, 0)
	if len(s.injectQueue) != 7 {
		t.Errorf("minimum drag should add 2 events, queue = %d", len(s.injectQueue))
	}
}

func TestInjectedInputDrivesSession(t *testing.T) {
	s := newTestSession(t)
	s.InjectKey(KeyStart)
	s.Update(testEpoch)
	if !s.Started() {
		t.Fatal("injected key did not start")
	}
	if s.injecting() {
		t.Error("queue should be drained")
	}

	x, y := screenPos(t, s, "about")
	s.InjectClick(x, y)
	s.Update(testEpoch.Add(16 * time.Millisecond))
	if s.Selected() != nil {
		t.Fatal("selected after the press alone")
	}
	s.Update(testEpoch.Add(32 * time.Millisecond))
	if s.Selected() == nil || s.Selected().ID() != "about" {
		t.Fatalf("selected = %v, want about", s.Selected())
	}

	s.InjectKey(KeyEscape)
	s.Update(testEpoch.Add(48 * time.Millisecond))
	if s.Mode() != ModeTransitioningIn {
		t.Errorf("escape during transition changed mode to %v", s.Mode())
	}
}

func TestProcessInjectedInputEmpty(t *testing.T) {
	s := newTestSession(t)
	if s.processInjectedInput(testEpoch) {
		t.Error("empty queue reported an event")
	}
}
