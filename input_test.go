package lockerroom

import (
	"testing"
	"time"
)

func TestPointerClickStarts(t *testing.T) {
	s := newTestSession(t)
	s.processPointer(10, 10, true, testEpoch)
	s.processPointer(10, 10, false, testEpoch)
	if !s.Started() {
		t.Error("click did not start the session")
	}
}

func TestPointerClickSelects(t *testing.T) {
	s := newTestSession(t)
	s.Start(testEpoch)
	x, y := screenPos(t, s, "about")
	s.processPointer(x, y, true, testEpoch)
	s.processPointer(x+2, y, true, testEpoch) // inside the dead zone
	s.processPointer(x+2, y, false, testEpoch)
	if s.Selected() == nil || s.Selected().ID() != "about" {
		t.Errorf("selected = %v, want about", s.Selected())
	}
}

func TestPointerDragLooks(t *testing.T) {
	s := newTestSession(t)
	s.Start(testEpoch)
	x, y := screenPos(t, s, "about")

	s.processPointer(x, y, true, testEpoch)
	s.processPointer(x+100, y, true, testEpoch)
	s.processPointer(x+100, y, false, testEpoch)

	if s.Selected() != nil {
		t.Error("drag release selected a zone")
	}
	if !approxEqual(s.CameraState().Target.Y, -0.2, epsilon) {
		t.Errorf("target yaw = %v, want -0.2", s.CameraState().Target.Y)
	}
}

func TestPointerDragFromPanelDoesNotLook(t *testing.T) {
	s := newTestSession(t)
	s.Start(testEpoch)
	s.Panels().Show("about")
	b := s.Panels().Panel("aboutPanel").Bounds

	s.processPointer(b.X+10, b.Y+100, true, testEpoch)
	s.processPointer(b.X-200, b.Y+100, true, testEpoch)
	s.processPointer(b.X-200, b.Y+100, false, testEpoch)

	if s.CameraState().Target != (Rotation{}) {
		t.Errorf("drag from panel turned the camera: %+v", s.CameraState().Target)
	}
}

func TestPointerHoverMove(t *testing.T) {
	s := newTestSession(t)
	s.Start(testEpoch)
	x, y := screenPos(t, s, "about")
	s.processPointer(x, y, false, testEpoch)
	if s.Hovered() == nil {
		t.Error("hover move did not hover")
	}
}

func TestProcessKey(t *testing.T) {
	s := newTestSession(t)
	s.processKey(KeyStart, testEpoch)
	if !s.Started() {
		t.Fatal("KeyStart did not start")
	}
	x, y := screenPos(t, s, "about")
	s.Click(x, y, testEpoch)
	s.Update(testEpoch.Add(time.Second + 200*time.Millisecond))
	s.processKey(KeyEscape, testEpoch.Add(2*time.Second))
	if s.Mode() != ModeTransitioningOut {
		t.Errorf("mode after escape key = %v", s.Mode())
	}
}
