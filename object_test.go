package lockerroom

import (
	"testing"
	"time"
)

func TestUserDataSurvivesBreathing(t *testing.T) {
	s := newTestSession(t)
	obj := s.Registry().Object("about")
	zone, _ := s.Registry().Lookup("about")

	before := obj.UserData()
	want := UserData{ID: "about", Label: zone.Label, OriginalRestY: obj.RestY}
	if before != want {
		t.Fatalf("UserData after Build = %+v, want %+v", before, want)
	}

	s.Update(testEpoch)
	s.Update(testEpoch.Add(1700 * time.Millisecond))
	if got := obj.Root.Position.Y(); got == obj.RestY {
		t.Fatalf("breathing did not move the locker: y = %v", got)
	}
	if after := obj.UserData(); after != before {
		t.Errorf("UserData after breathing = %+v, want %+v", after, before)
	}
}

func TestEventsCarryZoneLabel(t *testing.T) {
	store := &recordingStore{}
	s := newTestSession(t, WithEntityStore(store))
	s.Start(testEpoch)
	x, y := screenPos(t, s, "about")
	if !s.Click(x, y, testEpoch) {
		t.Fatal("Click did not select")
	}

	last := store.events[len(store.events)-1]
	if last.Type != EventSelect {
		t.Fatalf("last event = %v, want select", last.Type)
	}
	if last.ZoneID != "about" || last.Label != "ABOUT" || last.PanelID != "aboutPanel" {
		t.Errorf("select event = %+v", last)
	}
}
