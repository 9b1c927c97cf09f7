package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/lockerroom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []lockerroom.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e lockerroom.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(lockerroom.InteractionEvent{
		Type:   lockerroom.EventHoverEnter,
		ZoneID: "about",
		X:      100,
		Y:      200,
	})
	store.EmitEvent(lockerroom.InteractionEvent{
		Type:    lockerroom.EventPanelShow,
		ZoneID:  "about",
		PanelID: "aboutPanel",
		Mode:    lockerroom.ModeFocused,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before processing", len(received))
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != lockerroom.EventHoverEnter || e0.ZoneID != "about" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}
	e1 := received[1]
	if e1.PanelID != "aboutPanel" || e1.Mode != lockerroom.ModeFocused {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store lockerroom.EntityStore = NewDonburiStore(world)
	_ = store
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e lockerroom.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e lockerroom.InteractionEvent) {
		count2++
	})

	store.EmitEvent(lockerroom.InteractionEvent{Type: lockerroom.EventSelect, ZoneID: "work"})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestZoneTracker(t *testing.T) {
	world := donburi.NewWorld()
	tracker := NewZoneTracker()
	tracker.Subscribe(world)
	store := NewDonburiStore(world)

	store.EmitEvent(lockerroom.InteractionEvent{Type: lockerroom.EventHoverEnter, ZoneID: "work"})
	InteractionEventType.ProcessEvents(world)
	if tracker.Hovered != "work" {
		t.Fatalf("Hovered = %q, want work", tracker.Hovered)
	}

	store.EmitEvent(lockerroom.InteractionEvent{Type: lockerroom.EventSelect, ZoneID: "work"})
	store.EmitEvent(lockerroom.InteractionEvent{Type: lockerroom.EventPanelShow, ZoneID: "work"})
	InteractionEventType.ProcessEvents(world)
	if tracker.Hovered != "" {
		t.Errorf("Hovered = %q after select, want empty", tracker.Hovered)
	}
	if tracker.Focused != "work" {
		t.Errorf("Focused = %q, want work", tracker.Focused)
	}
	if tracker.Selections["work"] != 1 {
		t.Errorf("Selections[work] = %d, want 1", tracker.Selections["work"])
	}

	store.EmitEvent(lockerroom.InteractionEvent{Type: lockerroom.EventPanelsClosed})
	InteractionEventType.ProcessEvents(world)
	if tracker.Focused != "" {
		t.Errorf("Focused = %q after close, want empty", tracker.Focused)
	}
}

// A session wired to a Donburi world publishes the full select/focus/release
// sequence.
func TestSessionPublishesToWorld(t *testing.T) {
	world := donburi.NewWorld()
	tracker := NewZoneTracker()
	tracker.Subscribe(world)

	var types []lockerroom.EventType
	InteractionEventType.Subscribe(world, func(w donburi.World, e lockerroom.InteractionEvent) {
		types = append(types, e.Type)
	})

	cfg := lockerroom.DefaultConfig()
	cfg.Particles.Count = 0
	s, err := lockerroom.NewSession(cfg,
		lockerroom.WithEntityStore(NewDonburiStore(world)),
		lockerroom.WithReadySource(lockerroom.AlwaysReady),
		lockerroom.WithSeed(1),
	)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	t0 := time.Unix(1000, 0)
	if !s.Start(t0) {
		t.Fatal("Start returned false")
	}
	obj := s.Registry().Object("about")
	x, y, ok := s.Camera().WorldToScreen(obj.Center())
	if !ok {
		t.Fatal("about locker is behind the camera")
	}
	if !s.Click(x, y, t0) {
		t.Fatal("Click did not select")
	}
	s.Update(t0.Add(1300 * time.Millisecond))
	InteractionEventType.ProcessEvents(world)

	if tracker.Focused != "about" {
		t.Errorf("Focused = %q, want about", tracker.Focused)
	}
	want := []lockerroom.EventType{
		lockerroom.EventStart,
		lockerroom.EventHoverEnter,
		lockerroom.EventHoverLeave,
		lockerroom.EventSelect,
		lockerroom.EventFocus,
		lockerroom.EventPanelShow,
	}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}
