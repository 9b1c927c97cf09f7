package ecs

import (
	"github.com/phanxgames/lockerroom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for session events.
var InteractionEventType = events.NewEventType[lockerroom.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Events
// are queued on InteractionEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) lockerroom.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event lockerroom.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// ZoneTracker is a Donburi subscriber that keeps the latest focus state
// derived from session events. Register it with Subscribe.
type ZoneTracker struct {
	// Focused is the zone whose panel is showing, or "".
	Focused string
	// Hovered is the zone under the pointer, or "".
	Hovered string
	// Selections counts select events per zone.
	Selections map[string]int
}

// NewZoneTracker creates an empty tracker.
func NewZoneTracker() *ZoneTracker {
	return &ZoneTracker{Selections: make(map[string]int)}
}

// Subscribe registers the tracker on world.
func (t *ZoneTracker) Subscribe(world donburi.World) {
	InteractionEventType.Subscribe(world, t.handle)
}

func (t *ZoneTracker) handle(_ donburi.World, e lockerroom.InteractionEvent) {
	switch e.Type {
	case lockerroom.EventHoverEnter:
		t.Hovered = e.ZoneID
	case lockerroom.EventHoverLeave:
		if t.Hovered == e.ZoneID {
			t.Hovered = ""
		}
	case lockerroom.EventSelect:
		t.Selections[e.ZoneID]++
		t.Hovered = ""
	case lockerroom.EventPanelShow:
		t.Focused = e.ZoneID
	case lockerroom.EventPanelsClosed, lockerroom.EventRelease:
		t.Focused = ""
	}
}
