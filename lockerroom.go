package lockerroom

// Vec2 is a 2D vector used for screen positions, pointer deltas, and
// normalized device coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned screen rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Mode is the interaction mode of a session. Exactly one mode is active.
type Mode uint8

const (
	ModeFreeLook         Mode = iota // pointer look, hover and click enabled
	ModeTransitioningIn              // camera moving toward a zone
	ModeFocused                      // camera parked at a zone, panel shown
	ModeTransitioningOut             // camera returning to the saved pose
)

// String returns the mode name used in logs and events.
func (m Mode) String() string {
	switch m {
	case ModeFreeLook:
		return "free-look"
	case ModeTransitioningIn:
		return "transitioning-in"
	case ModeFocused:
		return "focused"
	case ModeTransitioningOut:
		return "transitioning-out"
	default:
		return "unknown"
	}
}

// CursorShape is the cursor hint a session exposes for the host window.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota // arrow
	CursorPointer                    // hand, shown while a zone is hovered
)

// EventType identifies a kind of session event.
type EventType uint8

const (
	EventStart        EventType = iota // the experience was started by the user
	EventHoverEnter                    // pointer entered a zone
	EventHoverLeave                    // pointer left a zone
	EventSelect                        // a zone was selected; camera begins moving in
	EventFocus                         // camera arrived at the selected zone
	EventRelease                       // focus released; camera begins moving out
	EventFreeLook                      // camera returned to the saved pose
	EventPanelShow                     // a panel became the active panel
	EventPanelsClosed                  // every panel was deactivated
)

// String returns the event name used in logs.
func (e EventType) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventHoverEnter:
		return "hover-enter"
	case EventHoverLeave:
		return "hover-leave"
	case EventSelect:
		return "select"
	case EventFocus:
		return "focus"
	case EventRelease:
		return "release"
	case EventFreeLook:
		return "free-look"
	case EventPanelShow:
		return "panel-show"
	case EventPanelsClosed:
		return "panels-closed"
	default:
		return "unknown"
	}
}

// EntityStore is the interface for optional ECS integration.
// When set on a Session, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries session event data for the ECS bridge.
type InteractionEvent struct {
	Type    EventType
	ZoneID  string
	Label   string
	PanelID string
	Mode    Mode
	// Screen position of the pointer when the event fired (zero for
	// events not caused by the pointer).
	X, Y float64
}
