package lockerroom

// DefaultHoverIntensity is the glow opacity of a hovered, unselected zone.
const DefaultHoverIntensity = 0.12

// labelOffset is the distance in pixels from the pointer to the floating
// label's top-left corner.
const labelOffset = 20

// Label is the floating zone label shown next to the pointer.
type Label struct {
	Text    string
	X, Y    float64
	Visible bool
}

// HoverTracker keeps track of which zone the pointer is over and applies
// the hover affordance: glow, floating label and cursor hint.
//
// The tracker does not know about session modes; the caller only invokes
// Update while the session is started and in free look.
type HoverTracker struct {
	picker    *Picker
	camera    *Camera
	intensity float64
	selected  func() *InteractiveObject

	hovered *InteractiveObject
	label   Label
	cursor  CursorShape

	// OnChange is called whenever the hovered object changes. Either
	// argument may be nil.
	OnChange func(prev, next *InteractiveObject)
}

// NewHoverTracker creates a tracker. selected reports the currently
// selected object so its glow is never overwritten by hover; it may be nil.
func NewHoverTracker(picker *Picker, camera *Camera, intensity float64, selected func() *InteractiveObject) *HoverTracker {
	if selected == nil {
		selected = func() *InteractiveObject { return nil }
	}
	return &HoverTracker{
		picker:    picker,
		camera:    camera,
		intensity: intensity,
		selected:  selected,
	}
}

// Update picks at the pointer position (x, y) in screen pixels and returns
// the hovered object, or nil.
func (h *HoverTracker) Update(x, y float64) *InteractiveObject {
	hit := h.picker.Pick(h.camera, h.camera.ScreenToNDC(x, y))
	h.set(hit)
	if h.hovered != nil {
		h.label = Label{
			Text:    h.hovered.Zone.Label,
			X:       x + labelOffset,
			Y:       y + labelOffset,
			Visible: true,
		}
		h.cursor = CursorPointer
	} else {
		h.label.Visible = false
		h.cursor = CursorDefault
	}
	return h.hovered
}

// Clear drops the hover state, e.g. when a selection starts.
func (h *HoverTracker) Clear() {
	h.set(nil)
	h.label.Visible = false
	h.cursor = CursorDefault
}

// Hovered returns the hovered object, or nil.
func (h *HoverTracker) Hovered() *InteractiveObject { return h.hovered }

// Label returns the floating label state.
func (h *HoverTracker) Label() Label { return h.label }

// Cursor returns the cursor hint.
func (h *HoverTracker) Cursor() CursorShape { return h.cursor }

func (h *HoverTracker) set(next *InteractiveObject) {
	prev := h.hovered
	if next == prev {
		return
	}
	sel := h.selected()
	if prev != nil && prev != sel {
		prev.SetGlow(0)
	}
	if next != nil && next != sel {
		next.SetGlow(h.intensity)
	}
	h.hovered = next
	if h.OnChange != nil {
		h.OnChange(prev, next)
	}
}
