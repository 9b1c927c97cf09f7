package lockerroom

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// GlowName is the name of the hover/selection affordance node inside every
// interactive object.
const GlowName = "glow"

// Locker palette.
var (
	woodColor    = colorful.Color{R: 0.290, G: 0.216, B: 0.157}
	woodDark     = colorful.Color{R: 0.176, G: 0.122, B: 0.086}
	woodLight    = colorful.Color{R: 0.420, G: 0.302, B: 0.227}
	brassColor   = colorful.Color{R: 0.710, G: 0.651, B: 0.259}
	leatherColor = colorful.Color{R: 0.102, G: 0.102, B: 0.102}
)

// UserData is the identity record attached to an interactive object.
type UserData struct {
	ID    string
	Label string
	// OriginalRestY is the object's vertical rest position before any
	// breathing offset is applied.
	OriginalRestY float64
}

// InteractiveObject is the runtime scene node bound to a Zone. It owns a
// group of box primitives, each carrying a back-reference to the object,
// and a named glow primitive whose opacity is the sole mutable affordance.
type InteractiveObject struct {
	Zone  Zone
	Root  *Node
	RestY float64
	// Phase offsets the ambient breathing so neighbours do not move in step.
	Phase float64

	glow *Node
}

// NewInteractiveObject builds the primitives for a zone. index is the zone's
// position in the registry and seeds the breathing phase.
func NewInteractiveObject(z Zone, index int) *InteractiveObject {
	obj := &InteractiveObject{
		Zone:  z,
		Root:  NewGroup(z.ID),
		Phase: float64(index) * 0.5,
	}

	obj.addPart("cabinet", mgl64.Vec3{3.4, 7, 1.0}, mgl64.Vec3{0, 3.5, 0}, woodColor, true)
	obj.addPart("door-left", mgl64.Vec3{1.55, 6.2, 0.08}, mgl64.Vec3{-0.8, 3.6, 0.54}, woodLight, true)
	obj.addPart("door-right", mgl64.Vec3{1.55, 6.2, 0.08}, mgl64.Vec3{0.8, 3.6, 0.54}, woodLight, true)
	obj.addPart("nameplate", mgl64.Vec3{1.2, 0.3, 0.04}, mgl64.Vec3{0, 6.4, 0.6}, brassColor, true)
	obj.addPart("jersey", mgl64.Vec3{1.4, 1.8, 0.05}, mgl64.Vec3{0, 4.4, 0.62}, z.Accent, true)
	obj.addPart("bench", mgl64.Vec3{3.2, 0.15, 0.8}, mgl64.Vec3{0, 0.9, 1.3}, woodDark, true)
	obj.addPart("shoes", mgl64.Vec3{0.6, 0.25, 0.35}, mgl64.Vec3{0.7, 0.12, 1.2}, leatherColor, true)
	led := obj.addPart("led", mgl64.Vec3{3.2, 0.04, 0.04}, mgl64.Vec3{0, 7, 0.8}, z.Accent, false)
	led.Opacity = 0.9

	obj.glow = obj.addPart(GlowName, mgl64.Vec3{3.6, 7.2, 1.3}, mgl64.Vec3{0, 3.5, 0.2}, z.Accent, false)
	obj.glow.Opacity = 0
	obj.glow.Layer = 2

	return obj
}

func (o *InteractiveObject) addPart(name string, size, pos mgl64.Vec3, c colorful.Color, pickable bool) *Node {
	n := NewBox(name, size, c)
	n.Position = pos
	n.Pickable = pickable
	n.Owner = o
	o.Root.AddChild(n)
	return n
}

// ID returns the zone ID.
func (o *InteractiveObject) ID() string {
	return o.Zone.ID
}

// UserData returns the object's identity record.
func (o *InteractiveObject) UserData() UserData {
	return UserData{ID: o.Zone.ID, Label: o.Zone.Label, OriginalRestY: o.RestY}
}

// Glow returns the current glow opacity.
func (o *InteractiveObject) Glow() float64 {
	if o.glow == nil {
		return 0
	}
	return o.glow.Opacity
}

// SetGlow sets the glow opacity. No-op when the glow primitive is missing.
func (o *InteractiveObject) SetGlow(opacity float64) {
	if o.glow == nil {
		return
	}
	o.glow.Opacity = opacity
}

// GlowNode returns the glow primitive, or nil.
func (o *InteractiveObject) GlowNode() *Node {
	return o.glow
}

// Center returns the world-space centre of the cabinet at its rest height.
func (o *InteractiveObject) Center() mgl64.Vec3 {
	p := o.Root.Position
	return mgl64.Vec3{p.X(), o.RestY + 3.5, p.Z()}
}
