package lockerroom

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// PanelSuffix is appended to a zone ID to address its content panel.
const PanelSuffix = "Panel"

var (
	// ErrEmptyZoneID is returned when a zone is configured without an ID.
	ErrEmptyZoneID = errors.New("lockerroom: zone id is empty")
	// ErrDuplicateZone is returned when two zones share an ID.
	ErrDuplicateZone = errors.New("lockerroom: duplicate zone id")
)

// Zone is a static, immutable descriptor of an interactive area of the room.
type Zone struct {
	ID     string
	Label  string
	Number string
	// Angle is the zone's placement around the room centre in radians,
	// measured from +X toward +Z.
	Angle  float64
	Accent colorful.Color
}

// PanelID returns the ID of the content panel bound to this zone.
func (z Zone) PanelID() string {
	return PanelID(z.ID)
}

// PanelID derives the panel ID for a zone ID.
func PanelID(zoneID string) string {
	return zoneID + PanelSuffix
}

// Placement returns the zone's rest position on the floor for a ring of the
// given radius.
func (z Zone) Placement(ringRadius float64) mgl64.Vec3 {
	sin, cos := math.Sincos(z.Angle)
	return mgl64.Vec3{cos * ringRadius, 0, sin * ringRadius}
}

// FacingYaw returns the yaw that turns a zone's front (+Z in local space)
// toward the room centre.
func (z Zone) FacingYaw() float64 {
	return -z.Angle - math.Pi/2
}

// Registry holds the static set of zones and the interactive objects built
// for them. Zones keep their configured order.
type Registry struct {
	zones   []Zone
	index   map[string]int
	objects []*InteractiveObject
}

// NewRegistry validates zones and returns a registry. IDs must be non-empty
// and unique.
func NewRegistry(zones []Zone) (*Registry, error) {
	r := &Registry{
		zones: make([]Zone, 0, len(zones)),
		index: make(map[string]int, len(zones)),
	}
	for i, z := range zones {
		if z.ID == "" {
			return nil, fmt.Errorf("zone %d: %w", i, ErrEmptyZoneID)
		}
		if _, dup := r.index[z.ID]; dup {
			return nil, fmt.Errorf("zone %q: %w", z.ID, ErrDuplicateZone)
		}
		r.index[z.ID] = len(r.zones)
		r.zones = append(r.zones, z)
	}
	return r, nil
}

// Zones returns the registered zones. The returned slice MUST NOT be mutated.
func (r *Registry) Zones() []Zone {
	return r.zones
}

// Len returns the number of registered zones.
func (r *Registry) Len() int {
	return len(r.zones)
}

// Lookup returns the zone with the given ID.
func (r *Registry) Lookup(id string) (Zone, bool) {
	i, ok := r.index[id]
	if !ok {
		return Zone{}, false
	}
	return r.zones[i], true
}

// Objects returns the interactive objects built for the zones, in zone
// order. The returned slice MUST NOT be mutated.
func (r *Registry) Objects() []*InteractiveObject {
	return r.objects
}

// Object returns the interactive object bound to the zone ID, or nil.
func (r *Registry) Object(id string) *InteractiveObject {
	i, ok := r.index[id]
	if !ok || i >= len(r.objects) {
		return nil
	}
	return r.objects[i]
}

// Build creates one InteractiveObject per zone, placed on a ring of the given
// radius, and attaches them under parent. Build is called once per registry.
func (r *Registry) Build(parent *Node, ringRadius float64) {
	r.objects = make([]*InteractiveObject, 0, len(r.zones))
	for i, z := range r.zones {
		obj := NewInteractiveObject(z, i)
		pos := z.Placement(ringRadius)
		obj.Root.Position = pos
		obj.Root.Yaw = z.FacingYaw()
		obj.RestY = pos.Y()
		parent.AddChild(obj.Root)
		r.objects = append(r.objects, obj)
	}
}
