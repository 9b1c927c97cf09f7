package lockerroom

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(DefaultConfig().Zones())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if r.Len() != 4 {
		t.Fatalf("Len = %d, want 4", r.Len())
	}
	want := []string{"about", "interests", "work", "contact"}
	for i, z := range r.Zones() {
		if z.ID != want[i] {
			t.Errorf("zone %d = %q, want %q", i, z.ID, want[i])
		}
	}
	z, ok := r.Lookup("work")
	if !ok || z.Label != "WORK" {
		t.Errorf("Lookup(work) = %+v, %v", z, ok)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestNewRegistryErrors(t *testing.T) {
	tests := []struct {
		name  string
		zones []Zone
		want  error
	}{
		{"empty id", []Zone{{ID: "a"}, {ID: ""}}, ErrEmptyZoneID},
		{"duplicate", []Zone{{ID: "a"}, {ID: "b"}, {ID: "a"}}, ErrDuplicateZone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.zones)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPanelID(t *testing.T) {
	if got := PanelID("about"); got != "aboutPanel" {
		t.Errorf("PanelID = %q", got)
	}
	if got := (Zone{ID: "work"}).PanelID(); got != "workPanel" {
		t.Errorf("Zone.PanelID = %q", got)
	}
}

func TestZonePlacement(t *testing.T) {
	z := Zone{ID: "about", Angle: -math.Pi / 4}
	got := z.Placement(10)
	want := mgl64.Vec3{10 * math.Sqrt2 / 2, 0, -10 * math.Sqrt2 / 2}
	if !vecApproxEqual(got, want, 1e-9) {
		t.Errorf("Placement = %v, want %v", got, want)
	}
}

// The front of every built object faces the room centre.
func TestRegistryBuildFacesCentre(t *testing.T) {
	r, err := NewRegistry(DefaultConfig().Zones())
	if err != nil {
		t.Fatal(err)
	}
	root := NewGroup("root")
	r.Build(root, 10)

	if len(r.Objects()) != 4 || root.NumChildren() != 4 {
		t.Fatalf("objects = %d, children = %d", len(r.Objects()), root.NumChildren())
	}
	for _, obj := range r.Objects() {
		if r.Object(obj.ID()) != obj {
			t.Errorf("Object(%q) mismatch", obj.ID())
		}
		front := mgl64.TransformNormal(mgl64.Vec3{0, 0, 1}, obj.Root.WorldTransform())
		toCentre := obj.Root.Position.Mul(-1).Normalize()
		if !approxEqual(front.Dot(toCentre), 1, 1e-9) {
			t.Errorf("%s front %v does not face centre %v", obj.ID(), front, toCentre)
		}
	}
	if r.Object("missing") != nil {
		t.Error("Object(missing) should be nil")
	}
}
