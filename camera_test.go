package lockerroom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestCamera() *Camera {
	c := NewCamera(45, 0.1, 100, Rect{Width: 800, Height: 600})
	c.Position = mgl64.Vec3{0, 3.5, 0}
	return c
}

func TestCameraAspect(t *testing.T) {
	c := newTestCamera()
	if !approxEqual(c.Aspect(), 800.0/600.0, epsilon) {
		t.Errorf("Aspect = %v", c.Aspect())
	}
	c.Viewport = Rect{}
	if c.Aspect() != 1 {
		t.Errorf("empty viewport Aspect = %v, want 1", c.Aspect())
	}
}

func TestScreenToNDC(t *testing.T) {
	c := newTestCamera()
	tests := []struct {
		name   string
		sx, sy float64
		want   Vec2
	}{
		{"centre", 400, 300, Vec2{0, 0}},
		{"top-left", 0, 0, Vec2{-1, 1}},
		{"bottom-right", 800, 600, Vec2{1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ScreenToNDC(tt.sx, tt.sy)
			if !approxEqual(got.X, tt.want.X, epsilon) || !approxEqual(got.Y, tt.want.Y, epsilon) {
				t.Errorf("ScreenToNDC = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWorldToScreenCentre(t *testing.T) {
	c := newTestCamera()
	x, y, ok := c.WorldToScreen(mgl64.Vec3{0, 3.5, -10})
	if !ok {
		t.Fatal("point ahead reported behind")
	}
	if !approxEqual(x, 400, 1e-6) || !approxEqual(y, 300, 1e-6) {
		t.Errorf("WorldToScreen = (%v, %v), want (400, 300)", x, y)
	}
	if _, _, ok := c.WorldToScreen(mgl64.Vec3{0, 3.5, 10}); ok {
		t.Error("point behind the camera should not project")
	}
}

// A pick ray through a projected point passes through that point.
func TestRayFromNDCRoundTrip(t *testing.T) {
	c := newTestCamera()
	c.Rotation = Rotation{X: 0.1, Y: -0.6}
	p := mgl64.Vec3{4, 2, -6}

	sx, sy, ok := c.WorldToScreen(p)
	if !ok {
		t.Fatal("point not in front of camera")
	}
	ray := c.RayFromNDC(c.ScreenToNDC(sx, sy))
	toP := p.Sub(ray.Origin)
	along := toP.Dot(ray.Direction)
	closest := ray.At(along)
	if closest.Sub(p).Len() > 1e-6 {
		t.Errorf("ray misses point by %v", closest.Sub(p).Len())
	}
	if !approxEqual(ray.Direction.Len(), 1, 1e-9) {
		t.Errorf("ray direction not normalized: %v", ray.Direction.Len())
	}
}

func TestCameraForward(t *testing.T) {
	c := newTestCamera()
	if !vecApproxEqual(c.Forward(), mgl64.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("Forward = %v", c.Forward())
	}
	c.Rotation.Y = math.Pi / 2
	if !vecApproxEqual(c.Forward(), mgl64.Vec3{-1, 0, 0}, epsilon) {
		t.Errorf("Forward after yaw = %v", c.Forward())
	}
}

func TestLookAtYaw(t *testing.T) {
	from := mgl64.Vec3{0, 3.5, 0}
	to := mgl64.Vec3{5, 0, -5}
	c := newTestCamera()
	c.Rotation.Y = LookAtYaw(from, to)
	want := mgl64.Vec3{1, 0, -1}.Normalize()
	if !vecApproxEqual(c.Forward(), want, 1e-9) {
		t.Errorf("Forward = %v, want %v", c.Forward(), want)
	}
}

func TestCameraSmooth(t *testing.T) {
	s := CameraState{Target: Rotation{X: 1, Y: -2}}
	s.Smooth(0.5)
	if !approxEqual(s.Current.X, 0.5, epsilon) || !approxEqual(s.Current.Y, -1, epsilon) {
		t.Errorf("Current = %+v", s.Current)
	}
	s.Smooth(1)
	if s.Current != s.Target {
		t.Errorf("Smooth(1) should snap: %+v", s.Current)
	}
}
