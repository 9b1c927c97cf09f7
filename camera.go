package lockerroom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is a camera orientation: X is pitch and Y is yaw, both in
// radians, applied yaw first (YXZ order).
type Rotation struct {
	X, Y float64
}

// Pose is a full camera placement.
type Pose struct {
	Position mgl64.Vec3
	Rotation Rotation
}

// CameraState holds the desired and applied camera orientation.
//
// Current is written only by free-look smoothing or by the active transition,
// never both in the same frame. The Controller is the single writer.
type CameraState struct {
	Target  Rotation
	Current Rotation
}

// Smooth moves Current toward Target by the given factor (0 = frozen,
// 1 = snap).
func (s *CameraState) Smooth(factor float64) {
	s.Current.X += (s.Target.X - s.Current.X) * factor
	s.Current.Y += (s.Target.Y - s.Current.Y) * factor
}

// Camera is a perspective camera: position, orientation, projection and
// viewport.
type Camera struct {
	// Position is the world-space eye position.
	Position mgl64.Vec3
	// Rotation is the applied orientation.
	Rotation Rotation
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far are the clip plane distances.
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
}

// NewCamera creates a Camera with the given projection and viewport.
func NewCamera(fov, near, far float64, viewport Rect) *Camera {
	return &Camera{
		FOV:      fov,
		Near:     near,
		Far:      far,
		Viewport: viewport,
	}
}

// Aspect returns the viewport aspect ratio, or 1 for an empty viewport.
func (c *Camera) Aspect() float64 {
	if c.Viewport.Empty() {
		return 1
	}
	return c.Viewport.Width / c.Viewport.Height
}

// SetViewportSize resizes the viewport, keeping its origin.
func (c *Camera) SetViewportSize(w, h float64) {
	c.Viewport.Width = w
	c.Viewport.Height = h
}

// Pose returns the camera's current placement.
func (c *Camera) Pose() Pose {
	return Pose{Position: c.Position, Rotation: c.Rotation}
}

// ViewMatrix returns RotateX(-pitch) * RotateY(-yaw) * Translate(-Position),
// the inverse of the camera's world transform.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	p := c.Position
	return mgl64.HomogRotate3DX(-c.Rotation.X).
		Mul4(mgl64.HomogRotate3DY(-c.Rotation.Y)).
		Mul4(mgl64.Translate3D(-p.X(), -p.Y(), -p.Z()))
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect(), c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl64.Vec3 {
	sy, cy := math.Sincos(c.Rotation.Y)
	sx, cx := math.Sincos(c.Rotation.X)
	return mgl64.Vec3{-sy * cx, sx, -cy * cx}
}

// ScreenToNDC converts screen pixels to normalized device coordinates in
// [-1, 1] with +Y up.
func (c *Camera) ScreenToNDC(sx, sy float64) Vec2 {
	vp := c.Viewport
	if vp.Empty() {
		return Vec2{}
	}
	return Vec2{
		X: (sx-vp.X)/vp.Width*2 - 1,
		Y: -((sy-vp.Y)/vp.Height*2 - 1),
	}
}

// RayFromNDC converts normalized device coordinates to a world-space ray
// starting on the near plane.
func (c *Camera) RayFromNDC(ndc Vec2) Ray {
	inv := c.ViewProjection().Inv()
	near := mgl64.TransformCoordinate(mgl64.Vec3{ndc.X, ndc.Y, -1}, inv)
	far := mgl64.TransformCoordinate(mgl64.Vec3{ndc.X, ndc.Y, 1}, inv)
	dir := far.Sub(near)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return Ray{Origin: near, Direction: dir}
}

// WorldToScreen projects a world point to screen pixels. ok is false when
// the point lies behind the near plane.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (sx, sy float64, ok bool) {
	return c.project(c.ViewProjection(), p)
}

// project maps p through a precomputed view-projection matrix.
func (c *Camera) project(vp mgl64.Mat4, p mgl64.Vec3) (sx, sy float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() < c.Near {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	v := c.Viewport
	sx = v.X + (ndc.X()*0.5+0.5)*v.Width
	sy = v.Y + (1-(ndc.Y()*0.5+0.5))*v.Height
	return sx, sy, true
}

// depth returns the view-space distance of p along the view direction.
func (c *Camera) depth(view mgl64.Mat4, p mgl64.Vec3) float64 {
	return -mgl64.TransformCoordinate(p, view).Z()
}

// LookAtYaw returns the yaw that turns a camera at from toward to, ignoring
// height.
func LookAtYaw(from, to mgl64.Vec3) float64 {
	return math.Atan2(-(to.X() - from.X()), -(to.Z() - from.Z()))
}
