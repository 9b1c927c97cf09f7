package lockerroom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line in 3D space with a normalized direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform returns the ray mapped through m. The direction is
// re-normalized, so distances are only preserved for rigid transforms.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	o := mgl64.TransformCoordinate(r.Origin, m)
	d := mgl64.TransformNormal(r.Direction, m)
	if l := d.Len(); l > 0 {
		d = d.Mul(1 / l)
	}
	return Ray{Origin: o, Direction: d}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float64, hit bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := r.Origin[axis]
		d := r.Direction[axis]
		if d == 0 {
			if o < box.Min[axis] || o > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - o) / d
		t2 := (box.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false // box is behind the ray
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectNode tests the ray against a box node's oriented bounds. The ray
// is moved into the node's local space, which keeps t in world units because
// node transforms are rigid.
func (r Ray) IntersectNode(n *Node) (float64, bool) {
	if !n.IsBox() {
		return 0, false
	}
	local := r.Transform(n.WorldTransform().Inv())
	return local.IntersectAABB(n.LocalBounds())
}
