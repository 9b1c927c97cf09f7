package lockerroom

import "math"

// Hit describes the nearest primitive intersected by a pick ray.
type Hit struct {
	Object    *InteractiveObject
	Primitive *Node
	Distance  float64
}

// Picker resolves pointer positions to interactive objects. It holds no
// state between calls.
type Picker struct {
	registry *Registry
	buf      []*Node
}

// NewPicker creates a picker over the objects of a registry.
func NewPicker(registry *Registry) *Picker {
	return &Picker{registry: registry}
}

// Pick returns the nearest interactive object hit by the ray from the camera
// through ndc, or nil. A nil camera or an empty registry is a miss.
func (p *Picker) Pick(cam *Camera, ndc Vec2) *InteractiveObject {
	hit, ok := p.PickHit(cam, ndc)
	if !ok {
		return nil
	}
	return hit.Object
}

// PickHit is Pick with the primitive and distance of the hit.
func (p *Picker) PickHit(cam *Camera, ndc Vec2) (Hit, bool) {
	if cam == nil || p.registry == nil || len(p.registry.Objects()) == 0 {
		return Hit{}, false
	}
	ray := cam.RayFromNDC(ndc)

	best := Hit{Distance: math.Inf(1)}
	p.buf = p.collect(p.buf[:0])
	for _, n := range p.buf {
		t, ok := ray.IntersectNode(n)
		if ok && t < best.Distance {
			best = Hit{Object: n.Owner, Primitive: n, Distance: t}
		}
	}
	if best.Object == nil {
		return Hit{}, false
	}
	return best, true
}

// collect appends every visible, pickable primitive that has an owner.
func (p *Picker) collect(buf []*Node) []*Node {
	for _, obj := range p.registry.Objects() {
		obj.Root.Walk(func(n *Node) bool {
			if !n.Visible {
				return false
			}
			if n.Pickable && n.Owner != nil && n.IsBox() {
				buf = append(buf, n)
			}
			return true
		})
	}
	return buf
}
