package lockerroom

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Node is the fundamental scene graph element. A single flat struct is used
// for groups and box primitives to avoid interface dispatch on the hot path.
//
// A node with a zero Size is a group: it has no visual output and is never
// hit by the picker. Box nodes are centred on Position in their parent's
// space and rotated by Yaw about the Y axis.
type Node struct {
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	Position mgl64.Vec3
	Yaw      float64

	// Box extents (full width, height, depth); zero for groups.
	Size mgl64.Vec3

	// Appearance
	Color   colorful.Color
	Opacity float64
	Visible bool
	// Layer orders rendering coarsely; lower layers draw first.
	Layer uint8

	// Pickable marks a box as a candidate for pointer picking.
	Pickable bool
	// Owner is a non-owning back-reference to the interactive object this
	// primitive belongs to. Nil for scenery.
	Owner *InteractiveObject
}

// NewGroup creates a group node with no visual representation.
func NewGroup(name string) *Node {
	return &Node{Name: name, Opacity: 1, Visible: true}
}

// NewBox creates an opaque box primitive of the given size and colour.
func NewBox(name string, size mgl64.Vec3, c colorful.Color) *Node {
	return &Node{
		Name:    name,
		Size:    size,
		Color:   c,
		Opacity: 1,
		Visible: true,
		Layer:   1,
	}
}

// IsBox reports whether the node has box extents.
func (n *Node) IsBox() bool {
	return n.Size.X() > 0 && n.Size.Y() > 0 && n.Size.Z() > 0
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("lockerroom: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("lockerroom: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.detach(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// FindChild returns the first descendant (depth-first) with the given name,
// or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in depth-first order. Returning
// false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// --- Transforms ---

// LocalTransform returns Translate(Position) * RotateY(Yaw).
func (n *Node) LocalTransform() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	if n.Yaw == 0 {
		return t
	}
	return t.Mul4(mgl64.HomogRotate3DY(n.Yaw))
}

// WorldTransform returns the node's transform composed with every ancestor.
func (n *Node) WorldTransform() mgl64.Mat4 {
	m := n.LocalTransform()
	for p := n.Parent; p != nil; p = p.Parent {
		m = p.LocalTransform().Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, n.WorldTransform())
}

// LocalBounds returns the node's box in its own space.
func (n *Node) LocalBounds() AABB {
	h := n.Size.Mul(0.5)
	return AABB{Min: h.Mul(-1), Max: h}
}

// WorldCorners returns the eight corners of the node's box in world space.
func (n *Node) WorldCorners() [8]mgl64.Vec3 {
	m := n.WorldTransform()
	b := n.LocalBounds()
	var out [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		out[i] = mgl64.TransformCoordinate(c, m)
	}
	return out
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// detach drops child from n's child list, keeping the order of the rest.
func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
