package flowerclock

import "strings"

// --- ID counter ---

// nodeIDCounter is a plain counter; the scene is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the fundamental scene graph element. A single flat struct is used for
// all element types; fields that do not apply to a type are ignored when the
// node is serialized or rasterized.
type Node struct {
	// Identity
	ID      uint32
	Name    string
	Type    NodeType
	Classes []string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local), applied as
	// translate(X, Y) rotate(Rotation, OriginX OriginY) translate(OffsetX, OffsetY).
	X, Y             float64
	Rotation         float64 // degrees, clockwise, never wrapped
	OriginX, OriginY float64
	OffsetX, OffsetY float64

	// Computed, refreshed by updateWorldTransform.
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	Alpha   float64
	Visible bool

	// Geometry. Rect: Width, Height, RX, RY. Line: X1..Y2. Circle: CX, CY, R.
	Width, Height  float64
	RX, RY         float64
	X1, Y1, X2, Y2 float64
	CX, CY, R      float64
	StrokeWidth    float64

	// SVG root fields (NodeTypeSVG)
	ViewBox Rect
	Style   string

	// Datum is the value bound to the node by the last data join.
	Datum float64

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Visible = true
	n.transformDirty = true
}

func newNode(name string, typ NodeType) *Node {
	n := &Node{Name: name, Type: typ}
	nodeDefaults(n)
	return n
}

// NewGroup creates a <g> node with no visual representation.
func NewGroup(name string) *Node {
	return newNode(name, NodeTypeGroup)
}

// NewSVG creates an <svg> document node with a square viewBox of the given size.
func NewSVG(name string, size float64) *Node {
	n := newNode(name, NodeTypeSVG)
	n.ViewBox = Rect{Width: size, Height: size}
	return n
}

// NewRect creates a <rect> node of the given size.
func NewRect(name string, width, height float64) *Node {
	n := newNode(name, NodeTypeRect)
	n.Width = width
	n.Height = height
	return n
}

// NewLine creates a <line> node from (x1, y1) to (x2, y2).
func NewLine(name string, x1, y1, x2, y2 float64) *Node {
	n := newNode(name, NodeTypeLine)
	n.X1, n.Y1, n.X2, n.Y2 = x1, y1, x2, y2
	n.StrokeWidth = 1
	return n
}

// NewCircle creates a <circle> node centered at (cx, cy).
func NewCircle(name string, cx, cy, r float64) *Node {
	n := newNode(name, NodeTypeCircle)
	n.CX, n.CY, n.R = cx, cy, r
	return n
}

// --- Classes ---

// AddClass adds class names to the node, skipping ones already present.
func (n *Node) AddClass(names ...string) *Node {
	for _, name := range names {
		if name != "" && !n.HasClass(name) {
			n.Classes = append(n.Classes, name)
		}
	}
	return n
}

// RemoveClass removes a class name. No-op if absent.
func (n *Node) RemoveClass(name string) {
	for i, c := range n.Classes {
		if c == name {
			n.Classes = append(n.Classes[:i], n.Classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the node carries the class name.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// ClassAttr returns the classes joined for a class="" attribute.
func (n *Node) ClassAttr() string {
	return strings.Join(n.Classes, " ")
}

// --- Selection ---

// Matches reports whether the node satisfies a simple selector: ".class",
// "#name" or an element tag such as "svg" or "rect".
func (n *Node) Matches(selector string) bool {
	switch {
	case selector == "":
		return false
	case selector[0] == '.':
		return n.HasClass(selector[1:])
	case selector[0] == '#':
		return n.Name == selector[1:]
	default:
		return n.Type.Tag() == selector
	}
}

// Select returns the first descendant (depth-first, excluding n itself)
// matching selector, or nil.
func (n *Node) Select(selector string) *Node {
	for _, child := range n.children {
		if child.Matches(selector) {
			return child
		}
		if found := child.Select(selector); found != nil {
			return found
		}
	}
	return nil
}

// SelectAll returns every descendant matching selector in document order.
func (n *Node) SelectAll(selector string) []*Node {
	var out []*Node
	n.selectAll(selector, &out)
	return out
}

func (n *Node) selectAll(selector string, out *[]*Node) {
	for _, child := range n.children {
		if child.Matches(selector) {
			*out = append(*out, child)
		}
		child.selectAll(selector, out)
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("flowerclock: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("flowerclock: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("flowerclock: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("flowerclock: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("flowerclock: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("flowerclock: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
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

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// attrField returns a pointer to the field backing attr, or nil.
func (n *Node) attrField(a Attr) *float64 {
	switch a {
	case AttrRotation:
		return &n.Rotation
	case AttrWidth:
		return &n.Width
	case AttrHeight:
		return &n.Height
	case AttrX2:
		return &n.X2
	case AttrY2:
		return &n.Y2
	case AttrCX:
		return &n.CX
	case AttrCY:
		return &n.CY
	case AttrR:
		return &n.R
	case AttrAlpha:
		return &n.Alpha
	}
	return nil
}
