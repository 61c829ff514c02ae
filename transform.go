package flowerclock

import (
	"math"
	"strconv"
	"strings"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order, matching the SVG transform list the node serializes to:
//
//	translate(X, Y) -> rotate(Rotation, OriginX OriginY) -> translate(OffsetX, OffsetY)
func computeLocalTransform(n *Node) [6]float64 {
	sin, cos := math.Sincos(n.Rotation * math.Pi / 180)

	dx := n.OffsetX - n.OriginX
	dy := n.OffsetY - n.OriginY

	return [6]float64{
		cos, sin,
		-sin, cos,
		cos*dx - sin*dy + n.OriginX + n.X,
		sin*dx + cos*dy + n.OriginY + n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes a node's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// refreshWorldTransforms brings the world transforms of n's whole tree up to
// date, starting from its topmost ancestor.
func refreshWorldTransforms(n *Node) {
	top := n
	for top.Parent != nil {
		top = top.Parent
	}
	updateWorldTransform(top, identityTransform, 1, false)
}

// --- Transform property setters ---

// SetPosition sets the node's translation and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetRotation sets the node's rotation in degrees and marks it dirty.
func (n *Node) SetRotation(deg float64) {
	n.Rotation = deg
	n.transformDirty = true
}

// SetOrigin sets the point the node rotates around and marks it dirty.
func (n *Node) SetOrigin(x, y float64) {
	n.OriginX = x
	n.OriginY = y
	n.transformDirty = true
}

// SetOffset sets the translation applied before rotation and marks it dirty.
func (n *Node) SetOffset(x, y float64) {
	n.OffsetX = x
	n.OffsetY = y
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next traversal. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- SVG form ---

// TransformString returns the node's transform attribute value. Parts that
// are identity are omitted; an untransformed node returns "".
func (n *Node) TransformString() string {
	var parts []string
	if n.X != 0 || n.Y != 0 {
		parts = append(parts, "translate("+formatNum(n.X)+","+formatNum(n.Y)+")")
	}
	if n.Rotation != 0 || n.OriginX != 0 || n.OriginY != 0 {
		parts = append(parts, "rotate("+formatNum(n.Rotation)+","+formatNum(n.OriginX)+" "+formatNum(n.OriginY)+")")
	}
	if n.OffsetX != 0 || n.OffsetY != 0 {
		parts = append(parts, "translate("+formatNum(n.OffsetX)+","+formatNum(n.OffsetY)+")")
	}
	return strings.Join(parts, ",")
}

// formatNum prints v with the fewest digits that round-trip.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
