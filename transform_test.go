package flowerclock

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewGroup("test")
	assertMatrix(t, "identity", computeLocalTransform(n), identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewGroup("test")
	n.X = 10
	n.Y = 20
	assertMatrix(t, "translation", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewGroup("test")
	n.Rotation = 90
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", computeLocalTransform(n), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformRotationAroundOrigin(t *testing.T) {
	n := NewGroup("test")
	n.Rotation = 180
	n.SetOrigin(5, 0)
	// The origin itself stays put; (0,0) swings to (10,0).
	m := computeLocalTransform(n)
	x, y := transformPoint(m, 5, 0)
	assertNear(t, "origin.x", x, 5)
	assertNear(t, "origin.y", y, 0)
	x, y = transformPoint(m, 0, 0)
	assertNear(t, "zero.x", x, 10)
	assertNear(t, "zero.y", y, 0)
}

func TestLocalTransformOffsetAppliedBeforeRotation(t *testing.T) {
	n := NewGroup("test")
	n.Rotation = 90
	n.SetOffset(0, -5)
	// translate(0,-5) then rotate 90°: (0,0) → (0,-5) → (5,0)
	x, y := transformPoint(computeLocalTransform(n), 0, 0)
	assertNear(t, "x", x, 5)
	assertNear(t, "y", y, 0)
}

func TestLocalTransformUnwrappedAngles(t *testing.T) {
	a := NewGroup("a")
	a.Rotation = 1350
	b := NewGroup("b")
	b.Rotation = 270
	assertMatrix(t, "1350 vs 270", computeLocalTransform(a), computeLocalTransform(b))
}

// --- multiplyAffine / invertAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 7, 9}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestInvertAffineRoundTrip(t *testing.T) {
	m := [6]float64{0, 1, -1, 0, 30, 40}
	assertMatrix(t, "m*inv", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingular(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 5, 5}), identityTransform)
}

// --- world transforms ---

func TestWorldTransformPropagation(t *testing.T) {
	root := NewGroup("root")
	parent := NewGroup("parent")
	parent.SetPosition(100, 50)
	child := NewGroup("child")
	child.SetRotation(90)
	child.SetOffset(10, 0)
	root.AddChild(parent)
	parent.AddChild(child)

	updateWorldTransform(root, identityTransform, 1, false)

	// (0,0) → offset (10,0) → rot90 (0,10) → parent (100,60)
	x, y := transformPoint(child.worldTransform, 0, 0)
	assertNear(t, "x", x, 100)
	assertNear(t, "y", y, 60)

	lx, ly := transformPoint(invertAffine(child.worldTransform), 100, 60)
	assertNear(t, "lx", lx, 0)
	assertNear(t, "ly", ly, 0)
}

func TestWorldTransformRecomputesDirtyOnly(t *testing.T) {
	root := NewGroup("root")
	child := NewGroup("child")
	root.AddChild(child)
	updateWorldTransform(root, identityTransform, 1, false)
	if child.transformDirty {
		t.Fatal("child should be clean after update")
	}

	child.X = 5 // direct write, no dirty flag
	updateWorldTransform(root, identityTransform, 1, false)
	if x, _ := transformPoint(child.worldTransform, 0, 0); x != 0 {
		t.Errorf("x = %v, want 0 until MarkDirty", x)
	}
	child.MarkDirty()
	updateWorldTransform(root, identityTransform, 1, false)
	if x, _ := transformPoint(child.worldTransform, 0, 0); x != 5 {
		t.Errorf("x = %v, want 5 after MarkDirty", x)
	}
}

func TestRefreshWorldTransformsFromAnyNode(t *testing.T) {
	root := NewGroup("root")
	root.SetPosition(3, 4)
	mid := NewGroup("mid")
	mid.Alpha = 0.5
	leaf := NewGroup("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	refreshWorldTransforms(leaf)

	x, y := transformPoint(leaf.worldTransform, 0, 0)
	assertNear(t, "x", x, 3)
	assertNear(t, "y", y, 4)
	assertNear(t, "alpha", leaf.worldAlpha, 0.5)
}

// --- TransformString ---

func TestTransformString(t *testing.T) {
	tests := []struct {
		name  string
		setup func(n *Node)
		want  string
	}{
		{"identity", func(n *Node) {}, ""},
		{"translate", func(n *Node) { n.SetPosition(402.5, 410) }, "translate(402.5,410)"},
		{"pin", func(n *Node) { n.SetRotation(18) }, "rotate(18,0 0)"},
		{"petal", func(n *Node) {
			n.SetRotation(1350)
			n.SetOrigin(7.5, 0)
			n.SetOffset(0, -7.5)
		}, "rotate(1350,7.5 0),translate(0,-7.5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewGroup("n")
			tt.setup(n)
			if got := n.TransformString(); got != tt.want {
				t.Errorf("TransformString() = %q, want %q", got, tt.want)
			}
		})
	}
}
