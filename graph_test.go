// graph_test.go
package csgr

import (
	"testing"

	vkngmath "github.com/vkngwrapper/math"
)

func TestNewGraphRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -64} {
		if _, err := NewGraph(capacity); err == nil {
			t.Errorf("NewGraph(%d) succeeded, want error", capacity)
		}
	}
}

func TestNodeIdsAreSequential(t *testing.T) {
	g, err := NewGraph(8)
	if err != nil {
		t.Fatal(err)
	}

	for want := 0; want < 4; want++ {
		node, err := g.AddSphere(float32(want) + 1)
		if err != nil {
			t.Fatal(err)
		}
		if int(node) != want {
			t.Errorf("node %d got id %d", want, node)
		}
	}
	if g.Len() != 4 {
		t.Errorf("Len() = %d, want 4", g.Len())
	}
	if g.Cap() != 8 {
		t.Errorf("Cap() = %d, want 8", g.Cap())
	}
}

func TestTwoSpheresUnionRoots(t *testing.T) {
	g, err := NewGraph(8)
	if err != nil {
		t.Fatal(err)
	}

	left, err := g.AddSphere(1.0)
	if err != nil {
		t.Fatal(err)
	}
	right, err := g.AddSphere(1.0)
	if err != nil {
		t.Fatal(err)
	}

	if !g.IsRoot(left) || !g.IsRoot(right) {
		t.Fatal("fresh leaves must be roots")
	}

	blob, err := g.AddUnionOf(Operand(left), Operand(right))
	if err != nil {
		t.Fatal(err)
	}

	if g.IsRoot(left) {
		t.Error("left operand is still a root after union")
	}
	if g.IsRoot(right) {
		t.Error("right operand is still a root after union")
	}
	if !g.IsRoot(blob) {
		t.Error("union node must be a root")
	}
}

func TestRootBitSurvivesInterleavedAdds(t *testing.T) {
	g, err := NewGraph(16)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := g.AddSphere(1)
	b, _ := g.AddSphere(2)
	ab, err := g.AddIntersectionOf(Operand(a), Operand(b))
	if err != nil {
		t.Fatal(err)
	}

	// Unrelated additions must not disturb existing root bits.
	c, _ := g.AddInfinitePlanarPartition(vkngmath.Vec3[float32]{Y: 1})
	d, _ := g.AddSphere(3)

	if g.IsRoot(a) || g.IsRoot(b) {
		t.Error("consumed operands regained root status")
	}
	if !g.IsRoot(ab) || !g.IsRoot(c) || !g.IsRoot(d) {
		t.Error("untouched nodes lost root status")
	}

	abd, err := g.AddDifferenceOf(Operand(ab), Operand(d))
	if err != nil {
		t.Fatal(err)
	}
	if g.IsRoot(ab) || g.IsRoot(d) {
		t.Error("operands of the difference are still roots")
	}
	if !g.IsRoot(abd) || !g.IsRoot(c) {
		t.Error("remaining roots were lost")
	}
}

func TestOperandUsedTwice(t *testing.T) {
	g, err := NewGraph(8)
	if err != nil {
		t.Fatal(err)
	}

	shared, _ := g.AddSphere(1)
	other, _ := g.AddSphere(2)

	if _, err := g.AddUnionOf(Operand(shared), Operand(other)); err != nil {
		t.Fatal(err)
	}
	// Sharing a node between operators is allowed; it stays a non-root.
	if _, err := g.AddDifferenceOf(Operand(other), Operand(shared)); err != nil {
		t.Fatal(err)
	}
	if g.IsRoot(shared) {
		t.Error("shared operand is still a root")
	}
}

func TestGraphFull(t *testing.T) {
	g, err := NewGraph(2)
	if err != nil {
		t.Fatal(err)
	}

	a, err := g.AddSphere(1.5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.AddSphere(2.5)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := g.AddUnionOf(Operand(a), Operand(b)); err != ErrGraphFull {
		t.Fatalf("add past capacity returned %v, want ErrGraphFull", err)
	}

	// The failed add must leave existing nodes untouched.
	if g.Len() != 2 {
		t.Errorf("Len() = %d after failed add, want 2", g.Len())
	}
	if !g.IsRoot(a) || !g.IsRoot(b) {
		t.Error("failed add marked its operands as non-roots")
	}
	if g.SphereRadius(a) != 1.5 || g.SphereRadius(b) != 2.5 {
		t.Error("failed add corrupted sphere payloads")
	}
}

func TestOperandsRoundTrip(t *testing.T) {
	g, err := NewGraph(8)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := g.AddSphere(1)
	b, _ := g.AddSphere(2)

	leftArg := Operand(a)
	leftArg.Offset = vkngmath.Vec3[float32]{X: -0.5}
	rightArg := Operand(b)
	rightArg.Offset = vkngmath.Vec3[float32]{X: 0.5}

	union, err := g.AddUnionOf(leftArg, rightArg)
	if err != nil {
		t.Fatal(err)
	}

	left, right := g.Operands(union)
	if left.Node != a || right.Node != b {
		t.Errorf("operands (%d, %d), want (%d, %d)", left.Node, right.Node, a, b)
	}
	if left.Offset.X != -0.5 || right.Offset.X != 0.5 {
		t.Error("operand offsets were not preserved")
	}
	if g.Kind(union) != KindUnionOf {
		t.Errorf("Kind(union) = %v", g.Kind(union))
	}
}

func TestPayloadAccessors(t *testing.T) {
	g, err := NewGraph(4)
	if err != nil {
		t.Fatal(err)
	}

	sphere, _ := g.AddSphere(3.25)
	if got := g.SphereRadius(sphere); got != 3.25 {
		t.Errorf("SphereRadius = %v, want 3.25", got)
	}

	normal := vkngmath.Vec3[float32]{X: 0, Y: 1, Z: 0}
	plane, _ := g.AddInfinitePlanarPartition(normal)
	if got := g.PartitionNormal(plane); got != normal {
		t.Errorf("PartitionNormal = %v, want %v", got, normal)
	}
	if g.Kind(sphere) != KindSphere || g.Kind(plane) != KindInfinitePlanarPartition {
		t.Error("Kind reported the wrong variants")
	}
}

func TestOutOfRangeNodePanics(t *testing.T) {
	g, err := NewGraph(4)
	if err != nil {
		t.Fatal(err)
	}
	g.AddSphere(1)

	defer func() {
		if recover() == nil {
			t.Error("IsRoot on an out-of-range node did not panic")
		}
	}()
	g.IsRoot(Node(7))
}

func TestNodeKindStrings(t *testing.T) {
	cases := map[NodeKind]string{
		KindSphere:                  "sphere",
		KindInfinitePlanarPartition: "infinite-planar-partition",
		KindUnionOf:                 "union-of",
		KindIntersectionOf:          "intersection-of",
		KindDifferenceOf:            "difference-of",
		NodeKind(99):                "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}
