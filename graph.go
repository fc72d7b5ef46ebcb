// graph.go
package csgr

import (
	"github.com/pkg/errors"
	vkngmath "github.com/vkngwrapper/math"
)

// ErrGraphFull is returned by the add-operations once the graph has reached
// the node capacity it was constructed with. Capacity never grows.
var ErrGraphFull = errors.New("csg graph is at capacity")

// Node identifies a node in a Graph. Identities are assigned in increasing
// order starting at 0, with no gaps and no reuse, for the life of one graph.
type Node uint32

// NodeKind enumerates the CSG node variants.
type NodeKind int

const (
	KindSphere NodeKind = iota
	KindInfinitePlanarPartition
	KindUnionOf
	KindIntersectionOf
	KindDifferenceOf
)

func (k NodeKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindInfinitePlanarPartition:
		return "infinite-planar-partition"
	case KindUnionOf:
		return "union-of"
	case KindIntersectionOf:
		return "intersection-of"
	case KindDifferenceOf:
		return "difference-of"
	default:
		return "unknown"
	}
}

// NodeArgument references an operand of a binary operator together with the
// rigid transform to apply when that operand is evaluated. The transform is
// recorded but not yet consumed by any evaluation in this package.
type NodeArgument struct {
	Orientation vkngmath.Quaternion[float32]
	Offset      vkngmath.Vec3[float32]
	Node        Node
}

// Operand builds a NodeArgument with an identity transform.
func Operand(node Node) NodeArgument {
	var orientation vkngmath.Quaternion[float32]
	orientation.SetIdentity()
	return NodeArgument{Orientation: orientation, Node: node}
}

// nodePayload is the variant payload for one node. The tables are parallel
// arrays indexed by Node, so the payload is a flat struct rather than an
// interface: nodes stay pointer-free and the whole arena is allocated once.
type nodePayload struct {
	radius      float32
	normal      vkngmath.Vec3[float32]
	left, right NodeArgument
}

// Graph is an append-only forest of CSG nodes in fixed-capacity storage.
// Nodes are never deleted or mutated after creation, except for the non-root
// bit that is set when a node becomes an operand of a binary operator. Nodes
// can only reference already-created nodes, so the graph is acyclic by
// construction.
type Graph struct {
	kinds    []NodeKind
	payloads []nodePayload
	nonRoot  []uint64
	count    int
}

// NewGraph allocates a graph with storage for at most capacity nodes. The
// capacity is immutable afterwards. A capacity that cannot be satisfied
// yields no graph.
func NewGraph(capacity int) (*Graph, error) {
	if capacity <= 0 {
		return nil, errors.Errorf("csg graph capacity must be positive, got %d", capacity)
	}
	return &Graph{
		kinds:    make([]NodeKind, 0, capacity),
		payloads: make([]nodePayload, 0, capacity),
		nonRoot:  make([]uint64, (capacity+63)/64),
	}, nil
}

// Len returns the number of nodes added so far.
func (g *Graph) Len() int { return g.count }

// Cap returns the immutable node capacity.
func (g *Graph) Cap() int { return cap(g.kinds) }

func (g *Graph) allocNode(kind NodeKind, payload nodePayload) (Node, error) {
	if g.count == cap(g.kinds) {
		return 0, ErrGraphFull
	}
	node := Node(g.count)
	g.kinds = append(g.kinds, kind)
	g.payloads = append(g.payloads, payload)
	g.count++
	return node, nil
}

func (g *Graph) setNonRoot(node Node) {
	g.nonRoot[node/64] |= uint64(1) << (node % 64)
}

func (g *Graph) addBinary(kind NodeKind, left, right NodeArgument) (Node, error) {
	g.checkNode(left.Node)
	g.checkNode(right.Node)
	node, err := g.allocNode(kind, nodePayload{left: left, right: right})
	if err != nil {
		return 0, err
	}
	g.setNonRoot(left.Node)
	g.setNonRoot(right.Node)
	return node, nil
}

// checkNode asserts that node was previously created by this graph. A bad
// operand is a caller bug, not a recoverable condition.
func (g *Graph) checkNode(node Node) {
	if int(node) >= g.count {
		panic(errors.Errorf("csg node %d out of range (graph has %d nodes)", node, g.count))
	}
}

// AddSphere adds a sphere leaf of the given radius, centered at the origin.
func (g *Graph) AddSphere(radius float32) (Node, error) {
	return g.allocNode(KindSphere, nodePayload{radius: radius})
}

// AddInfinitePlanarPartition adds a half-space leaf bounded by the plane
// through the origin with the given outward-facing normal.
func (g *Graph) AddInfinitePlanarPartition(outwardNormal vkngmath.Vec3[float32]) (Node, error) {
	return g.allocNode(KindInfinitePlanarPartition, nodePayload{normal: outwardNormal})
}

// AddUnionOf adds a node representing the union of two operands. Both
// operands stop being roots of the forest.
func (g *Graph) AddUnionOf(left, right NodeArgument) (Node, error) {
	return g.addBinary(KindUnionOf, left, right)
}

// AddIntersectionOf adds a node representing the intersection of two
// operands. Both operands stop being roots of the forest.
func (g *Graph) AddIntersectionOf(left, right NodeArgument) (Node, error) {
	return g.addBinary(KindIntersectionOf, left, right)
}

// AddDifferenceOf adds a node representing left minus right. Both operands
// stop being roots of the forest.
func (g *Graph) AddDifferenceOf(left, right NodeArgument) (Node, error) {
	return g.addBinary(KindDifferenceOf, left, right)
}

// IsRoot reports whether node has never been used as an operand. The forest
// may hold any number of disjoint roots at once.
func (g *Graph) IsRoot(node Node) bool {
	g.checkNode(node)
	return g.nonRoot[node/64]&(uint64(1)<<(node%64)) == 0
}

// Kind returns the variant of node.
func (g *Graph) Kind(node Node) NodeKind {
	g.checkNode(node)
	return g.kinds[node]
}

// SphereRadius returns the radius payload of a sphere node.
func (g *Graph) SphereRadius(node Node) float32 {
	g.checkNode(node)
	if g.kinds[node] != KindSphere {
		panic(errors.Errorf("csg node %d is %s, not a sphere", node, g.kinds[node]))
	}
	return g.payloads[node].radius
}

// PartitionNormal returns the outward normal of an infinite planar partition.
func (g *Graph) PartitionNormal(node Node) vkngmath.Vec3[float32] {
	g.checkNode(node)
	if g.kinds[node] != KindInfinitePlanarPartition {
		panic(errors.Errorf("csg node %d is %s, not a planar partition", node, g.kinds[node]))
	}
	return g.payloads[node].normal
}

// Operands returns the left and right arguments of a binary operator node.
func (g *Graph) Operands(node Node) (left, right NodeArgument) {
	g.checkNode(node)
	switch g.kinds[node] {
	case KindUnionOf, KindIntersectionOf, KindDifferenceOf:
		return g.payloads[node].left, g.payloads[node].right
	}
	panic(errors.Errorf("csg node %d is %s, not a binary operator", node, g.kinds[node]))
}
