package wspgraph

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
)

// Sentinel errors for graph construction and query operations.
var (
	// ErrNodeIndex indicates a node id that is out of range.
	ErrNodeIndex = errors.New("wspgraph: node index out of range")

	// ErrSelfLoop indicates an AddEdge call with u == v, which the Steiner
	// construction never intentionally produces.
	ErrSelfLoop = errors.New("wspgraph: self-loop edges are not permitted")

	// ErrNegativeWeight indicates an AddEdge call with a negative weight.
	// Dijkstra (package solver) assumes non-negative edge weights.
	ErrNegativeWeight = errors.New("wspgraph: edge weight must be non-negative")
)

// AnchorKind classifies which mesh feature a node was placed on.
type AnchorKind int8

const (
	// AnchorVertex marks a node coincident with an original mesh vertex.
	AnchorVertex AnchorKind = iota
	// AnchorEdge marks a node placed along the interior of a mesh edge.
	AnchorEdge
	// AnchorFace marks a node placed in the interior of a mesh face.
	AnchorFace
)

// Anchor records where in the mesh a Steiner node sits, so that
// package result can later recover which mesh cells a path traverses.
// Only the field matching Kind is meaningful; the others hold the
// mesh's Invalid* sentinel.
type Anchor struct {
	Kind   AnchorKind
	Vertex mesh.VertexHandle
	Edge   mesh.EdgeHandle
	Face   mesh.FaceHandle
}

// Node is one Steiner point: its 3D location and the mesh feature it was
// derived from.
type Node struct {
	Point  r3.Vec
	Anchor Anchor
}

// Edge is one weighted connection between two nodes, identified by index
// into Graph's internal edge slice.
type Edge struct {
	U, V   int
	Weight float64
}
