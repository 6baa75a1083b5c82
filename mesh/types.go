package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh construction and query operations.
var (
	// ErrDegenerateCell indicates a cell whose four vertex handles are not
	// pairwise distinct.
	ErrDegenerateCell = errors.New("mesh: cell vertices must be four distinct handles")

	// ErrVertexHandle indicates a vertex handle that is out of range.
	ErrVertexHandle = errors.New("mesh: vertex handle out of range")

	// ErrEdgeHandle indicates an edge handle that is out of range.
	ErrEdgeHandle = errors.New("mesh: edge handle out of range")

	// ErrFaceHandle indicates a face handle that is out of range.
	ErrFaceHandle = errors.New("mesh: face handle out of range")

	// ErrCellHandle indicates a cell handle that is out of range.
	ErrCellHandle = errors.New("mesh: cell handle out of range")

	// ErrWeightsNotDerived indicates a query for a face_weight or edge_weight
	// before DeriveWeights has run.
	ErrWeightsNotDerived = errors.New("mesh: face/edge weights not yet derived")

	// ErrEmptyMesh indicates Build was called with no cells.
	ErrEmptyMesh = errors.New("mesh: at least one cell is required")
)

// VertexHandle is a stable index into the vertex arena.
type VertexHandle int32

// EdgeHandle is a stable index into the edge arena.
type EdgeHandle int32

// FaceHandle is a stable index into the face arena.
type FaceHandle int32

// CellHandle is a stable index into the cell (tetrahedron) arena.
type CellHandle int32

// Invalid sentinels: every handle type reserves -1 for "no such feature",
// used e.g. for the missing side of a boundary half-face.
const (
	InvalidVertex VertexHandle = -1
	InvalidEdge   EdgeHandle   = -1
	InvalidFace   FaceHandle   = -1
	InvalidCell   CellHandle   = -1
)

// HalfEdgeHandle is one directed side of an edge. Side 0 is From→To, side 1
// is To→From; exactly two halves exist per edge, matching the spec.
type HalfEdgeHandle struct {
	Edge EdgeHandle
	Side int8
}

// HalfFaceHandle is one side of a face. Side 0/1 index into Face.Cells;
// a half-face's incident cell is InvalidCell when that side is a boundary.
type HalfFaceHandle struct {
	Face FaceHandle
	Side int8
}

// Vertex is a point in R3. It carries no other mesh-level data; handles are
// the unit of identity, not pointers.
type Vertex struct {
	Point r3.Vec
}

// Edge is an undirected connection between two vertices, identified up to
// endpoint order. Length is not cached — callers use Mesh.EdgeLength, which
// is O(1) from the two endpoint points.
type Edge struct {
	From, To VertexHandle
}

// Face is a triangle: three vertices, the three edges connecting them
// (Edges[0] = Vertices[0]–[1], Edges[1] = Vertices[0]–[2], Edges[2] =
// Vertices[1]–[2]), and the ≤2 cells incident to its two half-face sides. Cells[i] == InvalidCell marks a boundary side.
type Face struct {
	Vertices [3]VertexHandle
	Edges    [3]EdgeHandle
	Cells    [2]CellHandle
}

// Cell is a tetrahedron: four vertices and the derived faces/edges that
// connect them. The cell's cost-per-unit-length weight is stored on the
// Mesh, not here; see Mesh.CellWeight.
type Cell struct {
	Vertices [4]VertexHandle
	Faces    [4]FaceHandle
	Edges    [6]EdgeHandle
}
