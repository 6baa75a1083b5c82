package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
)

// singleTet builds the S1 fixture: one tetrahedron at the origin with unit
// cell weight.
func singleTet(t *testing.T, weight float64) *mesh.Mesh {
	t.Helper()
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	cells := [][4]mesh.VertexHandle{{0, 1, 2, 3}}
	m, err := mesh.Build(points, cells, []float64{weight})
	require.NoError(t, err)
	require.NoError(t, mesh.DeriveWeights(m))
	return m
}

func TestBuild_SingleTetTopology(t *testing.T) {
	m := singleTet(t, 1.0)

	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 6, m.NumEdges())
	require.Equal(t, 4, m.NumFaces())
	require.Equal(t, 1, m.NumCells())

	cell, err := m.Cell(0)
	require.NoError(t, err)
	require.Equal(t, [4]mesh.VertexHandle{0, 1, 2, 3}, cell.Vertices)

	// Every face of the single tet is a boundary: exactly one incident cell.
	for fh := 0; fh < m.NumFaces(); fh++ {
		cells, err := m.CellsAroundFace(mesh.FaceHandle(fh))
		require.NoError(t, err)
		require.Len(t, cells, 1)
	}
}

func TestBuild_RejectsDegenerateCell(t *testing.T) {
	points := []r3.Vec{{}, {X: 1}, {Y: 1}}
	_, err := mesh.Build(points, [][4]mesh.VertexHandle{{0, 1, 1, 2}}, nil)
	require.ErrorIs(t, err, mesh.ErrDegenerateCell)
}

func TestBuild_RejectsOutOfRangeVertex(t *testing.T) {
	points := []r3.Vec{{}, {X: 1}, {Y: 1}}
	_, err := mesh.Build(points, [][4]mesh.VertexHandle{{0, 1, 2, 9}}, nil)
	require.ErrorIs(t, err, mesh.ErrVertexHandle)
}

func TestEdgeLength_UnitTet(t *testing.T) {
	m := singleTet(t, 1.0)
	// Edge 0 canonicalizes (0,1): unit length along X.
	l, err := m.EdgeLength(0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, l, 1e-12)
}

// TestDeriveWeights_TwoCellSlab covers S2: two tets sharing one face with
// asymmetric weights, and the two weight-propagation invariants from
// spec §8.
func TestDeriveWeights_TwoCellSlab(t *testing.T) {
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0}, // 0 shared
		{X: 0, Y: 1, Z: 0}, // 1 shared
		{X: 0, Y: 0, Z: 1}, // 2 shared
		{X: -1, Y: 0, Z: 0}, // 3 left-only
		{X: 1, Y: 0, Z: 0},  // 4 right-only
	}
	cells := [][4]mesh.VertexHandle{
		{0, 1, 2, 3}, // left, weight 1
		{0, 1, 2, 4}, // right, weight 10
	}
	m, err := mesh.Build(points, cells, []float64{1, 10})
	require.NoError(t, err)
	require.NoError(t, mesh.DeriveWeights(m))

	// The shared face (0,1,2) must see both cells and weight = min(1,10) = 1.
	var sharedFace mesh.FaceHandle = -1
	for fh := 0; fh < m.NumFaces(); fh++ {
		f, err := m.Face(mesh.FaceHandle(fh))
		require.NoError(t, err)
		if f.Cells[0] != mesh.InvalidCell && f.Cells[1] != mesh.InvalidCell {
			sharedFace = mesh.FaceHandle(fh)
		}
	}
	require.NotEqual(t, mesh.FaceHandle(-1), sharedFace)
	fw, err := m.FaceWeight(sharedFace)
	require.NoError(t, err)
	require.Equal(t, 1.0, fw)

	// Invariant 1 & 2: for every face/edge, weight ≤ min incident cell weight,
	// and edge_weight ≤ face_weight for every (e,f) incidence.
	for fh := 0; fh < m.NumFaces(); fh++ {
		f, err := m.Face(mesh.FaceHandle(fh))
		require.NoError(t, err)
		minCell := math.Inf(1)
		for _, c := range f.Cells {
			if c != mesh.InvalidCell {
				cw, err := m.CellWeight(c)
				require.NoError(t, err)
				minCell = math.Min(minCell, cw)
			}
		}
		fw, err := m.FaceWeight(mesh.FaceHandle(fh))
		require.NoError(t, err)
		require.LessOrEqual(t, fw, minCell)

		for _, eh := range f.Edges {
			ew, err := m.EdgeWeight(eh)
			require.NoError(t, err)
			require.LessOrEqual(t, ew, fw)
		}
	}
}

func TestWeights_NotDerivedYet(t *testing.T) {
	points := []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}
	m, err := mesh.Build(points, [][4]mesh.VertexHandle{{0, 1, 2, 3}}, nil)
	require.NoError(t, err)

	_, err = m.FaceWeight(0)
	require.ErrorIs(t, err, mesh.ErrWeightsNotDerived)
	_, err = m.EdgeWeight(0)
	require.ErrorIs(t, err, mesh.ErrWeightsNotDerived)
}

func TestDefaultCellWeightIsOne(t *testing.T) {
	points := []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}
	m, err := mesh.Build(points, [][4]mesh.VertexHandle{{0, 1, 2, 3}}, nil)
	require.NoError(t, err)
	w, err := m.CellWeight(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, w)
}
