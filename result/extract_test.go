package result_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/result"
	"github.com/wsp3d/wsp3d/solver"
	"github.com/wsp3d/wsp3d/steiner"
	"github.com/wsp3d/wsp3d/wspgraph"
)

func singleTet(t *testing.T) *mesh.Mesh {
	t.Helper()
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	m, err := mesh.Build(points, [][4]mesh.VertexHandle{{0, 1, 2, 3}}, []float64{1.0})
	require.NoError(t, err)
	require.NoError(t, mesh.DeriveWeights(m))
	return m
}

func TestExtract_UnitWeightSingleCellRatioIsOne(t *testing.T) {
	m := singleTet(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)

	// The two vertex nodes of the unit-weight tet are nodes 0 and 1 (the
	// two mesh vertices registered first, in Build order).
	solved, err := solver.Run(g, 0)
	require.NoError(t, err)

	path, err := result.Extract(g, m, 0, 1, solved)
	require.NoError(t, err)
	require.InDelta(t, 1.0, path.Ratio, 1e-9)
	require.Contains(t, path.Cells, 0)
	require.GreaterOrEqual(t, path.Hops, 1)
}

func TestExtract_UnreachableReturnsSentinel(t *testing.T) {
	m := singleTet(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)

	// Add a node with no edges so it is guaranteed unreachable.
	lonelyID := g.AddNode(wspgraph.Node{Point: r3.Vec{X: 99, Y: 99, Z: 99}})

	solved, err := solver.Run(g, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(solved.Dist[lonelyID], 1))

	_, err = result.Extract(g, m, 0, lonelyID, solved)
	require.ErrorIs(t, err, result.ErrUnreachable)
}

func TestExtract_RejectsSelfQuery(t *testing.T) {
	m := singleTet(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)
	solved, err := solver.Run(g, 0)
	require.NoError(t, err)

	_, err = result.Extract(g, m, 0, 0, solved)
	require.ErrorIs(t, err, result.ErrInvalidQuery)
}

func TestExtract_StretchViolationStillReturnsPath(t *testing.T) {
	m := singleTet(t)

	// A hand-built graph with an edge far cheaper than the straight-line
	// distance between its endpoints: geometrically impossible for a real
	// Steiner construction, but exercises Extract's error path directly.
	g := wspgraph.New()
	s := g.AddNode(wspgraph.Node{Point: r3.Vec{X: 0, Y: 0, Z: 0}})
	tgt := g.AddNode(wspgraph.Node{Point: r3.Vec{X: 10, Y: 0, Z: 0}})
	_, err := g.AddEdge(s, tgt, 0.1)
	require.NoError(t, err)

	solved, err := solver.Run(g, s)
	require.NoError(t, err)

	path, err := result.Extract(g, m, s, tgt, solved)
	require.ErrorIs(t, err, result.ErrStretchViolation)
	require.NotNil(t, path)
	require.Less(t, path.Ratio, 1.0)
	require.Equal(t, s, path.Source)
	require.Equal(t, tgt, path.Target)
}
