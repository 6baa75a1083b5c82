package steiner_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/steiner"
)

func singleTet(t *testing.T) *mesh.Mesh {
	t.Helper()
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	m, err := mesh.Build(points, [][4]mesh.VertexHandle{{0, 1, 2, 3}}, []float64{2.0})
	require.NoError(t, err)
	require.NoError(t, mesh.DeriveWeights(m))
	return m
}

func TestBuild_Barycentric_AddsFaceCentroids(t *testing.T) {
	m := singleTet(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)

	// 4 vertices + 4 face centroids = 8 nodes, dedup tolerance keeps them distinct.
	require.Equal(t, 8, g.NumNodes())
	require.Greater(t, g.NumEdges(), 0)
}

func TestBuild_SurfaceOnly_SingleTetEqualsBarycentric(t *testing.T) {
	// Every face of a lone tetrahedron is a boundary face, so surface-only
	// and barycentric must agree exactly here.
	m := singleTet(t)
	bary, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)
	surf, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeSurfaceOnly})
	require.NoError(t, err)

	require.Equal(t, bary.NumNodes(), surf.NumNodes())
}

func TestBuild_SpannerInterval_SubdividesLongEdges(t *testing.T) {
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 0, Y: 10, Z: 0},
		{X: 0, Y: 0, Z: 10},
	}
	m, err := mesh.Build(points, [][4]mesh.VertexHandle{{0, 1, 2, 3}}, nil)
	require.NoError(t, err)
	require.NoError(t, mesh.DeriveWeights(m))

	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeSpannerInterval, Stretch: 0.2, Yardstick: 2.0})
	require.NoError(t, err)

	// 4 vertices, plus interior points on every edge of length 10 (⌈10/2⌉-1=4
	// each) and the longer face-diagonal edges (⌈10√2/2⌉-1=7 each), plus one node per face:
	// comfortably more than the 8 the coarse barycentric scheme would add.
	require.Greater(t, g.NumNodes(), 8)
}

func TestBuild_RejectsBadYardstick(t *testing.T) {
	m := singleTet(t)
	_, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeSpannerInterval, Yardstick: 0})
	require.ErrorIs(t, err, steiner.ErrBadYardstick)
}

func TestBuild_RejectsUnknownMode(t *testing.T) {
	m := singleTet(t)
	_, err := steiner.Build(m, steiner.Config{Mode: steiner.Mode(99)})
	require.ErrorIs(t, err, steiner.ErrUnknownMode)
}

func TestBuild_NoZeroLengthEdges(t *testing.T) {
	m := singleTet(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)
	for i := 0; i < g.NumEdges(); i++ {
		e, err := g.Edge(i)
		require.NoError(t, err)
		require.Greater(t, e.Weight, 0.0)
	}
}
