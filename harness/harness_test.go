package harness_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/harness"
	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/steiner"
)

// memSink records every batch row in-memory, for assertions without
// touching disk.
type memSink struct {
	rows []harness.BatchRecord
}

func (m *memSink) WriteRow(r harness.BatchRecord) error {
	m.rows = append(m.rows, r)
	return nil
}
func (m *memSink) Close() error { return nil }

func twoCellSlab(t *testing.T) *mesh.Mesh {
	t.Helper()
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: -1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
	}
	cells := [][4]mesh.VertexHandle{{0, 1, 2, 3}, {0, 1, 2, 4}}
	m, err := mesh.Build(points, cells, []float64{1, 2})
	require.NoError(t, err)
	require.NoError(t, mesh.DeriveWeights(m))
	return m
}

func TestSingleQuery_NeverTouchesSink(t *testing.T) {
	m := twoCellSlab(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)

	sink := &memSink{}
	h := harness.New(g, m, sink)

	path, err := h.SingleQuery(0, 1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, path.Ratio, 1.0-1e-9)
	require.Equal(t, 0, path.Source)
	require.Equal(t, 1, path.Target)
	require.Empty(t, sink.rows)
}

func TestRandomBatch_DeterministicWithSeededRNG(t *testing.T) {
	m := twoCellSlab(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)

	sink1, sink2 := &memSink{}, &memSink{}
	h1 := harness.New(g, m, sink1)
	h2 := harness.New(g, m, sink2)

	stats1, err := h1.RandomBatch(20, rand.New(rand.NewSource(42)), 0.1, 0.5)
	require.NoError(t, err)
	stats2, err := h2.RandomBatch(20, rand.New(rand.NewSource(42)), 0.1, 0.5)
	require.NoError(t, err)

	require.Equal(t, stats1.Count, stats2.Count)
	require.Equal(t, stats1.AvgRatio, stats2.AvgRatio)
	require.Equal(t, stats1.Histogram, stats2.Histogram)
	require.Equal(t, sink1.rows, sink2.rows)
}

func TestRandomBatch_WritesExactlyOneBatchRecord(t *testing.T) {
	m := twoCellSlab(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)

	sink := &memSink{}
	h := harness.New(g, m, sink)

	stats, err := h.RandomBatch(5, rand.New(rand.NewSource(3)), 0.25, 0.75)
	require.NoError(t, err)
	require.Len(t, sink.rows, 1)

	rec := sink.rows[0]
	require.Equal(t, 0.25, rec.Stretch)
	require.Equal(t, 0.75, rec.Yardstick)
	require.Equal(t, g.NumNodes(), rec.NumVertices)
	require.Equal(t, g.NumEdges(), rec.NumEdges)
	require.Len(t, rec.Distances, stats.Count)
}

func TestVertexNode_ResolvesToVertexAnchoredNode(t *testing.T) {
	m := twoCellSlab(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)
	h := harness.New(g, m, &memSink{})

	id, err := h.VertexNode(3)
	require.NoError(t, err)
	n, err := g.Node(id)
	require.NoError(t, err)
	require.Equal(t, mesh.VertexHandle(3), n.Anchor.Vertex)
}

func TestVertexNode_RejectsOutOfRange(t *testing.T) {
	m := twoCellSlab(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)
	h := harness.New(g, m, &memSink{})

	_, err = h.VertexNode(99)
	require.Error(t, err)
}

func TestRandomBatch_RejectsNonPositiveK(t *testing.T) {
	m := twoCellSlab(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)
	h := harness.New(g, m, &memSink{})

	_, err = h.RandomBatch(0, rand.New(rand.NewSource(1)), 0, 0)
	require.ErrorIs(t, err, harness.ErrBadBatchSize)
}

func TestRandomBatch_HistogramSumsToCount(t *testing.T) {
	m := twoCellSlab(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)
	h := harness.New(g, m, &memSink{})

	stats, err := h.RandomBatch(30, rand.New(rand.NewSource(7)), 0, 0)
	require.NoError(t, err)

	var total float64
	for _, c := range stats.Histogram {
		total += c
	}
	require.InDelta(t, float64(stats.Count), total, 1e-9)
}
