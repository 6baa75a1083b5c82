package wspgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wsp3d/wsp3d/wspgraph"
)

func TestAddEdge_CollapsesDuplicateToMinimum(t *testing.T) {
	g := wspgraph.New()
	a := g.AddNode(wspgraph.Node{})
	b := g.AddNode(wspgraph.Node{})

	_, err := g.AddEdge(a, b, 5.0)
	require.NoError(t, err)
	_, err = g.AddEdge(b, a, 2.0) // reversed order, cheaper: must win
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, 9.0) // pricier: must not overwrite
	require.NoError(t, err)

	require.Equal(t, 1, g.NumEdges())

	var weights []float64
	err = g.Neighbors(a, func(v int, w float64) {
		weights = append(weights, w)
	})
	require.NoError(t, err)
	require.Equal(t, []float64{2.0}, weights)
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g := wspgraph.New()
	a := g.AddNode(wspgraph.Node{})
	_, err := g.AddEdge(a, a, 1.0)
	require.ErrorIs(t, err, wspgraph.ErrSelfLoop)
}

func TestAddEdge_RejectsNegativeWeight(t *testing.T) {
	g := wspgraph.New()
	a := g.AddNode(wspgraph.Node{})
	b := g.AddNode(wspgraph.Node{})
	_, err := g.AddEdge(a, b, -1.0)
	require.ErrorIs(t, err, wspgraph.ErrNegativeWeight)
}

func TestAddEdge_RejectsOutOfRangeNode(t *testing.T) {
	g := wspgraph.New()
	a := g.AddNode(wspgraph.Node{})
	_, err := g.AddEdge(a, 99, 1.0)
	require.ErrorIs(t, err, wspgraph.ErrNodeIndex)
}

func TestNeighbors_UndirectedBothDirections(t *testing.T) {
	g := wspgraph.New()
	a := g.AddNode(wspgraph.Node{})
	b := g.AddNode(wspgraph.Node{})
	_, err := g.AddEdge(a, b, 3.0)
	require.NoError(t, err)

	var fromA, fromB []int
	require.NoError(t, g.Neighbors(a, func(v int, w float64) { fromA = append(fromA, v) }))
	require.NoError(t, g.Neighbors(b, func(v int, w float64) { fromB = append(fromB, v) }))
	require.Equal(t, []int{b}, fromA)
	require.Equal(t, []int{a}, fromB)
}
