package vtkio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/result"
	"github.com/wsp3d/wsp3d/solver"
	"github.com/wsp3d/wsp3d/steiner"
	"github.com/wsp3d/wsp3d/vtkio"
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

func TestWriteMesh_HeaderAndCounts(t *testing.T) {
	m := singleTet(t)
	var buf bytes.Buffer
	require.NoError(t, vtkio.WriteMesh(&buf, m))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "# vtk DataFile Version 2.0\n"))
	require.Contains(t, out, "DATASET UNSTRUCTURED_GRID")
	require.Contains(t, out, "POINTS 4 double")
	require.Contains(t, out, "CELLS 1 5")
	require.Contains(t, out, "CELL_TYPES 1")
	require.Contains(t, out, "10\n")
	require.Contains(t, out, "SCALARS weight double 1")
}

func TestWriteSteinerGraph_HeaderAndCounts(t *testing.T) {
	m := singleTet(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, vtkio.WriteSteinerGraph(&buf, g))

	out := buf.String()
	require.Contains(t, out, "steiner graph")
	require.Contains(t, out, "POINTS 8 double")
	require.Contains(t, out, "SCALARS edge_weight double 1")
}

func TestWriteShortestPathTree_UnreachableNodeWritesNegZero(t *testing.T) {
	m := singleTet(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)
	g.AddNode(wspgraph.Node{Point: r3.Vec{X: 99, Y: 99, Z: 99}})

	solved, err := solver.Run(g, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, vtkio.WriteShortestPathTree(&buf, g, 0, solved))
	require.Contains(t, buf.String(), "-0\n")
}

func TestWriteShortestPathCells_IncludesTraversedCell(t *testing.T) {
	m := singleTet(t)
	g, err := steiner.Build(m, steiner.Config{Mode: steiner.ModeBarycentric})
	require.NoError(t, err)

	solved, err := solver.Run(g, 0, solver.WithTarget(1))
	require.NoError(t, err)
	path, err := result.Extract(g, m, 0, 1, solved)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, vtkio.WriteShortestPathCells(&buf, m, path))
	out := buf.String()
	require.Contains(t, out, "CELLS 1 5")
	require.Contains(t, out, "SCALARS cellweight double 1")
}
