package cuboid_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wsp3d/wsp3d/cuboid"
	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/meshio"
)

func TestPoints_SingleCubeHasEightCorners(t *testing.T) {
	pts := cuboid.Points(1, 1, 1)
	require.Len(t, pts, 8)
}

func TestCells_SingleCubeHasSixTets(t *testing.T) {
	cells := cuboid.Cells(1, 1, 1)
	require.Len(t, cells, 6)
	for _, c := range cells {
		seen := map[mesh.VertexHandle]bool{}
		for _, v := range c {
			require.False(t, seen[v], "tet %v has repeated vertex %d", c, v)
			seen[v] = true
		}
	}
}

func TestCells_GridScalesLinearly(t *testing.T) {
	cells := cuboid.Cells(2, 3, 1)
	require.Len(t, cells, 2*3*1*6)
}

func TestBuild_ProducesValidMesh(t *testing.T) {
	m, err := cuboid.Build(2, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 27, m.NumVertices())
	require.Equal(t, 2*2*2*6, m.NumCells())
	require.NoError(t, mesh.DeriveWeights(m))
}

func TestBuild_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := cuboid.Build(0, 1, 1)
	require.ErrorIs(t, err, cuboid.ErrBadDimensions)
}

func TestWriteNode_HeaderAndLineCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cuboid.WriteNode(&buf, 1, 1, 1))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "8 3 0 0", lines[0])
	require.Equal(t, "1 0 0 0", lines[1])
	require.True(t, strings.HasPrefix(lines[len(lines)-1], "#"))
}

func TestWriteEle_HeaderAnd1BasedIndices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cuboid.WriteEle(&buf, 1, 1, 1))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "6 4 0", lines[0])
	require.Len(t, lines, 7)
	fields := strings.Fields(lines[1])
	require.Len(t, fields, 5)
	require.Equal(t, "1", fields[0])
}

func TestWriteFiles_CreatesBothFiles(t *testing.T) {
	dir := t.TempDir()
	nodePath := dir + "/cuboid.node"
	elePath := dir + "/cuboid.ele"
	require.NoError(t, cuboid.WriteFiles(nodePath, elePath, 2, 1, 1))

	built, err := cuboid.Build(2, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 12, built.NumVertices())
	require.Equal(t, 2*1*1*6, built.NumCells())

	loaded, err := meshio.ReadTetgen(nodePath, elePath)
	require.NoError(t, err)
	require.Equal(t, built.NumVertices(), loaded.NumVertices())
	require.Equal(t, built.NumCells(), loaded.NumCells())
}
