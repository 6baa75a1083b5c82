package mesh

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// tetEdgeCombos enumerates the 6 unordered vertex-index pairs of a
// tetrahedron's local vertices 0..3.
var tetEdgeCombos = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// tetFaceCombos enumerates the 4 unordered vertex-index triples of a
// tetrahedron's local vertices 0..3.
var tetFaceCombos = [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}

// Mesh is the arena-indexed store of vertices, edges, faces and cells for
// one tetrahedral subdivision. It carries separate RWMutex protection in
// the style of core.Graph even though a Mesh is built once and then treated
// as read-only: an outer harness (package harness) may run several queries
// concurrently against the same Mesh, and this guards against a future
// caller that mutates it from one of those goroutines.
type Mesh struct {
	mu sync.RWMutex

	vertices []Vertex
	edges    []Edge
	faces    []Face
	cells    []Cell

	cellWeight []float64
	faceWeight []float64 // nil until DeriveWeights runs
	edgeWeight []float64 // nil until DeriveWeights runs

	vertexCells [][]CellHandle // cell star per vertex
	edgeCells   [][]CellHandle // cells incident to each edge
}

type edgeKey [2]VertexHandle
type faceKey [3]VertexHandle

func canonicalEdge(a, b VertexHandle) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func canonicalFace(a, b, c VertexHandle) faceKey {
	v := []VertexHandle{a, b, c}
	sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	return faceKey{v[0], v[1], v[2]}
}

// Build constructs a Mesh from a vertex point list and, for each cell, the
// four vertex handles spanning it. cellWeight may be nil, in which case
// every cell defaults to weight 1.0 (spec §3's "constant 1.0 fallback");
// otherwise it must have one entry per cell.
//
// Edges and faces are derived by canonicalizing the combinatorial edges and
// faces of every cell and deduplicating them into shared arena slots, the
// same approach a tetgen-format loader (package meshio) uses implicitly:
// cells are defined purely by their four vertex indices, and shared
// lower-dimensional features fall out of that.
func Build(points []r3.Vec, cellVerts [][4]VertexHandle, cellWeight []float64) (*Mesh, error) {
	if len(cellVerts) == 0 {
		return nil, ErrEmptyMesh
	}
	if cellWeight != nil && len(cellWeight) != len(cellVerts) {
		return nil, fmt.Errorf("mesh: cellWeight has %d entries, want %d", len(cellWeight), len(cellVerts))
	}

	m := &Mesh{
		vertices:    make([]Vertex, len(points)),
		cells:       make([]Cell, len(cellVerts)),
		cellWeight:  make([]float64, len(cellVerts)),
		vertexCells: make([][]CellHandle, len(points)),
	}
	for i, p := range points {
		m.vertices[i] = Vertex{Point: p}
	}

	edgeIndex := make(map[edgeKey]EdgeHandle)
	faceIndex := make(map[faceKey]FaceHandle)

	for ci, cv := range cellVerts {
		seen := map[VertexHandle]bool{}
		for _, v := range cv {
			if int(v) < 0 || int(v) >= len(points) {
				return nil, fmt.Errorf("%w: cell %d references vertex %d", ErrVertexHandle, ci, v)
			}
			if seen[v] {
				return nil, fmt.Errorf("%w: cell %d", ErrDegenerateCell, ci)
			}
			seen[v] = true
		}

		cell := Cell{Vertices: cv}
		ch := CellHandle(ci)

		for ei, combo := range tetEdgeCombos {
			a, b := cv[combo[0]], cv[combo[1]]
			key := canonicalEdge(a, b)
			eh, ok := edgeIndex[key]
			if !ok {
				eh = EdgeHandle(len(m.edges))
				m.edges = append(m.edges, Edge{From: key[0], To: key[1]})
				m.edgeCells = append(m.edgeCells, nil)
				edgeIndex[key] = eh
			}
			cell.Edges[ei] = eh
			m.edgeCells[eh] = appendCellOnce(m.edgeCells[eh], ch)
		}

		for fi, combo := range tetFaceCombos {
			a, b, c := cv[combo[0]], cv[combo[1]], cv[combo[2]]
			key := canonicalFace(a, b, c)
			fh, ok := faceIndex[key]
			if !ok {
				fh = FaceHandle(len(m.faces))
				face := Face{Vertices: key, Cells: [2]CellHandle{InvalidCell, InvalidCell}}
				face.Edges = [3]EdgeHandle{
					edgeIndex[canonicalEdge(key[0], key[1])],
					edgeIndex[canonicalEdge(key[0], key[2])],
					edgeIndex[canonicalEdge(key[1], key[2])],
				}
				m.faces = append(m.faces, face)
				faceIndex[key] = fh
			}
			face := &m.faces[fh]
			if face.Cells[0] == InvalidCell {
				face.Cells[0] = ch
			} else if face.Cells[1] == InvalidCell && face.Cells[0] != ch {
				face.Cells[1] = ch
			}
			cell.Faces[fi] = fh
		}

		for _, v := range cv {
			m.vertexCells[v] = appendCellOnce(m.vertexCells[v], ch)
		}

		m.cells[ci] = cell
		if cellWeight != nil {
			m.cellWeight[ci] = cellWeight[ci]
		} else {
			m.cellWeight[ci] = 1.0
		}
	}

	return m, nil
}

func appendCellOnce(cells []CellHandle, ch CellHandle) []CellHandle {
	for _, existing := range cells {
		if existing == ch {
			return cells
		}
	}
	return append(cells, ch)
}

// NumVertices, NumEdges, NumFaces, NumCells report arena sizes.
func (m *Mesh) NumVertices() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vertices)
}

func (m *Mesh) NumEdges() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.edges)
}

func (m *Mesh) NumFaces() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.faces)
}

func (m *Mesh) NumCells() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
