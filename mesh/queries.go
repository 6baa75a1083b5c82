package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// VertexPoint returns the geometric location of a vertex.
func (m *Mesh) VertexPoint(v VertexHandle) (r3.Vec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(v) < 0 || int(v) >= len(m.vertices) {
		return r3.Vec{}, fmt.Errorf("%w: %d", ErrVertexHandle, v)
	}
	return m.vertices[v].Point, nil
}

// Edge returns the endpoints of an edge.
func (m *Mesh) Edge(e EdgeHandle) (Edge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(e) < 0 || int(e) >= len(m.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeHandle, e)
	}
	return m.edges[e], nil
}

// EdgeLength returns the Euclidean length of an edge.
func (m *Mesh) EdgeLength(e EdgeHandle) (float64, error) {
	edge, err := m.Edge(e)
	if err != nil {
		return 0, err
	}
	from, err := m.VertexPoint(edge.From)
	if err != nil {
		return 0, err
	}
	to, err := m.VertexPoint(edge.To)
	if err != nil {
		return 0, err
	}
	return r3.Norm(r3.Sub(to, from)), nil
}

// Face returns the face record (vertices, edges, incident cells).
func (m *Mesh) Face(f FaceHandle) (Face, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(f) < 0 || int(f) >= len(m.faces) {
		return Face{}, fmt.Errorf("%w: %d", ErrFaceHandle, f)
	}
	return m.faces[f], nil
}

// FaceCentroid returns the arithmetic mean of a face's three vertices.
func (m *Mesh) FaceCentroid(f FaceHandle) (r3.Vec, error) {
	face, err := m.Face(f)
	if err != nil {
		return r3.Vec{}, err
	}
	var sum r3.Vec
	for _, v := range face.Vertices {
		p, err := m.VertexPoint(v)
		if err != nil {
			return r3.Vec{}, err
		}
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1.0/3.0, sum), nil
}

// Cell returns the cell record (vertices, faces, edges).
func (m *Mesh) Cell(c CellHandle) (Cell, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(c) < 0 || int(c) >= len(m.cells) {
		return Cell{}, fmt.Errorf("%w: %d", ErrCellHandle, c)
	}
	return m.cells[c], nil
}

// CellCentroid returns the arithmetic mean of a cell's four vertices.
func (m *Mesh) CellCentroid(c CellHandle) (r3.Vec, error) {
	cell, err := m.Cell(c)
	if err != nil {
		return r3.Vec{}, err
	}
	var sum r3.Vec
	for _, v := range cell.Vertices {
		p, err := m.VertexPoint(v)
		if err != nil {
			return r3.Vec{}, err
		}
		sum = r3.Add(sum, p)
	}
	return r3.Scale(0.25, sum), nil
}

// HalfFaceCell returns the cell incident to one side of a face, or
// InvalidCell if that side is a mesh boundary.
func (m *Mesh) HalfFaceCell(hf HalfFaceHandle) (CellHandle, error) {
	face, err := m.Face(hf.Face)
	if err != nil {
		return InvalidCell, err
	}
	if hf.Side != 0 && hf.Side != 1 {
		return InvalidCell, fmt.Errorf("mesh: half-face side must be 0 or 1, got %d", hf.Side)
	}
	return face.Cells[hf.Side], nil
}

// HalfEdgeEndpoints returns (from, to) for one directed side of an edge.
func (m *Mesh) HalfEdgeEndpoints(he HalfEdgeHandle) (VertexHandle, VertexHandle, error) {
	edge, err := m.Edge(he.Edge)
	if err != nil {
		return InvalidVertex, InvalidVertex, err
	}
	if he.Side == 0 {
		return edge.From, edge.To, nil
	}
	if he.Side == 1 {
		return edge.To, edge.From, nil
	}
	return InvalidVertex, InvalidVertex, fmt.Errorf("mesh: half-edge side must be 0 or 1, got %d", he.Side)
}

// CellsAroundVertex returns the cell star of a vertex: every cell
// incident to it, in construction order.
func (m *Mesh) CellsAroundVertex(v VertexHandle) ([]CellHandle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(v) < 0 || int(v) >= len(m.vertexCells) {
		return nil, fmt.Errorf("%w: %d", ErrVertexHandle, v)
	}
	out := make([]CellHandle, len(m.vertexCells[v]))
	copy(out, m.vertexCells[v])
	return out, nil
}

// CellsAroundEdge returns every cell incident to an edge. Per spec §4.1,
// either half-edge's incident-cell iteration yields the same set; there is
// only one such set stored per edge.
func (m *Mesh) CellsAroundEdge(e EdgeHandle) ([]CellHandle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(e) < 0 || int(e) >= len(m.edgeCells) {
		return nil, fmt.Errorf("%w: %d", ErrEdgeHandle, e)
	}
	out := make([]CellHandle, len(m.edgeCells[e]))
	copy(out, m.edgeCells[e])
	return out, nil
}

// CellsAroundFace returns the ≤2 cells incident to a face's two half-face
// sides, omitting InvalidCell (boundary) entries.
func (m *Mesh) CellsAroundFace(f FaceHandle) ([]CellHandle, error) {
	face, err := m.Face(f)
	if err != nil {
		return nil, err
	}
	var out []CellHandle
	for _, c := range face.Cells {
		if c != InvalidCell {
			out = append(out, c)
		}
	}
	return out, nil
}
