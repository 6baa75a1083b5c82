package steiner

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/wspgraph"
)

// spannerIntervalScheme is the primary, most accurate placement strategy:
// vertices, plus edges subdivided by Config.Yardstick, plus one
// face-interior node per face offset toward the face's first vertex by a
// ratio derived from Config.Stretch. Together these bound how far any
// straight segment through a cell's interior must detour from the true
// geodesic by roughly 1+Stretch, the spanner property the original calls
// create_steiner_graph_improved_spanner.
type spannerIntervalScheme struct{}

func (spannerIntervalScheme) CellNodes(m *mesh.Mesh, c mesh.CellHandle, reg *registry, cfg Config) ([]int, error) {
	ids, err := vertexNodes(m, c, reg)
	if err != nil {
		return nil, err
	}
	cell, err := m.Cell(c)
	if err != nil {
		return nil, err
	}
	for _, e := range cell.Edges {
		pts, err := edgeIntervalNodes(m, e, reg, cfg.Yardstick)
		if err != nil {
			return nil, err
		}
		ids = append(ids, pts...)
	}
	for _, f := range cell.Faces {
		id, err := faceRingNode(m, f, reg, cfg.Stretch)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// edgeIntervalNodes returns the interior nodes of edge e: ⌈L/yardstick⌉-1
// points uniformly spaced along it, excluding the two endpoint vertices
// (those are already registered by vertexNodes).
func edgeIntervalNodes(m *mesh.Mesh, e mesh.EdgeHandle, reg *registry, yardstick float64) ([]int, error) {
	edge, err := m.Edge(e)
	if err != nil {
		return nil, err
	}
	from, err := m.VertexPoint(edge.From)
	if err != nil {
		return nil, err
	}
	to, err := m.VertexPoint(edge.To)
	if err != nil {
		return nil, err
	}
	length := r3.Norm(r3.Sub(to, from))
	segments := int(math.Ceil(length / yardstick))
	if segments < 1 {
		segments = 1
	}
	var ids []int
	for i := 1; i < segments; i++ {
		t := float64(i) / float64(segments)
		p := r3.Add(from, r3.Scale(t, r3.Sub(to, from)))
		ids = append(ids, reg.nodeFor(p, wspgraph.Anchor{Kind: wspgraph.AnchorEdge, Vertex: mesh.InvalidVertex, Edge: e, Face: mesh.InvalidFace}))
	}
	return ids, nil
}

// faceRingNode places one node in the interior of face f, at barycentric
// weights biased toward the face's first vertex by a function of stretch:
// ratio 1 means the centroid (w = 1/3,1/3,1/3); increasing the stretch
// factor increases the bias, anchoring what the original describes as
// successive "rings" around each vertex. A single ring (this
// implementation's choice for Open Question #2) already bounds the
// detour a straight segment through the face must take, since the bias
// stays strictly inside the triangle for any non-negative stretch below 1.
func faceRingNode(m *mesh.Mesh, f mesh.FaceHandle, reg *registry, stretch float64) (int, error) {
	face, err := m.Face(f)
	if err != nil {
		return 0, err
	}
	v0, err := m.VertexPoint(face.Vertices[0])
	if err != nil {
		return 0, err
	}
	v1, err := m.VertexPoint(face.Vertices[1])
	if err != nil {
		return 0, err
	}
	v2, err := m.VertexPoint(face.Vertices[2])
	if err != nil {
		return 0, err
	}

	ratio := 1 + stretch/4
	const base = 1.0 / 3.0
	delta := (ratio - 1) * base
	if delta > base {
		delta = base // keep weights non-negative for pathological stretch values
	}
	w0, w1, w2 := base+2*delta, base-delta, base-delta

	p := r3.Add(r3.Add(r3.Scale(w0, v0), r3.Scale(w1, v1)), r3.Scale(w2, v2))
	return reg.nodeFor(p, wspgraph.Anchor{Kind: wspgraph.AnchorFace, Vertex: mesh.InvalidVertex, Edge: mesh.InvalidEdge, Face: f}), nil
}
