package steiner

import (
	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/wspgraph"
)

// barycentricScheme places one node at every face's centroid, in addition
// to the mesh's own vertices — the original's create_barycentric_steiner_points.
type barycentricScheme struct{}

func (barycentricScheme) CellNodes(m *mesh.Mesh, c mesh.CellHandle, reg *registry, cfg Config) ([]int, error) {
	ids, err := vertexNodes(m, c, reg)
	if err != nil {
		return nil, err
	}
	cell, err := m.Cell(c)
	if err != nil {
		return nil, err
	}
	for _, f := range cell.Faces {
		id, err := faceCentroidNode(m, f, reg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func faceCentroidNode(m *mesh.Mesh, f mesh.FaceHandle, reg *registry) (int, error) {
	p, err := m.FaceCentroid(f)
	if err != nil {
		return 0, err
	}
	return reg.nodeFor(p, wspgraph.Anchor{Kind: wspgraph.AnchorFace, Vertex: mesh.InvalidVertex, Edge: mesh.InvalidEdge, Face: f}), nil
}
