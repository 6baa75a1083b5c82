package steiner

import (
	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/wspgraph"
)

// Scheme is a Steiner-point placement strategy. CellNodes returns the ids
// of every node this strategy anchors to cell c — cell vertices, plus
// whatever edge- or face-interior nodes the strategy adds — registering
// new nodes into reg as needed. Build then connects every pair of ids a
// Scheme returns for a cell with one weighted edge.
type Scheme interface {
	CellNodes(m *mesh.Mesh, c mesh.CellHandle, reg *registry, cfg Config) ([]int, error)
}

func schemeFor(mode Mode) Scheme {
	switch mode {
	case ModeSurfaceOnly:
		return surfaceOnlyScheme{}
	case ModeSpannerInterval:
		return spannerIntervalScheme{}
	default:
		return barycentricScheme{}
	}
}

// vertexNodes registers and returns the 4 vertex-anchored node ids of cell c.
func vertexNodes(m *mesh.Mesh, c mesh.CellHandle, reg *registry) ([]int, error) {
	cell, err := m.Cell(c)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, 4)
	for _, v := range cell.Vertices {
		p, err := m.VertexPoint(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, reg.nodeFor(p, wspgraph.Anchor{Kind: wspgraph.AnchorVertex, Vertex: v, Edge: mesh.InvalidEdge, Face: mesh.InvalidFace}))
	}
	return ids, nil
}
