package steiner

import (
	"github.com/wsp3d/wsp3d/mesh"
)

// surfaceOnlyScheme is barycentricScheme restricted to boundary faces — the
// original's create_surface_steiner_points. Interior faces contribute no
// Steiner node, trading interior-query accuracy for a smaller graph.
type surfaceOnlyScheme struct{}

func (surfaceOnlyScheme) CellNodes(m *mesh.Mesh, c mesh.CellHandle, reg *registry, cfg Config) ([]int, error) {
	ids, err := vertexNodes(m, c, reg)
	if err != nil {
		return nil, err
	}
	cell, err := m.Cell(c)
	if err != nil {
		return nil, err
	}
	for _, f := range cell.Faces {
		incident, err := m.CellsAroundFace(f)
		if err != nil {
			return nil, err
		}
		if len(incident) != 1 {
			continue // interior face: skip
		}
		id, err := faceCentroidNode(m, f, reg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
