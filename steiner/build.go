package steiner

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/wspgraph"
)

// Build runs SteinerPlacer: it constructs a wspgraph.Graph over m using the
// strategy cfg.Mode selects. cfg is validated first; a malformed cfg
// returns ErrUnknownMode, ErrBadStretch or ErrBadYardstick without
// touching m.
func Build(m *mesh.Mesh, cfg Config) (*wspgraph.Graph, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	scheme := schemeFor(cfg.Mode)

	g := wspgraph.New()
	reg := newRegistry(g, cfg.DedupTolerance)

	for ci := 0; ci < m.NumCells(); ci++ {
		c := mesh.CellHandle(ci)
		weight, err := m.CellWeight(c)
		if err != nil {
			return nil, err
		}
		ids, err := scheme.CellNodes(m, c, reg, cfg)
		if err != nil {
			return nil, err
		}
		if err := connectPairwise(g, ids, weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// connectPairwise adds one edge between every pair of ids, weighted by
// weight * Euclidean distance, skipping zero-length pairs (coincident
// points resolved to the same node, or — defensively — distinct ids
// mapped to the same location).
func connectPairwise(g *wspgraph.Graph, ids []int, weight float64) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				continue
			}
			ni, err := g.Node(ids[i])
			if err != nil {
				return err
			}
			nj, err := g.Node(ids[j])
			if err != nil {
				return err
			}
			dist := r3.Norm(r3.Sub(nj.Point, ni.Point))
			if dist == 0 {
				continue
			}
			if _, err := g.AddEdge(ids[i], ids[j], weight*dist); err != nil {
				return err
			}
		}
	}
	return nil
}
