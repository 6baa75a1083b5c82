package result

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/solver"
	"github.com/wsp3d/wsp3d/wspgraph"
)

// Extract reconstructs the path from s to t out of a completed solver.Result,
// and resolves the mesh cells that path traverses.
//
// Returns ErrInvalidQuery if s or t is out of range or s == t, and
// ErrUnreachable if solved.Dist[t] is infinite. If the computed
// approximation ratio falls below 1.0 (a construction bug, not a query
// failure), Extract still returns the fully-built Path alongside
// ErrStretchViolation so the caller can log the anomaly without losing
// the path or treating it as unreachable.
func Extract(g *wspgraph.Graph, m *mesh.Mesh, s, t int, solved *solver.Result) (*Path, error) {
	n := g.NumNodes()
	if s < 0 || s >= n || t < 0 || t >= n || s == t {
		return nil, fmt.Errorf("%w: source=%d target=%d", ErrInvalidQuery, s, t)
	}
	if math.IsInf(solved.Dist[t], 1) {
		return nil, fmt.Errorf("%w: source=%d target=%d", ErrUnreachable, s, t)
	}

	nodes, err := walkPredecessors(solved, s, t)
	if err != nil {
		return nil, err
	}

	sp, err := g.Node(s)
	if err != nil {
		return nil, err
	}
	tp, err := g.Node(t)
	if err != nil {
		return nil, err
	}
	straight := r3.Norm(r3.Sub(tp.Point, sp.Point))

	dist := solved.Dist[t]
	var ratio float64
	if straight == 0 {
		ratio = 1.0
	} else {
		ratio = dist / straight
	}
	cells, err := cellsForPath(g, m, nodes)
	if err != nil {
		return nil, err
	}

	path := &Path{
		Source:   s,
		Target:   t,
		Nodes:    nodes,
		Distance: dist,
		Hops:     len(nodes) - 1,
		Ratio:    ratio,
		Cells:    cells,
	}

	if ratio < 1.0-epsilonTol {
		return path, fmt.Errorf("%w: ratio=%g", ErrStretchViolation, ratio)
	}

	return path, nil
}

// walkPredecessors follows solved.Pred from t back to s, returning the
// path in source-to-target order.
func walkPredecessors(solved *solver.Result, s, t int) ([]int, error) {
	var rev []int
	cur := t
	for {
		rev = append(rev, cur)
		if cur == s {
			break
		}
		prev := solved.Pred[cur]
		if prev == -1 {
			return nil, fmt.Errorf("%w: predecessor chain from target %d never reaches source %d", ErrUnreachable, t, s)
		}
		cur = prev
	}
	nodes := make([]int, len(rev))
	for i, id := range rev {
		nodes[len(rev)-1-i] = id
	}
	return nodes, nil
}

// cellsForPath unions, across every node on the path, the mesh cells that
// node's anchor touches — exactly the original's cells_from_graph_nodes.
func cellsForPath(g *wspgraph.Graph, m *mesh.Mesh, nodes []int) ([]int, error) {
	seen := make(map[mesh.CellHandle]bool)
	var ordered []int

	add := func(cells []mesh.CellHandle) {
		for _, c := range cells {
			if c == mesh.InvalidCell || seen[c] {
				continue
			}
			seen[c] = true
			ordered = append(ordered, int(c))
		}
	}

	for _, id := range nodes {
		node, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		switch node.Anchor.Kind {
		case wspgraph.AnchorVertex:
			cells, err := m.CellsAroundVertex(node.Anchor.Vertex)
			if err != nil {
				return nil, err
			}
			add(cells)
		case wspgraph.AnchorEdge:
			cells, err := m.CellsAroundEdge(node.Anchor.Edge)
			if err != nil {
				return nil, err
			}
			add(cells)
		case wspgraph.AnchorFace:
			cells, err := m.CellsAroundFace(node.Anchor.Face)
			if err != nil {
				return nil, err
			}
			add(cells)
		}
	}

	return ordered, nil
}
