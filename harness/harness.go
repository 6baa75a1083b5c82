package harness

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/result"
	"github.com/wsp3d/wsp3d/solver"
	"github.com/wsp3d/wsp3d/wspgraph"
)

// Harness runs shortest-path queries against one (mesh, Steiner graph) pair
// and reports each random batch's outcome through a Sink.
type Harness struct {
	g    *wspgraph.Graph
	mesh *mesh.Mesh
	sink Sink
}

// New returns a Harness over g (built from mesh by package steiner) and
// mesh, writing one row per RandomBatch call to sink.
func New(g *wspgraph.Graph, m *mesh.Mesh, sink Sink) *Harness {
	return &Harness{g: g, mesh: m, sink: sink}
}

// SingleQuery runs one shortest-path query from s to t and returns the
// reconstructed path. It never touches the Sink: the sink's lifecycle is
// scoped to RandomBatch, not to individual queries. A stretch violation is
// returned alongside its (non-nil) Path via result.ErrStretchViolation, so
// the caller can log the anomaly and keep using the path; ErrUnreachable
// and ErrInvalidQuery carry a nil Path.
func (h *Harness) SingleQuery(s, t int) (*result.Path, error) {
	solved, err := solver.Run(h.g, s, solver.WithTarget(t))
	if err != nil {
		return nil, err
	}
	path, err := result.Extract(h.g, h.mesh, s, t, solved)
	if err != nil && !errors.Is(err, result.ErrStretchViolation) {
		return nil, err
	}
	return path, err
}

// RandomBatch runs k queries between random pairs of the mesh's own
// vertices (vertex-anchored Steiner nodes), using rng for pair selection,
// and summarizes their approximation ratios. Source and target within a
// pair are always distinct. Unreachable pairs are counted but do not abort
// the batch; a stretch violation is counted separately and does not abort
// the batch either, since the query still produced a usable path.
//
// stretch and yardstick are recorded as-is in the batch's Sink row — they
// describe the Steiner graph g was built with, not anything RandomBatch
// itself computes. Exactly one BatchRecord is written to the sink, after
// every query in the batch has run.
func (h *Harness) RandomBatch(k int, rng *rand.Rand, stretch, yardstick float64) (*BatchStats, error) {
	if k <= 0 {
		return nil, ErrBadBatchSize
	}
	nv := h.mesh.NumVertices()
	if nv < 2 {
		return nil, ErrNoVertices
	}

	vertexNode, err := h.vertexNodeIDs()
	if err != nil {
		return nil, err
	}

	stats := &BatchStats{MinRatio: math.Inf(1), MaxRatio: math.Inf(-1)}
	ratios := make([]float64, 0, k)
	distances := make([]float64, 0, k)

	for i := 0; i < k; i++ {
		sv := rng.Intn(nv)
		tv := sv
		for tv == sv {
			tv = rng.Intn(nv)
		}
		sNode, tNode := vertexNode[sv], vertexNode[tv]

		solved, err := solver.Run(h.g, sNode, solver.WithTarget(tNode))
		if err != nil {
			return nil, err
		}
		path, extractErr := result.Extract(h.g, h.mesh, sNode, tNode, solved)
		if errors.Is(extractErr, result.ErrUnreachable) {
			stats.Unreachable++
			continue
		}
		if extractErr != nil && !errors.Is(extractErr, result.ErrStretchViolation) {
			return nil, extractErr
		}
		if errors.Is(extractErr, result.ErrStretchViolation) {
			stats.StretchViolations++
		}

		distances = append(distances, path.Distance)

		outcome := QueryOutcome{Source: sv, Target: tv, Ratio: path.Ratio, Cells: path.Cells}
		ratios = append(ratios, path.Ratio)
		stats.Count++
		if path.Ratio < stats.MinRatio {
			stats.MinRatio = path.Ratio
			stats.MinWitness = outcome
			stats.WitnessCells = true
		}
		if path.Ratio > stats.MaxRatio {
			stats.MaxRatio = path.Ratio
			stats.MaxWitness = outcome
			stats.WitnessCells = true
		}
	}

	if stats.Count > 0 {
		stats.AvgRatio = stat.Mean(ratios, nil)
		stats.Histogram = buildHistogram(ratios)
	} else {
		stats.MinRatio, stats.MaxRatio = 0, 0
	}

	record := BatchRecord{
		Stretch:     stretch,
		Yardstick:   yardstick,
		NumVertices: h.g.NumNodes(),
		NumEdges:    h.g.NumEdges(),
		Distances:   distances,
	}
	if err := h.sink.WriteRow(record); err != nil {
		return nil, fmt.Errorf("harness: writing batch record: %w", err)
	}

	return stats, nil
}

// VertexNode resolves the Steiner-graph node id anchored to mesh vertex v,
// for callers (package cmd/wsp3d) that take vertex indices from the user
// and must translate them into graph node ids before calling SingleQuery.
func (h *Harness) VertexNode(v int) (int, error) {
	if v < 0 || v >= h.mesh.NumVertices() {
		return 0, fmt.Errorf("harness: vertex %d out of range", v)
	}
	ids, err := h.vertexNodeIDs()
	if err != nil {
		return 0, err
	}
	return ids[v], nil
}

// vertexNodeIDs resolves, for every mesh vertex, the id of its
// vertex-anchored node in h.g. Every placement scheme registers exactly
// one such node per vertex (package steiner), so the lookup is a single
// linear scan done once per batch.
func (h *Harness) vertexNodeIDs() ([]int, error) {
	nv := h.mesh.NumVertices()
	out := make([]int, nv)
	for i := range out {
		out[i] = -1
	}
	for id := 0; id < h.g.NumNodes(); id++ {
		n, err := h.g.Node(id)
		if err != nil {
			return nil, err
		}
		if n.Anchor.Kind == wspgraph.AnchorVertex {
			out[int(n.Anchor.Vertex)] = id
		}
	}
	for v, id := range out {
		if id == -1 {
			return nil, fmt.Errorf("harness: mesh vertex %d has no corresponding Steiner node", v)
		}
	}
	return out, nil
}

// buildHistogram bins ratios into the fixed [1.0, 1.1) range, 10 bins,
// folding any ratio >= histoMax into the last bin via stat.Histogram's
// dividers, which requires every value strictly within [dividers[0],
// dividers[len-1]] — values at or above histoMax are nudged just under it
// first.
func buildHistogram(ratios []float64) [histoBins]float64 {
	dividers := make([]float64, histoBins+1)
	for i := range dividers {
		dividers[i] = histoMin + float64(i)*(histoMax-histoMin)/histoBins
	}

	clamped := make([]float64, len(ratios))
	for i, r := range ratios {
		switch {
		case r >= histoMax:
			clamped[i] = histoMax - 1e-9
		case r < histoMin:
			clamped[i] = histoMin
		default:
			clamped[i] = r
		}
	}

	counts := make([]float64, histoBins)
	stat.Histogram(counts, dividers, clamped, nil)

	var out [histoBins]float64
	copy(out[:], counts)
	return out
}
