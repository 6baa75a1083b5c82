package solver

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/wsp3d/wsp3d/wspgraph"
)

// Run computes shortest distances from source over g, returning a Result
// whose Dist/Pred slices are indexed by node id. Unreached nodes carry
// Dist == math.Inf(1) and Pred == -1.
//
// Options customize the run:
//   - WithTarget(t): permits early exit once t is finalized.
//   - WithMaxDistance(x): nodes beyond x stay unreached.
//   - WithContext(ctx): cooperative cancellation, checked once per heap pop.
func Run(g *wspgraph.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumNodes()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d", ErrSourceOutOfRange, source)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Target >= n {
		return nil, fmt.Errorf("%w: %d", ErrTargetOutOfRange, cfg.Target)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		pred:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Pred: r.pred}, nil
}

// runner holds the mutable state for a single Run call, mirroring
// dijkstra.runner's init/process/relax decomposition.
type runner struct {
	g       *wspgraph.Graph
	options Options
	dist    []float64
	pred    []int
	visited []bool
	pq      nodePQ
}

func (r *runner) init(source int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.pred[i] = -1
	}
	r.dist[source] = 0

	r.pq = make(nodePQ, 0, len(r.dist))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if r.options.ctx != nil {
			select {
			case <-r.options.ctx.Done():
				return ErrCanceled
			default:
			}
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if r.options.Target >= 0 && u == r.options.Target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) relax(u int) error {
	var relaxErr error
	err := r.g.Neighbors(u, func(v int, w float64) {
		if relaxErr != nil {
			return
		}
		if w < 0 {
			relaxErr = fmt.Errorf("solver: negative edge weight %g incident to node %d", w, u)
			return
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			return
		}
		if newDist >= r.dist[v] {
			return
		}
		r.dist[v] = newDist
		r.pred[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	})
	if err != nil {
		return err
	}
	return relaxErr
}

// nodeItem is one (node, tentative distance) entry in the priority queue.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist, using the
// lazy decrease-key pattern: stale entries are dropped via runner.visited
// rather than removed from the heap.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
