package steiner

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/wspgraph"
)

// registry deduplicates Steiner points by coordinate within a fixed
// tolerance, so that the same physical point reached from two different
// cells (e.g. a shared vertex, or two cells placing a coincident edge
// midpoint) resolves to one wspgraph node rather than two.
//
// Nodes are bucketed by their coordinates rounded to the tolerance. Two
// points within tolerance of each other can round into adjacent buckets,
// so a lookup scans p's bucket and its 26 neighbours; each scan is linear
// in the bucket, which is O(1) amortized for the tolerances this package
// uses.
type registry struct {
	graph     *wspgraph.Graph
	tolerance float64
	buckets   map[bucketKey][]int // candidate node ids sharing a rounded coordinate
}

type bucketKey [3]int64

func newRegistry(g *wspgraph.Graph, tolerance float64) *registry {
	return &registry{graph: g, tolerance: tolerance, buckets: make(map[bucketKey][]int)}
}

func (r *registry) key(p r3.Vec) bucketKey {
	scale := 1.0 / r.tolerance
	return bucketKey{
		int64(math.Round(p.X * scale)),
		int64(math.Round(p.Y * scale)),
		int64(math.Round(p.Z * scale)),
	}
}

// nodeFor returns the id of the existing node within tolerance of p, if any;
// otherwise it registers a new node with the given anchor and returns its id.
func (r *registry) nodeFor(p r3.Vec, anchor wspgraph.Anchor) int {
	k := r.key(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, id := range r.buckets[bucketKey{k[0] + dx, k[1] + dy, k[2] + dz}] {
					existing, err := r.graph.Node(id)
					if err != nil {
						continue
					}
					if pointsEqual(existing.Point, p, r.tolerance) {
						return id
					}
				}
			}
		}
	}
	id := r.graph.AddNode(wspgraph.Node{Point: p, Anchor: anchor})
	r.buckets[k] = append(r.buckets[k], id)
	return id
}

func pointsEqual(a, b r3.Vec, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}
