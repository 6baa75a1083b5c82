package mesh

import "math/rand"

// Option mutates a freshly built Mesh's cell weights before DeriveWeights
// runs. It mirrors core.GraphOption / builder.BuilderOption's
// functional-option idiom, applied post-construction rather than during it
// since cell weights may come from three different sources (input file,
// random distribution, constant fallback) that are mutually exclusive.
type Option func(m *Mesh)

// WithConstantCellWeight overrides every cell's weight with a single value.
func WithConstantCellWeight(w float64) Option {
	return func(m *Mesh) {
		for i := range m.cellWeight {
			m.cellWeight[i] = w
		}
	}
}

// WithRandomCellWeights overrides every cell's weight with an independent
// draw from Uniform(lo, hi), using rng. Spec §3 specifies a uniform
// distribution on [1,1000] as the default random-weight policy; callers
// pass that range explicitly here rather than relying on an implicit
// default, so the choice is visible at the call site.
func WithRandomCellWeights(rng *rand.Rand, lo, hi float64) Option {
	return func(m *Mesh) {
		for i := range m.cellWeight {
			m.cellWeight[i] = lo + rng.Float64()*(hi-lo)
		}
	}
}

// Apply runs each Option against m in order. Intended for use right after
// Build and strictly before DeriveWeights, matching the original's
// "set_random_cell_weights, then calc_face_weights, then calc_edge_weights"
// sequencing.
func (m *Mesh) Apply(opts ...Option) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, opt := range opts {
		opt(m)
	}
}
