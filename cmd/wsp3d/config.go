package main

import "fmt"

// config mirrors the CLI surface in spec.md §6.3: one query (or a random
// batch) against an input tetgen mesh, with a choice of Steiner-graph
// placement strategy and optional VTK side outputs.
type config struct {
	InputMesh            string
	StartVertex          int
	TerminationVertex    int
	RandomSTVertices     int
	SpannerStretch       float64
	Yardstick            float64
	WriteMeshVTK         bool
	WriteSteinerGraphVTK bool
	UseRandomCellWeights bool
}

// validate rejects configurations cobra's flag parsing cannot catch on its
// own (missing positional, a negative batch size).
func (c *config) validate() error {
	if c.InputMesh == "" {
		return fmt.Errorf("%w: input-mesh is required", ErrConfigError)
	}
	if c.RandomSTVertices < 0 {
		return fmt.Errorf("%w: random-s-t-vertices must be >= 0", ErrConfigError)
	}
	return nil
}
