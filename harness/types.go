package harness

import "errors"

// Sentinel errors for Harness operations.
var (
	// ErrNoVertices indicates RandomBatch was asked to pick query pairs
	// from a mesh with fewer than 2 vertices.
	ErrNoVertices = errors.New("harness: mesh has fewer than 2 vertices to query")

	// ErrBadBatchSize indicates RandomBatch was called with k <= 0.
	ErrBadBatchSize = errors.New("harness: batch size must be positive")
)

// histoMin, histoMax and histoBins define the approximation-ratio
// histogram's fixed range: 10 bins spanning [1.0, 1.1], with ratios at or
// above histoMax folded into the last bin — matching the original's
// hard-coded "100%..110%, 10 bins" histogram exactly.
const (
	histoMin  = 1.0
	histoMax  = 1.1
	histoBins = 10
)

// QueryOutcome pairs one random query's (s,t) vertex indices with its
// approximation ratio, so BatchStats can report which pair witnessed the
// min/max ratio.
type QueryOutcome struct {
	Source, Target int
	Ratio          float64
	Cells          []int
}

// BatchStats summarizes a RandomBatch run.
type BatchStats struct {
	Count             int
	MinRatio          float64
	MaxRatio          float64
	AvgRatio          float64
	MinWitness        QueryOutcome
	MaxWitness        QueryOutcome
	Histogram         [histoBins]float64
	Unreachable       int
	StretchViolations int  // queries where Extract reported ErrStretchViolation; counted, not discarded
	WitnessCells      bool // true if MinWitness/MaxWitness.Cells were populated
}

// BatchRecord is the single row a Sink receives at the end of a RandomBatch
// run: the batch's configuration followed by every query's raw distance, in
// the order the queries ran. NumVertices and NumEdges count the Steiner
// graph's own nodes and edges (|V|, |E|), not the underlying mesh's.
type BatchRecord struct {
	Stretch, Yardstick    float64
	NumVertices, NumEdges int
	Distances             []float64
}
