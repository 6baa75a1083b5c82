package result

import "errors"

// Sentinel errors returned by Extract.
var (
	// ErrUnreachable indicates solved.Dist[t] is +∞: no path exists from s to t.
	ErrUnreachable = errors.New("result: target is unreachable from source")

	// ErrInvalidQuery indicates s or t is out of range, or s == t.
	ErrInvalidQuery = errors.New("result: invalid source/target query")

	// ErrStretchViolation indicates the computed approximation ratio fell
	// below 1.0 (within -εTol), which should be geometrically impossible
	// for a Steiner-graph path and points at a construction bug rather than
	// an unreachable query. Extract still returns the built Path alongside
	// this error, so a caller can log it and keep going instead of
	// discarding the query.
	ErrStretchViolation = errors.New("result: approximation ratio below 1.0")
)

// epsilonTol is the slack allowed below ratio 1.0 before ErrStretchViolation
// is raised, absorbing floating-point rounding in the Euclidean baseline.
const epsilonTol = 1e-6

// Path is the outcome of one shortest-path query.
type Path struct {
	Source, Target int
	Nodes          []int // node ids from Source to Target, inclusive
	Distance       float64
	Hops           int
	Ratio          float64 // Distance / straight-line distance between endpoints
	Cells          []int   // traversed mesh.CellHandle values, as plain ints, de-duplicated
}
