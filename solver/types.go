package solver

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil *wspgraph.Graph was passed to Run.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrSourceOutOfRange indicates the source node id is not in the graph.
	ErrSourceOutOfRange = errors.New("solver: source node out of range")

	// ErrTargetOutOfRange indicates an explicit WithTarget id is not in the graph.
	ErrTargetOutOfRange = errors.New("solver: target node out of range")

	// ErrBadMaxDistance indicates a negative WithMaxDistance value.
	ErrBadMaxDistance = errors.New("solver: MaxDistance must be non-negative")

	// ErrCanceled indicates the context passed via WithContext was canceled
	// or timed out before the run completed.
	ErrCanceled = errors.New("solver: run canceled")
)

// Options configures a single Run call.
//
// Target      – if set (>= 0), Run may stop early once target is finalized.
// MaxDistance – vertices whose shortest distance would exceed this are not
//
//	explored. Defaults to +∞ (no cap).
//
// ctx         – optional cooperative-cancellation context; checked between
//
//	heap extractions.
type Options struct {
	Target      int
	MaxDistance float64
	ctx         context.Context
}

// Option is a functional option for Run.
type Option func(*Options)

// WithTarget tells Run it may stop as soon as target's shortest distance is
// finalized, instead of exploring the whole graph. Correctness of the
// returned Result for every other node is not guaranteed when this option
// is used.
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithMaxDistance caps exploration: nodes whose shortest distance would
// exceed max are left at +∞. Panics if max < 0.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithContext makes Run check ctx between heap extractions, returning
// ErrCanceled as soon as ctx is done. This is a supplemental feature:
// harness's batch queries can bound total run time on large meshes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.ctx = ctx
	}
}

func defaultOptions() Options {
	return Options{
		Target:      -1,
		MaxDistance: math.Inf(1),
	}
}

// Result holds the output of a completed Run: per-node distances and
// predecessors, indexed exactly like the input graph's node ids.
type Result struct {
	Source int
	Dist   []float64
	Pred   []int // Pred[v] == -1 means v has no predecessor (source, or unreached)
}
