package steiner

import "errors"

// Sentinel errors for Config validation and graph construction.
var (
	// ErrUnknownMode indicates a Config.Mode value none of the built-in
	// schemes recognize.
	ErrUnknownMode = errors.New("steiner: unknown placement mode")

	// ErrBadStretch indicates a negative Config.Stretch.
	ErrBadStretch = errors.New("steiner: stretch must be non-negative")

	// ErrBadYardstick indicates a non-positive Config.Yardstick, which
	// would make edge subdivision divide by zero or loop forever.
	ErrBadYardstick = errors.New("steiner: yardstick must be positive")
)

// Mode selects which SteinerPlacer strategy Build uses.
type Mode int

const (
	// ModeBarycentric places one node at the centroid of every face, in
	// addition to mesh vertices.
	ModeBarycentric Mode = iota
	// ModeSurfaceOnly is ModeBarycentric restricted to boundary faces.
	ModeSurfaceOnly
	// ModeSpannerInterval additionally subdivides edges by Yardstick and
	// offsets face nodes by a function of Stretch. This is the primary,
	// most accurate strategy and spec.md's default.
	ModeSpannerInterval
)

// DefaultDedupTolerance is the absolute per-coordinate tolerance used to
// decide that two Steiner points are the same node, absent an explicit
// Config.DedupTolerance.
const DefaultDedupTolerance = 1e-8

// Config parameterizes Steiner graph construction.
//
// Stretch controls how much longer the Steiner graph's shortest path may
// be than the true continuous geodesic (the "1+ε" stretch factor of
// spec §4.2); it is only consulted by ModeSpannerInterval.
//
// Yardstick is the maximum edge-subdivision interval: an edge of length L
// is split into ⌈L/Yardstick⌉ equal segments. Only consulted by
// ModeSpannerInterval.
type Config struct {
	Mode           Mode
	Stretch        float64
	Yardstick      float64
	DedupTolerance float64
}

// validate fills in DedupTolerance's default and rejects malformed fields.
func (c *Config) validate() error {
	if c.DedupTolerance <= 0 {
		c.DedupTolerance = DefaultDedupTolerance
	}
	if c.Stretch < 0 {
		return ErrBadStretch
	}
	if c.Mode == ModeSpannerInterval && c.Yardstick <= 0 {
		return ErrBadYardstick
	}
	switch c.Mode {
	case ModeBarycentric, ModeSurfaceOnly, ModeSpannerInterval:
	default:
		return ErrUnknownMode
	}
	return nil
}
