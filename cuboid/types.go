package cuboid

import "errors"

var (
	// ErrBadDimensions is returned when any of nx, ny, nz is not positive.
	ErrBadDimensions = errors.New("cuboid: dimensions must be positive")
	// ErrIoOpen is returned when a fixture file cannot be created or truncated.
	ErrIoOpen = errors.New("cuboid: opening file")
	// ErrIoWrite is returned when a write to a fixture file fails.
	ErrIoWrite = errors.New("cuboid: writing file")
)
