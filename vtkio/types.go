package vtkio

import "errors"

// Sentinel errors for vtkio operations.
var (
	// ErrIoOpen indicates a Write*File wrapper could not open its target file.
	ErrIoOpen = errors.New("vtkio: failed to open output file")

	// ErrIoWrite indicates a write to the underlying io.Writer failed.
	ErrIoWrite = errors.New("vtkio: write failed")
)
