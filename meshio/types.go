package meshio

import "fmt"

// ErrInputParse wraps a malformed-input error with the file and line it
// occurred on, so a caller can report "foo.node:14: ..." directly.
type ErrInputParse struct {
	File string
	Line int
	Err  error
}

// Error implements the error interface.
func (e *ErrInputParse) Error() string {
	return fmt.Sprintf("meshio: %s:%d: %v", e.File, e.Line, e.Err)
}

// Unwrap supports errors.Is/As against the wrapped cause.
func (e *ErrInputParse) Unwrap() error {
	return e.Err
}
