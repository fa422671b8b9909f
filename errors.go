package mathil

import (
	"errors"
	"fmt"
)

// ErrInvalidDirectory is returned when an output directory does not exist or
// is not a directory.
var ErrInvalidDirectory = errors.New("mathil: invalid output directory")

// OutputOp names the step of writing an image that failed.
type OutputOp string

// Output steps.
const (
	OpCreate OutputOp = "create"
	OpWrite  OutputOp = "write"
	OpEncode OutputOp = "encode"
)

// OutputError records a failure to write an image file.
type OutputError struct {
	Op   OutputOp
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("mathil: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// FrameError records the failure of a single animation frame.
type FrameError struct {
	Frame int
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("mathil: frame %d: %v", e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
