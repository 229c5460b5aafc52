package vslplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/normalizer"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an input document has the wrong JSON shape.
var ErrInvalidFormat = errors.New("invalid document format")

// Trace errors raised by normalization; re-exported for callers of this package.
var (
	ErrUnknownTraceType = normalizer.ErrUnknownTraceType
	ErrMalformedTrace   = normalizer.ErrMalformedTrace
)

type (
	UnknownTraceTypeError = normalizer.UnknownTraceTypeError
	MalformedTraceError   = normalizer.MalformedTraceError
)

// StageError represents a failure in one pipeline stage.
type StageError struct {
	Stage string // "load", "sanitize", "normalize", "render", "inspect"
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage, path string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
