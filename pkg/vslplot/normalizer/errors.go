package normalizer

import (
	"errors"
	"fmt"
)

// ErrUnknownTraceType indicates a trace_type missing from the registry.
var ErrUnknownTraceType = errors.New("unknown trace type")

// ErrMalformedTrace indicates trace data that violates a type-specific precondition.
var ErrMalformedTrace = errors.New("malformed trace")

// UnknownTraceTypeError reports a trace whose type identifier could not be resolved.
type UnknownTraceTypeError struct {
	Index int
	Value any
}

func (e *UnknownTraceTypeError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("trace %d: missing %s", e.Index, "trace_type")
	}
	return fmt.Sprintf("trace %d: unknown trace type %v", e.Index, e.Value)
}

func (e *UnknownTraceTypeError) Unwrap() error {
	return ErrUnknownTraceType
}

// MalformedTraceError reports a field that failed a type-specific fixup.
type MalformedTraceError struct {
	Index  int
	Field  string
	Reason string
}

func (e *MalformedTraceError) Error() string {
	return fmt.Sprintf("trace %d: malformed field %q: %s", e.Index, e.Field, e.Reason)
}

func (e *MalformedTraceError) Unwrap() error {
	return ErrMalformedTrace
}
