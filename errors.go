package intr

import (
	"errors"
	"fmt"
)

// Sentinel errors for intr package.
var (
	// ErrZeroDirection is returned by Line.Validate when the direction is the zero vector.
	ErrZeroDirection = errors.New("intr: line direction is zero")

	// ErrNonFinite is returned by Line.Validate when a coordinate is NaN or infinite.
	ErrNonFinite = errors.New("intr: line has a non-finite coordinate")

	// ErrFieldCount is returned by ParseLine when the input does not have four fields.
	ErrFieldCount = errors.New("intr: line needs 4 comma-separated values")
)

// ParseError is returned when a line description cannot be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("intr: parse line %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
