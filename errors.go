package vmath

import "errors"

// The algebra itself never returns errors: degenerate numeric inputs
// (zero-length vectors, zero quaternions, singular matrices) propagate as
// IEEE NaN/Inf values and validation is the caller's responsibility.
// The only faults raised by this package are argument-shape violations on
// the CopyTo/CopyToAt buffer operations, reported as one of the sentinels
// below so callers can tell the three classes apart with errors.Is.
var (
	// ErrNilDest is returned when the destination slice is nil.
	ErrNilDest = errors.New("vmath: nil destination slice")

	// ErrIndexOutOfRange is returned when the start index is negative or
	// not a valid position in the destination slice.
	ErrIndexOutOfRange = errors.New("vmath: index out of range")

	// ErrDestTooSmall is returned when the destination has too little room
	// at the given index to hold every component.
	ErrDestTooSmall = errors.New("vmath: destination too small")
)
