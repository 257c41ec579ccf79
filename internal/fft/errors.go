package fft

import "errors"

// ErrInvalidLength is returned when a Plan is requested for a non-positive
// length, or when Forward/Inverse is called with a slice whose length
// doesn't match the plan.
var ErrInvalidLength = errors.New("fft: invalid length")
