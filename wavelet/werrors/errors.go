// Package werrors defines the semantic error kinds shared across the
// transform, thresholding, denoising, and CWT packages. Errors are
// returned as the bare sentinel values below rather than as distinct Go
// types or wrapped errors, so callers match with errors.Is or ==.
package werrors

import "errors"

var (
	// InvalidSignal is returned for a nil/empty signal, or one containing
	// a NaN or +/-Inf sample.
	InvalidSignal = errors.New("wavelet: invalid signal")

	// InvalidFilter is returned for a nil/empty filter, or one that fails
	// a consistency check (e.g. lowpass and highpass decomposition filters
	// of different lengths).
	InvalidFilter = errors.New("wavelet: invalid filter")

	// IncompatibleLength is returned when two operands that must share a
	// length (e.g. signal and coefficient array on reconstruction) do not.
	IncompatibleLength = errors.New("wavelet: incompatible length")

	// UnknownWavelet is returned when a caller-supplied wavelet name does
	// not match any registered entry.
	UnknownWavelet = errors.New("wavelet: unknown wavelet")

	// ResourceExhaustion is returned when a buffer or worker allocation
	// cannot be satisfied (see internal/bufpool).
	ResourceExhaustion = errors.New("wavelet: resource exhaustion")

	// StreamClosed is returned by a streaming denoiser once it has been
	// closed, either explicitly or after a terminal error.
	StreamClosed = errors.New("wavelet: stream closed")

	// Cancelled is returned when a context passed to a long-running
	// operation (CWT scale fan-out, streaming denoiser) is cancelled.
	Cancelled = errors.New("wavelet: operation cancelled")
)
