// Package vectorwave is the public entry point for MODWT and CWT wavelet
// analysis: single- and multi-level MODWT, batch MODWT, the continuous
// wavelet transform, coefficient thresholding, and a streaming denoiser.
// Everything below delegates to the wavelet/* and internal/* packages;
// this file exists so callers depend on one stable, documented surface.
package vectorwave

import (
	"context"

	"github.com/prophetizo/vectorwave/internal/schedule"
	"github.com/prophetizo/vectorwave/wavelet/batch"
	"github.com/prophetizo/vectorwave/wavelet/cwt"
	"github.com/prophetizo/vectorwave/wavelet/denoise"
	"github.com/prophetizo/vectorwave/wavelet/filterbank"
	"github.com/prophetizo/vectorwave/wavelet/modwt"
	"github.com/prophetizo/vectorwave/wavelet/threshold"
	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

// DispatchMode selects whether a transform's internal kernel dispatch
// (scalar loop vs. SIMD-lane vs. FFT) is automatic or pinned.
type DispatchMode = schedule.Mode

const (
	ScalarOnly  = schedule.ScalarOnly
	VectorAuto  = schedule.VectorAuto
	VectorForce = schedule.VectorForce
)

// errUnsupported is returned when a Wavelet is looked up for an operation
// its registry entry doesn't support (e.g. CWT with a discrete-only wavelet).
var errUnsupported = werrors.UnknownWavelet

// Re-exported types and constants so callers need only import this
// package for the common cases.
type (
	// Wavelet identifies a registered wavelet (discrete or continuous).
	Wavelet = filterbank.Name
	// Boundary selects the MODWT edge-handling convention.
	Boundary = modwt.Boundary
	// MODWTResult holds one level of MODWT approximation/detail coefficients.
	MODWTResult = modwt.Result
	// MultiLevelResult holds a full pyramidal MODWT decomposition.
	MultiLevelResult = modwt.MultiLevelResult
	// BatchResult holds batch MODWT output, one entry per input signal.
	BatchResult = batch.Result
	// CWTResult holds a continuous wavelet transform's S-by-N coefficient matrix.
	CWTResult = cwt.Result
	// Denoiser is a streaming MODWT denoiser.
	Denoiser = denoise.Denoiser
	// DenoiserConfig configures a Denoiser.
	DenoiserConfig = denoise.Config
	// Subscriber receives blocks published by a Denoiser.
	Subscriber = denoise.Subscriber
	// Pool bounds fan-out concurrency for CWT operations.
	Pool = schedule.Pool
)

const (
	Periodic    = modwt.Periodic
	ZeroPadding = modwt.ZeroPadding
)

// LookupWavelet returns the registered filter/kernel entry for the given name.
func LookupWavelet(name Wavelet) *filterbank.Entry { return filterbank.Lookup(name) }

// ParseWavelet resolves a case-insensitive label (e.g. "db4") to a Wavelet.
func ParseWavelet(label string) (Wavelet, error) { return filterbank.Parse(label) }

// ListWavelets returns every registered wavelet compatible with the given
// transform kind, sorted by label.
func ListWavelets(compatible filterbank.Transform) []*filterbank.Entry {
	return filterbank.List(compatible)
}

// Forward computes the single-level MODWT of x with the named wavelet.
func Forward(x []float64, name Wavelet, boundary Boundary) (MODWTResult, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Filters == nil {
		return MODWTResult{}, errUnsupported
	}
	return modwt.Forward(x, entry.Filters, boundary)
}

// ForwardWithMode is Forward with explicit control over kernel dispatch;
// see modwt.ForwardWithMode.
func ForwardWithMode(x []float64, name Wavelet, boundary Boundary, mode DispatchMode) (MODWTResult, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Filters == nil {
		return MODWTResult{}, errUnsupported
	}
	return modwt.ForwardWithMode(x, entry.Filters, boundary, mode)
}

// Inverse reconstructs a signal from one level of MODWT coefficients.
func Inverse(r MODWTResult, name Wavelet, boundary Boundary) ([]float64, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Filters == nil {
		return nil, errUnsupported
	}
	return modwt.Inverse(r, entry.Filters, boundary)
}

// Decompose runs a J-level MODWT cascade.
func Decompose(x []float64, name Wavelet, boundary Boundary, levels int) (MultiLevelResult, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Filters == nil {
		return MultiLevelResult{}, errUnsupported
	}
	return modwt.Decompose(x, entry.Filters, boundary, levels)
}

// DecomposeAdaptive runs a MODWT cascade that stops once a level's detail
// energy fraction drops below minEnergyFrac.
func DecomposeAdaptive(x []float64, name Wavelet, boundary Boundary, minEnergyFrac float64, maxLevels int) (MultiLevelResult, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Filters == nil {
		return MultiLevelResult{}, errUnsupported
	}
	return modwt.DecomposeAdaptive(x, entry.Filters, boundary, minEnergyFrac, maxLevels)
}

// Reconstruct inverts a full MultiLevelResult back to a signal.
func Reconstruct(r MultiLevelResult, name Wavelet, boundary Boundary) ([]float64, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Filters == nil {
		return nil, errUnsupported
	}
	return modwt.Reconstruct(r, entry.Filters, boundary)
}

// ReconstructFrom reconstructs using only levels k+1..J, discarding the k
// finest detail levels (a denoising primitive).
func ReconstructFrom(r MultiLevelResult, name Wavelet, boundary Boundary, k int) ([]float64, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Filters == nil {
		return nil, errUnsupported
	}
	return modwt.ReconstructFrom(r, entry.Filters, boundary, k)
}

// ForwardBatch runs a single-level MODWT across B equal-length signals in
// one interleaved pass.
func ForwardBatch(signals [][]float64, name Wavelet, boundary Boundary) (BatchResult, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Filters == nil {
		return BatchResult{}, errUnsupported
	}
	return batch.Forward(signals, entry.Filters, boundary)
}

// ForwardBatchWithContext is ForwardBatch with explicit kernel dispatch
// control and cooperative cancellation (ctx is checked once per tile of
// the interleaved sweep); see batch.ForwardWithContext.
func ForwardBatchWithContext(ctx context.Context, signals [][]float64, name Wavelet, boundary Boundary, mode DispatchMode) (BatchResult, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Filters == nil {
		return BatchResult{}, errUnsupported
	}
	return batch.ForwardWithContext(ctx, signals, entry.Filters, boundary, mode)
}

// CWT computes the continuous wavelet transform of x at the given scales
// using the named continuous wavelet, optionally fanning scales out
// across pool (nil uses a GOMAXPROCS-sized default pool).
func CWT(x []float64, name Wavelet, scales []float64, pool *Pool) (CWTResult, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Kernel == nil {
		return CWTResult{}, errUnsupported
	}
	return cwt.Transform(x, entry.Kernel, scales, pool)
}

// CWTWithContext is CWT with cooperative cancellation: ctx is checked
// before each scale's convolution; see cwt.TransformWithContext.
func CWTWithContext(ctx context.Context, x []float64, name Wavelet, scales []float64, pool *Pool) (CWTResult, error) {
	entry := filterbank.Lookup(name)
	if entry == nil || entry.Kernel == nil {
		return CWTResult{}, errUnsupported
	}
	return cwt.TransformWithContext(ctx, x, entry.Kernel, scales, pool)
}

// LogScales returns numScales scales geometrically spaced between min and
// max inclusive.
func LogScales(min, max float64, numScales int) []float64 {
	return cwt.LogScales(min, max, numScales)
}

// NewDenoiser constructs a streaming MODWT denoiser.
func NewDenoiser(cfg DenoiserConfig) (*Denoiser, error) { return denoise.New(cfg) }

// NewPool constructs a worker pool for CWT fan-out.
func NewPool(opts ...schedule.Option) *Pool { return schedule.NewPool(opts...) }

// Threshold rules, re-exported for callers building a custom denoising
// pipeline instead of using Denoiser.
var (
	SoftThreshold      = threshold.Soft
	HardThreshold      = threshold.Hard
	EstimateSigma      = threshold.EstimateSigma
	UniversalThreshold = threshold.Universal
	MinimaxThreshold   = threshold.Minimax
	SUREThreshold      = threshold.SURE
)
