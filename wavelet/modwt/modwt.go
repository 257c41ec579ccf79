// Package modwt implements the maximal overlap discrete wavelet transform:
// a shift-invariant, non-decimated decomposition that accepts a signal of
// any length (unlike the classic decimated DWT, which requires a
// power-of-two length).
package modwt

import (
	"github.com/prophetizo/vectorwave/internal/bufpool"
	"github.com/prophetizo/vectorwave/internal/fft"
	"github.com/prophetizo/vectorwave/internal/numeric"
	"github.com/prophetizo/vectorwave/internal/schedule"
	"github.com/prophetizo/vectorwave/internal/vecmath"
	"github.com/prophetizo/vectorwave/wavelet/filterbank"
	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

// scratchPool backs this package's per-call coefficient and shift buffers.
// Result buffers (the Approx/Detail slices returned to callers) are
// acquired but never released here, since ownership passes to the caller;
// pure scratch consumed within a single correlate call is released before
// that call returns.
var scratchPool = bufpool.NewPool()

// Boundary selects how the convolution handles samples before index 0.
type Boundary int

const (
	// Periodic wraps indices modulo N (the classic MODWT convention).
	Periodic Boundary = iota
	// ZeroPadding treats samples before index 0 as zero.
	ZeroPadding
)

// Dispatch thresholds for the single-level operator (§4.5): below
// SIMDThreshold every path is a scalar loop; at or above it, short filters
// take the lane-wise SIMD path and long filters take the FFT path once the
// signal is also long enough to amortize the transform cost (Periodic
// boundary only; ZeroPadding with a long filter stays on the scalar loop).
const (
	SIMDThreshold = 64
	FFTThreshold  = 1024
	shortFilter   = 8
)

// Result holds one level of MODWT decomposition: approximation and detail
// coefficients, both the same length as the input signal.
type Result struct {
	Approx []float64
	Detail []float64
}

// ScaleFilter rescales a DWT-normalized filter (sum of squares == 1) by
// 1/sqrt(2), the MODWT convention. Exposed for the batch package, which
// implements its own interleaved convolution loop rather than calling
// Forward per signal.
func ScaleFilter(f []float64) []float64 { return modwtScale(f) }

// modwtScale rescales a DWT-normalized filter (sum of squares == 1) by
// 1/sqrt(2), the MODWT convention that keeps energy split evenly between
// approximation and detail at each level.
func modwtScale(f []float64) []float64 {
	out := make([]float64, len(f))
	const inv = 0.7071067811865476 // 1/sqrt(2)
	for i, v := range f {
		out[i] = v * inv
	}
	return out
}

func validateSignal(x []float64) error {
	if len(x) == 0 {
		return werrors.InvalidSignal
	}
	if !numeric.AllFinite(x) {
		return werrors.InvalidSignal
	}
	return nil
}

func validateFilters(f *filterbank.Filters) error {
	if f == nil || len(f.Dec0) == 0 || len(f.Dec1) == 0 {
		return werrors.InvalidFilter
	}
	if len(f.Dec0) != len(f.Dec1) {
		return werrors.InvalidFilter
	}
	return nil
}

// Forward computes the single-level MODWT of x using the decomposition
// filters of f, under the given boundary convention. Dispatch between the
// scalar, SIMD-lane, and FFT kernels (§4.5) is automatic; use
// ForwardWithMode to pin a specific kernel.
func Forward(x []float64, f *filterbank.Filters, boundary Boundary) (Result, error) {
	return ForwardWithMode(x, f, boundary, schedule.VectorAuto)
}

// ForwardWithMode is Forward with explicit control over kernel dispatch.
// ScalarOnly forces the generic scalar loop regardless of signal or filter
// length; VectorForce requires the SIMD-lane kernel even below its normal
// admission threshold; VectorAuto reproduces Forward's default behavior.
func ForwardWithMode(x []float64, f *filterbank.Filters, boundary Boundary, mode schedule.Mode) (Result, error) {
	if err := validateSignal(x); err != nil {
		return Result{}, err
	}
	if err := validateFilters(f); err != nil {
		return Result{}, err
	}
	h := modwtScale(f.Dec1) // highpass/wavelet filter -> detail
	g := modwtScale(f.Dec0) // lowpass/scaling filter -> approximation

	detail := correlate(x, h, boundary, mode)
	approx := correlate(x, g, boundary, mode)
	return Result{Approx: approx, Detail: detail}, nil
}

// Inverse reconstructs a length-N signal from one level of MODWT
// approximation and detail coefficients.
func Inverse(r Result, f *filterbank.Filters, boundary Boundary) ([]float64, error) {
	if err := validateSignal(r.Approx); err != nil {
		return nil, err
	}
	if len(r.Approx) != len(r.Detail) {
		return nil, werrors.IncompatibleLength
	}
	if err := validateFilters(f); err != nil {
		return nil, err
	}
	h := modwtScale(f.Dec1) // highpass/wavelet filter, pairs with Detail
	g := modwtScale(f.Dec0) // lowpass/scaling filter, pairs with Approx

	n := len(r.Approx)
	out := make([]float64, n)
	for t := 0; t < n; t++ {
		var sum float64
		for l := range h {
			idx := t + l
			if boundary == Periodic {
				idx %= n
			} else if idx >= n {
				continue
			}
			sum += h[l]*r.Detail[idx] + g[l]*r.Approx[idx]
		}
		out[t] = sum
	}
	return out, nil
}

// correlate picks the dispatch path named in §4.5 and returns
// sum_l filt[l]*x[(t-l) wrapped-or-zeroed]. mode narrows or overrides that
// choice: ScalarOnly always takes the scalar loop; VectorForce always takes
// the SIMD-lane kernel (the only vectorized path this package registers,
// so VectorForce never has an error path to return); VectorAuto defers to
// the length/filter-size thresholds.
func correlate(x, filt []float64, boundary Boundary, mode schedule.Mode) []float64 {
	if mode == schedule.ScalarOnly {
		return scalarCorrelate(x, filt, boundary)
	}
	if mode == schedule.VectorForce {
		return vectorCorrelate(x, filt, boundary)
	}
	n := len(x)
	switch {
	case n < SIMDThreshold:
		return scalarCorrelate(x, filt, boundary)
	case len(filt) <= shortFilter:
		return vectorCorrelate(x, filt, boundary)
	case n >= FFTThreshold && boundary == Periodic:
		return fftCircularCorrelate(x, filt)
	default:
		return scalarCorrelate(x, filt, boundary)
	}
}

func scalarCorrelate(x, filt []float64, boundary Boundary) []float64 {
	n := len(x)
	// Result buffer: ownership passes to the caller, so it is acquired but
	// never released here. A pool miss degrades to a plain allocation.
	out := acquireResult(n)
	for t := 0; t < n; t++ {
		var sum float64
		for l, c := range filt {
			idx := t - l
			if boundary == Periodic {
				idx = ((idx % n) + n) % n
				sum += c * x[idx]
			} else if idx >= 0 {
				sum += c * x[idx]
			}
		}
		out[t] = sum
	}
	return out
}

// vectorCorrelate rewrites the convolution as a sum of scaled, shifted
// copies of the whole signal (one rank-1 update per filter tap), which is
// embarrassingly vectorizable over the output index t via vecmath's fused
// multiply-add.
func vectorCorrelate(x, filt []float64, boundary Boundary) []float64 {
	n := len(x)
	out := acquireResult(n)
	shiftedBuf, err := scratchPool.Acquire(n)
	if err != nil {
		shifted := make([]float64, n)
		for l, c := range filt {
			shiftByLag(x, l, boundary, shifted)
			vecmath.AddMulBlock(out, out, shifted, c)
		}
		return out
	}
	defer scratchPool.Release(shiftedBuf)
	shifted := shiftedBuf.Data()
	for l, c := range filt {
		shiftByLag(x, l, boundary, shifted)
		vecmath.AddMulBlock(out, out, shifted, c)
	}
	return out
}

// acquireResult returns an n-element buffer for a result the caller will
// own indefinitely. A pool hit/miss both produce a usable, zeroed buffer;
// the pool is never consulted for a Release since the buffer escapes.
func acquireResult(n int) []float64 {
	buf, err := scratchPool.Acquire(n)
	if err != nil {
		return make([]float64, n)
	}
	return buf.Data()
}

// shiftByLag writes shifted[t] = x[(t-lag) wrapped-or-zeroed] into dst.
func shiftByLag(x []float64, lag int, boundary Boundary, dst []float64) {
	n := len(x)
	if boundary == Periodic {
		lag = ((lag % n) + n) % n
		if lag == 0 {
			copy(dst, x)
			return
		}
		copy(dst, x[n-lag:])
		copy(dst[lag:], x[:n-lag])
		return
	}
	numeric.Zero(dst[:min(lag, n)])
	if lag < n {
		copy(dst[lag:], x[:n-lag])
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// fftCircularCorrelate computes the same periodic-boundary sum as
// scalarCorrelate, sum_l filt[l]*x[(t-l) mod n], which is the circular
// convolution of x with filt zero-padded to length n, via the convolution
// theorem.
func fftCircularCorrelate(x, filt []float64) []float64 {
	n := len(x)
	paddedBuf, err := scratchPool.Acquire(n)
	if err != nil {
		return scalarCorrelate(x, filt, Periodic)
	}
	defer scratchPool.Release(paddedBuf)
	padded := paddedBuf.Data()
	for l, c := range filt {
		padded[l%n] += c
	}

	plan, err := fft.NewRealPlan(n)
	if err != nil {
		// n is always a positive power-of-two-or-not length already
		// validated by the caller; NewRealPlan only fails on n<=0.
		return scalarCorrelate(x, filt, Periodic)
	}
	X, err1 := plan.Forward(x)
	H, err2 := plan.Forward(padded)
	if err1 != nil || err2 != nil {
		return scalarCorrelate(x, filt, Periodic)
	}
	prodBuf, err := scratchPool.AcquireComplex(len(X))
	if err != nil {
		return scalarCorrelate(x, filt, Periodic)
	}
	defer scratchPool.ReleaseComplex(prodBuf)
	prod := prodBuf.Data()
	for i := range prod {
		prod[i] = X[i] * H[i]
	}
	out, err := plan.Inverse(prod)
	if err != nil {
		return scalarCorrelate(x, filt, Periodic)
	}
	return out
}

// EnergyOf returns sum(x[i]^2), used for energy accounting and the
// adaptive stopping rule in the multi-level cascade.
func EnergyOf(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}
