// Package cwt implements the continuous wavelet transform: correlating a
// signal against a bank of dilated, scale-normalized wavelet kernels via
// FFT-based linear convolution, with independent scales fanned out across
// a worker pool.
package cwt

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/prophetizo/vectorwave/internal/bufpool"
	"github.com/prophetizo/vectorwave/internal/convolve"
	"github.com/prophetizo/vectorwave/internal/numeric"
	"github.com/prophetizo/vectorwave/internal/schedule"
	"github.com/prophetizo/vectorwave/wavelet/filterbank"
	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

// Result holds an S-by-N coefficient matrix: one row per scale, in the
// same ascending order as the requested scales.
type Result struct {
	Scales       []float64
	Coefficients [][]float64
}

func validateScales(scales []float64) error {
	if len(scales) == 0 {
		return werrors.InvalidFilter
	}
	for i, s := range scales {
		if s <= 0 || !numeric.IsFinite(s) {
			return werrors.InvalidFilter
		}
		if i > 0 && scales[i] <= scales[i-1] {
			return werrors.InvalidFilter
		}
	}
	return nil
}

func validateSignal(x []float64) error {
	if len(x) == 0 || !numeric.AllFinite(x) {
		return werrors.InvalidSignal
	}
	return nil
}

// Transform computes the CWT of x at the given ascending, strictly
// positive scales using kernel as the continuous wavelet generator. Scales
// are processed independently and fanned out across pool; pass nil for
// pool to use a package-default pool sized to GOMAXPROCS. Transform never
// observes cancellation; use TransformWithContext for a cancellable run.
func Transform(x []float64, kernel filterbank.ContinuousKernel, scales []float64, pool *schedule.Pool) (Result, error) {
	return TransformWithContext(context.Background(), x, kernel, scales, pool)
}

// TransformWithContext is Transform with cooperative cancellation: ctx is
// checked before every scale's convolution (the natural block boundary for
// this operation, per each scale being independent work). A cancellation
// observed mid-transform surfaces as werrors.Cancelled; scales already in
// flight still finish, but no further scale is started.
func TransformWithContext(ctx context.Context, x []float64, kernel filterbank.ContinuousKernel, scales []float64, pool *schedule.Pool) (Result, error) {
	if err := validateSignal(x); err != nil {
		return Result{}, err
	}
	if kernel == nil {
		return Result{}, werrors.InvalidFilter
	}
	if err := validateScales(scales); err != nil {
		return Result{}, err
	}
	if pool == nil {
		pool = schedule.NewPool()
	}

	coeffs := make([][]float64, len(scales))
	err := pool.RunBatchWithContext(ctx, len(scales), func(s int) error {
		a := scales[s]
		psi := kernel(a)
		row, err := convolve.Same(x, psi) // psi already carries 1/sqrt(a)
		if err != nil {
			return err
		}
		coeffs[s] = row
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrCancelled):
			return Result{}, werrors.Cancelled
		case errors.Is(err, bufpool.ErrResourceExhausted):
			return Result{}, werrors.ResourceExhaustion
		}
		return Result{}, err
	}

	return Result{Scales: append([]float64(nil), scales...), Coefficients: coeffs}, nil
}

// LogScales returns numScales scales geometrically spaced between min and
// max inclusive, a common default sampling for dyadic-ish CWT analysis.
func LogScales(min, max float64, numScales int) []float64 {
	if numScales <= 0 || min <= 0 || max < min {
		return nil
	}
	if numScales == 1 {
		return []float64{min}
	}
	out := make([]float64, numScales)
	ratio := max / min
	for i := range out {
		frac := float64(i) / float64(numScales-1)
		out[i] = min * math.Pow(ratio, frac)
	}
	sort.Float64s(out)
	return out
}
