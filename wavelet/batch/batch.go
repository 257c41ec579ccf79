// Package batch implements batch MODWT: decomposing B signals of equal
// length N in a single pass by laying them out interleaved (sample-major,
// signal-minor) so the convolution's inner loop over signals maps directly
// onto SIMD lanes, regardless of filter length.
package batch

import (
	"context"

	"github.com/prophetizo/vectorwave/internal/bufpool"
	"github.com/prophetizo/vectorwave/internal/numeric"
	"github.com/prophetizo/vectorwave/internal/schedule"
	"github.com/prophetizo/vectorwave/internal/vecmath"
	"github.com/prophetizo/vectorwave/wavelet/filterbank"
	"github.com/prophetizo/vectorwave/wavelet/modwt"
	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

// tileCheckStride bounds how often correlateInterleavedWithContext checks
// ctx within its t loop, the "batch tile" cancellation boundary: each
// stride of output rows is one tile.
const tileCheckStride = 256

// scratchPool backs the interleaved buffer and the per-call correlation
// output; both are sized N*B and released according to the same
// scratch-vs-escaping-result split used by the modwt package.
var scratchPool = bufpool.NewPool()

// Result holds batch MODWT output: B detail and B approximation slices,
// each of length N, deinterleaved for the caller.
type Result struct {
	Approx [][]float64
	Detail [][]float64
}

// interleave packs B signals of length N into one N*B buffer in
// [sample_0_sig_0 .. sample_0_sig_{B-1}, sample_1_sig_0, ...] order. The
// buffer is pure scratch: correlateInterleaved reads it but the caller
// never sees it, so Forward releases it once both correlation passes
// complete.
func interleave(signals [][]float64) (*bufpool.Buffer, []float64) {
	b := len(signals)
	n := len(signals[0])
	buf, err := scratchPool.Acquire(n * b)
	var out []float64
	if err != nil {
		out = make([]float64, n*b)
	} else {
		out = buf.Data()
	}
	for t := 0; t < n; t++ {
		base := t * b
		for s := 0; s < b; s++ {
			out[base+s] = signals[s][t]
		}
	}
	return buf, out
}

// deinterleave splits an N*B interleaved buffer back into B slices of
// length N. Each slice is a result the caller owns indefinitely, so it is
// acquired but never released here.
func deinterleave(buf []float64, n, b int) [][]float64 {
	out := make([][]float64, b)
	for s := range out {
		bufS, err := scratchPool.Acquire(n)
		if err != nil {
			out[s] = make([]float64, n)
		} else {
			out[s] = bufS.Data()
		}
	}
	for t := 0; t < n; t++ {
		base := t * b
		for s := 0; s < b; s++ {
			out[s][t] = buf[base+s]
		}
	}
	return out
}

func validateBatch(signals [][]float64) (n, b int, err error) {
	b = len(signals)
	if b == 0 {
		return 0, 0, werrors.InvalidSignal
	}
	n = len(signals[0])
	if n == 0 {
		return 0, 0, werrors.InvalidSignal
	}
	for _, s := range signals {
		if len(s) != n {
			return 0, 0, werrors.IncompatibleLength
		}
		if !numeric.AllFinite(s) {
			return 0, 0, werrors.InvalidSignal
		}
	}
	return n, b, nil
}

// Forward runs a single-level MODWT across every signal in one interleaved
// pass.
func Forward(signals [][]float64, f *filterbank.Filters, boundary modwt.Boundary) (Result, error) {
	return ForwardWithMode(signals, f, boundary, schedule.VectorAuto)
}

// ForwardWithMode is Forward with explicit control over the interleaved
// correlation kernel. ScalarOnly always runs the plain loop, VectorForce
// always runs the lane-wise vecmath kernel, and VectorAuto runs the
// vecmath kernel unless the batch is narrower than one AVX2 lane group, in
// which case it runs the plain loop.
func ForwardWithMode(signals [][]float64, f *filterbank.Filters, boundary modwt.Boundary, mode schedule.Mode) (Result, error) {
	return ForwardWithContext(context.Background(), signals, f, boundary, mode)
}

// ForwardWithContext is ForwardWithMode with cooperative cancellation: ctx
// is checked once per tile (tileCheckStride output rows) during each
// correlation pass, the natural block boundary for a single interleaved
// sweep. A cancellation observed mid-tile surfaces as werrors.Cancelled.
func ForwardWithContext(ctx context.Context, signals [][]float64, f *filterbank.Filters, boundary modwt.Boundary, mode schedule.Mode) (Result, error) {
	n, b, err := validateBatch(signals)
	if err != nil {
		return Result{}, err
	}
	if f == nil || len(f.Dec0) == 0 || len(f.Dec0) != len(f.Dec1) {
		return Result{}, werrors.InvalidFilter
	}

	h := modwt.ScaleFilter(f.Dec1) // highpass/wavelet filter -> detail
	g := modwt.ScaleFilter(f.Dec0) // lowpass/scaling filter -> approximation
	bufHandle, buf := interleave(signals)
	defer scratchPool.Release(bufHandle)

	detailHandle, detail, err := correlateInterleaved(ctx, buf, n, b, h, boundary, mode)
	if err != nil {
		scratchPool.Release(detailHandle)
		return Result{}, err
	}
	approxHandle, approx, err := correlateInterleaved(ctx, buf, n, b, g, boundary, mode)
	defer scratchPool.Release(detailHandle)
	defer scratchPool.Release(approxHandle)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Approx: deinterleave(approx, n, b),
		Detail: deinterleave(detail, n, b),
	}, nil
}

// correlateInterleaved computes, for every t, out[t*B:(t+1)*B] =
// sum_l filt[l] * buf[idx(t,l)*B : idx(t,l)*B+B] — the convolution's
// (t,l) loop nest with the signal axis (b) as the innermost, vectorized
// dimension. VectorForce runs the lane-wise vecmath kernel, as does
// VectorAuto once the batch holds at least minLaneBatch signals; ScalarOnly,
// and VectorAuto on a narrower batch, run the equivalent plain loop instead,
// which is also useful for isolating a suspected vecmath bug or measuring
// the kernel's speedup. ctx is checked every tileCheckStride rows of t.
func correlateInterleaved(ctx context.Context, buf []float64, n, b int, filt []float64, boundary modwt.Boundary, mode schedule.Mode) (*bufpool.Buffer, []float64, error) {
	// minLaneBatch is the float64 lane count of the widest vecmath tier
	// (AVX2); a narrower batch fills no lane group.
	const minLaneBatch = 4
	scalar := mode == schedule.ScalarOnly || (mode == schedule.VectorAuto && b < minLaneBatch)
	outHandle, err := scratchPool.Acquire(n * b)
	var out []float64
	if err != nil {
		out = make([]float64, n*b)
	} else {
		out = outHandle.Data()
	}
	for t := 0; t < n; t++ {
		if t%tileCheckStride == 0 {
			select {
			case <-ctx.Done():
				return outHandle, out, werrors.Cancelled
			default:
			}
		}
		dst := out[t*b : (t+1)*b]
		for l, c := range filt {
			idx := t - l
			if boundary == modwt.Periodic {
				idx = ((idx % n) + n) % n
			} else if idx < 0 {
				continue
			}
			src := buf[idx*b : (idx+1)*b]
			if scalar {
				for s := 0; s < b; s++ {
					dst[s] += c * src[s]
				}
			} else {
				vecmath.AddMulBlock(dst, dst, src, c)
			}
		}
	}
	return outHandle, out, nil
}
