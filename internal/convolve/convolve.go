package convolve

import (
	"errors"
	"math"

	"github.com/prophetizo/vectorwave/internal/bufpool"
	"github.com/prophetizo/vectorwave/internal/fft"
	"github.com/prophetizo/vectorwave/internal/numeric"
)

// ErrEmptyInput is returned when either operand of a convolution is empty.
var ErrEmptyInput = errors.New("convolve: empty input")

// scratchPool backs this package's zero-padded operand and product buffers,
// all of which are fully consumed within a single Linear call.
var scratchPool = bufpool.NewPool()

// Linear returns the full linear convolution of x and h, length
// len(x)+len(h)-1, computed via zero-padded real FFTs.
func Linear(x, h []float64) ([]float64, error) {
	if len(x) == 0 || len(h) == 0 {
		return nil, ErrEmptyInput
	}
	outLen := len(x) + len(h) - 1
	m := numeric.NextPow2(outLen)

	xpBuf, err := scratchPool.Acquire(m)
	if err != nil {
		return nil, err
	}
	defer scratchPool.Release(xpBuf)
	xp := xpBuf.Data()
	copy(xp, x)

	hpBuf, err := scratchPool.Acquire(m)
	if err != nil {
		return nil, err
	}
	defer scratchPool.Release(hpBuf)
	hp := hpBuf.Data()
	copy(hp, h)

	plan, err := fft.NewRealPlan(m)
	if err != nil {
		return nil, err
	}
	X, err := plan.Forward(xp)
	if err != nil {
		return nil, err
	}
	H, err := plan.Forward(hp)
	if err != nil {
		return nil, err
	}

	prodBuf, err := scratchPool.AcquireComplex(len(X))
	if err != nil {
		return nil, err
	}
	defer scratchPool.ReleaseComplex(prodBuf)
	prod := prodBuf.Data()
	for i := range prod {
		prod[i] = X[i] * H[i]
	}
	full, err := plan.Inverse(prod)
	if err != nil {
		return nil, err
	}
	return full[:outLen], nil
}

// Same convolves x and h and trims the result to len(x), centered on the
// kernel the way "same" convolution is conventionally defined: out[i]
// corresponds to the full convolution at index i + (len(h)-1)/2.
func Same(x, h []float64) ([]float64, error) {
	full, err := Linear(x, h)
	if err != nil {
		return nil, err
	}
	offset := (len(h) - 1) / 2
	out := make([]float64, len(x))
	for i := range out {
		if idx := i + offset; idx < len(full) {
			out[i] = full[idx]
		}
	}
	return out, nil
}

// ScaleNormalized performs Same convolution and divides the result by
// sqrt(scale), the normalization the CWT applies so coefficient magnitude
// is comparable across scales (L2-normalized daughter wavelets).
func ScaleNormalized(x, kernel []float64, scale float64) ([]float64, error) {
	out, err := Same(x, kernel)
	if err != nil {
		return nil, err
	}
	norm := 1 / math.Sqrt(scale)
	for i := range out {
		out[i] *= norm
	}
	return out, nil
}
