package fft

import (
	"github.com/prophetizo/vectorwave/internal/bufpool"
	"github.com/prophetizo/vectorwave/internal/numeric"
)

// scratchPool is the process-wide, thread-safe aligned buffer pool backing
// this package's Bluestein-path scratch and result allocations, mirroring
// the twiddle cache's process-wide-singleton lifetime.
var scratchPool = bufpool.NewPool()

// Plan is a reusable FFT plan for a fixed transform length. Building a Plan
// for a non-power-of-two length precomputes the Bluestein chirp and its
// spectrum once; Forward/Inverse on that Plan amortize that cost across
// every call.
type Plan struct {
	n          int
	bluestein  *bluesteinPlan
	isPowerOf2 bool
}

// NewPlan builds a Plan for transforms of length n.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	if numeric.IsPow2(n) {
		return &Plan{n: n, isPowerOf2: true}, nil
	}
	bp, err := newBluesteinPlan(n)
	if err != nil {
		return nil, err
	}
	return &Plan{n: n, bluestein: bp}, nil
}

// Len returns the transform length this plan was built for.
func (p *Plan) Len() int { return p.n }

// Forward computes the length-n forward DFT of x in place for power-of-two
// plans, or into an aligned buffer acquired from scratchPool for Bluestein
// plans (the chirp convolution needs scratch space regardless). The
// returned slice always holds the result; for power-of-two plans it
// aliases x. A Bluestein-path result is a slice of a pooled buffer that is
// never released back to scratchPool; the caller simply owns the slice.
func (p *Plan) Forward(x []complex128) ([]complex128, error) {
	if len(x) != p.n {
		return nil, ErrInvalidLength
	}
	if p.isPowerOf2 {
		radix2(x, false)
		return x, nil
	}
	buf, err := scratchPool.AcquireComplex(p.n)
	if err != nil {
		return nil, err
	}
	out := buf.Data()
	if err := p.bluestein.forward(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Inverse computes the length-n inverse DFT (with 1/n scaling applied).
func (p *Plan) Inverse(x []complex128) ([]complex128, error) {
	if len(x) != p.n {
		return nil, ErrInvalidLength
	}
	if p.isPowerOf2 {
		radix2(x, true)
		scale := complex(1/float64(p.n), 0)
		for i := range x {
			x[i] *= scale
		}
		return x, nil
	}
	buf, err := scratchPool.AcquireComplex(p.n)
	if err != nil {
		return nil, err
	}
	out := buf.Data()
	if err := p.bluestein.inverse(x, out); err != nil {
		return nil, err
	}
	return out, nil
}
