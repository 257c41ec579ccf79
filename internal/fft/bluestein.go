package fft

import (
	"math"
	"math/cmplx"

	"github.com/prophetizo/vectorwave/internal/numeric"
)

// bluesteinPlan evaluates an arbitrary-length DFT as a power-of-two-sized
// convolution (Bluestein's chirp-z transform), reusing the radix-2 kernel
// as its only FFT primitive.
type bluesteinPlan struct {
	n     int
	m     int // convolution size, a power of two >= 2n-1
	chirp []complex128
	bFreq []complex128 // FFT of the chirp convolution kernel, precomputed
}

func newBluesteinPlan(n int) (*bluesteinPlan, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	m := numeric.NextPow2(2*n - 1)

	chirp := make([]complex128, n)
	for k := 0; k < n; k++ {
		// k*k reduced mod 2n (the chirp's period) keeps the angle
		// argument from growing unbounded for large k.
		angle := math.Pi * float64((k*k)%(2*n)) / float64(n)
		chirp[k] = cmplx.Rect(1, -angle)
	}

	b := make([]complex128, m)
	b[0] = complex(1, 0)
	for k := 1; k < n; k++ {
		conjChirp := cmplx.Conj(chirp[k])
		b[k] = conjChirp
		b[m-k] = conjChirp
	}
	bFreq := make([]complex128, m)
	copy(bFreq, b)
	radix2(bFreq, false)

	return &bluesteinPlan{n: n, m: m, chirp: chirp, bFreq: bFreq}, nil
}

// forward evaluates the chirp-z convolution. a is pure scratch: acquired
// from scratchPool, fully consumed here, and released before return.
func (p *bluesteinPlan) forward(x []complex128, out []complex128) error {
	aBuf, err := scratchPool.AcquireComplex(p.m)
	if err != nil {
		return err
	}
	defer scratchPool.ReleaseComplex(aBuf)
	a := aBuf.Data()
	for i := 0; i < p.n; i++ {
		a[i] = x[i] * p.chirp[i]
	}
	radix2(a, false)
	for i := range a {
		a[i] *= p.bFreq[i]
	}
	radix2(a, true)
	scale := 1 / float64(p.m)
	for k := 0; k < p.n; k++ {
		out[k] = a[k] * complex(scale, 0) * p.chirp[k]
	}
	return nil
}

func (p *bluesteinPlan) inverse(x []complex128, out []complex128) error {
	conjBuf, err := scratchPool.AcquireComplex(p.n)
	if err != nil {
		return err
	}
	defer scratchPool.ReleaseComplex(conjBuf)
	conj := conjBuf.Data()
	for i, v := range x {
		conj[i] = cmplx.Conj(v)
	}
	if err := p.forward(conj, out); err != nil {
		return err
	}
	scale := 1 / float64(p.n)
	for k := range out {
		out[k] = cmplx.Conj(out[k]) * complex(scale, 0)
	}
	return nil
}
