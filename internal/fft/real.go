package fft

import (
	"math"
	"math/cmplx"
)

// RealPlan computes the forward/inverse FFT of real-valued signals,
// exploiting conjugate symmetry so a length-n real transform costs one
// length-n/2 complex transform (n even) instead of a full length-n one.
type RealPlan struct {
	n        int
	half     *Plan // nil when n is odd or n < 2; falls back to a full Plan
	full     *Plan
	twiddleN []complex128 // e^{-2*pi*i*k/n} for k=0..n/2, used to unpack
}

// NewRealPlan builds a RealPlan for signals of length n.
func NewRealPlan(n int) (*RealPlan, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	rp := &RealPlan{n: n}
	if n%2 == 0 && n >= 2 {
		half, err := NewPlan(n / 2)
		if err != nil {
			return nil, err
		}
		rp.half = half
		rp.twiddleN = make([]complex128, n/2+1)
		for k := range rp.twiddleN {
			rp.twiddleN[k] = cmplx.Rect(1, -2*math.Pi*float64(k)/float64(n))
		}
		return rp, nil
	}
	full, err := NewPlan(n)
	if err != nil {
		return nil, err
	}
	rp.full = full
	return rp, nil
}

// Forward returns the non-redundant half spectrum X[0..n/2] of a real
// length-n signal (X[n/2] is the Nyquist bin when n is even).
func (rp *RealPlan) Forward(x []float64) ([]complex128, error) {
	if len(x) != rp.n {
		return nil, ErrInvalidLength
	}
	if rp.full != nil {
		z := make([]complex128, rp.n)
		for i, v := range x {
			z[i] = complex(v, 0)
		}
		full, err := rp.full.Forward(z)
		if err != nil {
			return nil, err
		}
		return full[:rp.n/2+1], nil
	}

	half := rp.n / 2
	z := make([]complex128, half)
	for i := 0; i < half; i++ {
		z[i] = complex(x[2*i], x[2*i+1])
	}
	Z, err := rp.half.Forward(z)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, half+1)
	for k := 0; k <= half; k++ {
		kk := k % half
		nk := (half - k) % half
		zk := Z[kk]
		zc := cmplx.Conj(Z[nk])
		even := (zk + zc) / 2
		odd := (zk - zc) * complex(0, -0.5)
		out[k] = even + odd*rp.twiddleN[k]
	}
	return out, nil
}

// Inverse reconstructs the length-n real signal from its half spectrum
// (as produced by Forward).
func (rp *RealPlan) Inverse(halfSpectrum []complex128) ([]float64, error) {
	if len(halfSpectrum) != rp.n/2+1 {
		return nil, ErrInvalidLength
	}
	if rp.full != nil {
		full := make([]complex128, rp.n)
		copy(full, halfSpectrum)
		for k := 1; k < rp.n-len(halfSpectrum)+1; k++ {
			full[rp.n-k] = cmplx.Conj(halfSpectrum[k])
		}
		z, err := rp.full.Inverse(full)
		if err != nil {
			return nil, err
		}
		out := make([]float64, rp.n)
		for i, v := range z {
			out[i] = real(v)
		}
		return out, nil
	}

	half := rp.n / 2
	z := make([]complex128, half)

	// k=0 and k=half (Nyquist) both reduce to Z[0]'s real/imaginary parts.
	e0 := (halfSpectrum[0] + halfSpectrum[half]) / 2
	o0 := (halfSpectrum[0] - halfSpectrum[half]) / 2
	z[0] = e0 + complex(0, 1)*o0

	for k := 1; k < half; k++ {
		xk := halfSpectrum[k]
		xnkConj := cmplx.Conj(halfSpectrum[half-k])
		ek := (xk + xnkConj) / 2
		ok := (xk - xnkConj) / (2 * rp.twiddleN[k])
		z[k] = ek + complex(0, 1)*ok
	}

	zt, err := rp.half.Inverse(z)
	if err != nil {
		return nil, err
	}
	out := make([]float64, rp.n)
	for i := 0; i < half; i++ {
		out[2*i] = real(zt[i])
		out[2*i+1] = imag(zt[i])
	}
	return out, nil
}
