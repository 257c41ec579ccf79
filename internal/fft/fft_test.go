package fft_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/prophetizo/vectorwave/internal/fft"
)

// bruteForceDFT is the textbook O(n^2) definition, used only as a
// reference oracle for the fast-path implementations under test.
func bruteForceDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += x[t] * cmplx.Rect(1, angle)
		}
		out[k] = sum
	}
	return out
}

func maxComplexDiff(a, b []complex128) float64 {
	var maxDiff float64
	for i := range a {
		d := cmplx.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

func TestForwardMatchesBruteForcePow2(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 64, 256} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(math.Sin(float64(i)*0.7), math.Cos(float64(i)*0.3))
		}
		want := bruteForceDFT(x)

		p, err := fft.NewPlan(n)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}
		got := make([]complex128, n)
		copy(got, x)
		got, err = p.Forward(got)
		if err != nil {
			t.Fatalf("Forward: %v", err)
		}
		if d := maxComplexDiff(got, want); d > 1e-8 {
			t.Errorf("n=%d: max diff %v too large", n, d)
		}
	}
}

func TestForwardMatchesBruteForceArbitraryLength(t *testing.T) {
	for _, n := range []int{3, 5, 6, 7, 11, 13, 100, 101} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(float64(i%5)-2, float64((i*3)%7)-3)
		}
		want := bruteForceDFT(x)

		p, err := fft.NewPlan(n)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}
		got, err := p.Forward(append([]complex128(nil), x...))
		if err != nil {
			t.Fatalf("Forward: %v", err)
		}
		if d := maxComplexDiff(got, want); d > 1e-6 {
			t.Errorf("n=%d: max diff %v too large", n, d)
		}
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 15, 32, 97, 256} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(float64(i)*0.5-1, float64(i%3))
		}
		p, err := fft.NewPlan(n)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}
		spectrum, err := p.Forward(append([]complex128(nil), x...))
		if err != nil {
			t.Fatalf("Forward: %v", err)
		}
		back, err := p.Inverse(append([]complex128(nil), spectrum...))
		if err != nil {
			t.Fatalf("Inverse: %v", err)
		}
		if d := maxComplexDiff(back, x); d > 1e-6 {
			t.Errorf("n=%d: round-trip diff %v too large", n, d)
		}
	}
}

func TestRealPlanRoundTrip(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 64, 128, 1, 3, 5, 9, 17} {
		x := make([]float64, n)
		for i := range x {
			x[i] = math.Sin(float64(i)*0.9) + 0.3*float64(i%4)
		}
		rp, err := fft.NewRealPlan(n)
		if err != nil {
			t.Fatalf("NewRealPlan(%d): %v", n, err)
		}
		spectrum, err := rp.Forward(x)
		if err != nil {
			t.Fatalf("Forward: %v", err)
		}
		if len(spectrum) != n/2+1 {
			t.Fatalf("n=%d: spectrum len = %d, want %d", n, len(spectrum), n/2+1)
		}
		back, err := rp.Inverse(spectrum)
		if err != nil {
			t.Fatalf("Inverse: %v", err)
		}
		var maxDiff float64
		for i := range x {
			if d := math.Abs(x[i] - back[i]); d > maxDiff {
				maxDiff = d
			}
		}
		if maxDiff > 1e-6 {
			t.Errorf("n=%d: round-trip max diff %v too large", n, maxDiff)
		}
	}
}

func TestRealPlanMatchesComplexHalfSpectrum(t *testing.T) {
	n := 32
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(float64(i) * 0.4)
	}
	z := make([]complex128, n)
	for i, v := range x {
		z[i] = complex(v, 0)
	}
	want := bruteForceDFT(z)[:n/2+1]

	rp, err := fft.NewRealPlan(n)
	if err != nil {
		t.Fatal(err)
	}
	got, err := rp.Forward(x)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxComplexDiff(got, want); d > 1e-8 {
		t.Errorf("max diff %v too large", d)
	}
}

func TestNewPlanRejectsNonPositiveLength(t *testing.T) {
	if _, err := fft.NewPlan(0); err != fft.ErrInvalidLength {
		t.Errorf("NewPlan(0) err = %v, want ErrInvalidLength", err)
	}
	if _, err := fft.NewPlan(-4); err != fft.ErrInvalidLength {
		t.Errorf("NewPlan(-4) err = %v, want ErrInvalidLength", err)
	}
}

func TestForwardRejectsLengthMismatch(t *testing.T) {
	p, err := fft.NewPlan(8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Forward(make([]complex128, 4)); err != fft.ErrInvalidLength {
		t.Errorf("err = %v, want ErrInvalidLength", err)
	}
}
