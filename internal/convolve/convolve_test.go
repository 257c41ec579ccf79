package convolve_test

import (
	"math"
	"testing"

	"github.com/prophetizo/vectorwave/internal/convolve"
)

func naiveLinear(x, h []float64) []float64 {
	out := make([]float64, len(x)+len(h)-1)
	for i := range x {
		for j := range h {
			out[i+j] += x[i] * h[j]
		}
	}
	return out
}

func TestLinearMatchesNaive(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}
	h := []float64{1, -1, 0.5}
	want := naiveLinear(x, h)
	got, err := convolve.Linear(x, h)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSameLength(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = math.Sin(float64(i) * 0.2)
	}
	h := []float64{0.25, 0.5, 0.25}
	out, err := convolve.Same(x, h)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(x) {
		t.Fatalf("len = %d, want %d", len(out), len(x))
	}
}

func TestScaleNormalizedDividesByRootScale(t *testing.T) {
	x := make([]float64, 32)
	x[0] = 1
	h := []float64{1, 1, 1, 1}
	plain, err := convolve.Same(x, h)
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := convolve.ScaleNormalized(x, h, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range plain {
		want := plain[i] / 2.0 // sqrt(4)
		if math.Abs(scaled[i]-want) > 1e-9 {
			t.Errorf("index %d: got %v, want %v", i, scaled[i], want)
		}
	}
}

func TestEmptyInputRejected(t *testing.T) {
	if _, err := convolve.Linear(nil, []float64{1}); err != convolve.ErrEmptyInput {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
	if _, err := convolve.Linear([]float64{1}, nil); err != convolve.ErrEmptyInput {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}
