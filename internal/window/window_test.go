package window_test

import (
	"math"
	"testing"

	"github.com/prophetizo/vectorwave/internal/window"
)

func TestHannEndpointsZero(t *testing.T) {
	w, err := window.Generate(window.TypeHann, 64)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w[0]) > 1e-9 {
		t.Errorf("w[0] = %v, want ~0", w[0])
	}
	if math.Abs(w[len(w)-1]) > 1e-9 {
		t.Errorf("w[last] = %v, want ~0", w[len(w)-1])
	}
}

func TestRectangularIsAllOnes(t *testing.T) {
	w, err := window.Generate(window.TypeRectangular, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range w {
		if v != 1 {
			t.Errorf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestTukeyAlphaZeroIsRectangular(t *testing.T) {
	w, err := window.Generate(window.TypeTukey, 32, window.WithAlpha(0))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range w {
		if v != 1 {
			t.Errorf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestKaiserCenterIsMax(t *testing.T) {
	w, err := window.Generate(window.TypeKaiser, 65, window.WithAlpha(8))
	if err != nil {
		t.Fatal(err)
	}
	mid := w[32]
	for i, v := range w {
		if v > mid+1e-12 {
			t.Errorf("w[%d] = %v exceeds center %v", i, v, mid)
		}
	}
}

func TestApplyLengthMismatch(t *testing.T) {
	err := window.Apply(make([]float64, 4), make([]float64, 5))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateRejectsInvalidSize(t *testing.T) {
	if _, err := window.Generate(window.TypeHann, 0); err == nil {
		t.Fatal("expected error")
	}
}
