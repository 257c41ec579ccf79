package vecmath_test

import (
	"math"
	"testing"

	"github.com/prophetizo/vectorwave/internal/cpu"
	"github.com/prophetizo/vectorwave/internal/vecmath"
)

func withForcedFeatures(t *testing.T, f cpu.Features) {
	t.Helper()
	cpu.SetForcedFeatures(f)
	vecmath.ResetDispatch()
	t.Cleanup(func() {
		cpu.ResetDetection()
		vecmath.ResetDispatch()
	})
}

func TestAddBlockMatchesAcrossTiers(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7}
	b := []float64{7, 6, 5, 4, 3, 2, 1}
	want := []float64{8, 8, 8, 8, 8, 8, 8}

	tiers := []cpu.Features{
		{ForceGeneric: true},
		{HasSSE2: true},
		{HasSSE2: true, HasAVX2: true},
		{HasNEON: true},
	}
	for _, f := range tiers {
		withForcedFeatures(t, f)
		dst := make([]float64, len(a))
		vecmath.AddBlock(dst, a, b)
		for i := range dst {
			if dst[i] != want[i] {
				t.Fatalf("tier %+v: AddBlock[%d] = %v, want %v", f, i, dst[i], want[i])
			}
		}
	}
}

func TestMaxAbsOddLength(t *testing.T) {
	withForcedFeatures(t, cpu.Features{ForceGeneric: true})
	x := []float64{-1, 2, -9, 4, 0.5}
	if got := vecmath.MaxAbs(x); got != 9 {
		t.Fatalf("MaxAbs = %v, want 9", got)
	}
}

func TestDotProductShorterPrefix(t *testing.T) {
	withForcedFeatures(t, cpu.Features{ForceGeneric: true})
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 1, 1}
	if got, want := vecmath.DotProduct(a, b), 6.0; got != want {
		t.Fatalf("DotProduct = %v, want %v", got, want)
	}
}

func TestMagnitudePower(t *testing.T) {
	withForcedFeatures(t, cpu.Features{ForceGeneric: true})
	re := []float64{3, 0}
	im := []float64{4, 5}
	mag := make([]float64, 2)
	pow := make([]float64, 2)
	vecmath.Magnitude(mag, re, im)
	vecmath.Power(pow, re, im)
	if math.Abs(mag[0]-5) > 1e-12 || math.Abs(mag[1]-5) > 1e-12 {
		t.Fatalf("Magnitude = %v", mag)
	}
	if pow[0] != 9 || pow[1] != 25 {
		t.Fatalf("Power = %v", pow)
	}
}
