package cwt_test

import (
	"math"
	"testing"

	"github.com/prophetizo/vectorwave/internal/testutil"
	"github.com/prophetizo/vectorwave/wavelet/cwt"
	"github.com/prophetizo/vectorwave/wavelet/filterbank"
	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

func morlet() filterbank.ContinuousKernel {
	return filterbank.Lookup(filterbank.Morlet).Kernel
}

func TestTransformShape(t *testing.T) {
	x := testutil.DeterministicSine(5, 200, 1, 512)
	scales := cwt.LogScales(1, 32, 8)
	res, err := cwt.Transform(x, morlet(), scales, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Coefficients) != len(scales) {
		t.Fatalf("rows = %d, want %d", len(res.Coefficients), len(scales))
	}
	for i, row := range res.Coefficients {
		if len(row) != len(x) {
			t.Errorf("row %d len = %d, want %d", i, len(row), len(x))
		}
	}
}

func TestChirpRidgeTracksInstantaneousFrequency(t *testing.T) {
	const sampleRate = 500.0
	x := testutil.Chirp(5, 60, sampleRate, 1000)
	scales := cwt.LogScales(1, 40, 30)
	res, err := cwt.Transform(x, morlet(), scales, nil)
	if err != nil {
		t.Fatal(err)
	}

	// at an early time index the dominant scale should be larger
	// (lower frequency) than at a late time index.
	earlyScale := dominantScale(res, 50)
	lateScale := dominantScale(res, 900)
	if earlyScale <= lateScale {
		t.Errorf("expected chirp ridge to move to smaller scales over time: early=%v late=%v", earlyScale, lateScale)
	}
}

func dominantScale(res cwt.Result, t int) float64 {
	best := 0
	bestMag := 0.0
	for s, row := range res.Coefficients {
		if m := math.Abs(row[t]); m > bestMag {
			bestMag = m
			best = s
		}
	}
	return res.Scales[best]
}

func TestLogScalesAscendingAndBounded(t *testing.T) {
	scales := cwt.LogScales(2, 64, 10)
	if len(scales) != 10 {
		t.Fatalf("len = %d, want 10", len(scales))
	}
	if math.Abs(scales[0]-2) > 1e-9 {
		t.Errorf("scales[0] = %v, want 2", scales[0])
	}
	if math.Abs(scales[len(scales)-1]-64) > 1e-9 {
		t.Errorf("scales[last] = %v, want 64", scales[len(scales)-1])
	}
	for i := 1; i < len(scales); i++ {
		if scales[i] <= scales[i-1] {
			t.Fatalf("scales not strictly ascending at %d", i)
		}
	}
}

func TestTransformRejectsNonAscendingScales(t *testing.T) {
	x := testutil.Ones(64)
	_, err := cwt.Transform(x, morlet(), []float64{4, 2, 8}, nil)
	if err != werrors.InvalidFilter {
		t.Errorf("err = %v, want InvalidFilter", err)
	}
}

func TestTransformRejectsEmptySignal(t *testing.T) {
	_, err := cwt.Transform(nil, morlet(), []float64{1, 2}, nil)
	if err != werrors.InvalidSignal {
		t.Errorf("err = %v, want InvalidSignal", err)
	}
}
