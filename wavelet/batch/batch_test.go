package batch_test

import (
	"math"
	"testing"

	"github.com/prophetizo/vectorwave/internal/testutil"
	"github.com/prophetizo/vectorwave/wavelet/batch"
	"github.com/prophetizo/vectorwave/wavelet/filterbank"
	"github.com/prophetizo/vectorwave/wavelet/modwt"
	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

func db4() *filterbank.Filters { return filterbank.Lookup(filterbank.Daubechies4).Filters }

func TestBatchMatchesPerSignalForward(t *testing.T) {
	const n = 256
	signals := [][]float64{
		testutil.DeterministicSine(3, 64, 1, n),
		testutil.DeterministicSine(7, 64, 0.5, n),
		testutil.DeterministicNoise(9, 1, n),
		testutil.Ramp(n),
		testutil.DC(2, n),
	}
	got, err := batch.Forward(signals, db4(), modwt.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range signals {
		want, err := modwt.Forward(s, db4(), modwt.Periodic)
		if err != nil {
			t.Fatal(err)
		}
		for j := range want.Detail {
			if d := math.Abs(got.Detail[i][j] - want.Detail[j]); d > 1e-9 {
				t.Fatalf("signal %d index %d: detail diff %v too large", i, j, d)
			}
			if d := math.Abs(got.Approx[i][j] - want.Approx[j]); d > 1e-9 {
				t.Fatalf("signal %d index %d: approx diff %v too large", i, j, d)
			}
		}
	}
}

func TestBatchSingleSignalTailFallback(t *testing.T) {
	// A batch of 1 signal exercises the "batch smaller than lane width"
	// path end to end.
	signals := [][]float64{testutil.DeterministicSine(5, 100, 1, 128)}
	got, err := batch.Forward(signals, db4(), modwt.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Detail) != 1 || len(got.Detail[0]) != 128 {
		t.Fatalf("unexpected shape: %d signals, len %d", len(got.Detail), len(got.Detail[0]))
	}
}

func TestBatchRejectsMismatchedLengths(t *testing.T) {
	signals := [][]float64{
		testutil.Ramp(64),
		testutil.Ramp(32),
	}
	if _, err := batch.Forward(signals, db4(), modwt.Periodic); err != werrors.IncompatibleLength {
		t.Errorf("err = %v, want IncompatibleLength", err)
	}
}

func TestBatchRejectsEmptyBatch(t *testing.T) {
	if _, err := batch.Forward(nil, db4(), modwt.Periodic); err != werrors.InvalidSignal {
		t.Errorf("err = %v, want InvalidSignal", err)
	}
}
