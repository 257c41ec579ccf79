// Package threshold implements the coefficient shrinkage rules applied to
// MODWT detail coefficients during denoising: soft/hard thresholding, and
// the universal, SURE, and minimax rules for choosing lambda.
package threshold

import (
	"math"
	"sort"

	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

// Soft applies y = sign(x) * max(0, |x| - lambda) to every element of x,
// returning a new slice.
func Soft(x []float64, lambda float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		mag := math.Abs(v) - lambda
		if mag <= 0 {
			out[i] = 0
			continue
		}
		if v < 0 {
			out[i] = -mag
		} else {
			out[i] = mag
		}
	}
	return out
}

// Hard applies y = x if |x| > lambda, else 0.
func Hard(x []float64, lambda float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if math.Abs(v) > lambda {
			out[i] = v
		}
	}
	return out
}

// MAD returns the median absolute deviation of x about zero: median(|x|).
// Detail coefficients from a wavelet decomposition are (approximately)
// zero-mean, so the noise estimators below use median(|x|) directly rather
// than re-centering.
func MAD(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, werrors.InvalidSignal
	}
	abs := make([]float64, len(x))
	for i, v := range x {
		abs[i] = math.Abs(v)
	}
	return median(abs), nil
}

func median(x []float64) float64 {
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// EstimateSigma estimates the noise standard deviation from the finest
// detail level via sigma = median(|W_1|) / 0.6745, the standard MAD-based
// estimator for Gaussian noise (0.6745 is the Gaussian's median absolute
// deviation about zero, so this is a consistent estimator of sigma under
// the additive white Gaussian noise model).
func EstimateSigma(detail []float64) (float64, error) {
	m, err := MAD(detail)
	if err != nil {
		return 0, err
	}
	return m / 0.6745, nil
}

// Universal returns the universal threshold sigma*sqrt(2*ln(n)).
func Universal(sigma float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return sigma * math.Sqrt(2*math.Log(float64(n)))
}

// Minimax returns the minimax threshold, an empirical fit (Donoho &
// Johnstone 1994) that minimizes worst-case MSE risk relative to an oracle,
// for n above a few dozen samples; below that it falls back to 0.
func Minimax(sigma float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	fn := float64(n)
	var lambda float64
	switch {
	case fn <= 32:
		lambda = 0
	default:
		lambda = 0.3936 + 0.1829*math.Log(fn)/math.Ln2
	}
	return sigma * lambda
}

// SURE returns the threshold in [0, sigma*sqrt(2*ln(n))] that minimizes
// Stein's Unbiased Risk Estimate over the observed coefficients x
// (assumed already variance-normalized by sigma internally).
func SURE(x []float64, sigma float64) float64 {
	n := len(x)
	if n == 0 || sigma == 0 {
		return 0
	}
	normalized := make([]float64, n)
	for i, v := range x {
		normalized[i] = v / sigma
	}
	abs := make([]float64, n)
	for i, v := range normalized {
		abs[i] = math.Abs(v)
	}
	sort.Float64s(abs)

	universal := math.Sqrt(2 * math.Log(float64(n)))
	bestLambda := universal
	bestRisk := math.Inf(1)

	for _, candidate := range abs {
		risk := sureRisk(normalized, candidate, n)
		if risk < bestRisk {
			bestRisk = risk
			bestLambda = candidate
		}
	}
	if bestLambda > universal {
		bestLambda = universal
	}
	return bestLambda * sigma
}

// sureRisk evaluates SURE(lambda) = n - 2*#{|x_i|<=lambda} + sum(min(x_i^2, lambda^2)).
func sureRisk(x []float64, lambda float64, n int) float64 {
	risk := float64(n)
	for _, v := range x {
		av := math.Abs(v)
		if av <= lambda {
			risk -= 2
		}
		m := av * av
		if m > lambda*lambda {
			m = lambda * lambda
		}
		risk += m
	}
	return risk
}
