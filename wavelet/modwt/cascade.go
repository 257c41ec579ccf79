package modwt

import (
	"github.com/prophetizo/vectorwave/internal/schedule"
	"github.com/prophetizo/vectorwave/wavelet/filterbank"
	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

// Level holds one level's detail coefficients plus its cached energy.
type Level struct {
	Detail []float64
	Energy float64
}

// MultiLevelResult is a full pyramidal MODWT decomposition: J detail
// levels plus the final approximation, each of length N.
type MultiLevelResult struct {
	Levels       []Level
	Approx       []float64
	ApproxEnergy float64
	TotalEnergy  float64
}

// MaxLevel returns floor(log2(N/(L-1))), the deepest level a cascade can
// run to before the upsampled filter support exceeds the signal length.
func MaxLevel(n, filterLen int) int {
	if filterLen <= 1 || n <= 0 {
		return 0
	}
	j := 0
	for {
		support := (filterLen-1)*(1<<uint(j)) + 1
		if support > n {
			break
		}
		j++
	}
	if j == 0 {
		return 0
	}
	return j - 1
}

// upsampleFilter inserts 2^(level-1)-1 zeros between each tap of h, the
// "algorithme a trous" filter dilation the cascade uses in place of
// decimation at each successive level.
func upsampleFilter(h []float64, level int) []float64 {
	if level <= 1 {
		return h
	}
	step := 1 << uint(level-1)
	out := make([]float64, (len(h)-1)*step+1)
	for i, v := range h {
		out[i*step] = v
	}
	return out
}

// Decompose runs the cascade for exactly `levels` levels (1..MaxLevel).
func Decompose(x []float64, f *filterbank.Filters, boundary Boundary, levels int) (MultiLevelResult, error) {
	return DecomposeWithMode(x, f, boundary, levels, schedule.VectorAuto)
}

// DecomposeWithMode is Decompose with explicit control over kernel
// dispatch at every level; see ForwardWithMode.
func DecomposeWithMode(x []float64, f *filterbank.Filters, boundary Boundary, levels int, mode schedule.Mode) (MultiLevelResult, error) {
	if err := validateSignal(x); err != nil {
		return MultiLevelResult{}, err
	}
	if err := validateFilters(f); err != nil {
		return MultiLevelResult{}, err
	}
	if levels <= 0 || levels > MaxLevel(len(x), len(f.Dec0))+1 {
		return MultiLevelResult{}, werrors.InvalidFilter
	}

	h := modwtScale(f.Dec1) // highpass/wavelet filter -> detail
	g := modwtScale(f.Dec0) // lowpass/scaling filter -> approximation
	total := EnergyOf(x)

	result := MultiLevelResult{TotalEnergy: total}
	vPrev := x
	for j := 1; j <= levels; j++ {
		hj := upsampleFilter(h, j)
		gj := upsampleFilter(g, j)
		detail := correlate(vPrev, hj, boundary, mode)
		approx := correlate(vPrev, gj, boundary, mode)
		result.Levels = append(result.Levels, Level{Detail: detail, Energy: EnergyOf(detail)})
		vPrev = approx
	}
	result.Approx = vPrev
	result.ApproxEnergy = EnergyOf(vPrev)
	return result, nil
}

// DecomposeAdaptive runs the cascade level by level, stopping as soon as a
// level's detail energy fraction of the total drops below minEnergyFrac
// (or maxLevels is reached, whichever comes first).
func DecomposeAdaptive(x []float64, f *filterbank.Filters, boundary Boundary, minEnergyFrac float64, maxLevels int) (MultiLevelResult, error) {
	return DecomposeAdaptiveWithMode(x, f, boundary, minEnergyFrac, maxLevels, schedule.VectorAuto)
}

// DecomposeAdaptiveWithMode is DecomposeAdaptive with explicit control over
// kernel dispatch at every level; see ForwardWithMode.
func DecomposeAdaptiveWithMode(x []float64, f *filterbank.Filters, boundary Boundary, minEnergyFrac float64, maxLevels int, mode schedule.Mode) (MultiLevelResult, error) {
	if err := validateSignal(x); err != nil {
		return MultiLevelResult{}, err
	}
	if err := validateFilters(f); err != nil {
		return MultiLevelResult{}, err
	}
	levelCap := MaxLevel(len(x), len(f.Dec0)) + 1
	if maxLevels <= 0 || maxLevels > levelCap {
		maxLevels = levelCap
	}

	h := modwtScale(f.Dec1) // highpass/wavelet filter -> detail
	g := modwtScale(f.Dec0) // lowpass/scaling filter -> approximation
	total := EnergyOf(x)
	if total == 0 {
		total = 1
	}

	result := MultiLevelResult{TotalEnergy: EnergyOf(x)}
	vPrev := x
	for j := 1; j <= maxLevels; j++ {
		hj := upsampleFilter(h, j)
		gj := upsampleFilter(g, j)
		detail := correlate(vPrev, hj, boundary, mode)
		approx := correlate(vPrev, gj, boundary, mode)
		energy := EnergyOf(detail)
		result.Levels = append(result.Levels, Level{Detail: detail, Energy: energy})
		vPrev = approx
		if energy/total < minEnergyFrac {
			break
		}
	}
	result.Approx = vPrev
	result.ApproxEnergy = EnergyOf(vPrev)
	return result, nil
}

// Reconstruct inverts a full MultiLevelResult back to the original signal.
func Reconstruct(r MultiLevelResult, f *filterbank.Filters, boundary Boundary) ([]float64, error) {
	return ReconstructFrom(r, f, boundary, 0)
}

// ReconstructFrom reconstructs the signal using only levels k+1..J (a
// denoising primitive: passing k > 0 discards the k finest detail levels).
func ReconstructFrom(r MultiLevelResult, f *filterbank.Filters, boundary Boundary, k int) ([]float64, error) {
	if err := validateFilters(f); err != nil {
		return nil, err
	}
	if k < 0 || k > len(r.Levels) {
		return nil, werrors.IncompatibleLength
	}
	h := modwtScale(f.Dec1) // highpass/wavelet filter, pairs with Detail
	g := modwtScale(f.Dec0) // lowpass/scaling filter, pairs with Approx

	v := r.Approx
	for j := len(r.Levels); j >= 1; j-- {
		hj := upsampleFilter(h, j)
		gj := upsampleFilter(g, j)
		detail := r.Levels[j-1].Detail
		if j <= k {
			detail = make([]float64, len(v))
		}
		var err error
		v, err = inverseLevel(detail, v, hj, gj, boundary)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// inverseLevel inverts a single cascade step given its (possibly
// zero-masked) detail, its approximation, and the upsampled filter pair.
func inverseLevel(detail, approx, h, g []float64, boundary Boundary) ([]float64, error) {
	if len(detail) != len(approx) {
		return nil, werrors.IncompatibleLength
	}
	n := len(approx)
	out := make([]float64, n)
	for t := 0; t < n; t++ {
		var sum float64
		for l := range h {
			idx := t + l
			if boundary == Periodic {
				idx %= n
			} else if idx >= n {
				continue
			}
			sum += h[l]*detail[idx] + g[l]*approx[idx]
		}
		out[t] = sum
	}
	return out, nil
}
