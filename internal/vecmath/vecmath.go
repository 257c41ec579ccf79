// Package vecmath provides block-wise float64 arithmetic with automatic
// dispatch to the best available SIMD tier for the current CPU.
//
// Every exported function forwards to a single OpEntry selected once per
// process from the registry (see internal/vecmath/registry) and cached.
// Architecture-specific tiers register themselves via blank imports in the
// init_*.go files; this file never imports an arch package directly, so the
// set of available tiers is determined entirely by build tags.
package vecmath

import (
	"sync"

	"github.com/prophetizo/vectorwave/internal/cpu"
	"github.com/prophetizo/vectorwave/internal/vecmath/registry"
)

var (
	activeOnce  sync.Once
	activeMu    sync.RWMutex
	activeEntry *registry.OpEntry
)

// activate selects and caches the best implementation for the current CPU.
// Safe for concurrent use; re-runs only if ResetDispatch is called (tests).
func activate() *registry.OpEntry {
	activeOnce.Do(func() {
		entry := registry.Global.Lookup(cpu.DetectFeatures())
		if entry == nil {
			panic("vecmath: no implementation registered (generic must always be present)")
		}
		activeMu.Lock()
		activeEntry = entry
		activeMu.Unlock()
	})
	activeMu.RLock()
	defer activeMu.RUnlock()
	return activeEntry
}

// ResetDispatch forces re-selection of the active implementation on next use.
// Intended for tests that toggle cpu.SetForcedFeatures.
func ResetDispatch() {
	activeMu.Lock()
	activeEntry = nil
	activeMu.Unlock()
	activeOnce = sync.Once{}
}

// ActiveImplementation returns the name of the implementation tier currently
// dispatched to (e.g. "avx2", "neon", "generic").
func ActiveImplementation() string {
	return activate().Name
}

// AddBlock computes dst[i] = a[i] + b[i]. Slices must have equal length.
func AddBlock(dst, a, b []float64) { activate().AddBlock(dst, a, b) }

// AddBlockInPlace computes dst[i] += src[i]. Slices must have equal length.
func AddBlockInPlace(dst, src []float64) { activate().AddBlockInPlace(dst, src) }

// MulBlock computes dst[i] = a[i] * b[i]. Slices must have equal length.
func MulBlock(dst, a, b []float64) { activate().MulBlock(dst, a, b) }

// MulBlockInPlace computes dst[i] *= src[i]. Slices must have equal length.
func MulBlockInPlace(dst, src []float64) { activate().MulBlockInPlace(dst, src) }

// ScaleBlock computes dst[i] = src[i] * scalar.
func ScaleBlock(dst, src []float64, scalar float64) { activate().ScaleBlock(dst, src, scalar) }

// ScaleBlockInPlace computes dst[i] *= scalar.
func ScaleBlockInPlace(dst []float64, scalar float64) { activate().ScaleBlockInPlace(dst, scalar) }

// AddMulBlock computes dst[i] = a[i] + b[i]*scalar.
func AddMulBlock(dst, a, b []float64, scalar float64) {
	activate().AddMulBlock(dst, a, b, scalar)
}

// MulAddBlock computes dst[i] = a[i]*b[i] + c[i].
func MulAddBlock(dst, a, b, c []float64) { activate().MulAddBlock(dst, a, b, c) }

// MaxAbs returns max(|x[i]|), or 0 for an empty slice.
func MaxAbs(x []float64) float64 { return activate().MaxAbs(x) }

// Sum returns the sum of all elements in x.
func Sum(x []float64) float64 { return activate().Sum(x) }

// DotProduct returns sum(a[i] * b[i]) over the shared prefix of a and b.
func DotProduct(a, b []float64) float64 { return activate().DotProduct(a, b) }

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im []float64) { activate().Magnitude(dst, re, im) }

// Power computes dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im []float64) { activate().Power(dst, re, im) }
