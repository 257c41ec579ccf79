// Package registry provides the implementation registry for vecmath operations.
//
// The registry-based dispatch system allows multiple implementation variants
// (generic, SSE2, AVX2, NEON) to coexist. The best implementation for the
// current CPU is selected once, at first use, and cached.
//
// Architecture-specific implementations register themselves via init()
// functions; the vecmath package uses the registry to select the best
// implementation at runtime based on detected CPU features.
package registry

import (
	"sync"

	"github.com/prophetizo/vectorwave/internal/cpu"
)

// OpEntry represents a registered implementation variant for vecmath operations.
//
// Every field must be populated by a conforming implementation: Lookup selects
// one entry per CPU tier, not one function per field, so a partially populated
// entry would silently panic on first use of the missing operation.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	AddBlock          func(dst, a, b []float64)
	AddBlockInPlace   func(dst, src []float64)
	MulBlock          func(dst, a, b []float64)
	MulBlockInPlace   func(dst, src []float64)
	ScaleBlock        func(dst, src []float64, scalar float64)
	ScaleBlockInPlace func(dst []float64, scalar float64)
	AddMulBlock       func(dst, a, b []float64, scalar float64)
	MulAddBlock       func(dst, a, b, c []float64)
	MaxAbs            func(x []float64) float64
	Sum               func(x []float64) float64
	DotProduct        func(a, b []float64) float64
	Magnitude         func(dst, re, im []float64)
	Power             func(dst, re, im []float64)
}

// OpRegistry manages registration and lookup of vecmath implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default registry instance used by all vecmath operations.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// Typically called from init() functions in architecture-specific packages.
// Safe to call concurrently, but all registrations should complete before
// the first call to Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the highest-priority entry compatible with the given CPU
// features. Returns nil only if no generic fallback was registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}
	return nil
}

// sortByPriority sorts entries by priority, descending. Must be called with
// r.mu held. The registry holds a handful of entries, so insertion sort is
// simpler than sort.Slice and avoids pulling in another allocation.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// Intended for testing and introspection.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
