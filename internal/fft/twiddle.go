package fft

import (
	"math"
	"math/cmplx"
	"sync/atomic"
)

// twiddleCache holds, for every power-of-two n seen so far, the n/2
// forward-direction twiddle factors e^{-2*pi*i*k/n}. It is shared by every
// Plan in the process; entries are immutable once published, so readers
// never lock. Updates install a whole new map via a compare-and-swap,
// giving the cache wait-free reads at the cost of an occasional copy on a
// cold size.
var twiddleCache atomic.Value // *map[int][]complex128

func init() {
	m := make(map[int][]complex128)
	twiddleCache.Store(&m)
}

func twiddlesFor(n int) []complex128 {
	if m := twiddleCache.Load().(*map[int][]complex128); m != nil {
		if t, ok := (*m)[n]; ok {
			return t
		}
	}
	t := make([]complex128, n/2)
	for k := range t {
		theta := -2 * math.Pi * float64(k) / float64(n)
		t[k] = cmplx.Rect(1, theta)
	}
	for {
		old := twiddleCache.Load().(*map[int][]complex128)
		if existing, ok := (*old)[n]; ok {
			return existing
		}
		updated := make(map[int][]complex128, len(*old)+1)
		for k, v := range *old {
			updated[k] = v
		}
		updated[n] = t
		if twiddleCache.CompareAndSwap(old, &updated) {
			return t
		}
	}
}
