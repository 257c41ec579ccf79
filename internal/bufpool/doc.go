// Package bufpool provides a cache-aligned buffer pool for the MODWT/CWT
// hot paths: float64 buffers via Acquire/Release, and complex128 buffers
// via AcquireComplex/ReleaseComplex for the FFT kernel's scratch spectra.
//
// Every buffer returned is aligned to a 64-byte boundary (the common
// cache-line and wide-SIMD-register width) and zero-initialized. Buffers
// are bucketed by exact element count: Acquire(n) only ever reuses a
// buffer previously released at the same n, trading a little memory
// headroom for O(1) bucket lookup and no internal fragmentation. The
// float64 and complex128 bucket sets are independent, keyed by the same
// element count but never confused with each other.
//
// A Pool is safe for concurrent use from multiple goroutines (each bucket
// is guarded by its own mutex, so unrelated sizes never contend). NewPool
// returns such a shared-mode pool. NewLocalPool returns a Pool with the
// identical API intended for exclusive use by a single goroutine (a
// streaming denoiser instance, say): callers accept the obligation not to
// share it, in exchange for uncontended bucket access.
package bufpool
