package bufpool

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrResourceExhausted is returned by Acquire when the requested buffer
// cannot be allocated (e.g. the element count overflows int or exceeds the
// pool's configured sanity ceiling).
var ErrResourceExhausted = errors.New("bufpool: allocation failed")

// defaultMaxElements bounds a single Acquire call so a corrupt or adversarial
// length request fails fast with ErrResourceExhausted instead of attempting
// a multi-gigabyte allocation.
const defaultMaxElements = 1 << 34

// defaultMaxPerBucket caps how many free buffers a single size bucket
// retains; excess Release calls are simply dropped (left for GC).
const defaultMaxPerBucket = 64

type bucket struct {
	mu   sync.Mutex
	free []*Buffer
}

type complexBucket struct {
	mu   sync.Mutex
	free []*ComplexBuffer
}

// Pool is a bucketed, size-exact cache of aligned float64 buffers, plus a
// parallel bucket set for the complex128 scratch buffers the FFT kernel
// needs. Both share the same hit/miss/occupancy counters reported by Stats.
//
// The zero value is not usable; construct with NewPool or NewLocalPool.
type Pool struct {
	mu             sync.RWMutex
	buckets        map[int]*bucket
	complexBuckets map[int]*complexBucket
	maxPerBucket   int
	maxElements    int

	hits, misses uint64
	pooledBytes  int64
}

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithMaxPerBucket overrides how many free buffers a size bucket retains
// before Release starts dropping the buffers it is handed.
func WithMaxPerBucket(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.maxPerBucket = n
		}
	}
}

// WithMaxElements overrides the sanity ceiling on a single Acquire request.
func WithMaxElements(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.maxElements = n
		}
	}
}

func newPool(opts ...Option) *Pool {
	p := &Pool{
		buckets:        make(map[int]*bucket),
		complexBuckets: make(map[int]*complexBucket),
		maxPerBucket:   defaultMaxPerBucket,
		maxElements:    defaultMaxElements,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPool returns a Pool safe for concurrent use by any number of
// goroutines. Contention is limited to goroutines contending on the same
// bucket (i.e. requesting the same element count).
func NewPool(opts ...Option) *Pool { return newPool(opts...) }

// NewLocalPool returns a Pool with identical semantics to NewPool, intended
// for exclusive ownership by a single goroutine (for example, one streaming
// denoiser instance). Using a local pool avoids any cross-goroutine lock
// contention at all, at the cost of the caller's discipline not to share it.
func NewLocalPool(opts ...Option) *Pool { return newPool(opts...) }

func (p *Pool) getBucket(n int) *bucket {
	p.mu.RLock()
	b, ok := p.buckets[n]
	p.mu.RUnlock()
	if ok {
		return b
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok = p.buckets[n]; ok {
		return b
	}
	b = &bucket{}
	p.buckets[n] = b
	return b
}

// Acquire returns a 64-byte-aligned, zeroed buffer of exactly n elements.
// It preferentially reuses a previously released buffer from the same size
// bucket; on a miss it allocates a new one.
func (p *Pool) Acquire(n int) (*Buffer, error) {
	if n < 0 {
		return nil, ErrResourceExhausted
	}
	if n > p.maxElements {
		return nil, ErrResourceExhausted
	}
	b := p.getBucket(n)
	b.mu.Lock()
	if k := len(b.free); k > 0 {
		buf := b.free[k-1]
		b.free = b.free[:k-1]
		b.mu.Unlock()
		atomic.AddUint64(&p.hits, 1)
		atomic.AddInt64(&p.pooledBytes, -buf.byteFootprint())
		Zero(buf.data)
		return buf, nil
	}
	b.mu.Unlock()
	atomic.AddUint64(&p.misses, 1)
	return newAligned(n), nil
}

// Release returns buf to its size bucket for reuse. Passing nil is a no-op.
// Once released, the caller must not retain references to buf.Data().
func (p *Pool) Release(buf *Buffer) {
	if buf == nil {
		return
	}
	b := p.getBucket(buf.bucket)
	b.mu.Lock()
	if len(b.free) >= p.maxPerBucket {
		b.mu.Unlock()
		return
	}
	b.free = append(b.free, buf)
	b.mu.Unlock()
	atomic.AddInt64(&p.pooledBytes, buf.byteFootprint())
}

func (p *Pool) getComplexBucket(n int) *complexBucket {
	p.mu.RLock()
	b, ok := p.complexBuckets[n]
	p.mu.RUnlock()
	if ok {
		return b
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok = p.complexBuckets[n]; ok {
		return b
	}
	b = &complexBucket{}
	p.complexBuckets[n] = b
	return b
}

// AcquireComplex returns a 64-byte-aligned, zeroed complex128 buffer of
// exactly n elements, for the FFT kernel's Bluestein and scratch-spectrum
// allocations. Semantics otherwise mirror Acquire.
func (p *Pool) AcquireComplex(n int) (*ComplexBuffer, error) {
	if n < 0 {
		return nil, ErrResourceExhausted
	}
	if n > p.maxElements {
		return nil, ErrResourceExhausted
	}
	b := p.getComplexBucket(n)
	b.mu.Lock()
	if k := len(b.free); k > 0 {
		buf := b.free[k-1]
		b.free = b.free[:k-1]
		b.mu.Unlock()
		atomic.AddUint64(&p.hits, 1)
		atomic.AddInt64(&p.pooledBytes, -buf.byteFootprint())
		ZeroComplex(buf.data)
		return buf, nil
	}
	b.mu.Unlock()
	atomic.AddUint64(&p.misses, 1)
	return newAlignedComplex(n), nil
}

// ReleaseComplex returns buf to its size bucket for reuse. Passing nil is a
// no-op. Once released, the caller must not retain references to buf.Data().
func (p *Pool) ReleaseComplex(buf *ComplexBuffer) {
	if buf == nil {
		return
	}
	b := p.getComplexBucket(buf.bucket)
	b.mu.Lock()
	if len(b.free) >= p.maxPerBucket {
		b.mu.Unlock()
		return
	}
	b.free = append(b.free, buf)
	b.mu.Unlock()
	atomic.AddInt64(&p.pooledBytes, buf.byteFootprint())
}

// Clear drops every free buffer held by the pool, releasing them to the
// garbage collector. In-flight (acquired, not yet released) buffers are
// unaffected.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.buckets {
		b.mu.Lock()
		b.free = nil
		b.mu.Unlock()
	}
	for _, b := range p.complexBuckets {
		b.mu.Lock()
		b.free = nil
		b.mu.Unlock()
	}
	atomic.StoreInt64(&p.pooledBytes, 0)
}

// Zero sets every element of data to 0. Exposed so callers can re-zero a
// buffer they've partially reused without a round-trip through the pool.
func Zero(data []float64) {
	for i := range data {
		data[i] = 0
	}
}

// Stats reports pool occupancy and hit/miss counters, primarily for tests
// and diagnostics.
type Stats struct {
	Hits, Misses        uint64
	PooledBytes         int64
	BucketCounts        map[int]int
	ComplexBucketCounts map[int]int
}

// Stats returns a snapshot of the pool's current state.
func (p *Pool) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	counts := make(map[int]int, len(p.buckets))
	for n, b := range p.buckets {
		b.mu.Lock()
		counts[n] = len(b.free)
		b.mu.Unlock()
	}
	complexCounts := make(map[int]int, len(p.complexBuckets))
	for n, b := range p.complexBuckets {
		b.mu.Lock()
		complexCounts[n] = len(b.free)
		b.mu.Unlock()
	}
	return Stats{
		Hits:                atomic.LoadUint64(&p.hits),
		Misses:              atomic.LoadUint64(&p.misses),
		PooledBytes:         atomic.LoadInt64(&p.pooledBytes),
		BucketCounts:        counts,
		ComplexBucketCounts: complexCounts,
	}
}
