// Package schedule implements the bounded worker pool that fans CWT scale
// rows out across goroutines, gated by an
// admission threshold below which fan-out isn't worth its coordination
// overhead.
package schedule

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrCancelled is returned by RunBatchWithContext when ctx is cancelled
// before or during the batch. The wavelet package boundary translates this
// to werrors.Cancelled.
var ErrCancelled = errors.New("schedule: cancelled")

// Mode selects whether and how vectorized kernels are dispatched.
type Mode int

const (
	// ScalarOnly forces every operation through the generic scalar path,
	// regardless of what the running CPU supports.
	ScalarOnly Mode = iota
	// VectorAuto lets each operation pick the best registered
	// implementation for the detected CPU (the default).
	VectorAuto
	// VectorForce takes the lane-wise vecmath kernel regardless of size
	// thresholds; that kernel runs the best registered tier, which may be
	// the generic one, so VectorForce never returns an error of its own.
	VectorForce
)

// DefaultParallelThreshold is the item count below which RunBatch executes
// inline on the caller's goroutine rather than paying fan-out overhead.
const DefaultParallelThreshold = 4

// Pool bounds fan-out to P = min(availableParallelism, requestedParallelism)
// worker goroutines. The Pool can be reused across calls to RunBatch; each
// fanned-out call starts its own workers and waits for them to exit.
type Pool struct {
	parallelism int
	threshold   int
}

// Option configures a Pool.
type Option func(*Pool)

// WithParallelism caps the pool at n workers (clamped to
// runtime.GOMAXPROCS(0) if n is larger or non-positive).
func WithParallelism(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.parallelism = n
		}
	}
}

// WithThreshold overrides the admission threshold below which work runs
// inline instead of fanning out.
func WithThreshold(n int) Option {
	return func(p *Pool) {
		if n >= 0 {
			p.threshold = n
		}
	}
}

// NewPool builds a Pool. With no options it uses runtime.GOMAXPROCS(0)
// workers and DefaultParallelThreshold.
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		parallelism: runtime.GOMAXPROCS(0),
		threshold:   DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(p)
	}
	if avail := runtime.GOMAXPROCS(0); p.parallelism > avail {
		p.parallelism = avail
	}
	if p.parallelism < 1 {
		p.parallelism = 1
	}
	return p
}

// RunBatch calls fn(i) for every i in [0, n). Below the pool's admission
// threshold it runs inline on the caller's goroutine in index order and
// returns the first error at once, skipping the remaining indices. At or
// above it, work is striped across min(parallelism, n) worker goroutines;
// a worker whose fn call fails skips the rest of its stripe while the other
// workers carry on. After all workers finish, RunBatch returns the error of
// the lowest-numbered worker that failed.
func (p *Pool) RunBatch(n int, fn func(i int) error) error {
	return p.RunBatchWithContext(context.Background(), n, fn)
}

// RunBatchWithContext is RunBatch with cooperative cancellation: ctx is
// checked once before admission and, in both the inline and fanned-out
// paths, before every item. A cancellation observed mid-batch still lets
// already-dispatched items finish; it only stops new ones from starting.
func (p *Pool) RunBatchWithContext(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ErrCancelled
	default:
	}
	if n < p.threshold {
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return ErrCancelled
			default:
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	workers := p.parallelism
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	errs := make([]error, workers)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				select {
				case <-ctx.Done():
					errs[w] = ErrCancelled
					return
				default:
				}
				if err := fn(i); err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Parallelism returns the worker count this pool fans out to.
func (p *Pool) Parallelism() int { return p.parallelism }

// Threshold returns the admission threshold below which RunBatch runs
// inline.
func (p *Pool) Threshold() int { return p.threshold }
