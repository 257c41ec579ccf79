package denoise

// Subscriber receives denoised blocks from a Denoiser in strict arrival
// order. Request reports how many additional blocks the subscriber is
// currently willing to accept; the Denoiser queries it before each
// delivery attempt and queues blocks the subscriber isn't ready for
// instead of dropping them, so slow subscribers apply back-pressure
// without losing data.
type Subscriber interface {
	// Request returns the subscriber's current remaining demand. It is
	// consulted before every delivery attempt; the subscriber is
	// responsible for decrementing its own count as OnBlock is called.
	Request() int
	// OnBlock delivers one denoised block.
	OnBlock(block []float64)
	// OnError delivers a terminal error; no further OnBlock or OnError
	// calls follow for this subscriber.
	OnError(err error)
	// OnClose signals a clean end of stream; no further calls follow.
	OnClose()
}

type subscription struct {
	sub    Subscriber
	outbox [][]float64
}

func (s *subscription) enqueue(block []float64) {
	s.outbox = append(s.outbox, block)
}

func (s *subscription) drain() {
	for len(s.outbox) > 0 && s.sub.Request() > 0 {
		next := s.outbox[0]
		s.outbox = s.outbox[1:]
		s.sub.OnBlock(next)
	}
}
