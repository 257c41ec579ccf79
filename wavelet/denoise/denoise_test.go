package denoise_test

import (
	"math"
	"testing"

	"github.com/prophetizo/vectorwave/internal/testutil"
	"github.com/prophetizo/vectorwave/wavelet/denoise"
	"github.com/prophetizo/vectorwave/wavelet/filterbank"
	"github.com/prophetizo/vectorwave/wavelet/modwt"
)

type recordingSubscriber struct {
	demand int
	blocks [][]float64
	errs   []error
	closed bool
}

func newRecordingSubscriber(demand int) *recordingSubscriber {
	return &recordingSubscriber{demand: demand}
}

func (s *recordingSubscriber) Request() int { return s.demand }
func (s *recordingSubscriber) OnBlock(block []float64) {
	s.blocks = append(s.blocks, block)
	s.demand--
}
func (s *recordingSubscriber) OnError(err error) { s.errs = append(s.errs, err) }
func (s *recordingSubscriber) OnClose()          { s.closed = true }

func db4() *filterbank.Filters { return filterbank.Lookup(filterbank.Daubechies4).Filters }

func TestDenoiserPublishesOneBlockPerFullWindow(t *testing.T) {
	d, err := denoise.New(denoise.Config{
		BufferSize: 64,
		Wavelet:    db4(),
		Boundary:   modwt.Periodic,
	})
	if err != nil {
		t.Fatal(err)
	}
	sub := newRecordingSubscriber(10)
	d.Subscribe(sub)

	signal := testutil.NoisySine(5, 64, 1, 0.3, 3, 192)
	if err := d.ProcessChunk(signal); err != nil {
		t.Fatal(err)
	}
	if len(sub.blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(sub.blocks))
	}
	for _, b := range sub.blocks {
		if len(b) != 64 {
			t.Errorf("block len = %d, want 64", len(b))
		}
	}
}

func TestDenoiserHoldsBlocksUntilSubscriberRequests(t *testing.T) {
	d, err := denoise.New(denoise.Config{BufferSize: 32, Wavelet: db4(), Boundary: modwt.Periodic})
	if err != nil {
		t.Fatal(err)
	}
	sub := newRecordingSubscriber(0) // no demand yet
	d.Subscribe(sub)

	signal := testutil.NoisySine(5, 64, 1, 0.3, 3, 64)
	if err := d.ProcessChunk(signal); err != nil {
		t.Fatal(err)
	}
	if len(sub.blocks) != 0 {
		t.Fatalf("expected no delivery with zero demand, got %d blocks", len(sub.blocks))
	}

	sub.demand = 5
	if err := d.ProcessChunk(testutil.Ones(32)); err != nil {
		t.Fatal(err)
	}
	if len(sub.blocks) != 3 {
		t.Fatalf("expected queued blocks to flush once demand appears, got %d", len(sub.blocks))
	}
}

func TestDenoiserInvalidSampleClosesStream(t *testing.T) {
	d, err := denoise.New(denoise.Config{BufferSize: 16, Wavelet: db4(), Boundary: modwt.Periodic})
	if err != nil {
		t.Fatal(err)
	}
	sub := newRecordingSubscriber(10)
	d.Subscribe(sub)

	bad := []float64{1, 2, math.NaN(), 4}
	if err := d.ProcessChunk(bad); err == nil {
		t.Fatal("expected error for NaN sample")
	}
	if len(sub.errs) != 1 {
		t.Fatalf("expected exactly one OnError call, got %d", len(sub.errs))
	}

	if err := d.ProcessChunk(testutil.Ones(16)); err == nil {
		t.Fatal("expected StreamClosed after failure")
	}
}

func TestDenoiserCloseNotifiesSubscribers(t *testing.T) {
	d, err := denoise.New(denoise.Config{BufferSize: 8, Wavelet: db4(), Boundary: modwt.Periodic})
	if err != nil {
		t.Fatal(err)
	}
	sub := newRecordingSubscriber(1)
	d.Subscribe(sub)
	d.Close()
	if !sub.closed {
		t.Fatal("expected OnClose to have been called")
	}
}

func TestDenoiserRejectsMissingWavelet(t *testing.T) {
	if _, err := denoise.New(denoise.Config{BufferSize: 16}); err == nil {
		t.Fatal("expected error for missing wavelet")
	}
}

func TestDenoiserReducesNoiseEnergy(t *testing.T) {
	d, err := denoise.New(denoise.Config{
		BufferSize:          128,
		Wavelet:             db4(),
		Boundary:            modwt.Periodic,
		ThresholdMultiplier: 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	sub := newRecordingSubscriber(100)
	d.Subscribe(sub)

	clean := testutil.DeterministicSine(4, 128, 1, 1024)
	noisy := testutil.NoisySine(4, 128, 1, 0.5, 11, 1024)
	if err := d.ProcessChunk(noisy); err != nil {
		t.Fatal(err)
	}

	var noisyErr, denoisedErr float64
	offset := 0
	for _, b := range sub.blocks {
		for i, v := range b {
			ref := clean[offset+i]
			denoisedErr += (v - ref) * (v - ref)
			noisyErr += (noisy[offset+i] - ref) * (noisy[offset+i] - ref)
		}
		offset += len(b)
	}
	if denoisedErr >= noisyErr {
		t.Errorf("denoised error %v should be less than noisy error %v", denoisedErr, noisyErr)
	}
}
