// Package denoise implements a streaming MODWT denoiser: samples arrive
// in arbitrary-sized chunks, are assembled into fixed-size windows via a
// ring buffer, decomposed, thresholded against a running noise estimate,
// and reconstructed into denoised blocks published to subscribers.
package denoise

import (
	"context"

	"github.com/prophetizo/vectorwave/internal/numeric"
	"github.com/prophetizo/vectorwave/wavelet/filterbank"
	"github.com/prophetizo/vectorwave/wavelet/modwt"
	"github.com/prophetizo/vectorwave/wavelet/threshold"
	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

// minNoiseWindow is the spec-mandated floor on Config.NoiseWindow: an EMA
// smoothing window shorter than this reacts to single-block noise spikes
// instead of tracking a stable sigma estimate.
const minNoiseWindow = 32

// Config configures a Denoiser.
type Config struct {
	BufferSize          int
	Wavelet             *filterbank.Filters
	Boundary            modwt.Boundary
	Levels              int // 0 defaults to 1 (single-level)
	ThresholdMultiplier float64
	NoiseWindow         int // EMA smoothing window, in blocks
	Hard                bool // use hard thresholding instead of soft
}

// Denoiser holds the running state of one streaming denoising session.
// A Denoiser publishes blocks to its subscribers synchronously within
// ProcessChunk: publication is single-threaded for a given instance, and
// a Denoiser itself must not be shared across goroutines without external
// synchronization.
type Denoiser struct {
	cfg    Config
	ring   *ringBuffer
	sigma  float64
	subs   []*subscription
	closed bool
}

// New constructs a Denoiser. Wavelet and BufferSize are required;
// BufferSize must be at least as long as the wavelet's filter (a window
// shorter than the filter support can't be decomposed); NoiseWindow, if
// given, must be at least minNoiseWindow blocks and otherwise defaults to
// it; ThresholdMultiplier, if given, must be non-negative and otherwise
// defaults to 1. Levels defaults to 1 (single-level) if left zero.
func New(cfg Config) (*Denoiser, error) {
	if cfg.Wavelet == nil || len(cfg.Wavelet.Dec0) == 0 {
		return nil, werrors.InvalidFilter
	}
	if cfg.BufferSize <= 0 || cfg.BufferSize < len(cfg.Wavelet.Dec0) {
		return nil, werrors.InvalidSignal
	}
	if cfg.Levels <= 0 {
		cfg.Levels = 1
	}
	if cfg.ThresholdMultiplier < 0 {
		return nil, werrors.InvalidFilter
	}
	if cfg.ThresholdMultiplier == 0 {
		cfg.ThresholdMultiplier = 1
	}
	if cfg.NoiseWindow != 0 && cfg.NoiseWindow < minNoiseWindow {
		return nil, werrors.InvalidSignal
	}
	if cfg.NoiseWindow == 0 {
		cfg.NoiseWindow = minNoiseWindow
	}
	return &Denoiser{cfg: cfg, ring: newRingBuffer(cfg.BufferSize)}, nil
}

// Subscribe registers a Subscriber to receive future published blocks. It
// does not replay blocks published before the call.
func (d *Denoiser) Subscribe(sub Subscriber) {
	d.subs = append(d.subs, &subscription{sub: sub})
}

// ProcessChunk appends samples to the internal ring buffer, draining and
// publishing one denoised block each time a full window accumulates. A
// NaN or infinite sample anywhere in samples fails the whole call with
// InvalidSignal, notifies every subscriber's OnError, and closes the
// stream. ProcessChunk never observes cancellation; use
// ProcessChunkWithContext for a cancellable call.
func (d *Denoiser) ProcessChunk(samples []float64) error {
	return d.ProcessChunkWithContext(context.Background(), samples)
}

// ProcessChunkWithContext is ProcessChunk with cooperative cancellation:
// ctx is checked before processing every streaming window (one per full
// ring-buffer drain), the natural block boundary for this operation. A
// cancellation mid-chunk surfaces as werrors.Cancelled and closes the
// stream exactly like any other terminal error.
func (d *Denoiser) ProcessChunkWithContext(ctx context.Context, samples []float64) error {
	if d.closed {
		return werrors.StreamClosed
	}
	if !numeric.AllFinite(samples) {
		return d.fail(werrors.InvalidSignal)
	}
	for _, s := range samples {
		d.ring.Push(s)
		if d.ring.Full() {
			select {
			case <-ctx.Done():
				return d.fail(werrors.Cancelled)
			default:
			}
			if err := d.drainAndPublish(); err != nil {
				return d.fail(err)
			}
		}
	}
	return nil
}

// Close ends the stream cleanly, notifying every subscriber's OnClose.
func (d *Denoiser) Close() {
	if d.closed {
		return
	}
	d.closed = true
	for _, s := range d.subs {
		s.sub.OnClose()
	}
}

func (d *Denoiser) fail(err error) error {
	d.closed = true
	for _, s := range d.subs {
		s.sub.OnError(err)
	}
	return err
}

func (d *Denoiser) drainAndPublish() error {
	window := make([]float64, d.cfg.BufferSize)
	d.ring.DrainWindow(window)

	result, err := modwt.Decompose(window, d.cfg.Wavelet, d.cfg.Boundary, d.cfg.Levels)
	if err != nil {
		return err
	}

	sigma, err := threshold.EstimateSigma(result.Levels[0].Detail)
	if err != nil {
		return err
	}
	d.updateSigma(sigma)
	lambda := d.sigma * d.cfg.ThresholdMultiplier

	for i := range result.Levels {
		if d.cfg.Hard {
			result.Levels[i].Detail = threshold.Hard(result.Levels[i].Detail, lambda)
		} else {
			result.Levels[i].Detail = threshold.Soft(result.Levels[i].Detail, lambda)
		}
	}

	denoised, err := modwt.Reconstruct(result, d.cfg.Wavelet, d.cfg.Boundary)
	if err != nil {
		return err
	}
	d.publish(denoised)
	return nil
}

// updateSigma folds the latest block's MAD-based noise estimate into an
// exponential moving average with smoothing window NoiseWindow blocks.
// FlushDenormals guards the recursive update: once sigma decays toward a
// quiet signal's near-zero noise floor, the EMA would otherwise keep
// multiplying subnormal residues indefinitely.
func (d *Denoiser) updateSigma(sigma float64) {
	if d.sigma == 0 {
		d.sigma = numeric.FlushDenormals(sigma)
		return
	}
	alpha := 2.0 / (float64(d.cfg.NoiseWindow) + 1)
	d.sigma = numeric.FlushDenormals(alpha*sigma + (1-alpha)*d.sigma)
}

func (d *Denoiser) publish(block []float64) {
	for _, s := range d.subs {
		s.enqueue(block)
		s.drain()
	}
}

// Sigma returns the current noise standard deviation estimate.
func (d *Denoiser) Sigma() float64 { return d.sigma }
