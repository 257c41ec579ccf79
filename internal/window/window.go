// Package window generates tapering windows for suppressing edge
// artifacts in finite-length signals. No other package in this module
// applies them: CWT kernels are truncated without a taper, and the
// streaming denoiser publishes whole blocks without overlap-add.
package window

import "math"

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeTukey
	TypeKaiser
)

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64 // Tukey taper fraction, or Kaiser beta
	periodic bool    // periodic (FFT) form instead of symmetric form
}

func defaultConfig() config {
	return config{alpha: 0.5}
}

// WithAlpha sets the Tukey taper fraction (0..1) or Kaiser beta.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// WithPeriodic requests the periodic (N, not N-1, denominator) form used
// when the window will be fed straight into an FFT frame.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns a window of the given type and size.
func Generate(t Type, size int, opts ...Option) ([]float64, error) {
	if size <= 0 {
		return nil, errInvalidSize
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	denom := float64(size - 1)
	if cfg.periodic {
		denom = float64(size)
	}
	if denom == 0 {
		denom = 1
	}

	out := make([]float64, size)
	switch t {
	case TypeRectangular:
		for i := range out {
			out[i] = 1
		}
	case TypeHann:
		for i := range out {
			out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/denom)
		}
	case TypeHamming:
		for i := range out {
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/denom)
		}
	case TypeBlackman:
		for i := range out {
			phase := 2 * math.Pi * float64(i) / denom
			out[i] = 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
		}
	case TypeTukey:
		generateTukey(out, cfg.alpha)
	case TypeKaiser:
		generateKaiser(out, cfg.alpha)
	default:
		return nil, errUnknownType
	}
	return out, nil
}

func generateTukey(out []float64, alpha float64) {
	n := len(out)
	if alpha <= 0 {
		for i := range out {
			out[i] = 1
		}
		return
	}
	if alpha >= 1 {
		hann, _ := Generate(TypeHann, n)
		copy(out, hann)
		return
	}
	taper := int(alpha * float64(n-1) / 2)
	for i := range out {
		switch {
		case i < taper:
			out[i] = 0.5 * (1 + math.Cos(math.Pi*(float64(i)/float64(taper)-1)))
		case i >= n-taper:
			out[i] = 0.5 * (1 + math.Cos(math.Pi*(float64(i-(n-1-taper))/float64(taper))))
		default:
			out[i] = 1
		}
	}
}

func generateKaiser(out []float64, beta float64) {
	n := len(out)
	if n == 1 {
		out[0] = 1
		return
	}
	denom := besselI0(beta)
	alpha := float64(n-1) / 2
	for i := range out {
		r := (float64(i) - alpha) / alpha
		out[i] = besselI0(beta*math.Sqrt(1-r*r)) / denom
	}
}

// besselI0 evaluates the zeroth-order modified Bessel function via its
// power series, accurate enough for window generation (terms decay
// factorially; 24 terms covers beta well beyond any practical taper).
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	halfX := x / 2
	for k := 1; k <= 24; k++ {
		term *= (halfX * halfX) / (float64(k) * float64(k))
		sum += term
	}
	return sum
}

// Apply multiplies signal by a window of matching length in place.
func Apply(signal, w []float64) error {
	if len(signal) != len(w) {
		return errLengthMismatch
	}
	for i := range signal {
		signal[i] *= w[i]
	}
	return nil
}
