package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Ramp generates [0, 1, 2, ..., length-1].
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Chirp generates a linear frequency sweep from f0 to f1 Hz over the given
// duration, sampled at sampleRate. Used to exercise time-scale locality in
// CWT tests: the ridge of maximum coefficient magnitude should track the
// instantaneous frequency.
func Chirp(f0, f1, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	duration := float64(length) / sampleRate
	k := (f1 - f0) / duration // chirp rate, Hz/s
	for i := range out {
		t := float64(i) / sampleRate
		phase := 2 * math.Pi * (f0*t + 0.5*k*t*t)
		out[i] = math.Sin(phase)
	}
	return out
}

// NoisySine generates a deterministic sine wave with additive Gaussian noise
// of the given standard deviation, reproducible for a fixed seed.
func NoisySine(freqHz, sampleRate, amplitude, noiseStdDev float64, seed int64, length int) []float64 {
	out := DeterministicSine(freqHz, sampleRate, amplitude, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] += rng.NormFloat64() * noiseStdDev
	}
	return out
}
