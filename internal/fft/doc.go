// Package fft implements the complex and real fast Fourier transforms used
// by the CWT scale convolutions and by the FFT-dispatch path of MODWT.
//
// Plan.Forward/Inverse take a caller-supplied complex128 slice.
// Power-of-two lengths run in place with an iterative radix-2 Cooley-Tukey
// kernel and a process-wide twiddle-factor cache; arbitrary lengths fall
// back to Bluestein's chirp-z transform, built on the same radix-2 kernel,
// which writes its result to a separate pooled buffer. RealPlan.Forward and
// RealPlan.Inverse exploit the conjugate symmetry of a real-valued signal's
// spectrum to do an even length-N real transform with one length-N/2
// complex transform (odd N uses a full length-N complex Plan).
package fft
