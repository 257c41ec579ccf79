package fft

import "math/bits"

// bitReverse permutes x into bit-reversed order in place. n must be a power
// of two.
func bitReverse(x []complex128) {
	n := len(x)
	shift := bits.UintSize - bits.TrailingZeros(uint(n))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse(uint(i)) >> shift)
		if j > i {
			x[i], x[j] = x[j], x[i]
		}
	}
}

// radix2 runs an iterative decimation-in-time Cooley-Tukey FFT on x in
// place. inverse selects the conjugated twiddle direction; it does not
// apply the 1/n scaling (callers normalize after, see Plan.Inverse).
func radix2(x []complex128, inverse bool) {
	n := len(x)
	if n <= 1 {
		return
	}
	bitReverse(x)
	tw := twiddlesFor(n)
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				w := tw[k*stride]
				if inverse {
					w = complex(real(w), -imag(w))
				}
				a := x[start+k]
				b := x[start+k+half] * w
				x[start+k] = a + b
				x[start+k+half] = a - b
			}
		}
	}
}
