package filterbank

import "math"

// normalize rescales h so that sum(h[i]^2) == 1, guaranteeing the
// orthonormality invariant exactly regardless of the precision of the
// literal coefficients it was built from.
func normalize(h []float64) []float64 {
	var sumSq float64
	for _, v := range h {
		sumSq += v * v
	}
	norm := 1 / math.Sqrt(sumSq)
	out := make([]float64, len(h))
	for i, v := range h {
		out[i] = v * norm
	}
	return out
}

// quadratureMirror derives the highpass decomposition filter from the
// lowpass scaling filter: h1[l] = (-1)^l * h0[L-1-l].
func quadratureMirror(h0 []float64) []float64 {
	l := len(h0)
	h1 := make([]float64, l)
	for i := range h1 {
		sign := 1.0
		if i%2 != 0 {
			sign = -1.0
		}
		h1[i] = sign * h0[l-1-i]
	}
	return h1
}

// reverse returns a new slice with h's elements in reverse order.
func reverse(h []float64) []float64 {
	out := make([]float64, len(h))
	for i, v := range h {
		out[len(h)-1-i] = v
	}
	return out
}

// orthogonalFilters builds a full Filters quadruple for an orthogonal
// wavelet from its scaling filter alone: the reconstruction filters are
// the time-reversed decomposition filters, and the highpass decomposition
// filter is the scaling filter's quadrature mirror.
func orthogonalFilters(h0 []float64) *Filters {
	dec0 := normalize(h0)
	dec1 := quadratureMirror(dec0)
	return &Filters{
		Dec0: dec0,
		Dec1: dec1,
		Rec0: reverse(dec0),
		Rec1: reverse(dec1),
	}
}
