// Package filterbank holds the global, read-only registry mapping
// enumerated wavelet names to their filter quadruples (or, for continuous
// wavelets, their analytic kernel generators).
package filterbank

// Transform identifies which transform family a wavelet entry supports.
type Transform int

const (
	// MODWTOnly marks a discrete orthogonal/biorthogonal wavelet usable by
	// the MODWT operators but without a continuous kernel.
	MODWTOnly Transform = iota
	// CWTOnly marks a continuous wavelet with no discrete filter pair.
	CWTOnly
	// Both marks a wavelet usable by either transform family.
	Both
)

// Name enumerates the wavelets the registry recognizes. Lookup by Name is
// infallible; lookup by string goes through Parse and can fail with
// werrors.UnknownWavelet.
type Name int

const (
	Haar Name = iota
	Daubechies2
	Daubechies4
	Daubechies6
	Daubechies8
	Daubechies10
	Symlet2
	Symlet4
	Symlet8
	Coiflet1
	Coiflet2
	BiorSpline13
	Morlet
	Paul4
	DOG2
)

// Filters holds a discrete quadrature mirror filter quadruple. Decomposition
// filters (Dec0 lowpass, Dec1 highpass) are L2-normalized (sum of squares
// == 1). Reconstruction filters (Rec0, Rec1) satisfy the perfect
// reconstruction relation with the decomposition pair.
type Filters struct {
	Dec0, Dec1 []float64
	Rec0, Rec1 []float64
}

// ContinuousKernel samples a continuous wavelet psi at scale a: the
// returned slice has 2*supportRadius(a)+1 elements, centered on index
// (len-1)/2, representing psi_a[n] = (1/sqrt(a)) * psi(n/a).
type ContinuousKernel func(a float64) []float64

// Entry is one registry row: either a discrete Filters quadruple
// (Compatible MODWTOnly or Both) or a ContinuousKernel generator
// (Compatible CWTOnly or Both), plus shared metadata.
type Entry struct {
	Name             Name
	Label            string
	Family           string
	Filters          *Filters // nil for CWTOnly entries
	Kernel           ContinuousKernel
	VanishingMoments int
	Symmetric        bool
	Orthogonal       bool
	SupportWidth     int
	Compatible       Transform
}
