package filterbank

import (
	"sort"
	"strings"
	"sync"

	"github.com/prophetizo/vectorwave/wavelet/werrors"
)

var (
	registryOnce sync.Once
	entries      map[Name]*Entry
	byLabel      map[string]Name
)

func filterSupport(f *Filters) int {
	if f == nil {
		return 0
	}
	return len(f.Dec0)
}

func build() {
	entries = make(map[Name]*Entry)
	byLabel = make(map[string]Name)

	db := daubechiesFamily()
	sym := symletFamily()
	coif := coifletFamily()

	register := func(name Name, label, family string, f *Filters, vm int, symmetric, orthogonal bool) {
		e := &Entry{
			Name:             name,
			Label:            label,
			Family:           family,
			Filters:          f,
			VanishingMoments: vm,
			Symmetric:        symmetric,
			Orthogonal:       orthogonal,
			SupportWidth:     filterSupport(f),
			Compatible:       MODWTOnly,
		}
		entries[name] = e
		byLabel[strings.ToLower(label)] = name
	}

	register(Haar, "haar", "Haar", db[Haar], 1, true, true)
	register(Daubechies2, "db2", "Daubechies", db[Daubechies2], 2, false, true)
	register(Daubechies4, "db4", "Daubechies", db[Daubechies4], 4, false, true)
	register(Daubechies6, "db6", "Daubechies", db[Daubechies6], 6, false, true)
	register(Daubechies8, "db8", "Daubechies", db[Daubechies8], 8, false, true)
	register(Daubechies10, "db10", "Daubechies", db[Daubechies10], 10, false, true)

	register(Symlet2, "sym2", "Symlet", sym[Symlet2], 2, true, true)
	register(Symlet4, "sym4", "Symlet", sym[Symlet4], 4, true, true)
	register(Symlet8, "sym8", "Symlet", sym[Symlet8], 8, true, true)

	register(Coiflet1, "coif1", "Coiflet", coif[Coiflet1], 2, true, true)
	register(Coiflet2, "coif2", "Coiflet", coif[Coiflet2], 4, true, true)

	register(BiorSpline13, "bior1.3", "BiorthogonalSpline", biorSpline13(), 1, true, false)

	registerContinuous := func(name Name, label string, kernel ContinuousKernel, vm int) {
		e := &Entry{
			Name:             name,
			Label:            label,
			Family:           "Continuous",
			Kernel:           kernel,
			VanishingMoments: vm,
			Symmetric:        true,
			Orthogonal:       false,
			Compatible:       CWTOnly,
		}
		entries[name] = e
		byLabel[strings.ToLower(label)] = name
	}
	registerContinuous(Morlet, "morlet", morletKernel, 0)
	registerContinuous(Paul4, "paul4", paul4Kernel, 4)
	registerContinuous(DOG2, "dog2", dog2Kernel, 2)
}

func ensureBuilt() {
	registryOnce.Do(build)
}

// Lookup returns the registry entry for name. Lookup by enumerated Name is
// infallible: every constant in this package has a corresponding entry.
func Lookup(name Name) *Entry {
	ensureBuilt()
	return entries[name]
}

// Parse resolves a user-supplied wavelet label (case-insensitive, e.g.
// "db4", "Haar", "morlet") to its Name. Unrecognized labels fail with
// werrors.UnknownWavelet.
func Parse(label string) (Name, error) {
	ensureBuilt()
	name, ok := byLabel[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, werrors.UnknownWavelet
	}
	return name, nil
}

// List returns every registered wavelet compatible with the given
// transform, sorted by label. Pass Both to match MODWTOnly, CWTOnly, and
// Both entries.
func List(compatible Transform) []*Entry {
	ensureBuilt()
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if compatible == Both || e.Compatible == compatible || e.Compatible == Both {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
