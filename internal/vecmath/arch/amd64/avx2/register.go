//go:build amd64

package avx2

import (
	"github.com/prophetizo/vectorwave/internal/cpu"
	"github.com/prophetizo/vectorwave/internal/vecmath/registry"
)

// init registers the AVX2-tier implementations with the vecmath registry.
// AVX2 provides 256-bit (4x float64) SIMD and is available on Intel Haswell
// (2013+) and AMD Excavator (2015+). Priority 20: preferred over SSE2/generic.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		AddBlock:          AddBlock,
		AddBlockInPlace:   AddBlockInPlace,
		MulBlock:          MulBlock,
		MulBlockInPlace:   MulBlockInPlace,
		ScaleBlock:        ScaleBlock,
		ScaleBlockInPlace: ScaleBlockInPlace,
		AddMulBlock:       AddMulBlock,
		MulAddBlock:       MulAddBlock,
		MaxAbs:            MaxAbs,
		Sum:               Sum,
		DotProduct:        DotProduct,
		Magnitude:         Magnitude,
		Power:             Power,
	})
}
