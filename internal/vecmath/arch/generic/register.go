package generic

import (
	"github.com/prophetizo/vectorwave/internal/cpu"
	"github.com/prophetizo/vectorwave/internal/vecmath/registry"
)

// init registers the generic (pure Go) implementations with the vecmath
// registry. Generic is the baseline fallback when no SIMD tier is available
// or ForceGeneric is set for testing. Priority 0: lowest, always compatible.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

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
