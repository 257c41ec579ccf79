//go:build arm64

package neon

import (
	"github.com/prophetizo/vectorwave/internal/cpu"
	"github.com/prophetizo/vectorwave/internal/vecmath/registry"
)

// init registers the NEON-tier implementations. NEON (ARM Advanced SIMD) is
// mandatory on ARMv8, so it's available on every arm64 CPU. Priority 15:
// ARM's equivalent standing to AVX2 on amd64.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

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
