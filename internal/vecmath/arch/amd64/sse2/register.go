//go:build amd64

package sse2

import (
	"github.com/prophetizo/vectorwave/internal/cpu"
	"github.com/prophetizo/vectorwave/internal/vecmath/registry"
)

// init registers the SSE2-tier implementations. SSE2 is part of the x86-64
// baseline, so it is always available as a step up from generic when AVX2
// is absent. Priority 10: below AVX2 (20), above generic (0).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

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
