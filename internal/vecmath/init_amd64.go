//go:build amd64

package vecmath

// Blank imports trigger init() registration of each amd64 implementation
// tier with the global registry.
import (
	_ "github.com/prophetizo/vectorwave/internal/vecmath/arch/amd64/avx2"
	_ "github.com/prophetizo/vectorwave/internal/vecmath/arch/amd64/sse2"
	_ "github.com/prophetizo/vectorwave/internal/vecmath/arch/generic"
)
