//go:build arm64

package vecmath

import (
	_ "github.com/prophetizo/vectorwave/internal/vecmath/arch/arm64/neon"
	_ "github.com/prophetizo/vectorwave/internal/vecmath/arch/generic"
)
