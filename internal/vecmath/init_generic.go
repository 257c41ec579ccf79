//go:build !amd64 && !arm64

package vecmath

import (
	_ "github.com/prophetizo/vectorwave/internal/vecmath/arch/generic"
)
