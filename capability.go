package datakit

import (
	"context"

	"github.com/hupe1980/datakit/internal/simd"
)

// Kernels reports the instruction set used by the vectorized kernels and
// whether it was forced through the DATAKIT_SIMD environment variable.
func Kernels() (isa string, overridden bool) {
	return simd.ActiveISA().String(), simd.IsOverridden()
}

// LogKernels logs the kernel selection on l at info level.
func LogKernels(ctx context.Context, l *Logger) {
	isa, overridden := Kernels()
	l.LogSIMDSelected(ctx, isa, overridden)
}
