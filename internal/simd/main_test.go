package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which kernel family is active before running tests.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active ISA: %s (%d lanes)\n", ActiveISA(), ActiveISA().Lanes())
	fmt.Printf("Override: %v\n", IsOverridden())

	switch runtime.GOARCH {
	case "arm64":
		fmt.Printf("  ASIMD (NEON): %v\n", HasASIMD())
	case "amd64":
		fmt.Printf("  SSE4.1: %v\n", HasSSE41())
		fmt.Printf("  AVX2: %v\n", HasAVX2())
	}

	fmt.Printf("============================\n\n")

	os.Exit(m.Run())
}
