package simd

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride names the environment variable that forces an ISA.
const EnvOverride = "DATAKIT_SIMD"

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents the portable scalar implementation.
	Generic ISA = iota
	// NEON represents ARM64 Advanced SIMD (128-bit lanes).
	NEON
	// SSE41 represents x86-64 SSE4.1 (128-bit lanes).
	SSE41
	// AVX2 represents x86-64 AVX2 (256-bit lanes).
	AVX2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SSE41:
		return "sse41"
	case AVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// Lanes returns the number of uint32 lanes per vector for the ISA.
func (i ISA) Lanes() int {
	switch i {
	case NEON, SSE41:
		return 4
	case AVX2:
		return 8
	default:
		return 1
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "scalar":
		return Generic, true
	case "neon", "asimd":
		return NEON, true
	case "sse41", "sse4.1", "sse":
		return SSE41, true
	case "avx2":
		return AVX2, true
	default:
		return Generic, false
	}
}

var (
	// activeISA is the selected kernel family.
	activeISA ISA

	// hasOverride is true if DATAKIT_SIMD selected the ISA.
	hasOverride bool

	// CPU feature flags, set by platform-specific init.
	hasASIMD bool
	hasSSE41 bool
	hasAVX2  bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
			return
		}
	}

	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case SSE41:
		return hasSSE41
	case AVX2:
		return hasAVX2
	default:
		return false
	}
}

func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasAVX2 {
			return AVX2
		}
		if hasSSE41 {
			return SSE41
		}
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if DATAKIT_SIMD was honored.
func IsOverridden() bool {
	return hasOverride
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}

// HasSSE41 returns true if x86-64 SSE4.1 is available.
func HasSSE41() bool {
	return hasSSE41
}

// HasAVX2 returns true if x86-64 AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}
