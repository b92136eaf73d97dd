// Package cpu provides CPU feature detection for rotation kernel selection.
//
// The central question answered here is whether the processor can run the
// four-lane single-precision kernel (see HasVec4). Detection happens lazily on
// the first call to DetectFeatures and the result is cached for the lifetime
// of the process. Callers that want to decide once and reuse the answer can
// hold the returned Features value and pass it around; it never changes.
package cpu

import (
	"sync"
)

// SIMDLevel names a vector instruction set a kernel requires.
// Levels are not ordered across architectures (SSE2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates a pure Go kernel.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2, four float32 lanes per register.
	SIMDSSE2

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64
	HasSSE2 bool // baseline for amd64, 4 x float32 per XMM register
	HasAVX2 bool
	HasFMA  bool

	// arm64
	HasNEON bool // mandatory on ARMv8

	// ForceGeneric disables every vectorized kernel (testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH of the detecting process.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasVec4 reports whether the host implements 4-wide single-precision vector
// arithmetic. Platforms without a known extension report false.
func HasVec4() bool {
	return SupportsVec4(DetectFeatures())
}

// SupportsVec4 reports whether f allows the four-lane float32 kernel.
func SupportsVec4(f Features) bool {
	return Supports(f, SIMDSSE2) || Supports(f, SIMDNEON)
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasNEON returns true if the CPU supports ARM NEON instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if features allow a kernel requiring level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
