//go:build arm64 && !purego

package vec4

import (
	"github.com/cwbudde/algo-rect/cpu"
	"github.com/cwbudde/algo-rect/internal/arch/registry"
)

// init registers the four-lane kernel on arm64 (NEON, 128-bit registers).
//
// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "vec4",
		SIMDLevel:    cpu.SIMDNEON,
		Priority:     10,
		RotateCenter: RotateCenter,
	})
}
