//go:build amd64 && !purego

package vec4

import (
	"github.com/cwbudde/algo-rect/cpu"
	"github.com/cwbudde/algo-rect/internal/arch/registry"
)

// init registers the four-lane kernel on amd64. SSE2 holds 4 x float32 per
// register and is baseline for the architecture.
//
// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "vec4",
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		RotateCenter: RotateCenter,
	})
}
