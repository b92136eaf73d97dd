package generic

import (
	"github.com/cwbudde/algo-rect/cpu"
	"github.com/cwbudde/algo-rect/internal/arch/registry"
)

// init registers the scalar kernel, the fallback for every platform.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		RotateCenter: RotateCenter,
	})
}
