package rect

import (
	"github.com/cwbudde/algo-rect/cpu"
	"github.com/cwbudde/algo-rect/internal/arch/generic"
	"github.com/cwbudde/algo-rect/internal/arch/registry"
	"github.com/cwbudde/algo-rect/internal/arch/vec4"
)

// Rotator is one strategy for rotating a rectangle about its center.
type Rotator interface {
	// Name identifies the kernel ("generic" or "vec4").
	Name() string

	// Rotate turns r in place by angleDeg degrees.
	Rotate(r *Rect, angleDeg float32)
}

type kernelRotator struct {
	name string
	fn   registry.RotateFn
}

func (k kernelRotator) Name() string { return k.name }

func (k kernelRotator) Rotate(r *Rect, angleDeg float32) {
	k.fn(&r.X, &r.Y, angleDeg)
}

var (
	// Scalar rotates one coordinate at a time.
	Scalar Rotator = kernelRotator{name: "generic", fn: generic.RotateCenter}

	// Vec4 rotates four lanes at a time.
	Vec4 Rotator = kernelRotator{name: "vec4", fn: vec4.RotateCenter}
)

// SelectRotator returns the highest-priority kernel registered for f.
// Without a compatible entry it falls back to Scalar.
func SelectRotator(f cpu.Features) Rotator {
	entry := registry.Global.Lookup(f)
	if entry == nil || entry.RotateCenter == nil {
		return Scalar
	}
	return kernelRotator{name: entry.Name, fn: entry.RotateCenter}
}

// RotateAll rotates every element of rs by angleDeg with one kernel.
//
// features is the capability snapshot to dispatch on; callers that probe
// once at startup pass the same pointer to every call. A nil pointer probes
// now via cpu.DetectFeatures.
func RotateAll(rs []Rect, angleDeg float32, features *cpu.Features) {
	if len(rs) == 0 {
		return
	}

	var f cpu.Features
	if features != nil {
		f = *features
	} else {
		f = cpu.DetectFeatures()
	}

	RotateWith(rs, angleDeg, SelectRotator(f))
}

// RotateWith rotates every element of rs by angleDeg using rot.
func RotateWith(rs []Rect, angleDeg float32, rot Rotator) {
	for i := range rs {
		rot.Rotate(&rs[i], angleDeg)
	}
}
