package rect

import (
	"github.com/cwbudde/algo-rect/internal/arch/generic"
	"github.com/cwbudde/algo-rect/internal/arch/vec4"
	"github.com/cwbudde/algo-rect/internal/rotmath"
)

// Corner indices.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Rect is a quadrilateral given by four corners. Index i in X and Y names
// the same corner.
type Rect struct {
	X [4]float32
	Y [4]float32
}

// Rects is an ordered collection rotated in bulk.
type Rects []Rect

// New returns the axis-aligned rectangle with origin (x, y) and size w x h.
func New(x, y, w, h float32) Rect {
	return Rect{
		X: [4]float32{x, x + w, x, x + w},
		Y: [4]float32{y, y, y + h, y + h},
	}
}

// Corner returns corner i. It panics if i is outside 0..3.
func (r Rect) Corner(i int) (x, y float32) {
	if i < 0 || i > 3 {
		panic("rect: corner index out of range")
	}
	return r.X[i], r.Y[i]
}

// Center returns the rotation pivot: the midpoint of corners 1 and 2.
func (r Rect) Center() (cx, cy float32) {
	return rotmath.Center(&r.X, &r.Y)
}

// RotateCenter rotates r in place about its center by angleDeg degrees
// using the scalar kernel. Positive angles turn counter-clockwise in a y-up
// frame.
func (r *Rect) RotateCenter(angleDeg float32) {
	generic.RotateCenter(&r.X, &r.Y, angleDeg)
}

// RotateCenterVec4 is RotateCenter computed four lanes at a time.
//
// It runs on any CPU; callers that want the hardware path only when the probe
// confirms it should go through [SelectRotator] or [RotateAll].
func (r *Rect) RotateCenterVec4(angleDeg float32) {
	vec4.RotateCenter(&r.X, &r.Y, angleDeg)
}

// RotateCenter rotates every rectangle by angleDeg, choosing the kernel once
// from the detected CPU features.
func (rs Rects) RotateCenter(angleDeg float32) {
	RotateAll(rs, angleDeg, nil)
}
