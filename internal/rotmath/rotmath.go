// Package rotmath holds the float32 arithmetic shared by the rotation kernels.
package rotmath

import "github.com/chewxy/math32"

const degToRad = math32.Pi / 180

// Radians converts an angle in degrees to radians in single precision.
func Radians(deg float32) float32 {
	return deg * degToRad
}

// SinCos returns sin and cos of an angle given in degrees.
// NaN and Inf inputs produce NaN.
func SinCos(deg float32) (s, c float32) {
	rad := Radians(deg)
	return math32.Sin(rad), math32.Cos(rad)
}

// Center returns the midpoint of corners 1 and 2, the diagonal pair of a
// rectangle stored top-left, top-right, bottom-left, bottom-right.
func Center(x, y *[4]float32) (cx, cy float32) {
	cy = ((y[1] - y[2]) * 0.5) + y[2]
	cx = ((x[1] - x[2]) * 0.5) + x[2]
	return cx, cy
}

// LegacyVec4Center is the pivot an earlier vectorized kernel used: y from
// corners 0 and 2, x from corners 1 and 0. It coincides with Center only for
// axis-aligned rectangles. Kept for comparing against data produced by that
// kernel; no kernel in this module uses it.
func LegacyVec4Center(x, y *[4]float32) (cx, cy float32) {
	cy = ((y[0] - y[2]) * 0.5) + y[2]
	cx = ((x[1] - x[0]) * 0.5) + x[0]
	return cx, cy
}
