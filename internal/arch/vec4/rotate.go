// Package vec4 provides the four-lane rotation kernel.
//
// The four x coordinates and the four y coordinates are each treated as one
// 4 x float32 vector and every step of the rotation is applied to all lanes
// at once. Lane arithmetic goes through vek32, which runs AVX2 assembly on
// capable amd64 hosts and unrolled Go elsewhere; the results do not depend
// on which one runs.
package vec4

import (
	"github.com/viterin/vek/vek32"

	"github.com/cwbudde/algo-rect/internal/rotmath"
)

// RotateCenter rotates the corners about the midpoint of corners 1 and 2.
// The operation order (subtract, multiply, combine, add) matches the scalar
// kernel so both produce the same values up to rounding.
func RotateCenter(x, y *[4]float32, angleDeg float32) {
	cx, cy := rotmath.Center(x, y)
	s, c := rotmath.SinCos(angleDeg)

	vx, vy := *x, *y

	// move to origin
	vek32.SubNumber_Inplace(vx[:], cx)
	vek32.SubNumber_Inplace(vy[:], cy)

	var nx, ny, tmp [4]float32

	// x' = x*c - y*s
	vek32.MulNumber_Into(nx[:], vx[:], c)
	vek32.MulNumber_Into(tmp[:], vy[:], s)
	vek32.Sub_Inplace(nx[:], tmp[:])

	// y' = x*s + y*c
	vek32.MulNumber_Into(ny[:], vx[:], s)
	vek32.MulNumber_Into(tmp[:], vy[:], c)
	vek32.Add_Inplace(ny[:], tmp[:])

	vek32.AddNumber_Inplace(nx[:], cx)
	vek32.AddNumber_Inplace(ny[:], cy)

	*x, *y = nx, ny
}

// Accelerated reports whether vek32 dispatches to assembly on this host,
// together with the CPU features it detected.
func Accelerated() (bool, []string) {
	info := vek32.Info()
	return info.Acceleration, info.CPUFeatures
}
