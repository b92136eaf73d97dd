// Package generic provides the scalar rotation kernel.
package generic

import "github.com/cwbudde/algo-rect/internal/rotmath"

// RotateCenter rotates the corners about the midpoint of corners 1 and 2,
// one coordinate at a time.
func RotateCenter(x, y *[4]float32, angleDeg float32) {
	cx, cy := rotmath.Center(x, y)

	x[0] -= cx
	x[1] -= cx
	x[2] -= cx
	x[3] -= cx

	y[0] -= cy
	y[1] -= cy
	y[2] -= cy
	y[3] -= cy

	s, c := rotmath.SinCos(angleDeg)

	tlX := (x[0] * c) - (y[0] * s)
	trX := (x[1] * c) - (y[1] * s)
	blX := (x[2] * c) - (y[2] * s)
	brX := (x[3] * c) - (y[3] * s)

	tlY := (x[0] * s) + (y[0] * c)
	trY := (x[1] * s) + (y[1] * c)
	blY := (x[2] * s) + (y[2] * c)
	brY := (x[3] * s) + (y[3] * c)

	x[0], x[1], x[2], x[3] = tlX+cx, trX+cx, blX+cx, brX+cx
	y[0], y[1], y[2], y[3] = tlY+cy, trY+cy, blY+cy, brY+cy
}
