package rect

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// CornerRadii returns the distance of each corner of r from (cx, cy),
// evaluated in float64.
func CornerRadii(r Rect, cx, cy float32) [4]float64 {
	var dx, dy, dx2, dy2, d2 [4]float64
	for i := range dx {
		dx[i] = float64(r.X[i]) - float64(cx)
		dy[i] = float64(r.Y[i]) - float64(cy)
	}

	vecmath.MulBlock(dx2[:], dx[:], dx[:])
	vecmath.MulBlock(dy2[:], dy[:], dy[:])
	vecmath.AddBlock(d2[:], dx2[:], dy2[:])

	var radii [4]float64
	for i, v := range d2 {
		radii[i] = math.Sqrt(v)
	}
	return radii
}

// RigidityError is the largest change in corner distance from before's
// center between before and after. A rotation keeps it at rounding level.
func RigidityError(before, after Rect) float64 {
	cx, cy := before.Center()
	rb := CornerRadii(before, cx, cy)
	ra := CornerRadii(after, cx, cy)

	var maxDiff float64
	for i := range rb {
		if d := math.Abs(rb[i] - ra[i]); d > maxDiff || math.IsNaN(d) {
			maxDiff = d
		}
	}
	return maxDiff
}
