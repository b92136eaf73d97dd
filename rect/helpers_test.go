package rect

import "math"

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tol
}
