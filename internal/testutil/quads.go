// Package testutil holds deterministic inputs and float32 assertions shared
// by the rotation tests.
package testutil

import "math/rand"

// Quad is a corner set in the rect package layout.
type Quad struct {
	X, Y [4]float32
}

// UnitSquare returns corners (0,0), (1,0), (0,1), (1,1) in top-left,
// top-right, bottom-left, bottom-right order.
func UnitSquare() Quad {
	return Quad{
		X: [4]float32{0, 1, 0, 1},
		Y: [4]float32{0, 0, 1, 1},
	}
}

// DeterministicQuads returns n corner sets with coordinates uniformly drawn
// from [-scale, scale), reproducible for a given seed.
func DeterministicQuads(seed int64, scale float32, n int) []Quad {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Quad, n)
	for i := range out {
		for j := 0; j < 4; j++ {
			out[i].X[j] = (rng.Float32()*2 - 1) * scale
			out[i].Y[j] = (rng.Float32()*2 - 1) * scale
		}
	}
	return out
}

// DeterministicAngles returns n angles in degrees drawn from [-720, 720).
func DeterministicAngles(seed int64, n int) []float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float32, n)
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * 720
	}
	return out
}
