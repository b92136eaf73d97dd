package rotmath

import (
	"math"
	"testing"
)

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestRadians(t *testing.T) {
	tests := []struct {
		deg  float32
		want float32
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
		{360, 2 * math.Pi},
	}
	for _, tt := range tests {
		if got := Radians(tt.deg); !near(got, tt.want, 1e-6) {
			t.Errorf("Radians(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestSinCos(t *testing.T) {
	tests := []struct {
		deg  float32
		s, c float32
	}{
		{0, 0, 1},
		{90, 1, 0},
		{180, 0, -1},
		{270, -1, 0},
		{30, 0.5, float32(math.Sqrt(3) / 2)},
	}
	for _, tt := range tests {
		s, c := SinCos(tt.deg)
		if !near(s, tt.s, 1e-6) || !near(c, tt.c, 1e-6) {
			t.Errorf("SinCos(%v) = (%v, %v), want (%v, %v)", tt.deg, s, c, tt.s, tt.c)
		}
	}
}

func TestSinCosNonFinite(t *testing.T) {
	for _, deg := range []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		s, c := SinCos(deg)
		if !math.IsNaN(float64(s)) || !math.IsNaN(float64(c)) {
			t.Errorf("SinCos(%v) = (%v, %v), want NaN", deg, s, c)
		}
	}
}

func TestCenter(t *testing.T) {
	x := [4]float32{0, 4, 0, 4}
	y := [4]float32{0, 0, 2, 2}

	cx, cy := Center(&x, &y)
	if cx != 2 || cy != 1 {
		t.Fatalf("Center = (%v, %v), want (2, 1)", cx, cy)
	}
}

func TestCenterUsesDiagonalOnly(t *testing.T) {
	// Corners 0 and 3 do not take part in the pivot.
	x := [4]float32{100, 2, 0, -100}
	y := [4]float32{100, 0, 2, -100}

	cx, cy := Center(&x, &y)
	if cx != 1 || cy != 1 {
		t.Fatalf("Center = (%v, %v), want (1, 1)", cx, cy)
	}
}

func TestLegacyVec4Center(t *testing.T) {
	// Axis-aligned: both pivots agree.
	x := [4]float32{0, 4, 0, 4}
	y := [4]float32{0, 0, 2, 2}

	lx, ly := LegacyVec4Center(&x, &y)
	cx, cy := Center(&x, &y)
	if lx != cx || ly != cy {
		t.Fatalf("axis-aligned: legacy (%v, %v) != center (%v, %v)", lx, ly, cx, cy)
	}

	// Rotated quad: they differ.
	x = [4]float32{1, 2, 0, 1}
	y = [4]float32{0, 1, 1, 2}

	lx, ly = LegacyVec4Center(&x, &y)
	cx, cy = Center(&x, &y)
	if lx == cx && ly == cy {
		t.Fatalf("rotated quad: legacy pivot unexpectedly equals center (%v, %v)", cx, cy)
	}
}
