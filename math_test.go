package perigee

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAngles(t *testing.T) {
	for _, tc := range []struct{ deg, rad float64 }{{0, 0}, {90, math.Pi / 2}, {-45, -math.Pi / 4}, {540, 3 * math.Pi}} {
		if !scalar.EqualWithinAbs(Deg2rad(tc.deg), tc.rad, 1e-12) {
			t.Fatalf("Deg2rad(%f)=%f", tc.deg, Deg2rad(tc.deg))
		}
		if !scalar.EqualWithinAbs(Rad2deg(tc.rad), tc.deg, 1e-9) {
			t.Fatalf("Rad2deg(%f)=%f", tc.rad, Rad2deg(tc.rad))
		}
	}
}

func TestLinspace(t *testing.T) {
	l := linspace(-2*math.Pi, 0, 61)
	if len(l) != 61 || l[0] != -2*math.Pi || l[60] != 0 {
		t.Fatalf("bounds not included: %f %f", l[0], l[60])
	}
	if !scalar.EqualWithinAbs(l[30], -math.Pi, 1e-12) {
		t.Fatalf("middle=%f", l[30])
	}
}

func TestSpherical2Cartesian(t *testing.T) {
	for _, tc := range []struct {
		r, θ, φ float64
		exp     r3.Vec
	}{
		{1, 0, 0, r3.Vec{Z: 1}},
		{2, math.Pi / 2, 0, r3.Vec{X: 2}},
		{3, math.Pi / 2, math.Pi / 2, r3.Vec{Y: 3}},
		{4, math.Pi, 0, r3.Vec{Z: -4}},
	} {
		if got := Spherical2Cartesian(tc.r, tc.θ, tc.φ); !vectorsEqual(got, tc.exp) {
			t.Fatalf("(%f, %f, %f) -> %+v != %+v", tc.r, tc.θ, tc.φ, got, tc.exp)
		}
	}
}

func TestFinite(t *testing.T) {
	if !finite(r3.Vec{X: 1, Y: -1}) {
		t.Fatal("finite vector reported as not finite")
	}
	if finite(r3.Vec{Z: math.Inf(-1)}) || finite(r3.Vec{Y: math.NaN()}) {
		t.Fatal("non finite vector reported as finite")
	}
}
