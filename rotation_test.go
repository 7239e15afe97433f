package perigee

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestR2(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r2 := R2(x)
	if r2.At(1, 1) != 1 {
		t.Fatal("expected R2.At(1, 1) = 1")
	}
	if r2.At(0, 1) != 0 || r2.At(1, 0) != 0 || r2.At(1, 2) != 0 || r2.At(2, 1) != 0 {
		t.Fatal("misplaced zeros in R2")
	}
	if r2.At(0, 0) != r2.At(2, 2) || r2.At(2, 2) != c {
		t.Fatal("expected R2 cosines misplaced")
	}
	if r2.At(2, 0) != -r2.At(0, 2) || r2.At(2, 0) != s {
		t.Fatal("expected R2 sines misplaced")
	}
}

func TestMxV33(t *testing.T) {
	v := MxV33(R2(math.Pi/2), r3.Vec{X: 1, Y: 2})
	if !vectorsEqual(v, r3.Vec{Y: 2, Z: 1}) {
		t.Fatalf("R2(90°)*[1 2 0]=%+v", v)
	}
}

func TestInclined(t *testing.T) {
	i := Deg2rad(30)
	tilt := R2(i)
	for _, θ := range []float64{0, math.Pi / 4, math.Pi, -3 * math.Pi / 2} {
		p := inclined(10, θ, tilt)
		if !vectorsEqual(p, r3.Vec{X: 10 * math.Cos(θ) * math.Cos(i), Y: 10 * math.Sin(θ), Z: 10 * math.Cos(θ) * math.Sin(i)}) {
			t.Fatalf("θ=%f: %+v", θ, p)
		}
		if math.Abs(r3.Norm(p)-10) > 1e-12 {
			t.Fatalf("rotation changed the norm: %f", r3.Norm(p))
		}
	}
}
