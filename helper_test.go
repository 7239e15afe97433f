package perigee

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	distanceε = 1e-6 // in output units (thousands of km)
	velocityε = 1e-6 // in km/s
)

// earth returns the reference body of the tests.
func earth(t *testing.T) Body {
	t.Helper()
	b, err := NewBody("Earth", 5.9722e24, 6378, "cornflowerblue")
	if err != nil {
		t.Fatalf("could not create Earth: %s", err)
	}
	return b
}

func orbit(t *testing.T, apogee, perigee, inclination float64) Orbit {
	t.Helper()
	o, err := NewOrbit(apogee, perigee, inclination)
	if err != nil {
		t.Fatalf("could not create orbit: %s", err)
	}
	return o
}

func geometry(t *testing.T) *Geometry {
	t.Helper()
	g, err := NewGeometry(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("could not create geometry: %s", err)
	}
	return g
}

func vectorsEqual(a, b r3.Vec) bool {
	return scalar.EqualWithinAbs(a.X, b.X, distanceε) && scalar.EqualWithinAbs(a.Y, b.Y, distanceε) && scalar.EqualWithinAbs(a.Z, b.Z, distanceε)
}
