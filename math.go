package perigee

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	deg2rad = math.Pi / 180
)

// Deg2rad converts degrees to radians. Unlike an angle normalization, the sign and the number
// of turns are kept since inclination differences may be negative.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}

// linspace returns n evenly spaced samples over [l, u], both included.
func linspace(l, u float64, n int) []float64 {
	return floats.Span(make([]float64, n), l, u)
}

// finite returns whether all the components of the point are finite.
func finite(p r3.Vec) bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Spherical2Cartesian returns the provided spherical coordinates (r, θ, φ) in Cartesian,
// θ being the polar angle and φ the azimuth.
func Spherical2Cartesian(r, θ, φ float64) r3.Vec {
	sθ, cθ := math.Sincos(θ)
	sφ, cφ := math.Sincos(φ)
	return r3.Vec{X: r * sθ * cφ, Y: r * sθ * sφ, Z: r * cθ}
}
