package perigee

import (
	"fmt"
	"math"
)

// Body defines a gravitating body around which orbits are computed.
// Radius is the equatorial radius in km; Color is passed through to renderers untouched.
type Body struct {
	Name   string
	Mass   float64 // kg
	Radius float64 // km
	Color  string
	μ      float64
}

// NewBody returns a new body whose μ is computed with BigG.
func NewBody(name string, mass, radius float64, color string) (Body, error) {
	return newBody(BigG, name, mass, radius, color)
}

func newBody(g float64, name string, mass, radius float64, color string) (Body, error) {
	if !(mass > 0) {
		return Body{}, &ValidationError{"mass", fmt.Sprintf("%g kg must be greater than zero", mass)}
	}
	if !(radius > 0) {
		return Body{}, &ValidationError{"radius", fmt.Sprintf("%g km must be greater than zero", radius)}
	}
	return Body{Name: name, Mass: mass, Radius: radius, Color: color, μ: g * mass}, nil
}

// GM returns the standard gravitational parameter μ in km^3/s^2
// (which is unexported because it's a lowercase letter).
func (b Body) GM() float64 {
	return b.μ
}

// GravitationalAcceleration returns the gravitational acceleration in km/s^2 at the given
// distance from the *surface* of this body. Distances at or below -Radius are not guarded.
func (b Body) GravitationalAcceleration(distance float64) float64 {
	r := b.Radius + distance
	return b.μ / (r * r)
}

// OrbitalVelocity returns the instantaneous orbital speed (vis-viva) in km/s at the given distance
// from the surface, on an orbit of the provided semi-major axis (km, from the center).
func (b Body) OrbitalVelocity(distance, semiMajorAxis float64) (float64, error) {
	r := b.Radius + distance
	if r == 0 || semiMajorAxis == 0 {
		return 0, &NumericDomainError{"orbital velocity", 0}
	}
	radicand := b.μ * (2/r - 1/semiMajorAxis)
	if radicand < 0 || math.IsNaN(radicand) || math.IsInf(radicand, 0) {
		return 0, &NumericDomainError{"orbital velocity", radicand}
	}
	return math.Sqrt(radicand), nil
}

// circularVelocity returns the speed of a circular orbit of radius r (from the center).
func (b Body) circularVelocity(r float64) (float64, error) {
	if !(r > 0) {
		return 0, &NumericDomainError{"circular velocity", r}
	}
	return math.Sqrt(b.μ / r), nil
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}
