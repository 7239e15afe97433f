package perigee

import (
	"fmt"
	"math"
)

// Orbit defines an orbit by its shape and orientation relative to the surface of a body.
// Apogee and perigee are altitudes in km, inclination is in degrees.
// Everything measured from the body center is derived on demand from the caller's body radius.
type Orbit struct {
	apogee, perigee, inclination float64
}

// NewOrbit returns a new orbit, or a ValidationError if apogee < perigee, either is negative, or
// any element is not finite.
func NewOrbit(apogee, perigee, inclination float64) (Orbit, error) {
	if apogee < perigee {
		return Orbit{}, &ValidationError{"orbit", fmt.Sprintf("apogee (%g km) must be greater than or equal to perigee (%g km)", apogee, perigee)}
	}
	if apogee < 0 || perigee < 0 {
		return Orbit{}, &ValidationError{"orbit", "apogee and perigee must not be negative"}
	}
	for _, v := range []float64{apogee, perigee, inclination} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Orbit{}, &ValidationError{"orbit", "elements must be finite numbers"}
		}
	}
	return Orbit{apogee, perigee, inclination}, nil
}

// Apogee returns the highest altitude in km.
func (o Orbit) Apogee() float64 {
	return o.apogee
}

// Perigee returns the lowest altitude in km.
func (o Orbit) Perigee() float64 {
	return o.perigee
}

// Inclination returns the inclination in degrees.
func (o Orbit) Inclination() float64 {
	return o.inclination
}

// Apoapsis returns the apogee measured from the center of a body of the given radius.
func (o Orbit) Apoapsis(radius float64) float64 {
	return o.apogee + radius
}

// Periapsis returns the perigee measured from the center of a body of the given radius.
func (o Orbit) Periapsis(radius float64) float64 {
	return o.perigee + radius
}

// SemiMajorAxis returns the semi-major axis around a body of the given radius.
func (o Orbit) SemiMajorAxis(radius float64) float64 {
	a, _ := o.ae(radius)
	return a
}

// Eccentricity returns the eccentricity around a body of the given radius.
// A point orbit (zero apoapsis and periapsis) is reported as circular.
func (o Orbit) Eccentricity(radius float64) float64 {
	_, e := o.ae(radius)
	return e
}

func (o Orbit) ae(radius float64) (a, e float64) {
	rA, rP := o.Apoapsis(radius), o.Periapsis(radius)
	a, e, err := Radii2ae(rA, rP)
	if err != nil {
		// Point orbit.
		return (rA + rP) / 2, 0
	}
	return a, e
}

// AscendingNodeRadius returns the distance from the center at which the plane changes are drawn
// and computed, i.e. sqrt(apoapsis*periapsis).
func (o Orbit) AscendingNodeRadius(radius float64) float64 {
	return math.Sqrt(o.Apoapsis(radius) * o.Periapsis(radius))
}

// IsCircular returns whether the apogee and the perigee are identical.
func (o Orbit) IsCircular() bool {
	return o.apogee == o.perigee
}

// String implements the stringer interface.
func (o Orbit) String() string {
	return fmt.Sprintf("apogee=%.1f km perigee=%.1f km i=%.3f deg", o.apogee, o.perigee, o.inclination)
}

// Radii2ae returns the semi major axis and the eccentricty from the radii.
func Radii2ae(rA, rP float64) (a, e float64, err error) {
	if rA < rP {
		return 0, 0, &ValidationError{"radii", "periapsis cannot be greater than apoapsis"}
	}
	if rA+rP <= 0 {
		return 0, 0, &NumericDomainError{"radii to elements", rA + rP}
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
