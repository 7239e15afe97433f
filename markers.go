package perigee

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// MarkerKind defines what a marker points at.
type MarkerKind uint8

const (
	// ApogeeMarker marks the apogee of an orbit.
	ApogeeMarker MarkerKind = iota + 1
	// PerigeeMarker marks the perigee of an orbit.
	PerigeeMarker
	// AscendingNodeMarker marks where an inclination change is performed.
	AscendingNodeMarker
)

func (k MarkerKind) String() string {
	switch k {
	case ApogeeMarker:
		return "apogee"
	case PerigeeMarker:
		return "perigee"
	case AscendingNodeMarker:
		return "ascending node"
	default:
		return fmt.Sprintf("marker kind %d", uint8(k))
	}
}

// Marker is a labeled point, scaled like the orbit points it goes with.
type Marker struct {
	Kind  MarkerKind
	Label string
	Point r3.Vec
	Δi    float64 // inclination change in degrees, only set on ascending node markers
}

// Ascending returns whether the marked inclination change increases the inclination.
func (m Marker) Ascending() bool {
	return m.Δi >= 0
}

// ApogeePoint returns the apogee marker of an orbit point sequence, i.e. its first point.
func ApogeePoint(points []r3.Vec) (r3.Vec, error) {
	if len(points) == 0 {
		return r3.Vec{}, errors.New("apogee of an empty point sequence")
	}
	return points[0], nil
}

// PerigeePoint returns the perigee marker of an orbit point sequence, i.e. the point at len/2.
func PerigeePoint(points []r3.Vec) (r3.Vec, error) {
	if len(points) == 0 {
		return r3.Vec{}, errors.New("perigee of an empty point sequence")
	}
	return points[len(points)/2], nil
}

// InclinationChangeMarker returns the marker of the plane change between the two orbits, placed on
// the ascending node of the higher one.
func (g *Geometry) InclinationChangeMarker(radius float64, initial, target Orbit) (Marker, error) {
	higher := target
	if initial.apogee > target.apogee {
		higher = initial
	}
	point, err := g.AscendingNodePoint(radius, initial.inclination, higher.apogee, higher.perigee)
	if err != nil {
		return Marker{}, err
	}
	Δi := target.inclination - initial.inclination
	return Marker{AscendingNodeMarker, fmt.Sprintf("Δi = %g°", math.Abs(Δi)), point, Δi}, nil
}
