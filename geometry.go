package perigee

import (
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	wireframeDivisions = 9
)

// Geometry generates the point sequences of orbits in a body centered frame, scaled by the tick
// value of its configuration (i.e. in thousands of km by default).
// A Geometry holds no mutable state and may be shared between goroutines.
type Geometry struct {
	conf   Config
	logger log.Logger
}

// NewGeometry returns a new Geometry for the provided configuration.
// A nil logger disables logging.
func NewGeometry(conf Config, logger log.Logger) (*Geometry, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Geometry{conf, log.With(logger, "component", "geometry")}, nil
}

// Config returns the configuration of this geometry.
func (g *Geometry) Config() Config {
	return g.conf
}

func (g *Geometry) scaled(p r3.Vec) r3.Vec {
	return r3.Scale(1/g.conf.TickValue, p)
}

// EllipticalOrbitPoints returns the points of an ellipse of the given eccentricity and semi-major
// axis (km), using the polar equation r = a(1-e²)/(1-e*cosθ). The full orbit spans θ ∈ [-2π, 0],
// so the first point is the apoapsis and the middle one the periapsis; halfOnly spans [-π, 0]
// for transfers. If reversed is set, r is negated to draw transfers to lower orbits.
func (g *Geometry) EllipticalOrbitPoints(inclination, eccentricity, semiMajorAxis float64, halfOnly, reversed bool) ([]r3.Vec, error) {
	if !(eccentricity >= 0 && eccentricity < 1) {
		return nil, &NumericDomainError{"elliptical orbit", eccentricity}
	}
	piMultiplier := -2.0
	if halfOnly {
		piMultiplier = -1
	}
	tilt := R2(Deg2rad(inclination))
	p := semiMajorAxis * (1 - eccentricity*eccentricity)
	θs := linspace(piMultiplier*math.Pi, 0, g.conf.Divisions)
	points := make([]r3.Vec, len(θs))
	for k, θ := range θs {
		r := p / (1 - eccentricity*math.Cos(θ))
		if reversed {
			r = -r
		}
		points[k] = g.scaled(inclined(r, θ, tilt))
		if !finite(points[k]) {
			return nil, &NumericDomainError{"elliptical orbit", r}
		}
	}
	return points, nil
}

// ParabolicOrbitPoints returns the points of a parabola of the orbit's periapsis, using
// r = 2*rP/(1-cosθ). The sweep covers (0, 2π) with both ends excluded since r is infinite there;
// the middle point is at θ = π, i.e. the periapsis.
func (g *Geometry) ParabolicOrbitPoints(o Orbit, radius float64) ([]r3.Vec, error) {
	n := g.conf.Divisions
	tilt := R2(Deg2rad(o.inclination))
	rP := o.Periapsis(radius)
	θs := linspace(0, 2*math.Pi, n+2)[1 : n+1]
	points := make([]r3.Vec, n)
	for k, θ := range θs {
		r := 2 * rP / (1 - math.Cos(θ))
		points[k] = g.scaled(inclined(r, θ, tilt))
		if !finite(points[k]) {
			return nil, &NumericDomainError{"parabolic orbit", r}
		}
	}
	return points, nil
}

// IsParabolic returns whether the orbit is close enough to an eccentricity of one to be drawn
// with the parabolic formula, i.e. 1-e < ε.
func (g *Geometry) IsParabolic(o Orbit, radius float64) bool {
	return 1-o.Eccentricity(radius) < g.conf.ParabolicEpsilon
}

// OrbitPoints returns the points of the full orbit around a body of the given radius, switching
// to the parabolic formula when the ellipse one becomes ill conditioned.
func (g *Geometry) OrbitPoints(o Orbit, radius float64) ([]r3.Vec, error) {
	if g.IsParabolic(o, radius) {
		level.Debug(g.logger).Log("msg", "orbit drawn as parabola", "orbit", o, "e", o.Eccentricity(radius))
		return g.ParabolicOrbitPoints(o, radius)
	}
	return g.EllipticalOrbitPoints(o.inclination, o.Eccentricity(radius), o.SemiMajorAxis(radius), false, false)
}

// TransferOrbitElements returns the transfer orbit between the initial and target orbits around a
// body of the given radius, along with its eccentricity and semi-major axis.
// The transfer lies in the plane of the lower orbit, so that any inclination change happens on the
// higher one.
func TransferOrbitElements(initial, target Orbit, radius float64) (Orbit, float64, float64) {
	apogee, perigee := target.apogee, initial.perigee
	if apogee < perigee {
		apogee, perigee = perigee, apogee
	}
	inclination := initial.inclination
	if initial.apogee > target.apogee {
		inclination = target.inclination
	}
	transfer := Orbit{apogee, perigee, inclination}
	return transfer, transfer.Eccentricity(radius), transfer.SemiMajorAxis(radius)
}

// TransferOrbitPoints returns the half orbit points of the transfer between the two orbits.
func (g *Geometry) TransferOrbitPoints(initial, target Orbit, radius float64) ([]r3.Vec, error) {
	transfer, e, a := TransferOrbitElements(initial, target, radius)
	return g.EllipticalOrbitPoints(transfer.inclination, e, a, true, initial.apogee > target.apogee)
}

// AscendingNodePoint returns the point of the ascending node of an orbit of the given altitudes, at
// sqrt(apoapsis*periapsis) from the center along the line of nodes (the y axis).
// The inclination has no effect on the result since the node lies on the axis of the tilt.
func (g *Geometry) AscendingNodePoint(radius, inclination, apogee, perigee float64) (r3.Vec, error) {
	product := (apogee + radius) * (perigee + radius)
	if product < 0 || math.IsNaN(product) {
		return r3.Vec{}, &NumericDomainError{"ascending node", product}
	}
	p := g.scaled(inclined(math.Sqrt(product), math.Pi/2, R2(Deg2rad(inclination))))
	if !finite(p) {
		return r3.Vec{}, &NumericDomainError{"ascending node", product}
	}
	return p, nil
}

// BodyWireframe returns the scaled sphere of the given radius as a 9x9 grid, indexed by azimuth
// θ ∈ [0, 2π] then polar angle φ ∈ [0, π].
func (g *Geometry) BodyWireframe(radius float64) [][]r3.Vec {
	θs := linspace(0, 2*math.Pi, wireframeDivisions)
	φs := linspace(0, math.Pi, wireframeDivisions)
	grid := make([][]r3.Vec, len(θs))
	for i, θ := range θs {
		grid[i] = make([]r3.Vec, len(φs))
		for j, φ := range φs {
			grid[i][j] = g.scaled(Spherical2Cartesian(radius, φ, θ))
		}
	}
	return grid
}
