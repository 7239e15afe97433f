package perigee

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gonum.org/v1/gonum/spatial/r3"
)

// Craft defines the object orbiting a body.
type Craft struct {
	Name  string
	Color string
}

func (c Craft) String() string {
	return c.Name
}

// Trace is a labeled sequence of points to draw, with its markers.
// An empty label means the trace is not listed in a legend.
type Trace struct {
	Label   string
	Color   string
	Points  []r3.Vec
	Markers []Marker
}

// Scene is everything needed to render an orbit and its maneuver, in a renderer agnostic way.
type Scene struct {
	Body      Body
	Wireframe [][]r3.Vec
	Traces    []Trace
	Info      []string
}

// Planner lays out orbits and maneuvers into scenes.
type Planner struct {
	geo    *Geometry
	logger log.Logger
}

// NewPlanner returns a new Planner using the provided geometry. A nil logger disables logging.
func NewPlanner(geo *Geometry, logger log.Logger) *Planner {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Planner{geo, log.With(logger, "component", "planner")}
}

// Plot returns the scene of the craft on its orbit around the body and, if maneuver is not nil, of
// the transfer to the target orbit. The delta-v is computed first, so nothing is laid out for a
// maneuver which cannot be performed.
func (p *Planner) Plot(body Body, orbit Orbit, craft Craft, maneuver *Maneuver) (*Scene, error) {
	scene := &Scene{Body: body, Wireframe: p.geo.BodyWireframe(body.Radius)}
	trace, err := p.orbitTrace(body, orbit, craft.Name, craft.Color, true)
	if err != nil {
		return nil, err
	}
	scene.Traces = append(scene.Traces, trace)
	if maneuver == nil {
		return scene, nil
	}

	budget, err := maneuver.Budget(body, orbit)
	if err != nil {
		level.Error(p.logger).Log("craft", craft, "err", err)
		return nil, err
	}
	target := *maneuver.Target
	if target.apogee != orbit.apogee {
		points, err := p.geo.TransferOrbitPoints(orbit, target, body.Radius)
		if err != nil {
			return nil, err
		}
		scene.Traces = append(scene.Traces, Trace{Label: craft.Name + " transfer", Color: maneuver.Color, Points: points})
	}
	if target.inclination != orbit.inclination {
		marker, err := p.geo.InclinationChangeMarker(body.Radius, orbit, target)
		if err != nil {
			return nil, err
		}
		scene.Traces = append(scene.Traces, Trace{
			Label:   craft.Name + " inclination change",
			Color:   maneuver.Color,
			Points:  []r3.Vec{marker.Point},
			Markers: []Marker{marker},
		})
	}
	trace, err = p.orbitTrace(body, target, "", maneuver.Color, false)
	if err != nil {
		return nil, err
	}
	scene.Traces = append(scene.Traces, trace)

	info := fmt.Sprintf("%s %s:\nΔV Needed: %.2f m/s", craft.Name, maneuver.Describe(orbit), budget.Total*1e3)
	scene.Info = append(scene.Info, info)
	level.Info(p.logger).Log("craft", craft, "maneuver", maneuver.Describe(orbit), "Δv", budget.Total, "hohmann", budget.Hohmann, "inclination", budget.Inclination)
	return scene, nil
}

// orbitTrace returns the trace of the full orbit. Parabolic orbits only get a perigee marker.
func (p *Planner) orbitTrace(body Body, o Orbit, label, color string, withMarkers bool) (Trace, error) {
	points, err := p.geo.OrbitPoints(o, body.Radius)
	if err != nil {
		return Trace{}, err
	}
	trace := Trace{Label: label, Color: color, Points: points}
	if !withMarkers {
		return trace, nil
	}
	if !p.geo.IsParabolic(o, body.Radius) {
		apogee, err := ApogeePoint(points)
		if err != nil {
			return Trace{}, err
		}
		trace.Markers = append(trace.Markers, Marker{Kind: ApogeeMarker, Label: "Apogee", Point: apogee})
	}
	perigee, err := PerigeePoint(points)
	if err != nil {
		return Trace{}, err
	}
	trace.Markers = append(trace.Markers, Marker{Kind: PerigeeMarker, Label: "Perigee", Point: perigee})
	return trace, nil
}
