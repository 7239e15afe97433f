package perigee

import (
	"fmt"
	"math"
	"time"
)

// ManeuverKind defines the kind of an impulsive maneuver component.
type ManeuverKind uint8

const (
	// HohmannTransfer is a two impulse transfer between two circular orbits.
	HohmannTransfer ManeuverKind = iota + 1
	// InclinationChange is a pure plane change performed at the ascending node.
	InclinationChange
	// BiEllipticTransfer is a three impulse transfer (no delta-v formula yet).
	BiEllipticTransfer
)

func (k ManeuverKind) String() string {
	switch k {
	case HohmannTransfer:
		return "Hohmann transfer"
	case InclinationChange:
		return "inclination change"
	case BiEllipticTransfer:
		return "bi-elliptic transfer"
	default:
		return fmt.Sprintf("maneuver kind %d", uint8(k))
	}
}

// Maneuver defines an impulsive transfer to a target orbit.
// Nothing is validated on creation: the feasibility is checked when computing the delta-v.
type Maneuver struct {
	Target *Orbit
	Color  string
}

// NewManeuver returns a new maneuver to the provided target orbit.
func NewManeuver(target *Orbit, color string) *Maneuver {
	return &Maneuver{target, color}
}

// DeltaVBudget is the breakdown of the delta-v of a maneuver, in km/s.
type DeltaVBudget struct {
	Kinds       []ManeuverKind
	Hohmann     float64
	Inclination float64
	Total       float64
}

// Kinds returns the maneuver components needed to go from the initial orbit to the target.
func (m *Maneuver) Kinds(initial Orbit) []ManeuverKind {
	var kinds []ManeuverKind
	if m.Target == nil {
		return kinds
	}
	if m.Target.apogee != initial.apogee {
		kinds = append(kinds, HohmannTransfer)
	}
	if m.Target.inclination != initial.inclination {
		kinds = append(kinds, InclinationChange)
	}
	return kinds
}

// Budget computes every component of the maneuver from the initial orbit around the given body.
// The total is the plain sum of the components, not a combined maneuver optimum.
func (m *Maneuver) Budget(body Body, initial Orbit) (DeltaVBudget, error) {
	if m.Target == nil {
		return DeltaVBudget{}, &PreconditionError{"delta-v", "maneuver has no target orbit"}
	}
	budget := DeltaVBudget{Kinds: m.Kinds(initial)}
	for _, kind := range budget.Kinds {
		Δv, err := m.ComponentDeltaV(kind, body, initial)
		if err != nil {
			return DeltaVBudget{}, err
		}
		switch kind {
		case HohmannTransfer:
			budget.Hohmann = Δv
		case InclinationChange:
			budget.Inclination = Δv
		}
		budget.Total += Δv
	}
	return budget, nil
}

// DeltaV returns the total delta-v in km/s needed to go from the initial orbit to the target.
func (m *Maneuver) DeltaV(body Body, initial Orbit) (float64, error) {
	budget, err := m.Budget(body, initial)
	if err != nil {
		return 0, err
	}
	return budget.Total, nil
}

// ComponentDeltaV returns the absolute delta-v in km/s of a single maneuver component.
func (m *Maneuver) ComponentDeltaV(kind ManeuverKind, body Body, initial Orbit) (float64, error) {
	if m.Target == nil {
		return 0, &PreconditionError{"delta-v", "maneuver has no target orbit"}
	}
	switch kind {
	case HohmannTransfer:
		if !initial.IsCircular() || !m.Target.IsCircular() {
			return 0, &PreconditionError{"Hohmann transfer", "both orbits must be circular to compute a Hohmann transfer"}
		}
		ΔvInit, ΔvFinal, _, err := Hohmann(initial.Periapsis(body.Radius), m.Target.Periapsis(body.Radius), body)
		if err != nil {
			return 0, err
		}
		return math.Abs(ΔvInit) + math.Abs(ΔvFinal), nil
	case InclinationChange:
		return inclinationChangeΔv(body, initial, *m.Target)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedManeuver, kind)
	}
}

// Describe returns a human readable name of the maneuver from the initial orbit.
func (m *Maneuver) Describe(initial Orbit) string {
	kinds := m.Kinds(initial)
	switch {
	case len(kinds) == 2:
		return "Hohmann Transfer (with inclination change)"
	case len(kinds) == 1 && kinds[0] == HohmannTransfer:
		return "Hohmann Transfer"
	default:
		return "Inclination Change"
	}
}

// Hohmann computes an Hohmann transfer between the circular orbits of radii rI and rF (from the
// center of the body). It returns the signed Δv of the departure and arrival burns, and the
// time of flight.
func Hohmann(rI, rF float64, body Body) (ΔvInit, ΔvFinal float64, tof time.Duration, err error) {
	if !(rI > 0) || !(rF > 0) {
		err = &NumericDomainError{"Hohmann transfer", math.Min(rI, rF)}
		return
	}
	μ := body.GM()
	ΔvInit = math.Sqrt(μ/rI) * (math.Sqrt(2*rF/(rI+rF)) - 1)
	ΔvFinal = math.Sqrt(μ/rF) * (1 - math.Sqrt(2*rI/(rI+rF)))
	if math.IsNaN(ΔvInit+ΔvFinal) || math.IsInf(ΔvInit+ΔvFinal, 0) {
		err = &NumericDomainError{"Hohmann transfer", ΔvInit + ΔvFinal}
		return
	}
	aTransfer := 0.5 * (rI + rF)
	tof = time.Duration(math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/μ) * float64(time.Second))
	return
}

// HohmannTransferTime returns the time of flight of the Hohmann transfer between the two orbits,
// i.e. half the period of the transfer ellipse.
func HohmannTransferTime(body Body, initial, target Orbit) (time.Duration, error) {
	_, _, tof, err := Hohmann(initial.Periapsis(body.Radius), target.Periapsis(body.Radius), body)
	return tof, err
}

// inclinationChangeΔv computes the plane change at the ascending node of the higher orbit,
// where the orbital velocity is the lowest.
func inclinationChangeΔv(body Body, initial, target Orbit) (float64, error) {
	higher := target
	if initial.apogee > target.apogee {
		higher = initial
	}
	v, err := body.circularVelocity(higher.AscendingNodeRadius(body.Radius))
	if err != nil {
		return 0, err
	}
	Δi := Deg2rad(target.inclination - initial.inclination)
	Δv := math.Abs(2 * v * math.Sin(Δi/2))
	if math.IsNaN(Δv) || math.IsInf(Δv, 0) {
		return 0, &NumericDomainError{"inclination change", Δi}
	}
	return Δv, nil
}
