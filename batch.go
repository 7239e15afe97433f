package perigee

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// BatchOrbitPoints computes the points of each orbit concurrently, one goroutine per orbit.
// The result is indexed like orbits. If any orbit fails, the error of the lowest index is
// returned and no points are.
func (g *Geometry) BatchOrbitPoints(orbits []Orbit, radius float64) ([][]r3.Vec, error) {
	var wg sync.WaitGroup
	points := make([][]r3.Vec, len(orbits))
	errs := make([]error, len(orbits))
	for i, o := range orbits {
		wg.Add(1)
		go func(i int, o Orbit) {
			defer wg.Done()
			points[i], errs[i] = g.OrbitPoints(o, radius)
		}(i, o)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("orbit #%d (%s): %w", i, orbits[i], err)
		}
	}
	return points, nil
}
