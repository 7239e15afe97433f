package main

import (
	"fmt"
	"io"

	"github.com/perigee-astro/perigee"
)

func printBudget(w io.Writer, body perigee.Body, orbit perigee.Orbit, craft perigee.Craft, maneuver *perigee.Maneuver) error {
	budget, err := maneuver.Budget(body, orbit)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s around %s\n", craft, maneuver.Describe(orbit), body)
	fmt.Fprintf(w, "  from %s\n  to   %s\n", orbit, maneuver.Target)
	for _, kind := range budget.Kinds {
		switch kind {
		case perigee.HohmannTransfer:
			tof, err := perigee.HohmannTransferTime(body, orbit, *maneuver.Target)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %-20s %10.2f m/s (time of flight %s)\n", kind, budget.Hohmann*1e3, tof)
		case perigee.InclinationChange:
			fmt.Fprintf(w, "  %-20s %10.2f m/s\n", kind, budget.Inclination*1e3)
		}
	}
	fmt.Fprintf(w, "  %-20s %10.2f m/s\n", "total", budget.Total*1e3)
	return nil
}
