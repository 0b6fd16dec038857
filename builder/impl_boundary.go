// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// impl_boundary.go - Source, Sink, Bounds and Objective constructors.

package builder

import (
	"fmt"

	"github.com/klamt-lab/commodel/fluxnet"
	"github.com/klamt-lab/commodel/lp"
)

// Source adds reaction id: ∅ → met with bounds [0, upper].
func Source(id, met string, upper float64) Constructor {
	return boundary("Source", id, met, 1, upper)
}

// Sink adds reaction id: met → ∅ with bounds [0, upper].
func Sink(id, met string, upper float64) Constructor {
	return boundary("Sink", id, met, -1, upper)
}

func boundary(method, id, met string, coef, upper float64) Constructor {
	return func(m *fluxnet.Model, cfg builderConfig) error {
		err := m.AddReaction(fluxnet.Reaction{
			ID:            id,
			Stoichiometry: map[string]float64{cfg.metID(met): coef},
			LowerBound:    0,
			UpperBound:    cfg.capBound(upper),
		})
		if err != nil {
			return fmt.Errorf("%s: AddReaction(%s): %w", method, id, err)
		}
		return nil
	}
}

// Bounds overrides the bounds of an existing reaction.
func Bounds(id string, lower, upper float64) Constructor {
	return func(m *fluxnet.Model, cfg builderConfig) error {
		if err := m.SetBounds(id, cfg.capBound(lower), cfg.capBound(upper)); err != nil {
			return fmt.Errorf("Bounds: %w", err)
		}
		return nil
	}
}

// Objective maximises reaction id.
func Objective(id string) Constructor {
	return func(m *fluxnet.Model, _ builderConfig) error {
		if err := m.SetObjective(map[string]float64{id: 1}, lp.Maximize); err != nil {
			return fmt.Errorf("Objective: %w", err)
		}
		return nil
	}
}
