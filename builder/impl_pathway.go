// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// impl_pathway.go - implementation of the Pathway(names...) constructor.
//
// Contract:
//   - len(names) ≥ 2 (else ErrTooFewMetabolites).
//   - Adds metabolites <name>_<compartment> in argument order (existing ones
//     are reused, so pathways can share intermediates).
//   - Emits irreversible steps <a>_to_<b>, bounds [0, +∞) capped by WithBoundCap.
//   - With WithCofactor: step 1 produces the cofactor, step 2 consumes it,
//     and so on, so an even-length pathway is cofactor balanced.
//
// Determinism:
//   - Reaction emission order follows names.

package builder

import (
	"fmt"
	"math"

	"github.com/klamt-lab/commodel/fluxnet"
)

const (
	methodPathway   = "Pathway"
	minPathwayNodes = 2
)

// Pathway returns a Constructor for a linear chain names[0] → … → names[n-1].
func Pathway(names ...string) Constructor {
	return func(m *fluxnet.Model, cfg builderConfig) error {
		if len(names) < minPathwayNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPathway, len(names), minPathwayNodes, ErrTooFewMetabolites)
		}
		for _, name := range names {
			if _, err := m.EnsureMetabolite(fluxnet.Metabolite{ID: cfg.metID(name), Name: name, Compartment: cfg.compartment}); err != nil {
				return fmt.Errorf("%s: EnsureMetabolite(%s): %w", methodPathway, name, err)
			}
		}
		if cfg.cofactor != "" {
			if _, err := m.EnsureMetabolite(fluxnet.Metabolite{ID: cfg.metID(cfg.cofactor), Name: cfg.cofactor, Compartment: cfg.compartment}); err != nil {
				return fmt.Errorf("%s: EnsureMetabolite(%s): %w", methodPathway, cfg.cofactor, err)
			}
		}

		for i := 1; i < len(names); i++ {
			from, to := names[i-1], names[i]
			stoich := map[string]float64{cfg.metID(from): -1, cfg.metID(to): 1}
			if cfg.cofactor != "" {
				sign := 1.0
				if i%2 == 0 {
					sign = -1
				}
				stoich[cfg.metID(cfg.cofactor)] = sign
			}
			id := from + "_to_" + to
			err := m.AddReaction(fluxnet.Reaction{
				ID:            id,
				Stoichiometry: stoich,
				LowerBound:    0,
				UpperBound:    cfg.capBound(math.Inf(1)),
			})
			if err != nil {
				return fmt.Errorf("%s: AddReaction(%s): %w", methodPathway, id, err)
			}
		}
		return nil
	}
}
