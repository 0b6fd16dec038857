// SPDX-License-Identifier: MIT
// Package: commodel/fluxnet
//
// fba.go - flux balance formulation of a Model.
//
// Formulation:
//   - One continuous variable per reaction, named by reaction id, bounded by
//     the reaction bounds.
//   - One equality row S·v = 0 per metabolite referenced by some reaction,
//     named by metabolite id.
//   - Objective Σ c_r·v_r in the model's direction.

package fluxnet

import (
	"context"
	"fmt"

	"github.com/klamt-lab/commodel/lp"
)

// Problem builds the steady-state LP of the model. Callers may add variables
// and constraints to the returned problem before solving it.
func (m *Model) Problem() (*lp.Problem, error) {
	p := lp.NewProblem()
	rxnIDs := m.Reactions()
	for _, id := range rxnIDs {
		r := m.reactions[id]
		if err := p.AddVariable(id, r.LowerBound, r.UpperBound, lp.Continuous); err != nil {
			return nil, fmt.Errorf("fluxnet: %w", err)
		}
	}

	rows := make(map[string][]lp.Term)
	var obj []lp.Term
	for _, id := range rxnIDs {
		r := m.reactions[id]
		for met, coef := range r.Stoichiometry {
			rows[met] = append(rows[met], lp.Term{Var: id, Coef: coef})
		}
		if r.ObjectiveCoefficient != 0 {
			obj = append(obj, lp.Term{Var: id, Coef: r.ObjectiveCoefficient})
		}
	}
	for _, met := range m.Metabolites() {
		terms, ok := rows[met]
		if !ok {
			continue
		}
		if err := p.AddConstraint(met, terms, 0, 0); err != nil {
			return nil, fmt.Errorf("fluxnet: %w", err)
		}
	}
	if err := p.SetObjective(obj, m.direction); err != nil {
		return nil, fmt.Errorf("fluxnet: %w", err)
	}
	return p, nil
}

// Optimize solves the flux balance problem with solver. Infeasibility is
// reported through Solution.Status.
func (m *Model) Optimize(ctx context.Context, solver lp.Solver) (*Solution, error) {
	p, err := m.Problem()
	if err != nil {
		return nil, err
	}
	sol, err := solver.Solve(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("Optimize(%s): %w", m.ID, err)
	}
	return SolutionFrom(m, sol), nil
}

// SolutionFrom projects an LP solution onto the reactions of m.
func SolutionFrom(m *Model, sol *lp.Solution) *Solution {
	out := &Solution{Status: sol.Status}
	if sol.Status != lp.Optimal {
		return out
	}
	out.ObjectiveValue = sol.Objective
	out.Fluxes = make(map[string]float64, len(m.reactions))
	for id := range m.reactions {
		out.Fluxes[id] = sol.Value(id)
	}
	return out
}
