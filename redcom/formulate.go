// SPDX-License-Identifier: MIT
// Package: commodel/redcom
//
// formulate.go - shared fraction-variable formulation.
//
// Steps on a private copy of the model:
//  1. discover organisms from the producers of community_biomass;
//  2. fix the optional target reaction, then split reversible organism reactions;
//  3. clamp upper bounds to MaxBound and fix COMMUNITY_GROWTH;
//  4. formulate the flux LP and add per organism a fraction f ∈ [0, 1] with
//     v_bio = μ·f, lb·f ≤ v ≤ ub·f for every organism-internal reaction, and
//     Σ f = 1.

package redcom

import (
	"fmt"
	"math"
	"sort"

	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/fluxnet"
	"github.com/klamt-lab/commodel/lp"
)

type formulation struct {
	model   *fluxnet.Model
	bctx    *community.BuildContext
	problem *lp.Problem
	opts    Options
}

func formulate(src *fluxnet.Model, mu float64, target string, targetValue float64, opts Options) (*formulation, error) {
	if err := community.ValidateGrowthRate(mu); err != nil {
		return nil, err
	}
	m := src.Clone()
	bctx, err := organisms(m)
	if err != nil {
		return nil, err
	}
	if target != "" {
		if !m.HasReaction(target) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
		}
		if err := m.SetBounds(target, targetValue, targetValue); err != nil {
			return nil, err
		}
	}
	if _, err := community.SplitReversible(m, bctx); err != nil {
		return nil, err
	}

	for _, id := range m.Reactions() {
		r, err := m.Reaction(id)
		if err != nil {
			return nil, err
		}
		if r.UpperBound > opts.MaxBound {
			lb := math.Min(r.LowerBound, opts.MaxBound)
			if err := m.SetBounds(id, lb, opts.MaxBound); err != nil {
				return nil, err
			}
		}
	}
	if err := m.SetBounds(community.RedComGrowthReactionID, mu, mu); err != nil {
		return nil, err
	}

	p, err := m.Problem()
	if err != nil {
		return nil, err
	}
	for _, sp := range bctx.Species {
		if err := p.AddVariable(FractionPrefix+sp, 0, 1, lp.Continuous); err != nil {
			return nil, err
		}
	}
	for _, id := range m.Reactions() {
		r, err := m.Reaction(id)
		if err != nil {
			return nil, err
		}
		if r.Role != fluxnet.RoleInternal || !bctx.IsSpecies(r.Species) {
			continue
		}
		f := FractionPrefix + r.Species
		if err := p.SetBounds(id, 0, math.Inf(1)); err != nil {
			return nil, err
		}
		if r.LowerBound > 0 {
			terms := []lp.Term{{Var: id, Coef: 1}, {Var: f, Coef: -r.LowerBound}}
			if err := p.AddConstraint(id+lowerSuffix, terms, 0, math.Inf(1)); err != nil {
				return nil, err
			}
		}
		if !math.IsInf(r.UpperBound, 1) {
			terms := []lp.Term{{Var: f, Coef: r.UpperBound}, {Var: id, Coef: -1}}
			if err := p.AddConstraint(id+upperSuffix, terms, 0, math.Inf(1)); err != nil {
				return nil, err
			}
		}
	}
	sum := make([]lp.Term, 0, len(bctx.Species))
	for _, sp := range bctx.Species {
		bio := bctx.Biomass[sp]
		terms := []lp.Term{{Var: bio, Coef: 1}, {Var: FractionPrefix + sp, Coef: -mu}}
		if err := p.AddConstraint(bio+couplingSuffix, terms, 0, 0); err != nil {
			return nil, err
		}
		sum = append(sum, lp.Term{Var: FractionPrefix + sp, Coef: 1})
	}
	if err := p.AddConstraint(fractionSumName, sum, 1, 1); err != nil {
		return nil, err
	}
	opts.Logger.Debug("redcom: formulation built",
		"species", len(bctx.Species),
		"splits", len(bctx.Splits),
		"variables", p.NumVariables(),
		"constraints", p.NumConstraints())
	return &formulation{model: m, bctx: bctx, problem: p, opts: opts}, nil
}

// organisms maps every producer of community_biomass other than
// COMMUNITY_GROWTH to its owner species.
func organisms(m *fluxnet.Model) (*community.BuildContext, error) {
	if !m.HasMetabolite(community.RedComBiomassMetaboliteID) || !m.HasReaction(community.RedComGrowthReactionID) {
		return nil, ErrNotRedComModel
	}
	ids, err := m.ReactionsOf(community.RedComBiomassMetaboliteID)
	if err != nil {
		return nil, err
	}
	biomass := make(map[string]string)
	for _, id := range ids {
		if id == community.RedComGrowthReactionID {
			continue
		}
		r, err := m.Reaction(id)
		if err != nil {
			return nil, err
		}
		if r.Species == "" {
			return nil, fmt.Errorf("%w: %q", ErrUnownedBiomass, id)
		}
		biomass[r.Species] = id
	}
	if len(biomass) == 0 {
		return nil, ErrNoOrganisms
	}
	species := make([]string, 0, len(biomass))
	for sp := range biomass {
		species = append(species, sp)
	}
	sort.Strings(species)
	return community.NewBuildContext(species, biomass), nil
}

// result projects an LP solution back onto reactions and species.
func (f *formulation) result(sol *lp.Solution, title string) *Result {
	res := &Result{Status: sol.Status, Nodes: sol.Nodes}
	if sol.Status != lp.Optimal {
		return res
	}
	res.Objective = sol.Objective
	res.Fluxes = make(map[string]float64, f.model.NumReactions()+len(f.bctx.Splits))
	for _, id := range f.model.Reactions() {
		res.Fluxes[id] = sol.Value(id)
	}
	for orig := range f.bctx.Splits {
		res.Fluxes[orig] = f.bctx.NetFlux(res.Fluxes, orig)
	}
	res.Fractions = make(map[string]float64, len(f.bctx.Species))
	for _, sp := range f.bctx.Species {
		res.Fractions[sp] = sol.Value(FractionPrefix + sp)
	}
	res.Activity = Activity(f.model, res.Fluxes, f.opts.ActivityTolerance)
	res.Summary = Summarize(f.model, res.Fluxes, sol.Objective, title, f.opts.ActivityTolerance)
	return res
}
