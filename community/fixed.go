// SPDX-License-Identifier: MIT
// Package: commodel/community
//
// fixed.go - community model with fixed organism fractions.

package community

import (
	"math"

	"github.com/klamt-lab/commodel/fluxnet"
)

// BuildFixedFractions assembles a community model in which the bounds of every
// organism reaction are scaled by that organism's fraction of the community
// biomass. Finite bounds are multiplied; infinite bounds stay infinite unless
// the fraction is 0, in which case they collapse to 0.
//
// Organism exchanges use OrganismLevel ±∞ bounds. No objective is set.
func BuildFixedFractions(c *Community, fractions map[string]float64, opts ...BuildOption) (*fluxnet.Model, *BuildContext, error) {
	if err := Validate(c); err != nil {
		return nil, nil, err
	}
	if err := ValidateFractions(c, fractions); err != nil {
		return nil, nil, err
	}
	cfg := newBuildConfig(opts)
	m, bctx, err := merge(c, cfg)
	if err != nil {
		return nil, nil, err
	}
	scaled := 0
	for _, id := range m.Reactions() {
		r, err := m.Reaction(id)
		if err != nil {
			return nil, nil, err
		}
		f, ok := fractions[r.Species]
		if !ok || r.Role != fluxnet.RoleInternal {
			continue
		}
		lb, ub := scaleBound(r.LowerBound, f), scaleBound(r.UpperBound, f)
		if err := m.SetBounds(id, lb, ub); err != nil {
			return nil, nil, err
		}
		scaled++
	}
	if err := BuildExchangeCompartment(m, c, bctx, UnboundedPolicy(OrganismLevel)); err != nil {
		return nil, nil, err
	}
	cfg.logger.Debug("community: fixed-fraction model built",
		"scaled", scaled,
		"metabolites", m.NumMetabolites(),
		"reactions", m.NumReactions())
	return m, bctx, nil
}

func scaleBound(b, f float64) float64 {
	if math.IsInf(b, 0) {
		if f == 0 {
			return 0
		}
		return b
	}
	return b * f
}
