// SPDX-License-Identifier: MIT
// Package: commodel/community
//
// redcom.go - community model for the RedCom fraction-variable solvers.
//
// Layout added on top of the merged networks:
//   - exchange compartment with OrganismLevel ±1000 bounds;
//   - community_biomass produced (+1) by every organism biomass reaction;
//   - COMMUNITY_GROWTH draining community_biomass, bounds [0, 1000], objective.

package community

import (
	"github.com/klamt-lab/commodel/fluxnet"
	"github.com/klamt-lab/commodel/lp"
)

// BuildRedCom assembles the community model consumed by the redcom package.
func BuildRedCom(c *Community, opts ...BuildOption) (*fluxnet.Model, *BuildContext, error) {
	if err := Validate(c); err != nil {
		return nil, nil, err
	}
	cfg := newBuildConfig(opts)
	m, bctx, err := merge(c, cfg)
	if err != nil {
		return nil, nil, err
	}
	policy := ExchangePolicy{Level: OrganismLevel, Magnitude: DefaultBoundMagnitude}
	if err := BuildExchangeCompartment(m, c, bctx, policy); err != nil {
		return nil, nil, err
	}
	if err := m.AddMetabolite(fluxnet.Metabolite{
		ID:          RedComBiomassMetaboliteID,
		Name:        "Community biomass",
		Compartment: c.Compartment,
	}); err != nil {
		return nil, nil, err
	}
	for _, sp := range bctx.Species {
		if err := m.AddStoichiometry(bctx.Biomass[sp], map[string]float64{RedComBiomassMetaboliteID: 1}); err != nil {
			return nil, nil, err
		}
	}
	if err := m.AddReaction(fluxnet.Reaction{
		ID:            RedComGrowthReactionID,
		Name:          "Community growth",
		Stoichiometry: map[string]float64{RedComBiomassMetaboliteID: -1},
		LowerBound:    0,
		UpperBound:    DefaultBoundMagnitude,
		Role:          fluxnet.RolePseudo,
	}); err != nil {
		return nil, nil, err
	}
	bctx.Pseudo = append(bctx.Pseudo, RedComBiomassMetaboliteID, RedComGrowthReactionID)
	if err := m.SetObjective(map[string]float64{RedComGrowthReactionID: 1}, lp.Maximize); err != nil {
		return nil, nil, err
	}
	cfg.logger.Debug("community: redcom model built",
		"species", len(bctx.Species),
		"metabolites", m.NumMetabolites(),
		"reactions", m.NumReactions())
	return m, bctx, nil
}
