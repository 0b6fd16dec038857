// SPDX-License-Identifier: MIT
// Package: commodel/community
//
// balanced.go - balanced-growth community model with the fraction coupling
// embedded in the stoichiometric matrix.
//
// With a fixed community growth rate μ and biomass flux b_i of organism i,
// the organism fraction is f_i = b_i/μ. A bound U on reaction r of organism i
// therefore becomes v_r ≤ U·b_i/μ, which is linear in the fluxes:
//
//	Msnake_UPPER_r:  +1·v_r  − (U/μ)·b_i  + 1·v(Rsnake_UPPER_r) = 0,  Rsnake ≥ 0
//	Msnake_LOWER_r:  +1·v_r  − (L/μ)·b_i  − 1·v(Rsnake_LOWER_r) = 0,  Rsnake ≥ 0
//
// Σ b_i = μ is enforced by the COMMUNITY_BIOMASS metabolite and its drain
// fixed at [μ, μ]. The result is a plain LP for any FBA solver.

package community

import (
	"math"

	"github.com/klamt-lab/commodel/fluxnet"
	"github.com/klamt-lab/commodel/lp"
)

// BuildBalancedGrowth assembles a community model in which every organism
// grows at rate mu. The objective is the COMMUNITY_BIOMASS reaction.
//
// Rebuild the model to change mu: the embedded coefficients are scaled by it.
func BuildBalancedGrowth(c *Community, mu float64, opts ...BuildOption) (*fluxnet.Model, *BuildContext, error) {
	if err := ValidateGrowthRate(mu); err != nil {
		return nil, nil, err
	}
	if err := Validate(c); err != nil {
		return nil, nil, err
	}
	cfg := newBuildConfig(opts)
	m, bctx, err := merge(c, cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := addCommunityBiomass(m, c, bctx, mu); err != nil {
		return nil, nil, err
	}
	splits, err := SplitReversible(m, bctx)
	if err != nil {
		return nil, nil, err
	}
	embedded, err := EmbedBounds(m, bctx, c.Compartment, mu)
	if err != nil {
		return nil, nil, err
	}
	if err := BuildExchangeCompartment(m, c, bctx, UnboundedPolicy(CommunityLevel)); err != nil {
		return nil, nil, err
	}
	if err := m.SetObjective(map[string]float64{CommunityBiomassID: 1}, lp.Maximize); err != nil {
		return nil, nil, err
	}
	cfg.logger.Debug("community: balanced growth model built",
		"mu", mu,
		"splits", splits,
		"embedded", embedded,
		"metabolites", m.NumMetabolites(),
		"reactions", m.NumReactions())
	return m, bctx, nil
}

// addCommunityBiomass opens every organism biomass reaction to [0, ∞), makes
// it produce COMMUNITY_BIOMASS and adds the drain fixed at mu.
func addCommunityBiomass(m *fluxnet.Model, c *Community, bctx *BuildContext, mu float64) error {
	if err := m.AddMetabolite(fluxnet.Metabolite{
		ID:          CommunityBiomassID,
		Name:        "Community biomass metabolite",
		Compartment: c.Compartment,
	}); err != nil {
		return err
	}
	for _, sp := range bctx.Species {
		bio := bctx.Biomass[sp]
		if err := m.SetBounds(bio, 0, math.Inf(1)); err != nil {
			return err
		}
		if err := m.AddStoichiometry(bio, map[string]float64{CommunityBiomassID: 1}); err != nil {
			return err
		}
	}
	if err := m.AddReaction(fluxnet.Reaction{
		ID:            CommunityBiomassID,
		Name:          "Biomass reaction for the whole community",
		Stoichiometry: map[string]float64{CommunityBiomassID: -1},
		LowerBound:    mu,
		UpperBound:    mu,
		Role:          fluxnet.RolePseudo,
	}); err != nil {
		return err
	}
	bctx.Pseudo = append(bctx.Pseudo, CommunityBiomassID)
	return nil
}

// EmbedBounds rewrites the finite bounds of every organism-internal,
// non-biomass reaction as pseudo-metabolite balances scaled by the organism
// biomass flux. Run SplitReversible first so that no lower bound is negative.
//
// Upper bounds stay on the reaction as well. An embedded positive lower bound
// is relaxed to 0 on the reaction itself; the pseudo-metabolite row carries
// it. Returns the number of pseudo-reactions created.
func EmbedBounds(m *fluxnet.Model, bctx *BuildContext, compartment string, mu float64) (int, error) {
	if err := ValidateGrowthRate(mu); err != nil {
		return 0, err
	}
	n := 0
	for _, id := range m.Reactions() {
		r, err := m.Reaction(id)
		if err != nil {
			return n, err
		}
		if r.Role != fluxnet.RoleInternal || !bctx.IsSpecies(r.Species) || bctx.IsBiomass(id) {
			continue
		}
		bio := bctx.Biomass[r.Species]
		if !math.IsInf(r.UpperBound, 1) {
			if err := embed(m, bctx, compartment, r, bio, MsnakeUpperPrefix, RsnakeUpperPrefix, r.UpperBound/mu, 1); err != nil {
				return n, err
			}
			n++
		}
		if !math.IsInf(r.LowerBound, -1) && r.LowerBound != 0 {
			if err := embed(m, bctx, compartment, r, bio, MsnakeLowerPrefix, RsnakeLowerPrefix, r.LowerBound/mu, -1); err != nil {
				return n, err
			}
			if r.LowerBound > 0 {
				if err := m.SetBounds(id, 0, r.UpperBound); err != nil {
					return n, err
				}
			}
			n++
		}
	}
	return n, nil
}

// embed adds one pseudo-metabolite/pseudo-reaction pair; delivery is the
// coefficient of the pseudo-metabolite in the delivery reaction.
func embed(m *fluxnet.Model, bctx *BuildContext, compartment string, r fluxnet.Reaction, bio, mPrefix, rPrefix string, scaled, delivery float64) error {
	met := mPrefix + r.ID
	rxn := rPrefix + r.ID
	kind := "Upper"
	if delivery < 0 {
		kind = "Lower"
	}
	if err := m.AddMetabolite(fluxnet.Metabolite{
		ID:          met,
		Name:        kind + " bound enforcing metabolite for " + r.ID,
		Compartment: compartment,
		Species:     r.Species,
	}); err != nil {
		return err
	}
	if err := m.AddStoichiometry(r.ID, map[string]float64{met: 1}); err != nil {
		return err
	}
	if scaled != 0 {
		if err := m.AddStoichiometry(bio, map[string]float64{met: -scaled}); err != nil {
			return err
		}
	}
	if err := m.AddReaction(fluxnet.Reaction{
		ID:            rxn,
		Name:          "Delivery reaction of " + met,
		Stoichiometry: map[string]float64{met: delivery},
		LowerBound:    0,
		UpperBound:    math.Inf(1),
		Species:       r.Species,
		Role:          fluxnet.RolePseudo,
	}); err != nil {
		return err
	}
	bctx.Pseudo = append(bctx.Pseudo, met, rxn)
	return nil
}
