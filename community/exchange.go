// SPDX-License-Identifier: MIT
// Package: commodel/community
//
// exchange.go - exchange compartment synthesis.
//
// Naming:
//   - exchange metabolite:   <exchange_id>_<compartment>
//   - organism exchange:     EXCHG_<species>_<metabolite>_to_<exchange_id>
//   - community boundary:    <community_prefix><exchange_id>_<compartment>
//
// Bounds: lower = -Magnitude iff the id is an input, else 0; upper =
// +Magnitude iff it is an output, else 0.

package community

import (
	"fmt"
	"math"
	"sort"

	"github.com/klamt-lab/commodel/fluxnet"
)

// Level selects which input/output sets decide organism exchange bounds.
type Level int

const (
	// OrganismLevel uses each SingleModel's own Inputs/Outputs.
	OrganismLevel Level = iota
	// CommunityLevel uses the Community Inputs/Outputs, keyed by exchange id.
	CommunityLevel
)

// ExchangePolicy fixes the bound rule for synthesized exchange reactions.
type ExchangePolicy struct {
	Level     Level
	Magnitude float64 // +Inf for unbounded exchanges
}

// UnboundedPolicy returns a ±∞ policy at the given level.
func UnboundedPolicy(level Level) ExchangePolicy {
	return ExchangePolicy{Level: level, Magnitude: math.Inf(1)}
}

func (p ExchangePolicy) bounds(isInput, isOutput bool) (float64, float64) {
	var lb, ub float64
	if isInput {
		lb = -p.Magnitude
	}
	if isOutput {
		ub = p.Magnitude
	}
	return lb, ub
}

// BuildExchangeCompartment adds the exchange metabolites, one exchange
// reaction per organism and declared metabolite, and one boundary reaction per
// community input/output id.
//
// m must contain the namespaced organism networks of c.
func BuildExchangeCompartment(m *fluxnet.Model, c *Community, bctx *BuildContext, policy ExchangePolicy) error {
	comIn, comOut := toSet(c.Inputs), toSet(c.Outputs)
	for _, sm := range c.Models {
		in, out := toSet(sm.Inputs), toSet(sm.Outputs)
		for _, met := range declared(sm) {
			exID, ok := sm.ExchangeIDs[met]
			if !ok {
				return fmt.Errorf("%w: %s: %q", ErrMappingNotFound, sm.Species, met)
			}
			internal := met + Separator + sm.Species
			if !m.HasMetabolite(internal) {
				return fmt.Errorf("%w: %s: %w", ErrMetaboliteNotDeclared, internal, fluxnet.ErrMetaboliteNotFound)
			}
			exMet, err := ensureExchangeMetabolite(m, c, bctx, exID)
			if err != nil {
				return err
			}
			if exMet == internal {
				continue // no net stoichiometry
			}
			var lb, ub float64
			if policy.Level == CommunityLevel {
				lb, ub = policy.bounds(has(comIn, exID), has(comOut, exID))
			} else {
				lb, ub = policy.bounds(has(in, met), has(out, met))
			}
			err = m.AddReaction(fluxnet.Reaction{
				ID:            OrganismExchangePrefix + sm.Species + Separator + met + "_to_" + exID,
				Name:          fmt.Sprintf("Exchange for %s from %s to exchange compartment", internal, sm.Species),
				Stoichiometry: map[string]float64{internal: -1, exMet: 1},
				LowerBound:    lb,
				UpperBound:    ub,
				Species:       sm.Species,
				Role:          fluxnet.RoleExchange,
			})
			if err != nil {
				return err
			}
		}
	}

	for _, exID := range sortedUnion(c.Inputs, c.Outputs) {
		exMet, err := ensureExchangeMetabolite(m, c, bctx, exID)
		if err != nil {
			return err
		}
		lb, ub := policy.bounds(has(comIn, exID), has(comOut, exID))
		err = m.AddReaction(fluxnet.Reaction{
			ID:            c.ExchangePrefix + exMet,
			Name:          "Community exchange for " + exID,
			Stoichiometry: map[string]float64{exMet: -1},
			LowerBound:    lb,
			UpperBound:    ub,
			Role:          fluxnet.RoleBoundary,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureExchangeMetabolite(m *fluxnet.Model, c *Community, bctx *BuildContext, exID string) (string, error) {
	id := exID + Separator + c.Compartment
	if _, err := m.EnsureMetabolite(fluxnet.Metabolite{
		ID:          id,
		Name:        "Exchange compartment metabolite " + exID,
		Compartment: c.Compartment,
	}); err != nil {
		return "", err
	}
	bctx.ExchangeMetabolites[id] = struct{}{}
	return id, nil
}

func toSet(ids []string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func has(s map[string]struct{}, id string) bool {
	_, ok := s[id]
	return ok
}

func sortedUnion(a, b []string) []string {
	s := toSet(a)
	for _, id := range b {
		s[id] = struct{}{}
	}
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
