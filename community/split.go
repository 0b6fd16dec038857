// SPDX-License-Identifier: MIT
// Package: commodel/community
//
// split.go - reversible organism reactions into irreversible pairs.
//
// For an organism reaction r with lb < 0 (biomass excluded):
//
//	<base>_forward_<sp>: stoichiometry of r,   bounds [0, max(ub, 0)]
//	<base>_reverse_<sp>: stoichiometry of −r,  bounds [max(−ub, 0), −lb]
//
// so that forward − reverse ranges over exactly [lb, ub]. Exchange, boundary
// and pseudo reactions are never split.

package community

import (
	"fmt"
	"math"
	"strings"

	"github.com/klamt-lab/commodel/fluxnet"
)

// SplitReversible splits every reversible organism-internal reaction of m in
// place and records the pairs in bctx.Splits. It returns the number of splits.
func SplitReversible(m *fluxnet.Model, bctx *BuildContext) (int, error) {
	n := 0
	for _, id := range m.Reactions() {
		r, err := m.Reaction(id)
		if err != nil {
			return n, err
		}
		if r.LowerBound >= 0 || r.Role != fluxnet.RoleInternal ||
			!bctx.IsSpecies(r.Species) || bctx.IsBiomass(id) {
			continue
		}
		pair := splitNames(id, r.Species)
		if m.HasReaction(pair.Reverse) {
			return n, fmt.Errorf("SplitReversible(%s): %s: %w", id, pair.Reverse, fluxnet.ErrIDCollision)
		}
		if err := m.RenameReaction(id, pair.Forward); err != nil {
			return n, err
		}
		if err := m.SetBounds(pair.Forward, 0, math.Max(r.UpperBound, 0)); err != nil {
			return n, err
		}
		reverse := make(map[string]float64, len(r.Stoichiometry))
		for met, coef := range r.Stoichiometry {
			reverse[met] = -coef
		}
		err = m.AddReaction(fluxnet.Reaction{
			ID:                   pair.Reverse,
			Name:                 r.Name,
			Stoichiometry:        reverse,
			LowerBound:           math.Max(-r.UpperBound, 0),
			UpperBound:           -r.LowerBound,
			ObjectiveCoefficient: -r.ObjectiveCoefficient,
			Species:              r.Species,
			Role:                 fluxnet.RoleInternal,
		})
		if err != nil {
			return n, err
		}
		bctx.Splits[id] = pair
		n++
	}
	return n, nil
}

func splitNames(id, species string) SplitPair {
	base := strings.TrimSuffix(id, Separator+species)
	return SplitPair{
		Original: id,
		Forward:  base + "_forward_" + species,
		Reverse:  base + "_reverse_" + species,
	}
}
