// SPDX-License-Identifier: MIT
// Package: commodel/community
//
// random_test.go - merge and split properties over seeded random communities.

package community_test

import (
	"github.com/stretchr/testify/require"

	"github.com/klamt-lab/commodel/builder"
	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/fluxnet"
)

var randomSpecies = []string{"alpha", "beta", "gamma"}

func (s *CommunitySuite) TestMergeRandomDisjointUnion() {
	t := s.T()
	for seed := int64(1); seed <= 5; seed++ {
		c, err := builder.RandomCommunity(seed, 6, 12, randomSpecies...)
		require.NoError(t, err)
		var mets, rxns int
		for _, sm := range c.Models {
			mets += sm.Model.NumMetabolites()
			rxns += sm.Model.NumReactions() - 2 // uptake and release
		}

		m, bctx, err := community.Merge(c)
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, mets, m.NumMetabolites(), "seed %d", seed)
		require.Equal(t, rxns, m.NumReactions(), "seed %d", seed)
		require.Equal(t, randomSpecies, bctx.Species)

		owned := make(map[string]int)
		for _, id := range m.Reactions() {
			r, err := m.Reaction(id)
			require.NoError(t, err)
			require.True(t, bctx.IsSpecies(r.Species), "%s", id)
			require.Equal(t, id[len(id)-len(r.Species):], r.Species)
			owned[r.Species]++
		}
		for _, sp := range randomSpecies {
			require.Equal(t, 12, owned[sp], "seed %d species %s", seed, sp)
			require.True(t, m.HasReaction("R0_"+sp))
		}
	}
}

func (s *CommunitySuite) TestSplitRandomPreservesRange() {
	t := s.T()
	for seed := int64(1); seed <= 5; seed++ {
		c, err := builder.RandomCommunity(seed, 6, 12, randomSpecies...)
		require.NoError(t, err)
		m, bctx, err := community.Merge(c)
		require.NoError(t, err)

		before := make(map[string]fluxnet.Reaction)
		reversible := 0
		for _, id := range m.Reactions() {
			r, err := m.Reaction(id)
			require.NoError(t, err)
			before[id] = r
			if r.LowerBound < 0 && !bctx.IsBiomass(id) {
				reversible++
			}
		}

		n, err := community.SplitReversible(m, bctx)
		require.NoError(t, err)
		require.Equal(t, reversible, n, "seed %d", seed)
		require.Len(t, bctx.Splits, n)

		for id, orig := range before {
			pair, split := bctx.Splits[id]
			if !split {
				r, err := m.Reaction(id)
				require.NoError(t, err)
				require.Equal(t, orig, r)
				continue
			}
			require.False(t, m.HasReaction(id))
			fwd, err := m.Reaction(pair.Forward)
			require.NoError(t, err)
			rev, err := m.Reaction(pair.Reverse)
			require.NoError(t, err)
			require.Equal(t, 0.0, fwd.LowerBound)
			require.GreaterOrEqual(t, rev.LowerBound, 0.0)
			// forward − reverse spans [lb, ub]
			require.InDelta(t, orig.LowerBound, fwd.LowerBound-rev.UpperBound, 1e-9, "%s", id)
			require.InDelta(t, orig.UpperBound, fwd.UpperBound-rev.LowerBound, 1e-9, "%s", id)
			require.Equal(t, orig.Stoichiometry, fwd.Stoichiometry)
			for met, coef := range orig.Stoichiometry {
				require.Equal(t, -coef, rev.Stoichiometry[met])
			}
			require.Equal(t, orig.Species, rev.Species)
			net := bctx.NetFlux(map[string]float64{pair.Forward: 7, pair.Reverse: 3}, id)
			require.Equal(t, 4.0, net)
		}
	}
}
