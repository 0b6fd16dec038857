// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// builder_test.go - constructor, option and fixture tests.

package builder_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klamt-lab/commodel/builder"
	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/lp"
)

func TestPathway_Cofactor(t *testing.T) {
	m, err := builder.BuildModel("p", []builder.BuilderOption{builder.WithCofactor("X")},
		builder.Pathway("S", "A", "B"))
	require.NoError(t, err)
	require.Equal(t, []string{"A_c", "B_c", "S_c", "X_c"}, m.Metabolites())
	require.Equal(t, []string{"A_to_B", "S_to_A"}, m.Reactions())

	r, err := m.Reaction("S_to_A")
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"S_c": -1, "A_c": 1, "X_c": 1}, r.Stoichiometry)
	require.True(t, math.IsInf(r.UpperBound, 1))

	r, err = m.Reaction("A_to_B")
	require.NoError(t, err)
	require.Equal(t, -1.0, r.Stoichiometry["X_c"])
}

func TestPathway_TooShort(t *testing.T) {
	_, err := builder.BuildModel("p", nil, builder.Pathway("S"))
	require.ErrorIs(t, err, builder.ErrTooFewMetabolites)
}

func TestBoundCapAndCompartment(t *testing.T) {
	m, err := builder.BuildModel("p",
		[]builder.BuilderOption{builder.WithCompartment("e"), builder.WithBoundCap(1000)},
		builder.Pathway("S", "P"),
		builder.Sink("EX_P", "P", math.Inf(1)),
	)
	require.NoError(t, err)
	require.True(t, m.HasMetabolite("S_e"))
	r, err := m.Reaction("EX_P")
	require.NoError(t, err)
	require.Equal(t, 1000.0, r.UpperBound)
	require.Equal(t, map[string]float64{"P_e": -1}, r.Stoichiometry)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithCompartment("") })
	require.Panics(t, func() { builder.WithCofactor("") })
	require.Panics(t, func() { builder.WithBoundCap(0) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestNilConstructor(t *testing.T) {
	_, err := builder.BuildModel("p", nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomNetwork(t *testing.T) {
	_, err := builder.BuildModel("r", nil, builder.RandomNetwork(4, 6))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	a, err := builder.BuildModel("r", []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomNetwork(4, 6))
	require.NoError(t, err)
	b, err := builder.BuildModel("r", []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomNetwork(4, 6))
	require.NoError(t, err)
	require.Equal(t, 4, a.NumMetabolites())
	require.Equal(t, 6, a.NumReactions())
	for _, id := range a.Reactions() {
		ra, err := a.Reaction(id)
		require.NoError(t, err)
		rb, err := b.Reaction(id)
		require.NoError(t, err)
		require.Equal(t, ra, rb)
		require.Len(t, ra.Stoichiometry, 2)
		require.LessOrEqual(t, ra.LowerBound, 0.0)
		require.GreaterOrEqual(t, ra.UpperBound, 1.0)
	}
}

func TestRandomCommunity(t *testing.T) {
	a, err := builder.RandomCommunity(3, 5, 8, "x", "y")
	require.NoError(t, err)
	b, err := builder.RandomCommunity(3, 5, 8, "x", "y")
	require.NoError(t, err)
	require.Equal(t, []string{"M0"}, a.Inputs)
	require.Equal(t, []string{"M4"}, a.Outputs)
	require.Len(t, a.Models, 2)
	for i, sm := range a.Models {
		require.Equal(t, 5, sm.Model.NumMetabolites())
		require.Equal(t, 10, sm.Model.NumReactions())
		require.Equal(t, "M4", sm.ExchangeIDs["M4_c"])
		sink, err := sm.Model.Reaction("EX_M4")
		require.NoError(t, err)
		require.Equal(t, builder.RandomBoundCap, sink.UpperBound)
		for _, id := range sm.Model.Reactions() {
			ra, err := sm.Model.Reaction(id)
			require.NoError(t, err)
			rb, err := b.Models[i].Model.Reaction(id)
			require.NoError(t, err)
			require.Equal(t, ra, rb)
		}
	}
	require.NoError(t, community.Validate(a))

	single, err := builder.RandomSingleModel("x", 5, 8, 3)
	require.NoError(t, err)
	again, err := builder.RandomSingleModel("x", 5, 8, 3)
	require.NoError(t, err)
	r0, err := single.Model.Reaction("R0")
	require.NoError(t, err)
	r0again, err := again.Model.Reaction("R0")
	require.NoError(t, err)
	require.Equal(t, r0, r0again)

	_, err = builder.RandomCommunity(3, 1, 8, "x", "y")
	require.ErrorIs(t, err, builder.ErrTooFewMetabolites)
}

func TestToyModel_Throughput(t *testing.T) {
	m, err := builder.ToyModel("toy", 10)
	require.NoError(t, err)
	sol, err := m.Optimize(context.Background(), lp.NewSimplex(lp.DefaultOptions()))
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	require.InDelta(t, 10, sol.ObjectiveValue, 1e-6)
	require.InDelta(t, 10, sol.Flux(builder.ToyBiomassReaction), 1e-6)

	_, err = builder.ToyModel("toy", -1)
	require.Error(t, err)
}

func TestToyCommunity(t *testing.T) {
	c, err := builder.ToyCommunity(math.Inf(1), "species1", "species2")
	require.NoError(t, err)
	require.Equal(t, []string{"species1", "species2"}, c.Species())
	require.Equal(t, "exchg", c.Compartment)
	for _, sm := range c.Models {
		require.Equal(t, "S", sm.ExchangeIDs["S_c"])
		require.Equal(t, "P", sm.ExchangeIDs["P_c"])
		require.True(t, sm.Model.HasReaction("EX_A"))
	}
}
