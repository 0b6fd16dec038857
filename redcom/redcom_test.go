// SPDX-License-Identifier: MIT
// Package: commodel/redcom
//
// redcom_test.go - RedCom FBA, minimal-species search and summary tests.

package redcom_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/klamt-lab/commodel/builder"
	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/fluxnet"
	"github.com/klamt-lab/commodel/lp"
	"github.com/klamt-lab/commodel/redcom"
)

type RedComSuite struct {
	suite.Suite
	model  *fluxnet.Model
	solver lp.Solver
	ctx    context.Context
}

func (s *RedComSuite) SetupTest() {
	c, err := builder.ToyCommunity(10, "species1", "species2")
	s.Require().NoError(err)
	s.model, _, err = community.BuildRedCom(c)
	s.Require().NoError(err)
	s.solver = lp.NewSimplex(lp.DefaultOptions())
	s.ctx = context.Background()
}

func TestRedComSuite(t *testing.T) {
	suite.Run(t, new(RedComSuite))
}

func (s *RedComSuite) TestFBA() {
	t := s.T()
	res, err := redcom.FBA(s.ctx, s.model, 1, s.solver, nil)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	require.InDelta(t, 1, res.Objective, 1e-6)

	sum := 0.0
	for sp, f := range res.Fractions {
		sum += f
		require.InDelta(t, f, res.Fluxes["C_to_P_"+sp], 1e-6)
		if f < 1e-9 {
			require.Equal(t, 0, res.Activity[sp])
		}
	}
	require.InDelta(t, 1, sum, 1e-6)
	require.InDelta(t, 1, res.Fluxes["EX_C_P_exchg"], 1e-6)
	require.InDelta(t, -1, res.Fluxes["EX_C_S_exchg"], 1e-6)
	require.Len(t, res.Activity, 2)
	require.NotNil(t, res.Summary)
	require.Equal(t, "REDCOM FBA", res.Summary.Title)
}

func (s *RedComSuite) TestFBALeavesModelUntouched() {
	t := s.T()
	before := s.model.Stats()
	_, err := redcom.FBA(s.ctx, s.model, 1, s.solver, nil)
	require.NoError(t, err)
	require.Equal(t, before, s.model.Stats())
	growth, err := s.model.Reaction(community.RedComGrowthReactionID)
	require.NoError(t, err)
	require.Equal(t, 0.0, growth.LowerBound)
	require.Equal(t, 1000.0, growth.UpperBound)
}

func (s *RedComSuite) TestFBAInfeasibleRate() {
	t := s.T()
	res, err := redcom.FBA(s.ctx, s.model, 20, s.solver, nil)
	require.NoError(t, err)
	require.Equal(t, lp.Infeasible, res.Status)
	require.Nil(t, res.Fluxes)
}

func (s *RedComSuite) TestFBAErrors() {
	t := s.T()
	_, err := redcom.FBA(s.ctx, s.model, 0, s.solver, nil)
	require.ErrorIs(t, err, community.ErrNonPositiveGrowth)

	plain, err := builder.ToyModel("toy", 10)
	require.NoError(t, err)
	_, err = redcom.FBA(s.ctx, plain, 1, s.solver, nil)
	require.ErrorIs(t, err, redcom.ErrNotRedComModel)
}

func (s *RedComSuite) TestMinimalSpecies() {
	t := s.T()
	res, err := redcom.MinimalSpecies(s.ctx, s.model, 1, s.solver, redcom.Request{}, nil)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	require.InDelta(t, 1, res.Objective, 1e-6)
	require.Equal(t, 1, res.Indicators["species1"]+res.Indicators["species2"])
	for sp, on := range res.Indicators {
		if on == 0 {
			require.InDelta(t, 0, res.Fractions[sp], 1e-9)
		}
	}
	require.Equal(t, "indicator_species1 + indicator_species2", res.Summary.ObjectiveExpr)
}

func (s *RedComSuite) TestMinimalSpeciesTarget() {
	t := s.T()
	req := redcom.Request{TargetReactionID: "EX_C_P_exchg", TargetValue: 1}
	res, err := redcom.MinimalSpecies(s.ctx, s.model, 1, s.solver, req, nil)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	require.InDelta(t, 1, res.Fluxes["EX_C_P_exchg"], 1e-6)

	req.TargetValue = 5
	res, err = redcom.MinimalSpecies(s.ctx, s.model, 1, s.solver, req, nil)
	require.NoError(t, err)
	require.Equal(t, lp.Infeasible, res.Status)

	req.TargetReactionID = "EX_C_Q_exchg"
	_, err = redcom.MinimalSpecies(s.ctx, s.model, 1, s.solver, req, nil)
	require.ErrorIs(t, err, redcom.ErrUnknownTarget)
}

func (s *RedComSuite) TestMinimalSpeciesExclusions() {
	t := s.T()
	req := redcom.Request{Exclude: []redcom.Pattern{{"species1": 1, "species2": 0}}}
	res, err := redcom.MinimalSpecies(s.ctx, s.model, 1, s.solver, req, nil)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	require.Equal(t, 1, res.Indicators["species2"])

	req.Exclude = append(req.Exclude, redcom.Pattern{"species1": 0, "species2": 1})
	res, err = redcom.MinimalSpecies(s.ctx, s.model, 1, s.solver, req, nil)
	require.NoError(t, err)
	require.Equal(t, redcom.Pattern{"species1": 1, "species2": 1}, res.Indicators)
	require.InDelta(t, 2, res.Objective, 1e-6)

	req.Exclude = []redcom.Pattern{{"species1": 1}}
	res, err = redcom.MinimalSpecies(s.ctx, s.model, 1, s.solver, req, nil)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	require.Equal(t, redcom.Pattern{"species1": 0, "species2": 1}, res.Indicators)

	req.Exclude = []redcom.Pattern{{"ghost": 1}}
	_, err = redcom.MinimalSpecies(s.ctx, s.model, 1, s.solver, req, nil)
	require.ErrorIs(t, err, redcom.ErrUnknownSpecies)
}

func (s *RedComSuite) TestEnumerate() {
	t := s.T()
	found, err := redcom.Enumerate(s.ctx, s.model, 1, s.solver, redcom.Request{}, 0, nil)
	require.NoError(t, err)
	require.Len(t, found, 3)
	require.ElementsMatch(t,
		[]redcom.Pattern{{"species1": 1, "species2": 0}, {"species1": 0, "species2": 1}},
		[]redcom.Pattern{found[0].Indicators, found[1].Indicators})
	require.Equal(t, redcom.Pattern{"species1": 1, "species2": 1}, found[2].Indicators)

	found, err = redcom.Enumerate(s.ctx, s.model, 1, s.solver, redcom.Request{}, 1, nil)
	require.NoError(t, err)
	require.Len(t, found, 1)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = redcom.Enumerate(ctx, s.model, 1, s.solver, redcom.Request{}, 0, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func (s *RedComSuite) TestSummary() {
	t := s.T()
	fluxes := map[string]float64{
		"EX_C_S_exchg":            -1.23456,
		"EX_C_P_exchg":            1,
		"EXCHG_species1_S_c_to_S": -1.23456,
		"EXCHG_species1_P_c_to_P": 1,
	}
	sum := redcom.Summarize(s.model, fluxes, 0.5, "test", 1e-6)
	require.Equal(t, []redcom.Flow{{Label: "S_exchg", Value: -1.235}}, sum.CommunityIn)
	require.Equal(t, []string{"species1"}, sum.Active)
	require.Equal(t, []string{"species2"}, sum.Inactive)

	want := `===SUMMARY OF test===
COMMUNITY IN FLUXES:
S_exchg: -1.235

COMMUNITY OUT FLUXES:
P_exchg: 1

SPECIES-INTERNAL IN FLUXES:
species1_S_c_to_S: -1.235

SPECIES-INTERNAL OUT FLUXES:
species1_P_c_to_P: 1

Objective 1*COMMUNITY_GROWTH has the value...
0.5

Active organisms:
* species1

Inactive organisms:
* species2
`
	require.Equal(t, want, sum.String())
	require.Equal(t, redcom.Pattern{"species1": 1, "species2": 0}, redcom.Activity(s.model, fluxes, 1e-6))
}
