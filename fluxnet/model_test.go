// SPDX-License-Identifier: MIT

package fluxnet_test

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/klamt-lab/commodel/fluxnet"
	"github.com/klamt-lab/commodel/lp"
)

var inf = math.Inf(1)

// chain builds EX_S: → S, R1: S → P, EX_P: P → with R1 capped at 10.
func chain(t *testing.T) *fluxnet.Model {
	t.Helper()
	m := fluxnet.New("chain")
	for _, id := range []string{"S", "P"} {
		require.NoError(t, m.AddMetabolite(fluxnet.Metabolite{ID: id, Compartment: "c"}))
	}
	require.NoError(t, m.AddReaction(fluxnet.Reaction{ID: "EX_S", Stoichiometry: map[string]float64{"S": 1}, LowerBound: 0, UpperBound: inf}))
	require.NoError(t, m.AddReaction(fluxnet.Reaction{ID: "R1", Stoichiometry: map[string]float64{"S": -1, "P": 1}, LowerBound: -5, UpperBound: 10}))
	require.NoError(t, m.AddReaction(fluxnet.Reaction{ID: "EX_P", Stoichiometry: map[string]float64{"P": -1}, LowerBound: 0, UpperBound: inf}))
	require.NoError(t, m.SetObjective(map[string]float64{"EX_P": 1}, lp.Maximize))
	return m
}

type ModelSuite struct {
	suite.Suite
	m *fluxnet.Model
}

func (s *ModelSuite) SetupTest() { s.m = chain(s.T()) }

func (s *ModelSuite) TestAddReactionValidation() {
	err := s.m.AddReaction(fluxnet.Reaction{ID: "R1", Stoichiometry: map[string]float64{"S": 1}})
	require.ErrorIs(s.T(), err, fluxnet.ErrDuplicateReaction)

	err = s.m.AddReaction(fluxnet.Reaction{ID: "R2", Stoichiometry: map[string]float64{"S": 0}})
	require.ErrorIs(s.T(), err, fluxnet.ErrEmptyStoichiometry)

	err = s.m.AddReaction(fluxnet.Reaction{ID: "R3", Stoichiometry: map[string]float64{"Q": 1}})
	require.ErrorIs(s.T(), err, fluxnet.ErrMetaboliteNotFound)

	err = s.m.AddReaction(fluxnet.Reaction{ID: "R4", Stoichiometry: map[string]float64{"S": 1}, LowerBound: 2, UpperBound: 1})
	require.ErrorIs(s.T(), err, fluxnet.ErrInvalidBounds)

	require.ErrorIs(s.T(), s.m.AddReaction(fluxnet.Reaction{}), fluxnet.ErrEmptyID)
	require.Equal(s.T(), 3, s.m.NumReactions())
}

func (s *ModelSuite) TestEnsureMetaboliteReuses() {
	created, err := s.m.EnsureMetabolite(fluxnet.Metabolite{ID: "S", Name: "other"})
	require.NoError(s.T(), err)
	require.False(s.T(), created)
	met, err := s.m.Metabolite("S")
	require.NoError(s.T(), err)
	require.Empty(s.T(), met.Name)

	created, err = s.m.EnsureMetabolite(fluxnet.Metabolite{ID: "X"})
	require.NoError(s.T(), err)
	require.True(s.T(), created)
	require.Equal(s.T(), []string{"P", "S", "X"}, s.m.Metabolites())
}

func (s *ModelSuite) TestRemoveReactionsAllOrNothing() {
	err := s.m.RemoveReactions("EX_S", "missing")
	require.ErrorIs(s.T(), err, fluxnet.ErrReactionNotFound)
	require.True(s.T(), s.m.HasReaction("EX_S"))

	require.NoError(s.T(), s.m.RemoveReactions("EX_S", "EX_P"))
	require.Equal(s.T(), []string{"R1"}, s.m.Reactions())
	require.True(s.T(), s.m.HasMetabolite("S"))
}

func (s *ModelSuite) TestRenames() {
	require.NoError(s.T(), s.m.RenameMetabolite("S", "S2"))
	r, err := s.m.Reaction("R1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), map[string]float64{"S2": -1, "P": 1}, r.Stoichiometry)

	require.ErrorIs(s.T(), s.m.RenameMetabolite("S2", "P"), fluxnet.ErrIDCollision)
	require.ErrorIs(s.T(), s.m.RenameReaction("R1", "EX_P"), fluxnet.ErrIDCollision)
	require.NoError(s.T(), s.m.RenameReaction("R1", "R1b"))
	require.False(s.T(), s.m.HasReaction("R1"))
	require.True(s.T(), s.m.HasReaction("R1b"))
}

func (s *ModelSuite) TestAddStoichiometry() {
	require.NoError(s.T(), s.m.AddMetabolite(fluxnet.Metabolite{ID: "M"}))
	require.NoError(s.T(), s.m.AddStoichiometry("R1", map[string]float64{"M": 2, "S": 1}))
	r, err := s.m.Reaction("R1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), map[string]float64{"M": 2, "P": 1}, r.Stoichiometry)

	err = s.m.AddStoichiometry("EX_P", map[string]float64{"P": 1})
	require.ErrorIs(s.T(), err, fluxnet.ErrEmptyStoichiometry)
	r, err = s.m.Reaction("EX_P")
	require.NoError(s.T(), err)
	require.Equal(s.T(), map[string]float64{"P": -1}, r.Stoichiometry)
}

func (s *ModelSuite) TestReactionIsCopy() {
	r, err := s.m.Reaction("R1")
	require.NoError(s.T(), err)
	r.Stoichiometry["S"] = 99
	again, err := s.m.Reaction("R1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), -1.0, again.Stoichiometry["S"])
}

func (s *ModelSuite) TestReactionsOf() {
	ids, err := s.m.ReactionsOf("S")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"EX_S", "R1"}, ids)
	_, err = s.m.ReactionsOf("nope")
	require.ErrorIs(s.T(), err, fluxnet.ErrMetaboliteNotFound)
}

func (s *ModelSuite) TestObjective() {
	require.Equal(s.T(), map[string]float64{"EX_P": 1}, s.m.Objective())
	require.NoError(s.T(), s.m.SetObjective(map[string]float64{"R1": 2}, lp.Minimize))
	require.Equal(s.T(), map[string]float64{"R1": 2}, s.m.Objective())
	require.Equal(s.T(), lp.Minimize, s.m.Direction())
	require.ErrorIs(s.T(), s.m.SetObjective(map[string]float64{"nope": 1}, lp.Maximize), fluxnet.ErrReactionNotFound)
}

func (s *ModelSuite) TestCloneIsDeep() {
	c := s.m.Clone()
	require.NoError(s.T(), c.SetBounds("R1", 0, 1))
	require.NoError(s.T(), c.RemoveReactions("EX_S"))

	r, err := s.m.Reaction("R1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10.0, r.UpperBound)
	require.True(s.T(), s.m.HasReaction("EX_S"))
	require.Equal(s.T(), s.m.Objective(), c.Objective())
}

func (s *ModelSuite) TestNamespaceAndMerge() {
	a, b := chain(s.T()), chain(s.T())
	require.NoError(s.T(), a.Namespace("one"))
	require.NoError(s.T(), b.Namespace("two"))

	r, err := a.Reaction("R1_one")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "one", r.Species)
	require.Equal(s.T(), map[string]float64{"S_one": -1, "P_one": 1}, r.Stoichiometry)

	require.NoError(s.T(), a.Merge(b))
	require.Equal(s.T(), 4, a.NumMetabolites())
	require.Equal(s.T(), 6, a.NumReactions())
	require.Equal(s.T(), map[string]float64{"EX_P_one": 1}, a.Objective())

	require.ErrorIs(s.T(), a.Merge(b), fluxnet.ErrIDCollision)
	require.Equal(s.T(), 6, a.NumReactions())

	st := a.Stats()
	require.Equal(s.T(), 3, st.BySpecies["one"])
	require.Equal(s.T(), 3, st.BySpecies["two"])
	require.Equal(s.T(), 6, st.ByRole[fluxnet.RoleInternal])
}

func (s *ModelSuite) TestOptimize() {
	sol, err := s.m.Optimize(context.Background(), lp.NewSimplex(lp.DefaultOptions()))
	require.NoError(s.T(), err)
	require.Equal(s.T(), lp.Optimal, sol.Status)
	require.InDelta(s.T(), 10, sol.ObjectiveValue, 1e-6)
	require.InDelta(s.T(), 10, sol.Flux("R1"), 1e-6)
	require.InDelta(s.T(), 10, sol.Flux("EX_S"), 1e-6)
}

func (s *ModelSuite) TestOptimizeInfeasible() {
	require.NoError(s.T(), s.m.SetBounds("EX_P", 20, 30))
	sol, err := s.m.Optimize(context.Background(), lp.NewSimplex(lp.DefaultOptions()))
	require.NoError(s.T(), err)
	require.Equal(s.T(), lp.Infeasible, sol.Status)
	require.Nil(s.T(), sol.Fluxes)
}

func (s *ModelSuite) TestStoichiometricMatrix() {
	S, rows, cols, err := s.m.StoichiometricMatrix()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"P", "S"}, rows)
	require.Equal(s.T(), []string{"EX_P", "EX_S", "R1"}, cols)
	require.Equal(s.T(), -1.0, S.At(0, 0))
	require.Equal(s.T(), 1.0, S.At(1, 1))
	require.Equal(s.T(), -1.0, S.At(1, 2))
	require.Equal(s.T(), 1.0, S.At(0, 2))

	_, _, _, err = fluxnet.New("empty").StoichiometricMatrix()
	require.ErrorIs(s.T(), err, fluxnet.ErrEmptyModel)
}

func (s *ModelSuite) TestJSONRoundTrip() {
	require.NoError(s.T(), s.m.Namespace("sp"))
	require.NoError(s.T(), s.m.AddMetabolite(fluxnet.Metabolite{ID: "S_exchg", Compartment: "exchg"}))
	require.NoError(s.T(), s.m.AddReaction(fluxnet.Reaction{
		ID: "EXCHG_sp_S_to_S", Stoichiometry: map[string]float64{"S_sp": -1, "S_exchg": 1},
		LowerBound: -inf, UpperBound: 0, Species: "sp", Role: fluxnet.RoleExchange,
	}))

	var buf bytes.Buffer
	require.NoError(s.T(), s.m.WriteJSON(&buf))
	require.Contains(s.T(), buf.String(), `"lower_bound": "-inf"`)
	require.Contains(s.T(), buf.String(), `"role": "exchange"`)
	require.Contains(s.T(), buf.String(), "\n    \"id\"")

	back, err := fluxnet.ReadJSON(&buf)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.m.Reactions(), back.Reactions())
	r, err := back.Reaction("EXCHG_sp_S_to_S")
	require.NoError(s.T(), err)
	require.True(s.T(), math.IsInf(r.LowerBound, -1))
	require.Equal(s.T(), fluxnet.RoleExchange, r.Role)
	require.Equal(s.T(), "sp", r.Species)
	require.Equal(s.T(), s.m.Objective(), back.Objective())

	path := filepath.Join(s.T().TempDir(), "model.json")
	require.NoError(s.T(), back.WriteFile(path))
	again, err := fluxnet.ReadFile(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), back.Metabolites(), again.Metabolites())
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

func TestReadJSON_Rejects(t *testing.T) {
	_, err := fluxnet.ReadJSON(bytes.NewBufferString(`{"id":"x","objective_direction":"sideways"}`))
	require.Error(t, err)

	_, err = fluxnet.ReadJSON(bytes.NewBufferString(`{"id":"x","metabolites":[{"id":"A"}],
		"reactions":[{"id":"R","metabolites":{"A":1},"lower_bound":"5","upper_bound":1}]}`))
	require.ErrorIs(t, err, fluxnet.ErrInvalidBounds)
}
