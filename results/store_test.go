// SPDX-License-Identifier: MIT
// Package: commodel/results
//
// store_test.go - run persistence tests on a temporary SQLite file.

package results_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klamt-lab/commodel/fluxnet"
	"github.com/klamt-lab/commodel/lp"
	"github.com/klamt-lab/commodel/redcom"
	"github.com/klamt-lab/commodel/results"
)

func openStore(t *testing.T) *results.Store {
	t.Helper()
	s, err := results.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	res := &redcom.Result{
		Status:    lp.Optimal,
		Objective: 1,
		Fractions: map[string]float64{"species1": 0.25, "species2": 0.75},
		Activity:  redcom.Pattern{"species1": 1, "species2": 1},
	}
	run := results.FromResult(results.KindRedCom, "toy", 0.5, res)
	require.NoError(t, s.Save(ctx, run))
	require.NotEmpty(t, run.ID)

	got, err := s.Get(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, "optimal", got.Status)
	require.Equal(t, results.KindRedCom, got.Kind)
	require.Equal(t, map[string]float64{"species1": 0.25, "species2": 0.75}, got.FractionMap())
	require.Empty(t, got.Indicators)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, results.ErrNotFound)
}

func TestRunsAndPatterns(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	patterns := []redcom.Pattern{
		{"species1": 0, "species2": 1},
		{"species1": 1, "species2": 0},
	}
	for _, p := range patterns {
		res := &redcom.Result{Status: lp.Optimal, Objective: 1, Indicators: p, Activity: p}
		require.NoError(t, s.Save(ctx, results.FromResult(results.KindMinimal, "toy", 1, res)))
	}
	require.NoError(t, s.Save(ctx, results.FromResult(results.KindMinimal, "toy", 1, &redcom.Result{Status: lp.Infeasible})))
	require.NoError(t, s.Save(ctx, results.FromResult(results.KindMinimal, "other", 1,
		&redcom.Result{Status: lp.Optimal, Indicators: redcom.Pattern{"x": 1}})))
	require.NoError(t, s.Save(ctx, results.FromSolution(results.KindFBA, "toy", 0,
		&fluxnet.Solution{Status: lp.Optimal, ObjectiveValue: 10})))

	all, err := s.Runs(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 5)

	fba, err := s.Runs(ctx, results.KindFBA)
	require.NoError(t, err)
	require.Len(t, fba, 1)
	require.Equal(t, 10.0, fba[0].Objective)

	got, err := s.Patterns(ctx, "toy", 1)
	require.NoError(t, err)
	require.ElementsMatch(t, patterns, got)
}
