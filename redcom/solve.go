// SPDX-License-Identifier: MIT
// Package: commodel/redcom
//
// solve.go - RedCom FBA, minimal-species FBA and the enumeration loop.
//
// Contract:
//   - The input model is never modified.
//   - Infeasibility is reported through Result.Status, not as an error.
//   - Integer cut for a previous pattern P: Σ (P_s − 1)·indicator_s ≤ −1, so
//     every new solution uses at least one species absent from P.

package redcom

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/klamt-lab/commodel/fluxnet"
	"github.com/klamt-lab/commodel/lp"
)

// FBA runs the linearised RedCom FBA at community growth rate mu on a model
// built by community.BuildRedCom. The objective stays the model's own
// (COMMUNITY_GROWTH, fixed at mu), so the solve checks that mu is reachable
// and returns one feasible flux distribution with its fractions.
func FBA(ctx context.Context, model *fluxnet.Model, mu float64, solver lp.Solver, opts *Options) (*Result, error) {
	o := opts.normalized()
	f, err := formulate(model, mu, "", 0, o)
	if err != nil {
		return nil, fmt.Errorf("FBA: %w", err)
	}
	sol, err := solver.Solve(ctx, f.problem)
	if err != nil {
		return nil, fmt.Errorf("FBA: %w", err)
	}
	res := f.result(sol, "REDCOM FBA")
	o.Logger.Debug("redcom: fba solved", "status", res.Status, "objective", res.Objective)
	return res, nil
}

// MinimalSpecies finds a smallest set of species able to grow at mu, with
// the optional target flux and none of the excluded patterns.
//
// Each species gets a binary indicator s with 0 ≤ s − f ≤ 1, so f may be
// positive only when s = 1; the objective minimises Σ s.
func MinimalSpecies(ctx context.Context, model *fluxnet.Model, mu float64, solver lp.Solver, req Request, opts *Options) (*Result, error) {
	o := opts.normalized()
	f, err := formulate(model, mu, req.TargetReactionID, req.TargetValue, o)
	if err != nil {
		return nil, fmt.Errorf("MinimalSpecies: %w", err)
	}
	p := f.problem
	objective := make([]lp.Term, 0, len(f.bctx.Species))
	for _, sp := range f.bctx.Species {
		s := IndicatorPrefix + sp
		if err := p.AddVariable(s, 0, 1, lp.Integer); err != nil {
			return nil, fmt.Errorf("MinimalSpecies: %w", err)
		}
		terms := []lp.Term{{Var: s, Coef: 1}, {Var: FractionPrefix + sp, Coef: -1}}
		if err := p.AddConstraint(sp+indicatorSuffix, terms, 0, 1); err != nil {
			return nil, fmt.Errorf("MinimalSpecies: %w", err)
		}
		objective = append(objective, lp.Term{Var: s, Coef: 1})
	}
	for i, prev := range req.Exclude {
		terms, err := integerCut(prev, f.bctx.Species)
		if err != nil {
			return nil, fmt.Errorf("MinimalSpecies: exclude[%d]: %w", i, err)
		}
		if err := p.AddConstraint(fmt.Sprintf("%s%d", integerCutName, i), terms, math.Inf(-1), -1); err != nil {
			return nil, fmt.Errorf("MinimalSpecies: %w", err)
		}
	}
	if err := p.SetObjective(objective, lp.Minimize); err != nil {
		return nil, fmt.Errorf("MinimalSpecies: %w", err)
	}

	sol, err := solver.Solve(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("MinimalSpecies: %w", err)
	}
	res := f.result(sol, "MINIMAL SPECIES REDCOM FBA")
	if res.Status == lp.Optimal {
		res.Indicators = make(Pattern, len(f.bctx.Species))
		labels := make([]string, 0, len(f.bctx.Species))
		for _, sp := range f.bctx.Species {
			res.Indicators[sp] = int(sol.Value(IndicatorPrefix+sp) + 0.5)
			labels = append(labels, IndicatorPrefix+sp)
		}
		res.Summary.ObjectiveExpr = strings.Join(labels, " + ")
	}
	o.Logger.Debug("redcom: minimal species solved",
		"status", res.Status,
		"objective", res.Objective,
		"excluded", len(req.Exclude),
		"nodes", res.Nodes)
	return res, nil
}

// integerCut returns the terms of Σ (prev_s − 1)·indicator_s over every
// species of the model. A species missing from prev counts as absent; any
// non-zero entry counts as present and contributes nothing.
func integerCut(prev Pattern, species []string) ([]lp.Term, error) {
	known := make(map[string]struct{}, len(species))
	for _, sp := range species {
		known[sp] = struct{}{}
	}
	var unknown []string
	for sp := range prev {
		if _, ok := known[sp]; !ok {
			unknown = append(unknown, sp)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, unknown)
	}
	terms := make([]lp.Term, 0, len(species))
	for _, sp := range species {
		if prev[sp] == 0 {
			terms = append(terms, lp.Term{Var: IndicatorPrefix + sp, Coef: -1})
		}
	}
	return terms, nil
}

// Enumerate repeats MinimalSpecies, excluding every pattern found so far,
// until a solve is not optimal or limit results were collected (limit ≤ 0
// means no limit). The returned slice holds the optimal results in order.
func Enumerate(ctx context.Context, model *fluxnet.Model, mu float64, solver lp.Solver, req Request, limit int, opts *Options) ([]*Result, error) {
	o := opts.normalized()
	exclude := append([]Pattern(nil), req.Exclude...)
	var found []*Result
	for limit <= 0 || len(found) < limit {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		next := req
		next.Exclude = exclude
		res, err := MinimalSpecies(ctx, model, mu, solver, next, &o)
		if err != nil {
			return found, err
		}
		if res.Status != lp.Optimal {
			o.Logger.Debug("redcom: enumeration finished", "found", len(found), "status", res.Status)
			break
		}
		found = append(found, res)
		exclude = append(exclude, res.Indicators)
	}
	return found, nil
}
