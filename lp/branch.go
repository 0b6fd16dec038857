// SPDX-License-Identifier: MIT
// Package: commodel/lp
//
// branch.go - depth-first branch-and-bound for integer variables.
//
// Strategy:
//   - Nodes are explored LIFO; the "down" child (x ≤ ⌊v⌋) is visited first,
//     which favours small indicator sums in minimisation problems.
//   - The first fractional integer variable in insertion order is branched on.
//   - A node is pruned when its relaxation is not strictly better than the
//     incumbent.

package lp

import (
	"context"
	"fmt"
	"math"
)

type bbNode struct {
	lower []float64
	upper []float64
	depth int
}

func (s *Simplex) branchAndBound(ctx context.Context, p *Problem, lower, upper []float64) (*Solution, error) {
	// minimisation-sense score
	dir := 1.0
	if p.sense == Maximize {
		dir = -1
	}
	score := func(x []float64) float64 {
		var sum float64
		for _, t := range p.obj {
			sum += t.Coef * x[p.index[t.Var]]
		}
		return dir * sum
	}

	var (
		best      []float64
		bestScore = math.Inf(1)
		nodes     int
		stack     = []bbNode{{lower: lower, upper: upper}}
	)
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if nodes >= s.opts.MaxNodes {
			return nil, fmt.Errorf("after %d nodes: %w", nodes, ErrNodeLimit)
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		st, x, err := s.relax(p, n.lower, n.upper)
		if err != nil {
			return nil, err
		}
		switch st {
		case Infeasible:
			continue
		case Unbounded:
			s.opts.Logger.Debug("lp: unbounded relaxation", "depth", n.depth)
			return &Solution{Status: Unbounded, Nodes: nodes}, nil
		}
		val := score(x)
		if best != nil && val >= bestScore-s.opts.IntegerTolerance {
			continue
		}

		branch := -1
		for j, v := range p.vars {
			if v.Kind != Integer {
				continue
			}
			if math.Abs(x[j]-math.Round(x[j])) > s.opts.IntegerTolerance {
				branch = j
				break
			}
		}
		if branch < 0 {
			best, bestScore = x, val
			s.opts.Logger.Debug("lp: incumbent", "objective", dir*val, "depth", n.depth, "nodes", nodes)
			continue
		}

		fl := math.Floor(x[branch])
		if fl+1 <= n.upper[branch] {
			up := bbNode{lower: append([]float64(nil), n.lower...), upper: n.upper, depth: n.depth + 1}
			up.lower[branch] = fl + 1
			stack = append(stack, up)
		}
		if fl >= n.lower[branch] {
			down := bbNode{lower: n.lower, upper: append([]float64(nil), n.upper...), depth: n.depth + 1}
			down.upper[branch] = fl
			stack = append(stack, down)
		}
	}

	if best == nil {
		return &Solution{Status: Infeasible, Nodes: nodes}, nil
	}
	for j, v := range p.vars {
		if v.Kind == Integer {
			best[j] = math.Round(best[j])
		}
	}
	return s.finish(p, Optimal, best, nodes), nil
}
