// SPDX-License-Identifier: MIT

// Package lp models linear and mixed-integer linear programs over named
// variables and solves them.
//
// A Problem holds variables with bounds and a Kind (Continuous or Integer),
// ranged constraints Lower ≤ Σ coef·x ≤ Upper, and a linear objective with a
// Sense. Infinite bounds are written with math.Inf.
//
// Simplex is the bundled Solver: it rewrites the program into standard form,
// removes linearly dependent rows and delegates the LP to
// gonum.org/v1/gonum/optimize/convex/lp. Integer variables are handled with
// depth-first branch-and-bound.
//
// Outcomes:
//   - Optimal: Solution.Values holds one value per variable.
//   - Infeasible / Unbounded: reported through Solution.Status, error is nil.
//   - ErrNumerical: the backend failed on a problem it could not classify.
//   - ErrNodeLimit: branch-and-bound ran out of nodes.
//
// Example:
//
//	p := lp.NewProblem()
//	_ = p.AddVariable("x", 0, 4, lp.Continuous)
//	_ = p.AddVariable("y", 0, math.Inf(1), lp.Continuous)
//	_ = p.AddConstraint("cap", []lp.Term{{"x", 1}, {"y", 1}}, math.Inf(-1), 6)
//	_ = p.SetObjective([]lp.Term{{"x", 2}, {"y", 1}}, lp.Maximize)
//	sol, err := lp.NewSimplex(lp.DefaultOptions()).Solve(ctx, p)
package lp
