// SPDX-License-Identifier: MIT
// Package: commodel/lp
//
// simplex.go - gonum-backed LP relaxation.
//
// Contract:
//   - Bounded variables and ranged rows are rewritten into the standard form
//     min cᵀz, Az = b, z ≥ 0 expected by gonum's lp.Simplex.
//   - Fixed variables are folded into the right-hand side.
//   - Linearly dependent rows are removed before the simplex sees them
//     (stoichiometric matrices are rarely full row rank); inconsistent
//     dependent rows classify the problem as infeasible.
//   - Columns absent from every row are resolved analytically.
//
// Complexity:
//   - Dense: O(m·n) memory for the standard-form matrix, O(m²·n) for the
//     dependency sweep. Adequate for community models up to a few thousand
//     reactions.

package lp

import (
	"context"
	"errors"
	"fmt"
	"math"

	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"
	"gonum.org/v1/gonum/mat"
)

// Simplex solves Problems with gonum's simplex implementation. Integer
// variables are handled by depth-first branch-and-bound over LP relaxations.
type Simplex struct {
	opts Options
}

// NewSimplex returns a Simplex solver. Zero-valued option fields fall back to
// DefaultOptions.
func NewSimplex(opts Options) *Simplex {
	return &Simplex{opts: opts.normalized()}
}

var _ Solver = (*Simplex)(nil)

// Solve implements Solver. Infeasible and unbounded problems are reported via
// Solution.Status with a nil error.
func (s *Simplex) Solve(ctx context.Context, p *Problem) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lower, upper := make([]float64, len(p.vars)), make([]float64, len(p.vars))
	hasInteger := false
	for i, v := range p.vars {
		lower[i], upper[i] = v.Lower, v.Upper
		if v.Kind == Integer {
			hasInteger = true
		}
	}
	if hasInteger {
		return s.branchAndBound(ctx, p, lower, upper)
	}
	st, x, err := s.relax(p, lower, upper)
	if err != nil {
		return nil, err
	}
	return s.finish(p, st, x, 1), nil
}

// finish converts a relaxation outcome into a Solution.
func (s *Simplex) finish(p *Problem, st Status, x []float64, nodes int) *Solution {
	sol := &Solution{Status: st, Nodes: nodes}
	if st != Optimal {
		return sol
	}
	sol.Values = make(map[string]float64, len(p.vars))
	for i, v := range p.vars {
		sol.Values[v.Name] = x[i]
	}
	sol.Objective = Evaluate(p.obj, sol.Values)
	return sol
}

// colRef maps a standard-form column back onto an original variable.
type colRef struct {
	z    int
	sign float64
}

// standardForm is the rewritten program plus the back-mapping x = off + Σ sign·z.
type standardForm struct {
	nz   int
	rows []map[int]float64
	b    []float64
	c    []float64
	off  []float64
	refs [][]colRef
}

func (f *standardForm) addCol() int {
	f.nz++
	return f.nz - 1
}

func (f *standardForm) addRow(row map[int]float64, rhs float64) {
	f.rows = append(f.rows, row)
	f.b = append(f.b, rhs)
}

// relax solves the LP relaxation of p under the given variable bounds and
// returns the values of the original variables.
func (s *Simplex) relax(p *Problem, lower, upper []float64) (Status, []float64, error) {
	for i := range lower {
		if lower[i] > upper[i] {
			return Infeasible, nil, nil
		}
	}

	// Stage 1: variables.
	f := &standardForm{off: make([]float64, len(p.vars)), refs: make([][]colRef, len(p.vars))}
	for j := range p.vars {
		l, u := lower[j], upper[j]
		switch {
		case l == u:
			f.off[j] = l
		case !math.IsInf(l, -1):
			f.off[j] = l
			y := f.addCol()
			f.refs[j] = []colRef{{z: y, sign: 1}}
			if !math.IsInf(u, 1) {
				slack := f.addCol()
				f.addRow(map[int]float64{y: 1, slack: 1}, u-l)
			}
		case !math.IsInf(u, 1):
			f.off[j] = u
			f.refs[j] = []colRef{{z: f.addCol(), sign: -1}}
		default:
			f.refs[j] = []colRef{{z: f.addCol(), sign: 1}, {z: f.addCol(), sign: -1}}
		}
	}

	// Stage 2: constraints.
	for _, con := range p.cons {
		row := make(map[int]float64)
		var shift float64
		for _, t := range con.Terms {
			j := p.index[t.Var]
			shift += t.Coef * f.off[j]
			for _, r := range f.refs[j] {
				row[r.z] += t.Coef * r.sign
			}
		}
		for z, v := range row {
			if v == 0 {
				delete(row, z)
			}
		}
		lo, hi := con.Lower-shift, con.Upper-shift
		if len(row) == 0 {
			if lo > s.opts.IntegerTolerance || hi < -s.opts.IntegerTolerance {
				return Infeasible, nil, nil
			}
			continue
		}
		loInf, hiInf := math.IsInf(lo, -1), math.IsInf(hi, 1)
		switch {
		case !loInf && !hiInf && lo == hi:
			f.addRow(row, lo)
		case !loInf && hiInf:
			row[f.addCol()] = -1
			f.addRow(row, lo)
		case loInf && !hiInf:
			row[f.addCol()] = 1
			f.addRow(row, hi)
		case !loInf && !hiInf:
			surplus := f.addCol()
			row[surplus] = -1
			f.addRow(row, lo)
			f.addRow(map[int]float64{surplus: 1, f.addCol(): 1}, hi-lo)
		}
	}

	// Stage 3: objective in minimisation sense.
	f.c = make([]float64, f.nz)
	dir := 1.0
	if p.sense == Maximize {
		dir = -1
	}
	for _, t := range p.obj {
		for _, r := range f.refs[p.index[t.Var]] {
			f.c[r.z] += dir * t.Coef * r.sign
		}
	}

	z, st, err := s.solveStandard(f)
	if err != nil || st != Optimal {
		return st, nil, err
	}
	x := make([]float64, len(p.vars))
	for j := range p.vars {
		x[j] = f.off[j]
		for _, r := range f.refs[j] {
			x[j] += r.sign * z[r.z]
		}
	}
	return Optimal, x, nil
}

// solveStandard reduces the standard form and hands it to gonum.
func (s *Simplex) solveStandard(f *standardForm) ([]float64, Status, error) {
	z := make([]float64, f.nz)

	// Columns that appear in no row are free of coupling: push them to 0 unless
	// that is not optimal, which makes the program unbounded.
	used := make([]bool, f.nz)
	for _, row := range f.rows {
		for j := range row {
			used[j] = true
		}
	}
	colIdx := make([]int, f.nz)
	var cols []int
	for j := 0; j < f.nz; j++ {
		if !used[j] {
			if f.c[j] < 0 {
				return nil, Unbounded, nil
			}
			colIdx[j] = -1
			continue
		}
		colIdx[j] = len(cols)
		cols = append(cols, j)
	}

	keep, feasible := independentRows(f.rows, f.b, f.nz, s.opts.IntegerTolerance)
	if !feasible {
		return nil, Infeasible, nil
	}
	if len(keep) == 0 || len(cols) == 0 {
		return z, Optimal, nil
	}

	m, n := len(keep), len(cols)
	data := make([]float64, m*n)
	b := make([]float64, m)
	for i, ri := range keep {
		for j, v := range f.rows[ri] {
			data[i*n+colIdx[j]] = v
		}
		b[i] = f.b[ri]
	}
	c := make([]float64, n)
	for k, j := range cols {
		c[k] = f.c[j]
	}

	_, x, err := gonumlp.Simplex(c, mat.NewDense(m, n, data), b, s.opts.Tolerance, nil)
	switch {
	case err == nil:
	case errors.Is(err, gonumlp.ErrInfeasible):
		return nil, Infeasible, nil
	case errors.Is(err, gonumlp.ErrUnbounded):
		return nil, Unbounded, nil
	default:
		return nil, Infeasible, fmt.Errorf("%w: %v", ErrNumerical, err)
	}
	for k, j := range cols {
		z[j] = x[k]
	}
	return z, Optimal, nil
}

// independentRows returns the indices of a maximal linearly independent subset
// of rows, scanning in order. A dependent row whose right-hand side disagrees
// with the combination of its predecessors makes the system inconsistent.
func independentRows(rows []map[int]float64, b []float64, n int, tol float64) ([]int, bool) {
	type basisRow struct {
		v     []float64
		rhs   float64
		pivot int
	}
	var (
		basis []basisRow
		keep  []int
	)
	for i, row := range rows {
		v := make([]float64, n)
		scale := 0.0
		for j, a := range row {
			v[j] = a
			scale = math.Max(scale, math.Abs(a))
		}
		rhs := b[i]
		for _, br := range basis {
			factor := v[br.pivot] / br.v[br.pivot]
			if factor == 0 {
				continue
			}
			for j := range v {
				v[j] -= factor * br.v[j]
			}
			rhs -= factor * br.rhs
		}
		pivot, best := -1, 0.0
		for j, a := range v {
			if math.Abs(a) > best {
				pivot, best = j, math.Abs(a)
			}
		}
		if best <= 1e-9*math.Max(1, scale) {
			if math.Abs(rhs) > tol*math.Max(1, math.Abs(b[i])) {
				return nil, false
			}
			continue
		}
		basis = append(basis, basisRow{v: v, rhs: rhs, pivot: pivot})
		keep = append(keep, i)
	}
	return keep, true
}
