// SPDX-License-Identifier: MIT
// Package: commodel/lp
//
// problem.go - Problem construction and queries.
//
// Determinism:
//   - Variables and constraints keep insertion order; the solver walks them in
//     that order, so identical construction sequences give identical programs.

package lp

import (
	"fmt"
	"math"
)

// Problem is a linear program with optional integer variables.
type Problem struct {
	vars  []Variable
	index map[string]int
	cons  []Constraint
	obj   []Term
	sense Sense
}

// NewProblem returns an empty maximisation problem.
func NewProblem() *Problem {
	return &Problem{index: make(map[string]int)}
}

// AddVariable registers a variable.
//
// Errors: ErrEmptyName, ErrDuplicateVariable, ErrInvalidBounds.
func (p *Problem) AddVariable(name string, lower, upper float64, kind Kind) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := p.index[name]; ok {
		return fmt.Errorf("AddVariable(%s): %w", name, ErrDuplicateVariable)
	}
	if err := checkBounds(lower, upper); err != nil {
		return fmt.Errorf("AddVariable(%s): %w", name, err)
	}
	p.index[name] = len(p.vars)
	p.vars = append(p.vars, Variable{Name: name, Lower: lower, Upper: upper, Kind: kind})
	return nil
}

// HasVariable reports whether name is registered.
func (p *Problem) HasVariable(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Variable returns a copy of the named variable.
func (p *Problem) Variable(name string) (Variable, error) {
	i, ok := p.index[name]
	if !ok {
		return Variable{}, fmt.Errorf("Variable(%s): %w", name, ErrUnknownVariable)
	}
	return p.vars[i], nil
}

// Variables returns a copy of all variables in insertion order.
func (p *Problem) Variables() []Variable {
	out := make([]Variable, len(p.vars))
	copy(out, p.vars)
	return out
}

// SetBounds replaces the bounds of a variable.
func (p *Problem) SetBounds(name string, lower, upper float64) error {
	i, ok := p.index[name]
	if !ok {
		return fmt.Errorf("SetBounds(%s): %w", name, ErrUnknownVariable)
	}
	if err := checkBounds(lower, upper); err != nil {
		return fmt.Errorf("SetBounds(%s): %w", name, err)
	}
	p.vars[i].Lower, p.vars[i].Upper = lower, upper
	return nil
}

// AddConstraint appends lower ≤ Σ terms ≤ upper. Terms referencing the same
// variable twice are summed. A constraint with no terms is accepted as long as
// 0 lies within its bounds; the solver reports infeasibility otherwise.
func (p *Problem) AddConstraint(name string, terms []Term, lower, upper float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return fmt.Errorf("AddConstraint(%s): [%g, %g]: %w", name, lower, upper, ErrInvalidBounds)
	}
	merged, err := p.mergeTerms(terms)
	if err != nil {
		return fmt.Errorf("AddConstraint(%s): %w", name, err)
	}
	p.cons = append(p.cons, Constraint{Name: name, Terms: merged, Lower: lower, Upper: upper})
	return nil
}

// Constraints returns a copy of all constraints in insertion order.
func (p *Problem) Constraints() []Constraint {
	out := make([]Constraint, len(p.cons))
	for i, c := range p.cons {
		c.Terms = append([]Term(nil), c.Terms...)
		out[i] = c
	}
	return out
}

// SetObjective replaces the objective.
func (p *Problem) SetObjective(terms []Term, sense Sense) error {
	merged, err := p.mergeTerms(terms)
	if err != nil {
		return fmt.Errorf("SetObjective: %w", err)
	}
	p.obj = merged
	p.sense = sense
	return nil
}

// Objective returns the objective terms and direction.
func (p *Problem) Objective() ([]Term, Sense) {
	return append([]Term(nil), p.obj...), p.sense
}

// NumVariables returns the number of variables.
func (p *Problem) NumVariables() int { return len(p.vars) }

// NumConstraints returns the number of constraints.
func (p *Problem) NumConstraints() int { return len(p.cons) }

// Clone returns a deep copy of the problem.
func (p *Problem) Clone() *Problem {
	c := &Problem{
		vars:  append([]Variable(nil), p.vars...),
		index: make(map[string]int, len(p.index)),
		cons:  p.Constraints(),
		obj:   append([]Term(nil), p.obj...),
		sense: p.sense,
	}
	for k, v := range p.index {
		c.index[k] = v
	}
	return c
}

// Evaluate returns Σ coef·values[var] for the given terms.
func Evaluate(terms []Term, values map[string]float64) float64 {
	var sum float64
	for _, t := range terms {
		sum += t.Coef * values[t.Var]
	}
	return sum
}

func (p *Problem) mergeTerms(terms []Term) ([]Term, error) {
	pos := make(map[string]int, len(terms))
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		if _, ok := p.index[t.Var]; !ok {
			return nil, fmt.Errorf("term %q: %w", t.Var, ErrUnknownVariable)
		}
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return nil, fmt.Errorf("term %q coefficient %g: %w", t.Var, t.Coef, ErrInvalidBounds)
		}
		if i, ok := pos[t.Var]; ok {
			out[i].Coef += t.Coef
			continue
		}
		pos[t.Var] = len(out)
		out = append(out, t)
	}
	// drop cancelled terms
	kept := out[:0]
	for _, t := range out {
		if t.Coef != 0 {
			kept = append(kept, t)
		}
	}
	return kept, nil
}

func checkBounds(lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper ||
		math.IsInf(lower, 1) || math.IsInf(upper, -1) {
		return fmt.Errorf("[%g, %g]: %w", lower, upper, ErrInvalidBounds)
	}
	return nil
}
