// SPDX-License-Identifier: MIT
// Package: commodel/lp
//
// types.go - sentinel errors, problem vocabulary and solver options.

package lp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for problem construction and solving.
var (
	// ErrEmptyName indicates a variable or constraint without a name.
	ErrEmptyName = errors.New("lp: empty name")

	// ErrDuplicateVariable indicates that a variable name is already registered.
	ErrDuplicateVariable = errors.New("lp: duplicate variable")

	// ErrUnknownVariable indicates a term or bound update that references a missing variable.
	ErrUnknownVariable = errors.New("lp: unknown variable")

	// ErrInvalidBounds indicates lower > upper or a NaN bound.
	ErrInvalidBounds = errors.New("lp: invalid bounds")

	// ErrNumerical indicates that the numeric backend failed on a problem it could not classify.
	ErrNumerical = errors.New("lp: numerical failure")

	// ErrNodeLimit indicates that branch-and-bound exhausted its node budget
	// without proving optimality.
	ErrNodeLimit = errors.New("lp: branch-and-bound node limit reached")
)

// Kind distinguishes continuous from integer variables.
type Kind int

const (
	// Continuous variables take any value within their bounds.
	Continuous Kind = iota
	// Integer variables are restricted to integral values within their bounds.
	Integer
)

// Sense is the optimisation direction of the objective.
type Sense int

const (
	// Maximize the objective.
	Maximize Sense = iota
	// Minimize the objective.
	Minimize
)

// String returns "max" or "min".
func (s Sense) String() string {
	if s == Minimize {
		return "min"
	}
	return "max"
}

// Status reports the outcome of a solve.
type Status int

const (
	// Optimal means an optimal point was found.
	Optimal Status = iota
	// Infeasible means no point satisfies all constraints.
	Infeasible
	// Unbounded means the objective can be improved without limit.
	Unbounded
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Variable is one decision variable of a Problem.
type Variable struct {
	Name  string
	Lower float64
	Upper float64
	Kind  Kind
}

// Term is coef·variable inside a linear expression.
type Term struct {
	Var  string
	Coef float64
}

// Constraint is Lower ≤ Σ terms ≤ Upper. Either side may be infinite.
type Constraint struct {
	Name  string
	Terms []Term
	Lower float64
	Upper float64
}

// Solution is the result of a solve. Values is nil unless Status == Optimal.
type Solution struct {
	Status    Status
	Objective float64
	Values    map[string]float64
	Nodes     int // branch-and-bound nodes explored (1 for pure LPs)
}

// Value returns the value of the named variable, 0 if it is absent.
func (s *Solution) Value(name string) float64 {
	if s == nil || s.Values == nil {
		return 0
	}
	return s.Values[name]
}

// Solver solves linear and mixed-integer linear problems.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (*Solution, error)
}

// Options configures the Simplex solver.
//   - Tolerance: reduced-cost tolerance handed to the simplex (default 1e-10).
//   - IntegerTolerance: distance to the nearest integer accepted as integral (default 1e-6).
//   - MaxNodes: branch-and-bound node budget (default 10000).
//   - Logger: debug sink; nil falls back to slog.Default().
type Options struct {
	Tolerance        float64
	IntegerTolerance float64
	MaxNodes         int
	Logger           *slog.Logger
}

// DefaultOptions returns the solver defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:        1e-10,
		IntegerTolerance: 1e-6,
		MaxNodes:         10000,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Tolerance <= 0 {
		o.Tolerance = def.Tolerance
	}
	if o.IntegerTolerance <= 0 {
		o.IntegerTolerance = def.IntegerTolerance
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = def.MaxNodes
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
