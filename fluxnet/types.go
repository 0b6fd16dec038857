// SPDX-License-Identifier: MIT
// Package: commodel/fluxnet
//
// types.go - Metabolite, Reaction, Role, Model, sentinel errors and the
// FluxModel contract.
//
// Errors:
//
//	ErrEmptyID             - metabolite or reaction id is "".
//	ErrDuplicateMetabolite - metabolite id already present.
//	ErrDuplicateReaction   - reaction id already present.
//	ErrMetaboliteNotFound  - referenced metabolite does not exist.
//	ErrReactionNotFound    - referenced reaction does not exist.
//	ErrEmptyStoichiometry  - reaction would have no non-zero coefficient.
//	ErrInvalidBounds       - lower > upper, NaN, or an infinite bound on the wrong side.
//	ErrIDCollision         - merge or rename would produce an id clash.
//	ErrEmptyModel          - matrix export on a model without reactions.

package fluxnet

import (
	"context"
	"errors"
	"fmt"

	"github.com/klamt-lab/commodel/lp"
)

// Sentinel errors for model operations.
var (
	// ErrEmptyID indicates an empty metabolite or reaction identifier.
	ErrEmptyID = errors.New("fluxnet: empty id")

	// ErrDuplicateMetabolite indicates that a metabolite id is already in use.
	ErrDuplicateMetabolite = errors.New("fluxnet: duplicate metabolite")

	// ErrDuplicateReaction indicates that a reaction id is already in use.
	ErrDuplicateReaction = errors.New("fluxnet: duplicate reaction")

	// ErrMetaboliteNotFound indicates a reference to a missing metabolite.
	ErrMetaboliteNotFound = errors.New("fluxnet: metabolite not found")

	// ErrReactionNotFound indicates a reference to a missing reaction.
	ErrReactionNotFound = errors.New("fluxnet: reaction not found")

	// ErrEmptyStoichiometry indicates a reaction without non-zero coefficients.
	ErrEmptyStoichiometry = errors.New("fluxnet: empty stoichiometry")

	// ErrInvalidBounds indicates lower > upper or a NaN bound.
	ErrInvalidBounds = errors.New("fluxnet: invalid bounds")

	// ErrIDCollision indicates that an operation would create two entities with one id.
	ErrIDCollision = errors.New("fluxnet: id collision")

	// ErrEmptyModel indicates an operation that needs at least one reaction.
	ErrEmptyModel = errors.New("fluxnet: model has no reactions")
)

// Role classifies a reaction inside a community model.
type Role int

const (
	// RoleInternal is organism chemistry (the default).
	RoleInternal Role = iota
	// RoleExchange moves a metabolite between an organism and the exchange compartment.
	RoleExchange
	// RoleBoundary moves an exchange-compartment metabolite across the community boundary.
	RoleBoundary
	// RolePseudo encodes a constraint or the community biomass drain.
	RolePseudo
)

var roleNames = [...]string{"internal", "exchange", "boundary", "pseudo"}

// String returns the lower-case role name.
func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	if r < 0 || int(r) >= len(roleNames) {
		return nil, fmt.Errorf("fluxnet: unknown role %d", int(r))
	}
	return []byte(roleNames[r]), nil
}

// UnmarshalText decodes a role name; "" maps to RoleInternal.
func (r *Role) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*r = RoleInternal
		return nil
	}
	for i, n := range roleNames {
		if n == string(b) {
			*r = Role(i)
			return nil
		}
	}
	return fmt.Errorf("fluxnet: unknown role %q", string(b))
}

// Metabolite is one chemical species in one compartment.
//
// Species is the owning organism tag, empty for community-level entities.
type Metabolite struct {
	ID          string
	Name        string
	Compartment string
	Species     string
}

// Reaction is a mass-balance equation with flux bounds.
//
// Stoichiometry maps metabolite id to coefficient (negative = consumed,
// positive = produced); zero coefficients are never stored.
type Reaction struct {
	ID                   string
	Name                 string
	Stoichiometry        map[string]float64
	LowerBound           float64
	UpperBound           float64
	ObjectiveCoefficient float64
	Species              string
	Role                 Role
}

// clone returns a deep copy of r.
func (r *Reaction) clone() *Reaction {
	c := *r
	c.Stoichiometry = make(map[string]float64, len(r.Stoichiometry))
	for k, v := range r.Stoichiometry {
		c.Stoichiometry[k] = v
	}
	return &c
}

// Model is an in-memory flux network.
//
// A Model is not safe for concurrent mutation; one pipeline owns it at a time.
type Model struct {
	ID string

	metabolites map[string]*Metabolite
	reactions   map[string]*Reaction
	direction   lp.Sense
}

// New returns an empty model that maximises its objective.
func New(id string) *Model {
	return &Model{
		ID:          id,
		metabolites: make(map[string]*Metabolite),
		reactions:   make(map[string]*Reaction),
		direction:   lp.Maximize,
	}
}

// FluxModel is the typed surface the community builders and solvers need from
// a flux network.
type FluxModel interface {
	AddMetabolite(m Metabolite) error
	AddReaction(r Reaction) error
	Metabolite(id string) (Metabolite, error)
	Reaction(id string) (Reaction, error)
	RemoveReactions(ids ...string) error
	SetObjective(coefficients map[string]float64, direction lp.Sense) error
	Optimize(ctx context.Context, solver lp.Solver) (*Solution, error)
}

var _ FluxModel = (*Model)(nil)

// Solution is the outcome of optimising a Model.
//
// Fluxes is nil unless Status == lp.Optimal.
type Solution struct {
	Status         lp.Status
	ObjectiveValue float64
	Fluxes         map[string]float64
}

// Flux returns the flux of reaction id, 0 when absent.
func (s *Solution) Flux(id string) float64 {
	if s == nil || s.Fluxes == nil {
		return 0
	}
	return s.Fluxes[id]
}

// Stats summarises model size.
type Stats struct {
	Metabolites int
	Reactions   int
	BySpecies   map[string]int // reactions per owner tag; "" is community level
	ByRole      map[Role]int
}
