// SPDX-License-Identifier: MIT
// Package: commodel/fluxnet
//
// methods_reactions.go - reaction registration, bounds, stoichiometry edits
// and objective handling.
//
// Contract:
//   - Every stored reaction has at least one non-zero coefficient.
//   - Every stored reaction satisfies LowerBound ≤ UpperBound.
//   - Every stoichiometry key names a registered metabolite.
//   - Failed calls leave the model unchanged.

package fluxnet

import (
	"fmt"
	"math"
	"sort"

	"github.com/klamt-lab/commodel/lp"
)

// AddReaction registers a new reaction. The stoichiometry map is copied and
// zero coefficients are dropped.
//
// Errors: ErrEmptyID, ErrDuplicateReaction, ErrEmptyStoichiometry,
// ErrMetaboliteNotFound, ErrInvalidBounds.
func (m *Model) AddReaction(r Reaction) error {
	if r.ID == "" {
		return ErrEmptyID
	}
	if _, ok := m.reactions[r.ID]; ok {
		return fmt.Errorf("AddReaction(%s): %w", r.ID, ErrDuplicateReaction)
	}
	if err := checkBounds(r.LowerBound, r.UpperBound); err != nil {
		return fmt.Errorf("AddReaction(%s): %w", r.ID, err)
	}
	stoich := make(map[string]float64, len(r.Stoichiometry))
	for met, coef := range r.Stoichiometry {
		if !m.HasMetabolite(met) {
			return fmt.Errorf("AddReaction(%s): %s: %w", r.ID, met, ErrMetaboliteNotFound)
		}
		if coef != 0 {
			stoich[met] = coef
		}
	}
	if len(stoich) == 0 {
		return fmt.Errorf("AddReaction(%s): %w", r.ID, ErrEmptyStoichiometry)
	}
	r.Stoichiometry = stoich
	m.reactions[r.ID] = &r
	return nil
}

// Reaction returns a deep copy of the reaction with the given id.
func (m *Model) Reaction(id string) (Reaction, error) {
	r, ok := m.reactions[id]
	if !ok {
		return Reaction{}, fmt.Errorf("Reaction(%s): %w", id, ErrReactionNotFound)
	}
	return *r.clone(), nil
}

// HasReaction reports whether id is a registered reaction.
func (m *Model) HasReaction(id string) bool {
	_, ok := m.reactions[id]
	return ok
}

// Reactions returns all reaction ids in lexical order.
func (m *Model) Reactions() []string {
	ids := make([]string, 0, len(m.reactions))
	for id := range m.reactions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NumReactions returns the reaction count.
func (m *Model) NumReactions() int { return len(m.reactions) }

// ReactionsWhere returns the sorted ids of reactions accepted by keep.
func (m *Model) ReactionsWhere(keep func(Reaction) bool) []string {
	var out []string
	for _, id := range m.Reactions() {
		if keep(*m.reactions[id]) {
			out = append(out, id)
		}
	}
	return out
}

// RemoveReactions deletes the given reactions. Metabolites are kept even when
// no reaction references them any more. Either all ids are removed or none.
func (m *Model) RemoveReactions(ids ...string) error {
	for _, id := range ids {
		if _, ok := m.reactions[id]; !ok {
			return fmt.Errorf("RemoveReactions(%s): %w", id, ErrReactionNotFound)
		}
	}
	for _, id := range ids {
		delete(m.reactions, id)
	}
	return nil
}

// RenameReaction changes a reaction id.
func (m *Model) RenameReaction(oldID, newID string) error {
	if newID == "" {
		return ErrEmptyID
	}
	r, ok := m.reactions[oldID]
	if !ok {
		return fmt.Errorf("RenameReaction(%s): %w", oldID, ErrReactionNotFound)
	}
	if oldID == newID {
		return nil
	}
	if _, clash := m.reactions[newID]; clash {
		return fmt.Errorf("RenameReaction(%s→%s): %w", oldID, newID, ErrIDCollision)
	}
	delete(m.reactions, oldID)
	r.ID = newID
	m.reactions[newID] = r
	return nil
}

// AddStoichiometry adds delta to the coefficients of reaction id. Entries
// whose sum becomes zero are removed.
func (m *Model) AddStoichiometry(id string, delta map[string]float64) error {
	r, ok := m.reactions[id]
	if !ok {
		return fmt.Errorf("AddStoichiometry(%s): %w", id, ErrReactionNotFound)
	}
	next := make(map[string]float64, len(r.Stoichiometry)+len(delta))
	for k, v := range r.Stoichiometry {
		next[k] = v
	}
	for met, coef := range delta {
		if !m.HasMetabolite(met) {
			return fmt.Errorf("AddStoichiometry(%s): %s: %w", id, met, ErrMetaboliteNotFound)
		}
		next[met] += coef
		if next[met] == 0 {
			delete(next, met)
		}
	}
	if len(next) == 0 {
		return fmt.Errorf("AddStoichiometry(%s): %w", id, ErrEmptyStoichiometry)
	}
	r.Stoichiometry = next
	return nil
}

// SetBounds replaces the flux bounds of reaction id.
func (m *Model) SetBounds(id string, lower, upper float64) error {
	r, ok := m.reactions[id]
	if !ok {
		return fmt.Errorf("SetBounds(%s): %w", id, ErrReactionNotFound)
	}
	if err := checkBounds(lower, upper); err != nil {
		return fmt.Errorf("SetBounds(%s): %w", id, err)
	}
	r.LowerBound, r.UpperBound = lower, upper
	return nil
}

// SetObjective clears every objective coefficient, then assigns the given
// ones and the optimisation direction.
func (m *Model) SetObjective(coefficients map[string]float64, direction lp.Sense) error {
	for id := range coefficients {
		if _, ok := m.reactions[id]; !ok {
			return fmt.Errorf("SetObjective(%s): %w", id, ErrReactionNotFound)
		}
	}
	for _, r := range m.reactions {
		r.ObjectiveCoefficient = 0
	}
	for id, c := range coefficients {
		m.reactions[id].ObjectiveCoefficient = c
	}
	m.direction = direction
	return nil
}

// Objective returns the non-zero objective coefficients.
func (m *Model) Objective() map[string]float64 {
	out := make(map[string]float64)
	for id, r := range m.reactions {
		if r.ObjectiveCoefficient != 0 {
			out[id] = r.ObjectiveCoefficient
		}
	}
	return out
}

// Direction returns the optimisation direction.
func (m *Model) Direction() lp.Sense { return m.direction }

// Stats counts metabolites and reactions, grouped by owner and role.
func (m *Model) Stats() Stats {
	s := Stats{
		Metabolites: len(m.metabolites),
		Reactions:   len(m.reactions),
		BySpecies:   make(map[string]int),
		ByRole:      make(map[Role]int),
	}
	for _, r := range m.reactions {
		s.BySpecies[r.Species]++
		s.ByRole[r.Role]++
	}
	return s
}

func checkBounds(lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper ||
		math.IsInf(lower, 1) || math.IsInf(upper, -1) {
		return fmt.Errorf("[%g, %g]: %w", lower, upper, ErrInvalidBounds)
	}
	return nil
}
