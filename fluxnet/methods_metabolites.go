// SPDX-License-Identifier: MIT
// Package: commodel/fluxnet
//
// methods_metabolites.go - metabolite registration, lookup and renaming.
//
// Determinism:
//   - Metabolites() returns ids in lexical order.

package fluxnet

import (
	"fmt"
	"sort"
)

// AddMetabolite registers a new metabolite.
//
// Errors: ErrEmptyID, ErrDuplicateMetabolite.
func (m *Model) AddMetabolite(met Metabolite) error {
	if met.ID == "" {
		return ErrEmptyID
	}
	if _, ok := m.metabolites[met.ID]; ok {
		return fmt.Errorf("AddMetabolite(%s): %w", met.ID, ErrDuplicateMetabolite)
	}
	m.metabolites[met.ID] = &met
	return nil
}

// EnsureMetabolite registers met unless a metabolite with the same id exists.
// It reports whether a new metabolite was created.
func (m *Model) EnsureMetabolite(met Metabolite) (bool, error) {
	if met.ID == "" {
		return false, ErrEmptyID
	}
	if _, ok := m.metabolites[met.ID]; ok {
		return false, nil
	}
	m.metabolites[met.ID] = &met
	return true, nil
}

// Metabolite returns a copy of the metabolite with the given id.
func (m *Model) Metabolite(id string) (Metabolite, error) {
	met, ok := m.metabolites[id]
	if !ok {
		return Metabolite{}, fmt.Errorf("Metabolite(%s): %w", id, ErrMetaboliteNotFound)
	}
	return *met, nil
}

// HasMetabolite reports whether id is a registered metabolite.
func (m *Model) HasMetabolite(id string) bool {
	_, ok := m.metabolites[id]
	return ok
}

// Metabolites returns all metabolite ids in lexical order.
func (m *Model) Metabolites() []string {
	ids := make([]string, 0, len(m.metabolites))
	for id := range m.metabolites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NumMetabolites returns the metabolite count.
func (m *Model) NumMetabolites() int { return len(m.metabolites) }

// RenameMetabolite changes a metabolite id and rewrites every stoichiometry
// entry that references it.
//
// Errors: ErrEmptyID, ErrMetaboliteNotFound, ErrIDCollision.
func (m *Model) RenameMetabolite(oldID, newID string) error {
	if newID == "" {
		return ErrEmptyID
	}
	met, ok := m.metabolites[oldID]
	if !ok {
		return fmt.Errorf("RenameMetabolite(%s): %w", oldID, ErrMetaboliteNotFound)
	}
	if oldID == newID {
		return nil
	}
	if _, clash := m.metabolites[newID]; clash {
		return fmt.Errorf("RenameMetabolite(%s→%s): %w", oldID, newID, ErrIDCollision)
	}
	delete(m.metabolites, oldID)
	met.ID = newID
	m.metabolites[newID] = met
	for _, r := range m.reactions {
		if v, ok := r.Stoichiometry[oldID]; ok {
			delete(r.Stoichiometry, oldID)
			r.Stoichiometry[newID] = v
		}
	}
	return nil
}

// ReactionsOf returns the sorted ids of reactions that reference metabolite id.
func (m *Model) ReactionsOf(id string) ([]string, error) {
	if _, ok := m.metabolites[id]; !ok {
		return nil, fmt.Errorf("ReactionsOf(%s): %w", id, ErrMetaboliteNotFound)
	}
	var out []string
	for rid, r := range m.reactions {
		if _, ok := r.Stoichiometry[id]; ok {
			out = append(out, rid)
		}
	}
	sort.Strings(out)
	return out, nil
}
