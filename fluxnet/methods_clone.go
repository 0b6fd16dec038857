// SPDX-License-Identifier: MIT
// Package: commodel/fluxnet
//
// methods_clone.go - deep copy, disjoint merge and owner namespacing.
//
// Contract:
//   - Clone shares nothing with the source model.
//   - Merge checks every id before mutating; on error the receiver is unchanged.
//   - Namespace is a bijection on ids, so it cannot collide.

package fluxnet

import "fmt"

// Clone returns a deep copy of the model, owner tags and roles included.
func (m *Model) Clone() *Model {
	c := New(m.ID)
	c.direction = m.direction
	for id, met := range m.metabolites {
		cp := *met
		c.metabolites[id] = &cp
	}
	for id, r := range m.reactions {
		c.reactions[id] = r.clone()
	}
	return c
}

// Merge adds every metabolite and reaction of other to m. Ids must be
// disjoint. The receiver keeps its objective: objective coefficients of the
// incoming reactions are cleared. other is not modified.
//
// Errors: ErrIDCollision.
func (m *Model) Merge(other *Model) error {
	for id := range other.metabolites {
		if _, clash := m.metabolites[id]; clash {
			return fmt.Errorf("Merge(%s): metabolite %s: %w", other.ID, id, ErrIDCollision)
		}
	}
	for id := range other.reactions {
		if _, clash := m.reactions[id]; clash {
			return fmt.Errorf("Merge(%s): reaction %s: %w", other.ID, id, ErrIDCollision)
		}
	}
	for id, met := range other.metabolites {
		cp := *met
		m.metabolites[id] = &cp
	}
	for id, r := range other.reactions {
		cp := r.clone()
		cp.ObjectiveCoefficient = 0
		m.reactions[id] = cp
	}
	return nil
}

// Namespace appends "_<species>" to every metabolite and reaction id and tags
// every entity with species as its owner.
//
// Errors: ErrEmptyID.
func (m *Model) Namespace(species string) error {
	if species == "" {
		return ErrEmptyID
	}
	suffix := "_" + species
	mets := make(map[string]*Metabolite, len(m.metabolites))
	for id, met := range m.metabolites {
		cp := *met
		cp.ID = id + suffix
		cp.Species = species
		mets[cp.ID] = &cp
	}
	rxns := make(map[string]*Reaction, len(m.reactions))
	for id, r := range m.reactions {
		cp := r.clone()
		cp.ID = id + suffix
		cp.Species = species
		cp.Stoichiometry = make(map[string]float64, len(r.Stoichiometry))
		for met, coef := range r.Stoichiometry {
			cp.Stoichiometry[met+suffix] = coef
		}
		rxns[cp.ID] = cp
	}
	m.metabolites, m.reactions = mets, rxns
	return nil
}
