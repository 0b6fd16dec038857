// SPDX-License-Identifier: MIT
// Package: commodel/thermo
//
// model.go - dG0 bookkeeping against a community model.

package thermo

import (
	"strings"

	"github.com/klamt-lab/commodel/fluxnet"
)

// AddExchangeDefaults gives every organism exchange reaction of m a zero
// entry, unless its exchange id is listed in exclude (e.g. "h2o", "h", "pi").
// Existing entries are overwritten. It returns the number of entries set.
func (t Table) AddExchangeDefaults(m *fluxnet.Model, exclude ...string) int {
	n := 0
	for _, id := range m.ReactionsWhere(func(r fluxnet.Reaction) bool { return r.Role == fluxnet.RoleExchange }) {
		skip := false
		for _, ex := range exclude {
			if strings.HasSuffix(id, "_to_"+ex) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		t[id] = Entry{}
		n++
	}
	return n
}

// Coverage counts how many reactions of a model carry a dG0 entry.
type Coverage struct {
	// Internal counts organism-internal reactions; Covered those with an entry.
	Internal int
	Covered  int
	// Exchanges counts organism exchange reactions with an entry.
	Exchanges int
	// Uncovered lists internal reactions without entry, sorted.
	Uncovered []string
	// Unknown lists table ids that are not reactions of the model, sorted.
	Unknown []string
}

// MissingFraction returns the share of internal reactions without entry.
func (c Coverage) MissingFraction() float64 {
	if c.Internal == 0 {
		return 0
	}
	return float64(c.Internal-c.Covered) / float64(c.Internal)
}

// CoverageOf compares t against the reactions of m.
func (t Table) CoverageOf(m *fluxnet.Model) Coverage {
	var c Coverage
	for _, id := range m.Reactions() {
		r, err := m.Reaction(id)
		if err != nil {
			continue
		}
		_, ok := t[id]
		switch {
		case r.Role == fluxnet.RoleExchange:
			if ok {
				c.Exchanges++
			}
		case r.Role == fluxnet.RoleInternal && r.Species != "":
			c.Internal++
			if ok {
				c.Covered++
			} else {
				c.Uncovered = append(c.Uncovered, id)
			}
		}
	}
	for _, id := range t.IDs() {
		if !m.HasReaction(id) {
			c.Unknown = append(c.Unknown, id)
		}
	}
	return c
}
