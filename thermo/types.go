// SPDX-License-Identifier: MIT
// Package: commodel/thermo
//
// types.go - dG0 table types and sentinel errors.

package thermo

import (
	"errors"
	"sort"
)

// Sentinel errors.
var (
	// ErrDuplicateReaction indicates a reaction listed twice in a notes file.
	ErrDuplicateReaction = errors.New("thermo: duplicate reaction")

	// ErrMalformedLine indicates a notes line without dG0 or uncertainty field.
	ErrMalformedLine = errors.New("thermo: malformed notes line")
)

// Entry is the standard Gibbs free energy of one reaction and its uncertainty.
type Entry struct {
	DG0         float64 `json:"dG0"`
	Uncertainty float64 `json:"uncertainty"`
}

// Table maps reaction ids to their dG0 entries.
type Table map[string]Entry

// IDs returns the reaction ids in lexical order.
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Expand returns a table with one "<id>_<species>" entry per species and
// entry of t. Without species the result is a copy of t.
func (t Table) Expand(species ...string) Table {
	out := make(Table, len(t)*max(len(species), 1))
	for id, e := range t {
		if len(species) == 0 {
			out[id] = e
			continue
		}
		for _, sp := range species {
			out[id+"_"+sp] = e
		}
	}
	return out
}
