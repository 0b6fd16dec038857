// SPDX-License-Identifier: MIT
// Package: commodel/redcom
//
// summary.go - species-activity report and the textual FBA summary.
//
// Classification (fluxes rounded to 3 decimals):
//   - community in/out: boundary reactions with negative/positive flux;
//   - species in/out:   organism exchange reactions with negative/positive flux;
//   - a species is active iff any of its exchange reactions carries flux.

package redcom

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/fluxnet"
)

// Flow is one labelled, rounded flux.
type Flow struct {
	Label string
	Value float64
}

// Summary is the structured form of an FBA summary.
type Summary struct {
	Title         string
	CommunityIn   []Flow
	CommunityOut  []Flow
	SpeciesIn     []Flow
	SpeciesOut    []Flow
	ObjectiveExpr string
	Objective     float64
	Active        []string
	Inactive      []string
}

// Activity returns 1 for every species whose organism exchange reactions
// carry a flux larger than tol in magnitude, 0 for the others. Species are
// taken from the exchange reactions' owner tags.
func Activity(m *fluxnet.Model, fluxes map[string]float64, tol float64) Pattern {
	out := make(Pattern)
	for _, id := range m.Reactions() {
		r, err := m.Reaction(id)
		if err != nil || r.Role != fluxnet.RoleExchange || r.Species == "" {
			continue
		}
		if _, seen := out[r.Species]; !seen {
			out[r.Species] = 0
		}
		if math.Abs(fluxes[id]) > tol {
			out[r.Species] = 1
		}
	}
	return out
}

// Summarize classifies the exchange fluxes of m. objective is reported as is;
// the expression is rendered from the model objective.
func Summarize(m *fluxnet.Model, fluxes map[string]float64, objective float64, title string, tol float64) *Summary {
	s := &Summary{Title: title, Objective: objective, ObjectiveExpr: objectiveExpr(m)}
	for _, id := range m.Reactions() {
		r, err := m.Reaction(id)
		if err != nil {
			continue
		}
		v := round3(fluxes[id])
		switch r.Role {
		case fluxnet.RoleBoundary:
			flow := Flow{Label: boundaryLabel(r), Value: v}
			if v < 0 {
				s.CommunityIn = append(s.CommunityIn, flow)
			} else if v > 0 {
				s.CommunityOut = append(s.CommunityOut, flow)
			}
		case fluxnet.RoleExchange:
			flow := Flow{Label: strings.TrimPrefix(id, community.OrganismExchangePrefix), Value: v}
			if v < 0 {
				s.SpeciesIn = append(s.SpeciesIn, flow)
			} else if v > 0 {
				s.SpeciesOut = append(s.SpeciesOut, flow)
			}
		}
	}
	for sp, on := range Activity(m, fluxes, tol) {
		if on == 1 {
			s.Active = append(s.Active, sp)
		} else {
			s.Inactive = append(s.Inactive, sp)
		}
	}
	sort.Strings(s.Active)
	sort.Strings(s.Inactive)
	return s
}

// boundaryLabel is the single metabolite a boundary reaction drains, which is
// also its id without the community prefix.
func boundaryLabel(r fluxnet.Reaction) string {
	for met := range r.Stoichiometry {
		return met
	}
	return r.ID
}

func objectiveExpr(m *fluxnet.Model) string {
	obj := m.Objective()
	ids := make([]string, 0, len(obj))
	for id := range obj {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = formatFloat(obj[id]) + "*" + id
	}
	return strings.Join(parts, " + ")
}

func round3(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0 // no "-0"
	}
	return r
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String renders the summary block.
func (s *Summary) String() string {
	var b strings.Builder
	b.WriteString("===SUMMARY OF " + s.Title + "===\n")
	section := func(title string, flows []Flow) {
		b.WriteString(title + ":\n")
		for _, f := range flows {
			b.WriteString(f.Label + ": " + formatFloat(f.Value) + "\n")
		}
		b.WriteString("\n")
	}
	section("COMMUNITY IN FLUXES", s.CommunityIn)
	section("COMMUNITY OUT FLUXES", s.CommunityOut)
	section("SPECIES-INTERNAL IN FLUXES", s.SpeciesIn)
	section("SPECIES-INTERNAL OUT FLUXES", s.SpeciesOut)
	b.WriteString("Objective " + s.ObjectiveExpr + " has the value...\n")
	b.WriteString(formatFloat(s.Objective) + "\n\n")
	b.WriteString("Active organisms:\n")
	for _, sp := range s.Active {
		b.WriteString("* " + sp + "\n")
	}
	b.WriteString("\nInactive organisms:\n")
	for _, sp := range s.Inactive {
		b.WriteString("* " + sp + "\n")
	}
	return b.String()
}
