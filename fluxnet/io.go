// SPDX-License-Identifier: MIT
// Package: commodel/fluxnet
//
// io.go - JSON model files.
//
// Format:
//
//	{
//	    "id": "toy",
//	    "objective_direction": "max",
//	    "metabolites": [{"id": "A_c", "name": "A", "compartment": "c"}],
//	    "reactions": [{"id": "R1", "metabolites": {"A_c": -1, "B_c": 1},
//	                   "lower_bound": "-inf", "upper_bound": 1000}]
//	}
//
// Infinite bounds are written as the strings "inf" and "-inf"; numbers and
// those strings are both accepted on input.

package fluxnet

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/klamt-lab/commodel/lp"
)

type bound float64

func (b bound) MarshalJSON() ([]byte, error) {
	switch {
	case math.IsInf(float64(b), 1):
		return []byte(`"inf"`), nil
	case math.IsInf(float64(b), -1):
		return []byte(`"-inf"`), nil
	}
	return json.Marshal(float64(b))
}

func (b *bound) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("fluxnet: bound %q: %w", s, err)
		}
		*b = bound(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("fluxnet: bound %s: %w", string(data), err)
	}
	*b = bound(v)
	return nil
}

type metaboliteJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Compartment string `json:"compartment,omitempty"`
	Species     string `json:"species,omitempty"`
}

type reactionJSON struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name,omitempty"`
	Metabolites          map[string]float64 `json:"metabolites"`
	LowerBound           bound              `json:"lower_bound"`
	UpperBound           bound              `json:"upper_bound"`
	ObjectiveCoefficient float64            `json:"objective_coefficient,omitempty"`
	Species              string             `json:"species,omitempty"`
	Role                 Role               `json:"role,omitempty"`
}

type modelJSON struct {
	ID                 string           `json:"id"`
	ObjectiveDirection string           `json:"objective_direction"`
	Metabolites        []metaboliteJSON `json:"metabolites"`
	Reactions          []reactionJSON   `json:"reactions"`
}

// WriteJSON encodes the model with 4-space indentation in sorted id order.
func (m *Model) WriteJSON(w io.Writer) error {
	doc := modelJSON{ID: m.ID, ObjectiveDirection: m.direction.String()}
	for _, id := range m.Metabolites() {
		met := m.metabolites[id]
		doc.Metabolites = append(doc.Metabolites, metaboliteJSON{
			ID: met.ID, Name: met.Name, Compartment: met.Compartment, Species: met.Species,
		})
	}
	for _, id := range m.Reactions() {
		r := m.reactions[id]
		doc.Reactions = append(doc.Reactions, reactionJSON{
			ID:                   r.ID,
			Name:                 r.Name,
			Metabolites:          r.Stoichiometry,
			LowerBound:           bound(r.LowerBound),
			UpperBound:           bound(r.UpperBound),
			ObjectiveCoefficient: r.ObjectiveCoefficient,
			Species:              r.Species,
			Role:                 r.Role,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("fluxnet: write %s: %w", m.ID, err)
	}
	return nil
}

// ReadJSON decodes a model written by WriteJSON (or any file of the same
// shape). Every reaction passes through AddReaction validation.
func ReadJSON(r io.Reader) (*Model, error) {
	var doc modelJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("fluxnet: read: %w", err)
	}
	m := New(doc.ID)
	switch doc.ObjectiveDirection {
	case "", "max":
		m.direction = lp.Maximize
	case "min":
		m.direction = lp.Minimize
	default:
		return nil, fmt.Errorf("fluxnet: objective_direction %q", doc.ObjectiveDirection)
	}
	for _, met := range doc.Metabolites {
		err := m.AddMetabolite(Metabolite{ID: met.ID, Name: met.Name, Compartment: met.Compartment, Species: met.Species})
		if err != nil {
			return nil, err
		}
	}
	for _, rx := range doc.Reactions {
		err := m.AddReaction(Reaction{
			ID:                   rx.ID,
			Name:                 rx.Name,
			Stoichiometry:        rx.Metabolites,
			LowerBound:           float64(rx.LowerBound),
			UpperBound:           float64(rx.UpperBound),
			ObjectiveCoefficient: rx.ObjectiveCoefficient,
			Species:              rx.Species,
			Role:                 rx.Role,
		})
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ReadFile loads a JSON model file.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fluxnet: %w", err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteFile stores the model as a JSON file.
func (m *Model) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fluxnet: %w", err)
	}
	if err := m.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
