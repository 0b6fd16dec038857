// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// toy.go - the five-step toy organism and community used in examples and tests.
//
// Network (compartment "c", cofactor X):
//
//	EX_A   : ∅ → S_c                 [0, 1000]
//	S_to_A : S_c → A_c + X_c         [0, uptake]
//	A_to_B : A_c + X_c → B_c         [0, +∞)
//	B_to_C : B_c → C_c + X_c         [0, +∞)
//	C_to_P : C_c + X_c → P_c         [0, +∞)   biomass designation
//	EX_P   : P_c → ∅                 [0, +∞)   objective

package builder

import (
	"fmt"
	"math"

	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/fluxnet"
)

// Toy identifiers.
const (
	ToyBiomassReaction   = "C_to_P"
	ToyExchangePrefix    = "EX_"
	ToyCompartment       = "exchg"
	ToyCommunityPrefix   = "EX_C_"
	ToySourceUpperBound  = 1000.0
	toyNativeCompartment = "c"
)

var toyPathway = []string{"S", "A", "B", "C", "P"}

// ToyModel builds the toy organism. uptake bounds the first conversion step;
// pass math.Inf(1) for the uncapped network.
func ToyModel(id string, uptake float64) (*fluxnet.Model, error) {
	if !(uptake >= 0) {
		return nil, fmt.Errorf("ToyModel: uptake=%g: %w", uptake, fluxnet.ErrInvalidBounds)
	}
	return BuildModel(id,
		[]BuilderOption{WithCompartment(toyNativeCompartment), WithCofactor("X")},
		Pathway(toyPathway...),
		Source("EX_A", "S", ToySourceUpperBound),
		Sink("EX_P", "P", math.Inf(1)),
		Bounds("S_to_A", 0, uptake),
		Objective("EX_P"),
	)
}

// ToySingleModel wraps ToyModel into a community member descriptor. Every
// pathway metabolite is mapped to its bare name in the exchange compartment;
// the organism may take up S and release P.
func ToySingleModel(species string, uptake float64) (*community.SingleModel, error) {
	m, err := ToyModel("toy_"+species, uptake)
	if err != nil {
		return nil, err
	}
	mapping := make(map[string]string, len(toyPathway))
	for _, name := range toyPathway {
		mapping[name+"_"+toyNativeCompartment] = name
	}
	return &community.SingleModel{
		Model:               m,
		Species:             species,
		ObjectiveReactionID: ToyBiomassReaction,
		ExchangePrefix:      ToyExchangePrefix,
		Inputs:              []string{"S_c"},
		Outputs:             []string{"P_c"},
		ExchangeIDs:         mapping,
	}, nil
}

// ToyCommunity assembles one toy organism per species in compartment "exchg",
// sharing S as community input and P as community output.
func ToyCommunity(uptake float64, species ...string) (*community.Community, error) {
	c := &community.Community{
		Compartment:    ToyCompartment,
		ExchangePrefix: ToyCommunityPrefix,
		Inputs:         []string{"S"},
		Outputs:        []string{"P"},
	}
	for _, sp := range species {
		sm, err := ToySingleModel(sp, uptake)
		if err != nil {
			return nil, fmt.Errorf("ToyCommunity(%s): %w", sp, err)
		}
		c.Models = append(c.Models, sm)
	}
	return c, nil
}
