// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// random_community.go - random organisms wrapped as community members.
//
// Each organism is RandomNetwork(nMets, nRxns) plus:
//
//	EX_M0     : ∅ → M0_c            [0, 1000]
//	EX_M<n-1> : M<n-1>_c → ∅        [0, 1000]
//
// R0 is the biomass designation; every metabolite maps to its bare name in
// the exchange compartment. All bounds are capped at ±1000.

package builder

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/klamt-lab/commodel/community"
)

// RandomBoundCap caps every bound of a random organism.
const RandomBoundCap = 1000.0

// RandomSingleModel samples one organism from seed.
func RandomSingleModel(species string, nMets, nRxns int, seed int64) (*community.SingleModel, error) {
	return randomSingle(species, nMets, nRxns, WithSeed(seed))
}

// RandomCommunity samples one organism per species from a single source
// seeded with seed, in species order. Members take up M0 and release
// M<nMets-1>, which are also the community input and output.
func RandomCommunity(seed int64, nMets, nRxns int, species ...string) (*community.Community, error) {
	rng := rand.New(rand.NewSource(seed))
	last := "M" + strconv.Itoa(nMets-1)
	c := &community.Community{
		Compartment:    ToyCompartment,
		ExchangePrefix: ToyCommunityPrefix,
		Inputs:         []string{"M0"},
		Outputs:        []string{last},
	}
	for _, sp := range species {
		sm, err := randomSingle(sp, nMets, nRxns, WithRand(rng))
		if err != nil {
			return nil, fmt.Errorf("RandomCommunity(%s): %w", sp, err)
		}
		c.Models = append(c.Models, sm)
	}
	return c, nil
}

func randomSingle(species string, nMets, nRxns int, source BuilderOption) (*community.SingleModel, error) {
	if nMets < minRandomMets {
		return nil, fmt.Errorf("%s: nMets=%d: %w", methodRandomNetwork, nMets, ErrTooFewMetabolites)
	}
	last := "M" + strconv.Itoa(nMets-1)
	m, err := BuildModel("random_"+species,
		[]BuilderOption{WithCompartment(toyNativeCompartment), WithBoundCap(RandomBoundCap), source},
		RandomNetwork(nMets, nRxns),
		Source(ToyExchangePrefix+"M0", "M0", RandomBoundCap),
		Sink(ToyExchangePrefix+last, last, math.Inf(1)),
		Objective("R0"),
	)
	if err != nil {
		return nil, err
	}
	mapping := make(map[string]string, nMets)
	for i := 0; i < nMets; i++ {
		name := "M" + strconv.Itoa(i)
		mapping[name+"_"+toyNativeCompartment] = name
	}
	return &community.SingleModel{
		Model:               m,
		Species:             species,
		ObjectiveReactionID: "R0",
		ExchangePrefix:      ToyExchangePrefix,
		Inputs:              []string{"M0_" + toyNativeCompartment},
		Outputs:             []string{last + "_" + toyNativeCompartment},
		ExchangeIDs:         mapping,
	}, nil
}
