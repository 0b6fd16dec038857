// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// impl_random.go - implementation of RandomNetwork(nMets, nRxns).
//
// Contract:
//   - nMets ≥ 2 and nRxns ≥ 1 (else ErrTooFewMetabolites).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Metabolites M0..M{nMets-1}; reactions R0..R{nRxns-1}, each converting one
//     metabolite into a different one.
//   - Roughly a third of the reactions are reversible with lower bound in
//     [-100, 0); upper bounds are drawn from [1, 1000].
//
// Determinism:
//   - Fixed draw order: for each reaction, source, target, reversibility, bounds.

package builder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/klamt-lab/commodel/fluxnet"
)

const (
	methodRandomNetwork = "RandomNetwork"
	minRandomMets       = 2
	minRandomRxns       = 1
)

// RandomNetwork returns a Constructor that samples a random conversion network.
func RandomNetwork(nMets, nRxns int) Constructor {
	return func(m *fluxnet.Model, cfg builderConfig) error {
		if nMets < minRandomMets || nRxns < minRandomRxns {
			return fmt.Errorf("%s: nMets=%d nRxns=%d: %w", methodRandomNetwork, nMets, nRxns, ErrTooFewMetabolites)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomNetwork, ErrNeedRandSource)
		}
		for i := 0; i < nMets; i++ {
			name := "M" + strconv.Itoa(i)
			if err := m.AddMetabolite(fluxnet.Metabolite{ID: cfg.metID(name), Name: name, Compartment: cfg.compartment}); err != nil {
				return fmt.Errorf("%s: AddMetabolite(%s): %w", methodRandomNetwork, name, err)
			}
		}
		for j := 0; j < nRxns; j++ {
			src := cfg.rng.Intn(nMets)
			dst := (src + 1 + cfg.rng.Intn(nMets-1)) % nMets
			lb := 0.0
			if cfg.rng.Intn(3) == 0 {
				lb = -math.Ceil(cfg.rng.Float64() * 100)
			}
			ub := 1 + math.Floor(cfg.rng.Float64()*999)
			id := "R" + strconv.Itoa(j)
			err := m.AddReaction(fluxnet.Reaction{
				ID: id,
				Stoichiometry: map[string]float64{
					cfg.metID("M" + strconv.Itoa(src)): -1,
					cfg.metID("M" + strconv.Itoa(dst)): 1,
				},
				LowerBound: cfg.capBound(lb),
				UpperBound: cfg.capBound(ub),
			})
			if err != nil {
				return fmt.Errorf("%s: AddReaction(%s): %w", methodRandomNetwork, id, err)
			}
		}
		return nil
	}
}
