// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - compartment = "c"
//   - cofactor    = ""          (no cofactor)
//   - boundCap    = +Inf        (bounds kept as given)
//   - rng         = nil         (pure/deterministic unless seeded)

package builder

import (
	"math"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	compartment string
	cofactor    string
	boundCap    float64
	rng         *rand.Rand
}

const (
	defaultCompartment = "c"
)

// newBuilderConfig applies options in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		compartment: defaultCompartment,
		boundCap:    math.Inf(1),
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// metID returns the compartment-qualified metabolite id.
func (c builderConfig) metID(name string) string {
	return name + "_" + c.compartment
}

// capBound clamps ±∞ (and anything beyond the cap) to ±boundCap.
func (c builderConfig) capBound(b float64) float64 {
	return math.Max(-c.boundCap, math.Min(c.boundCap, b))
}
