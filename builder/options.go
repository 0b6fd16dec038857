// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructor behaviour before the model is built.
type BuilderOption func(*builderConfig)

// WithCompartment sets the compartment suffix of generated metabolites.
// Panics on "".
func WithCompartment(id string) BuilderOption {
	if id == "" {
		panic("builder: WithCompartment(\"\")")
	}
	return func(c *builderConfig) { c.compartment = id }
}

// WithCofactor makes Pathway alternate a cofactor between steps: odd steps
// produce it, even steps consume it. Panics on "".
func WithCofactor(name string) BuilderOption {
	if name == "" {
		panic("builder: WithCofactor(\"\")")
	}
	return func(c *builderConfig) { c.cofactor = name }
}

// WithBoundCap replaces every bound beyond ±limit (including ±∞) by ±limit.
// Panics unless limit > 0.
func WithBoundCap(limit float64) BuilderOption {
	if !(limit > 0) {
		panic("builder: WithBoundCap requires limit > 0")
	}
	return func(c *builderConfig) { c.boundCap = limit }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
