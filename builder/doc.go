// Package builder provides functional-options building blocks for metabolic
// networks: linear pathways with an optional alternating cofactor, source and
// sink reactions, bound overrides and seeded random conversion networks.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     BuildModel(id, bopts, cons...) creates a fluxnet.Model and applies the
//     constructors in order.
//   - Constructors:
//     Pathway, Source, Sink, Bounds, Objective, RandomNetwork.
//   - Options:
//     WithCompartment, WithCofactor, WithBoundCap, WithRand, WithSeed.
//   - Fixtures:
//     ToyModel, ToySingleModel and ToyCommunity build the five-step toy
//     organism and a community of copies of it. RandomSingleModel and
//     RandomCommunity wrap seeded random networks as community members.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime failures are returned as sentinel errors wrapped with context.
//   - Same options, seed and constructor order produce identical models.
//
// Example:
//
//	m, err := builder.BuildModel("chain", []builder.BuilderOption{builder.WithCofactor("X")},
//		builder.Pathway("S", "A", "P"),
//		builder.Source("EX_S", "S", 10),
//		builder.Sink("EX_P", "P", math.Inf(1)),
//		builder.Objective("EX_P"),
//	)
package builder
