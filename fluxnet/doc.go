// SPDX-License-Identifier: MIT

// Package fluxnet is the in-memory flux network used by the community
// builders: metabolites, reactions with signed stoichiometric coefficients,
// flux bounds and a linear objective.
//
// Every metabolite and reaction carries an owner tag (Species) and every
// reaction a Role. Both are set explicitly when a model is namespaced for a
// community and survive Clone, Merge, renames and JSON round-trips, so callers
// never recover ownership by parsing id suffixes.
//
// Model satisfies FluxModel. Problem exposes the flux balance LP for callers
// that need extra variables (fraction and indicator variables); Optimize is
// plain FBA through any lp.Solver.
//
// Models are single-owner values: mutate one model from one goroutine, and use
// Clone when a pipeline step must not touch the caller's copy.
package fluxnet
