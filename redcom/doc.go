// SPDX-License-Identifier: MIT

// Package redcom solves RedCom community models with explicit organism
// fraction variables.
//
// The input is a model from community.BuildRedCom: organism networks joined
// through an exchange compartment, every organism biomass reaction producing
// community_biomass, drained by COMMUNITY_GROWTH. The input is never modified;
// each solve formulates a private copy.
//
//	FBA             fixed growth rate μ, fractions f_s with Σ f_s = 1, every
//	                organism reaction bounded by its original bounds times f_s
//	MinimalSpecies  adds binary indicators and minimises how many species
//	                are needed, optionally fixing a target flux and excluding
//	                earlier species patterns with integer cuts
//	Enumerate       repeats MinimalSpecies, excluding each new pattern
//
// Results carry the fluxes, fractions, a species activity pattern and a
// Summary whose String method renders the classic text report.
package redcom
