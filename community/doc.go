// SPDX-License-Identifier: MIT

// Package community assembles multi-organism flux networks.
//
// Input is a Community: two or more SingleModels, each an organism network
// with a species tag, its biomass reaction, its native boundary-reaction
// prefix, declared input/output metabolites and a mapping to exchange ids.
// Output is one fluxnet.Model plus a BuildContext describing what was built.
//
// Build steps:
//
//	Merge                     namespace ids with "_<species>", drop native boundary
//	                          reactions, disjoint union
//	BuildExchangeCompartment  shared <id>_<compartment> pool, EXCHG_ and community
//	                          boundary reactions
//	SplitReversible           reversible organism reactions → forward/reverse pairs
//	EmbedBounds               finite bounds → Msnake/Rsnake balances scaled by biomass
//
// Builders combining them:
//
//	BuildBalancedGrowth  fixed growth rate μ for every organism, pure LP
//	BuildFixedFractions  organism bounds scaled by given fractions
//	BuildRedCom          input for the fraction-variable solvers in package redcom
//
// Every builder validates the whole Community before touching any network, so
// ErrValidation and ErrLookup failures leave the inputs intact. Networks are
// mutated and absorbed by the merged model unless WithCopy is given; a
// SingleModel cannot be namespaced twice.
package community
