// Package commodel assembles metabolic community models from single-organism
// flux networks and analyses them with flux balance methods.
//
// What is in the module?
//
//	Flux networks: metabolites, reactions, bounds, objective, JSON files
//	Community assembly: namespacing, merge, shared exchange compartment
//	Balanced growth: organism bounds embedded against biomass flux
//	Fixed fractions: organism bounds scaled by biomass share
//	RedCom: fraction-variable FBA and minimal species sets (MILP)
//	dG0 tables: reaction notes conversion and model coverage
//
// Packages:
//
//	lp/        - linear and mixed-integer problems, simplex with branch and bound
//	fluxnet/   - Model, Reaction, Metabolite, FBA and model files
//	builder/   - declarative network construction and the toy organism
//	community/ - SingleModel, Community and the model builders
//	redcom/    - RedCom FBA, minimal species search, flux summaries
//	thermo/    - dG0 tables
//	results/   - SQLite store of solved runs
//	config/    - settings (viper) and YAML community descriptors
//	logging/   - process logger
//	cmd/commodel - command line interface
//
// Quick example:
//
//	c, _ := builder.ToyCommunity(10, "species1", "species2")
//	m, _, _ := community.BuildRedCom(c)
//	res, _ := redcom.FBA(ctx, m, 1, lp.NewSimplex(lp.DefaultOptions()), nil)
//	fmt.Print(res.Summary)
//
// See examples/toy_community for the full walk-through.
package commodel
