// SPDX-License-Identifier: MIT

// Package thermo keeps standard Gibbs free energies (dG0) of community model
// reactions: a JSON table keyed by reaction id, a parser for reaction-notes
// dumps, defaults for organism exchange reactions and a coverage report.
//
// The data is auxiliary metadata for thermodynamic analyses run elsewhere;
// none of the model builders or solvers read it.
package thermo
