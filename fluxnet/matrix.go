// SPDX-License-Identifier: MIT
// Package: commodel/fluxnet
//
// matrix.go - stoichiometric matrix export.
//
// Layout:
//   - Rows follow Metabolites() order, columns follow Reactions() order.
//   - Entry (i, j) is the coefficient of metabolite i in reaction j.

package fluxnet

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StoichiometricMatrix returns the dense metabolite × reaction matrix together
// with the row and column ids.
//
// Errors: ErrEmptyModel when the model has no reactions.
func (m *Model) StoichiometricMatrix() (*mat.Dense, []string, []string, error) {
	rows, cols := m.Metabolites(), m.Reactions()
	if len(rows) == 0 || len(cols) == 0 {
		return nil, rows, cols, fmt.Errorf("StoichiometricMatrix(%s): %w", m.ID, ErrEmptyModel)
	}
	rowIdx := make(map[string]int, len(rows))
	for i, id := range rows {
		rowIdx[id] = i
	}
	s := mat.NewDense(len(rows), len(cols), nil)
	for j, rid := range cols {
		for met, coef := range m.reactions[rid].Stoichiometry {
			s.Set(rowIdx[met], j, coef)
		}
	}
	return s, rows, cols, nil
}
