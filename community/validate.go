// SPDX-License-Identifier: MIT
// Package: commodel/community
//
// validate.go - input checks run before any network is touched.

package community

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validate checks a Community without modifying it. Every builder calls it
// first, so a failing build leaves all networks untouched.
func Validate(c *Community) error {
	if c == nil || len(c.Models) < 2 {
		n := 0
		if c != nil {
			n = len(c.Models)
		}
		return fmt.Errorf("%w: got %d", ErrTooFewModels, n)
	}
	seen := make(map[string]int, len(c.Models))
	for i, sm := range c.Models {
		if sm == nil || sm.Model == nil {
			return fmt.Errorf("%w: index %d", ErrNilModel, i)
		}
		if sm.Species == "" || strings.Contains(sm.Species, Separator) {
			return fmt.Errorf("%w: %q", ErrSeparatorInSpecies, sm.Species)
		}
		if sm.Species == c.Compartment {
			return fmt.Errorf("%w: species %q equals the exchange compartment tag", ErrValidation, sm.Species)
		}
		if j, dup := seen[sm.Species]; dup {
			return fmt.Errorf("%w: %q at %d and %d", ErrDuplicateSpecies, sm.Species, j, i)
		}
		seen[sm.Species] = i
		if err := validateSingle(sm, c.Compartment); err != nil {
			return err
		}
	}
	suffix := Separator + c.Compartment
	for _, id := range append(append([]string(nil), c.Inputs...), c.Outputs...) {
		if strings.HasSuffix(id, suffix) {
			return fmt.Errorf("%w: community %q", ErrExchangeIDSuffix, id)
		}
	}
	return nil
}

func validateSingle(sm *SingleModel, compartment string) error {
	if sm.Namespaced() || ownedEntities(sm) {
		return fmt.Errorf("%w: %q", ErrAlreadyNamespaced, sm.Species)
	}
	if _, err := sm.Model.Reaction(sm.ObjectiveReactionID); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrObjectiveNotFound, sm.Species, err)
	}
	if sm.ExchangePrefix != "" && strings.HasPrefix(sm.ObjectiveReactionID, sm.ExchangePrefix) {
		// it would be removed together with the native boundary reactions
		return fmt.Errorf("%w: %s: %q matches exchange prefix %q",
			ErrObjectiveNotFound, sm.Species, sm.ObjectiveReactionID, sm.ExchangePrefix)
	}
	suffix := Separator + compartment
	for _, met := range declared(sm) {
		exID, ok := sm.ExchangeIDs[met]
		if !ok {
			return fmt.Errorf("%w: %s: %q", ErrMappingNotFound, sm.Species, met)
		}
		if strings.HasSuffix(exID, suffix) {
			return fmt.Errorf("%w: %s: %q", ErrExchangeIDSuffix, sm.Species, exID)
		}
		if _, err := sm.Model.Metabolite(met); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMetaboliteNotDeclared, sm.Species, err)
		}
	}
	return nil
}

// ownedEntities reports whether any entity already carries an owner tag, which
// only Namespace sets.
func ownedEntities(sm *SingleModel) bool {
	for _, id := range sm.Model.Metabolites() {
		if met, err := sm.Model.Metabolite(id); err == nil && met.Species != "" {
			return true
		}
	}
	return false
}

// ValidateGrowthRate rejects μ ≤ 0, NaN and ±∞.
func ValidateGrowthRate(mu float64) error {
	if !(mu > 0) || math.IsInf(mu, 1) {
		return fmt.Errorf("%w: %g", ErrNonPositiveGrowth, mu)
	}
	return nil
}

// ValidateFractions checks that fractions holds exactly one finite,
// non-negative value per species of c.
func ValidateFractions(c *Community, fractions map[string]float64) error {
	if len(fractions) != len(c.Models) {
		return fmt.Errorf("%w: %d fractions for %d models", ErrFractionMismatch, len(fractions), len(c.Models))
	}
	var errs []error
	for _, sp := range c.Species() {
		f, ok := fractions[sp]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%w: no fraction for %q", ErrFractionMismatch, sp))
		case math.IsNaN(f) || math.IsInf(f, 0) || f < 0:
			errs = append(errs, fmt.Errorf("%w: fraction %g for %q", ErrFractionMismatch, f, sp))
		}
	}
	return errors.Join(errs...)
}

// declared returns the sorted union of a model's inputs and outputs.
func declared(sm *SingleModel) []string {
	return sortedUnion(sm.Inputs, sm.Outputs)
}
