// SPDX-License-Identifier: MIT
// Package: commodel/redcom
//
// types.go - options, requests, results and sentinel errors.

package redcom

import (
	"errors"
	"log/slog"
	"math"

	"github.com/klamt-lab/commodel/lp"
)

// Variable and constraint names added on top of the flux variables.
const (
	FractionPrefix  = "fraction_"
	IndicatorPrefix = "indicator_"

	fractionSumName = "fraction_sum_equal_one"
	integerCutName  = "integer_cut_previous_solutions_"
	lowerSuffix     = "_lower_bound_with_fraction_variable"
	upperSuffix     = "_upper_bound_with_fraction_variable"
	couplingSuffix  = "_biomass_with_fraction_variable"
	indicatorSuffix = "_indicator_with_fraction_variable"
)

// Sentinel errors.
var (
	// ErrNotRedComModel indicates a model without community_biomass or COMMUNITY_GROWTH.
	ErrNotRedComModel = errors.New("redcom: model lacks the community growth layout")

	// ErrNoOrganisms indicates that no organism biomass reaction produces community_biomass.
	ErrNoOrganisms = errors.New("redcom: no organism biomass reactions")

	// ErrUnownedBiomass indicates a biomass reaction without owner tag.
	ErrUnownedBiomass = errors.New("redcom: biomass reaction without species")

	// ErrUnknownSpecies indicates an excluded pattern naming a species not in the model.
	ErrUnknownSpecies = errors.New("redcom: unknown species")

	// ErrUnknownTarget indicates a target reaction missing from the model.
	ErrUnknownTarget = errors.New("redcom: unknown target reaction")
)

// Options tune the fraction-variable formulations.
type Options struct {
	// MaxBound clamps every upper bound above it. Must be finite.
	MaxBound float64
	// ActivityTolerance is the flux magnitude above which an exchange counts as active.
	ActivityTolerance float64
	Logger            *slog.Logger
}

// DefaultOptions returns MaxBound 1000 and ActivityTolerance 1e-6.
func DefaultOptions() Options {
	return Options{MaxBound: 1000, ActivityTolerance: 1e-6}
}

func (o *Options) normalized() Options {
	def := DefaultOptions()
	if o == nil {
		def.Logger = slog.Default()
		return def
	}
	out := *o
	if !(out.MaxBound > 0) || math.IsInf(out.MaxBound, 1) {
		out.MaxBound = def.MaxBound
	}
	if !(out.ActivityTolerance > 0) {
		out.ActivityTolerance = def.ActivityTolerance
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return out
}

// Pattern maps a species tag to 1 (present) or 0 (absent).
type Pattern map[string]int

// Request holds the minimal-species extras. An empty TargetReactionID leaves
// every reaction at its model bounds.
type Request struct {
	TargetReactionID string
	TargetValue      float64
	// Exclude lists previous patterns; each one gets its own integer cut.
	// Species missing from a pattern count as absent.
	Exclude []Pattern
}

// Result is the outcome of one RedCom solve. Only Status is meaningful
// unless Status == lp.Optimal.
type Result struct {
	Status    lp.Status
	Objective float64
	// Fluxes holds every reaction of the solved model; split reactions are
	// also reported under their original id as forward minus reverse.
	Fluxes     map[string]float64
	Fractions  map[string]float64
	Indicators Pattern // minimal-species only
	Activity   Pattern
	Summary    *Summary
	Nodes      int
}
