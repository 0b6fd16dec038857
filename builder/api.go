// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildModel(id, bopts, cons...). Creates the model,
//     resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical models.

package builder

import (
	"fmt"

	"github.com/klamt-lab/commodel/fluxnet"
)

// Constructor applies a deterministic model mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors.
type Constructor func(m *fluxnet.Model, cfg builderConfig) error

// BuildModel creates a new fluxnet.Model, resolves the builder configuration
// from bopts and applies all constructors in order. Any constructor error is
// wrapped with "BuildModel: %w"; no partial cleanup is attempted.
func BuildModel(id string, bopts []BuilderOption, cons ...Constructor) (*fluxnet.Model, error) {
	m := fluxnet.New(id)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildModel: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildModel: %w", err)
		}
	}
	return m, nil
}
