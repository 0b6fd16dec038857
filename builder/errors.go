// SPDX-License-Identifier: MIT
// Package: commodel/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w; they never panic at runtime.
//   - Option constructors (WithX) panic on meaningless inputs.

package builder

import "errors"

// ErrTooFewMetabolites indicates a pathway or network size below the minimum.
var ErrTooFewMetabolites = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a model mutation that failed.
var ErrConstructFailed = errors.New("builder: construction failed")
