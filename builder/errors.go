// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers match with errors.Is.
//   • Implementations attach context with %w at the detection site.
//   • Constructors never panic; option constructors may (programmer error).

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction step could not be applied
// (nil constructor, rejected edge insertion).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrCoordCount indicates that a geometric constructor received a coordinate
// slice whose length differs from the vertex count.
var ErrCoordCount = errors.New("builder: coordinate count does not match vertex count")
