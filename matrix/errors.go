// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (optionally wrapped with
// call-site context via %w); callers and tests match them with errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested vertex count or shape is non-positive.
	ErrInvalidSize = errors.New("matrix: size must be > 0")

	// ErrOutOfRange indicates that a vertex, row or column index is outside valid bounds.
	// Public indexers MUST return this, never clamp or wrap.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidWeight rejects NaN and -Inf edge weights. +Inf is legal and means "no edge".
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")
)

// matrixErrorf prefixes err with an operation tag, preserving the sentinel via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
