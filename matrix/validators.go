// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape and index checks shared by matrix and apsp.
//  - Return sentinels wrapped with a validator tag so call sites can wrap uniformly.

package matrix

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateIndex checks 0 <= i, j < n for an n×n matrix.
// Complexity: O(1).
func ValidateIndex(n, i, j int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}
