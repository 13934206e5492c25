// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep row operations and elimination minimal by delegating nil/index/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgauss/field"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[E field.Field[E]](m *Matrix[E]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRowIndex – Ensures 0 <= i < m.Height().
//
// Implementation: Assumes m is not nil (caller must ensure).
// Return: nil or wrapped ErrOutOfRange.
// Complexity: O(1).
func ValidateRowIndex[E field.Field[E]](m *Matrix[E], i int) error {
	if i < 0 || i >= m.height {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex – Ensures 0 <= j < m.Length().
//
// Implementation: Assumes m is not nil (caller must ensure).
// Complexity: O(1).
func ValidateColIndex[E field.Field[E]](m *Matrix[E], j int) error {
	if j < 0 || j >= m.length {
		return validatorErrorf(fmt.Sprintf("ValidateColIndex(%d)", j), ErrOutOfRange)
	}

	return nil
}

// ValidateRowLen ensures a row holds exactly n elements.
// Time: O(1). Space: O(1).
func ValidateRowLen[E any](row []E, n int) error {
	if len(row) != n {
		return validatorErrorf(fmt.Sprintf("ValidateRowLen(%d!=%d)", len(row), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateRectangular ensures rows is a non-empty h×w array with w > 0 and
// every row of length w.
//
// Errors: ErrInvalidDimensions for an empty array or empty first row,
// ErrRaggedRows when some row length differs from the first.
// Complexity: O(h).
func ValidateRectangular[E any](rows [][]E) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	w := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != w {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d has %d, want %d", i, len(rows[i]), w), ErrRaggedRows)
		}
	}

	return nil
}
