// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Purpose:
//   - Stateless helpers used by GaussianElimination.
//   - Matrix-level operations mutate only through Matrix.ReplaceRow; slice-level
//     operations (ScaleRow, DivideRow) never touch their input.
//
// Complexity: every operation is O(w) field operations.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgauss/field"
)

// Operation name constants for unified error wrapping.
const (
	opExchangeRows    = "ExchangeRows"
	opDivideRow       = "DivideRow"
	opSubtractRowFrom = "SubtractRowFrom"
	opGauss           = "GaussianElimination"
	opReduced         = "Reduced"
)

// opErrorf wraps err with an operation tag; err must be non-nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ExchangeRows swaps the contents of rows i and j.
// MAIN DESCRIPTION:
//   - Validate both indices before any write, then perform two ReplaceRow calls.
//
// Behavior highlights:
//   - i == j is a validated no-op.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(w), Space O(w).
func ExchangeRows[E field.Field[E]](m *Matrix[E], i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return opErrorf(opExchangeRows, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return opErrorf(opExchangeRows, err)
	}
	if err := ValidateRowIndex(m, j); err != nil {
		return opErrorf(opExchangeRows, err)
	}
	if i == j {
		return nil
	}

	// Indices are validated; Row/ReplaceRow cannot fail below.
	rowI, _ := m.Row(i)
	rowJ, _ := m.Row(j)
	_ = m.ReplaceRow(i, rowJ)
	_ = m.ReplaceRow(j, rowI)

	return nil
}

// ScaleRow returns a new row with every element multiplied by factor.
// The input slice is not modified.
func ScaleRow[E field.Field[E]](row []E, factor E) []E {
	out := make([]E, len(row))
	for k, v := range row {
		out[k] = v.Mul(factor)
	}

	return out
}

// DivideRow returns a new row with every element divided by divisor.
//
// Errors:
//   - field.ErrUndefinedOperation when divisor is zero.
func DivideRow[E field.Field[E]](row []E, divisor E) ([]E, error) {
	if divisor.IsZero() {
		return nil, opErrorf(opDivideRow, field.ErrUndefinedOperation)
	}

	out := make([]E, len(row))
	for k, v := range row {
		out[k] = v.Div(divisor)
	}

	return out, nil
}

// SubtractRowFrom replaces row target with row(target) - subtrahend,
// element by element.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (target), ErrDimensionMismatch (subtrahend length).
//
// Complexity:
//   - Time O(w), Space O(w).
func SubtractRowFrom[E field.Field[E]](m *Matrix[E], target int, subtrahend []E) error {
	if err := ValidateNotNil(m); err != nil {
		return opErrorf(opSubtractRowFrom, err)
	}
	if err := ValidateRowIndex(m, target); err != nil {
		return opErrorf(opSubtractRowFrom, err)
	}
	if err := ValidateRowLen(subtrahend, m.length); err != nil {
		return opErrorf(opSubtractRowFrom, err)
	}

	row, _ := m.Row(target)
	for k := range row {
		row[k] = row[k].Sub(subtrahend[k])
	}

	return m.ReplaceRow(target, row)
}
