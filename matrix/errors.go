// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import "github.com/katalvlaran/lvgauss/field"

// NOTE ON NAMING & KIND
// ---------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Each sentinel is built with field.InvalidArgument,
// so errors.Is(err, field.ErrInvalidArgument) holds for all of them. Context is
// attached with matrixErrorf / validatorErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> dimension mismatch.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = field.InvalidArgument("matrix: nil matrix")

	// ErrInvalidDimensions indicates a matrix with no rows or no columns.
	ErrInvalidDimensions = field.InvalidArgument("matrix: dimensions must be > 0")

	// ErrRaggedRows signals that the rows of the input array differ in length.
	ErrRaggedRows = field.InvalidArgument("matrix: ragged array")

	// ErrOutOfRange indicates that an index (row, column or pivot) is outside valid bounds.
	ErrOutOfRange = field.InvalidArgument("matrix: index out of range")

	// ErrDimensionMismatch indicates a row whose length differs from the matrix length.
	ErrDimensionMismatch = field.InvalidArgument("matrix: dimension mismatch")
)
