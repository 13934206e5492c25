// SPDX-License-Identifier: MIT

// Package matrix offers exact, field-generic matrices and the Gauss–Jordan
// reduction to reduced row-echelon form.
//
// The matrix package provides:
//
//   - Matrix[E], a rectangular, mutable container of field.Field elements
//     with a single row-replace mutation point and pivot bookkeeping.
//   - Row operations (ExchangeRows, ScaleRow, DivideRow, SubtractRowFrom)
//     that drive every change through Matrix.ReplaceRow.
//   - GaussianElimination, which reduces a matrix in place and records the
//     column of each pivot in discovery order; Reduced does the same on a copy.
//   - Validators and sentinel errors shared by all of the above.
//
// Pivot policy:
//
//	Columns are scanned left to right; within a column the first row at or
//	below the current pivot row with a non-zero entry becomes the pivot.
//	Exact arithmetic makes magnitude-based pivoting unnecessary, and the
//	fixed choice keeps results reproducible.
//
// Matrices are single-owner and not safe for concurrent mutation.
//
// See example_test.go for usage patterns.
package matrix
