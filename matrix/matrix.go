// SPDX-License-Identifier: MIT

// Package matrix - Matrix[E]: row storage, safe accessors & pivot bookkeeping.
//
// Purpose:
//   - Own the rows exclusively: readers get copies, writers go through ReplaceRow.
//   - Keep the shape fixed after construction; only element values change.
//   - Record pivot positions (pivot index -> column) in discovery order.
//
// Complexity quicksheet:
//   - New: O(h*w) copy; Row/Clone: O(w) / O(h*w); At: O(1); ReplaceRow: O(w).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgauss/field"
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxAt          = "At"
	ctxRow         = "Row"
	ctxReplaceRow  = "ReplaceRow"
	ctxRecordPivot = "RecordPivot"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "{ "
	_fmtRowClose = " }\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps err with a method tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// Matrix is a rectangular, mutable matrix over the field E.
//   - rows holds height slices of exactly length elements each.
//   - pivots maps pivot index k (the slice position) to its column.
type Matrix[E field.Field[E]] struct {
	rows   [][]E // exclusively owned row storage
	height int   // row count (> 0)
	length int   // column count (> 0)
	pivots []int // pivots[k] = column of the k-th pivot; len <= min(height, length)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[field.Rational])(nil)

// New builds a Matrix from a 2-D array, copying every element.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: ValidateRectangular(rows).
//   - Stage 2: copy rows into freshly allocated storage.
//
// Errors:
//   - ErrInvalidDimensions (no rows or no columns).
//   - ErrRaggedRows (row lengths differ).
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func New[E field.Field[E]](rows [][]E) (*Matrix[E], error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	h, w := len(rows), len(rows[0])
	data := make([][]E, h)
	for i := range rows {
		data[i] = make([]E, w)
		copy(data[i], rows[i])
	}

	return &Matrix[E]{rows: data, height: h, length: w}, nil
}

// Height returns the number of rows.
func (m *Matrix[E]) Height() int { return m.height }

// Length returns the number of columns (the row length).
func (m *Matrix[E]) Length() int { return m.length }

// At returns the element at (i, j), or ErrOutOfRange.
func (m *Matrix[E]) At(i, j int) (E, error) {
	var zero E
	if err := ValidateRowIndex(m, i); err != nil {
		return zero, matrixErrorf(ctxAt, err)
	}
	if err := ValidateColIndex(m, j); err != nil {
		return zero, matrixErrorf(ctxAt, err)
	}

	return m.rows[i][j], nil
}

// Row returns a copy of row i. Mutating the result does not affect m.
func (m *Matrix[E]) Row(i int) ([]E, error) {
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}

	out := make([]E, m.length)
	copy(out, m.rows[i])

	return out, nil
}

// ReplaceRow overwrites row i element by element with row.
// This is the only mutation point of the element storage.
// MAIN DESCRIPTION:
//   - Validate index and length, then copy into the existing row buffer.
//
// Behavior highlights:
//   - The caller keeps ownership of row; m never aliases it.
//   - On error nothing is written.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Height()).
//   - ErrDimensionMismatch when len(row) != Length().
//
// Complexity:
//   - Time O(w), Space O(1).
func (m *Matrix[E]) ReplaceRow(i int, row []E) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return matrixErrorf(ctxReplaceRow, err)
	}
	if err := ValidateRowLen(row, m.length); err != nil {
		return matrixErrorf(ctxReplaceRow, err)
	}
	copy(m.rows[i], row)

	return nil
}

// RecordPivot maps pivotIndex to column.
// An existing pivot index is overwritten; pivotIndex == Rank() appends.
// Anything else would leave a gap in the key sequence and is rejected.
//
// Errors:
//   - ErrOutOfRange for pivotIndex outside [0, Rank()], a column outside
//     [0, Length()), or an append beyond min(Height(), Length()) pivots.
func (m *Matrix[E]) RecordPivot(pivotIndex, column int) error {
	if err := ValidateColIndex(m, column); err != nil {
		return matrixErrorf(ctxRecordPivot, err)
	}
	switch {
	case pivotIndex >= 0 && pivotIndex < len(m.pivots):
		m.pivots[pivotIndex] = column
	case pivotIndex == len(m.pivots) && pivotIndex < min(m.height, m.length):
		m.pivots = append(m.pivots, column)
	default:
		return matrixErrorf(ctxRecordPivot, fmt.Errorf("pivot %d (recorded %d): %w", pivotIndex, len(m.pivots), ErrOutOfRange))
	}

	return nil
}

// resetPivots forgets all recorded pivots.
func (m *Matrix[E]) resetPivots() { m.pivots = m.pivots[:0] }

// Rank returns the number of recorded pivots.
func (m *Matrix[E]) Rank() int { return len(m.pivots) }

// Pivots returns a copy of the pivot columns ordered by pivot index.
func (m *Matrix[E]) Pivots() []int {
	out := make([]int, len(m.pivots))
	copy(out, m.pivots)

	return out
}

// PivotColumns returns a fresh pivot index -> column map.
func (m *Matrix[E]) PivotColumns() map[int]int {
	out := make(map[int]int, len(m.pivots))
	for k, col := range m.pivots {
		out[k] = col
	}

	return out
}

// Rows returns a deep copy of all rows.
func (m *Matrix[E]) Rows() [][]E {
	out := make([][]E, m.height)
	for i := range m.rows {
		out[i] = make([]E, m.length)
		copy(out[i], m.rows[i])
	}

	return out
}

// Clone returns an independent copy including pivot bookkeeping.
// Complexity: O(h*w).
func (m *Matrix[E]) Clone() *Matrix[E] {
	return &Matrix[E]{
		rows:   m.Rows(),
		height: m.height,
		length: m.length,
		pivots: m.Pivots(),
	}
}

// Equal reports whether m and other have the same shape and field-equal
// elements. Pivot bookkeeping is not compared.
func (m *Matrix[E]) Equal(other *Matrix[E]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.height != other.height || m.length != other.length {
		return false
	}
	for i := range m.rows {
		for j := range m.rows[i] {
			if !m.rows[i][j].Equal(other.rows[i][j]) {
				return false
			}
		}
	}

	return true
}

// String renders one row per line, e.g. "{ 1/1, 0/1 }".
// Determinism: fixed traversal order. Complexity: O(h*w).
func (m *Matrix[E]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.height; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.length; j++ {
			b.WriteString(fmt.Sprint(m.rows[i][j]))
			if j+1 < m.length {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
