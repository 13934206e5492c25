// SPDX-License-Identifier: MIT

// Package matrix - Gauss–Jordan reduction to reduced row-echelon form.
//
// Purpose:
//   - Reduce a Matrix[E] in place using only Field operations.
//   - Record, in discovery order, the column each pivot occupies.
//
// Determinism:
//   - Column-major outer scan, row-major inner scan, first non-zero candidate
//     at or below the current pivot row wins. Identical inputs give identical
//     echelon forms and pivot maps.

package matrix

import (
	"github.com/katalvlaran/lvgauss/field"
)

// StepKind names one elementary action of the elimination.
type StepKind int

const (
	// StepPivot: a pivot was found at (Row, Column) and recorded as Pivot.
	StepPivot StepKind = iota
	// StepSwap: Row was exchanged with the pivot row Pivot.
	StepSwap
	// StepNormalize: pivot row Pivot was divided by its pivot element.
	StepNormalize
	// StepEliminate: Column was cleared in Row using pivot row Pivot.
	StepEliminate
)

var stepKindNames = [...]string{
	StepPivot:     "pivot",
	StepSwap:      "swap",
	StepNormalize: "normalize",
	StepEliminate: "eliminate",
}

// String returns the lower-case name of k.
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepKindNames) {
		return "unknown"
	}

	return stepKindNames[k]
}

// Step describes one elimination event delivered to WithStepHook.
type Step struct {
	Kind   StepKind
	Pivot  int // pivot index (also the pivot row after the swap)
	Row    int // row acted upon (candidate, swapped or eliminated row)
	Column int // pivot column
}

// GaussianElimination reduces m in place to reduced row-echelon form.
// MAIN DESCRIPTION:
//   - Full Gauss–Jordan: every pivot is 1 and its column is 0 in every other row.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); clear pivots from earlier runs.
//   - Stage 2: for column = 0..Length-1, find the first row r >= pivotCount
//     with m[r][column] != 0. If none, continue with the next column.
//   - Stage 3: RecordPivot(pivotCount, column); ExchangeRows(r, pivotCount);
//     divide the pivot row by its pivot element.
//   - Stage 4: for every other row with a non-zero factor f in column,
//     SubtractRowFrom(row, ScaleRow(pivotRow, f)). pivotCount++.
//
// Behavior highlights:
//   - Never divides by zero: the pivot is checked non-zero before DivideRow.
//   - Rows below the last pivot end up all-zero.
//   - Running it again on a reduced matrix changes nothing (fixed point).
//
// Inputs:
//   - m: non-nil matrix; mutated in place.
//   - opts: WithLogger, WithStepHook (observation only).
//
// Errors:
//   - ErrNilMatrix.
//   - Any other error indicates a broken Field implementation (for example
//     IsZero disagreeing with Div) and leaves m partially reduced but well formed.
//
// Complexity:
//   - Time O(h * w * min(h, w)) field operations, Space O(w).
func GaussianElimination[E field.Field[E]](m *Matrix[E], opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return opErrorf(opGauss, err)
	}
	o := gatherOptions(opts...)
	o.logger.Debug("gauss start", "height", m.height, "length", m.length)

	m.resetPivots()
	pivotCount := 0
	for column := 0; column < m.length && pivotCount < m.height; column++ {
		candidate := firstNonZero(m, pivotCount, column)
		if candidate < 0 {
			continue
		}
		if err := m.RecordPivot(pivotCount, column); err != nil {
			return opErrorf(opGauss, err)
		}
		o.emit(Step{Kind: StepPivot, Pivot: pivotCount, Row: candidate, Column: column})

		if candidate != pivotCount {
			if err := ExchangeRows(m, candidate, pivotCount); err != nil {
				return opErrorf(opGauss, err)
			}
			o.emit(Step{Kind: StepSwap, Pivot: pivotCount, Row: candidate, Column: column})
		}

		if err := normalizePivotRow(m, pivotCount, column); err != nil {
			return opErrorf(opGauss, err)
		}
		o.emit(Step{Kind: StepNormalize, Pivot: pivotCount, Row: pivotCount, Column: column})

		pivotRow, err := m.Row(pivotCount)
		if err != nil {
			return opErrorf(opGauss, err)
		}
		for other := 0; other < m.height; other++ {
			if other == pivotCount {
				continue
			}
			factor := m.rows[other][column]
			if factor.IsZero() {
				continue
			}
			if err := SubtractRowFrom(m, other, ScaleRow(pivotRow, factor)); err != nil {
				return opErrorf(opGauss, err)
			}
			o.emit(Step{Kind: StepEliminate, Pivot: pivotCount, Row: other, Column: column})
		}
		pivotCount++
	}
	o.logger.Debug("gauss done", "rank", pivotCount)

	return nil
}

// Reduced returns a reduced copy of m and leaves m untouched.
//
// Errors:
//   - ErrNilMatrix; otherwise as GaussianElimination.
func Reduced[E field.Field[E]](m *Matrix[E], opts ...Option) (*Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opReduced, err)
	}
	out := m.Clone()
	if err := GaussianElimination(out, opts...); err != nil {
		return nil, opErrorf(opReduced, err)
	}

	return out, nil
}

// firstNonZero returns the first row r in [from, height) with m[r][column]
// non-zero, or -1.
func firstNonZero[E field.Field[E]](m *Matrix[E], from, column int) int {
	for r := from; r < m.height; r++ {
		if !m.rows[r][column].IsZero() {
			return r
		}
	}

	return -1
}

// normalizePivotRow divides row p by its element in column, making it 1.
func normalizePivotRow[E field.Field[E]](m *Matrix[E], p, column int) error {
	row, err := m.Row(p)
	if err != nil {
		return err
	}
	scaled, err := DivideRow(row, row[column])
	if err != nil {
		return err
	}

	return m.ReplaceRow(p, scaled)
}
