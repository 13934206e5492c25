// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvgauss/field"
	"github.com/katalvlaran/lvgauss/matrix"
	"github.com/stretchr/testify/require"
)

func TestExchangeRows(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}})
	require.NoError(t, matrix.ExchangeRows(m, 0, 2))
	RequireEqualGrid(t, [][]string{{"5", "6"}, {"3", "4"}, {"1", "2"}}, m)

	require.NoError(t, matrix.ExchangeRows(m, 1, 1))
	RequireEqualGrid(t, [][]string{{"5", "6"}, {"3", "4"}, {"1", "2"}}, m)
}

func TestExchangeRows_Errors(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]string{{"1", "2"}, {"3", "4"}})
	require.ErrorIs(t, matrix.ExchangeRows(m, 0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ExchangeRows(m, -1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ExchangeRows[Q](nil, 0, 0), matrix.ErrNilMatrix)

	// a failed exchange must not write anything
	RequireEqualGrid(t, [][]string{{"1", "2"}, {"3", "4"}}, m)
}

func TestScaleRow_DoesNotMutate(t *testing.T) {
	t.Parallel()

	row := Rows([][]string{{"1", "-2/3", "0"}})[0]
	scaled := matrix.ScaleRow(row, field.MustParseRational("3/2"))

	require.Equal(t, "3/2", scaled[0].String())
	require.Equal(t, "-1/1", scaled[1].String())
	require.True(t, scaled[2].IsZero())
	require.Equal(t, "1/1", row[0].String(), "input must stay untouched")
}

func TestDivideRow(t *testing.T) {
	t.Parallel()

	row := Rows([][]string{{"2", "3", "-4"}})[0]
	out, err := matrix.DivideRow(row, field.Int(2))
	require.NoError(t, err)
	require.Equal(t, []string{"1/1", "3/2", "-2/1"}, []string{out[0].String(), out[1].String(), out[2].String()})

	_, err = matrix.DivideRow(row, field.Int(0))
	require.ErrorIs(t, err, field.ErrUndefinedOperation)
}

func TestSubtractRowFrom(t *testing.T) {
	t.Parallel()

	// clean row {2, 4, -2} by {1, 1, 1} scaled by 2 gives {0, 2, -4}
	m := MustMatrix(t, [][]string{{"1", "1", "1"}, {"2", "4", "-2"}})
	pivot, err := m.Row(0)
	require.NoError(t, err)
	require.NoError(t, matrix.SubtractRowFrom(m, 1, matrix.ScaleRow(pivot, field.Int(2))))
	RequireEqualGrid(t, [][]string{{"1", "1", "1"}, {"0", "2", "-4"}}, m)
}

func TestSubtractRowFrom_Errors(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]string{{"1", "1"}})
	row := Rows([][]string{{"1", "1"}})[0]

	require.ErrorIs(t, matrix.SubtractRowFrom(m, 1, row), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.SubtractRowFrom(m, 0, row[:1]), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.SubtractRowFrom[Q](nil, 0, row), matrix.ErrNilMatrix)
	RequireEqualGrid(t, [][]string{{"1", "1"}}, m)
}
