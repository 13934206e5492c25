// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Build rational matrices from string literals ("1/2", "-3") with fatal-on-error helpers.
//   • Provide deterministic random fixtures and a reduced-row-echelon checker.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgauss/field"
	"github.com/katalvlaran/lvgauss/matrix"
	"github.com/stretchr/testify/require"
)

// Q is the element type used throughout the tests.
type Q = field.Rational

// Rows PARSES a literal grid into rationals (panics on bad literals).
func Rows(lit [][]string) [][]Q {
	out := make([][]Q, len(lit))
	for i, row := range lit {
		out[i] = make([]Q, len(row))
		for j, s := range row {
			out[i][j] = field.MustParseRational(s)
		}
	}

	return out
}

// MustMatrix BUILDS a *Matrix from a literal grid or fails the test.
func MustMatrix(t *testing.T, lit [][]string) *matrix.Matrix[Q] {
	t.Helper()
	m, err := matrix.New(Rows(lit))
	require.NoError(t, err)

	return m
}

// MustAt READS m[i][j] or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix[Q], i, j int) Q {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireEqualGrid compares m against a literal grid element by element.
func RequireEqualGrid(t *testing.T, want [][]string, m *matrix.Matrix[Q]) {
	t.Helper()
	require.Equal(t, len(want), m.Height(), "height")
	var i, j int
	for i = 0; i < len(want); i++ {
		require.Equal(t, len(want[i]), m.Length(), "length of row %d", i)
		for j = 0; j < len(want[i]); j++ {
			got := MustAt(t, m, i, j)
			require.Truef(t, got.Equal(field.MustParseRational(want[i][j])),
				"[%d,%d]: got %s, want %s\n%s", i, j, got, want[i][j], m)
		}
	}
}

// RandomMatrix FILLS an h×w matrix with small integers and simple fractions.
// About a third of the entries are zero so rank-deficient shapes show up.
func RandomMatrix(t testing.TB, rng *rand.Rand, h, w int) *matrix.Matrix[Q] {
	t.Helper()
	rows := make([][]Q, h)
	for i := range rows {
		rows[i] = make([]Q, w)
		for j := range rows[i] {
			if rng.Intn(3) == 0 {
				rows[i][j] = field.Int(0)
				continue
			}
			r, err := field.NewRational(int64(rng.Intn(19)-9), int64(rng.Intn(4)+1))
			require.NoError(t, err)
			rows[i][j] = r
		}
	}
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// RequireReducedEchelon asserts the reduced row-echelon invariants on m:
//   - pivot columns strictly increase;
//   - each pivot element is 1 and the rest of its column is 0;
//   - the pivot is the leading non-zero of its row;
//   - rows after the last pivot are all zero.
func RequireReducedEchelon(t *testing.T, m *matrix.Matrix[Q]) {
	t.Helper()
	pivots := m.Pivots()
	require.LessOrEqual(t, len(pivots), min(m.Height(), m.Length()))
	for k, col := range pivots {
		if k > 0 {
			require.Greater(t, col, pivots[k-1], "pivot columns must increase")
		}
		require.True(t, field.IsOne(MustAt(t, m, k, col)), "pivot (%d,%d) must be 1\n%s", k, col, m)
		for i := 0; i < m.Height(); i++ {
			if i != k {
				require.True(t, MustAt(t, m, i, col).IsZero(), "(%d,%d) must be 0\n%s", i, col, m)
			}
		}
		for j := 0; j < col; j++ {
			require.True(t, MustAt(t, m, k, j).IsZero(), "(%d,%d) left of pivot must be 0\n%s", k, j, m)
		}
	}
	for i := len(pivots); i < m.Height(); i++ {
		for j := 0; j < m.Length(); j++ {
			require.True(t, MustAt(t, m, i, j).IsZero(), "row %d below last pivot must be zero\n%s", i, m)
		}
	}
}
