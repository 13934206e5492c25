// SPDX-License-Identifier: MIT
// Package field_test contains test helpers
//
// Purpose:
//   • Build rationals from int64 pairs without error plumbing.
//   • Generate deterministic pseudo-random rationals for property checks.

package field_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgauss/field"
	"github.com/stretchr/testify/require"
)

// propertyRounds is the number of random samples per property.
const propertyRounds = 200

// MustRational builds num/den or fails the test.
func MustRational(t *testing.T, num, den int64) field.Rational {
	t.Helper()
	r, err := field.NewRational(num, den)
	require.NoError(t, err)

	return r
}

// randomRational returns an unreduced num/den with |num| <= 60 and
// 1 <= |den| <= 60; the denominator sign is random.
func randomRational(rng *rand.Rand) field.Rational {
	num := int64(rng.Intn(121) - 60)
	den := int64(rng.Intn(60) + 1)
	if rng.Intn(2) == 0 {
		den = -den
	}
	r, _ := field.NewRational(num, den)

	return r
}

// requireCanonical asserts den > 0 and gcd(|num|, den) == 1 (0 is 0/1).
func requireCanonical(t *testing.T, r field.Rational) {
	t.Helper()
	num, den := r.Num(), r.Denom()
	require.Equal(t, 1, den.Sign(), "denominator must be positive: %s/%s", num, den)
	if num.Sign() == 0 {
		require.Zero(t, den.Cmp(big.NewInt(1)), "zero must be 0/1, got 0/%s", den)
		return
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	require.Zero(t, g.Cmp(big.NewInt(1)), "%s/%s is not reduced", num, den)
}
