// SPDX-License-Identifier: MIT

// Package field - Rational: exact fraction of two arbitrary-precision integers.
//
// Purpose:
//   - Concrete Field element for exact Gaussian elimination.
//   - Remove fixed-width overflow: numerator and denominator are *big.Int.
//
// Invariants:
//   - den != 0 for every constructed value.
//   - Arithmetic results are in lowest terms with den > 0.
//   - The *big.Int operands are never mutated after construction; every
//     operation allocates its result.
//
// Complexity quicksheet:
//   - Add/Sub/Mul/Div: three big multiplications plus one GCD.
//   - Equal/IsZero: normalizes both sides, O(GCD).

package field

import (
	"fmt"
	"math/big"
)

// Shared read-only constants. Never pass them as a receiver of a big.Int setter.
var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Rational is numerator/denominator over math/big integers.
// The zero value is 0/1.
type Rational struct {
	num *big.Int // numerator (nil means 0)
	den *big.Int // denominator (nil means 1), never zero
}

// Compile-time assertions for contract & fmt.Stringer conformance.
var (
	_ Field[Rational] = Rational{}
	_ fmt.Stringer    = Rational{}
)

// NewRational constructs num/den without reducing it.
// MAIN DESCRIPTION:
//   - Public constructor; rejects a zero denominator.
//
// Behavior highlights:
//   - No normalization here: ToLowestTerms is a separate step applied by every
//     arithmetic operation, by Equal and by String.
//
// Errors:
//   - ErrZeroDenominator when den == 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("NewRational(%d, %d): %w", num, den, ErrZeroDenominator)
	}

	return Rational{num: big.NewInt(num), den: big.NewInt(den)}, nil
}

// NewRationalBig constructs num/den from big integers. Inputs are copied.
//
// Errors:
//   - ErrInvalidArgument when num is nil.
//   - ErrZeroDenominator when den is nil or zero.
func NewRationalBig(num, den *big.Int) (Rational, error) {
	if num == nil {
		return Rational{}, fmt.Errorf("NewRationalBig: nil numerator: %w", ErrInvalidArgument)
	}
	if den == nil || den.Sign() == 0 {
		return Rational{}, fmt.Errorf("NewRationalBig(%v, %v): %w", num, den, ErrZeroDenominator)
	}

	return Rational{num: new(big.Int).Set(num), den: new(big.Int).Set(den)}, nil
}

// Int returns n/1.
func Int(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromRat converts a big.Rat (always reduced) into a Rational.
// A nil q yields 0/1.
func FromRat(q *big.Rat) Rational {
	if q == nil {
		return Rational{}
	}

	return Rational{num: new(big.Int).Set(q.Num()), den: new(big.Int).Set(q.Denom())}
}

// parts returns the operands with the zero-value defaults applied.
func (r Rational) parts() (num, den *big.Int) {
	num, den = r.num, r.den
	if num == nil {
		num = bigZero
	}
	if den == nil {
		den = bigOne
	}

	return num, den
}

// Num returns a copy of the numerator as stored (not reduced).
func (r Rational) Num() *big.Int {
	n, _ := r.parts()
	return new(big.Int).Set(n)
}

// Denom returns a copy of the denominator as stored (not reduced).
func (r Rational) Denom() *big.Int {
	_, d := r.parts()
	return new(big.Int).Set(d)
}

// ToLowestTerms returns r divided through by gcd(|den|, |num|), with a
// negative sign moved from the denominator onto the numerator.
// MAIN DESCRIPTION:
//   - Canonical form: gcd(|num|, den) == 1 and den > 0; zero becomes 0/1.
//
// Implementation:
//   - Stage 1: g = gcd(|den|, |num|) (Euclid on magnitudes, gcd(a,0) = a).
//   - Stage 2: divide both parts by g (exact).
//   - Stage 3: if den < 0, negate both.
//
// Behavior highlights:
//   - Idempotent: ToLowestTerms().ToLowestTerms() has the same parts.
//   - g >= 1 because den != 0, so the division is always defined.
//
// Complexity:
//   - Time O(GCD) on the operand sizes.
func (r Rational) ToLowestTerms() Rational {
	n, d := r.parts()

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(d), new(big.Int).Abs(n))
	num := new(big.Int).Quo(n, g)
	den := new(big.Int).Quo(d, g)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	return Rational{num: num, den: den}
}

// AdditiveIdentity returns 0/1.
func (Rational) AdditiveIdentity() Rational { return Int(0) }

// MultiplicativeIdentity returns 1/1.
func (Rational) MultiplicativeIdentity() Rational { return Int(1) }

// AdditiveInverse returns (-num)/den in lowest terms.
func (r Rational) AdditiveInverse() Rational {
	n, d := r.parts()
	return Rational{num: new(big.Int).Neg(n), den: new(big.Int).Set(d)}.ToLowestTerms()
}

// MultiplicativeInverse returns den/num in lowest terms.
// Panics with ErrUndefinedOperation when r is zero; see Inverse.
func (r Rational) MultiplicativeInverse() Rational {
	n, d := r.parts()
	if n.Sign() == 0 {
		panic(fmt.Errorf("Rational.MultiplicativeInverse(%s): %w", r, ErrUndefinedOperation))
	}

	return Rational{num: new(big.Int).Set(d), den: new(big.Int).Set(n)}.ToLowestTerms()
}

// Add returns (a*d + c*b) / (b*d) in lowest terms, for r = a/b and x = c/d.
func (r Rational) Add(x Rational) Rational {
	a, b := r.parts()
	c, d := x.parts()

	num := new(big.Int).Mul(a, d)
	num.Add(num, new(big.Int).Mul(c, b))
	den := new(big.Int).Mul(b, d)

	return Rational{num: num, den: den}.ToLowestTerms()
}

// Sub returns r + (-x).
func (r Rational) Sub(x Rational) Rational {
	return r.Add(x.AdditiveInverse())
}

// Mul returns (a*c) / (b*d) in lowest terms, for r = a/b and x = c/d.
func (r Rational) Mul(x Rational) Rational {
	a, b := r.parts()
	c, d := x.parts()

	return Rational{num: new(big.Int).Mul(a, c), den: new(big.Int).Mul(b, d)}.ToLowestTerms()
}

// Div returns r * x⁻¹. Panics with ErrUndefinedOperation when x is zero; see Divide.
func (r Rational) Div(x Rational) Rational {
	return r.Mul(x.MultiplicativeInverse())
}

// Equal compares the lowest-terms forms of r and x.
func (r Rational) Equal(x Rational) bool {
	p, q := r.ToLowestTerms(), x.ToLowestTerms()

	return p.num.Cmp(q.num) == 0 && p.den.Cmp(q.den) == 0
}

// IsZero reports whether r equals the additive identity.
func (r Rational) IsZero() bool {
	return r.Equal(r.AdditiveIdentity())
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r Rational) Sign() int {
	n, d := r.parts()
	return n.Sign() * d.Sign()
}

// Cmp compares r and x and returns -1, 0 or +1.
func (r Rational) Cmp(x Rational) int {
	return r.Rat().Cmp(x.Rat())
}

// Rat returns r as a newly allocated big.Rat.
func (r Rational) Rat() *big.Rat {
	n, d := r.parts()
	return new(big.Rat).SetFrac(n, d)
}

// Float64 returns the nearest float64 value of r.
func (r Rational) Float64() float64 {
	f, _ := r.Rat().Float64()
	return f
}

// String renders r in lowest terms as "num/den", e.g. "-1/2" or "3/1".
func (r Rational) String() string {
	p := r.ToLowestTerms()
	return p.num.String() + "/" + p.den.String()
}
