// SPDX-License-Identifier: MIT

// Package field defines the algebraic Field contract used by the exact
// elimination kernels and provides Rational, an arbitrary-precision fraction
// that satisfies it.
//
// What & Why:
//
//	Gaussian elimination only needs the four arithmetic operations, the two
//	identities, the two inverses and a zero test. Field[E] captures exactly
//	that set as a self-referential generic constraint, so a matrix over E can
//	never mix elements of two different concrete fields: the compiler rejects
//	it.
//
// Rational:
//
//   - numerator and denominator are *big.Int, so products never overflow;
//   - values are immutable, every operation returns a fresh Rational;
//   - every arithmetic result is reduced to lowest terms with the sign
//     carried by the numerator (see ToLowestTerms);
//   - the zero value is 0/1 and ready to use.
//
// Errors:
//
//   - ErrInvalidArgument is the kind of every construction error;
//     ErrZeroDenominator is the concrete sentinel for n/0.
//   - ErrUndefinedOperation marks an inverse (or division) of zero. The
//     Field methods panic with it because their signatures carry no error;
//     use Divide and Inverse for a checked form.
//
// Usage:
//
//	a, _ := field.NewRational(1, 3)
//	sum := a.Add(a)            // 2/3
//	q, err := field.Divide(sum, field.Int(0))
//	// err matches field.ErrUndefinedOperation
package field
