// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
	"strings"
)

// fractionSep separates numerator and denominator in the text form.
const fractionSep = "/"

// ParseRational reads a rational from text.
// Accepted forms:
//   - "a/b" with base-10 integers a and b (spaces around either part allowed);
//   - an integer, "-7";
//   - a decimal, "0.25" or "-1.5e2".
//
// The result is in lowest terms.
//
// Errors:
//   - ErrZeroDenominator for "a/0".
//   - ErrSyntax for anything else that is not a number.
func ParseRational(s string) (Rational, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, ErrSyntax)
	}

	if numText, denText, ok := strings.Cut(text, fractionSep); ok {
		num, okNum := new(big.Int).SetString(strings.TrimSpace(numText), 10)
		den, okDen := new(big.Int).SetString(strings.TrimSpace(denText), 10)
		if !okNum || !okDen {
			return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, ErrSyntax)
		}
		r, err := NewRationalBig(num, den)
		if err != nil {
			return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, err)
		}

		return r.ToLowestTerms(), nil
	}

	q, ok := new(big.Rat).SetString(text)
	if !ok {
		return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, ErrSyntax)
	}

	return FromRat(q), nil
}

// MustParseRational is ParseRational that panics on error.
// Intended for literals in tests and examples.
func MustParseRational(s string) Rational {
	r, err := ParseRational(s)
	if err != nil {
		panic(err)
	}

	return r
}
