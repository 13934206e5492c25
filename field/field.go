// SPDX-License-Identifier: MIT

package field

// Field is the capability set required of an exact-arithmetic element type E.
// The constraint is self-referential (E implements Field[E]), so both operands
// of every binary operation share one concrete type.
//
// Contract:
//   - all methods are pure and return new values;
//   - x.Add(x.AdditiveIdentity()) equals x, x.Mul(x.MultiplicativeIdentity()) equals x;
//   - x.Add(x.AdditiveInverse()) is zero;
//   - for non-zero x, x.Mul(x.MultiplicativeInverse()) equals the multiplicative identity;
//   - Equal compares values, not representations (2/4 equals 1/2);
//   - IsZero is Equal(AdditiveIdentity()).
//
// MultiplicativeInverse and Div are undefined on the additive identity.
// Implementations panic with ErrUndefinedOperation there; callers that cannot
// rule out zero should go through Inverse and Divide.
type Field[E any] interface {
	AdditiveIdentity() E       // e with x+e = x
	MultiplicativeIdentity() E // n with x*n = x
	AdditiveInverse() E        // x' with x+x' = e
	MultiplicativeInverse() E  // x" with x*x" = n; undefined for zero
	Add(y E) E                 // x+y
	Sub(y E) E                 // x-y
	Mul(y E) E                 // x*y
	Div(y E) E                 // x/y; undefined for zero y
	Equal(y E) bool            // value equality
	IsZero() bool              // Equal(AdditiveIdentity())
}

// Divide returns a/b, or ErrUndefinedOperation when b is zero.
func Divide[E Field[E]](a, b E) (E, error) {
	if b.IsZero() {
		var zero E
		return zero, ErrUndefinedOperation
	}

	return a.Div(b), nil
}

// Inverse returns the multiplicative inverse of a, or ErrUndefinedOperation
// when a is zero.
func Inverse[E Field[E]](a E) (E, error) {
	if a.IsZero() {
		var zero E
		return zero, ErrUndefinedOperation
	}

	return a.MultiplicativeInverse(), nil
}

// IsOne reports whether a equals the multiplicative identity.
func IsOne[E Field[E]](a E) bool {
	return a.Equal(a.MultiplicativeIdentity())
}
