// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// Every construction failure matches ErrInvalidArgument via errors.Is; other
// packages derive their own argument sentinels with InvalidArgument so callers
// can test the error kind without knowing which package produced it.

package field

import "errors"

var (
	// ErrInvalidArgument is the kind shared by all argument validation failures.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUndefinedOperation signals an inverse or quotient of the additive identity.
	// Reaching it from the elimination kernels is a programming error.
	ErrUndefinedOperation = errors.New("field: undefined operation")

	// ErrZeroDenominator is returned when a rational is constructed with denominator 0.
	ErrZeroDenominator = InvalidArgument("field: zero denominator")

	// ErrSyntax is returned by ParseRational for text that is not a number.
	ErrSyntax = InvalidArgument("field: invalid rational syntax")
)

// argumentError is a named sentinel of the ErrInvalidArgument kind.
type argumentError struct {
	msg string
}

func (e *argumentError) Error() string { return e.msg }

// Unwrap exposes the shared kind to errors.Is.
func (e *argumentError) Unwrap() error { return ErrInvalidArgument }

// InvalidArgument returns a new sentinel with message msg that matches
// ErrInvalidArgument under errors.Is. Call it once per sentinel at package
// level; each call yields a distinct identity.
func InvalidArgument(msg string) error {
	return &argumentError{msg: msg}
}
