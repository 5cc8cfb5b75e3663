package bigint

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of every error returned by this package. Use
// Error.Has(err) to test for any bigint error, or errors.Is with one of the
// sentinels below for a specific kind.
var Error = errs.Class("bigint")

var (
	// ErrDivideByZero is returned by Quo, Rem, QuoRem and their Assign
	// forms when the divisor is zero.
	ErrDivideByZero = errors.New("division by zero")

	// ErrInvalidFormat is returned when a string is not an optionally signed
	// run of decimal digits.
	ErrInvalidFormat = errors.New("invalid decimal string")
)

func errDivideByZero() error {
	return Error.Wrap(ErrDivideByZero)
}

func errInvalidFormat(s string) error {
	return Error.Wrap(fmt.Errorf("%w %q", ErrInvalidFormat, s))
}
