// Package calc evaluates single bigint operations named by operator
// strings, and runs TOML case files of such operations against their
// expected results.
package calc

import (
	"errors"
	"fmt"
	"sort"

	"fortio.org/safecast"
	"github.com/zeebo/errs"

	bigint "github.com/shabbyrobe/go-bigint"
)

var Error = errs.Class("calc")

var (
	ErrUnknownOp  = errors.New("unknown operator")
	ErrShiftRange = errors.New("shift count out of range")
)

// MaxShift bounds the bit count accepted by "<<" and ">>".
const MaxShift = 1 << 24

type binaryFunc func(a, b bigint.Int) (string, error)

type unaryFunc func(a bigint.Int) string

var binaryOps = map[string]binaryFunc{
	"+":  func(a, b bigint.Int) (string, error) { return a.Add(b).String(), nil },
	"-":  func(a, b bigint.Int) (string, error) { return a.Sub(b).String(), nil },
	"*":  func(a, b bigint.Int) (string, error) { return a.Mul(b).String(), nil },
	"&":  func(a, b bigint.Int) (string, error) { return a.And(b).String(), nil },
	"|":  func(a, b bigint.Int) (string, error) { return a.Or(b).String(), nil },
	"^":  func(a, b bigint.Int) (string, error) { return a.Xor(b).String(), nil },
	"&^": func(a, b bigint.Int) (string, error) { return a.AndNot(b).String(), nil },

	"/": func(a, b bigint.Int) (string, error) {
		q, err := a.Quo(b)
		if err != nil {
			return "", err
		}
		return q.String(), nil
	},
	"%": func(a, b bigint.Int) (string, error) {
		r, err := a.Rem(b)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	},

	"<<": func(a, b bigint.Int) (string, error) {
		n, err := shiftCount(b)
		if err != nil {
			return "", err
		}
		return a.Lsh(n).String(), nil
	},
	">>": func(a, b bigint.Int) (string, error) {
		n, err := shiftCount(b)
		if err != nil {
			return "", err
		}
		return a.Rsh(n).String(), nil
	},

	"==":  func(a, b bigint.Int) (string, error) { return fmt.Sprint(a.Equal(b)), nil },
	"!=":  func(a, b bigint.Int) (string, error) { return fmt.Sprint(!a.Equal(b)), nil },
	"<":   func(a, b bigint.Int) (string, error) { return fmt.Sprint(a.LessThan(b)), nil },
	"<=":  func(a, b bigint.Int) (string, error) { return fmt.Sprint(a.LessOrEqualTo(b)), nil },
	">":   func(a, b bigint.Int) (string, error) { return fmt.Sprint(a.GreaterThan(b)), nil },
	">=":  func(a, b bigint.Int) (string, error) { return fmt.Sprint(a.GreaterOrEqualTo(b)), nil },
	"cmp": func(a, b bigint.Int) (string, error) { return fmt.Sprint(a.Cmp(b)), nil },
}

var unaryOps = map[string]unaryFunc{
	"neg": func(a bigint.Int) string { return a.Neg().String() },
	"not": func(a bigint.Int) string { return a.Not().String() },
	"abs": func(a bigint.Int) string { return a.Abs().String() },
	"inc": func(a bigint.Int) string { return a.Inc().String() },
	"dec": func(a bigint.Int) string { return a.Dec().String() },
}

func IsBinary(op string) bool { _, ok := binaryOps[op]; return ok }
func IsUnary(op string) bool  { _, ok := unaryOps[op]; return ok }

// Ops lists every supported operator, binary first, each group sorted.
func Ops() (binary, unary []string) {
	for op := range binaryOps {
		binary = append(binary, op)
	}
	for op := range unaryOps {
		unary = append(unary, op)
	}
	sort.Strings(binary)
	sort.Strings(unary)
	return binary, unary
}

// Binary parses a and b as decimal integers and returns a op b formatted as
// text. Comparisons yield "true" or "false"; "cmp" yields -1, 0 or 1.
func Binary(a, op, b string) (string, error) {
	fn, ok := binaryOps[op]
	if !ok {
		return "", Error.Wrap(fmt.Errorf("%w %q", ErrUnknownOp, op))
	}
	x, err := bigint.IntFromString(a)
	if err != nil {
		return "", err
	}
	y, err := bigint.IntFromString(b)
	if err != nil {
		return "", err
	}
	return fn(x, y)
}

// Unary parses a and returns op a formatted as text.
func Unary(op, a string) (string, error) {
	fn, ok := unaryOps[op]
	if !ok {
		return "", Error.Wrap(fmt.Errorf("%w %q", ErrUnknownOp, op))
	}
	x, err := bigint.IntFromString(a)
	if err != nil {
		return "", err
	}
	return fn(x), nil
}

func shiftCount(b bigint.Int) (uint, error) {
	if !b.IsInt64() || b.AsInt64() > MaxShift {
		return 0, Error.Wrap(fmt.Errorf("%w: %s", ErrShiftRange, b))
	}
	n, err := safecast.Conv[uint](b.AsInt64())
	if err != nil {
		return 0, Error.Wrap(fmt.Errorf("%w: %w", ErrShiftRange, err))
	}
	return n, nil
}
