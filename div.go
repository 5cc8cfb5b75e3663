package bigint

import "math/bits"

// QuoRem returns the quotient q and remainder r of x / y for y != 0. If y
// == 0, the error is ErrDivideByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// r is therefore zero or has the sign of x, and |r| < |y|.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	q, err = x.Quo(y)
	if err != nil {
		return zeroInt, zeroInt, err
	}
	return q, x.Sub(q.Mul(y)), nil
}

// Quo returns the quotient x/y, truncated towards zero. If y == 0, the
// error is ErrDivideByZero.
func (x Int) Quo(y Int) (Int, error) {
	if y.IsZero() {
		return zeroInt, errDivideByZero()
	}

	neg := x.neg != y.neg
	a, b := x.Abs(), y.Abs()

	var q Int
	switch {
	case a.LessThan(b):
		return zeroInt, nil
	case magLen(b) == 1:
		q, _ = divByLimb(a, b.limbs.At(0))
	default:
		q = divKnuth(a, b)
	}
	if neg {
		q = q.Neg()
	}
	return q, nil
}

// Rem returns the remainder x - (x/y)*y. If y == 0, the error is
// ErrDivideByZero.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// divKnuth is Knuth's Algorithm D for non-negative a >= b where b has at
// least two significant limbs.
//
// Both operands are first scaled by f = BASE/(top+1), which puts the top
// limb of the divisor at or above BASE/2. With that in place, dividing the
// top three limbs of the running remainder by the top two limbs of the
// divisor never underestimates a quotient limb, and overestimates it by at
// most one.
func divKnuth(a, b Int) Int {
	n, m := magLen(b), magLen(a)

	f := uint32(limbBase / (uint64(b.limbs.At(n-1)) + 1))
	r := mulByLimb(a, f)
	d := mulByLimb(b, f)
	dTop := uint64(d.Limb(n-1))<<limbBits | uint64(d.Limb(n-2))

	var q Int
	q.limbs.Resize(m-n+1, 0)

	for k := m - n; k >= 0; k-- {
		// r.Limb(n+k) < BASE <= dTop, so Div64 cannot overflow.
		hi := uint64(r.Limb(n + k))
		lo := uint64(r.Limb(n+k-1))<<limbBits | uint64(r.Limb(n+k-2))
		qt, _ := bits.Div64(hi, lo, dTop)
		if qt > limbMask {
			qt = limbMask
		}

		shift := uint(k) * limbBits
		dq := mulByLimb(d, uint32(qt)).Lsh(shift)
		for r.LessThan(dq) {
			qt--
			dq = mulByLimb(d, uint32(qt)).Lsh(shift)
		}
		r = r.Sub(dq)
		q.limbs.Set(k, uint32(qt))
	}

	q.normalizeMagnitude()
	return q
}
