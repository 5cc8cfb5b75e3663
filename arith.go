package bigint

// Single-limb helpers shared by multiplication, division and decimal
// conversion. Both operate on non-negative values only.

// mulByLimb returns x * m using a 64-bit carry chain. The result grows by
// one limb to hold the final carry.
func mulByLimb(x Int, m uint32) (z Int) {
	if x.neg {
		panic("bigint: mulByLimb of negative value")
	}
	n := x.limbs.Len()
	var carry uint64
	for i := 0; i < n; i++ {
		carry += uint64(x.limbs.At(i)) * uint64(m)
		z.setLimb(i, uint32(carry))
		carry >>= limbBits
	}
	z.setLimb(n, uint32(carry))
	z.normalizeMagnitude()
	return z
}

// divByLimb returns the quotient and remainder of x / d. d must not be zero.
func divByLimb(x Int, d uint32) (q Int, r uint32) {
	if x.neg {
		panic("bigint: divByLimb of negative value")
	}
	if d == 0 {
		panic("bigint: divByLimb by zero")
	}
	n := x.limbs.Len()
	q.limbs.Resize(n, 0)

	var rem uint64
	for i := n - 1; i >= 0; i-- {
		rem = rem<<limbBits | uint64(x.limbs.At(i))
		q.limbs.Set(i, uint32(rem/uint64(d)))
		rem %= uint64(d)
	}
	q.normalizeMagnitude()
	return q, uint32(rem)
}
