package bigint

// Mul returns the product x * y.
//
// The magnitudes are multiplied with mulKaratsuba and the sign, the XOR of
// the operand signs, is applied once at the end.
func (x Int) Mul(y Int) Int {
	neg := x.neg != y.neg
	z := mulKaratsuba(x.Abs(), y.Abs())
	if neg {
		z = z.Neg()
	}
	return z
}

// mulKaratsuba multiplies two non-negative values by splitting each into a
// high and low half at the same limb boundary and computing three
// half-sized products instead of four:
//
//	x*y = p1<<(64*half) + (p3-p1-p2)<<(32*half) + p2
//
// where p1 = xh*yh, p2 = xl*yl and p3 = (xh+xl)*(yh+yl).
func mulKaratsuba(x, y Int) Int {
	xn, yn := magLen(x), magLen(y)
	switch {
	case xn == 0 || yn == 0:
		return zeroInt
	case xn == 1:
		return mulByLimb(y, x.limbs.At(0))
	case yn == 1:
		return mulByLimb(x, y.limbs.At(0))
	case xn < karatsubaThreshold && yn < karatsubaThreshold:
		return mulSchoolbook(x, y)
	}

	half := max(xn, yn) / 2
	xh, xl := split(x, half)
	yh, yl := split(y, half)

	p1 := mulKaratsuba(xh, yh)
	p2 := mulKaratsuba(xl, yl)
	p3 := mulKaratsuba(xh.Add(xl), yh.Add(yl))

	shift := uint(half) * limbBits
	mid := p3.Sub(p1).Sub(p2)
	return p1.Lsh(2 * shift).Add(mid.Lsh(shift)).Add(p2)
}

// mulSchoolbook is the O(n*m) base case: every limb of x is multiplied
// into the running result with its own 64-bit carry chain.
func mulSchoolbook(x, y Int) (z Int) {
	xn, yn := magLen(x), magLen(y)
	z.limbs.Resize(xn+yn, 0)
	for i := 0; i < xn; i++ {
		xi := uint64(x.limbs.At(i))
		if xi == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < yn; j++ {
			t := uint64(z.limbs.At(i+j)) + xi*uint64(y.limbs.At(j)) + carry
			z.limbs.Set(i+j, uint32(t))
			carry = t >> limbBits
		}
		z.limbs.Set(i+yn, uint32(carry))
	}
	z.normalizeMagnitude()
	return z
}

// split partitions a non-negative x into the limbs from half upwards and
// the limbs below half.
func split(x Int, half int) (hi, lo Int) {
	n := magLen(x)
	for i := 0; i < n; i++ {
		if i < half {
			lo.setLimb(i, x.limbs.At(i))
		} else {
			hi.setLimb(i-half, x.limbs.At(i))
		}
	}
	hi.normalizeMagnitude()
	lo.normalizeMagnitude()
	return hi, lo
}
