package bigint

// Add returns x + y.
//
// Both operands are read through their fill-extended limbs, so mixed-sign
// addition needs no separate path: the sum is taken over one limb more than
// the longer operand and the sign falls out of the top bit.
func (x Int) Add(y Int) (z Int) {
	n := max(x.Len(), y.Len()) + 1
	var carry uint64
	for i := 0; i < n; i++ {
		carry += uint64(x.Limb(i)) + uint64(y.Limb(i))
		z.setLimb(i, uint32(carry))
		carry >>= limbBits
	}
	z.recomputeSign()
	z.normalize()
	return z
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Neg returns -x, computed as ^x + 1.
func (x Int) Neg() Int {
	return x.Not().Add(oneInt)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.neg {
		return x.Neg()
	}
	return x
}

// Inc returns x + 1.
func (x Int) Inc() Int { return x.Add(oneInt) }

// Dec returns x - 1.
func (x Int) Dec() Int { return x.Add(minusOneInt) }
