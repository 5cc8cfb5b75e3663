package bigint

// All bitwise operators use infinite two's complement semantics, exactly as
// big.Int does: -1 has every bit set, and the fill value supplies the bits
// above the stored limbs.

// Not returns ^x, which is always equal to -x - 1.
func (x Int) Not() (z Int) {
	n := x.limbs.Len()
	z.limbs.Resize(n, 0)
	for i := 0; i < n; i++ {
		z.limbs.Set(i, ^x.limbs.At(i))
	}
	z.neg = !x.neg
	z.normalize()
	return z
}

func (x Int) And(y Int) Int {
	return bitwise(x, y, func(a, b uint32) uint32 { return a & b })
}

func (x Int) Or(y Int) Int {
	return bitwise(x, y, func(a, b uint32) uint32 { return a | b })
}

func (x Int) Xor(y Int) Int {
	return bitwise(x, y, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot returns x &^ y.
func (x Int) AndNot(y Int) Int {
	return bitwise(x, y, func(a, b uint32) uint32 { return a &^ b })
}

// Bit returns the value of bit i of x's two's complement representation.
func (x Int) Bit(i uint) uint {
	return uint(x.Limb(int(i/limbBits))>>(i%limbBits)) & 1
}

func bitwise(x, y Int, op func(a, b uint32) uint32) (z Int) {
	n := max(x.Len(), y.Len()) + 1
	for i := 0; i < n; i++ {
		z.setLimb(i, op(x.Limb(i), y.Limb(i)))
	}
	z.recomputeSign()
	z.normalize()
	return z
}
