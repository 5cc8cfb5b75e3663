package bigint

// Lsh returns x << n.
//
// The whole-limb part of the shift inserts zero limbs at the bottom. A
// remaining bit shift inserts one extra limb and then shifts right by the
// complement, which carries bits across limb boundaries with the same code
// as Rsh. A fill limb is appended first so that the top stored limb carries
// the sign after the insert, even for -1, which stores no limbs at all.
func (x Int) Lsh(n uint) Int {
	if n == 0 || x.IsZero() {
		return x
	}
	block, bit := int(n/limbBits), n%limbBits
	if bit > 0 {
		block++
	}
	z := x.share()
	z.limbs.Append(z.fill())
	z.limbs.InsertFront(block, 0)
	if bit > 0 {
		z.shiftRightBits(limbBits - bit)
	}
	z.normalize()
	return z
}

// Rsh returns x >> n. The shift is arithmetic: negative values round towards
// negative infinity, and shifting out every stored limb leaves 0 or -1.
func (x Int) Rsh(n uint) Int {
	if n == 0 {
		return x
	}
	block, bit := n/limbBits, n%limbBits
	if block >= uint(x.Len()) {
		if x.neg {
			return minusOneInt
		}
		return zeroInt
	}
	z := x.share()
	z.limbs.DropFront(int(block))
	if bit > 0 {
		z.shiftRightBits(bit)
	}
	z.normalize()
	return z
}

// shiftRightBits shifts the stored limbs right by s bits, 0 < s < 32,
// pulling the vacated top bits from the next limb up (or the fill value).
// Limbs are processed from least to most significant so each one still
// sees its unshifted neighbour.
func (z *Int) shiftRightBits(s uint) {
	n := z.limbs.Len()
	for i := 0; i < n; i++ {
		z.limbs.Set(i, z.limbs.At(i)>>s|z.Limb(i+1)<<(limbBits-s))
	}
}
