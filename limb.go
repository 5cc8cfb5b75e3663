package bigint

// The functions in this file maintain the representation invariant: every
// limb past Len() is an implicit copy of the fill value (0 for non-negative,
// 0xFFFFFFFF for negative numbers), and the most significant stored limb
// never equals the fill value unless dropping it would flip the sign bit.

// Len returns the number of stored limbs.
func (x Int) Len() int { return x.limbs.Len() }

// Limb returns limb i, least significant first. Indexes past Len() return
// the sign-extension fill value.
func (x Int) Limb(i int) uint32 {
	if i < x.limbs.Len() {
		return x.limbs.At(i)
	}
	return x.fill()
}

// Limbs copies the stored limbs out, least significant first.
func (x Int) Limbs() []uint32 { return x.limbs.Words() }

func (x Int) fill() uint32 {
	if x.neg {
		return limbMask
	}
	return 0
}

// setLimb writes limb i, growing the store by one limb when i == Len().
func (x *Int) setLimb(i int, v uint32) {
	if i == x.limbs.Len() {
		x.limbs.Append(v)
		return
	}
	x.limbs.Set(i, v)
}

// recomputeSign derives the sign from the top bit of the last stored limb.
// An empty store is zero.
func (x *Int) recomputeSign() {
	if x.limbs.Len() == 0 {
		x.neg = false
		return
	}
	x.neg = x.limbs.Back()&signBit != 0
}

func (x *Int) normalize() {
	f := x.fill()
	for n := x.limbs.Len(); n > 0 && x.limbs.At(n-1) == f; n-- {
		if n > 1 && (x.limbs.At(n-2)&signBit != 0) != x.neg {
			break
		}
		x.limbs.Truncate(n - 1)
	}
}

// normalizeMagnitude treats the stored limbs as an unsigned magnitude.
func (x *Int) normalizeMagnitude() {
	x.limbs.Append(0)
	x.neg = false
	x.normalize()
}

// share returns a copy of x whose storage is cloned on the first write.
func (x Int) share() Int {
	return Int{limbs: x.limbs.Share(), neg: x.neg}
}

// magLen returns the number of significant limbs of a non-negative x,
// ignoring the zero limb that keeps the sign bit clear.
func magLen(x Int) int {
	if x.neg {
		panic("bigint: magnitude length of negative value")
	}
	n := x.limbs.Len()
	if n > 0 && x.limbs.At(n-1) == 0 {
		n--
	}
	return n
}
