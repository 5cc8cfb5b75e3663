package bigint

func (x Int) IsZero() bool { return x.limbs.Len() == 0 && !x.neg }

// Sign returns -1, 0 or 1 depending on whether x is negative, zero or
// positive.
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.limbs.Len() == 0:
		return 0
	}
	return 1
}

// IsNeg reports whether x < 0.
func (x Int) IsNeg() bool { return x.neg }

// Cmp compares x to y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	 1 if x >  y
//
// Values of the same sign are compared limb by limb from the top, starting
// one past the longer operand; the fill value stands in for missing limbs.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	for i := max(x.Len(), y.Len()); i >= 0; i-- {
		a, b := x.Limb(i), y.Limb(i)
		if a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (x Int) Equal(y Int) bool {
	if x.neg != y.neg || x.Len() != y.Len() {
		return false
	}
	for i := 0; i < x.Len(); i++ {
		if x.limbs.At(i) != y.limbs.At(i) {
			return false
		}
	}
	return true
}

func (x Int) GreaterThan(y Int) bool      { return x.Cmp(y) > 0 }
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }
func (x Int) LessThan(y Int) bool         { return x.Cmp(y) < 0 }
func (x Int) LessOrEqualTo(y Int) bool    { return x.Cmp(y) <= 0 }
