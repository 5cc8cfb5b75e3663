package bigint

// The Assign methods are the compound assignment forms of the value
// operators: z.AddAssign(y) is z += y. Each one stores a freshly computed
// value in *z and returns z, so copies of the old *z are never affected.

func (z *Int) AddAssign(y Int) *Int { *z = z.Add(y); return z }
func (z *Int) SubAssign(y Int) *Int { *z = z.Sub(y); return z }
func (z *Int) MulAssign(y Int) *Int { *z = z.Mul(y); return z }
func (z *Int) AndAssign(y Int) *Int { *z = z.And(y); return z }
func (z *Int) OrAssign(y Int) *Int  { *z = z.Or(y); return z }
func (z *Int) XorAssign(y Int) *Int { *z = z.Xor(y); return z }

func (z *Int) LshAssign(n uint) *Int { *z = z.Lsh(n); return z }
func (z *Int) RshAssign(n uint) *Int { *z = z.Rsh(n); return z }

// IncAssign is ++z.
func (z *Int) IncAssign() *Int { *z = z.Inc(); return z }

// DecAssign is --z.
func (z *Int) DecAssign() *Int { *z = z.Dec(); return z }

// QuoAssign sets z to z/y. On error z is left unchanged.
func (z *Int) QuoAssign(y Int) (*Int, error) {
	q, err := z.Quo(y)
	if err != nil {
		return z, err
	}
	*z = q
	return z, nil
}

// RemAssign sets z to z%y. On error z is left unchanged.
func (z *Int) RemAssign(y Int) (*Int, error) {
	r, err := z.Rem(y)
	if err != nil {
		return z, err
	}
	*z = r
	return z, nil
}
