package bigint

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func randMagnitude(limbs int) Int {
	var z Int
	for i := 0; i < limbs; i++ {
		z.setLimb(i, globalRNG.Uint32())
	}
	// Keep the requested length exact.
	if limbs > 0 && z.limbs.At(limbs-1) == 0 {
		z.limbs.Set(limbs-1, 1)
	}
	z.normalizeMagnitude()
	return z
}

func TestMulByLimb(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 5000; i++ {
		x := randMagnitude(globalRNG.Intn(10))
		m := globalRNG.Uint32()
		if i%10 == 0 {
			m = limbMask
		}
		r := mulByLimb(x, m)
		exp := new(big.Int).Mul(x.AsBigInt(), new(big.Int).SetUint64(uint64(m)))
		tt.MustEqual(exp.String(), r.String(), "%s * %d", x, m)
		tt.MustOK(checkNormalized(r))
	}
}

func TestDivByLimb(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 5000; i++ {
		x := randMagnitude(globalRNG.Intn(10))
		d := globalRNG.Uint32()
		if d == 0 {
			d = 1
		}
		q, r := divByLimb(x, d)

		bq, br := new(big.Int).QuoRem(x.AsBigInt(), new(big.Int).SetUint64(uint64(d)), new(big.Int))
		tt.MustEqual(bq.String(), q.String(), "%s / %d", x, d)
		tt.MustEqual(br.Uint64(), uint64(r), "%s %% %d", x, d)
		tt.MustOK(checkNormalized(q))
	}
}

func TestMagnitudeHelpersRejectNegative(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, fn := range []func(){
		func() { mulByLimb(i64(-1), 2) },
		func() { divByLimb(i64(-1), 2) },
		func() { divByLimb(i64(1), 0) },
		func() { magLen(i64(-1)) },
	} {
		func() {
			defer func() {
				tt.MustAssert(recover() != nil)
			}()
			fn()
		}()
	}
}

func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	for xn := 1; xn <= 100; xn += 3 {
		for _, yn := range []int{1, 2, xn / 2, xn, xn + 1, 2 * xn} {
			if yn < 1 {
				continue
			}
			t.Run(fmt.Sprintf("%dx%d", xn, yn), func(t *testing.T) {
				tt := assert.WrapTB(t)
				x, y := randMagnitude(xn), randMagnitude(yn)
				k := mulKaratsuba(x, y)
				s := mulSchoolbook(x, y)
				tt.MustAssert(k.Equal(s), "karatsuba %s != schoolbook %s", k, s)
				tt.MustOK(checkNormalized(k))

				exp := new(big.Int).Mul(x.AsBigInt(), y.AsBigInt())
				tt.MustEqual(exp.String(), k.String())
			})
		}
	}
}

func TestSplit(t *testing.T) {
	tt := assert.WrapTB(t)
	x := ints("0x0000000500000004000000030000000200000001")

	hi, lo := split(x, 2)
	tt.MustEqual([]uint32{3, 4, 5}, hi.Limbs())
	tt.MustEqual([]uint32{1, 2}, lo.Limbs())

	hi, lo = split(x, 7)
	tt.MustAssert(hi.IsZero())
	tt.MustAssert(lo.Equal(x))

	// The low half keeps a zero guard when its top bit is set.
	hi, lo = split(ints("0x180000000"), 1)
	tt.MustEqual([]uint32{1}, hi.Limbs())
	tt.MustEqual([]uint32{0x80000000, 0}, lo.Limbs())
}

func TestNormalize(t *testing.T) {
	for idx, tc := range []struct {
		limbs []uint32
		neg   bool
		out   []uint32
	}{
		{[]uint32{0, 0, 0}, false, []uint32{}},
		{[]uint32{0xFFFFFFFF, 0xFFFFFFFF}, true, []uint32{}},
		{[]uint32{1, 0, 0}, false, []uint32{1}},
		{[]uint32{0x80000000, 0, 0}, false, []uint32{0x80000000, 0}},
		{[]uint32{0x7FFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}, true, []uint32{0x7FFFFFFF, 0xFFFFFFFF}},
		{[]uint32{0x80000000, 0xFFFFFFFF}, true, []uint32{0x80000000}},
	} {
		t.Run(fmt.Sprintf("%d/%08x", idx, tc.limbs), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var x Int
			for i, l := range tc.limbs {
				x.setLimb(i, l)
			}
			x.recomputeSign()
			tt.MustEqual(tc.neg, x.neg)
			x.normalize()
			tt.MustEqual(tc.out, x.Limbs())
			tt.MustOK(checkNormalized(x))
		})
	}
}

func TestMagLen(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, magLen(Int{}))
	tt.MustEqual(1, magLen(i64(1)))
	tt.MustEqual(1, magLen(ints("0x80000000")))
	tt.MustEqual(2, magLen(ints("0x100000000")))
}
