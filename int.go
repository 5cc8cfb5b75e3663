package bigint

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/shabbyrobe/go-bigint/internal/limbs"
)

// Int is an arbitrary-precision signed integer, stored as 32-bit limbs in
// two's complement with infinite sign extension. The zero value is 0.
type Int struct {
	limbs limbs.Vector
	neg   bool
}

// IntFrom64 sign-extends v into a new Int.
func IntFrom64(v int64) (z Int) {
	z.setLimb(0, uint32(v))
	z.setLimb(1, uint32(v>>limbBits))
	z.recomputeSign()
	z.normalize()
	return z
}

func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int  { return IntFrom64(int64(v)) }

func IntFromU64(v uint64) (z Int) {
	z.setLimb(0, uint32(v))
	z.setLimb(1, uint32(v>>limbBits))
	z.normalizeMagnitude()
	return z
}

// IntFromBigInt creates an Int from a big.Int.
func IntFromBigInt(v *big.Int) (z Int) {
	bts := v.Bytes()
	var word [4]byte
	for end, i := len(bts), 0; end > 0; end, i = end-4, i+1 {
		start := end - 4
		if start < 0 {
			start = 0
		}
		word = [4]byte{}
		copy(word[4-(end-start):], bts[start:end])
		z.setLimb(i, binary.BigEndian.Uint32(word[:]))
	}
	z.normalizeMagnitude()
	if v.Sign() < 0 {
		z = z.Neg()
	}
	return z
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (x Int) IntoBigInt(b *big.Int) {
	mag := x.Abs()
	n := magLen(mag)
	bts := make([]byte, n*4)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(bts[(n-1-i)*4:], mag.limbs.At(i))
	}
	b.SetBytes(bts)
	if x.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (x Int) AsBigInt() *big.Int {
	b := new(big.Int)
	x.IntoBigInt(b)
	return b
}

// AsInt64 truncates x to its low 64 bits. Values outside the range will
// wrap. See IsInt64() if you want to check before you convert.
func (x Int) AsInt64() int64 {
	return int64(uint64(x.Limb(1))<<limbBits | uint64(x.Limb(0)))
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	return x.Len() <= 2
}

// BitLen returns the length of the absolute value of x in bits. The bit
// length of 0 is 0.
func (x Int) BitLen() int {
	mag := x.Abs()
	n := magLen(mag)
	if n == 0 {
		return 0
	}
	return (n-1)*limbBits + bits.Len32(mag.limbs.At(n-1))
}

// RandInt generates a random Int of up to n limbs from an external source.
// Every bit pattern of n limbs is equally likely, so the result is negative
// about half the time.
func RandInt(source RandSource, n int) (z Int) {
	var w uint64
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			w = source.Uint64()
		}
		z.setLimb(i, uint32(w))
		w >>= limbBits
	}
	z.recomputeSign()
	z.normalize()
	return z
}
