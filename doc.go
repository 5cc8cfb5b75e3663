/*
Package bigint provides an arbitrary-precision signed integer type (Int),
implementing most of the arithmetic, bitwise and comparison API of big.Int
on top of 32-bit limbs.

Int is a value type; all operations return new values. The Assign methods
(AddAssign, QuoAssign, ...) are the compound-assignment forms and replace
their receiver.

Simple example:

	a := MustIntFromString("123456789012345678901234567890")
	fmt.Println(a.Mul(IntFrom64(-2)))
	// Output: -246913578024691357802469135780

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromString(s string) (Int, error)
	IntFromBigInt(v *big.Int) Int

Values are held in infinite two's complement: negative numbers behave as if
they had an unbounded run of one bits above the stored limbs. This is what
makes And, Or, Xor, Not and Rsh agree with big.Int for negative operands.

Multiplication uses Karatsuba above 32 limbs and schoolbook below it.
Division is Knuth's Algorithm D; Quo and Rem truncate towards zero like Go's
own / and % operators, and return ErrDivideByZero instead of panicking.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter (%d, %s, %v)
	- fmt.Stringer
	- io.WriterTo
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Int values may be read concurrently. Writes through the Assign methods need
external synchronisation like any other Go variable.
*/
package bigint
