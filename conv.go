package bigint

import (
	"fmt"
	"io"
	"strings"
)

// IntFromString parses an optionally signed decimal string such as "-123"
// or "+42". Any other character, including whitespace, an empty string or a
// lone sign, fails with ErrInvalidFormat.
func IntFromString(s string) (out Int, err error) {
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return zeroInt, errInvalidFormat(s)
	}

	// value = value*10 + digit, nine digits at a time.
	for i := 0; i < len(digits); {
		var chunk uint32
		scale := uint32(1)
		for j := 0; j < decimalChunkDigits && i < len(digits); j, i = j+1, i+1 {
			c := digits[i]
			if c < '0' || c > '9' {
				return zeroInt, errInvalidFormat(s)
			}
			chunk = chunk*10 + uint32(c-'0')
			scale *= 10
		}
		out = mulByLimb(out, scale).Add(IntFromU64(uint64(chunk)))
	}

	if neg {
		out = out.Neg()
	}
	return out, nil
}

// MustIntFromString is like IntFromString but panics if s cannot be parsed.
func MustIntFromString(s string) Int {
	v, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String formats x in base 10.
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}

	// Digits are collected least significant first and reversed at the end.
	var buf []byte
	mag := x.Abs()
	for {
		var r uint32
		mag, r = divByLimb(mag, decimalChunk)
		if mag.IsZero() {
			for r > 0 {
				buf = append(buf, byte('0'+r%10))
				r /= 10
			}
			break
		}
		for i := 0; i < decimalChunkDigits; i++ {
			buf = append(buf, byte('0'+r%10))
			r /= 10
		}
	}
	if x.neg {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// WriteTo writes the decimal form of x to w.
func (x Int) WriteTo(w io.Writer) (n int64, err error) {
	c, err := io.WriteString(w, x.String())
	return int64(c), err
}

// Format implements fmt.Formatter for the verbs 'd', 's' and 'v'. The '+',
// ' ', '-' and '0' flags and a field width are honoured; there is no
// precision and no other base.
func (x Int) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", c, x.String())
		return
	}

	digits := x.Abs().String()
	var sign string
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var pad int
	if width, ok := s.Width(); ok {
		pad = width - len(sign) - len(digits)
	}

	switch {
	case pad <= 0:
		io.WriteString(s, sign+digits)
	case s.Flag('-'):
		io.WriteString(s, sign+digits+strings.Repeat(" ", pad))
	case s.Flag('0'):
		io.WriteString(s, sign+strings.Repeat("0", pad)+digits)
	default:
		io.WriteString(s, strings.Repeat(" ", pad)+sign+digits)
	}
}

func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
