package bigint

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// scanSign reads an optional leading '+' or '-' from r.
func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// scan sets z to the value of the longest prefix of a signed decimal
// number read from r: an optional '+' or '-' followed by one or more
// decimal digits. The byte terminating the digit run is unread. scan
// fails with errNoDigits if the first byte past the sign is not a digit.
func (z *Int) scan(r io.ByteScanner) error {
	neg, err := scanSign(r)
	if err != nil {
		// nothing but EOF can come out of a ByteScanner over a string
		return errNoDigits
	}
	z.abs, _, err = z.abs.scan(r)
	if err != nil {
		return err
	}
	z.neg = neg && !z.abs.iszero()
	return nil
}

// Parse sets z to the value of the longest valid prefix of s and returns
// the number of bytes consumed. Callers that require the whole of s to be
// numeric must check that the count equals len(s) (or use SetString,
// which does). If s holds no leading number at all, Parse fails with an
// error wrapping ErrInvalidFormat and z is unchanged.
func (z *Int) Parse(s string) (int, error) {
	r := strings.NewReader(s)
	t := new(Int)
	if err := t.scan(r); err != nil {
		return 0, errors.Wrapf(ErrInvalidFormat, "parsing %q", s)
	}
	z.abs = t.abs
	z.neg = t.neg
	return len(s) - r.Len(), nil
}

// SetString sets z to the value of s, which must be an optionally signed
// decimal number with no trailing characters, and returns z. If the
// operation failed, the value of z is undefined but the returned value is
// nil, with an error wrapping ErrInvalidFormat.
func (z *Int) SetString(s string) (*Int, error) {
	n, err := z.Parse(s)
	if err != nil {
		return nil, err
	}
	if n != len(s) {
		return nil, errors.Wrapf(ErrInvalidFormat, "trailing characters %q in %q", s[n:], s)
	}
	return z, nil
}

// Parse returns a new Int set to the value of s, which must be an
// optionally signed decimal number with no trailing characters.
func Parse(s string) (*Int, error) {
	return new(Int).SetString(s)
}

// Append appends the decimal representation of x to buf and returns the
// extended buffer. x is not mutated: digits are peeled off a scratch copy
// of the magnitude, so Append is safe for concurrent readers of x.
func (x *Int) Append(buf []byte) []byte {
	return append(buf, x.abs.itoa(x.neg)...)
}

// String returns the decimal representation of x: the digits of its
// magnitude with no leading zeros, preceded by a '-' if x is negative.
// The canonical zero is "0".
func (x *Int) String() string {
	return string(x.abs.itoa(x.neg))
}

var _ fmt.Formatter = &Int{} // *Int must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and 'v'.
func (x *Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'd', 's', 'v':
		_, _ = s.Write(x.abs.itoa(x.neg))
	default:
		fmt.Fprintf(s, "%%!%c(*bigint.Int=%s)", ch, x.String())
	}
}
