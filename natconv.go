// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"io"

	"github.com/pkg/errors"
)

var errNoDigits = errors.New("number has no digits")

const (
	// Largest power of 10 that fits in a Word, and its digit count: digits
	// are accumulated (and emitted) in groups of up to maxPow10Digits so
	// that each group costs a single mulAddWW (resp. divW) pass.
	maxPow10       = 1e9
	maxPow10Digits = 9
)

var pow10tab = [maxPow10Digits + 1]Word{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// scan reads the longest prefix of ASCII decimal digits from r and
// accumulates it into z via z = z*10 + digit, with digits collected in
// groups of up to maxPow10Digits per mulAddWW pass. It reports the number
// of digits consumed; the byte following the digit run, if any, is
// unread. If no digit is found, scan fails with errNoDigits and z is left
// denormalized.
func (z nat) scan(r io.ByteScanner) (res nat, count int, err error) {
	z = z[:0]
	di := Word(0) // 0 <= di < 10**i
	i := 0        // 0 <= i < maxPow10Digits
	for {
		ch, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return z, count, err
		}
		if ch < '0' || ch > '9' {
			// ch does not belong to the number anymore
			_ = r.UnreadByte()
			break
		}
		count++

		// collect the digit in di
		di = di*10 + Word(ch-'0')
		i++

		// if di is "full", add it to the result
		if i == maxPow10Digits {
			z = z.mulAddWW(z, maxPow10, di)
			di = 0
			i = 0
		}
	}

	if count == 0 {
		return z, 0, errNoDigits
	}

	// add remaining digits to the result
	if i > 0 || len(z) == 0 {
		z = z.mulAddWW(z, pow10tab[i], di)
	}
	return z.norm(), count, nil
}

// utoa converts x to its decimal ASCII representation.
func (x nat) utoa() []byte {
	return x.itoa(false)
}

// itoa is like utoa but it prepends a '-' if neg && x != 0.
func (x nat) itoa(neg bool) []byte {
	// x == 0
	if x.iszero() {
		return []byte("0")
	}
	// x != 0

	// allocate buffer for conversion; log10(2) < 1/3, so
	// bitLen/3 + 1 digits always suffice.
	i := x.bitLen()/3 + 1
	if neg {
		i++
	}
	s := make([]byte, i)

	// q is a scratch copy consumed by repeated division; x itself is
	// never mutated.
	q := nat(nil).set(x)

	// emit digit groups, least significant first, filling s from the tail
	for !q.iszero() {
		var r Word
		q, r = q.divW(q, maxPow10)
		for j := 0; j < maxPow10Digits && i > 0; j++ {
			i--
			// avoid % computation since r%10 == r - int(r/10)*10
			t := r / 10
			s[i] = '0' + byte(r-t*10)
			r = t
		}
	}

	// strip leading zeros of the most significant digit group
	// (x != 0, so s[i:] must contain at least one non-zero digit
	// and the loop will terminate)
	for s[i] == '0' {
		i++
	}

	if neg {
		i--
		s[i] = '-'
	}

	return s[i:]
}
