// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"

	"github.com/pkg/errors"
)

const debugBigint = true

// Sentinel errors. Division by zero is a programmer error and is raised as
// panic(ErrDivisionByZero) so that it remains distinguishable in a recover.
var (
	ErrInvalidFormat  = errors.New("bigint: invalid decimal number")
	ErrDivisionByZero = errors.New("bigint: division by zero")
)

// An Int represents a signed multi-precision integer. Its magnitude is
// stored least significant Word first. The zero value for an Int
// represents the value 0; any operation that materializes a magnitude
// normalizes zero to a single zero Word with a clear sign, so a negative
// zero never escapes, and an empty magnitude is only ever observed on a
// not-yet-operated-on zero value.
//
// Operations follow the math/big convention: a method on z typically sets
// z to the result and returns z. Words are never shared between values
// (Set copies).
type Int struct {
	neg bool // sign: true means negative
	abs nat  // magnitude, canonical zero is nat{0}
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := false
	if x < 0 {
		neg = true
	}
	z.abs = z.abs.setUint64(magnitude(x))
	z.neg = neg && !z.abs.iszero()
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.setUint64(x)
	z.neg = false
	return z
}

// magnitude returns |x| as a uint64; unlike -x it is defined for
// math.MinInt64 as well.
func magnitude(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// SetLimbs sets z to the value given by the little-endian limb slice abs,
// negated if neg, and returns z. The slice is copied, not retained, and
// may carry leading zero limbs.
func (z *Int) SetLimbs(neg bool, abs []Word) *Int {
	z.abs = z.abs.set(abs).norm()
	if len(z.abs) == 0 {
		z.abs = z.abs.setWord(0)
	}
	z.neg = neg && !z.abs.iszero()
	return z
}

// Limbs returns a copy of the magnitude of x, least significant Word
// first. The result holds at least one Word.
func (x *Int) Limbs() []Word {
	if len(x.abs) == 0 {
		return []Word{0}
	}
	return nat(nil).set(x.abs)
}

// Set sets z to x and returns z. The magnitude is deep-copied: z and x
// never share limbs.
func (z *Int) Set(x *Int) *Int {
	if debugBigint {
		x.validate()
	}
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x *Int) Sign() int {
	if debugBigint {
		x.validate()
	}
	if x.abs.iszero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return x.abs.iszero()
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = !z.neg && !z.abs.iszero()
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// MulAddWord sets z to z*m + a and returns z. m and a apply to the
// magnitude of z; the sign is unchanged unless the result is zero. This
// is the fused primitive behind both scalar multiplication and
// digit-by-digit decimal accumulation: z.MulAddWord(10, d) pushes the
// decimal digit d onto z.
func (z *Int) MulAddWord(m, a Word) *Int {
	if debugBigint {
		z.validate()
	}
	z.abs = z.abs.mulAddWW(z.abs, m, a)
	z.neg = z.neg && !z.abs.iszero()
	return z
}

// AddWord adds a to the magnitude of z and returns z.
func (z *Int) AddWord(a Word) *Int {
	return z.MulAddWord(1, a)
}

// MulWord multiplies the magnitude of z by m and returns z.
func (z *Int) MulWord(m Word) *Int {
	return z.MulAddWord(m, 0)
}

// QuoRemWord divides the magnitude of z by d, sets z to the quotient and
// returns the remainder. It panics with ErrDivisionByZero if d == 0.
func (z *Int) QuoRemWord(d Word) (r Word) {
	if debugBigint {
		z.validate()
	}
	if d == 0 {
		panic(ErrDivisionByZero)
	}
	z.abs, r = z.abs.divW(z.abs, d)
	z.neg = z.neg && !z.abs.iszero()
	return r
}

// MulInt32 multiplies z by the signed scalar v and returns z, negating
// the sign of z if v < 0.
func (z *Int) MulInt32(v int32) *Int {
	w := Word(v)
	if v < 0 {
		z.neg = !z.neg
		w = Word(-int64(v))
	}
	return z.MulWord(w)
}

// QuoInt32 divides z by the signed scalar v, negating the sign of z if
// v < 0, and returns the remainder of the magnitude division. It panics
// with ErrDivisionByZero if v == 0.
func (z *Int) QuoInt32(v int32) (r Word) {
	w := Word(v)
	if v < 0 {
		z.neg = !z.neg
		w = Word(-int64(v))
	}
	return z.QuoRemWord(w)
}

// Mul sets z to the product x*y and returns z. The sign of the product is
// the exclusive or of the operand signs; a zero product is never
// negative.
func (z *Int) Mul(x, y *Int) *Int {
	if debugBigint {
		x.validate()
		y.validate()
	}
	neg := x.neg != y.neg
	z.abs = z.abs.mul(x.abs, y.abs)
	z.neg = neg && !z.abs.iszero()
	return z
}

// cmpWide compares x and y and returns:
//
//	-2 if x < y and the operands have the same sign but differ in limb count
//	-1 if x < y
//	 0 if x == 0
//	+1 if x > y
//	+2 if x > y and the operands have the same sign but differ in limb count
//
// The ±2 "differ by magnitude" signal is a legacy quirk kept for
// compatibility; Cmp collapses it to a plain ordering.
func (x *Int) cmpWide(y *Int) int {
	xz, yz := x.abs.iszero(), y.abs.iszero()
	switch {
	case xz && yz:
		// sign of zero is not meaningful
		return 0
	case xz:
		if y.neg {
			return 1
		}
		return -1
	case yz:
		if x.neg {
			return -1
		}
		return 1
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	}
	// same sign, both non-zero
	var c int
	if m, n := len(x.abs), len(y.abs); m != n {
		// differ by magnitude
		c = 2
		if m < n {
			c = -2
		}
	} else {
		c = x.abs.cmp(y.abs)
	}
	if x.neg {
		c = -c
	}
	return c
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x *Int) Cmp(y *Int) int {
	if debugBigint {
		x.validate()
		y.validate()
	}
	switch c := x.cmpWide(y); {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

// Eq reports whether x == y. 0 and -0 are equal.
func (x *Int) Eq(y *Int) bool {
	return x.Cmp(y) == 0
}

// Leq reports whether x <= y.
func (x *Int) Leq(y *Int) bool {
	return x.Cmp(y) <= 0
}

// Geq reports whether x >= y.
func (x *Int) Geq(y *Int) bool {
	return x.Cmp(y) >= 0
}

func (x *Int) validate() {
	if !debugBigint {
		// avoid performance bugs
		panic("validate called but debugBigint is not set")
	}
	m := len(x.abs)
	if m > 1 && x.abs[m-1] == 0 {
		panic(fmt.Sprintf("denormalized magnitude %v", x.abs))
	}
	if x.neg && x.abs.iszero() {
		panic("negative zero")
	}
}
