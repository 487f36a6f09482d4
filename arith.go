// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the elementary multi-precision arithmetic operations
// on Word vectors that the rest of the package is built on. All operations
// that can exceed _W bits are carried out in uint64 and split back into a
// (carry, Word) pair.

package bigint

// A Word is a single digit of a multi-precision integer, in base _B.
type Word uint32

const (
	_W = 32      // word size in bits
	_B = 1 << _W // word base
	_M = _B - 1  // word mask
)

// combine packs a (high, low) Word pair into a double-width value.
func combine(high, low Word) uint64 {
	return uint64(high)<<_W | uint64(low)
}

// split is the inverse of combine: it splits a double-width value into its
// carry (high) and digit (low) Words. split(combine(h, l)) == (h, l) for
// all h, l.
func split(v uint64) (high, low Word) {
	return Word(v >> _W), Word(v & _M)
}

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	// x*y + c < _B*_B: the high word always has room for the carry.
	return split(uint64(x)*uint64(y) + uint64(c))
}

// q = (u1<<_W + u0) / v, r = (u1<<_W + u0) % v. Requires u1 < v.
func divWW(u1, u0, v Word) (q, r Word) {
	n := combine(u1, u0)
	return Word(n / uint64(v)), Word(n % uint64(v))
}

// mulAddVWW sets z = x*y + r and returns the final carry.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW sets z += x*y and returns the final carry. This is the inner
// loop of schoolbook multiplication.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo := uint64(z0) + uint64(c)
		// z1 < _M whenever lo carries, so z1+1 cannot wrap.
		c, z[i] = z1+Word(lo>>_W), Word(lo&_M)
	}
	return
}

// divWVW sets z = (xn<<(len(x)*_W) + x) / y and returns the remainder,
// processing digits from most to least significant. Requires xn < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return
}
