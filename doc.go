// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integer arithmetic on
32-bit limb vectors.

The architecture follows math/big: magnitudes are little-endian Word slices
operated on by a small set of vector primitives (fused multiply-add, divide
with remainder, the schoolbook inner loop), with every intermediate that can
exceed 32 bits computed in uint64 and split back into a (carry, Word) pair.
Carry propagation always has headroom because results grow by one limb, so
overflow is structurally impossible.

The zero value for an Int represents the value 0. New values can be declared
in the usual ways and denote 0 without further initialization:

	x := new(bigint.Int) // x is a *Int of value 0

Alternatively, values are created from native integers or decimal strings:

	x := bigint.NewInt(-42)
	y, err := bigint.Parse("340282366920938463463374607431768211456")

Setters and numeric operations are represented as methods of the form:

	func (z *Int) SetV(v V) *Int          // z = v
	func (z *Int) Binary(x, y *Int) *Int  // z = x binary y
	func (x *Int) Pred() P                // p = pred(x)

so results can serve as operands and calls can be chained. Scalar mutators
(AddWord, MulWord, MulAddWord, QuoRemWord) operate in place on the receiver;
Int x Int multiplication writes a fresh magnitude. An Int never shares limbs
with another Int, and no operation mutates its operands other than the
receiver, so distinct values may be used concurrently.

The supported value-to-text and text-to-value conversions are decimal only;
the package deliberately provides no base conversion, no serialization
format and no Int±Int or Int/Int arithmetic.
*/
package bigint
