package bigint

import "math/bits"

// An unsigned integer x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits beyond
// the first one: norm never trims below one digit, so the canonical
// representation of 0 is nat{0}, not the empty slice. An empty nat may
// only occur transiently inside this package, never through the Int API.
type nat []Word

// norm truncates leading zero digits, keeping at least one.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setWord(x Word) nat {
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if hi, lo := split(x); hi != 0 {
		z = z.make(2)
		z[1], z[0] = hi, lo
		return z
	}
	return z.setWord(Word(x))
}

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

func (x nat) iszero() bool {
	return len(x) == 0 || len(x) == 1 && x[0] == 0
}

func (x nat) bitLen() int {
	// tolerate denormalized input
	i := len(x) - 1
	for i >= 0 && x[i] == 0 {
		i--
	}
	if i < 0 {
		return 0
	}
	return i*_W + bits.Len32(uint32(x[i]))
}

// cmp compares the magnitudes of x and y. Both operands must be
// normalized.
func (x nat) cmp(y nat) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// mulAddWW sets z = x*y + r. The final carry is stored in a new most
// significant digit; an empty x produces nat{r}, so the result always
// holds at least one digit.
func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)
	return z.norm()
}

// divW sets z = x/y and returns the remainder. It panics with
// ErrDivisionByZero if y == 0.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic(ErrDivisionByZero)
	case y == 1:
		q = z.set(x)
		return
	case m == 0:
		q = z.setWord(0)
		return
	}
	// m > 0
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return
}

// mul sets z = x*y, using schoolbook multiplication. Both operands must be
// normalized; z must not alias x or y.
func (z nat) mul(x, y nat) nat {
	if x.iszero() || y.iszero() {
		return z.setWord(0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}

	m := len(x)
	n := len(y)
	z = z.make(m + n)
	z[0 : m+n].clear()
	for j := 0; j < n; j++ {
		if d := y[j]; d != 0 {
			// accumulate x*d at digit offset j; the carry out of the
			// inner loop lands in the (still zero) digit at j+m.
			z[j+m] = addMulVVW(z[j:j+m], x, d)
		}
	}
	return z.norm()
}

// alias reports whether x and y share the same base array.
//
// Note: alias assumes that the capacity of underlying arrays
// is never changed for nat values; i.e. that there are
// no 3-operand slice expressions in this code (or worse,
// reflect-based operations to the same effect).
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
