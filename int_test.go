package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntZeroValue(t *testing.T) {
	var x Int
	assert.Equal(t, 0, x.Sign())
	assert.True(t, x.IsZero())
	assert.Equal(t, "0", x.String())
	assert.Equal(t, []Word{0}, x.Limbs())
}

func TestIntSetInt64(t *testing.T) {
	td := []struct {
		x     int64
		limbs []Word
		neg   bool
	}{
		{0, []Word{0}, false},
		{1, []Word{1}, false},
		{-1, []Word{1}, true},
		{1<<32 + 1, []Word{1, 1}, false},
		{-(15<<32 + 237), []Word{237, 15}, true},
		{-1 << 63, []Word{0, 1 << 31}, true},
	}
	for _, d := range td {
		x := NewInt(d.x)
		assert.Equal(t, d.limbs, x.Limbs(), "limbs of %d", d.x)
		assert.Equal(t, d.neg, x.neg, "sign of %d", d.x)
	}
}

func TestIntSetLimbs(t *testing.T) {
	// leading zero limbs are trimmed, an all-zero slice is canonicalized
	x := new(Int).SetLimbs(false, []Word{1, 0, 0})
	assert.Equal(t, []Word{1}, x.Limbs())

	x = new(Int).SetLimbs(true, []Word{0, 0})
	assert.Equal(t, []Word{0}, x.Limbs())
	assert.Equal(t, 0, x.Sign(), "-0 must normalize to 0")

	// the input slice is copied, not retained
	limbs := []Word{5}
	x = new(Int).SetLimbs(false, limbs)
	limbs[0] = 9
	assert.Equal(t, []Word{5}, x.Limbs())
}

func TestIntSetDeepCopy(t *testing.T) {
	x := NewInt(1<<40 + 5)
	y := new(Int).Set(x)
	y.MulWord(1000)
	assert.Equal(t, "1099511627781", x.String(), "mutating a copy must not touch the original")
	assert.Equal(t, "1099511627781000", y.String())
}

func TestIntScalarOps(t *testing.T) {
	x := NewInt(0)
	x.AddWord(41)
	x.AddWord(1)
	assert.Equal(t, "42", x.String())

	x.MulWord(1 << 31)
	assert.Equal(t, "90194313216", x.String())

	r := x.QuoRemWord(1 << 31)
	assert.Equal(t, Word(0), r)
	assert.Equal(t, "42", x.String())

	r = x.QuoRemWord(5)
	assert.Equal(t, Word(2), r)
	assert.Equal(t, "8", x.String())

	// scalar mutators act on the magnitude; the sign is sticky
	y := NewInt(-3)
	y.MulAddWord(10, 4)
	assert.Equal(t, "-34", y.String())
}

func TestIntScalarZeroNormalization(t *testing.T) {
	// a result of zero clears the sign, whatever the operation
	x := NewInt(-5)
	x.MulWord(0)
	assert.Equal(t, 0, x.Sign())
	assert.Equal(t, []Word{0}, x.Limbs())

	y := NewInt(-1)
	y.QuoRemWord(2)
	assert.Equal(t, 0, y.Sign())
	assert.Equal(t, []Word{0}, y.Limbs())
}

func TestIntSignedScalars(t *testing.T) {
	x := NewInt(6)
	x.MulInt32(-7)
	assert.Equal(t, "-42", x.String())
	x.MulInt32(-1)
	assert.Equal(t, "42", x.String())

	x.QuoInt32(-4)
	assert.Equal(t, "-10", x.String())

	// MinInt32 must not overflow the magnitude conversion
	y := NewInt(1)
	y.MulInt32(-1 << 31)
	assert.Equal(t, "-2147483648", y.String())
}

func TestIntQuoRemWordMultiLimb(t *testing.T) {
	// 5*2^64 / 2 = 5*2^63, remainder 0
	x := new(Int).SetLimbs(false, []Word{0, 0, 5})
	r := x.QuoRemWord(2)
	assert.Equal(t, Word(0), r)
	assert.Equal(t, []Word{0, 1 << 31, 2}, x.Limbs())
	assert.Equal(t, "46116860184273879040", x.String())
}

func TestIntQuoRemWordPanics(t *testing.T) {
	x := NewInt(1)
	assert.PanicsWithValue(t, ErrDivisionByZero, func() { x.QuoRemWord(0) })
	assert.PanicsWithValue(t, ErrDivisionByZero, func() { x.QuoInt32(0) })
}

func TestIntMul(t *testing.T) {
	td := []struct {
		x, y, z string
	}{
		{"0", "0", "0"},
		{"0", "-5", "0"},
		{"1", "1", "1"},
		{"-1", "1", "-1"},
		{"-1", "-1", "1"},
		{"4294967296", "4294967296", "18446744073709551616"},
		{"-4294967297", "4294967297", "-18446744082299486209"},
		{
			"31415926535897932384626433832795028841971693993751",
			"27182818284590452353602874713526624977572470936999",
			"853973422267356706546355086954657449503488853576491197855062197565171182958845924077964935420693249",
		},
		{
			"-31415926535897932384626433832795028841971693993751",
			"27182818284590452353602874713526624977572470936999",
			"-853973422267356706546355086954657449503488853576491197855062197565171182958845924077964935420693249",
		},
	}
	for _, d := range td {
		x, err := Parse(d.x)
		require.NoError(t, err)
		y, err := Parse(d.y)
		require.NoError(t, err)

		z := new(Int).Mul(x, y)
		assert.Equal(t, d.z, z.String(), "%s * %s", d.x, d.y)

		// operands must be untouched
		assert.Equal(t, d.x, x.String())
		assert.Equal(t, d.y, y.String())
	}
}

func TestIntMulZeroSign(t *testing.T) {
	z := new(Int).Mul(NewInt(-5), NewInt(0))
	assert.Equal(t, 0, z.Sign(), "a zero product is never negative")
	assert.False(t, z.neg)
}

func TestIntMulAliasing(t *testing.T) {
	x := NewInt(1 << 20)
	x.Mul(x, x)
	assert.Equal(t, "1099511627776", x.String())
}

func TestIntPow2_128(t *testing.T) {
	x := NewInt(1)
	for i := 0; i < 128; i++ {
		x.MulWord(2)
	}
	assert.Equal(t, "340282366920938463463374607431768211456", x.String())
	assert.Equal(t, []Word{0, 0, 0, 0, 1}, x.Limbs())
}

func TestIntCmp(t *testing.T) {
	td := []struct {
		x, y string
		c    int
	}{
		{"0", "0", 0},
		{"0", "-0", 0},
		{"5", "5", 0},
		{"-5", "-5", 0},
		{"-5", "0", -1},
		{"0", "-5", 1},
		{"0", "5", -1},
		{"5", "0", 1},
		{"-5", "5", -1},
		{"5", "-5", 1},
		{"5", "7", -1},
		{"-5", "-7", 1},
		{"4294967296", "5", 1},
		{"-4294967296", "-5", -1},
		{"18446744073709551616", "18446744073709551615", 1},
	}
	for _, d := range td {
		x, err := Parse(d.x)
		require.NoError(t, err)
		y, err := Parse(d.y)
		require.NoError(t, err)
		assert.Equal(t, d.c, x.Cmp(y), "Cmp(%s, %s)", d.x, d.y)
		assert.Equal(t, -d.c, y.Cmp(x), "Cmp(%s, %s)", d.y, d.x)

		assert.Equal(t, d.c == 0, x.Eq(y))
		assert.Equal(t, d.c <= 0, x.Leq(y))
		assert.Equal(t, d.c >= 0, x.Geq(y))
	}
}

// cmpWide reports same-sign operands of different limb counts as ±2.
func TestIntCmpWide(t *testing.T) {
	small := NewInt(5)
	large := new(Int).SetUint64(1 << 40)

	assert.Equal(t, -2, small.cmpWide(large))
	assert.Equal(t, 2, large.cmpWide(small))

	nsmall := new(Int).Neg(small)
	nlarge := new(Int).Neg(large)
	assert.Equal(t, 2, nsmall.cmpWide(nlarge))
	assert.Equal(t, -2, nlarge.cmpWide(nsmall))

	// same length stays within ±1
	assert.Equal(t, -1, NewInt(5).cmpWide(NewInt(7)))
	assert.Equal(t, 0, NewInt(5).cmpWide(NewInt(5)))
}

func TestIntCmpTotality(t *testing.T) {
	vals := []*Int{}
	for i := 0; i < 50; i++ {
		x := new(Int).SetLimbs(rnd.Intn(2) == 0, rndV(1+rnd.Intn(4)))
		vals = append(vals, x)
	}
	for _, a := range vals {
		for _, b := range vals {
			c, d := a.Cmp(b), b.Cmp(a)
			assert.Equal(t, -d, c, "Cmp must be antisymmetric for %s, %s", a, b)
			n := 0
			if c < 0 {
				n++
			}
			if c == 0 {
				n++
			}
			if c > 0 {
				n++
			}
			assert.Equal(t, 1, n)
		}
	}
}

func TestIntNegAbs(t *testing.T) {
	x := NewInt(-5)
	assert.Equal(t, "5", new(Int).Neg(x).String())
	assert.Equal(t, "5", new(Int).Abs(x).String())
	assert.Equal(t, "-5", x.String(), "Neg/Abs must not mutate their operand")

	z := new(Int).Neg(NewInt(0))
	assert.Equal(t, 0, z.Sign(), "-0 must normalize to 0")
}
