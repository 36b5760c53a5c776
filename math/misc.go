// Package math provides elementary functions on Rationals that have an exact
// result.
package math

import (
	"math/big"

	"github.com/db47h/rational"
)

// constants
var (
	one = rational.NewFromInt64(1)
)

// pow sets z to x**n and returns z. z may alias x.
func pow(z, x *rational.Rational, n uint64) *rational.Rational {
	if n == 0 {
		return z.SetInt64(1)
	}
	y := new(rational.Rational).Set(one)
	z.Set(x).Canonicalize()

	for n > 1 {
		if n%2 != 0 {
			y.Mul(y, z)
		}
		z.Mul(z, z)
		n /= 2
	}
	return z.Mul(z, y)
}

// Pow sets z to x**n and returns z. The result is in lowest terms. A negative
// n yields the inverse of x**-n, with 0**n = 1/0 for n < 0. Pow(z, x, 0) is 1
// for any x, including 0/0.
//
// Pow panics with rational.ErrNaN if x is 0/0 and n != 0.
func Pow(z, x *rational.Rational, n int64) *rational.Rational {
	if n >= 0 {
		return pow(z, x, uint64(n))
	}
	// -n overflows for math.MinInt64
	return Inv(z, pow(z, x, uint64(-(n+1))+1))
}

// Inv sets z to 1/x and returns z. The inverse of zero is 1/0, and the inverse
// of an infinity is 0. Inv panics with rational.ErrNaN if x is 0/0.
//
// This function is a proxy for z.Quo(1, x).
func Inv(z, x *rational.Rational) *rational.Rational {
	return z.Quo(one, x)
}

// Abs sets z to |x| and returns z. The numerator and denominator of x are
// kept, up to their sign: Abs of 6/-4 is 6/4.
func Abs(z, x *rational.Rational) *rational.Rational {
	var a, b big.Int
	a.Abs(x.Num().BigInt())
	b.Abs(x.Denom().BigInt())
	return z.SetFrac(&a, &b)
}

// Mediant sets z to (a+c)/(b+d) where a/b and c/d are the stored numerator and
// denominator of x and y, and returns z. The result is not reduced.
//
// The mediant of two fractions with positive denominators lies between them.
// Note that the result depends on the stored form of x and y: the mediant of
// 1/2 and 1/1 is 2/3, that of 2/4 and 1/1 is 3/5.
func Mediant(z, x, y *rational.Rational) *rational.Rational {
	var a, b big.Int
	a.Add(x.Num().BigInt(), y.Num().BigInt())
	b.Add(x.Denom().BigInt(), y.Denom().BigInt())
	return z.SetFrac(&a, &b)
}
