package math

import (
	"math/big"

	"github.com/db47h/rational"
)

// Floor sets z to the greatest integer value less than or equal to x, and
// returns z. The result is in lowest terms.
//
// Special cases are:
//	Floor(±1/0) = ±1/0
//	Floor(0/0) = 0/0
func Floor(z, x *rational.Rational) *rational.Rational {
	r := x.Rat(nil)
	if r == nil {
		return z.Set(x).Canonicalize()
	}
	var q big.Int
	// Euclidean division by a positive denominator rounds towards -∞.
	return z.SetBigInt(q.Div(r.Num(), r.Denom()))
}

// Ceil sets z to the least integer value greater than or equal to x, and
// returns z. The result is in lowest terms.
//
// Special cases are:
//	Ceil(±1/0) = ±1/0
//	Ceil(0/0) = 0/0
func Ceil(z, x *rational.Rational) *rational.Rational {
	r := x.Rat(nil)
	if r == nil {
		return z.Set(x).Canonicalize()
	}
	var q, n big.Int
	q.Div(n.Neg(r.Num()), r.Denom())
	return z.SetBigInt(q.Neg(&q))
}
