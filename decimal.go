// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var bigTen = big.NewInt(10)

// NewFromDecimal returns a new Rational set to the exact value of d.
func NewFromDecimal(d decimal.Decimal) *Rational {
	return new(Rational).SetDecimal(d)
}

// SetDecimal sets z to the exact value of d, in lowest terms, and returns z.
func (z *Rational) SetDecimal(d decimal.Decimal) *Rational {
	exp := d.Exponent()
	p := new(big.Int).Exp(bigTen, big.NewInt(absExp(exp)), nil)
	var a, b big.Int
	a.Set(d.Coefficient())
	b.SetInt64(1)
	if exp >= 0 {
		a.Mul(&a, p)
	} else {
		b.Set(p)
	}
	return z.SetFrac(&a, &b).Canonicalize()
}

// Decimal returns x rounded to places digits after the decimal point, with
// halves rounded away from zero. It panics with ErrNaN if x has a zero
// denominator.
func (x *Rational) Decimal(places int32) decimal.Decimal {
	if x.zden {
		panic(ErrNaN{"rational: decimal conversion of " + x.String()})
	}
	num := decimal.NewFromBigInt(&x.a, 0)
	den := decimal.NewFromBigInt(x.denom(), 0)
	return num.DivRound(den, places)
}

// absExp returns |e|, widened so that math.MinInt32 does not overflow.
func absExp(e int32) int64 {
	x := int64(e)
	if x < 0 {
		return -x
	}
	return x
}
