// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import (
	"fmt"
	"io"
	"math/big"
)

// An Integer holds a copy of the numerator or denominator of a Rational.
// Integers are only obtained from (*Rational).Num and (*Rational).Denom.
type Integer struct {
	i big.Int
}

// Num returns the numerator of x as stored, which may be unreduced.
func (x *Rational) Num() *Integer {
	z := new(Integer)
	z.i.Set(&x.a)
	return z
}

// Denom returns the denominator of x as stored. It may be unreduced, negative,
// or zero.
func (x *Rational) Denom() *Integer {
	z := new(Integer)
	z.i.Set(x.denom())
	return z
}

// Int64 returns the value of x. If x does not fit in an int64, the error
// wraps ErrOverflow.
func (x *Integer) Int64() (int64, error) {
	if !x.i.IsInt64() {
		return 0, fmt.Errorf("rational: %s does not fit in an int64: %w", x.i.String(), ErrOverflow)
	}
	return x.i.Int64(), nil
}

// BigInt returns a new big.Int set to x.
func (x *Integer) BigInt() *big.Int {
	return new(big.Int).Set(&x.i)
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Integer) Sign() int {
	return x.i.Sign()
}

// String returns the base 10 representation of x.
func (x *Integer) String() string {
	return x.i.String()
}

// Fprint writes the base 10 representation of x to w.
func (x *Integer) Fprint(w io.Writer) (n int, err error) {
	return w.Write(x.i.Append(nil, 10))
}

// NumInt64 returns the numerator of x as an int64. The error wraps
// ErrOverflow if it does not fit.
func (x *Rational) NumInt64() (int64, error) {
	if !x.a.IsInt64() {
		return x.Num().Int64()
	}
	return x.a.Int64(), nil
}

// DenomInt64 returns the denominator of x as an int64. The error wraps
// ErrOverflow if it does not fit.
func (x *Rational) DenomInt64() (int64, error) {
	if b := x.denom(); b.IsInt64() {
		return b.Int64(), nil
	}
	return x.Denom().Int64()
}

// NumString returns the base 10 representation of the numerator of x.
func (x *Rational) NumString() string {
	return x.a.String()
}

// DenomString returns the base 10 representation of the denominator of x.
func (x *Rational) DenomString() string {
	return x.denom().String()
}

// FprintNum writes the numerator of x to w.
func (x *Rational) FprintNum(w io.Writer) (n int, err error) {
	return w.Write(x.a.Append(nil, 10))
}

// FprintDenom writes the denominator of x to w.
func (x *Rational) FprintDenom(w io.Writer) (n int, err error) {
	return w.Write(x.denom().Append(nil, 10))
}
