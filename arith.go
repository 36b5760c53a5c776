// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements arithmetic and comparison of Rationals.
//
// Finite operands are handed to big.Rat, so results are always in lowest
// terms. Operands with a zero denominator follow IEEE-754 rules for signed
// infinities; results that IEEE-754 would define as NaN panic with ErrNaN.

package rational

import "math/big"

func checkNaN(op string, x, y *Rational) {
	if x.IsNaN() || (y != nil && y.IsNaN()) {
		panic(ErrNaN{"rational: " + op + " of undefined value 0/0"})
	}
}

// Neg sets z to -x and returns z. The denominator of x is kept as is.
func (z *Rational) Neg(x *Rational) *Rational {
	z.Set(x)
	z.a.Neg(&z.a)
	return z
}

// Add sets z to the sum x+y and returns z.
//
// Add panics with ErrNaN if x and y are infinities with opposite signs, or if
// either is 0/0. The value of z is undefined in that case.
func (z *Rational) Add(x, y *Rational) *Rational {
	if x.zden || y.zden {
		checkNaN("addition", x, y)
		return z.addInf(x.Sign(), x.zden, y.Sign(), y.zden, "addition of infinities with opposite signs")
	}
	var r, s big.Rat
	return z.setRat(r.Add(x.rat(&r), y.rat(&s)))
}

// Sub sets z to the difference x-y and returns z.
//
// Sub panics with ErrNaN if x and y are infinities with equal signs, or if
// either is 0/0. The value of z is undefined in that case.
func (z *Rational) Sub(x, y *Rational) *Rational {
	if x.zden || y.zden {
		checkNaN("subtraction", x, y)
		return z.addInf(x.Sign(), x.zden, -y.Sign(), y.zden, "subtraction of infinities with equal signs")
	}
	var r, s big.Rat
	return z.setRat(r.Sub(x.rat(&r), y.rat(&s)))
}

// addInf handles x+y where at least one operand is infinite. ys is the sign
// of y after negation for subtractions.
func (z *Rational) addInf(xs int, xinf bool, ys int, yinf bool, msg string) *Rational {
	switch {
	case xinf && yinf:
		if xs != ys {
			panic(ErrNaN{msg})
		}
		return z.setInf(xs)
	case xinf:
		return z.setInf(xs)
	default:
		return z.setInf(ys)
	}
}

// Mul sets z to the product x×y and returns z.
//
// Mul panics with ErrNaN if one operand is zero and the other one an
// infinity, or if either is 0/0. The value of z is undefined in that case.
func (z *Rational) Mul(x, y *Rational) *Rational {
	if x.zden || y.zden {
		checkNaN("multiplication", x, y)
		xs, ys := x.Sign(), y.Sign()
		if xs == 0 || ys == 0 {
			panic(ErrNaN{"multiplication of zero with infinity or infinity with zero"})
		}
		return z.setInf(xs * ys)
	}
	var r, s big.Rat
	return z.setRat(r.Mul(x.rat(&r), y.rat(&s)))
}

// Quo sets z to the quotient x/y and returns z.
//
// Dividing a non-zero x by zero yields a zero-denominator value with the sign
// of x (1/0 or -1/0), and dividing a finite x by an infinity yields 0. Quo
// panics with ErrNaN for 0/0 and ∞/∞, or if either operand is 0/0. The value
// of z is undefined in that case.
func (z *Rational) Quo(x, y *Rational) *Rational {
	checkNaN("division", x, y)
	xs, ys := x.Sign(), y.Sign()
	switch {
	case x.zden && y.zden, xs == 0 && ys == 0:
		panic(ErrNaN{"division of zero by zero or infinity by infinity"})
	case x.zden:
		if ys == 0 {
			ys = 1
		}
		return z.setInf(xs * ys)
	case y.zden:
		return z.SetInt64(0)
	case ys == 0:
		return z.setInf(xs)
	}
	var r, s big.Rat
	return z.setRat(r.Quo(x.rat(&r), y.rat(&s)))
}

// infRank orders infinities around the finite values.
func (x *Rational) infRank() int {
	if x.zden {
		return x.a.Sign()
	}
	return 0
}

// Cmp compares the exact values of x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Unreduced values compare by value, so 4/8 equals 1/2. -1/0 and 1/0 order
// below and above every finite value. Cmp panics with ErrNaN if either x or y
// is 0/0.
func (x *Rational) Cmp(y *Rational) int {
	checkNaN("comparison", x, y)
	if x.zden || y.zden {
		xr, yr := x.infRank(), y.infRank()
		switch {
		case xr < yr:
			return -1
		case xr > yr:
			return +1
		}
		return 0
	}
	var r, s big.Rat
	return x.rat(&r).Cmp(y.rat(&s))
}

// Equal reports whether x and y have the same exact value. It returns false if
// either is 0/0.
func (x *Rational) Equal(y *Rational) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.Cmp(y) == 0
}

// CmpFloat64 is shorthand for x.Cmp(NewFromFloat64(f)). It panics if f is not
// finite.
func (x *Rational) CmpFloat64(f float64) int {
	return x.Cmp(NewFromFloat64(f))
}

// CmpFloat32 is shorthand for x.Cmp(NewFromFloat32(f)). It panics if f is not
// finite.
func (x *Rational) CmpFloat32(f float32) int {
	return x.Cmp(NewFromFloat32(f))
}

// CmpInt64 is shorthand for x.Cmp(NewFromInt64(i)).
func (x *Rational) CmpInt64(i int64) int {
	return x.Cmp(NewFromInt64(i))
}

// CmpRat is shorthand for x.Cmp(NewFromRat(r)).
func (x *Rational) CmpRat(r *big.Rat) int {
	return x.Cmp(NewFromRat(r))
}

// CmpString compares x to the literal s. The error is a *ParseError if s is
// malformed.
func (x *Rational) CmpString(s string) (int, error) {
	y, err := NewFromString(s)
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

// EqualFloat64 is shorthand for x.Equal(NewFromFloat64(f)): the comparison is
// exact, so 1/3 is not equal to 1.0/3. It panics if f is not finite.
func (x *Rational) EqualFloat64(f float64) bool {
	return x.Equal(NewFromFloat64(f))
}

// EqualFloat32 is shorthand for x.Equal(NewFromFloat32(f)). It panics if f is
// not finite.
func (x *Rational) EqualFloat32(f float32) bool {
	return x.Equal(NewFromFloat32(f))
}

// EqualInt64 is shorthand for x.Equal(NewFromInt64(i)).
func (x *Rational) EqualInt64(i int64) bool {
	return x.Equal(NewFromInt64(i))
}

// EqualRat is shorthand for x.Equal(NewFromRat(r)).
func (x *Rational) EqualRat(r *big.Rat) bool {
	return x.Equal(NewFromRat(r))
}

// EqualString reports whether x equals the literal s. The literal may have a
// zero denominator. The error is a *ParseError if s is malformed.
func (x *Rational) EqualString(s string) (bool, error) {
	y, err := NewFromString(s)
	if err != nil {
		return false, err
	}
	return x.Equal(y), nil
}
