// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-collecting contexts for Rationals.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *rational.Rational
//
// create a new rational.Rational set to the value of x, in lowest terms if c
// is canonical.
//
// Operators that set a receiver z to function of other rational arguments like:
//
//    func (c *Context) UnaryOp(z, x *rational.Rational) *rational.Rational
//    func (c *Context) BinaryOp(z, x, y *rational.Rational) *rational.Rational
//
// set z to the result of z.Op(args), canonicalized if c is canonical, and
// return z.
//
// A Context catches NaN errors: if an operation is undefined (0/0, ∞-∞, 0×∞,
// ∞/∞ or any operation on 0/0), the operation will silently succeed with an
// undefined result. Further operations with the context will be no-ops (they
// simply return the receiver z) until (*Context).Err is called to check for
// errors.
//
// Parse errors from NewString are collected the same way. Panics that are not
// a rational.ErrNaN, like the one raised for a non-finite float64, are
// propagated.
package context

import (
	"math/big"

	"github.com/db47h/rational"
	ratmath "github.com/db47h/rational/math"
)

const handleNaNs = true

// A Context is a wrapper around Rationals that facilitates management of
// canonicalization and error handling.
//
// A Context is not safe for concurrent use.
type Context struct {
	canonical bool
	err       error
}

// New creates a new context. If canonical is true, every value produced by
// the context is reduced to lowest terms with a positive denominator.
func New(canonical bool) *Context {
	return new(Context).SetCanonical(canonical)
}

// Canonical reports whether c canonicalizes its results.
func (c *Context) Canonical() bool {
	return c.canonical
}

// SetCanonical sets c's canonicalization mode and returns c.
func (c *Context) SetCanonical(canonical bool) *Context {
	c.canonical = canonical
	return c
}

// New returns a new rational.Rational with value 0/1.
func (c *Context) New() *rational.Rational {
	return new(rational.Rational)
}

// NewInt64 returns a new *rational.Rational set to the value of x.
func (c *Context) NewInt64(x int64) *rational.Rational {
	return c.New().SetInt64(x)
}

// NewFloat64 returns a new *rational.Rational set to the exact value of x.
// It panics if x is not finite.
func (c *Context) NewFloat64(x float64) *rational.Rational {
	return c.New().SetFloat64(x)
}

// NewRat returns a new *rational.Rational set to the value of x.
func (c *Context) NewRat(x *big.Rat) *rational.Rational {
	return c.New().SetRat(x)
}

// NewString returns a new *rational.Rational set to the value of the literal
// s, as accepted by (*rational.Rational).Parse. If s is malformed, the parse
// error is recorded in c and the returned value is 0/1.
func (c *Context) NewString(s string) *rational.Rational {
	z := c.New()
	if _, err := z.Parse(s); err != nil {
		if c.err == nil {
			c.err = err
		}
		return z.SetInt64(0)
	}
	return c.apply(z)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// apply applies c's canonicalization mode to z and returns z.
func (c *Context) apply(z *rational.Rational) *rational.Rational {
	if c.canonical {
		z.Canonicalize()
	}
	return z
}

// catch records a rational.ErrNaN panic as c's error. Any other panic is
// propagated.
func (c *Context) catch() {
	if v := recover(); v != nil {
		nan, ok := v.(rational.ErrNaN)
		if !ok {
			panic(v)
		}
		c.err = nan
	}
}

// do runs op unless c is in an error state.
func (c *Context) do(op func()) {
	if handleNaNs {
		if c.err != nil {
			return
		}
		defer c.catch()
	}
	op()
}

// Set sets z to x and returns z.
func (c *Context) Set(z, x *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(z.Set(x)) })
	return z
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(z.Neg(x)) })
	return z
}

// Add sets z to the sum x+y and returns z.
func (c *Context) Add(z, x, y *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(z.Add(x, y)) })
	return z
}

// Sub sets z to the difference x-y and returns z.
func (c *Context) Sub(z, x, y *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(z.Sub(x, y)) })
	return z
}

// Mul sets z to the product x×y and returns z.
func (c *Context) Mul(z, x, y *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(z.Mul(x, y)) })
	return z
}

// Quo sets z to the quotient x/y and returns z.
func (c *Context) Quo(z, x, y *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(z.Quo(x, y)) })
	return z
}

// Abs sets z to |x| and returns z.
func (c *Context) Abs(z, x *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(ratmath.Abs(z, x)) })
	return z
}

// Inv sets z to 1/x and returns z.
func (c *Context) Inv(z, x *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(ratmath.Inv(z, x)) })
	return z
}

// Pow sets z to x**n and returns z.
func (c *Context) Pow(z, x *rational.Rational, n int64) *rational.Rational {
	c.do(func() { c.apply(ratmath.Pow(z, x, n)) })
	return z
}

// Floor sets z to the greatest integer value less than or equal to x, and
// returns z.
func (c *Context) Floor(z, x *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(ratmath.Floor(z, x)) })
	return z
}

// Ceil sets z to the least integer value greater than or equal to x, and
// returns z.
func (c *Context) Ceil(z, x *rational.Rational) *rational.Rational {
	c.do(func() { c.apply(ratmath.Ceil(z, x)) })
	return z
}

// Cmp compares x and y like x.Cmp(y). If either is 0/0, the ErrNaN is
// recorded in c and returned. If c is already in an error state, Cmp returns
// 0 and that error.
func (c *Context) Cmp(x, y *rational.Rational) (r int, err error) {
	c.do(func() { r = x.Cmp(y) })
	return r, c.err
}
