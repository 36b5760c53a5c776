// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rational implements exact rational arithmetic on top of math/big.

A Rational is a fraction a/b with arbitrary-precision numerator and
denominator. All arithmetic is delegated to big.Rat, so results of arithmetic
are always exact and in lowest terms. What Rational adds over big.Rat is a
faithful literal form: a fraction parsed from "4/8" keeps its numerator and
denominator until Canonicalize is called, and a zero denominator, as in "1/0",
is accepted as a degenerate value instead of being rejected.

The zero value for a Rational corresponds to 0/1. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	x := new(Rational) // x is a *Rational of value 0/1

Alternatively, new Rational values can be allocated and initialized with one
of the functions:

	func NewFromFloat64(f float64) *Rational
	func NewFromFloat32(f float32) *Rational
	func NewFromInt64(x int64) *Rational
	func NewFromRat(x *big.Rat) *Rational
	func NewFromString(s string) (*Rational, error)
	func NewFromParts(num, den string) (*Rational, error)

Floating-point values are converted exactly: NewFromFloat64(0.1) is
3602879701896397/36028797018963968, not 1/10. Non-finite floating-point values
are a programming error and cause a panic.

Setters, numeric operations and predicates are represented as methods of the
form:

	func (z *Rational) SetV(v V) *Rational           // z = v
	func (z *Rational) Unary(x *Rational) *Rational     // z = unary x
	func (z *Rational) Binary(x, y *Rational) *Rational // z = x binary y
	func (x *Rational) Pred() P                         // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z
in that case); if it is one of the operands x or y it may be safely
overwritten. Operands are never modified, so

	c := new(Rational).Add(a, b)

yields a fresh value and leaves a and b untouched.

Numeric setters (SetFloat64, SetInt64, SetRat, SetDecimal, ...) store values
in lowest terms. SetFrac, SetString and Parse store the given pair as is. Set
copies the exact pair of its argument.

# Degenerate denominators

A Rational with a zero denominator prints as "N/0". In arithmetic and
comparisons, N/0 with N > 0 behaves as +∞ and with N < 0 as -∞; dividing a
non-zero value by zero yields such an infinity. The value 0/0 is undefined:
operations that IEEE-754 would turn into a NaN, and any arithmetic or ordering
involving 0/0, panic with an ErrNaN. The context sub-package turns these
panics into errors.

# Numerator and denominator

Num and Denom return the stored parts as an Integer, which converts to an
int64 (with an ErrOverflow error if it does not fit) or to an exact base 10
string.

# Concurrency

Distinct Rationals may be used concurrently. A Rational that is being written
must not be read or written by another goroutine at the same time; this is
the same contract as for the math/big types.
*/
package rational
