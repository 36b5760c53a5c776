// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import (
	"fmt"
	"math"
	"math/big"
)

// A Rational represents a quotient a/b of arbitrary precision. The zero value
// for a Rational represents the value 0/1.
//
// Unlike big.Rat, a Rational keeps the numerator and denominator exactly as
// they were set by SetFrac or a literal: "4/8" stays 4/8 until Canonicalize
// is called, and a zero denominator is a valid (degenerate) value. Values
// produced by the numeric setters and by arithmetic are always canonical.
//
// Operations always take pointer arguments (*Rational) rather than Rational
// values, and each unique Rational value requires its own unique *Rational
// pointer. To "copy" a Rational value, an existing (or newly allocated)
// Rational must be set to a new value using the Rational.Set method; shallow
// copies of Rationals are not supported and may lead to errors.
type Rational struct {
	a    big.Int // numerator
	b    big.Int // denominator; a zero b denotes 1 unless zden is set
	zden bool    // b is a stored zero denominator
}

// NewFromFloat64 returns a new Rational set to the exact value of f. It panics
// if f is not finite.
func NewFromFloat64(f float64) *Rational {
	return new(Rational).SetFloat64(f)
}

// NewFromFloat32 returns a new Rational set to the exact value of f widened to
// a float64. It panics if f is not finite.
func NewFromFloat32(f float32) *Rational {
	return new(Rational).SetFloat32(f)
}

// NewFromInt64 returns a new Rational set to x/1.
func NewFromInt64(x int64) *Rational {
	return new(Rational).SetInt64(x)
}

// NewFromInt returns a new Rational set to x/1.
func NewFromInt(x int) *Rational {
	return new(Rational).SetInt64(int64(x))
}

// NewFromRat returns a new Rational set to the value of x.
func NewFromRat(x *big.Rat) *Rational {
	return new(Rational).SetRat(x)
}

// NewFromString returns a new Rational set to the literal s, which must be of
// the form accepted by Parse. The numerator and denominator are kept as
// written. On failure the returned Rational is nil and err is a *ParseError.
func NewFromString(s string) (*Rational, error) {
	return new(Rational).Parse(s)
}

// NewFromParts is shorthand for NewFromString(num + "/" + den).
func NewFromParts(num, den string) (*Rational, error) {
	return NewFromString(num + "/" + den)
}

// denom returns the denominator of x. The result must not be modified.
func (x *Rational) denom() *big.Int {
	if !x.zden && len(x.b.Bits()) == 0 {
		return intOne
	}
	return &x.b
}

// rat sets z to the canonical value of x and returns z. x must have a non-zero
// denominator.
func (x *Rational) rat(z *big.Rat) *big.Rat {
	return z.SetFrac(&x.a, x.denom())
}

func (z *Rational) setRat(x *big.Rat) *Rational {
	z.a.Set(x.Num())
	z.b.Set(x.Denom())
	z.zden = false
	return z
}

func (z *Rational) setInf(sign int) *Rational {
	z.a.SetInt64(int64(sign))
	z.b.SetInt64(0)
	z.zden = true
	return z
}

// Set sets z to an exact copy of x, including an unreduced numerator and
// denominator, and returns z. z and x do not share storage afterwards.
func (z *Rational) Set(x *Rational) *Rational {
	if z != x {
		z.a.Set(&x.a)
		z.b.Set(&x.b)
		z.zden = x.zden
	}
	return z
}

// Clone returns a new Rational set to x.
func (x *Rational) Clone() *Rational {
	return new(Rational).Set(x)
}

// SetFloat64 sets z to the exact value of f, in lowest terms, and returns z.
// It panics if f is ±Inf or NaN.
func (z *Rational) SetFloat64(f float64) *Rational {
	return z.setFloat("SetFloat64", f)
}

// SetFloat32 sets z to the exact value of f, in lowest terms, and returns z. f
// is widened to a float64 first, so that z.SetFloat32(f) and
// z.SetFloat64(float64(f)) yield the same fraction. It panics if f is ±Inf or
// NaN.
func (z *Rational) SetFloat32(f float32) *Rational {
	return z.setFloat("SetFloat32", float64(f))
}

func (z *Rational) setFloat(op string, f float64) *Rational {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		// a precondition, not an ErrNaN: contexts must not swallow it
		panic(fmt.Sprintf("rational: %s(%g): value is not finite", op, f))
	}
	var r big.Rat
	return z.setRat(r.SetFloat64(f))
}

// SetInt64 sets z to x/1 and returns z.
func (z *Rational) SetInt64(x int64) *Rational {
	z.a.SetInt64(x)
	z.b.SetInt64(1)
	z.zden = false
	return z
}

// SetInt sets z to x/1 and returns z.
func (z *Rational) SetInt(x int) *Rational {
	return z.SetInt64(int64(x))
}

// SetBigInt sets z to x/1 and returns z.
func (z *Rational) SetBigInt(x *big.Int) *Rational {
	z.a.Set(x)
	z.b.SetInt64(1)
	z.zden = false
	return z
}

// SetRat sets z to the value of x and returns z.
func (z *Rational) SetRat(x *big.Rat) *Rational {
	return z.setRat(x)
}

// SetFrac sets z to a/b and returns z. The pair is stored as given: it is not
// reduced, b may be negative, and b may be zero.
func (z *Rational) SetFrac(a, b *big.Int) *Rational {
	if b == &z.a {
		b = new(big.Int).Set(b)
	}
	z.a.Set(a)
	z.b.Set(b)
	z.zden = b.Sign() == 0
	return z
}

// SetFrac64 is like SetFrac for int64 arguments.
func (z *Rational) SetFrac64(a, b int64) *Rational {
	z.a.SetInt64(a)
	z.b.SetInt64(b)
	z.zden = b == 0
	return z
}

// Canonicalize reduces z to lowest terms with a positive denominator and
// returns z. A zero denominator is kept, and the numerator is reduced to its
// sign: N/0 becomes 1/0, -1/0 or 0/0.
func (z *Rational) Canonicalize() *Rational {
	if z.zden {
		z.a.SetInt64(int64(z.a.Sign()))
		return z
	}
	var r big.Rat
	return z.setRat(z.rat(&r))
}

// IsCanonical reports whether x is in the form Canonicalize produces.
func (x *Rational) IsCanonical() bool {
	if x.zden {
		return x.a.IsInt64() && -1 <= x.a.Int64() && x.a.Int64() <= 1
	}
	b := x.denom()
	if b.Sign() < 0 {
		return false
	}
	if x.a.Sign() == 0 {
		return b.Cmp(intOne) == 0
	}
	var g, t big.Int
	return g.GCD(nil, nil, t.Abs(&x.a), b).Cmp(intOne) == 0
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
// The sign of an unreduced x is sign(a)·sign(b). For a zero denominator, Sign
// returns the sign of the numerator, so that 0/0 reports 0.
func (x *Rational) Sign() int {
	if x.zden {
		return x.a.Sign()
	}
	return x.a.Sign() * x.denom().Sign()
}

// IsInf reports whether x has a zero denominator and a non-zero numerator.
// Such values behave as signed infinities in arithmetic and comparisons.
func (x *Rational) IsInf() bool {
	return x.zden && x.a.Sign() != 0
}

// IsNaN reports whether x is 0/0. Arithmetic and ordering on 0/0 panic with
// ErrNaN.
func (x *Rational) IsNaN() bool {
	return x.zden && x.a.Sign() == 0
}

// IsInt reports whether x has a non-zero denominator that divides its
// numerator.
func (x *Rational) IsInt() bool {
	if x.zden {
		return false
	}
	b := x.denom()
	if b.CmpAbs(intOne) == 0 {
		return true
	}
	var r big.Int
	return r.Rem(&x.a, b).Sign() == 0
}

// Rat sets z to the canonical value of x and returns z. If z is nil, a new
// big.Rat is allocated. Rat returns nil if x has a zero denominator.
func (x *Rational) Rat(z *big.Rat) *big.Rat {
	if x.zden {
		return nil
	}
	if z == nil {
		z = new(big.Rat)
	}
	return x.rat(z)
}

// Float64 returns the float64 value nearest to x and a bool indicating whether
// f represents x exactly. N/0 converts to ±Inf (exactly), 0/0 to NaN.
func (x *Rational) Float64() (f float64, exact bool) {
	if x.zden {
		if s := x.a.Sign(); s != 0 {
			return math.Inf(s), true
		}
		return math.NaN(), false
	}
	var r big.Rat
	return x.rat(&r).Float64()
}

// Float32 returns the float32 value nearest to x and a bool indicating whether
// f represents x exactly. N/0 converts to ±Inf (exactly), 0/0 to NaN.
func (x *Rational) Float32() (f float32, exact bool) {
	if x.zden {
		if s := x.a.Sign(); s != 0 {
			return float32(math.Inf(s)), true
		}
		return float32(math.NaN()), false
	}
	var r big.Rat
	return x.rat(&r).Float32()
}
