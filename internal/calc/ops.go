// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"github.com/db47h/rational"
	"github.com/db47h/rational/context"
)

type binaryOp func(ctx *context.Context, x, y *rational.Rational) (*rational.Rational, error)

type unaryOp func(ctx *context.Context, z, x *rational.Rational) *rational.Rational

func arith(op func(ctx *context.Context, z, x, y *rational.Rational) *rational.Rational) binaryOp {
	return func(ctx *context.Context, x, y *rational.Rational) (*rational.Rational, error) {
		z := op(ctx, ctx.New(), x, y)
		return z, ctx.Err()
	}
}

func cmp(test func(int) bool) binaryOp {
	return func(ctx *context.Context, x, y *rational.Rational) (*rational.Rational, error) {
		r, err := ctx.Cmp(x, y)
		if err != nil {
			_ = ctx.Err()
			return nil, err
		}
		if test == nil {
			return ctx.NewInt64(int64(r)), nil
		}
		if test(r) {
			return ctx.NewInt64(1), nil
		}
		return ctx.NewInt64(0), nil
	}
}

func pow(ctx *context.Context, x, y *rational.Rational) (*rational.Rational, error) {
	if !y.IsInt() {
		return nil, ErrNotInteger
	}
	n, err := ctx.Floor(ctx.New(), y).NumInt64()
	if err != nil {
		return nil, err
	}
	z := ctx.Pow(ctx.New(), x, n)
	return z, ctx.Err()
}

var binary = map[string]binaryOp{
	"+":   arith((*context.Context).Add),
	"-":   arith((*context.Context).Sub),
	"*":   arith((*context.Context).Mul),
	"/":   arith((*context.Context).Quo),
	"pow": pow,
	"cmp": cmp(nil),
	"=":   cmp(func(r int) bool { return r == 0 }),
	"<":   cmp(func(r int) bool { return r < 0 }),
	">":   cmp(func(r int) bool { return r > 0 }),
}

var unary = map[string]unaryOp{
	"neg":   (*context.Context).Neg,
	"abs":   (*context.Context).Abs,
	"inv":   (*context.Context).Inv,
	"floor": (*context.Context).Floor,
	"ceil":  (*context.Context).Ceil,
	"canon": func(_ *context.Context, z, x *rational.Rational) *rational.Rational {
		return z.Set(x).Canonicalize()
	},
}

var commands map[string]func(c *Calc) error

func init() {
	commands = map[string]func(c *Calc) error{
		"p": func(c *Calc) error {
			x, err := c.Top()
			if err != nil {
				return err
			}
			return c.printf("%v\n", x)
		},
		"f": func(c *Calc) error {
			x, err := c.Top()
			if err != nil {
				return err
			}
			return c.printf("%s\n", x.FloatString(c.prec))
		},
		"num": func(c *Calc) error {
			x, err := c.Top()
			if err != nil {
				return err
			}
			return c.printf("%s\n", x.NumString())
		},
		"den": func(c *Calc) error {
			x, err := c.Top()
			if err != nil {
				return err
			}
			return c.printf("%s\n", x.DenomString())
		},
		"d": func(c *Calc) error {
			x, err := c.Top()
			if err != nil {
				return err
			}
			c.push(x)
			return nil
		},
		"x": func(c *Calc) error {
			y, x, err := c.pop2()
			if err != nil {
				return err
			}
			c.push(y)
			c.push(x)
			return nil
		},
		"c": func(c *Calc) error {
			c.stack = nil
			return nil
		},
		"stack": func(c *Calc) error {
			for _, x := range c.stack {
				if err := c.printf("%v\n", x); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
