// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc implements the RPN evaluator of ratcalc.
//
// A line is a sequence of whitespace separated tokens. Literals (a, a/b, or a
// decimal number like 1.25 or -3e2) are pushed on the stack. Operators pop
// their operands and push their result; commands print or rearrange the stack.
// If a token fails, the stack is restored to its state before the line.
package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/db47h/rational"
	"github.com/db47h/rational/context"
	"github.com/db47h/rational/internal/logger"
	"github.com/shopspring/decimal"
)

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownToken   = errors.New("unknown token")
	ErrNotInteger     = errors.New("exponent is not an integer")
)

// A Calc is an RPN calculator. It is not safe for concurrent use.
type Calc struct {
	ctx   *context.Context
	out   io.Writer
	prec  int
	stack []*rational.Rational
}

// New returns a Calc printing to out. If canonical is true, every value
// pushed on the stack is reduced to lowest terms. prec is the number of digits
// after the decimal point printed by the f command.
func New(out io.Writer, canonical bool, prec int) *Calc {
	return &Calc{
		ctx:  context.New(canonical),
		out:  out,
		prec: prec,
	}
}

// Stack returns the values on the stack, bottom first.
func (c *Calc) Stack() []*rational.Rational {
	return c.stack
}

// Top returns the value on top of the stack.
func (c *Calc) Top() (*rational.Rational, error) {
	if len(c.stack) == 0 {
		return nil, ErrStackUnderflow
	}
	return c.stack[len(c.stack)-1], nil
}

// Eval evaluates a line of input.
func (c *Calc) Eval(line string) error {
	saved := append([]*rational.Rational(nil), c.stack...)
	for _, tok := range strings.Fields(line) {
		logger.Debugf("eval %q", tok)
		if err := c.token(tok); err != nil {
			c.stack = saved
			_ = c.ctx.Err()
			return fmt.Errorf("%s: %w", tok, err)
		}
	}
	return nil
}

func (c *Calc) token(tok string) error {
	if isLiteral(tok) {
		x, err := c.literal(tok)
		if err != nil {
			return err
		}
		c.push(x)
		return nil
	}
	if op, ok := binary[tok]; ok {
		y, x, err := c.pop2()
		if err != nil {
			return err
		}
		z, err := op(c.ctx, x, y)
		if err != nil {
			return err
		}
		logger.Verbosef("%s %s %s = %s", tok, x, y, z)
		c.push(z)
		return nil
	}
	if op, ok := unary[tok]; ok {
		x, err := c.pop()
		if err != nil {
			return err
		}
		z := op(c.ctx, c.ctx.New(), x)
		if err := c.ctx.Err(); err != nil {
			return err
		}
		logger.Verbosef("%s %s = %s", tok, x, z)
		c.push(z)
		return nil
	}
	if cmd, ok := commands[tok]; ok {
		return cmd(c)
	}
	return ErrUnknownToken
}

func isLiteral(tok string) bool {
	if strings.HasPrefix(tok, "-") {
		tok = tok[1:]
	}
	return tok != "" && ('0' <= tok[0] && tok[0] <= '9' || tok[0] == '.')
}

func (c *Calc) literal(tok string) (*rational.Rational, error) {
	if strings.ContainsAny(tok, ".eE") {
		d, err := decimal.NewFromString(tok)
		if err != nil {
			return nil, err
		}
		return rational.NewFromDecimal(d), nil
	}
	x := c.ctx.NewString(tok)
	return x, c.ctx.Err()
}

func (c *Calc) push(x *rational.Rational) {
	c.stack = append(c.stack, x)
}

func (c *Calc) pop() (*rational.Rational, error) {
	x, err := c.Top()
	if err != nil {
		return nil, err
	}
	c.stack = c.stack[:len(c.stack)-1]
	return x, nil
}

// pop2 pops the top of the stack into y, and the value below it into x.
func (c *Calc) pop2() (y, x *rational.Rational, err error) {
	if len(c.stack) < 2 {
		return nil, nil, ErrStackUnderflow
	}
	n := len(c.stack)
	y, x = c.stack[n-1], c.stack[n-2]
	c.stack = c.stack[:n-2]
	return y, x, nil
}

func (c *Calc) printf(format string, v ...interface{}) error {
	_, err := fmt.Fprintf(c.out, format, v...)
	return err
}
