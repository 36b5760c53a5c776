// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Rational-to-string conversion functions.

package rational

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

var ratZero Rational

var (
	_ fmt.Stringer  = &ratZero // *Rational must implement fmt.Stringer
	_ fmt.Scanner   = &ratZero // *Rational must implement fmt.Scanner
	_ fmt.Formatter = &ratZero // *Rational must implement fmt.Formatter
)

// String returns x in the form "a/b" with the numerator and denominator as
// stored, in base 10. The denominator is always present, even if it is 1 or 0.
func (x *Rational) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(nil))
}

// Append appends the string form of x, as generated by x.String, to buf and
// returns the extended buffer.
func (x *Rational) Append(buf []byte) []byte {
	buf = x.a.Append(buf, 10)
	buf = append(buf, '/')
	return x.denom().Append(buf, 10)
}

// FloatString returns x in decimal form with prec digits of precision after
// the radix point. The last digit is rounded to nearest, with halves rounded
// away from zero. Values with a zero denominator print as "+Inf", "-Inf" or
// "NaN".
func (x *Rational) FloatString(prec int) string {
	if x.zden {
		switch x.a.Sign() {
		case 1:
			return "+Inf"
		case -1:
			return "-Inf"
		}
		return "NaN"
	}
	var r big.Rat
	return x.rat(&r).FloatString(prec)
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be a literal of the same format as accepted by Parse. If the
// operation failed, the value of z is undefined but the returned value is nil.
func (z *Rational) SetString(s string) (*Rational, bool) {
	if r, err := z.Parse(s); err == nil {
		return r, true
	}
	return nil, false
}

// Parse sets z to the value of the literal s and returns z. The literal must
// be of the form:
//
//	rational = integer [ "/" integer ] .
//	integer  = [ "-" ] digit { digit } .
//	digit    = "0" ... "9" .
//
// The entire string must be consumed. The numerator and denominator are kept
// as written, without reduction, and a zero denominator is accepted: "4/8"
// and "1/0" are valid and print back unchanged. A literal without a
// denominator has denominator 1.
//
// If s is malformed, the returned *Rational is nil, the value of z is
// undefined, and err is a *ParseError.
func (z *Rational) Parse(s string) (*Rational, error) {
	if s == "" {
		return nil, &ParseError{Literal: s, Err: errEmptyInput}
	}
	r := strings.NewReader(s)
	if _, err := z.scan(r); err != nil {
		return nil, &ParseError{Literal: s, Part: s[len(s)-r.Len():], Err: err}
	}
	if r.Len() > 0 {
		return nil, &ParseError{Literal: s, Part: s[len(s)-r.Len():], Err: errTrailing}
	}
	return z, nil
}

// scan reads the longest prefix of r that forms a rational literal into z. It
// does not expect EOF at the end. text is the accepted input.
func (z *Rational) scan(r io.ByteScanner) (text string, err error) {
	var a, b big.Int
	num, err := scanInt(&a, r)
	if err != nil {
		return num, fmt.Errorf("numerator: %w", err)
	}
	ch, err := r.ReadByte()
	if err == io.EOF || err == nil && ch != '/' {
		if err == nil {
			_ = r.UnreadByte()
		}
		z.SetBigInt(&a)
		return num, nil
	}
	if err != nil {
		return num, err
	}
	den, err := scanInt(&b, r)
	text = num + "/" + den
	if err != nil {
		return text, fmt.Errorf("denominator: %w", err)
	}
	z.SetFrac(&a, &b)
	return text, nil
}

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned literal. Leading spaces are skipped; scanning stops at the first
// byte that cannot continue the literal. The verb is ignored. If the input
// holds nothing but spaces, Scan returns io.EOF and z is unchanged.
func (z *Rational) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	if _, _, err := s.ReadRune(); err != nil {
		return err
	}
	_ = s.UnreadRune()
	text, err := z.scan(byteReader{s})
	if err != nil {
		return &ParseError{Literal: text, Err: err}
	}
	return nil
}

// Format implements fmt.Formatter. It accepts the verbs 'v' and 's' for the
// "a/b" form, 'f' and 'F' for the decimal form of FloatString (the default
// precision is 6), and 'e', 'E', 'g' and 'G', which format the nearest
// float64. Width and the '-' flag are honored for all verbs.
func (x *Rational) Format(s fmt.State, verb rune) {
	var str string
	switch {
	case x == nil:
		str = "<nil>"
	case verb == 'v' || verb == 's':
		str = x.String()
	case verb == 'f' || verb == 'F':
		prec, ok := s.Precision()
		if !ok {
			prec = 6
		}
		str = x.FloatString(prec)
	case verb == 'e' || verb == 'E' || verb == 'g' || verb == 'G':
		prec, ok := s.Precision()
		if !ok {
			prec = -1
		}
		f, _ := x.Float64()
		str = strconv.FormatFloat(f, byte(verb), prec, 64)
	default:
		fmt.Fprintf(s, "%%!%c(*rational.Rational=%s)", verb, x.String())
		return
	}
	if w, ok := s.Width(); ok && len(str) < w {
		pad := strings.Repeat(" ", w-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	_, _ = io.WriteString(s, str)
}
