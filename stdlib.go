// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file holds the error types and scanning helpers shared by the package,
// in the manner of math/big.

package rational

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"unicode/utf8"
)

var intOne = big.NewInt(1)

// Errors reported by this package. They are wrapped by the returned error
// values and can be tested with errors.Is.
var (
	// ErrSyntax reports a malformed rational literal.
	ErrSyntax = errors.New("invalid rational syntax")
	// ErrOverflow reports an integer that does not fit the requested
	// fixed-width type.
	ErrOverflow = errors.New("value out of range")
)

// scan errors
var (
	errNoDigits   = errors.New("number has no digits")
	errTrailing   = errors.New("trailing characters")
	errEmptyInput = errors.New("empty literal")
)

// An ErrNaN panic is raised by a Rational operation whose result is
// undefined: 0/0, ∞-∞, 0×∞, ∞/∞, or any operation on the undefined value
// 0/0. An ErrNaN implements the error interface.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// A ParseError is returned when a string is not a valid rational literal. The
// Rational being parsed is left undefined.
type ParseError struct {
	Literal string // the offending literal, as given
	Part    string // the portion of Literal that could not be parsed
	Err     error
}

func (e *ParseError) Error() string {
	if e.Part == "" || e.Part == e.Literal {
		return fmt.Sprintf("rational: invalid literal %q: %v", e.Literal, e.Err)
	}
	return fmt.Sprintf("rational: invalid literal %q: %v in %q", e.Literal, e.Err, e.Part)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrSyntax for any parse failure.
func (e *ParseError) Is(target error) bool { return target == ErrSyntax }

// byteReader is a local wrapper around fmt.ScanState;
// it implements the ByteReader interface.
type byteReader struct {
	fmt.ScanState
}

// ReadByte returns utf8.RuneSelf for a multi-byte rune. It is never part of a
// literal, so scanning stops there and UnreadByte puts the whole rune back.
func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if err != nil {
		return 0, err
	}
	if size != 1 || ch >= utf8.RuneSelf {
		return utf8.RuneSelf, nil
	}
	return byte(ch), nil
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

// scanSign consumes an optional leading '-'. A '+' is not part of the
// literal grammar and is left for the digit scanner to reject.
func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	if ch == '-' {
		return true, nil
	}
	_ = r.UnreadByte()
	return false, nil
}

// scanInt scans an integer of the form ["-"] digit+ into z. It returns the
// accepted text so that errors can name it.
func scanInt(z *big.Int, r io.ByteScanner) (text string, err error) {
	neg, err := scanSign(r)
	if err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return "", err
	}
	var digits []byte
	if neg {
		digits = append(digits, '-')
	}
	ch, err := r.ReadByte()
	for err == nil {
		if ch < '0' || '9' < ch {
			_ = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		digits = append(digits, ch)
		ch, err = r.ReadByte()
	}
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return string(digits), err
	}
	if len(digits) == 0 || neg && len(digits) == 1 {
		return string(digits), errNoDigits
	}
	if _, ok := z.SetString(string(digits), 10); !ok {
		// unreachable: digits only holds an optional '-' and decimal digits
		return string(digits), errNoDigits
	}
	return string(digits), nil
}
