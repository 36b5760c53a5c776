// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Rationals.

package rational

import (
	"encoding/binary"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const ratGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The numerator and
// denominator are encoded as stored.
func (x *Rational) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	num, err := x.a.GobEncode()
	if err != nil {
		return nil, err
	}
	den, err := x.denom().GobEncode()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 1+4, 1+4+len(num)+len(den)) // version + numerator length
	buf[0] = ratGobVersion
	binary.BigEndian.PutUint32(buf[1:], uint32(len(num)))
	buf = append(buf, num...)
	return append(buf, den...), nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Rational) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Rational{}
		return nil
	}
	if buf[0] != ratGobVersion {
		return fmt.Errorf("Rational.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 5 {
		return fmt.Errorf("Rational.GobDecode: short buffer (%d bytes)", len(buf))
	}
	n := binary.BigEndian.Uint32(buf[1:])
	if uint64(n) > uint64(len(buf)-5) {
		return fmt.Errorf("Rational.GobDecode: numerator length %d exceeds buffer", n)
	}
	i := 5 + int(n)
	if err := z.a.GobDecode(buf[5:i]); err != nil {
		return err
	}
	if err := z.b.GobDecode(buf[i:]); err != nil {
		return err
	}
	z.zden = z.b.Sign() == 0
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The result is
// the literal form produced by String.
func (x *Rational) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// the literals accepted by Parse.
func (z *Rational) UnmarshalText(text []byte) error {
	if _, err := z.Parse(string(text)); err != nil {
		return fmt.Errorf("rational: cannot unmarshal %q into a *rational.Rational: %w", text, err)
	}
	return nil
}

var (
	_ msgpack.CustomEncoder = &ratZero
	_ msgpack.CustomDecoder = &ratZero
)

// EncodeMsgpack implements msgpack.CustomEncoder. x is encoded as an array of
// two base 10 strings, numerator first.
func (x *Rational) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeString(x.a.String()); err != nil {
		return err
	}
	return enc.EncodeString(x.denom().String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (z *Rational) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("rational: msgpack array has %d elements, want 2", n)
	}
	num, err := dec.DecodeString()
	if err != nil {
		return err
	}
	den, err := dec.DecodeString()
	if err != nil {
		return err
	}
	if _, err := z.Parse(num + "/" + den); err != nil {
		return fmt.Errorf("rational: cannot decode msgpack value: %w", err)
	}
	return nil
}
