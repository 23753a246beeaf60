// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"
)

// BoolByte is an eight-bit packed flag byte, indexed MSB-first: Bits[0] is
// the most significant bit of the wire byte.
type BoolByte [8]bool

// ReadBoolByte reads a single header byte and unpacks it MSB-first.
func ReadBoolByte(r ByteReader) (BoolByte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return BoolByte{}, errors.Wrap(err, "wire.ReadBoolByte")
	}
	var bits BoolByte
	for i := 0; i < 8; i++ {
		bits[i] = (b>>(7-uint(i)))&1 != 0
	}
	return bits, nil
}

// WriteBoolByte packs bits MSB-first into a single byte and writes it.
func WriteBoolByte(w io.Writer, bits BoolByte) (int, error) {
	var b byte
	for i := 0; i < 8; i++ {
		if bits[i] {
			b |= 1 << (7 - uint(i))
		}
	}
	if _, err := w.Write([]byte{b}); err != nil {
		return 0, errors.Wrap(err, "wire.WriteBoolByte")
	}
	return 1, nil
}
