// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"
)

// ByteReader is the minimal stream contract the primitive decoders need:
// single-byte reads for varints, plus bulk reads for fixed-size and
// length-prefixed fields.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

const maxVarintBytes = 10 // enough for a 64-bit value at 7 bits/byte

// ReadUint reads a little-endian base-128 variable-length unsigned integer:
// each byte holds 7 value bits in its low bits and a continuation flag in
// its MSB.
func ReadUint(r ByteReader) (uint64, error) {
	var result uint64
	for i := 0; i < maxVarintBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "wire.ReadUint")
		}
		result |= uint64(b&0x7f) << uint(7*i)
		if b&0x80 == 0 {
			return result, nil
		}
	}
	return 0, errors.New("wire.ReadUint: varint too long")
}

// WriteUint writes v as a little-endian base-128 variable-length unsigned
// integer and returns the number of bytes written.
func WriteUint(w io.Writer, v uint64) (int, error) {
	var buf [maxVarintBytes]byte
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if v == 0 {
			break
		}
	}
	if _, err := w.Write(buf[:n]); err != nil {
		return 0, errors.Wrap(err, "wire.WriteUint")
	}
	return n, nil
}

// ReadSint reads a signed variable-length integer: the same base-128
// encoding as ReadUint, but with the sign folded into the low bit of the
// decoded magnitude (odd means negative).
func ReadSint(r ByteReader) (int64, error) {
	u, err := ReadUint(r)
	if err != nil {
		return 0, errors.Wrap(err, "wire.ReadSint")
	}
	magnitude := int64(u >> 1)
	if u&1 != 0 {
		return -magnitude, nil
	}
	return magnitude, nil
}

// WriteSint writes v using the same encoding ReadSint understands.
func WriteSint(w io.Writer, v int64) (int, error) {
	var u uint64
	if v < 0 {
		u = uint64(-v)<<1 | 1
	} else {
		u = uint64(v) << 1
	}
	return WriteUint(w, u)
}

// ReadByte reads a single raw byte (used by the Property header, which is
// not a varint, and by the End record's padding length).
func ReadByte(r ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "wire.ReadByte")
	}
	return b, nil
}

// WriteByte writes a single raw byte.
func WriteByte(w io.Writer, b byte) (int, error) {
	if _, err := w.Write([]byte{b}); err != nil {
		return 0, errors.Wrap(err, "wire.WriteByte")
	}
	return 1, nil
}
