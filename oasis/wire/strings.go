// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"
)

// ReadBstring reads a length-prefixed (via ReadUint) byte string with no
// character-set restriction.
func ReadBstring(r ByteReader) ([]byte, error) {
	n, err := ReadUint(r)
	if err != nil {
		return nil, errors.Wrap(err, "wire.ReadBstring: length")
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrap(err, "wire.ReadBstring: body")
	}
	return buf, nil
}

// WriteBstring writes a length-prefixed byte string.
func WriteBstring(w io.Writer, b []byte) (int, error) {
	n, err := WriteUint(w, uint64(len(b)))
	if err != nil {
		return 0, err
	}
	written, err := w.Write(b)
	if err != nil {
		return 0, errors.Wrap(err, "wire.WriteBstring: body")
	}
	return n + written, nil
}

// NString is a length-prefixed name string: printable ASCII excluding
// whitespace and the control range.
type NString string

func isNStringByte(b byte) bool {
	return b > 0x20 && b < 0x7f
}

func isAStringByte(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

// ReadNString reads and validates an NString.
func ReadNString(r ByteReader) (NString, error) {
	raw, err := ReadBstring(r)
	if err != nil {
		return "", errors.Wrap(err, "wire.ReadNString")
	}
	for _, b := range raw {
		if !isNStringByte(b) {
			return "", errors.Errorf("wire.ReadNString: invalid byte %#x in name string", b)
		}
	}
	return NString(raw), nil
}

// Write encodes the NString, validating its character set first.
func (s NString) Write(w io.Writer) (int, error) {
	for _, b := range []byte(s) {
		if !isNStringByte(b) {
			return 0, errors.Errorf("wire.NString.Write: invalid byte %#x in name string", b)
		}
	}
	return WriteBstring(w, []byte(s))
}

// AString is a length-prefixed printable-ASCII string (space included).
type AString string

// ReadAString reads and validates an AString.
func ReadAString(r ByteReader) (AString, error) {
	raw, err := ReadBstring(r)
	if err != nil {
		return "", errors.Wrap(err, "wire.ReadAString")
	}
	for _, b := range raw {
		if !isAStringByte(b) {
			return "", errors.Errorf("wire.ReadAString: invalid byte %#x in printable string", b)
		}
	}
	return AString(raw), nil
}

// Write encodes the AString, validating its character set first.
func (s AString) Write(w io.Writer) (int, error) {
	for _, b := range []byte(s) {
		if !isAStringByte(b) {
			return 0, errors.Errorf("wire.AString.Write: invalid byte %#x in printable string", b)
		}
	}
	return WriteBstring(w, []byte(s))
}
