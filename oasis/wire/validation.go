// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ValidationScheme selects how (or whether) a file's trailing Validation
// record lets a reader confirm the bytes weren't corrupted in transit.
type ValidationScheme uint8

const (
	ValidationNone ValidationScheme = iota
	ValidationCRC32
	ValidationChecksum32
)

// Validation is the file's final record: a scheme tag plus, for the two
// non-trivial schemes, a 32-bit signature computed over everything that
// precedes it.
type Validation struct {
	Scheme    ValidationScheme
	Signature uint32
}

// ReadValidation reads the fixed-layout Validation record.
func ReadValidation(r ByteReader) (Validation, error) {
	scheme, err := ReadUint(r)
	if err != nil {
		return Validation{}, errors.Wrap(err, "wire.ReadValidation: scheme")
	}
	v := Validation{Scheme: ValidationScheme(scheme)}
	switch v.Scheme {
	case ValidationNone:
		return v, nil
	case ValidationCRC32, ValidationChecksum32:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Validation{}, errors.Wrap(err, "wire.ReadValidation: signature")
		}
		v.Signature = binary.LittleEndian.Uint32(buf[:])
		return v, nil
	default:
		return Validation{}, errors.Errorf("wire.ReadValidation: unknown scheme %d", scheme)
	}
}

// WriteValidation writes the fixed-layout Validation record.
func WriteValidation(w io.Writer, v Validation) (int, error) {
	size, err := WriteUint(w, uint64(v.Scheme))
	if err != nil {
		return 0, err
	}
	switch v.Scheme {
	case ValidationNone:
		return size, nil
	case ValidationCRC32, ValidationChecksum32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], v.Signature)
		if _, err := w.Write(buf[:]); err != nil {
			return 0, errors.Wrap(err, "wire.WriteValidation: signature")
		}
		return size + 4, nil
	default:
		return 0, errors.Errorf("wire.WriteValidation: unknown scheme %d", v.Scheme)
	}
}
