// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"
)

// StringRef is a value that is either a literal string or a reference (by
// interned string-table number) to one recorded earlier in the stream.
// It carries no slices so that == works for the modal dedup engine's
// equality checks.
type StringRef struct {
	IsRef   bool
	Ref     uint64
	Literal string
}

// PropValueKind tags the sixteen OASIS property-value encodings: the eight
// real-number kinds, signed/unsigned integers, and three string kinds each
// in literal and by-reference form.
type PropValueKind uint8

const (
	PropValueRealPositiveInteger PropValueKind = iota
	PropValueRealNegativeInteger
	PropValueRealPositiveReciprocal
	PropValueRealNegativeReciprocal
	PropValueRealPositiveRatio
	PropValueRealNegativeRatio
	PropValueRealFloat32
	PropValueRealFloat64
	PropValueUnsignedInteger
	PropValueSignedInteger
	PropValueAString
	PropValueBString
	PropValueNString
	PropValueRefAString
	PropValueRefBString
	PropValueRefNString
)

// PropValue is a single tagged property value.
type PropValue struct {
	Kind PropValueKind
	Real Real      // valid when Kind is one of the eight real kinds
	Int  uint64    // raw varint; for PropValueSignedInteger the sign is in the low bit, as ReadSint decodes it
	Str  StringRef // valid when Kind is one of the six string kinds
}

var realKindToPropKind = [8]PropValueKind{
	RealPositiveInteger:    PropValueRealPositiveInteger,
	RealNegativeInteger:    PropValueRealNegativeInteger,
	RealPositiveReciprocal: PropValueRealPositiveReciprocal,
	RealNegativeReciprocal: PropValueRealNegativeReciprocal,
	RealPositiveRatio:      PropValueRealPositiveRatio,
	RealNegativeRatio:      PropValueRealNegativeRatio,
	RealFloat32:            PropValueRealFloat32,
	RealFloat64:            PropValueRealFloat64,
}

// ReadPropValue reads a single tagged property value.
func ReadPropValue(r ByteReader) (PropValue, error) {
	kind, err := ReadUint(r)
	if err != nil {
		return PropValue{}, errors.Wrap(err, "wire.ReadPropValue: kind")
	}
	switch PropValueKind(kind) {
	case PropValueRealPositiveInteger, PropValueRealNegativeInteger,
		PropValueRealPositiveReciprocal, PropValueRealNegativeReciprocal,
		PropValueRealPositiveRatio, PropValueRealNegativeRatio:
		real, err := readRealBody(r, RealKind(kind))
		if err != nil {
			return PropValue{}, err
		}
		return PropValue{Kind: PropValueKind(kind), Real: real}, nil
	case PropValueRealFloat32, PropValueRealFloat64:
		real, err := readRealFloatBody(r, RealKind(kind))
		if err != nil {
			return PropValue{}, err
		}
		return PropValue{Kind: PropValueKind(kind), Real: real}, nil
	case PropValueUnsignedInteger, PropValueSignedInteger:
		v, err := ReadUint(r)
		if err != nil {
			return PropValue{}, errors.Wrap(err, "wire.ReadPropValue: integer")
		}
		return PropValue{Kind: PropValueKind(kind), Int: v}, nil
	case PropValueAString, PropValueBString, PropValueNString:
		lit, err := readPropString(r, PropValueKind(kind))
		if err != nil {
			return PropValue{}, err
		}
		return PropValue{Kind: PropValueKind(kind), Str: StringRef{Literal: lit}}, nil
	case PropValueRefAString, PropValueRefBString, PropValueRefNString:
		ref, err := ReadUint(r)
		if err != nil {
			return PropValue{}, errors.Wrap(err, "wire.ReadPropValue: string ref")
		}
		return PropValue{Kind: PropValueKind(kind), Str: StringRef{IsRef: true, Ref: ref}}, nil
	default:
		return PropValue{}, errors.Errorf("wire.ReadPropValue: unknown kind %d", kind)
	}
}

func readPropString(r ByteReader, kind PropValueKind) (string, error) {
	switch kind {
	case PropValueAString:
		s, err := ReadAString(r)
		return string(s), errors.Wrap(err, "wire.ReadPropValue: a-string")
	case PropValueNString:
		s, err := ReadNString(r)
		return string(s), errors.Wrap(err, "wire.ReadPropValue: n-string")
	default:
		b, err := ReadBstring(r)
		return string(b), errors.Wrap(err, "wire.ReadPropValue: b-string")
	}
}

// WritePropValue writes a single tagged property value.
func WritePropValue(w io.Writer, v PropValue) (int, error) {
	size, err := WriteUint(w, uint64(v.Kind))
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case PropValueRealPositiveInteger, PropValueRealNegativeInteger,
		PropValueRealPositiveReciprocal, PropValueRealNegativeReciprocal,
		PropValueRealPositiveRatio, PropValueRealNegativeRatio,
		PropValueRealFloat32, PropValueRealFloat64:
		n, err := writeRealBody(w, v.Real)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	case PropValueUnsignedInteger, PropValueSignedInteger:
		n, err := WriteUint(w, v.Int)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	case PropValueAString:
		n, err := AString(v.Str.Literal).Write(w)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	case PropValueNString:
		n, err := NString(v.Str.Literal).Write(w)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	case PropValueBString:
		n, err := WriteBstring(w, []byte(v.Str.Literal))
		if err != nil {
			return 0, err
		}
		return size + n, nil
	case PropValueRefAString, PropValueRefBString, PropValueRefNString:
		n, err := WriteUint(w, v.Str.Ref)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	default:
		return 0, errors.Errorf("wire.WritePropValue: unknown kind %d", v.Kind)
	}
}
