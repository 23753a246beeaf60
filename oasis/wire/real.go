// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// RealKind tags which of the OASIS real-number encodings a Real holds.
type RealKind uint8

// The eight OASIS real-number encodings. Spec.md's "7 variants" folds the
// reciprocal forms into "ratios thereof"; this implementation keeps
// reciprocal and ratio distinct, since that is what the wire format
// actually tags.
const (
	RealPositiveInteger RealKind = iota
	RealNegativeInteger
	RealPositiveReciprocal
	RealNegativeReciprocal
	RealPositiveRatio
	RealNegativeRatio
	RealFloat32
	RealFloat64
)

// Real is a tagged union over the OASIS real-number encodings.
type Real struct {
	Kind RealKind
	// Int holds the magnitude for RealPositiveInteger/RealNegativeInteger
	// and the denominator for the reciprocal kinds.
	Int uint64
	// Num, Den hold numerator/denominator for the ratio kinds.
	Num, Den uint64
	F32      float32
	F64      float64
}

// Float64 returns the numeric value of r as a float64.
func (r Real) Float64() float64 {
	switch r.Kind {
	case RealPositiveInteger:
		return float64(r.Int)
	case RealNegativeInteger:
		return -float64(r.Int)
	case RealPositiveReciprocal:
		return 1 / float64(r.Int)
	case RealNegativeReciprocal:
		return -1 / float64(r.Int)
	case RealPositiveRatio:
		return float64(r.Num) / float64(r.Den)
	case RealNegativeRatio:
		return -float64(r.Num) / float64(r.Den)
	case RealFloat32:
		return float64(r.F32)
	case RealFloat64:
		return r.F64
	default:
		return math.NaN()
	}
}

// RealFromFloat64 builds the RealFloat64 encoding for v. Callers that need
// a more compact encoding (integer, ratio) should build a Real literal
// directly.
func RealFromFloat64(v float64) Real {
	return Real{Kind: RealFloat64, F64: v}
}

// ReadReal reads a tagged OASIS real number.
func ReadReal(r ByteReader) (Real, error) {
	kind, err := ReadUint(r)
	if err != nil {
		return Real{}, errors.Wrap(err, "wire.ReadReal: kind")
	}
	switch RealKind(kind) {
	case RealPositiveInteger, RealNegativeInteger, RealPositiveReciprocal, RealNegativeReciprocal,
		RealPositiveRatio, RealNegativeRatio:
		return readRealBody(r, RealKind(kind))
	case RealFloat32, RealFloat64:
		return readRealFloatBody(r, RealKind(kind))
	default:
		return Real{}, errors.Errorf("wire.ReadReal: unknown real kind %d", kind)
	}
}

// readRealBody reads the payload of the integer/reciprocal/ratio real
// kinds; the kind tag itself has already been consumed by the caller.
func readRealBody(r ByteReader, kind RealKind) (Real, error) {
	switch kind {
	case RealPositiveInteger, RealNegativeInteger, RealPositiveReciprocal, RealNegativeReciprocal:
		v, err := ReadUint(r)
		if err != nil {
			return Real{}, errors.Wrap(err, "wire.ReadReal: magnitude")
		}
		return Real{Kind: kind, Int: v}, nil
	case RealPositiveRatio, RealNegativeRatio:
		num, err := ReadUint(r)
		if err != nil {
			return Real{}, errors.Wrap(err, "wire.ReadReal: ratio numerator")
		}
		den, err := ReadUint(r)
		if err != nil {
			return Real{}, errors.Wrap(err, "wire.ReadReal: ratio denominator")
		}
		return Real{Kind: kind, Num: num, Den: den}, nil
	default:
		return Real{}, errors.Errorf("wire.ReadReal: unknown real kind %d", kind)
	}
}

// readRealFloatBody reads the fixed-width payload of the two float real
// kinds; the kind tag itself has already been consumed by the caller.
func readRealFloatBody(r ByteReader, kind RealKind) (Real, error) {
	switch kind {
	case RealFloat32:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Real{}, errors.Wrap(err, "wire.ReadReal: float32")
		}
		bits := binary.LittleEndian.Uint32(buf[:])
		return Real{Kind: RealFloat32, F32: math.Float32frombits(bits)}, nil
	case RealFloat64:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Real{}, errors.Wrap(err, "wire.ReadReal: float64")
		}
		bits := binary.LittleEndian.Uint64(buf[:])
		return Real{Kind: RealFloat64, F64: math.Float64frombits(bits)}, nil
	default:
		return Real{}, errors.Errorf("wire.ReadReal: unknown float real kind %d", kind)
	}
}

// WriteReal writes a tagged OASIS real number.
func WriteReal(w io.Writer, v Real) (int, error) {
	size, err := WriteUint(w, uint64(v.Kind))
	if err != nil {
		return 0, err
	}
	n, err := writeRealBody(w, v)
	if err != nil {
		return 0, err
	}
	return size + n, nil
}

// writeRealBody writes a Real's payload only; the caller is responsible
// for the kind tag (WriteReal writes its own, WritePropValue shares it
// with the property-value kind byte).
func writeRealBody(w io.Writer, v Real) (int, error) {
	switch v.Kind {
	case RealPositiveInteger, RealNegativeInteger, RealPositiveReciprocal, RealNegativeReciprocal:
		return WriteUint(w, v.Int)
	case RealPositiveRatio, RealNegativeRatio:
		size, err := WriteUint(w, v.Num)
		if err != nil {
			return 0, err
		}
		n, err := WriteUint(w, v.Den)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	case RealFloat32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v.F32))
		if _, err := w.Write(buf[:]); err != nil {
			return 0, errors.Wrap(err, "wire.WriteReal: float32")
		}
		return 4, nil
	case RealFloat64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.F64))
		if _, err := w.Write(buf[:]); err != nil {
			return 0, errors.Wrap(err, "wire.WriteReal: float64")
		}
		return 8, nil
	default:
		return 0, errors.Errorf("wire.WriteReal: unknown real kind %d", v.Kind)
	}
}
