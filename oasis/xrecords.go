// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// XName is record id 30/31: a vendor extension name, analogous to the
// built-in name tables but keyed by an arbitrary attribute number.
type XName struct {
	Attribute       uint64
	BString         []byte
	ReferenceNumber *uint64
}

func (XName) MergeWithModals(m *Modals) error        { m.Reset(); return nil }
func (XName) DeduplicateWithModals(m *Modals) error   { m.Reset(); return nil }

func (x XName) Write(w io.Writer) (int, error) {
	id := uint64(30)
	if x.ReferenceNumber != nil {
		id = 31
	}
	size, err := wire.WriteUint(w, id)
	if err != nil {
		return 0, err
	}
	n, err := wire.WriteUint(w, x.Attribute)
	if err != nil {
		return 0, err
	}
	size += n
	n, err = wire.WriteBstring(w, x.BString)
	if err != nil {
		return 0, err
	}
	size += n
	if x.ReferenceNumber != nil {
		n, err = wire.WriteUint(w, *x.ReferenceNumber)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readXName(r wire.ByteReader, id uint64) (Record, error) {
	if id != 30 && id != 31 {
		return nil, unexpectedID("invalid record id %d for XName", id)
	}
	attr, err := wire.ReadUint(r)
	if err != nil {
		return nil, err
	}
	bs, err := wire.ReadBstring(r)
	if err != nil {
		return nil, err
	}
	var ref *uint64
	if id == 31 {
		n, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		ref = &n
	}
	return XName{Attribute: attr, BString: bs, ReferenceNumber: ref}, nil
}

// XElement is record id 32: an opaque vendor extension record that is
// never subject to modal compression.
type XElement struct {
	Attribute uint64
	BString   []byte
}

func (XElement) MergeWithModals(*Modals) error        { return nil }
func (XElement) DeduplicateWithModals(*Modals) error   { return nil }

func (x XElement) Write(w io.Writer) (int, error) {
	size, err := wire.WriteUint(w, 32)
	if err != nil {
		return 0, err
	}
	n, err := wire.WriteUint(w, x.Attribute)
	if err != nil {
		return 0, err
	}
	size += n
	n, err = wire.WriteBstring(w, x.BString)
	if err != nil {
		return 0, err
	}
	return size + n, nil
}

func readXElement(r wire.ByteReader, id uint64) (Record, error) {
	if id != 32 {
		return nil, unexpectedID("invalid record id %d for XElement", id)
	}
	attr, err := wire.ReadUint(r)
	if err != nil {
		return nil, err
	}
	bs, err := wire.ReadBstring(r)
	if err != nil {
		return nil, err
	}
	return XElement{Attribute: attr, BString: bs}, nil
}

// XGeometry is record id 33: a vendor-extension geometry record that
// participates in the same coordinate, repetition, layer, and datatype
// modal compression as the built-in geometry records.
type XGeometry struct {
	Attribute  uint64
	BString    []byte
	Layer      *uint64
	Datatype   *uint64
	X, Y       *int64
	Repetition wire.Repetition
}

func (x *XGeometry) MergeWithModals(m *Modals) error {
	mergeCoordinates(&x.X, &x.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := mergeRepetition(&x.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := mergeField(&x.Layer, &m.Layer); err != nil {
		return err
	}
	return mergeField(&x.Datatype, &m.Datatype)
}

func (x *XGeometry) DeduplicateWithModals(m *Modals) error {
	dedupCoordinates(&x.X, &x.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := dedupRepetition(&x.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := dedupField(&x.Layer, &m.Layer); err != nil {
		return err
	}
	return dedupField(&x.Datatype, &m.Datatype)
}

func (x XGeometry) Write(w io.Writer) (int, error) {
	xSet := x.X != nil
	ySet := x.Y != nil
	r := x.Repetition != nil
	d := x.Datatype != nil
	l := x.Layer != nil

	size, err := wire.WriteUint(w, 33)
	if err != nil {
		return 0, err
	}
	n, err := wire.WriteBoolByte(w, wire.BoolByte{false, false, false, xSet, ySet, r, d, l})
	if err != nil {
		return 0, err
	}
	size += n
	n, err = wire.WriteUint(w, x.Attribute)
	if err != nil {
		return 0, err
	}
	size += n
	if l {
		n, err = wire.WriteUint(w, *x.Layer)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if d {
		n, err = wire.WriteUint(w, *x.Datatype)
		if err != nil {
			return 0, err
		}
		size += n
	}
	n, err = wire.WriteBstring(w, x.BString)
	if err != nil {
		return 0, err
	}
	size += n
	if xSet {
		n, err = wire.WriteSint(w, *x.X)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if ySet {
		n, err = wire.WriteSint(w, *x.Y)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if r {
		n, err = wire.WriteRepetition(w, x.Repetition)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readXGeometry(r wire.ByteReader, id uint64) (Record, error) {
	if id != 33 {
		return nil, unexpectedID("invalid record id %d for XGeometry", id)
	}
	bits, err := wire.ReadBoolByte(r)
	if err != nil {
		return nil, err
	}
	if bits[0] || bits[1] || bits[2] {
		return nil, malformedHeader("malformed XGeometry header")
	}
	xSet, ySet, rep, d, l := bits[3], bits[4], bits[5], bits[6], bits[7]
	attr, err := wire.ReadUint(r)
	if err != nil {
		return nil, err
	}
	rec := &XGeometry{Attribute: attr}
	if l {
		v, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		rec.Layer = &v
	}
	if d {
		v, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		rec.Datatype = &v
	}
	rec.BString, err = wire.ReadBstring(r)
	if err != nil {
		return nil, err
	}
	if xSet {
		v, err := wire.ReadSint(r)
		if err != nil {
			return nil, err
		}
		rec.X = &v
	}
	if ySet {
		v, err := wire.ReadSint(r)
		if err != nil {
			return nil, err
		}
		rec.Y = &v
	}
	if rep {
		rec.Repetition, err = wire.ReadRepetition(r)
		if err != nil {
			return nil, err
		}
	}
	return rec, nil
}
