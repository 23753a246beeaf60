// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Text is record id 19: places a text string at a point, optionally
// repeated, on a layer/datatype pair.
type Text struct {
	String     *wire.StringRef
	Layer      *uint64
	Datatype   *uint64
	X, Y       *int64
	Repetition wire.Repetition
}

func (t *Text) MergeWithModals(m *Modals) error {
	mergeCoordinates(&t.X, &t.Y, m.XYRelative, &m.TextX, &m.TextY)
	if err := mergeRepetition(&t.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := mergeField(&t.Layer, &m.TextLayer); err != nil {
		return err
	}
	if err := mergeField(&t.Datatype, &m.TextDatatype); err != nil {
		return err
	}
	return mergeField(&t.String, &m.TextString)
}

func (t *Text) DeduplicateWithModals(m *Modals) error {
	dedupCoordinates(&t.X, &t.Y, m.XYRelative, &m.TextX, &m.TextY)
	if err := dedupRepetition(&t.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := dedupField(&t.Layer, &m.TextLayer); err != nil {
		return err
	}
	if err := dedupField(&t.Datatype, &m.TextDatatype); err != nil {
		return err
	}
	return dedupFieldFunc(&t.String, &m.TextString, func(a, b wire.StringRef) bool { return a == b })
}

func (t Text) Write(w io.Writer) (int, error) {
	c := t.String != nil
	n := c && t.String.IsRef
	xSet := t.X != nil
	ySet := t.Y != nil
	r := t.Repetition != nil
	d := t.Datatype != nil
	l := t.Layer != nil

	size, err := wire.WriteUint(w, 19)
	if err != nil {
		return 0, err
	}
	bn, err := wire.WriteBoolByte(w, wire.BoolByte{false, c, n, xSet, ySet, r, d, l})
	if err != nil {
		return 0, err
	}
	size += bn

	if c {
		wn, err := writeRefString(w, t.String)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if l {
		wn, err := wire.WriteUint(w, *t.Layer)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if d {
		wn, err := wire.WriteUint(w, *t.Datatype)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if xSet {
		wn, err := wire.WriteSint(w, *t.X)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if ySet {
		wn, err := wire.WriteSint(w, *t.Y)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if r {
		wn, err := wire.WriteRepetition(w, t.Repetition)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	return size, nil
}

func readText(r wire.ByteReader, id uint64) (Record, error) {
	if id != 19 {
		return nil, unexpectedID("invalid record id %d for Text", id)
	}
	bits, err := wire.ReadBoolByte(r)
	if err != nil {
		return nil, err
	}
	if bits[0] {
		return nil, malformedHeader("malformed Text header")
	}
	c, n, xSet, ySet, rep, d, l := bits[1], bits[2], bits[3], bits[4], bits[5], bits[6], bits[7]

	str, err := readRefString(r, c, n)
	if err != nil {
		return nil, err
	}
	rec := &Text{String: str}
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
