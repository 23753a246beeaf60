// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Circle is record id 27: a circle on a layer/datatype pair.
type Circle struct {
	Radius     *uint64
	Layer      *uint64
	Datatype   *uint64
	X, Y       *int64
	Repetition wire.Repetition
}

func (c *Circle) MergeWithModals(m *Modals) error {
	mergeCoordinates(&c.X, &c.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := mergeRepetition(&c.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := mergeField(&c.Layer, &m.Layer); err != nil {
		return err
	}
	if err := mergeField(&c.Datatype, &m.Datatype); err != nil {
		return err
	}
	return mergeField(&c.Radius, &m.CircleRadius)
}

func (c *Circle) DeduplicateWithModals(m *Modals) error {
	dedupCoordinates(&c.X, &c.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := dedupRepetition(&c.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := dedupField(&c.Layer, &m.Layer); err != nil {
		return err
	}
	if err := dedupField(&c.Datatype, &m.Datatype); err != nil {
		return err
	}
	return dedupField(&c.Radius, &m.CircleRadius)
}

func (c Circle) Write(w io.Writer) (int, error) {
	sSet := c.Radius != nil
	xSet := c.X != nil
	ySet := c.Y != nil
	r := c.Repetition != nil
	d := c.Datatype != nil
	l := c.Layer != nil

	size, err := wire.WriteUint(w, 27)
	if err != nil {
		return 0, err
	}
	bn, err := wire.WriteBoolByte(w, wire.BoolByte{false, false, sSet, xSet, ySet, r, d, l})
	if err != nil {
		return 0, err
	}
	size += bn

	if l {
		n, err := wire.WriteUint(w, *c.Layer)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if d {
		n, err := wire.WriteUint(w, *c.Datatype)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if sSet {
		n, err := wire.WriteUint(w, *c.Radius)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if xSet {
		n, err := wire.WriteSint(w, *c.X)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if ySet {
		n, err := wire.WriteSint(w, *c.Y)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if r {
		n, err := wire.WriteRepetition(w, c.Repetition)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readCircle(r wire.ByteReader, id uint64) (Record, error) {
	if id != 27 {
		return nil, unexpectedID("invalid record id %d for Circle", id)
	}
	bits, err := wire.ReadBoolByte(r)
	if err != nil {
		return nil, err
	}
	if bits[0] || bits[1] {
		return nil, malformedHeader("malformed Circle header")
	}
	sSet, xSet, ySet, rep, d, l := bits[2], bits[3], bits[4], bits[5], bits[6], bits[7]

	rec := &Circle{}
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
	if sSet {
		v, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		rec.Radius = &v
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
