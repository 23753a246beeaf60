// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Rectangle is record id 20: an axis-aligned rectangle, optionally square.
type Rectangle struct {
	IsSquare   bool
	Width      *uint64
	Height     *uint64
	Layer      *uint64
	Datatype   *uint64
	X, Y       *int64
	Repetition wire.Repetition
}

// NewRectangle validates the square/height exclusivity the reference
// implementation enforces at construction time.
func NewRectangle(isSquare bool, width, height, layer, datatype *uint64, x, y *int64, rep wire.Repetition) (*Rectangle, error) {
	if isSquare && height != nil {
		return nil, malformedRecord("square rectangle must not carry an explicit height")
	}
	return &Rectangle{IsSquare: isSquare, Width: width, Height: height, Layer: layer, Datatype: datatype, X: x, Y: y, Repetition: rep}, nil
}

func (rec *Rectangle) MergeWithModals(m *Modals) error {
	mergeCoordinates(&rec.X, &rec.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := mergeRepetition(&rec.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := mergeField(&rec.Layer, &m.Layer); err != nil {
		return err
	}
	if err := mergeField(&rec.Datatype, &m.Datatype); err != nil {
		return err
	}
	if err := mergeField(&rec.Width, &m.GeometryW); err != nil {
		return err
	}
	if rec.IsSquare {
		return mergeField(&rec.Width, &m.GeometryH)
	}
	return mergeField(&rec.Height, &m.GeometryH)
}

func (rec *Rectangle) DeduplicateWithModals(m *Modals) error {
	dedupCoordinates(&rec.X, &rec.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := dedupRepetition(&rec.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := dedupField(&rec.Layer, &m.Layer); err != nil {
		return err
	}
	if err := dedupField(&rec.Datatype, &m.Datatype); err != nil {
		return err
	}
	if err := dedupField(&rec.Width, &m.GeometryW); err != nil {
		return err
	}
	if rec.IsSquare {
		return nil
	}
	return dedupField(&rec.Height, &m.GeometryH)
}

func (rec Rectangle) Write(w io.Writer) (int, error) {
	if rec.IsSquare && rec.Height != nil {
		return 0, malformedRecord("square rectangle must not carry an explicit height")
	}
	wSet := rec.Width != nil
	hSet := rec.Height != nil
	xSet := rec.X != nil
	ySet := rec.Y != nil
	r := rec.Repetition != nil
	d := rec.Datatype != nil
	l := rec.Layer != nil

	size, err := wire.WriteUint(w, 20)
	if err != nil {
		return 0, err
	}
	bn, err := wire.WriteBoolByte(w, wire.BoolByte{rec.IsSquare, wSet, hSet, xSet, ySet, r, d, l})
	if err != nil {
		return 0, err
	}
	size += bn

	if l {
		n, err := wire.WriteUint(w, *rec.Layer)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if d {
		n, err := wire.WriteUint(w, *rec.Datatype)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if wSet {
		n, err := wire.WriteUint(w, *rec.Width)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if hSet {
		n, err := wire.WriteUint(w, *rec.Height)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if xSet {
		n, err := wire.WriteSint(w, *rec.X)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if ySet {
		n, err := wire.WriteSint(w, *rec.Y)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if r {
		n, err := wire.WriteRepetition(w, rec.Repetition)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readRectangle(r wire.ByteReader, id uint64) (Record, error) {
	if id != 20 {
		return nil, unexpectedID("invalid record id %d for Rectangle", id)
	}
	bits, err := wire.ReadBoolByte(r)
	if err != nil {
		return nil, err
	}
	square, wSet, hSet, xSet, ySet, rep, d, l := bits[0], bits[1], bits[2], bits[3], bits[4], bits[5], bits[6], bits[7]
	if square && hSet {
		return nil, malformedHeader("malformed Rectangle header: square with explicit height")
	}

	rec := &Rectangle{IsSquare: square}
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
	if wSet {
		v, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		rec.Width = &v
	}
	if hSet {
		v, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		rec.Height = &v
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
