// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Trapezoid is record id 23 (both slanted sides), 24 (delta_b implicitly
// zero), or 25 (delta_a implicitly zero).
type Trapezoid struct {
	IsVertical       bool
	DeltaA, DeltaB   int64
	Width, Height    *uint64
	Layer, Datatype  *uint64
	X, Y             *int64
	Repetition       wire.Repetition
}

func (t *Trapezoid) MergeWithModals(m *Modals) error {
	mergeCoordinates(&t.X, &t.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := mergeRepetition(&t.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := mergeField(&t.Layer, &m.Layer); err != nil {
		return err
	}
	if err := mergeField(&t.Datatype, &m.Datatype); err != nil {
		return err
	}
	if err := mergeField(&t.Width, &m.GeometryW); err != nil {
		return err
	}
	return mergeField(&t.Height, &m.GeometryH)
}

func (t *Trapezoid) DeduplicateWithModals(m *Modals) error {
	dedupCoordinates(&t.X, &t.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := dedupRepetition(&t.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := dedupField(&t.Layer, &m.Layer); err != nil {
		return err
	}
	if err := dedupField(&t.Datatype, &m.Datatype); err != nil {
		return err
	}
	if err := dedupField(&t.Width, &m.GeometryW); err != nil {
		return err
	}
	return dedupField(&t.Height, &m.GeometryH)
}

func (t Trapezoid) Write(w io.Writer) (int, error) {
	var id uint64
	switch {
	case t.DeltaB == 0:
		id = 24
	case t.DeltaA == 0:
		id = 25
	default:
		id = 23
	}

	wSet := t.Width != nil
	hSet := t.Height != nil
	xSet := t.X != nil
	ySet := t.Y != nil
	r := t.Repetition != nil
	d := t.Datatype != nil
	l := t.Layer != nil

	size, err := wire.WriteUint(w, id)
	if err != nil {
		return 0, err
	}
	bn, err := wire.WriteBoolByte(w, wire.BoolByte{t.IsVertical, wSet, hSet, xSet, ySet, r, d, l})
	if err != nil {
		return 0, err
	}
	size += bn

	if l {
		n, err := wire.WriteUint(w, *t.Layer)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if d {
		n, err := wire.WriteUint(w, *t.Datatype)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if wSet {
		n, err := wire.WriteUint(w, *t.Width)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if hSet {
		n, err := wire.WriteUint(w, *t.Height)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if id == 23 || id == 25 {
		n, err := wire.WriteSint(w, t.DeltaA)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if id == 23 || id == 24 {
		n, err := wire.WriteSint(w, t.DeltaB)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if xSet {
		n, err := wire.WriteSint(w, *t.X)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if ySet {
		n, err := wire.WriteSint(w, *t.Y)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if r {
		n, err := wire.WriteRepetition(w, t.Repetition)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readTrapezoid(r wire.ByteReader, id uint64) (Record, error) {
	if id != 23 && id != 24 && id != 25 {
		return nil, unexpectedID("invalid record id %d for Trapezoid", id)
	}
	bits, err := wire.ReadBoolByte(r)
	if err != nil {
		return nil, err
	}
	vertical, wSet, hSet, xSet, ySet, rep, d, l := bits[0], bits[1], bits[2], bits[3], bits[4], bits[5], bits[6], bits[7]

	rec := &Trapezoid{IsVertical: vertical}
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
	if id == 23 || id == 25 {
		rec.DeltaA, err = wire.ReadSint(r)
		if err != nil {
			return nil, err
		}
	}
	if id == 23 || id == 24 {
		rec.DeltaB, err = wire.ReadSint(r)
		if err != nil {
			return nil, err
		}
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

// ctrapezoidHeightForbidden lists the ctrapezoid_type values that encode a
// triangle (isoceles-right or axis-aligned): for these, height must be
// unset because width alone determines the shape.
var ctrapezoidHeightForbidden = map[uint64]bool{
	16: true, 17: true, 18: true, 19: true, 20: true,
	21: true, 22: true, 23: true, 25: true,
}

func validateCTrapezoid(ctype uint64, width, height *uint64) error {
	if ctype > 25 {
		return malformedRecord("ctrapezoid type %d out of range 0-25", ctype)
	}
	if ctrapezoidHeightForbidden[ctype] {
		if height != nil {
			return malformedRecord("ctrapezoid type %d must not carry an explicit height", ctype)
		}
		return nil
	}
	if width == nil || height == nil || ctype > 15 {
		return nil
	}
	wv, hv := *width, *height
	switch {
	case ctype <= 3:
		if wv < hv {
			return malformedRecord("ctrapezoid type %d requires width >= height", ctype)
		}
	case ctype <= 7:
		if wv < 2*hv {
			return malformedRecord("ctrapezoid type %d requires width >= 2*height", ctype)
		}
	case ctype <= 11:
		if wv > hv {
			return malformedRecord("ctrapezoid type %d requires width <= height", ctype)
		}
	default: // 12-15
		if 2*wv > hv {
			return malformedRecord("ctrapezoid type %d requires 2*width <= height", ctype)
		}
	}
	return nil
}

// CTrapezoid is record id 26: one of 26 canonical trapezoid/triangle shapes
// selected by ctrapezoid_type, with type-dependent width/height
// constraints validated in validateCTrapezoid.
type CTrapezoid struct {
	CTrapezoidType  *uint64
	Width, Height   *uint64
	Layer, Datatype *uint64
	X, Y            *int64
	Repetition      wire.Repetition
}

func (c *CTrapezoid) MergeWithModals(m *Modals) error {
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
	if err := mergeField(&c.CTrapezoidType, &m.CTrapezoidType); err != nil {
		return err
	}
	if err := mergeField(&c.Width, &m.GeometryW); err != nil {
		return err
	}
	if !ctrapezoidHeightForbidden[*c.CTrapezoidType] {
		if err := mergeField(&c.Height, &m.GeometryH); err != nil {
			return err
		}
	}
	return validateCTrapezoid(*c.CTrapezoidType, c.Width, c.Height)
}

func (c *CTrapezoid) DeduplicateWithModals(m *Modals) error {
	if c.CTrapezoidType != nil {
		if err := validateCTrapezoid(*c.CTrapezoidType, c.Width, c.Height); err != nil {
			return err
		}
	}
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
	if err := dedupField(&c.CTrapezoidType, &m.CTrapezoidType); err != nil {
		return err
	}
	if err := dedupField(&c.Width, &m.GeometryW); err != nil {
		return err
	}
	if ctrapezoidHeightForbidden[*m.CTrapezoidType] {
		return validateCTrapezoid(*m.CTrapezoidType, c.Width, c.Height)
	}
	return dedupField(&c.Height, &m.GeometryH)
}

func (c CTrapezoid) Write(w io.Writer) (int, error) {
	tSet := c.CTrapezoidType != nil
	wSet := c.Width != nil
	hSet := c.Height != nil
	xSet := c.X != nil
	ySet := c.Y != nil
	r := c.Repetition != nil
	d := c.Datatype != nil
	l := c.Layer != nil

	size, err := wire.WriteUint(w, 26)
	if err != nil {
		return 0, err
	}
	bn, err := wire.WriteBoolByte(w, wire.BoolByte{tSet, wSet, hSet, xSet, ySet, r, d, l})
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
	if tSet {
		n, err := wire.WriteUint(w, *c.CTrapezoidType)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if wSet {
		n, err := wire.WriteUint(w, *c.Width)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if hSet {
		n, err := wire.WriteUint(w, *c.Height)
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

func readCTrapezoid(r wire.ByteReader, id uint64) (Record, error) {
	if id != 26 {
		return nil, unexpectedID("invalid record id %d for CTrapezoid", id)
	}
	bits, err := wire.ReadBoolByte(r)
	if err != nil {
		return nil, err
	}
	tSet, wSet, hSet, xSet, ySet, rep, d, l := bits[0], bits[1], bits[2], bits[3], bits[4], bits[5], bits[6], bits[7]

	rec := &CTrapezoid{}
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
	if tSet {
		v, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		rec.CTrapezoidType = &v
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
	if rec.CTrapezoidType != nil {
		if err := validateCTrapezoid(*rec.CTrapezoidType, rec.Width, rec.Height); err != nil {
			return nil, err
		}
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
