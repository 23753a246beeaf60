// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

func pointListEqual(a, b wire.PointList) bool {
	if a.Kind != b.Kind || len(a.Points) != len(b.Points) {
		return false
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			return false
		}
	}
	return true
}

// Polygon is record id 21: a closed polygon on a layer/datatype pair.
type Polygon struct {
	PointList  *wire.PointList
	Layer      *uint64
	Datatype   *uint64
	X, Y       *int64
	Repetition wire.Repetition
}

// NewPolygon validates the minimum-vertex-count invariant at construction.
func NewPolygon(pointList *wire.PointList, layer, datatype *uint64, x, y *int64, rep wire.Repetition) (*Polygon, error) {
	if pointList != nil && len(pointList.Points) < 3 {
		return nil, malformedRecord("polygon point list must have at least 3 vertices, got %d", len(pointList.Points))
	}
	return &Polygon{PointList: pointList, Layer: layer, Datatype: datatype, X: x, Y: y, Repetition: rep}, nil
}

func (p *Polygon) MergeWithModals(m *Modals) error {
	mergeCoordinates(&p.X, &p.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := mergeRepetition(&p.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := mergeField(&p.Layer, &m.Layer); err != nil {
		return err
	}
	if err := mergeField(&p.Datatype, &m.Datatype); err != nil {
		return err
	}
	return mergeFieldClone(&p.PointList, &m.PolygonPointList, clonePointListValue)
}

func (p *Polygon) DeduplicateWithModals(m *Modals) error {
	dedupCoordinates(&p.X, &p.Y, m.XYRelative, &m.GeometryX, &m.GeometryY)
	if err := dedupRepetition(&p.Repetition, &m.Repetition); err != nil {
		return err
	}
	if err := dedupField(&p.Layer, &m.Layer); err != nil {
		return err
	}
	if err := dedupField(&p.Datatype, &m.Datatype); err != nil {
		return err
	}
	return dedupFieldCloneFunc(&p.PointList, &m.PolygonPointList, pointListEqual, clonePointListValue)
}

func (p Polygon) Write(w io.Writer) (int, error) {
	if p.PointList != nil && len(p.PointList.Points) < 3 {
		return 0, malformedRecord("polygon point list must have at least 3 vertices, got %d", len(p.PointList.Points))
	}
	pSet := p.PointList != nil
	xSet := p.X != nil
	ySet := p.Y != nil
	r := p.Repetition != nil
	d := p.Datatype != nil
	l := p.Layer != nil

	size, err := wire.WriteUint(w, 21)
	if err != nil {
		return 0, err
	}
	bn, err := wire.WriteBoolByte(w, wire.BoolByte{false, false, pSet, xSet, ySet, r, d, l})
	if err != nil {
		return 0, err
	}
	size += bn

	if l {
		n, err := wire.WriteUint(w, *p.Layer)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if d {
		n, err := wire.WriteUint(w, *p.Datatype)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if pSet {
		n, err := wire.WritePointList(w, *p.PointList)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if xSet {
		n, err := wire.WriteSint(w, *p.X)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if ySet {
		n, err := wire.WriteSint(w, *p.Y)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if r {
		n, err := wire.WriteRepetition(w, p.Repetition)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readPolygon(r wire.ByteReader, id uint64) (Record, error) {
	if id != 21 {
		return nil, unexpectedID("invalid record id %d for Polygon", id)
	}
	bits, err := wire.ReadBoolByte(r)
	if err != nil {
		return nil, err
	}
	if bits[0] || bits[1] {
		return nil, malformedHeader("malformed Polygon header")
	}
	pSet, xSet, ySet, rep, d, l := bits[2], bits[3], bits[4], bits[5], bits[6], bits[7]

	rec := &Polygon{}
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
	if pSet {
		pl, err := wire.ReadPointList(r)
		if err != nil {
			return nil, err
		}
		if len(pl.Points) < 3 {
			return nil, malformedRecord("polygon point list must have at least 3 vertices, got %d", len(pl.Points))
		}
		rec.PointList = &pl
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
