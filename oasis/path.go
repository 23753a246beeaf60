// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Path is record id 22: a sequence of line segments with a half-width and
// per-end extension, on a layer/datatype pair.
//
// The reference implementation's writer emits id 21 here, a stray copy of
// the Polygon id; we write the correct 22.
type Path struct {
	PointList      *wire.PointList
	HalfWidth      *uint64
	ExtensionStart *PathExtension
	ExtensionEnd   *PathExtension
	Layer          *uint64
	Datatype       *uint64
	X, Y           *int64
	Repetition     wire.Repetition
}

func (p *Path) MergeWithModals(m *Modals) error {
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
	if err := mergeField(&p.HalfWidth, &m.PathHalfWidth); err != nil {
		return err
	}
	if err := mergeField(&p.ExtensionStart, &m.PathExtensionStart); err != nil {
		return err
	}
	if err := mergeField(&p.ExtensionEnd, &m.PathExtensionEnd); err != nil {
		return err
	}
	return mergeFieldClone(&p.PointList, &m.PathPointList, clonePointListValue)
}

func (p *Path) DeduplicateWithModals(m *Modals) error {
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
	if err := dedupField(&p.HalfWidth, &m.PathHalfWidth); err != nil {
		return err
	}
	if err := dedupField(&p.ExtensionStart, &m.PathExtensionStart); err != nil {
		return err
	}
	if err := dedupField(&p.ExtensionEnd, &m.PathExtensionEnd); err != nil {
		return err
	}
	return dedupFieldCloneFunc(&p.PointList, &m.PathPointList, pointListEqual, clonePointListValue)
}

func (p Path) Write(w io.Writer) (int, error) {
	if p.PointList != nil && len(p.PointList.Points) < 1 {
		return 0, malformedRecord("path point list must have at least 1 vertex")
	}
	wSet := p.HalfWidth != nil
	pSet := p.PointList != nil
	xSet := p.X != nil
	ySet := p.Y != nil
	r := p.Repetition != nil
	d := p.Datatype != nil
	l := p.Layer != nil
	eSet := p.ExtensionStart != nil || p.ExtensionEnd != nil

	size, err := wire.WriteUint(w, 22)
	if err != nil {
		return 0, err
	}
	bn, err := wire.WriteBoolByte(w, wire.BoolByte{eSet, wSet, pSet, xSet, ySet, r, d, l})
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
	if wSet {
		n, err := wire.WriteUint(w, *p.HalfWidth)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if eSet {
		startScheme := PathExtensionScheme(0)
		if p.ExtensionStart != nil {
			startScheme = p.ExtensionStart.Scheme
		}
		endScheme := PathExtensionScheme(0)
		if p.ExtensionEnd != nil {
			endScheme = p.ExtensionEnd.Scheme
		}
		extByte := uint64(startScheme)<<2 | uint64(endScheme)
		n, err := wire.WriteUint(w, extByte)
		if err != nil {
			return 0, err
		}
		size += n
		if startScheme == PathExtensionArbitrary {
			n, err := wire.WriteSint(w, p.ExtensionStart.Arbitrary)
			if err != nil {
				return 0, err
			}
			size += n
		}
		if endScheme == PathExtensionArbitrary {
			n, err := wire.WriteSint(w, p.ExtensionEnd.Arbitrary)
			if err != nil {
				return 0, err
			}
			size += n
		}
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

func readPathExtensionEnd(scheme PathExtensionScheme, r wire.ByteReader) (*PathExtension, error) {
	switch scheme {
	case 0:
		return nil, nil
	case PathExtensionArbitrary:
		v, err := wire.ReadSint(r)
		if err != nil {
			return nil, err
		}
		return &PathExtension{Scheme: PathExtensionArbitrary, Arbitrary: v}, nil
	default:
		return &PathExtension{Scheme: scheme}, nil
	}
}

func readPath(r wire.ByteReader, id uint64) (Record, error) {
	if id != 22 {
		return nil, unexpectedID("invalid record id %d for Path", id)
	}
	bits, err := wire.ReadBoolByte(r)
	if err != nil {
		return nil, err
	}
	eSet, wSet, pSet, xSet, ySet, rep, d, l := bits[0], bits[1], bits[2], bits[3], bits[4], bits[5], bits[6], bits[7]

	rec := &Path{}
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
		rec.HalfWidth = &v
	}
	if eSet {
		extByte, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		startScheme := PathExtensionScheme((extByte >> 2) & 0b11)
		endScheme := PathExtensionScheme(extByte & 0b11)
		rec.ExtensionStart, err = readPathExtensionEnd(startScheme, r)
		if err != nil {
			return nil, err
		}
		rec.ExtensionEnd, err = readPathExtensionEnd(endScheme, r)
		if err != nil {
			return nil, err
		}
	}
	if pSet {
		pl, err := wire.ReadPointList(r)
		if err != nil {
			return nil, err
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
