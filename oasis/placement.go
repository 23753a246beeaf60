// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"
	"math"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Placement is record id 17 (angle quantized to a multiple of 90 degrees,
// no magnification) or 18 (general magnification/angle): instantiates a
// cell, optionally repeated.
type Placement struct {
	Flip          bool
	Name          *wire.StringRef
	Magnification *wire.Real
	Angle         *wire.Real
	X, Y          *int64
	Repetition    wire.Repetition
}

func (p *Placement) MergeWithModals(m *Modals) error {
	mergeCoordinates(&p.X, &p.Y, m.XYRelative, &m.PlacementX, &m.PlacementY)
	if err := mergeRepetition(&p.Repetition, &m.Repetition); err != nil {
		return err
	}
	return mergeField(&p.Name, &m.PlacementCell)
}

func (p *Placement) DeduplicateWithModals(m *Modals) error {
	dedupCoordinates(&p.X, &p.Y, m.XYRelative, &m.PlacementX, &m.PlacementY)
	if err := dedupRepetition(&p.Repetition, &m.Repetition); err != nil {
		return err
	}
	return dedupFieldFunc(&p.Name, &m.PlacementCell, func(a, b wire.StringRef) bool { return a == b })
}

func (p Placement) Write(w io.Writer) (int, error) {
	c := p.Name != nil
	n := c && p.Name.IsRef
	xSet := p.X != nil
	ySet := p.Y != nil
	r := p.Repetition != nil
	f := p.Flip

	quantized := p.Angle != nil && math.Mod(p.Angle.Float64(), 90) == 0 &&
		(p.Magnification == nil || p.Magnification.Float64() == 1)

	var id uint64
	var bits wire.BoolByte
	var m, a bool
	if quantized {
		aa := int64(math.Mod(p.Angle.Float64()/90, 4))
		if aa < 0 {
			aa += 4
		}
		bits = wire.BoolByte{c, n, xSet, ySet, r, aa&0b10 != 0, aa&0b01 != 0, f}
		id = 17
	} else {
		m = p.Magnification != nil
		a = p.Angle != nil
		bits = wire.BoolByte{c, n, xSet, ySet, r, m, a, f}
		id = 18
	}

	size, err := wire.WriteUint(w, id)
	if err != nil {
		return 0, err
	}
	bn, err := wire.WriteBoolByte(w, bits)
	if err != nil {
		return 0, err
	}
	size += bn
	if c {
		wn, err := writeRefName(w, p.Name)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if m {
		wn, err := wire.WriteReal(w, *p.Magnification)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if a {
		wn, err := wire.WriteReal(w, *p.Angle)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if xSet {
		wn, err := wire.WriteSint(w, *p.X)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if ySet {
		wn, err := wire.WriteSint(w, *p.Y)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if r {
		wn, err := wire.WriteRepetition(w, p.Repetition)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	return size, nil
}

func readPlacement(r wire.ByteReader, id uint64) (Record, error) {
	if id != 17 && id != 18 {
		return nil, unexpectedID("invalid record id %d for Placement", id)
	}
	bits, err := wire.ReadBoolByte(r)
	if err != nil {
		return nil, err
	}
	c, n, xSet, ySet, rep, ma0, ma1, flip := bits[0], bits[1], bits[2], bits[3], bits[4], bits[5], bits[6], bits[7]

	name, err := readRefName(r, c, n)
	if err != nil {
		return nil, err
	}

	rec := &Placement{Flip: flip, Name: name}
	if id == 17 {
		aa := int64(0)
		if ma0 {
			aa |= 2
		}
		if ma1 {
			aa |= 1
		}
		angle := wire.RealFromFloat64(float64(aa * 90))
		rec.Angle = &angle
	} else {
		if ma0 {
			v, err := wire.ReadReal(r)
			if err != nil {
				return nil, err
			}
			rec.Magnification = &v
		}
		if ma1 {
			v, err := wire.ReadReal(r)
			if err != nil {
				return nil, err
			}
			rec.Angle = &v
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
