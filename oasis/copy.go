// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"github.com/anewusername/fatamorgana/oasis/wire"
)

// clonePtr copies the value behind p into a new allocation, for optional
// fields whose pointed-to type carries no pointers of its own (the scalar
// and flat-struct optionals: uint64, int64, bool, wire.Real, wire.StringRef,
// wire.OffsetTable, PathExtension). Mirrors records.py Record.copy's use of
// copy.deepcopy for these fields.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// clonePointListValue deep-copies a wire.PointList's backing slice. Used
// directly as the clone hook passed to mergeFieldClone/dedupFieldCloneFunc
// for Polygon.PointList and Path.PointList, so modal and record values never
// share a backing array.
func clonePointListValue(v wire.PointList) wire.PointList {
	return wire.PointList{Kind: v.Kind, Points: append([]wire.Point(nil), v.Points...)}
}

func clonePointList(p *wire.PointList) *wire.PointList {
	if p == nil {
		return nil
	}
	v := clonePointListValue(*p)
	return &v
}

// clonePropValueListValue deep-copies a property value list. Used as the
// clone hook for Property.Values.
func clonePropValueListValue(v []wire.PropValue) []wire.PropValue {
	return append([]wire.PropValue(nil), v...)
}

func clonePropValues(p *[]wire.PropValue) *[]wire.PropValue {
	if p == nil {
		return nil
	}
	v := clonePropValueListValue(*p)
	return &v
}

func cloneRepetition(r wire.Repetition) wire.Repetition {
	if r == nil {
		return nil
	}
	return r.Clone()
}

func (p Pad) Copy() Record { return Pad{} }

func (x XYMode) Copy() Record { return x }

func (s Start) Copy() Record {
	return &Start{Version: s.Version, Unit: s.Unit, OffsetTable: clonePtr(s.OffsetTable)}
}

func (e End) Copy() Record {
	return End{OffsetTable: clonePtr(e.OffsetTable), Validation: e.Validation}
}

func (c CellName) Copy() Record {
	return CellName{NString: c.NString, ReferenceNumber: clonePtr(c.ReferenceNumber)}
}

func (p PropName) Copy() Record {
	return PropName{NString: p.NString, ReferenceNumber: clonePtr(p.ReferenceNumber)}
}

func (t TextString) Copy() Record {
	return TextString{AString: t.AString, ReferenceNumber: clonePtr(t.ReferenceNumber)}
}

func (p PropString) Copy() Record {
	return PropString{AString: p.AString, ReferenceNumber: clonePtr(p.ReferenceNumber)}
}

func (l LayerName) Copy() Record { return l }

func (c Cell) Copy() Record { return c }

func (p *Placement) Copy() Record {
	return &Placement{
		Flip:          p.Flip,
		Name:          clonePtr(p.Name),
		Magnification: clonePtr(p.Magnification),
		Angle:         clonePtr(p.Angle),
		X:             clonePtr(p.X),
		Y:             clonePtr(p.Y),
		Repetition:    cloneRepetition(p.Repetition),
	}
}

func (t *Text) Copy() Record {
	return &Text{
		String:     clonePtr(t.String),
		Layer:      clonePtr(t.Layer),
		Datatype:   clonePtr(t.Datatype),
		X:          clonePtr(t.X),
		Y:          clonePtr(t.Y),
		Repetition: cloneRepetition(t.Repetition),
	}
}

func (rec *Rectangle) Copy() Record {
	return &Rectangle{
		IsSquare:   rec.IsSquare,
		Width:      clonePtr(rec.Width),
		Height:     clonePtr(rec.Height),
		Layer:      clonePtr(rec.Layer),
		Datatype:   clonePtr(rec.Datatype),
		X:          clonePtr(rec.X),
		Y:          clonePtr(rec.Y),
		Repetition: cloneRepetition(rec.Repetition),
	}
}

func (p *Polygon) Copy() Record {
	return &Polygon{
		PointList:  clonePointList(p.PointList),
		Layer:      clonePtr(p.Layer),
		Datatype:   clonePtr(p.Datatype),
		X:          clonePtr(p.X),
		Y:          clonePtr(p.Y),
		Repetition: cloneRepetition(p.Repetition),
	}
}

func (p *Path) Copy() Record {
	return &Path{
		PointList:      clonePointList(p.PointList),
		HalfWidth:      clonePtr(p.HalfWidth),
		ExtensionStart: clonePtr(p.ExtensionStart),
		ExtensionEnd:   clonePtr(p.ExtensionEnd),
		Layer:          clonePtr(p.Layer),
		Datatype:       clonePtr(p.Datatype),
		X:              clonePtr(p.X),
		Y:              clonePtr(p.Y),
		Repetition:     cloneRepetition(p.Repetition),
	}
}

func (t *Trapezoid) Copy() Record {
	return &Trapezoid{
		IsVertical: t.IsVertical,
		DeltaA:     t.DeltaA,
		DeltaB:     t.DeltaB,
		Width:      clonePtr(t.Width),
		Height:     clonePtr(t.Height),
		Layer:      clonePtr(t.Layer),
		Datatype:   clonePtr(t.Datatype),
		X:          clonePtr(t.X),
		Y:          clonePtr(t.Y),
		Repetition: cloneRepetition(t.Repetition),
	}
}

func (c *CTrapezoid) Copy() Record {
	return &CTrapezoid{
		CTrapezoidType: clonePtr(c.CTrapezoidType),
		Width:          clonePtr(c.Width),
		Height:         clonePtr(c.Height),
		Layer:          clonePtr(c.Layer),
		Datatype:       clonePtr(c.Datatype),
		X:              clonePtr(c.X),
		Y:              clonePtr(c.Y),
		Repetition:     cloneRepetition(c.Repetition),
	}
}

func (c *Circle) Copy() Record {
	return &Circle{
		Radius:     clonePtr(c.Radius),
		Layer:      clonePtr(c.Layer),
		Datatype:   clonePtr(c.Datatype),
		X:          clonePtr(c.X),
		Y:          clonePtr(c.Y),
		Repetition: cloneRepetition(c.Repetition),
	}
}

func (p *Property) Copy() Record {
	return &Property{
		Name:       clonePtr(p.Name),
		Values:     clonePropValues(p.Values),
		IsStandard: clonePtr(p.IsStandard),
	}
}

func (x XName) Copy() Record {
	return XName{Attribute: x.Attribute, BString: append([]byte(nil), x.BString...), ReferenceNumber: clonePtr(x.ReferenceNumber)}
}

func (x XElement) Copy() Record {
	return XElement{Attribute: x.Attribute, BString: append([]byte(nil), x.BString...)}
}

func (x *XGeometry) Copy() Record {
	return &XGeometry{
		Attribute:  x.Attribute,
		BString:    append([]byte(nil), x.BString...),
		Layer:      clonePtr(x.Layer),
		Datatype:   clonePtr(x.Datatype),
		X:          clonePtr(x.X),
		Y:          clonePtr(x.Y),
		Repetition: cloneRepetition(x.Repetition),
	}
}

func (c CBlock) Copy() Record {
	return CBlock{
		CompressionType:       c.CompressionType,
		DecompressedByteCount: c.DecompressedByteCount,
		CompressedBytes:       append([]byte(nil), c.CompressedBytes...),
	}
}
