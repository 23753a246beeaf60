// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"github.com/anewusername/fatamorgana/oasis/wire"
)

// PathExtensionScheme selects how a Path's start/end is extended past its
// last vertex. Values align with the two-bit wire encoding directly; wire
// code 0 ("reuse the modal value") is represented by a nil *PathExtension
// rather than by a scheme constant, the same convention every other
// optional field uses.
type PathExtensionScheme uint8

const (
	_ PathExtensionScheme = iota // wire code 0: reuse modal, represented as nil
	PathExtensionFlush
	PathExtensionHalfWidth
	PathExtensionArbitrary
)

// PathExtension is a Path endpoint's extension specification.
type PathExtension struct {
	Scheme PathExtensionScheme
	// Arbitrary holds the extension distance; valid only when Scheme is
	// PathExtensionArbitrary.
	Arbitrary int64
}

// Modals holds the mutable state that records fold into and read out of as
// a stream is written or read: the "last seen" value for every field that
// records are allowed to omit because it repeats. Each Reader and each
// Writer owns exactly one Modals, which is reset on every
// Start/Cell-boundary record (Start, the four name records, LayerName,
// XName, and Cell all call Reset from their
// MergeWithModals/DeduplicateWithModals).
type Modals struct {
	Repetition wire.Repetition // nil: unset

	PlacementX, PlacementY int64
	PlacementCell          *wire.StringRef

	Layer, Datatype *uint64

	TextLayer, TextDatatype *uint64
	TextX, TextY            int64
	TextString              *wire.StringRef

	GeometryX, GeometryY int64
	XYRelative           bool
	GeometryW, GeometryH *uint64

	PolygonPointList *wire.PointList

	PathHalfWidth      *uint64
	PathPointList      *wire.PointList
	PathExtensionStart *PathExtension
	PathExtensionEnd   *PathExtension

	CTrapezoidType *uint64

	CircleRadius *uint64

	PropertyValueList  *[]wire.PropValue
	PropertyName       *wire.StringRef
	PropertyIsStandard *bool
}

// NewModals returns a fresh, reset modal bank.
func NewModals() *Modals {
	m := &Modals{}
	m.Reset()
	return m
}

// Reset restores every modal variable to its format-defined default: zero
// for the three coordinate pairs, false for XYRelative, unset (nil) for
// everything else.
func (m *Modals) Reset() {
	*m = Modals{}
}

// identityClone is the clone hook for field types that are already
// self-contained once copied out of a pointer (no slice or pointer members
// of their own), so a plain value copy is already a deep copy.
func identityClone[T any](v T) T { return v }

// mergeField records *r into *m when *r is set, or fills *r from *m when
// *r is unset; it is an error for both to be unset.
// This mirrors the reference implementation's adjust_field.
func mergeField[T any](r **T, m **T) error {
	return mergeFieldClone(r, m, identityClone[T])
}

// mergeFieldClone is mergeField generalized with a clone hook, for field
// types that own a slice (wire.PointList, []wire.PropValue): spec.md §4.1
// requires assigning a deep copy between record and modal so later modal
// updates can't mutate an already-produced record, or vice versa, the way
// mergeRepetition already does via Repetition.Clone.
func mergeFieldClone[T any](r **T, m **T, clone func(T) T) error {
	if *r != nil {
		v := clone(**r)
		*m = &v
		return nil
	}
	if *m != nil {
		v := clone(**m)
		*r = &v
		return nil
	}
	return unfillableField("unfillable modal field")
}

// dedupFieldFunc clears *r when it equals *m (so the record can omit it on
// the wire), or updates *m when it differs; equal is supplied because
// several of our optional types (point lists, repetitions, property value
// lists) aren't Go-comparable with ==. Mirrors dedup_field.
func dedupFieldFunc[T any](r **T, m **T, equal func(a, b T) bool) error {
	return dedupFieldCloneFunc(r, m, equal, identityClone[T])
}

// dedupFieldCloneFunc is dedupFieldFunc generalized with a clone hook, for
// the same aggregate field types mergeFieldClone handles.
func dedupFieldCloneFunc[T any](r **T, m **T, equal func(a, b T) bool, clone func(T) T) error {
	if *r != nil {
		if *m != nil && equal(**m, **r) {
			*r = nil
		} else {
			v := clone(**r)
			*m = &v
		}
		return nil
	}
	if *m == nil {
		return unfillableField("unfillable modal field")
	}
	return nil
}

func dedupField[T comparable](r **T, m **T) error {
	return dedupFieldFunc(r, m, func(a, b T) bool { return a == b })
}

// mergeCoordinates implements adjust_coordinates: when the modal xy mode is
// relative, a present record coordinate is treated as a delta and the
// modal is added in; otherwise coordinates behave like any other field.
func mergeCoordinates(rx, ry **int64, relative bool, mx, my *int64) {
	if *rx != nil {
		if relative {
			v := **rx + *mx
			*rx = &v
		} else {
			*mx = **rx
		}
	} else {
		v := *mx
		*rx = &v
	}
	if *ry != nil {
		if relative {
			v := **ry + *my
			*ry = &v
		} else {
			*my = **ry
		}
	} else {
		v := *my
		*ry = &v
	}
}

// dedupCoordinates implements dedup_coordinates.
func dedupCoordinates(rx, ry **int64, relative bool, mx, my *int64) {
	if *rx != nil {
		if relative {
			v := **rx - *mx
			*rx = &v
		} else if **rx == *mx {
			*rx = nil
		} else {
			*mx = **rx
		}
	}
	if *ry != nil {
		if relative {
			v := **ry - *my
			*ry = &v
		} else if **ry == *my {
			*ry = nil
		} else {
			*my = **ry
		}
	}
}

// mergeRepetition implements adjust_repetition: a ReuseRepetition is
// replaced by the modal value (an error if none is set); any other
// repetition becomes the new modal value.
func mergeRepetition(rep *wire.Repetition, modal *wire.Repetition) error {
	if *rep == nil {
		return nil
	}
	if _, reuse := (*rep).(wire.ReuseRepetition); reuse {
		if *modal == nil {
			return unfillableRepetition("unfillable repetition")
		}
		*rep = (*modal).Clone()
		return nil
	}
	*modal = (*rep).Clone()
	return nil
}

// dedupRepetition implements dedup_repetition.
func dedupRepetition(rep *wire.Repetition, modal *wire.Repetition) error {
	if *rep == nil {
		return nil
	}
	if _, reuse := (*rep).(wire.ReuseRepetition); reuse {
		if *modal == nil {
			return unfillableRepetition("unfillable repetition")
		}
		return nil
	}
	if *modal != nil && (*rep).Equal(*modal) {
		*rep = wire.ReuseRepetition{}
	} else {
		*modal = (*rep).Clone()
	}
	return nil
}
