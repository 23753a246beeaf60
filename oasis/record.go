// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package oasis implements the OASIS layout-interchange record layer: the
// record taxonomy, the per-stream modal variable bank records merge with
// (on read) and deduplicate against (on write), and the CBlock
// compressed-substream wrapper. The byte-level primitive codecs live one
// layer down, in package wire.
package oasis

import (
	"io"

	"github.com/pkg/errors"
	"v.io/x/lib/vlog"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Record is the common interface every OASIS record type implements.
type Record interface {
	// MergeWithModals copies every field this record defines into modals,
	// and fills every field it leaves unset from modals. Used when reading:
	// a decoded record's zero-value ("not present on the wire") fields
	// are expanded back to their real value before being handed to a
	// caller.
	MergeWithModals(m *Modals) error
	// DeduplicateWithModals clears any field that equals the current
	// modal value (so Write can omit it) and updates modals with
	// whatever remains. Used when writing.
	DeduplicateWithModals(m *Modals) error
	// Write encodes the record as-is; it does not touch modals.
	Write(w io.Writer) (int, error)
	// Copy returns a deep copy, safe to retain across a subsequent decode
	// that would otherwise overwrite any slice or pointer the record
	// shares with the reader's buffers.
	Copy() Record
}

// DedupWrite deduplicates rec against modals and then writes it, mirroring
// Record.dedup_write in the reference implementation.
func DedupWrite(w io.Writer, rec Record, m *Modals) (int, error) {
	if err := rec.DeduplicateWithModals(m); err != nil {
		return 0, err
	}
	return rec.Write(w)
}

// ReadRecord reads one record's id tag and body. hasOffsetTable is
// consulted only for an End record (id 2), where whether the offset table
// was already written into Start determines whether one follows inline.
func ReadRecord(r wire.ByteReader, hasOffsetTable bool) (Record, error) {
	id, err := wire.ReadUint(r)
	if err != nil {
		return nil, errors.Wrap(err, "oasis.ReadRecord: id")
	}
	vlog.VI(2).Infof("oasis: reading record id %d", id)
	switch id {
	case 0:
		return readPad(r, id)
	case 1:
		return readStart(r, id)
	case 2:
		return readEnd(r, id, hasOffsetTable)
	case 3, 4:
		return readCellName(r, id)
	case 5, 6:
		return readTextString(r, id)
	case 7, 8:
		return readPropName(r, id)
	case 9, 10:
		return readPropString(r, id)
	case 11, 12:
		return readLayerName(r, id)
	case 13, 14:
		return readCell(r, id)
	case 15, 16:
		return readXYMode(r, id)
	case 17, 18:
		return readPlacement(r, id)
	case 19:
		return readText(r, id)
	case 20:
		return readRectangle(r, id)
	case 21:
		return readPolygon(r, id)
	case 22:
		return readPath(r, id)
	case 23, 24, 25:
		return readTrapezoid(r, id)
	case 26:
		return readCTrapezoid(r, id)
	case 27:
		return readCircle(r, id)
	case 28, 29:
		return readProperty(r, id)
	case 30, 31:
		return readXName(r, id)
	case 32:
		return readXElement(r, id)
	case 33:
		return readXGeometry(r, id)
	case 34:
		return readCBlock(r, id)
	default:
		return nil, unexpectedID("unknown record id %d", id)
	}
}

// readRefName decodes a name reference as used by Property and
// Placement: present indicates whether a name was written at all, and ref
// indicates whether it is an explicit reference number rather than a
// literal NString.
func readRefName(r wire.ByteReader, present, ref bool) (*wire.StringRef, error) {
	if !present {
		return nil, nil
	}
	if ref {
		n, err := wire.ReadUint(r)
		if err != nil {
			return nil, errors.Wrap(err, "oasis: reading name reference")
		}
		return &wire.StringRef{IsRef: true, Ref: n}, nil
	}
	s, err := wire.ReadNString(r)
	if err != nil {
		return nil, errors.Wrap(err, "oasis: reading literal name")
	}
	return &wire.StringRef{Literal: string(s)}, nil
}

// writeRefName is readRefName's write-side counterpart; the caller has
// already written the presence/ref flag bits.
func writeRefName(w io.Writer, ref *wire.StringRef) (int, error) {
	if ref.IsRef {
		return wire.WriteUint(w, ref.Ref)
	}
	return wire.NString(ref.Literal).Write(w)
}

// readRefString is readRefName's AString analogue, used by Text.
func readRefString(r wire.ByteReader, present, ref bool) (*wire.StringRef, error) {
	if !present {
		return nil, nil
	}
	if ref {
		n, err := wire.ReadUint(r)
		if err != nil {
			return nil, errors.Wrap(err, "oasis: reading string reference")
		}
		return &wire.StringRef{IsRef: true, Ref: n}, nil
	}
	s, err := wire.ReadAString(r)
	if err != nil {
		return nil, errors.Wrap(err, "oasis: reading literal string")
	}
	return &wire.StringRef{Literal: string(s)}, nil
}

func writeRefString(w io.Writer, ref *wire.StringRef) (int, error) {
	if ref.IsRef {
		return wire.WriteUint(w, ref.Ref)
	}
	return wire.AString(ref.Literal).Write(w)
}

func uptr(v uint64) *uint64 { return &v }
func iptr(v int64) *int64   { return &v }
func bptr(v bool) *bool     { return &v }
