// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"bytes"
	"io"
	"math"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Pad is record id 0: a no-op record with no payload, used as filler.
type Pad struct{}

func (Pad) MergeWithModals(*Modals) error        { return nil }
func (Pad) DeduplicateWithModals(*Modals) error   { return nil }
func (Pad) Write(w io.Writer) (int, error)        { return wire.WriteUint(w, 0) }

func readPad(r wire.ByteReader, id uint64) (Record, error) {
	if id != 0 {
		return nil, unexpectedID("invalid record id %d for Pad", id)
	}
	return Pad{}, nil
}

// XYMode is record id 15 (absolute) or 16 (relative): sets the modal xy
// mode consulted by every coordinate-bearing record that follows.
type XYMode struct {
	Relative bool
}

func (x XYMode) MergeWithModals(m *Modals) error {
	m.XYRelative = x.Relative
	return nil
}

func (XYMode) DeduplicateWithModals(*Modals) error { return nil }

func (x XYMode) Write(w io.Writer) (int, error) {
	id := uint64(15)
	if x.Relative {
		id = 16
	}
	return wire.WriteUint(w, id)
}

func readXYMode(r wire.ByteReader, id uint64) (Record, error) {
	if id != 15 && id != 16 {
		return nil, unexpectedID("invalid record id %d for XYMode", id)
	}
	return XYMode{Relative: id == 16}, nil
}

// Start is record id 1: the file header. Version must be the literal
// string "1.0"; Unit is the number of grid steps per micron and must be
// positive and finite. OffsetTable is nil when the table is instead
// carried by the trailing End record.
type Start struct {
	Version     wire.AString
	Unit        wire.Real
	OffsetTable *wire.OffsetTable
}

// NewStart builds a Start record, validating Unit and defaulting Version
// to "1.0" the way the reference constructor does.
func NewStart(unit wire.Real, version wire.AString, table *wire.OffsetTable) (*Start, error) {
	u := unit.Float64()
	if u <= 0 {
		return nil, malformedRecord("non-positive unit: %v", u)
	}
	if math.IsNaN(u) {
		return nil, malformedRecord("NaN unit")
	}
	if math.IsInf(u, 0) {
		return nil, malformedRecord("non-finite unit")
	}
	if version == "" {
		version = "1.0"
	}
	if version != "1.0" {
		return nil, malformedRecord("invalid version string, only \"1.0\" is allowed: %s", version)
	}
	return &Start{Version: version, Unit: unit, OffsetTable: table}, nil
}

func (Start) MergeWithModals(m *Modals) error {
	m.Reset()
	return nil
}

func (Start) DeduplicateWithModals(m *Modals) error {
	m.Reset()
	return nil
}

func (s Start) Write(w io.Writer) (int, error) {
	size, err := wire.WriteUint(w, 1)
	if err != nil {
		return 0, err
	}
	n, err := s.Version.Write(w)
	if err != nil {
		return 0, err
	}
	size += n
	n, err = wire.WriteReal(w, s.Unit)
	if err != nil {
		return 0, err
	}
	size += n
	hasTable := uint64(0)
	if s.OffsetTable == nil {
		hasTable = 1
	}
	n, err = wire.WriteUint(w, hasTable)
	if err != nil {
		return 0, err
	}
	size += n
	if s.OffsetTable != nil {
		n, err = wire.WriteOffsetTable(w, *s.OffsetTable)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readStart(r wire.ByteReader, id uint64) (Record, error) {
	if id != 1 {
		return nil, unexpectedID("invalid record id %d for Start", id)
	}
	version, err := wire.ReadAString(r)
	if err != nil {
		return nil, err
	}
	unit, err := wire.ReadReal(r)
	if err != nil {
		return nil, err
	}
	noTable, err := wire.ReadUint(r)
	if err != nil {
		return nil, err
	}
	var table *wire.OffsetTable
	if noTable == 0 {
		t, err := wire.ReadOffsetTable(r)
		if err != nil {
			return nil, err
		}
		table = &t
	}
	rec, err := NewStart(unit, version, table)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// End is record id 2: the file trailer, always padded to exactly 256
// bytes including its validation signature.
type End struct {
	OffsetTable *wire.OffsetTable
	Validation  wire.Validation
}

func (End) MergeWithModals(*Modals) error        { return nil }
func (End) DeduplicateWithModals(*Modals) error   { return nil }

func (e End) Write(w io.Writer) (int, error) {
	var head bytes.Buffer
	size, err := wire.WriteUint(&head, 2)
	if err != nil {
		return 0, err
	}
	if e.OffsetTable != nil {
		n, err := wire.WriteOffsetTable(&head, *e.OffsetTable)
		if err != nil {
			return 0, err
		}
		size += n
	}

	var validationBuf bytes.Buffer
	if _, err := wire.WriteValidation(&validationBuf, e.Validation); err != nil {
		return 0, err
	}

	padLen := 256 - size - validationBuf.Len()
	if padLen <= 0 {
		return 0, malformedRecord("End record has no room for padding: header and validation already take %d of 256 bytes", size+validationBuf.Len())
	}
	pad := make([]byte, padLen)
	for i := range pad[:len(pad)-1] {
		pad[i] = 0x80
	}
	head.Write(pad)
	head.Write(validationBuf.Bytes())
	if _, err := w.Write(head.Bytes()); err != nil {
		return 0, err
	}
	return 256, nil
}

func readEnd(r wire.ByteReader, id uint64, hasOffsetTable bool) (Record, error) {
	if id != 2 {
		return nil, unexpectedID("invalid record id %d for End", id)
	}
	var table *wire.OffsetTable
	if hasOffsetTable {
		t, err := wire.ReadOffsetTable(r)
		if err != nil {
			return nil, err
		}
		table = &t
	}
	// The padding's length prefix is stretched to fill the record, so it
	// can run past the ten bytes ReadUint accepts; decode it byte by byte.
	var padLen uint64
	for shift := uint(0); ; shift += 7 {
		b, err := wire.ReadByte(r)
		if err != nil {
			return nil, err
		}
		padLen |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
	}
	if _, err := io.CopyN(io.Discard, r, int64(padLen)); err != nil {
		return nil, err
	}
	v, err := wire.ReadValidation(r)
	if err != nil {
		return nil, err
	}
	return End{OffsetTable: table, Validation: v}, nil
}
