// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// CellName is record id 3 (implicit numbering) or 4 (explicit reference
// number): registers a cell name in the file's cellname table.
type CellName struct {
	NString         wire.NString
	ReferenceNumber *uint64
}

func (CellName) MergeWithModals(m *Modals) error        { m.Reset(); return nil }
func (CellName) DeduplicateWithModals(m *Modals) error   { m.Reset(); return nil }

func (c CellName) Write(w io.Writer) (int, error) {
	id := uint64(3)
	if c.ReferenceNumber != nil {
		id = 4
	}
	size, err := wire.WriteUint(w, id)
	if err != nil {
		return 0, err
	}
	n, err := c.NString.Write(w)
	if err != nil {
		return 0, err
	}
	size += n
	if c.ReferenceNumber != nil {
		n, err = wire.WriteUint(w, *c.ReferenceNumber)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readCellName(r wire.ByteReader, id uint64) (Record, error) {
	if id != 3 && id != 4 {
		return nil, unexpectedID("invalid record id %d for CellName", id)
	}
	s, err := wire.ReadNString(r)
	if err != nil {
		return nil, err
	}
	var ref *uint64
	if id == 4 {
		n, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		ref = &n
	}
	return CellName{NString: s, ReferenceNumber: ref}, nil
}

// PropName is record id 7/8: registers a property name.
type PropName struct {
	NString         wire.NString
	ReferenceNumber *uint64
}

func (PropName) MergeWithModals(m *Modals) error        { m.Reset(); return nil }
func (PropName) DeduplicateWithModals(m *Modals) error   { m.Reset(); return nil }

func (p PropName) Write(w io.Writer) (int, error) {
	id := uint64(7)
	if p.ReferenceNumber != nil {
		id = 8
	}
	size, err := wire.WriteUint(w, id)
	if err != nil {
		return 0, err
	}
	n, err := p.NString.Write(w)
	if err != nil {
		return 0, err
	}
	size += n
	if p.ReferenceNumber != nil {
		n, err = wire.WriteUint(w, *p.ReferenceNumber)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readPropName(r wire.ByteReader, id uint64) (Record, error) {
	if id != 7 && id != 8 {
		return nil, unexpectedID("invalid record id %d for PropName", id)
	}
	s, err := wire.ReadNString(r)
	if err != nil {
		return nil, err
	}
	var ref *uint64
	if id == 8 {
		n, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		ref = &n
	}
	return PropName{NString: s, ReferenceNumber: ref}, nil
}

// TextString is record id 5/6: registers a text string.
type TextString struct {
	AString         wire.AString
	ReferenceNumber *uint64
}

func (TextString) MergeWithModals(m *Modals) error        { m.Reset(); return nil }
func (TextString) DeduplicateWithModals(m *Modals) error   { m.Reset(); return nil }

func (t TextString) Write(w io.Writer) (int, error) {
	id := uint64(5)
	if t.ReferenceNumber != nil {
		id = 6
	}
	size, err := wire.WriteUint(w, id)
	if err != nil {
		return 0, err
	}
	n, err := t.AString.Write(w)
	if err != nil {
		return 0, err
	}
	size += n
	if t.ReferenceNumber != nil {
		n, err = wire.WriteUint(w, *t.ReferenceNumber)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readTextString(r wire.ByteReader, id uint64) (Record, error) {
	if id != 5 && id != 6 {
		return nil, unexpectedID("invalid record id %d for TextString", id)
	}
	s, err := wire.ReadAString(r)
	if err != nil {
		return nil, err
	}
	var ref *uint64
	if id == 6 {
		n, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		ref = &n
	}
	return TextString{AString: s, ReferenceNumber: ref}, nil
}

// PropString is record id 9/10: registers a reusable property value string.
type PropString struct {
	AString         wire.AString
	ReferenceNumber *uint64
}

func (PropString) MergeWithModals(m *Modals) error        { m.Reset(); return nil }
func (PropString) DeduplicateWithModals(m *Modals) error   { m.Reset(); return nil }

func (p PropString) Write(w io.Writer) (int, error) {
	id := uint64(9)
	if p.ReferenceNumber != nil {
		id = 10
	}
	size, err := wire.WriteUint(w, id)
	if err != nil {
		return 0, err
	}
	n, err := p.AString.Write(w)
	if err != nil {
		return 0, err
	}
	size += n
	if p.ReferenceNumber != nil {
		n, err = wire.WriteUint(w, *p.ReferenceNumber)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readPropString(r wire.ByteReader, id uint64) (Record, error) {
	if id != 9 && id != 10 {
		return nil, unexpectedID("invalid record id %d for PropString", id)
	}
	s, err := wire.ReadAString(r)
	if err != nil {
		return nil, err
	}
	var ref *uint64
	if id == 10 {
		n, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		ref = &n
	}
	return PropString{AString: s, ReferenceNumber: ref}, nil
}
