// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"
)

// TableEntry locates one of the file's six name tables (cellname,
// textstring, propname, propstring, layername, xname): whether the table
// is strictly ordered, where it starts, and how many entries it holds.
type TableEntry struct {
	Strict bool
	Offset uint64
	Count  uint64
}

// OffsetTable is the fixed, six-entry directory that lets a reader locate
// every name table without a full linear scan.
type OffsetTable struct {
	CellName   TableEntry
	TextString TableEntry
	PropName   TableEntry
	PropString TableEntry
	LayerName  TableEntry
	XName      TableEntry
}

func (t *OffsetTable) entries() [6]*TableEntry {
	return [6]*TableEntry{&t.CellName, &t.TextString, &t.PropName, &t.PropString, &t.LayerName, &t.XName}
}

// ReadOffsetTable reads the fixed-layout offset table.
func ReadOffsetTable(r ByteReader) (OffsetTable, error) {
	var t OffsetTable
	for _, e := range t.entries() {
		strict, err := ReadUint(r)
		if err != nil {
			return OffsetTable{}, errors.Wrap(err, "wire.ReadOffsetTable: strict flag")
		}
		offset, err := ReadUint(r)
		if err != nil {
			return OffsetTable{}, errors.Wrap(err, "wire.ReadOffsetTable: offset")
		}
		count, err := ReadUint(r)
		if err != nil {
			return OffsetTable{}, errors.Wrap(err, "wire.ReadOffsetTable: count")
		}
		*e = TableEntry{Strict: strict != 0, Offset: offset, Count: count}
	}
	return t, nil
}

// WriteOffsetTable writes the fixed-layout offset table.
func WriteOffsetTable(w io.Writer, t OffsetTable) (int, error) {
	size := 0
	for _, e := range t.entries() {
		strict := uint64(0)
		if e.Strict {
			strict = 1
		}
		n, err := WriteUint(w, strict)
		if err != nil {
			return 0, err
		}
		size += n
		n, err = WriteUint(w, e.Offset)
		if err != nil {
			return 0, err
		}
		size += n
		n, err = WriteUint(w, e.Count)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}
