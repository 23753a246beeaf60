// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Cell is record id 13 (by CellName reference number) or 14 (by literal
// name): opens a new cell and resets the modal bank.
type Cell struct {
	Name wire.StringRef
}

func (Cell) MergeWithModals(m *Modals) error        { m.Reset(); return nil }
func (Cell) DeduplicateWithModals(m *Modals) error   { m.Reset(); return nil }

func (c Cell) Write(w io.Writer) (int, error) {
	if c.Name.IsRef {
		size, err := wire.WriteUint(w, 13)
		if err != nil {
			return 0, err
		}
		n, err := wire.WriteUint(w, c.Name.Ref)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	}
	size, err := wire.WriteUint(w, 14)
	if err != nil {
		return 0, err
	}
	n, err := wire.NString(c.Name.Literal).Write(w)
	if err != nil {
		return 0, err
	}
	return size + n, nil
}

func readCell(r wire.ByteReader, id uint64) (Record, error) {
	switch id {
	case 13:
		n, err := wire.ReadUint(r)
		if err != nil {
			return nil, err
		}
		return Cell{Name: wire.StringRef{IsRef: true, Ref: n}}, nil
	case 14:
		s, err := wire.ReadNString(r)
		if err != nil {
			return nil, err
		}
		return Cell{Name: wire.StringRef{Literal: string(s)}}, nil
	default:
		return nil, unexpectedID("invalid record id %d for Cell", id)
	}
}
