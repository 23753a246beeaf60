// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// LayerName is record id 11 (geometry layer) or 12 (text layer): binds a
// name to a range of layer and datatype numbers.
type LayerName struct {
	NString       wire.NString
	LayerInterval wire.Interval
	TypeInterval  wire.Interval
	IsTextLayer   bool
}

func (LayerName) MergeWithModals(m *Modals) error        { m.Reset(); return nil }
func (LayerName) DeduplicateWithModals(m *Modals) error   { m.Reset(); return nil }

func (l LayerName) Write(w io.Writer) (int, error) {
	id := uint64(11)
	if l.IsTextLayer {
		id = 12
	}
	size, err := wire.WriteUint(w, id)
	if err != nil {
		return 0, err
	}
	n, err := l.NString.Write(w)
	if err != nil {
		return 0, err
	}
	size += n
	n, err = wire.WriteInterval(w, l.LayerInterval)
	if err != nil {
		return 0, err
	}
	size += n
	n, err = wire.WriteInterval(w, l.TypeInterval)
	if err != nil {
		return 0, err
	}
	size += n
	return size, nil
}

func readLayerName(r wire.ByteReader, id uint64) (Record, error) {
	if id != 11 && id != 12 {
		return nil, unexpectedID("invalid record id %d for LayerName", id)
	}
	s, err := wire.ReadNString(r)
	if err != nil {
		return nil, err
	}
	layerInterval, err := wire.ReadInterval(r)
	if err != nil {
		return nil, err
	}
	typeInterval, err := wire.ReadInterval(r)
	if err != nil {
		return nil, err
	}
	return LayerName{
		NString:       s,
		LayerInterval: layerInterval,
		TypeInterval:  typeInterval,
		IsTextLayer:   id == 12,
	}, nil
}
