// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"io"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// Property is record id 28 (explicit fields) or 29 (pure modal repeat):
// attaches a name/value-list pair, either of its own or standard
// (OASIS-reserved), to the record stream.
type Property struct {
	Name       *wire.StringRef
	Values     *[]wire.PropValue
	IsStandard *bool
}

func propValuesEqual(a, b []wire.PropValue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (p *Property) MergeWithModals(m *Modals) error {
	if err := mergeField(&p.Name, &m.PropertyName); err != nil {
		return err
	}
	if err := mergeFieldClone(&p.Values, &m.PropertyValueList, clonePropValueListValue); err != nil {
		return err
	}
	return mergeField(&p.IsStandard, &m.PropertyIsStandard)
}

func (p *Property) DeduplicateWithModals(m *Modals) error {
	if err := dedupFieldFunc(&p.Name, &m.PropertyName, func(a, b wire.StringRef) bool { return a == b }); err != nil {
		return err
	}
	if err := dedupFieldCloneFunc(&p.Values, &m.PropertyValueList, func(a, b []wire.PropValue) bool {
		return propValuesEqual(a, b)
	}, clonePropValueListValue); err != nil {
		return err
	}
	if p.Values == nil && p.Name == nil {
		return dedupField(&p.IsStandard, &m.PropertyIsStandard)
	}
	if p.IsStandard != nil {
		v := *p.IsStandard
		m.PropertyIsStandard = &v
	}
	return nil
}

func (p Property) Write(w io.Writer) (int, error) {
	if p.IsStandard == nil && p.Values == nil && p.Name == nil {
		return wire.WriteUint(w, 29)
	}
	if p.IsStandard == nil {
		return 0, malformedRecord("property has value or name but no is_standard flag")
	}

	var uu uint64
	v := false
	if p.Values != nil {
		count := uint64(len(*p.Values))
		if count >= 0x0f {
			uu = 0x0f
		} else {
			uu = count
		}
	} else {
		v = true
	}

	c := p.Name != nil
	n := c && p.Name.IsRef
	s := *p.IsStandard

	size, err := wire.WriteUint(w, 28)
	if err != nil {
		return 0, err
	}
	header := byte(uu<<4) | boolBit(v)<<3 | boolBit(c)<<2 | boolBit(n)<<1 | boolBit(s)
	hn, err := wire.WriteByte(w, header)
	if err != nil {
		return 0, err
	}
	size += hn

	if c {
		wn, err := writeRefName(w, p.Name)
		if err != nil {
			return 0, err
		}
		size += wn
	}
	if !v {
		if uu == 0x0f {
			wn, err := wire.WriteUint(w, uint64(len(*p.Values)))
			if err != nil {
				return 0, err
			}
			size += wn
		}
		for _, val := range *p.Values {
			wn, err := wire.WritePropValue(w, val)
			if err != nil {
				return 0, err
			}
			size += wn
		}
	}
	return size, nil
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func readProperty(r wire.ByteReader, id uint64) (Record, error) {
	if id != 28 && id != 29 {
		return nil, unexpectedID("invalid record id %d for Property", id)
	}
	if id == 29 {
		return &Property{}, nil
	}
	b, err := wire.ReadByte(r)
	if err != nil {
		return nil, err
	}
	uu := uint64(0x0f & (b >> 4))
	vv := (b >> 3) & 1
	cc := (b >> 2) & 1
	nn := (b >> 1) & 1
	ss := b & 1

	name, err := readRefName(r, cc != 0, nn != 0)
	if err != nil {
		return nil, err
	}

	var values *[]wire.PropValue
	if vv == 0 {
		count := uu
		if uu == 0x0f {
			count, err = wire.ReadUint(r)
			if err != nil {
				return nil, err
			}
		}
		vs := make([]wire.PropValue, count)
		for i := range vs {
			vs[i], err = wire.ReadPropValue(r)
			if err != nil {
				return nil, err
			}
		}
		values = &vs
	} else if uu != 0 {
		return nil, malformedHeader("malformed property record header")
	}

	isStandard := ss != 0
	return &Property{Name: name, Values: values, IsStandard: &isStandard}, nil
}
