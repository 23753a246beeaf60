// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

func TestPropertyExplicitRoundTrip(t *testing.T) {
	standard := false
	values := []wire.PropValue{
		{Kind: wire.PropValueUnsignedInteger, Int: 7},
		{Kind: wire.PropValueAString, Str: wire.StringRef{Literal: "note"}},
	}
	rec := Property{
		Name:       &wire.StringRef{Literal: "COMMENT"},
		Values:     &values,
		IsStandard: &standard,
	}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	p, ok := got.(*Property)
	require.True(t, ok)
	require.Equal(t, "COMMENT", p.Name.Literal)
	require.Equal(t, values, *p.Values)
	require.False(t, *p.IsStandard)
}

func TestPropertyModalRepeatRoundTrip(t *testing.T) {
	rec := Property{}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	p, ok := got.(*Property)
	require.True(t, ok)
	require.Nil(t, p.Name)
	require.Nil(t, p.Values)
}

func TestPropertyDedupClearsRepeatedValues(t *testing.T) {
	m := NewModals()
	standard := false
	values := []wire.PropValue{{Kind: wire.PropValueUnsignedInteger, Int: 1}}

	first := &Property{Name: &wire.StringRef{Literal: "X"}, Values: &values, IsStandard: &standard}
	require.NoError(t, first.DeduplicateWithModals(m))

	second := &Property{Name: &wire.StringRef{Literal: "X"}, Values: &values, IsStandard: &standard}
	require.NoError(t, second.DeduplicateWithModals(m))
	require.Nil(t, second.Name)
	require.Nil(t, second.Values)
	require.Nil(t, second.IsStandard)
}
