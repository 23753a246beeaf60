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

func TestPadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	_, err := Pad{}.Write(&buf)
	require.NoError(t, err)
	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	_, ok := got.(Pad)
	require.True(t, ok)
}

func TestXYModeRoundTrip(t *testing.T) {
	for _, relative := range []bool{false, true} {
		var buf bytes.Buffer
		rec := XYMode{Relative: relative}
		_, err := rec.Write(&buf)
		require.NoError(t, err)
		got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
		require.NoError(t, err)
		x, ok := got.(XYMode)
		require.True(t, ok)
		require.Equal(t, relative, x.Relative)
	}
}

func TestXYModeSetsModalXYRelative(t *testing.T) {
	m := NewModals()
	require.NoError(t, XYMode{Relative: true}.MergeWithModals(m))
	require.True(t, m.XYRelative)
}

func TestNewStartRejectsInvalidUnit(t *testing.T) {
	_, err := NewStart(wire.Real{Kind: wire.RealPositiveInteger, Int: 0}, "1.0", nil)
	require.Error(t, err)
}

func TestNewStartRejectsWrongVersion(t *testing.T) {
	_, err := NewStart(wire.Real{Kind: wire.RealPositiveInteger, Int: 1000}, "2.0", nil)
	require.Error(t, err)
}

func TestStartRoundTrip(t *testing.T) {
	start, err := NewStart(wire.Real{Kind: wire.RealPositiveInteger, Int: 1000}, "1.0", nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = start.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	s, ok := got.(*Start)
	require.True(t, ok)
	require.Equal(t, wire.AString("1.0"), s.Version)
	require.Nil(t, s.OffsetTable)
}

func TestEndIsAlways256Bytes(t *testing.T) {
	e := End{Validation: wire.Validation{Scheme: wire.ValidationNone}}
	var buf bytes.Buffer
	n, err := e.Write(&buf)
	require.NoError(t, err)
	require.Equal(t, 256, n)
	require.Equal(t, 256, buf.Len())
}

func TestEndRoundTrip(t *testing.T) {
	e := End{Validation: wire.Validation{Scheme: wire.ValidationCRC32, Signature: 0x1234}}
	var buf bytes.Buffer
	_, err := e.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	gotEnd, ok := got.(End)
	require.True(t, ok)
	require.Equal(t, e.Validation, gotEnd.Validation)
}
