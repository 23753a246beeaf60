// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRectangleRejectsSquareWithHeight(t *testing.T) {
	_, err := NewRectangle(true, uptr(5), uptr(5), nil, nil, nil, nil, nil)
	require.Error(t, err)
}

func TestRectangleWriteReadRoundTrip(t *testing.T) {
	rec := &Rectangle{
		IsSquare: false,
		Width:    uptr(10),
		Height:   uptr(20),
		Layer:    uptr(1),
		Datatype: uptr(2),
		X:        iptr(5),
		Y:        iptr(6),
	}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)

	gotRec, ok := got.(*Rectangle)
	require.True(t, ok)
	require.Equal(t, *rec.Width, *gotRec.Width)
	require.Equal(t, *rec.Height, *gotRec.Height)
	require.Equal(t, *rec.X, *gotRec.X)
	require.Equal(t, *rec.Y, *gotRec.Y)
}

func TestRectangleSquareMergesWidthIntoHeightModal(t *testing.T) {
	m := NewModals()
	rec := &Rectangle{IsSquare: true, Width: uptr(7), Layer: uptr(0), Datatype: uptr(0), X: iptr(0), Y: iptr(0)}
	require.NoError(t, rec.MergeWithModals(m))
	require.NotNil(t, m.GeometryW)
	require.NotNil(t, m.GeometryH)
	require.Equal(t, uint64(7), *m.GeometryW)
	require.Equal(t, uint64(7), *m.GeometryH)
}

func TestRectangleDedupOmitsRepeatedWidth(t *testing.T) {
	m := NewModals()
	first := &Rectangle{Width: uptr(10), Height: uptr(20), Layer: uptr(0), Datatype: uptr(0), X: iptr(0), Y: iptr(0)}
	require.NoError(t, first.DeduplicateWithModals(m))

	second := &Rectangle{Width: uptr(10), Height: uptr(20), Layer: uptr(0), Datatype: uptr(0), X: iptr(0), Y: iptr(0)}
	require.NoError(t, second.DeduplicateWithModals(m))
	require.Nil(t, second.Width)
	require.Nil(t, second.Height)
}
