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

func TestTextWriteReadRoundTrip(t *testing.T) {
	rec := Text{
		String: &wire.StringRef{Literal: "hello"},
		Layer:  uptr(3), Datatype: uptr(4),
		X: iptr(10), Y: iptr(-10),
	}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	tr, ok := got.(*Text)
	require.True(t, ok)
	require.Equal(t, "hello", tr.String.Literal)
	require.Equal(t, uint64(3), *tr.Layer)
	require.Equal(t, int64(-10), *tr.Y)
}

func TestTextDedupOmitsRepeatedString(t *testing.T) {
	m := NewModals()
	first := &Text{String: &wire.StringRef{Literal: "X"}, Layer: uptr(0), Datatype: uptr(0), X: iptr(0), Y: iptr(0)}
	require.NoError(t, first.DeduplicateWithModals(m))

	second := &Text{String: &wire.StringRef{Literal: "X"}, Layer: uptr(0), Datatype: uptr(0), X: iptr(0), Y: iptr(0)}
	require.NoError(t, second.DeduplicateWithModals(m))
	require.Nil(t, second.String)
}
