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

func TestCellLiteralRoundTrip(t *testing.T) {
	rec := Cell{Name: wire.StringRef{Literal: "TOPCELL"}}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	c, ok := got.(Cell)
	require.True(t, ok)
	require.Equal(t, "TOPCELL", c.Name.Literal)
}

func TestCellRefRoundTrip(t *testing.T) {
	rec := Cell{Name: wire.StringRef{IsRef: true, Ref: 5}}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	c, ok := got.(Cell)
	require.True(t, ok)
	require.True(t, c.Name.IsRef)
	require.Equal(t, uint64(5), c.Name.Ref)
}

func TestCellResetsModalBank(t *testing.T) {
	m := NewModals()
	m.Layer = uptr(7)
	require.NoError(t, Cell{Name: wire.StringRef{Literal: "X"}}.MergeWithModals(m))
	require.Nil(t, m.Layer)
}
