// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCircleWriteReadRoundTrip(t *testing.T) {
	rec := Circle{
		Radius: uptr(50),
		Layer:  uptr(1), Datatype: uptr(0),
		X: iptr(10), Y: iptr(20),
	}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	c, ok := got.(*Circle)
	require.True(t, ok)
	require.Equal(t, uint64(50), *c.Radius)
}

func TestCircleDedupOmitsRepeatedRadius(t *testing.T) {
	m := NewModals()
	first := &Circle{Radius: uptr(50), Layer: uptr(0), Datatype: uptr(0), X: iptr(0), Y: iptr(0)}
	require.NoError(t, first.DeduplicateWithModals(m))

	second := &Circle{Radius: uptr(50), Layer: uptr(0), Datatype: uptr(0), X: iptr(0), Y: iptr(0)}
	require.NoError(t, second.DeduplicateWithModals(m))
	require.Nil(t, second.Radius)
}
