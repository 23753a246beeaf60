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

func TestNewPolygonRejectsFewerThanThreeVertices(t *testing.T) {
	pl := &wire.PointList{Kind: wire.PointListAllAngle, Points: []wire.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}}
	_, err := NewPolygon(pl, nil, nil, nil, nil, nil)
	require.Error(t, err)
}

func TestPolygonWriteReadRoundTrip(t *testing.T) {
	pl := wire.PointList{Kind: wire.PointListAllAngle, Points: []wire.Point{{X: 1, Y: 1}, {X: 2, Y: -1}, {X: -3, Y: 0}}}
	rec := Polygon{
		PointList: &pl,
		Layer:     uptr(1), Datatype: uptr(2),
		X: iptr(0), Y: iptr(0),
	}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	p, ok := got.(*Polygon)
	require.True(t, ok)
	require.Equal(t, pl, *p.PointList)
}

func TestPolygonWriteRejectsTooFewVertices(t *testing.T) {
	pl := wire.PointList{Kind: wire.PointListAllAngle, Points: []wire.Point{{X: 1, Y: 1}}}
	rec := Polygon{PointList: &pl}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.Error(t, err)
}
