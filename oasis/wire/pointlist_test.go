// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

func TestPointListRoundTrip(t *testing.T) {
	lists := []wire.PointList{
		{Kind: wire.PointListManhattanHFirst, Points: []wire.Point{{X: 3}, {Y: 4}, {X: -5}}},
		{Kind: wire.PointListManhattanVFirst, Points: []wire.Point{{Y: 3}, {X: 4}, {Y: -5}}},
		{Kind: wire.PointListManhattan, Points: []wire.Point{{X: 3}, {Y: -4}, {X: -5}}},
		{Kind: wire.PointListOctangular, Points: []wire.Point{{X: 3}, {X: 4, Y: 4}, {X: -5, Y: 5}}},
		{Kind: wire.PointListAllAngle, Points: []wire.Point{{X: 3, Y: 7}, {X: -5, Y: -11}}},
		{Kind: wire.PointListAllAngleDoubleDelta, Points: []wire.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 0, Y: 0}}},
	}
	for _, pl := range lists {
		var buf bytes.Buffer
		_, err := wire.WritePointList(&buf, pl)
		require.NoError(t, err)
		got, err := wire.ReadPointList(&buf)
		require.NoError(t, err)
		require.Equal(t, pl, got)
	}
}

func TestWritePointListRejectsUnalignedDelta(t *testing.T) {
	pl := wire.PointList{Kind: wire.PointListManhattan, Points: []wire.Point{{X: 3, Y: 4}}}
	var buf bytes.Buffer
	_, err := wire.WritePointList(&buf, pl)
	require.Error(t, err)
}
