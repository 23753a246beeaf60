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

func TestLayerNameRoundTrip(t *testing.T) {
	rec := LayerName{
		NString:       "METAL1",
		LayerInterval: wire.Interval{Kind: wire.IntervalBounded, Lower: 1, Upper: 1},
		TypeInterval:  wire.Interval{Kind: wire.IntervalAll},
		IsTextLayer:   false,
	}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	l, ok := got.(LayerName)
	require.True(t, ok)
	require.Equal(t, "METAL1", string(l.NString))
	require.False(t, l.IsTextLayer)
	require.Equal(t, rec.LayerInterval, l.LayerInterval)
}

func TestLayerNameTextLayerRoundTrip(t *testing.T) {
	rec := LayerName{
		NString:       "LABEL1",
		LayerInterval: wire.Interval{Kind: wire.IntervalAll},
		TypeInterval:  wire.Interval{Kind: wire.IntervalAll},
		IsTextLayer:   true,
	}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	l, ok := got.(LayerName)
	require.True(t, ok)
	require.True(t, l.IsTextLayer)
}
