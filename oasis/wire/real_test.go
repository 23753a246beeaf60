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

func TestRealRoundTrip(t *testing.T) {
	reals := []wire.Real{
		{Kind: wire.RealPositiveInteger, Int: 42},
		{Kind: wire.RealNegativeInteger, Int: 7},
		{Kind: wire.RealPositiveReciprocal, Int: 3},
		{Kind: wire.RealNegativeReciprocal, Int: 9},
		{Kind: wire.RealPositiveRatio, Num: 3, Den: 4},
		{Kind: wire.RealNegativeRatio, Num: 5, Den: 6},
		{Kind: wire.RealFloat32, F32: 1.5},
		wire.RealFromFloat64(3.25),
	}
	for _, r := range reals {
		var buf bytes.Buffer
		_, err := wire.WriteReal(&buf, r)
		require.NoError(t, err)
		got, err := wire.ReadReal(&buf)
		require.NoError(t, err)
		require.Equal(t, r, got)
	}
}

func TestRealFloat64Value(t *testing.T) {
	require.Equal(t, 0.5, wire.Real{Kind: wire.RealPositiveReciprocal, Int: 2}.Float64())
	require.Equal(t, -2.0, wire.Real{Kind: wire.RealNegativeInteger, Int: 2}.Float64())
	require.Equal(t, 0.75, wire.Real{Kind: wire.RealPositiveRatio, Num: 3, Den: 4}.Float64())
}
