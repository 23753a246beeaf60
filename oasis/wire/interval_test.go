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

func TestIntervalRoundTrip(t *testing.T) {
	intervals := []wire.Interval{
		{Kind: wire.IntervalAll},
		{Kind: wire.IntervalLowerOnly, Lower: 3},
		{Kind: wire.IntervalUpperOnly, Upper: 9},
		{Kind: wire.IntervalBounded, Lower: 2, Upper: 8},
		{Kind: wire.IntervalPoint, Lower: 4, Upper: 4},
	}
	for _, iv := range intervals {
		var buf bytes.Buffer
		_, err := wire.WriteInterval(&buf, iv)
		require.NoError(t, err)
		got, err := wire.ReadInterval(&buf)
		require.NoError(t, err)
		require.Equal(t, iv, got)
	}
}
