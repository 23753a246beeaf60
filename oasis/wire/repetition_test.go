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

func TestRepetitionRoundTrip(t *testing.T) {
	reps := []wire.Repetition{
		wire.ReuseRepetition{},
		wire.Matrix2D{XDim: 3, YDim: 4, XSpace: 10, YSpace: 20},
		wire.UniformX{Dim: 5, Space: 7},
		wire.UniformY{Dim: 5, Space: 7},
		wire.VaryingXGrid{Grid: 2, Spaces: []uint64{1, 2, 3}},
		wire.VaryingX{Spaces: []uint64{4, 5, 6}},
		wire.VaryingYGrid{Grid: 2, Spaces: []uint64{1, 2, 3}},
		wire.VaryingY{Spaces: []uint64{4, 5, 6}},
		wire.Arbitrary2D{Deltas: []wire.Point{{X: 1, Y: 2}, {X: -3, Y: 4}}},
	}
	for _, rep := range reps {
		var buf bytes.Buffer
		_, err := wire.WriteRepetition(&buf, rep)
		require.NoError(t, err)
		got, err := wire.ReadRepetition(&buf)
		require.NoError(t, err)
		require.True(t, rep.Equal(got), "round trip mismatch: %+v != %+v", rep, got)
	}
}

func TestRepetitionCloneIndependence(t *testing.T) {
	orig := wire.VaryingX{Spaces: []uint64{1, 2, 3}}
	clone := orig.Clone().(wire.VaryingX)
	clone.Spaces[0] = 99
	require.Equal(t, uint64(1), orig.Spaces[0])
}
