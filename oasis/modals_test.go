// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

func TestMergeFieldFillsFromModal(t *testing.T) {
	var r *uint64
	m := uptr(42)
	require.NoError(t, mergeField(&r, &m))
	require.Equal(t, uint64(42), *r)
}

func TestMergeFieldErrorsWhenBothUnset(t *testing.T) {
	var r, m *uint64
	require.Error(t, mergeField(&r, &m))
}

func TestDedupFieldClearsWhenEqualToModal(t *testing.T) {
	m := uptr(5)
	r := uptr(5)
	require.NoError(t, dedupField(&r, &m))
	require.Nil(t, r)
}

func TestDedupFieldUpdatesModalWhenDifferent(t *testing.T) {
	m := uptr(5)
	r := uptr(6)
	require.NoError(t, dedupField(&r, &m))
	require.NotNil(t, r)
	require.Equal(t, uint64(6), *m)
}

func TestMergeRepetitionReuseWithoutModalErrors(t *testing.T) {
	var rep wire.Repetition = wire.ReuseRepetition{}
	var modal wire.Repetition
	require.Error(t, mergeRepetition(&rep, &modal))
}

func TestMergeRepetitionReuseFillsFromModal(t *testing.T) {
	var rep wire.Repetition = wire.ReuseRepetition{}
	var modal wire.Repetition = wire.UniformX{Dim: 3, Space: 4}
	require.NoError(t, mergeRepetition(&rep, &modal))
	require.Equal(t, wire.UniformX{Dim: 3, Space: 4}, rep)
}

func TestDedupRepetitionCollapsesToReuse(t *testing.T) {
	var modal wire.Repetition = wire.UniformX{Dim: 3, Space: 4}
	var rep wire.Repetition = wire.UniformX{Dim: 3, Space: 4}
	require.NoError(t, dedupRepetition(&rep, &modal))
	_, isReuse := rep.(wire.ReuseRepetition)
	require.True(t, isReuse)
}

func TestMergeCoordinatesRelativeAddsModal(t *testing.T) {
	x := iptr(5)
	y := iptr(7)
	mx, my := int64(100), int64(200)
	mergeCoordinates(&x, &y, true, &mx, &my)
	require.Equal(t, int64(105), *x)
	require.Equal(t, int64(207), *y)
}

func TestDedupCoordinatesAbsoluteClearsWhenUnchanged(t *testing.T) {
	x := iptr(100)
	y := iptr(200)
	mx, my := int64(100), int64(200)
	dedupCoordinates(&x, &y, false, &mx, &my)
	require.Nil(t, x)
	require.Nil(t, y)
}

func TestMergeFieldCloneDoesNotAliasModal(t *testing.T) {
	r := &wire.PointList{Kind: wire.PointListOctangular, Points: []wire.Point{{X: 1, Y: 2}}}
	var m *wire.PointList
	require.NoError(t, mergeFieldClone(&r, &m, clonePointListValue))
	require.NotSame(t, r, m)
	m.Points[0].X = 99
	require.Equal(t, int64(1), r.Points[0].X)
}

func TestDedupFieldCloneFuncDoesNotAliasModal(t *testing.T) {
	r := &wire.PointList{Kind: wire.PointListOctangular, Points: []wire.Point{{X: 1, Y: 2}}}
	var m *wire.PointList
	require.NoError(t, dedupFieldCloneFunc(&r, &m, pointListEqual, clonePointListValue))
	require.NotNil(t, m)
	m.Points[0].Y = 99
	require.Equal(t, int64(2), r.Points[0].Y)
}
