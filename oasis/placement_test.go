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

func TestPlacementQuantizedAngleUsesID17(t *testing.T) {
	angle := wire.RealFromFloat64(180)
	rec := Placement{
		Name:  &wire.StringRef{Literal: "CELL"},
		Angle: &angle,
		X:     iptr(1), Y: iptr(2),
	}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)
	require.Equal(t, byte(17), buf.Bytes()[0])

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	p, ok := got.(*Placement)
	require.True(t, ok)
	require.Equal(t, 180.0, p.Angle.Float64())
	require.Equal(t, "CELL", p.Name.Literal)
}

func TestPlacementExplicitMagnificationUsesID18(t *testing.T) {
	angle := wire.RealFromFloat64(45)
	mag := wire.RealFromFloat64(2.5)
	rec := Placement{
		Name:          &wire.StringRef{Literal: "CELL"},
		Angle:         &angle,
		Magnification: &mag,
		X:             iptr(1), Y: iptr(2),
	}
	var buf bytes.Buffer
	_, err := rec.Write(&buf)
	require.NoError(t, err)
	require.Equal(t, byte(18), buf.Bytes()[0])

	got, err := ReadRecord(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	p, ok := got.(*Placement)
	require.True(t, ok)
	require.Equal(t, 45.0, p.Angle.Float64())
	require.Equal(t, 2.5, p.Magnification.Float64())
}

func TestPlacementMergeFillsFromModalCell(t *testing.T) {
	m := NewModals()
	m.PlacementCell = &wire.StringRef{Literal: "TOP"}
	rec := &Placement{X: iptr(0), Y: iptr(0)}
	require.NoError(t, rec.MergeWithModals(m))
	require.Equal(t, "TOP", rec.Name.Literal)
}
