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

func TestBstringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	_, err := wire.WriteBstring(&buf, []byte{0x00, 0x01, 0x20, 0xff})
	require.NoError(t, err)
	got, err := wire.ReadBstring(&buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x01, 0x20, 0xff}, got)
}

func TestNStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	_, err := wire.NString("LAYER1").Write(&buf)
	require.NoError(t, err)
	got, err := wire.ReadNString(&buf)
	require.NoError(t, err)
	require.Equal(t, wire.NString("LAYER1"), got)
}

func TestNStringRejectsSpace(t *testing.T) {
	_, err := wire.NString("has space").Write(&bytes.Buffer{})
	require.Error(t, err)
}

func TestNStringRejectsControlByte(t *testing.T) {
	_, err := wire.NString("bad\x01name").Write(&bytes.Buffer{})
	require.Error(t, err)
}

func TestNStringRejectsDEL(t *testing.T) {
	_, err := wire.NString("bad\x7fname").Write(&bytes.Buffer{})
	require.Error(t, err)
}

func TestAStringAllowsSpace(t *testing.T) {
	var buf bytes.Buffer
	_, err := wire.AString("a printable string").Write(&buf)
	require.NoError(t, err)
	got, err := wire.ReadAString(&buf)
	require.NoError(t, err)
	require.Equal(t, wire.AString("a printable string"), got)
}

func TestAStringRejectsControlByte(t *testing.T) {
	_, err := wire.AString("bad\x01string").Write(&bytes.Buffer{})
	require.Error(t, err)
}

func TestReadNStringRejectsInvalidBytesFromWire(t *testing.T) {
	var buf bytes.Buffer
	_, err := wire.WriteBstring(&buf, []byte("bad byte\x00"))
	require.NoError(t, err)
	_, err = wire.ReadNString(&buf)
	require.Error(t, err)
}
