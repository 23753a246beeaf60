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

func TestBoolByteRoundTrip(t *testing.T) {
	bits := wire.BoolByte{true, false, true, true, false, false, true, false}
	var buf bytes.Buffer
	_, err := wire.WriteBoolByte(&buf, bits)
	require.NoError(t, err)
	got, err := wire.ReadBoolByte(&buf)
	require.NoError(t, err)
	require.Equal(t, bits, got)
}

func TestBoolByteIsMSBFirst(t *testing.T) {
	bits := wire.BoolByte{true, false, false, false, false, false, false, false}
	var buf bytes.Buffer
	_, err := wire.WriteBoolByte(&buf, bits)
	require.NoError(t, err)
	require.Equal(t, byte(0x80), buf.Bytes()[0])
}
