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

func TestValidationRoundTrip(t *testing.T) {
	validations := []wire.Validation{
		{Scheme: wire.ValidationNone},
		{Scheme: wire.ValidationCRC32, Signature: 0xdeadbeef},
		{Scheme: wire.ValidationChecksum32, Signature: 0x01020304},
	}
	for _, v := range validations {
		var buf bytes.Buffer
		_, err := wire.WriteValidation(&buf, v)
		require.NoError(t, err)
		got, err := wire.ReadValidation(&buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
