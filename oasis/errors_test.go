// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindDistinguishesCauses(t *testing.T) {
	err := unexpectedID("invalid record id %d for Cell", 99)
	var oasisErr *Error
	require.True(t, errors.As(err, &oasisErr))
	require.Equal(t, UnexpectedID, oasisErr.Kind)

	err = malformedRecord("square rectangle must not carry an explicit height")
	require.True(t, errors.As(err, &oasisErr))
	require.Equal(t, MalformedRecord, oasisErr.Kind)
}

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "CompressionError", CompressionError.String())
	require.Equal(t, "UnfillableRepetition", UnfillableRepetition.String())
}
