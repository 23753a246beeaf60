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

func TestPropValueRoundTrip(t *testing.T) {
	values := []wire.PropValue{
		{Kind: wire.PropValueRealPositiveInteger, Real: wire.Real{Kind: wire.RealPositiveInteger, Int: 4}},
		{Kind: wire.PropValueRealNegativeInteger, Real: wire.Real{Kind: wire.RealNegativeInteger, Int: 4}},
		{Kind: wire.PropValueRealPositiveReciprocal, Real: wire.Real{Kind: wire.RealPositiveReciprocal, Int: 2}},
		{Kind: wire.PropValueRealNegativeReciprocal, Real: wire.Real{Kind: wire.RealNegativeReciprocal, Int: 2}},
		{Kind: wire.PropValueRealPositiveRatio, Real: wire.Real{Kind: wire.RealPositiveRatio, Num: 1, Den: 3}},
		{Kind: wire.PropValueRealNegativeRatio, Real: wire.Real{Kind: wire.RealNegativeRatio, Num: 1, Den: 3}},
		{Kind: wire.PropValueRealFloat32, Real: wire.Real{Kind: wire.RealFloat32, F32: 2.5}},
		{Kind: wire.PropValueRealFloat64, Real: wire.Real{Kind: wire.RealFloat64, F64: 2.5}},
		{Kind: wire.PropValueUnsignedInteger, Int: 123},
		{Kind: wire.PropValueSignedInteger, Int: 123},
		{Kind: wire.PropValueAString, Str: wire.StringRef{Literal: "hello"}},
		{Kind: wire.PropValueBString, Str: wire.StringRef{Literal: "world"}},
		{Kind: wire.PropValueNString, Str: wire.StringRef{Literal: "name"}},
		{Kind: wire.PropValueRefAString, Str: wire.StringRef{IsRef: true, Ref: 1}},
		{Kind: wire.PropValueRefBString, Str: wire.StringRef{IsRef: true, Ref: 2}},
		{Kind: wire.PropValueRefNString, Str: wire.StringRef{IsRef: true, Ref: 3}},
	}
	for _, v := range values {
		var buf bytes.Buffer
		_, err := wire.WritePropValue(&buf, v)
		require.NoError(t, err)
		got, err := wire.ReadPropValue(&buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestStringRefEquality(t *testing.T) {
	a := wire.StringRef{Literal: "x"}
	b := wire.StringRef{Literal: "x"}
	c := wire.StringRef{IsRef: true, Ref: 1}
	require.Equal(t, a, b)
	require.True(t, a == b)
	require.False(t, a == c)
}
