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

func TestOffsetTableRoundTrip(t *testing.T) {
	table := wire.OffsetTable{
		CellName:   wire.TableEntry{Strict: true, Offset: 10, Count: 2},
		TextString: wire.TableEntry{Strict: false, Offset: 20, Count: 3},
		PropName:   wire.TableEntry{Strict: true, Offset: 30, Count: 4},
		PropString: wire.TableEntry{Strict: false, Offset: 40, Count: 5},
		LayerName:  wire.TableEntry{Strict: true, Offset: 50, Count: 6},
		XName:      wire.TableEntry{Strict: false, Offset: 60, Count: 7},
	}
	var buf bytes.Buffer
	_, err := wire.WriteOffsetTable(&buf, table)
	require.NoError(t, err)
	got, err := wire.ReadOffsetTable(&buf)
	require.NoError(t, err)
	require.Equal(t, table, got)
}
