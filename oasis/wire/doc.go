// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package wire implements the primitive byte-stream codecs that the OASIS
// record layer is built on: variable-length integers, tagged reals,
// restricted-charset strings, bit-packed flag bytes, intervals, point
// lists, repetitions, property values, and the two fixed-layout
// sub-records (OffsetTable, Validation).
//
// None of this package concerns itself with modal variables, record ids,
// or record-level framing; that lives one level up, in package oasis.
package wire
