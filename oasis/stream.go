// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
	"v.io/x/lib/vlog"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// StreamOptions configures a Reader or Writer.
type StreamOptions struct {
	// StrictReservedBits is accepted but not consulted by Reader or
	// Writer: a record whose header carries a set reserved bit is always
	// rejected, whatever its value.
	StrictReservedBits bool
}

// Reader scans an OASIS byte stream one merged record at a time,
// transparently flattening CBlock substreams into the same sequence and
// folding every record through a single modal bank, the way the format
// requires.
//
// Example:
//
//	r := oasis.NewReader(f, oasis.StreamOptions{})
//	for r.Scan() {
//	    rec := r.Record()
//	    ... use rec ...
//	}
//	if err := r.Err(); err != nil {
//	    ...
//	}
type Reader struct {
	opts   StreamOptions
	modals *Modals
	stack  []wire.ByteReader

	hasOffsetTable bool
	ended          bool

	rec Record
	err error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts StreamOptions) *Reader {
	return &Reader{
		opts:   opts,
		modals: NewModals(),
		stack:  []wire.ByteReader{asByteReader(r)},
	}
}

func asByteReader(r io.Reader) wire.ByteReader {
	if br, ok := r.(wire.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// Err returns the first error encountered by Scan, if any.
func (r *Reader) Err() error { return r.err }

// Record returns the most recently scanned record, merged against the
// modal bank. REQUIRES: the prior call to Scan returned true.
func (r *Reader) Record() Record { return r.rec }

// Scan reads and merges the next top-level record, descending into (and
// transparently exiting) any CBlock substreams. It returns false at the
// end of the stream or on the first error.
func (r *Reader) Scan() bool {
	for {
		if r.err != nil || r.ended || len(r.stack) == 0 {
			return false
		}
		top := r.stack[len(r.stack)-1]
		rec, err := ReadRecord(top, r.hasOffsetTable)
		if err != nil {
			if errors.Cause(err) == io.EOF {
				if len(r.stack) > 1 {
					r.stack = r.stack[:len(r.stack)-1]
					continue
				}
				return false
			}
			r.err = err
			return false
		}

		if cb, ok := rec.(CBlock); ok {
			body, derr := cb.Decompress()
			if derr != nil {
				r.err = derr
				return false
			}
			r.stack = append(r.stack, bufio.NewReader(bytes.NewReader(body)))
			continue
		}

		if err := rec.MergeWithModals(r.modals); err != nil {
			r.err = err
			return false
		}
		if s, ok := rec.(*Start); ok {
			r.hasOffsetTable = s.OffsetTable == nil // End carries the table when Start does not
		}
		if _, ok := rec.(End); ok {
			r.ended = true
		}
		vlog.VI(2).Infof("oasis.Reader: scanned %T", rec)
		r.rec = rec
		return true
	}
}

// Writer deduplicates and writes records against a single modal bank,
// mirroring the reference implementation's Record.dedup_write.
type Writer struct {
	w      io.Writer
	opts   StreamOptions
	modals *Modals
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer, opts StreamOptions) *Writer {
	return &Writer{w: w, opts: opts, modals: NewModals()}
}

// WriteRecord deduplicates rec against the writer's modal bank and writes
// it to the underlying stream.
func (wtr *Writer) WriteRecord(rec Record) (int, error) {
	return DedupWrite(wtr.w, rec, wtr.modals)
}
