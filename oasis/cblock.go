// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/klauspost/compress/flate"
	"github.com/pkg/errors"

	"github.com/anewusername/fatamorgana/oasis/wire"
)

// CBlock is record id 34: a raw-DEFLATE-compressed run of records that
// share the enclosing modal context with the records around it. Only
// CompressionType 0 is defined.
type CBlock struct {
	CompressionType       uint64
	DecompressedByteCount uint64
	CompressedBytes       []byte
}

// FromDecompressed builds a CBlock by compressing body with raw DEFLATE
// (no zlib header/trailer), mirroring the reference implementation's use
// of zlib.compressobj(wbits=-zlib.MAX_WBITS).
func FromDecompressed(body []byte) (*CBlock, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, errors.Wrap(err, "oasis: creating deflate writer")
	}
	if _, err := zw.Write(body); err != nil {
		return nil, errors.Wrap(err, "oasis: compressing cblock body")
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "oasis: flushing cblock body")
	}
	return &CBlock{
		CompressionType:       0,
		DecompressedByteCount: uint64(len(body)),
		CompressedBytes:       buf.Bytes(),
	}, nil
}

// Decompress inflates the block's payload and checks it against
// DecompressedByteCount.
func (c CBlock) Decompress() ([]byte, error) {
	if c.CompressionType != 0 {
		return nil, compressionError("unsupported cblock compression type %d", c.CompressionType)
	}
	zr := flate.NewReader(bytes.NewReader(c.CompressedBytes))
	defer zr.Close()
	body, err := ioutil.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrap(err, "oasis: decompressing cblock body")
	}
	if uint64(len(body)) != c.DecompressedByteCount {
		return nil, compressionError("cblock decompressed to %d bytes, want %d", len(body), c.DecompressedByteCount)
	}
	return body, nil
}

func (CBlock) MergeWithModals(*Modals) error        { return nil }
func (CBlock) DeduplicateWithModals(*Modals) error   { return nil }

func (c CBlock) Write(w io.Writer) (int, error) {
	size, err := wire.WriteUint(w, 34)
	if err != nil {
		return 0, err
	}
	n, err := wire.WriteUint(w, c.CompressionType)
	if err != nil {
		return 0, err
	}
	size += n
	n, err = wire.WriteUint(w, c.DecompressedByteCount)
	if err != nil {
		return 0, err
	}
	size += n
	n, err = wire.WriteBstring(w, c.CompressedBytes)
	if err != nil {
		return 0, err
	}
	return size + n, nil
}

func readCBlock(r wire.ByteReader, id uint64) (Record, error) {
	if id != 34 {
		return nil, unexpectedID("invalid record id %d for CBlock", id)
	}
	ctype, err := wire.ReadUint(r)
	if err != nil {
		return nil, err
	}
	count, err := wire.ReadUint(r)
	if err != nil {
		return nil, err
	}
	body, err := wire.ReadBstring(r)
	if err != nil {
		return nil, err
	}
	return CBlock{CompressionType: ctype, DecompressedByteCount: count, CompressedBytes: body}, nil
}
