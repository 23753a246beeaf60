// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// oasis-dump reads a raw OASIS byte stream and prints one line per merged
// record. It does not build a geometry object model or resolve cell-name
// forward references.
//
// Usage: oasis-dump [-checksum] file.oas
package main

import (
	"flag"
	"fmt"
	"hash"
	"os"

	"github.com/blainsmith/seahash"

	"github.com/anewusername/fatamorgana/oasis"
)

var (
	checksum = flag.Bool("checksum", false, "print a seahash checksum over the decoded geometry records instead of a per-record listing")
)

func isGeometry(rec oasis.Record) bool {
	switch rec.(type) {
	case *oasis.Rectangle, *oasis.Polygon, *oasis.Path, *oasis.Trapezoid,
		*oasis.CTrapezoid, *oasis.Circle, *oasis.Text, *oasis.Placement, *oasis.XGeometry:
		return true
	default:
		return false
	}
}

func run(path string, checksumOnly bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := oasis.NewReader(f, oasis.StreamOptions{})
	var h hash.Hash64
	if checksumOnly {
		h = seahash.New()
	}
	n := 0
	for r.Scan() {
		rec := r.Record()
		n++
		if checksumOnly {
			if isGeometry(rec) {
				fmt.Fprintf(h, "%T:%+v", rec, rec)
			}
			continue
		}
		fmt.Printf("%5d  %T  %+v\n", n, rec, rec)
	}
	if err := r.Err(); err != nil {
		return err
	}
	if checksumOnly {
		fmt.Printf("%x\n", h.Sum64())
	}
	return nil
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: oasis-dump [-checksum] file.oas")
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *checksum); err != nil {
		fmt.Fprintf(os.Stderr, "oasis-dump: %v\n", err)
		os.Exit(1)
	}
}
