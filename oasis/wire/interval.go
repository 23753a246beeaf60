// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"
)

// IntervalKind tags which bound combination an Interval carries.
type IntervalKind uint8

const (
	// IntervalAll means no bound on either side.
	IntervalAll IntervalKind = iota
	// IntervalLowerOnly means [Lower, +inf).
	IntervalLowerOnly
	// IntervalUpperOnly means [0, Upper].
	IntervalUpperOnly
	// IntervalBounded means [Lower, Upper].
	IntervalBounded
	// IntervalPoint means {Lower} (Lower == Upper).
	IntervalPoint
)

// Interval is the format's two-bounds-pair type (used by LayerName for its
// layer and datatype intervals), tagged by which bound(s) are present.
type Interval struct {
	Kind         IntervalKind
	Lower, Upper uint64
}

// ReadInterval reads a tagged interval.
func ReadInterval(r ByteReader) (Interval, error) {
	kind, err := ReadUint(r)
	if err != nil {
		return Interval{}, errors.Wrap(err, "wire.ReadInterval: kind")
	}
	switch IntervalKind(kind) {
	case IntervalAll:
		return Interval{Kind: IntervalAll}, nil
	case IntervalLowerOnly:
		lo, err := ReadUint(r)
		if err != nil {
			return Interval{}, errors.Wrap(err, "wire.ReadInterval: lower")
		}
		return Interval{Kind: IntervalLowerOnly, Lower: lo}, nil
	case IntervalUpperOnly:
		up, err := ReadUint(r)
		if err != nil {
			return Interval{}, errors.Wrap(err, "wire.ReadInterval: upper")
		}
		return Interval{Kind: IntervalUpperOnly, Upper: up}, nil
	case IntervalBounded:
		lo, err := ReadUint(r)
		if err != nil {
			return Interval{}, errors.Wrap(err, "wire.ReadInterval: lower")
		}
		up, err := ReadUint(r)
		if err != nil {
			return Interval{}, errors.Wrap(err, "wire.ReadInterval: upper")
		}
		return Interval{Kind: IntervalBounded, Lower: lo, Upper: up}, nil
	case IntervalPoint:
		v, err := ReadUint(r)
		if err != nil {
			return Interval{}, errors.Wrap(err, "wire.ReadInterval: point")
		}
		return Interval{Kind: IntervalPoint, Lower: v, Upper: v}, nil
	default:
		return Interval{}, errors.Errorf("wire.ReadInterval: unknown interval kind %d", kind)
	}
}

// WriteInterval writes a tagged interval.
func WriteInterval(w io.Writer, v Interval) (int, error) {
	size, err := WriteUint(w, uint64(v.Kind))
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case IntervalAll:
		return size, nil
	case IntervalLowerOnly:
		n, err := WriteUint(w, v.Lower)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	case IntervalUpperOnly:
		n, err := WriteUint(w, v.Upper)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	case IntervalBounded:
		n, err := WriteUint(w, v.Lower)
		if err != nil {
			return 0, err
		}
		size += n
		n, err = WriteUint(w, v.Upper)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	case IntervalPoint:
		n, err := WriteUint(w, v.Lower)
		if err != nil {
			return 0, err
		}
		return size + n, nil
	default:
		return 0, errors.Errorf("wire.WriteInterval: unknown interval kind %d", v.Kind)
	}
}
