// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"
)

// PointListKind tags the six OASIS point-list encodings. The first four are
// specialized delta encodings that pack a direction into fewer bits than a
// general (dx, dy) pair; the last two are unrestricted.
type PointListKind uint8

const (
	// PointListManhattanHFirst alternates horizontal, vertical deltas,
	// starting horizontal.
	PointListManhattanHFirst PointListKind = iota
	// PointListManhattanVFirst alternates vertical, horizontal deltas,
	// starting vertical.
	PointListManhattanVFirst
	// PointListManhattan is general Manhattan: each vertex picks an axis.
	PointListManhattan
	// PointListOctangular additionally allows the four 45-degree diagonals.
	PointListOctangular
	// PointListAllAngle is an arbitrary (dx, dy) delta per vertex.
	PointListAllAngle
	// PointListAllAngleDoubleDelta is PointListAllAngle with the final
	// implicit closing vertex included explicitly.
	PointListAllAngleDoubleDelta
)

// manhattan direction codes, 2 bits.
const (
	dirPlusX = iota
	dirMinusX
	dirPlusY
	dirMinusY
)

// octangular direction codes, 3 bits; 4-7 are the diagonals.
const (
	dirPlusXPlusY = iota + 4
	dirMinusXPlusY
	dirMinusXMinusY
	dirPlusXMinusY
)

// PointList is a decoded vertex delta list: Points[i] is the displacement
// of vertex i+1 from vertex i (vertex 0 is the record's own position, not
// part of the list).
type PointList struct {
	Kind   PointListKind
	Points []Point
}

// ReadPointList reads a tagged point list.
func ReadPointList(r ByteReader) (PointList, error) {
	kind, err := ReadUint(r)
	if err != nil {
		return PointList{}, errors.Wrap(err, "wire.ReadPointList: kind")
	}
	n, err := ReadUint(r)
	if err != nil {
		return PointList{}, errors.Wrap(err, "wire.ReadPointList: count")
	}
	points := make([]Point, n)
	switch PointListKind(kind) {
	case PointListManhattanHFirst, PointListManhattanVFirst:
		horizontal := PointListKind(kind) == PointListManhattanHFirst
		for i := range points {
			mag, err := ReadSint(r)
			if err != nil {
				return PointList{}, errors.Wrap(err, "wire.ReadPointList: delta")
			}
			if horizontal {
				points[i] = Point{X: mag}
			} else {
				points[i] = Point{Y: mag}
			}
			horizontal = !horizontal
		}
	case PointListManhattan:
		for i := range points {
			p, err := readDirectionalDelta(r, false)
			if err != nil {
				return PointList{}, err
			}
			points[i] = p
		}
	case PointListOctangular:
		for i := range points {
			p, err := readDirectionalDelta(r, true)
			if err != nil {
				return PointList{}, err
			}
			points[i] = p
		}
	case PointListAllAngle, PointListAllAngleDoubleDelta:
		for i := range points {
			dx, err := ReadSint(r)
			if err != nil {
				return PointList{}, errors.Wrap(err, "wire.ReadPointList: dx")
			}
			dy, err := ReadSint(r)
			if err != nil {
				return PointList{}, errors.Wrap(err, "wire.ReadPointList: dy")
			}
			points[i] = Point{X: dx, Y: dy}
		}
	default:
		return PointList{}, errors.Errorf("wire.ReadPointList: unknown point list kind %d", kind)
	}
	return PointList{Kind: PointListKind(kind), Points: points}, nil
}

func readDirectionalDelta(r ByteReader, octangular bool) (Point, error) {
	dir, err := ReadUint(r)
	if err != nil {
		return Point{}, errors.Wrap(err, "wire.ReadPointList: direction")
	}
	mag, err := ReadUint(r)
	if err != nil {
		return Point{}, errors.Wrap(err, "wire.ReadPointList: magnitude")
	}
	m := int64(mag)
	switch dir {
	case dirPlusX:
		return Point{X: m}, nil
	case dirMinusX:
		return Point{X: -m}, nil
	case dirPlusY:
		return Point{Y: m}, nil
	case dirMinusY:
		return Point{Y: -m}, nil
	case dirPlusXPlusY, dirMinusXPlusY, dirMinusXMinusY, dirPlusXMinusY:
		if !octangular {
			return Point{}, errors.Errorf("wire.ReadPointList: diagonal direction %d in Manhattan list", dir)
		}
		switch dir {
		case dirPlusXPlusY:
			return Point{X: m, Y: m}, nil
		case dirMinusXPlusY:
			return Point{X: -m, Y: m}, nil
		case dirMinusXMinusY:
			return Point{X: -m, Y: -m}, nil
		default:
			return Point{X: m, Y: -m}, nil
		}
	default:
		return Point{}, errors.Errorf("wire.ReadPointList: unknown direction %d", dir)
	}
}

// WritePointList writes a tagged point list. The caller is responsible for
// ensuring Points is consistent with Kind (e.g. no diagonal deltas for a
// Manhattan kind); Write does not re-derive Kind from the data.
func WritePointList(w io.Writer, pl PointList) (int, error) {
	size, err := WriteUint(w, uint64(pl.Kind))
	if err != nil {
		return 0, err
	}
	n, err := WriteUint(w, uint64(len(pl.Points)))
	if err != nil {
		return 0, err
	}
	size += n
	switch pl.Kind {
	case PointListManhattanHFirst, PointListManhattanVFirst:
		horizontal := pl.Kind == PointListManhattanHFirst
		for _, p := range pl.Points {
			mag := p.X
			if !horizontal {
				mag = p.Y
			}
			n, err := WriteSint(w, mag)
			if err != nil {
				return 0, err
			}
			size += n
			horizontal = !horizontal
		}
	case PointListManhattan, PointListOctangular:
		for _, p := range pl.Points {
			n, err := writeDirectionalDelta(w, p)
			if err != nil {
				return 0, err
			}
			size += n
		}
	case PointListAllAngle, PointListAllAngleDoubleDelta:
		for _, p := range pl.Points {
			n, err := WriteSint(w, p.X)
			if err != nil {
				return 0, err
			}
			size += n
			n, err = WriteSint(w, p.Y)
			if err != nil {
				return 0, err
			}
			size += n
		}
	default:
		return 0, errors.Errorf("wire.WritePointList: unknown point list kind %d", pl.Kind)
	}
	return size, nil
}

func writeDirectionalDelta(w io.Writer, p Point) (int, error) {
	var dir uint64
	var mag int64
	switch {
	case p.X != 0 && p.Y == 0:
		if p.X > 0 {
			dir, mag = dirPlusX, p.X
		} else {
			dir, mag = dirMinusX, -p.X
		}
	case p.Y != 0 && p.X == 0:
		if p.Y > 0 {
			dir, mag = dirPlusY, p.Y
		} else {
			dir, mag = dirMinusY, -p.Y
		}
	case p.X == p.Y && p.X > 0:
		dir, mag = dirPlusXPlusY, p.X
	case p.X == -p.Y && p.X < 0:
		dir, mag = dirMinusXPlusY, -p.X
	case p.X == p.Y && p.X < 0:
		dir, mag = dirMinusXMinusY, -p.X
	case p.X == -p.Y && p.X > 0:
		dir, mag = dirPlusXMinusY, p.X
	case p.X == 0 && p.Y == 0:
		dir, mag = dirPlusX, 0
	default:
		return 0, errors.Errorf("wire.WritePointList: delta (%d, %d) is not axis- or diagonal-aligned", p.X, p.Y)
	}
	size, err := WriteUint(w, dir)
	if err != nil {
		return 0, err
	}
	n, err := WriteUint(w, uint64(mag))
	if err != nil {
		return 0, err
	}
	return size + n, nil
}
