// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"slices"

	"github.com/pkg/errors"
)

// Point is a single (x, y) vertex, used by point lists and the arbitrary
// 2D repetition.
type Point struct {
	X, Y int64
}

// Repetition is the format's repetition sum type: nine kinds, including the
// distinguished Reuse marker that tells the decoder to substitute the
// modal repetition.
type Repetition interface {
	// Equal reports whether two repetitions encode the same pattern. Used
	// by the modal dedup engine (spec.md's merge_repetition/dedup_repetition).
	Equal(Repetition) bool
	// Clone makes a deep copy, so that subsequent modal updates cannot
	// mutate a previously produced record (or vice versa).
	Clone() Repetition

	repetitionKind() repetitionKind
	writeBody(w io.Writer) (int, error)
}

type repetitionKind uint8

const (
	repetitionReuse repetitionKind = iota
	repetitionMatrix2D
	repetitionUniformX
	repetitionUniformY
	repetitionVaryingXGrid
	repetitionVaryingX
	repetitionVaryingYGrid
	repetitionVaryingY
	repetitionArbitrary2D
)

// ReuseRepetition is the sentinel directing the decoder to substitute the
// modal repetition. It carries no payload of its own.
type ReuseRepetition struct{}

func (ReuseRepetition) repetitionKind() repetitionKind { return repetitionReuse }
func (ReuseRepetition) Equal(o Repetition) bool        { _, ok := o.(ReuseRepetition); return ok }
func (ReuseRepetition) Clone() Repetition              { return ReuseRepetition{} }
func (ReuseRepetition) writeBody(io.Writer) (int, error) {
	return 0, nil
}

// Matrix2D is a regular 2D grid: XDim by YDim instances spaced XSpace and
// YSpace apart.
type Matrix2D struct {
	XDim, YDim     uint64
	XSpace, YSpace uint64
}

func (Matrix2D) repetitionKind() repetitionKind { return repetitionMatrix2D }
func (m Matrix2D) Equal(o Repetition) bool {
	other, ok := o.(Matrix2D)
	return ok && m == other
}
func (m Matrix2D) Clone() Repetition { return m }
func (m Matrix2D) writeBody(w io.Writer) (int, error) {
	return writeUints(w, m.XDim, m.YDim, m.XSpace, m.YSpace)
}

// UniformX is a 1D horizontal grid with uniform spacing.
type UniformX struct{ Dim, Space uint64 }

func (UniformX) repetitionKind() repetitionKind { return repetitionUniformX }
func (u UniformX) Equal(o Repetition) bool      { other, ok := o.(UniformX); return ok && u == other }
func (u UniformX) Clone() Repetition            { return u }
func (u UniformX) writeBody(w io.Writer) (int, error) {
	return writeUints(w, u.Dim, u.Space)
}

// UniformY is a 1D vertical grid with uniform spacing.
type UniformY struct{ Dim, Space uint64 }

func (UniformY) repetitionKind() repetitionKind { return repetitionUniformY }
func (u UniformY) Equal(o Repetition) bool      { other, ok := o.(UniformY); return ok && u == other }
func (u UniformY) Clone() Repetition            { return u }
func (u UniformY) writeBody(w io.Writer) (int, error) {
	return writeUints(w, u.Dim, u.Space)
}

// VaryingXGrid is a 1D horizontal grid whose spacing varies, expressed as
// multiples of Grid.
type VaryingXGrid struct {
	Grid   uint64
	Spaces []uint64 // len == dimension-1
}

func (VaryingXGrid) repetitionKind() repetitionKind { return repetitionVaryingXGrid }
func (v VaryingXGrid) Equal(o Repetition) bool {
	other, ok := o.(VaryingXGrid)
	return ok && v.Grid == other.Grid && slices.Equal(v.Spaces, other.Spaces)
}
func (v VaryingXGrid) Clone() Repetition {
	return VaryingXGrid{Grid: v.Grid, Spaces: slices.Clone(v.Spaces)}
}
func (v VaryingXGrid) writeBody(w io.Writer) (int, error) {
	return writeVaryingBody(w, v.Grid, v.Spaces)
}

// VaryingX is a 1D horizontal grid with explicit, ungridded spacing.
type VaryingX struct{ Spaces []uint64 }

func (VaryingX) repetitionKind() repetitionKind { return repetitionVaryingX }
func (v VaryingX) Equal(o Repetition) bool {
	other, ok := o.(VaryingX)
	return ok && slices.Equal(v.Spaces, other.Spaces)
}
func (v VaryingX) Clone() Repetition {
	return VaryingX{Spaces: slices.Clone(v.Spaces)}
}
func (v VaryingX) writeBody(w io.Writer) (int, error) {
	return writeVaryingBody(w, 0, v.Spaces)
}

// VaryingYGrid is the vertical analogue of VaryingXGrid.
type VaryingYGrid struct {
	Grid   uint64
	Spaces []uint64
}

func (VaryingYGrid) repetitionKind() repetitionKind { return repetitionVaryingYGrid }
func (v VaryingYGrid) Equal(o Repetition) bool {
	other, ok := o.(VaryingYGrid)
	return ok && v.Grid == other.Grid && slices.Equal(v.Spaces, other.Spaces)
}
func (v VaryingYGrid) Clone() Repetition {
	return VaryingYGrid{Grid: v.Grid, Spaces: slices.Clone(v.Spaces)}
}
func (v VaryingYGrid) writeBody(w io.Writer) (int, error) {
	return writeVaryingBody(w, v.Grid, v.Spaces)
}

// VaryingY is the vertical analogue of VaryingX.
type VaryingY struct{ Spaces []uint64 }

func (VaryingY) repetitionKind() repetitionKind { return repetitionVaryingY }
func (v VaryingY) Equal(o Repetition) bool {
	other, ok := o.(VaryingY)
	return ok && slices.Equal(v.Spaces, other.Spaces)
}
func (v VaryingY) Clone() Repetition {
	return VaryingY{Spaces: slices.Clone(v.Spaces)}
}
func (v VaryingY) writeBody(w io.Writer) (int, error) {
	return writeVaryingBody(w, 0, v.Spaces)
}

// Arbitrary2D is a general repetition: an explicit list of (dx, dy) deltas
// from one instance to the next.
type Arbitrary2D struct{ Deltas []Point }

func (Arbitrary2D) repetitionKind() repetitionKind { return repetitionArbitrary2D }
func (a Arbitrary2D) Equal(o Repetition) bool {
	other, ok := o.(Arbitrary2D)
	return ok && slices.Equal(a.Deltas, other.Deltas)
}
func (a Arbitrary2D) Clone() Repetition {
	return Arbitrary2D{Deltas: slices.Clone(a.Deltas)}
}
func (a Arbitrary2D) writeBody(w io.Writer) (int, error) {
	size, err := WriteUint(w, uint64(len(a.Deltas)))
	if err != nil {
		return 0, err
	}
	for _, d := range a.Deltas {
		n, err := WriteSint(w, d.X)
		if err != nil {
			return 0, err
		}
		size += n
		n, err = WriteSint(w, d.Y)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func writeUints(w io.Writer, vs ...uint64) (int, error) {
	size := 0
	for _, v := range vs {
		n, err := WriteUint(w, v)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

// writeVaryingBody writes "dimension" (len(spaces)+1), optionally a grid
// multiplier, then the spaces themselves.
func writeVaryingBody(w io.Writer, grid uint64, spaces []uint64) (int, error) {
	size, err := WriteUint(w, uint64(len(spaces)+1))
	if err != nil {
		return 0, err
	}
	if grid != 0 {
		n, err := WriteUint(w, grid)
		if err != nil {
			return 0, err
		}
		size += n
	}
	for _, s := range spaces {
		n, err := WriteUint(w, s)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func readVaryingBody(r ByteReader, hasGrid bool) (grid uint64, spaces []uint64, err error) {
	dim, err := ReadUint(r)
	if err != nil {
		return 0, nil, errors.Wrap(err, "wire.ReadRepetition: dimension")
	}
	if hasGrid {
		grid, err = ReadUint(r)
		if err != nil {
			return 0, nil, errors.Wrap(err, "wire.ReadRepetition: grid")
		}
	}
	if dim == 0 {
		return 0, nil, errors.New("wire.ReadRepetition: zero dimension")
	}
	spaces = make([]uint64, dim-1)
	for i := range spaces {
		spaces[i], err = ReadUint(r)
		if err != nil {
			return 0, nil, errors.Wrap(err, "wire.ReadRepetition: space")
		}
	}
	return grid, spaces, nil
}

// ReadRepetition reads a tagged repetition.
func ReadRepetition(r ByteReader) (Repetition, error) {
	kind, err := ReadUint(r)
	if err != nil {
		return nil, errors.Wrap(err, "wire.ReadRepetition: kind")
	}
	switch repetitionKind(kind) {
	case repetitionReuse:
		return ReuseRepetition{}, nil
	case repetitionMatrix2D:
		vs, err := readUints(r, 4)
		if err != nil {
			return nil, err
		}
		return Matrix2D{XDim: vs[0], YDim: vs[1], XSpace: vs[2], YSpace: vs[3]}, nil
	case repetitionUniformX:
		vs, err := readUints(r, 2)
		if err != nil {
			return nil, err
		}
		return UniformX{Dim: vs[0], Space: vs[1]}, nil
	case repetitionUniformY:
		vs, err := readUints(r, 2)
		if err != nil {
			return nil, err
		}
		return UniformY{Dim: vs[0], Space: vs[1]}, nil
	case repetitionVaryingXGrid:
		grid, spaces, err := readVaryingBody(r, true)
		if err != nil {
			return nil, err
		}
		return VaryingXGrid{Grid: grid, Spaces: spaces}, nil
	case repetitionVaryingX:
		_, spaces, err := readVaryingBody(r, false)
		if err != nil {
			return nil, err
		}
		return VaryingX{Spaces: spaces}, nil
	case repetitionVaryingYGrid:
		grid, spaces, err := readVaryingBody(r, true)
		if err != nil {
			return nil, err
		}
		return VaryingYGrid{Grid: grid, Spaces: spaces}, nil
	case repetitionVaryingY:
		_, spaces, err := readVaryingBody(r, false)
		if err != nil {
			return nil, err
		}
		return VaryingY{Spaces: spaces}, nil
	case repetitionArbitrary2D:
		n, err := ReadUint(r)
		if err != nil {
			return nil, errors.Wrap(err, "wire.ReadRepetition: count")
		}
		deltas := make([]Point, n)
		for i := range deltas {
			x, err := ReadSint(r)
			if err != nil {
				return nil, errors.Wrap(err, "wire.ReadRepetition: dx")
			}
			y, err := ReadSint(r)
			if err != nil {
				return nil, errors.Wrap(err, "wire.ReadRepetition: dy")
			}
			deltas[i] = Point{X: x, Y: y}
		}
		return Arbitrary2D{Deltas: deltas}, nil
	default:
		return nil, errors.Errorf("wire.ReadRepetition: unknown repetition kind %d", kind)
	}
}

func readUints(r ByteReader, n int) ([]uint64, error) {
	vs := make([]uint64, n)
	for i := range vs {
		v, err := ReadUint(r)
		if err != nil {
			return nil, errors.Wrap(err, "wire.ReadRepetition: field")
		}
		vs[i] = v
	}
	return vs, nil
}

// WriteRepetition writes a tagged repetition.
func WriteRepetition(w io.Writer, rep Repetition) (int, error) {
	size, err := WriteUint(w, uint64(rep.repetitionKind()))
	if err != nil {
		return 0, err
	}
	n, err := rep.writeBody(w)
	if err != nil {
		return 0, err
	}
	return size + n, nil
}
