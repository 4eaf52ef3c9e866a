// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"encoding/binary"
	"math/bits"
	"slices"

	"fortio.org/safecast"
	"github.com/gx-org/backend/shape"
	"github.com/gx-org/tiletype/base/stringseq"
	"github.com/gx-org/tiletype/build/ir/irkind"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Tile is a dense block of elements with static, positive dimensions.
type Tile[C any] struct {
	dims []int
	elem Type[C]
}

// NewTile returns a tile of elem with the given dimensions.
// All the violated invariants are reported in the returned error.
func NewTile[C any](elem Type[C], dims ...int) (Tile[C], error) {
	err := checkNested("tile element", elem)
	for i, d := range dims {
		if d <= 0 {
			err = multierr.Append(err, structuralf("tile axis %d has non-positive extent %d", i, d))
		}
	}
	if err != nil {
		return Tile[C]{}, err
	}
	return Tile[C]{dims: slices.Clone(dims), elem: elem}, nil
}

// Instance returns the tile as a type instance.
// The zero Tile maps to the zero Instance.
func (t Tile[C]) Instance() Instance[C] {
	if !t.elem.IsValid() {
		return Instance[C]{}
	}
	return Instance[C]{v: t}
}

// Dims returns a copy of the tile dimensions.
func (t Tile[C]) Dims() []int {
	return slices.Clone(t.dims)
}

// Rank returns the number of axes of the tile.
func (t Tile[C]) Rank() int {
	return len(t.dims)
}

// Elem returns the type of the tile elements.
func (t Tile[C]) Elem() Type[C] {
	return t.elem
}

// Shape returns the dimensions of the tile as a shape.
func (t Tile[C]) Shape() Shape {
	return Dims(t.dims...)
}

// NumElements returns the number of elements in the tile.
func (t Tile[C]) NumElements() (int, error) {
	var n uint64 = 1
	for _, d := range t.dims {
		hi, lo := bits.Mul64(n, uint64(d))
		if hi != 0 {
			return 0, errors.Errorf("number of elements of %s overflows", t.String())
		}
		n = lo
	}
	num, err := safecast.Convert[int](n)
	if err != nil {
		return 0, errors.Wrapf(err, "number of elements of %s", t.String())
	}
	return num, nil
}

// BackendShape returns the backend shape of a tile of scalars.
func (t Tile[C]) BackendShape() (*shape.Shape, error) {
	s, ok := t.elem.Instance().Scalar()
	if !ok {
		return nil, errors.Errorf("%s: element type %s is not a scalar", t.String(), t.elem.String())
	}
	dt, ok := s.DType()
	if !ok {
		return nil, errors.Errorf("%s: scalar %s has no backend data type", t.String(), s.String())
	}
	return &shape.Shape{
		DType:       dt,
		AxisLengths: slices.Clone(t.dims),
	}, nil
}

func (Tile[C]) kind() irkind.Kind { return irkind.Tile }

func (t Tile[C]) equal(o variant) bool {
	other, ok := o.(Tile[C])
	return ok && t.elem == other.elem && slices.Equal(t.dims, other.dims)
}

func (t Tile[C]) appendPayload(b []byte) []byte {
	return appendInts(b, t.dims)
}

func (t Tile[C]) String() string {
	if len(t.dims) == 0 {
		return "tile<" + t.elem.String() + ">"
	}
	return "tile<" + stringseq.JoinInts(slices.Values(t.dims), "x") + "x" + t.elem.String() + ">"
}

// appendInts appends a length-prefixed varint encoding of xs.
func appendInts[T ~int | ~int32 | ~int64](b []byte, xs []T) []byte {
	b = binary.AppendUvarint(b, uint64(len(xs)))
	for _, x := range xs {
		b = binary.AppendVarint(b, int64(x))
	}
	return b
}
