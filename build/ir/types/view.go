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
	"math"
	"math/bits"
	"slices"
	"strings"

	"github.com/gx-org/tiletype/base/stringseq"
	"github.com/gx-org/tiletype/build/ir/irkind"
	"go.uber.org/multierr"
)

// Broadcast is the dimension map entry of a partition axis which
// does not correspond to any axis of the original view.
const Broadcast int32 = -1

type (
	// TensorView is a logical multi-dimensional view over elements.
	// Strides are expressed in elements.
	TensorView[C any] struct {
		shape   Shape
		strides Shape
		elem    Type[C]
	}

	// PartitionView is a tiled view derived from a tensor view.
	// The dimension map gives, for each tile axis, the axis of the
	// original view it indexes or Broadcast.
	PartitionView[C any] struct {
		tileShape []int
		original  Type[C]
		dimMap    []int32
		masked    bool
	}
)

// NewTensorView returns a view on elem.
// shape and strides must have the same rank.
func NewTensorView[C any](elem Type[C], shape, strides Shape) (TensorView[C], error) {
	err := checkNested("tensor view element", elem)
	if len(shape) != len(strides) {
		err = multierr.Append(err, structuralf("tensor view shape %s has rank %d but strides %s have rank %d", shape, len(shape), strides, len(strides)))
	}
	err = multierr.Append(err, shape.validate("tensor view shape"))
	err = multierr.Append(err, strides.validate("tensor view stride"))
	if err != nil {
		return TensorView[C]{}, err
	}
	return TensorView[C]{
		shape:   slices.Clone(shape),
		strides: slices.Clone(strides),
		elem:    elem,
	}, nil
}

// Instance returns the view as a type instance.
// The zero TensorView maps to the zero Instance.
func (v TensorView[C]) Instance() Instance[C] {
	if !v.elem.IsValid() {
		return Instance[C]{}
	}
	return Instance[C]{v: v}
}

// Shape returns a copy of the logical shape of the view.
func (v TensorView[C]) Shape() Shape {
	return slices.Clone(v.shape)
}

// Strides returns a copy of the strides of the view.
func (v TensorView[C]) Strides() Shape {
	return slices.Clone(v.strides)
}

// Rank returns the number of axes of the view.
func (v TensorView[C]) Rank() int {
	return len(v.shape)
}

// Elem returns the type of the view elements.
func (v TensorView[C]) Elem() Type[C] {
	return v.elem
}

// IsContiguous returns true if the view is a dense row-major layout:
// the last axis has a unit stride and every other stride is the
// product of the extents of the following axes.
func (v TensorView[C]) IsContiguous() bool {
	want := Dimension(1)
	for i := len(v.shape) - 1; i >= 0; i-- {
		if v.strides[i] != want {
			return false
		}
		if v.shape[i].IsDynamic() {
			// Axes before a dynamic one have strides unknown at compile time.
			return i == 0
		}
		hi, lo := bits.Mul64(uint64(want), uint64(v.shape[i]))
		if hi != 0 || lo > math.MaxInt64 {
			return false
		}
		want = Dimension(lo)
	}
	return true
}

func (TensorView[C]) kind() irkind.Kind { return irkind.TensorView }

func (v TensorView[C]) equal(o variant) bool {
	other, ok := o.(TensorView[C])
	return ok && v.elem == other.elem && v.shape.Equal(other.shape) && v.strides.Equal(other.strides)
}

func (v TensorView[C]) appendPayload(b []byte) []byte {
	b = appendInts(b, v.shape)
	return appendInts(b, v.strides)
}

func (v TensorView[C]) String() string {
	var s strings.Builder
	s.WriteString("tensor_view<")
	if len(v.shape) > 0 {
		s.WriteString(v.shape.String())
		s.WriteString("x")
	}
	s.WriteString(v.elem.String())
	s.WriteString(", strides=[")
	stringseq.AppendFunc(&s, slices.Values(v.strides), Dimension.String, ",")
	s.WriteString("]>")
	return s.String()
}

// NewPartitionView returns a partition of the original view into tiles of tileShape.
// original must be a tensor view. dimMap must have one entry per tile axis,
// either Broadcast or a distinct axis of the original view.
// masked specifies that accesses past the bounds of the original view
// are out-of-range instead of wrapping around.
func NewPartitionView[C any](original Type[C], tileShape []int, dimMap []int32, masked bool) (PartitionView[C], error) {
	err := checkNested("partition view original", original)
	rank := -1
	if view, ok := original.Instance().TensorView(); ok {
		rank = view.Rank()
	} else if original.IsValid() {
		err = multierr.Append(err, structuralf("partition view original %s is not a tensor view", original))
	}
	for i, d := range tileShape {
		if d <= 0 {
			err = multierr.Append(err, structuralf("partition tile axis %d has non-positive extent %d", i, d))
		}
	}
	if len(dimMap) != len(tileShape) {
		err = multierr.Append(err, structuralf("partition dimension map has %d entries but the tile has rank %d", len(dimMap), len(tileShape)))
	}
	used := make(map[int32]int, len(dimMap))
	for i, axis := range dimMap {
		if axis == Broadcast {
			continue
		}
		if axis < 0 || (rank >= 0 && int(axis) >= rank) {
			err = multierr.Append(err, structuralf("partition dimension map entry %d refers to axis %d out of range [0, %d)", i, axis, rank))
			continue
		}
		if prev, dup := used[axis]; dup {
			err = multierr.Append(err, structuralf("partition dimension map entries %d and %d both refer to axis %d", prev, i, axis))
			continue
		}
		used[axis] = i
	}
	if err != nil {
		return PartitionView[C]{}, err
	}
	return PartitionView[C]{
		tileShape: slices.Clone(tileShape),
		original:  original,
		dimMap:    slices.Clone(dimMap),
		masked:    masked,
	}, nil
}

// Instance returns the partition view as a type instance.
// The zero PartitionView maps to the zero Instance.
func (p PartitionView[C]) Instance() Instance[C] {
	if !p.original.IsValid() {
		return Instance[C]{}
	}
	return Instance[C]{v: p}
}

// TileShape returns a copy of the extents of a partition.
func (p PartitionView[C]) TileShape() []int {
	return slices.Clone(p.tileShape)
}

// Original returns the view being partitioned.
func (p PartitionView[C]) Original() Type[C] {
	return p.original
}

// DimensionMap returns a copy of the map from tile axes to axes of the original view.
func (p PartitionView[C]) DimensionMap() []int32 {
	return slices.Clone(p.dimMap)
}

// Masked returns true if out-of-bounds accesses are out-of-range.
func (p PartitionView[C]) Masked() bool {
	return p.masked
}

func (PartitionView[C]) kind() irkind.Kind { return irkind.PartitionView }

func (p PartitionView[C]) equal(o variant) bool {
	other, ok := o.(PartitionView[C])
	return ok &&
		p.original == other.original &&
		p.masked == other.masked &&
		slices.Equal(p.tileShape, other.tileShape) &&
		slices.Equal(p.dimMap, other.dimMap)
}

func (p PartitionView[C]) appendPayload(b []byte) []byte {
	b = appendInts(b, p.tileShape)
	b = appendInts(b, p.dimMap)
	if p.masked {
		return append(b, 1)
	}
	return append(b, 0)
}

func (p PartitionView[C]) String() string {
	var s strings.Builder
	s.WriteString("partition_view<tile=(")
	s.WriteString(stringseq.JoinInts(slices.Values(p.tileShape), "x"))
	s.WriteString("), ")
	s.WriteString(p.original.String())
	s.WriteString(", dim_map=[")
	s.WriteString(stringseq.JoinInts(slices.Values(p.dimMap), ", "))
	s.WriteString("]")
	if p.masked {
		s.WriteString(", masked")
	}
	s.WriteString(">")
	return s.String()
}
