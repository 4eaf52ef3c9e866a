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
	"slices"
	"strconv"

	"fortio.org/safecast"
	"github.com/gx-org/tiletype/base/stringseq"
	"go.uber.org/multierr"
)

// Dimension is the extent of one axis.
// It is either a non-negative size or Dynamic.
type Dimension int64

// Dynamic is the extent of an axis unknown at compile time.
// It cannot collide with a size since sizes are non-negative.
const Dynamic Dimension = math.MinInt64

// Fixed returns a dimension with a static size.
// Shapes with negative sizes are rejected when a type is built:
// a negative size never maps to Dynamic.
func Fixed(size int) Dimension {
	d := Dimension(size)
	if d == Dynamic {
		return Dynamic + 1
	}
	return d
}

// DimensionOf returns a static dimension from an unsigned size,
// or an error if the size cannot be represented.
func DimensionOf(size uint64) (Dimension, error) {
	v, err := safecast.Convert[int64](size)
	if err != nil {
		return 0, structuralf("dimension size %d: %v", size, err)
	}
	return Dimension(v), nil
}

// IsDynamic returns true if the dimension is unknown at compile time.
func (d Dimension) IsDynamic() bool {
	return d == Dynamic
}

// Fixed returns the size of a static dimension.
// It returns false if the dimension is dynamic or invalid.
func (d Dimension) Fixed() (int, bool) {
	if d.IsDynamic() || d < 0 {
		return 0, false
	}
	size, err := safecast.Convert[int](int64(d))
	if err != nil {
		return 0, false
	}
	return size, true
}

func (d Dimension) valid() bool {
	return d == Dynamic || d >= 0
}

func (d Dimension) String() string {
	if d.IsDynamic() {
		return "?"
	}
	return strconv.FormatInt(int64(d), 10)
}

// Shape is an ordered list of axis extents.
// An empty shape is the shape of a scalar.
type Shape []Dimension

// Dims returns a static shape given the axis sizes.
func Dims(sizes ...int) Shape {
	s := make(Shape, len(sizes))
	for i, size := range sizes {
		s[i] = Fixed(size)
	}
	return s
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// IsStatic returns true if no dimension is dynamic.
func (s Shape) IsStatic() bool {
	return !slices.Contains(s, Dynamic)
}

// Equal returns true if both shapes have the same extents in the same order.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// validate returns all the invalid extents of the shape.
func (s Shape) validate(what string) (err error) {
	for i, d := range s {
		if !d.valid() {
			err = multierr.Append(err, structuralf("%s axis %d has negative extent %d", what, i, int64(d)))
		}
	}
	return
}

func (s Shape) String() string {
	return stringseq.JoinStringer(slices.Values(s), "x")
}
