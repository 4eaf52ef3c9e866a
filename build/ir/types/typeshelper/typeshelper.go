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

// Package typeshelper provides helper functions to build types programmatically.
// All the functions panic if a type cannot be built.
package typeshelper

import "github.com/gx-org/tiletype/build/ir/types"

// Must returns v or panics if err is not nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Pointer returns the type of a pointer to pointee.
func Pointer[C any](b types.Builder[C], pointee types.Type[C]) types.Type[C] {
	return Must(b.Pointer(pointee))
}

// Tile returns the type of a tile.
func Tile[C any](b types.Builder[C], elem types.Type[C], dims ...int) types.Type[C] {
	return Must(b.Tile(elem, dims...))
}

// TensorView returns the type of a tensor view.
func TensorView[C any](b types.Builder[C], elem types.Type[C], shape, strides types.Shape) types.Type[C] {
	return Must(b.TensorView(elem, shape, strides))
}

// RowMajor returns the type of a contiguous row-major tensor view with a static shape.
func RowMajor[C any](b types.Builder[C], elem types.Type[C], dims ...int) types.Type[C] {
	strides := make([]int, len(dims))
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= dims[i]
	}
	return TensorView(b, elem, types.Dims(dims...), types.Dims(strides...))
}

// PartitionView returns the type of a partition view.
func PartitionView[C any](b types.Builder[C], original types.Type[C], tileShape []int, dimMap []int32, masked bool) types.Type[C] {
	return Must(b.PartitionView(original, tileShape, dimMap, masked))
}

// Identity returns the identity dimension map of a given rank.
func Identity(rank int) []int32 {
	m := make([]int32, rank)
	for i := range m {
		m[i] = int32(i)
	}
	return m
}
