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

// Package irkind defines the kinds of types in the tile intermediate representation (IR).
package irkind

// Kind of a type instance.
type Kind uint8

// Kind of type instances supported by the IR.
const (
	Invalid Kind = iota

	// Integer is a fixed-width integer scalar.
	Integer
	// Float is an IEEE 754 floating point scalar.
	Float
	// AltFloat is a non-IEEE floating point scalar (bfloat16, fp8 variants).
	AltFloat

	Pointer
	Tile
	TensorView
	PartitionView

	// Max value for a Kind constant.
	Max
)

// IsScalar returns true if the kind is one of the scalar kinds.
func (k Kind) IsScalar() bool {
	return k == Integer || k == Float || k == AltFloat
}

// IsView returns true if the kind describes a view over storage.
func (k Kind) IsView() bool {
	return k == TensorView || k == PartitionView
}

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case AltFloat:
		return "altfloat"
	case Pointer:
		return "pointer"
	case Tile:
		return "tile"
	case TensorView:
		return "tensor_view"
	case PartitionView:
		return "partition_view"
	}
	return "invalid"
}
