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
	"hash/maphash"

	"github.com/gx-org/tiletype/build/ir/irkind"
)

type (
	// Instance is the structural value of a type: a tagged union over
	// scalars, pointers, tiles, tensor views, and partition views.
	// Nested types are canonical handles, never nested instances.
	//
	// Instances are immutable. The zero Instance is invalid.
	Instance[C any] struct {
		v variant
	}

	pointer[C any] struct {
		pointee Type[C]
	}

	// tableKey is a comparable encoding of an instance.
	// Two keys are equal if and only if the instances are structurally equal.
	tableKey[C any] struct {
		nested  Type[C]
		payload string
	}
)

// Of returns the instance of a scalar type.
func Of[C any](s Scalar) (Instance[C], error) {
	if s == nil || !s.Valid() {
		return Instance[C]{}, structuralf("%v is not a scalar kind", s)
	}
	return Instance[C]{v: s}, nil
}

// PointerTo returns the instance of a pointer type.
func PointerTo[C any](pointee Type[C]) (Instance[C], error) {
	if err := checkNested("pointee", pointee); err != nil {
		return Instance[C]{}, err
	}
	return Instance[C]{v: pointer[C]{pointee: pointee}}, nil
}

// Kind returns the kind of the instance.
func (inst Instance[C]) Kind() irkind.Kind {
	if inst.v == nil {
		return irkind.Invalid
	}
	return inst.v.kind()
}

// Scalar returns the scalar kind if the instance is a scalar.
func (inst Instance[C]) Scalar() (Scalar, bool) {
	s, ok := inst.v.(Scalar)
	return s, ok
}

// Pointee returns the pointed type if the instance is a pointer.
func (inst Instance[C]) Pointee() (Type[C], bool) {
	p, ok := inst.v.(pointer[C])
	return p.pointee, ok
}

// Tile returns the tile if the instance is a tile.
func (inst Instance[C]) Tile() (Tile[C], bool) {
	t, ok := inst.v.(Tile[C])
	return t, ok
}

// TensorView returns the tensor view if the instance is a tensor view.
func (inst Instance[C]) TensorView() (TensorView[C], bool) {
	t, ok := inst.v.(TensorView[C])
	return t, ok
}

// PartitionView returns the partition view if the instance is a partition view.
func (inst Instance[C]) PartitionView() (PartitionView[C], bool) {
	p, ok := inst.v.(PartitionView[C])
	return p, ok
}

// Equal returns true if both instances have the same structure.
// Nested types are compared by identity.
func (inst Instance[C]) Equal(other Instance[C]) bool {
	if inst.v == nil || other.v == nil {
		return inst.v == nil && other.v == nil
	}
	return inst.v.equal(other.v)
}

// nested returns the type handle referenced by the instance, if any.
func (inst Instance[C]) nested() Type[C] {
	switch vT := inst.v.(type) {
	case pointer[C]:
		return vT.pointee
	case Tile[C]:
		return vT.elem
	case TensorView[C]:
		return vT.elem
	case PartitionView[C]:
		return vT.original
	}
	return Type[C]{}
}

func (inst Instance[C]) appendPayload(b []byte) []byte {
	b = append(b, byte(inst.Kind()))
	if inst.v == nil {
		return b
	}
	return inst.v.appendPayload(b)
}

func (inst Instance[C]) key() tableKey[C] {
	return tableKey[C]{
		nested:  inst.nested(),
		payload: string(inst.appendPayload(nil)),
	}
}

// Hash returns a structural hash of the instance.
// Structurally equal instances have the same hash for a given seed.
func (inst Instance[C]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.Write(inst.appendPayload(nil))
	maphash.WriteComparable(&h, inst.nested())
	return h.Sum64()
}

func (inst Instance[C]) String() string {
	if inst.v == nil {
		return "invalid"
	}
	return inst.v.String()
}

func (pointer[C]) kind() irkind.Kind { return irkind.Pointer }

func (p pointer[C]) equal(o variant) bool {
	other, ok := o.(pointer[C])
	return ok && p.pointee == other.pointee
}

func (pointer[C]) appendPayload(b []byte) []byte { return b }

func (p pointer[C]) String() string {
	return "ptr<" + p.pointee.String() + ">"
}

// checkNested returns an error if a nested type is invalid.
func checkNested[C any](what string, t Type[C]) error {
	if !t.IsValid() {
		return structuralf("%s is an invalid type", what)
	}
	return nil
}
