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

// Builder builds canonical types of context C.
// It is implemented by Interner and SyncInterner.
type Builder[C any] interface {
	// Intern returns the canonical handle of an instance.
	Intern(Instance[C]) Type[C]

	I1() Type[C]
	I8() Type[C]
	I16() Type[C]
	I32() Type[C]
	I64() Type[C]
	F16() Type[C]
	F32() Type[C]
	F64() Type[C]
	BF16() Type[C]
	E3M4() Type[C]
	E5M2() Type[C]

	Scalar(Scalar) (Type[C], error)
	Pointer(pointee Type[C]) (Type[C], error)
	Tile(elem Type[C], dims ...int) (Type[C], error)
	TensorView(elem Type[C], shape, strides Shape) (Type[C], error)
	PartitionView(original Type[C], tileShape []int, dimMap []int32, masked bool) (Type[C], error)
}

// builder implements the construction methods shared by all interners
// on top of an intern function.
type builder[C any] struct {
	intern  func(Instance[C]) Type[C]
	scalars [numScalars]Type[C]
}

// seedScalars interns all the scalar singletons.
func (b *builder[C]) seedScalars(intern func(Instance[C]) Type[C]) {
	b.intern = intern
	for _, s := range Scalars() {
		b.scalars[scalarIndex(s)] = intern(Instance[C]{v: s})
	}
}

// I1 returns the 1-bit integer type.
func (b *builder[C]) I1() Type[C] { return b.scalars[scalarIndex(I1)] }

// I8 returns the 8-bit integer type.
func (b *builder[C]) I8() Type[C] { return b.scalars[scalarIndex(I8)] }

// I16 returns the 16-bit integer type.
func (b *builder[C]) I16() Type[C] { return b.scalars[scalarIndex(I16)] }

// I32 returns the 32-bit integer type.
func (b *builder[C]) I32() Type[C] { return b.scalars[scalarIndex(I32)] }

// I64 returns the 64-bit integer type.
func (b *builder[C]) I64() Type[C] { return b.scalars[scalarIndex(I64)] }

// F16 returns the IEEE half precision float type.
func (b *builder[C]) F16() Type[C] { return b.scalars[scalarIndex(F16)] }

// F32 returns the IEEE single precision float type.
func (b *builder[C]) F32() Type[C] { return b.scalars[scalarIndex(F32)] }

// F64 returns the IEEE double precision float type.
func (b *builder[C]) F64() Type[C] { return b.scalars[scalarIndex(F64)] }

// BF16 returns the bfloat16 type.
func (b *builder[C]) BF16() Type[C] { return b.scalars[scalarIndex(BF16)] }

// E3M4 returns the 8-bit float type with 3 exponent bits.
func (b *builder[C]) E3M4() Type[C] { return b.scalars[scalarIndex(E3M4)] }

// E5M2 returns the 8-bit float type with 5 exponent bits.
func (b *builder[C]) E5M2() Type[C] { return b.scalars[scalarIndex(E5M2)] }

// Scalar returns the type of a scalar kind.
func (b *builder[C]) Scalar(s Scalar) (Type[C], error) {
	if s == nil || !s.Valid() {
		return Type[C]{}, structuralf("%v is not a scalar kind", s)
	}
	return b.scalars[scalarIndex(s)], nil
}

// Pointer returns the type of a pointer to pointee.
func (b *builder[C]) Pointer(pointee Type[C]) (Type[C], error) {
	inst, err := PointerTo(pointee)
	if err != nil {
		return Type[C]{}, err
	}
	return b.intern(inst), nil
}

// Tile returns the type of a tile of elem.
func (b *builder[C]) Tile(elem Type[C], dims ...int) (Type[C], error) {
	tile, err := NewTile(elem, dims...)
	if err != nil {
		return Type[C]{}, err
	}
	return b.intern(tile.Instance()), nil
}

// TensorView returns the type of a view on elem.
func (b *builder[C]) TensorView(elem Type[C], shape, strides Shape) (Type[C], error) {
	view, err := NewTensorView(elem, shape, strides)
	if err != nil {
		return Type[C]{}, err
	}
	return b.intern(view.Instance()), nil
}

// PartitionView returns the type of a partition of a tensor view.
func (b *builder[C]) PartitionView(original Type[C], tileShape []int, dimMap []int32, masked bool) (Type[C], error) {
	part, err := NewPartitionView(original, tileShape, dimMap, masked)
	if err != nil {
		return Type[C]{}, err
	}
	return b.intern(part.Instance()), nil
}
