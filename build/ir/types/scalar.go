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
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/tiletype/build/ir/irkind"
)

type (
	// variant is implemented by every kind of type instance.
	variant interface {
		kind() irkind.Kind
		equal(variant) bool
		// appendPayload appends an unambiguous encoding of the variant,
		// excluding nested type handles.
		appendPayload([]byte) []byte
		String() string
	}

	// Scalar is a scalar kind: Integer, IEEEFloat, or AltFloat.
	Scalar interface {
		variant

		// Bits returns the storage width of the scalar in bits.
		Bits() int

		// DType returns the equivalent backend data type, if any.
		DType() (dtype.DataType, bool)

		// Valid returns true if the value is a member of its enumeration.
		Valid() bool
	}

	// Integer is a fixed-width integer kind.
	Integer uint8

	// IEEEFloat is an IEEE 754 floating point kind.
	IEEEFloat uint8

	// AltFloat is a non-IEEE floating point encoding.
	AltFloat uint8
)

// Integer kinds.
const (
	I1 Integer = iota
	I8
	I16
	I32
	I64

	numIntegers = iota
)

// IEEE floating point kinds.
const (
	F16 IEEEFloat = iota
	F32
	F64

	numIEEEFloats = iota
)

// Alternative floating point kinds.
const (
	// BF16 is bfloat16: 8 exponent bits, 7 mantissa bits.
	BF16 AltFloat = iota
	// E3M4 is an 8-bit float with 3 exponent bits and 4 mantissa bits.
	E3M4
	// E5M2 is an 8-bit float with 5 exponent bits and 2 mantissa bits.
	E5M2

	numAltFloats = iota
)

const numScalars = numIntegers + numIEEEFloats + numAltFloats

// Scalars returns all the scalar kinds.
func Scalars() []Scalar {
	return []Scalar{
		I1, I8, I16, I32, I64,
		F16, F32, F64,
		BF16, E3M4, E5M2,
	}
}

// scalarIndex returns a unique position for a valid scalar in [0, numScalars).
func scalarIndex(s Scalar) int {
	switch sT := s.(type) {
	case Integer:
		return int(sT)
	case IEEEFloat:
		return numIntegers + int(sT)
	case AltFloat:
		return numIntegers + numIEEEFloats + int(sT)
	}
	return -1
}

func (Integer) kind() irkind.Kind { return irkind.Integer }

func (k Integer) equal(o variant) bool {
	other, ok := o.(Integer)
	return ok && k == other
}

func (k Integer) appendPayload(b []byte) []byte {
	return append(b, byte(k))
}

// Valid returns true if the value is one of the integer kinds.
func (k Integer) Valid() bool { return k < numIntegers }

// Bits returns the width of the integer.
func (k Integer) Bits() int {
	switch k {
	case I1:
		return 1
	case I8:
		return 8
	case I16:
		return 16
	case I32:
		return 32
	case I64:
		return 64
	}
	return 0
}

// DType returns the backend data type of the integer.
// A 1-bit integer maps to a boolean.
func (k Integer) DType() (dtype.DataType, bool) {
	switch k {
	case I1:
		return dtype.Bool, true
	case I32:
		return dtype.Int32, true
	case I64:
		return dtype.Int64, true
	}
	return dtype.Invalid, false
}

func (k Integer) String() string {
	switch k {
	case I1:
		return "i1"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	}
	return "invalid_integer"
}

func (IEEEFloat) kind() irkind.Kind { return irkind.Float }

func (k IEEEFloat) equal(o variant) bool {
	other, ok := o.(IEEEFloat)
	return ok && k == other
}

func (k IEEEFloat) appendPayload(b []byte) []byte {
	return append(b, byte(k))
}

// Valid returns true if the value is one of the IEEE float kinds.
func (k IEEEFloat) Valid() bool { return k < numIEEEFloats }

// Bits returns the width of the float.
func (k IEEEFloat) Bits() int {
	switch k {
	case F16:
		return 16
	case F32:
		return 32
	case F64:
		return 64
	}
	return 0
}

// DType returns the backend data type of the float.
func (k IEEEFloat) DType() (dtype.DataType, bool) {
	switch k {
	case F32:
		return dtype.Float32, true
	case F64:
		return dtype.Float64, true
	}
	return dtype.Invalid, false
}

func (k IEEEFloat) String() string {
	switch k {
	case F16:
		return "f16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	}
	return "invalid_float"
}

func (AltFloat) kind() irkind.Kind { return irkind.AltFloat }

func (k AltFloat) equal(o variant) bool {
	other, ok := o.(AltFloat)
	return ok && k == other
}

func (k AltFloat) appendPayload(b []byte) []byte {
	return append(b, byte(k))
}

// Valid returns true if the value is one of the alternative float kinds.
func (k AltFloat) Valid() bool { return k < numAltFloats }

// Bits returns the width of the float.
func (k AltFloat) Bits() int {
	switch k {
	case BF16:
		return 16
	case E3M4, E5M2:
		return 8
	}
	return 0
}

// DType returns the backend data type of the float.
// Only bfloat16 has a backend equivalent.
func (k AltFloat) DType() (dtype.DataType, bool) {
	if k == BF16 {
		return dtype.Bfloat16, true
	}
	return dtype.Invalid, false
}

func (k AltFloat) String() string {
	switch k {
	case BF16:
		return "bf16"
	case E3M4:
		return "e3m4"
	case E5M2:
		return "e5m2"
	}
	return "invalid_altfloat"
}
