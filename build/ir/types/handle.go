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

// Type is a handle to a canonical type instance owned by an interner of context C.
//
// Handles are small values: copy them freely. Two handles are equal (==) if and only
// if they refer to the same canonical storage. Given that only one interner exists
// per context, this is equivalent to structural equality of the types.
// Handles can be used as map keys. Handles of different contexts cannot be compared.
//
// The zero Type is invalid.
type Type[C any] struct {
	inst *Instance[C]
}

// IsValid returns true if the handle refers to a canonical instance.
func (t Type[C]) IsValid() bool {
	return t.inst != nil
}

// Instance returns the structural value of the type.
// The zero Instance is returned for an invalid handle.
func (t Type[C]) Instance() Instance[C] {
	if t.inst == nil {
		return Instance[C]{}
	}
	return *t.inst
}

// Kind returns the kind of the type.
func (t Type[C]) Kind() irkind.Kind {
	if t.inst == nil {
		return irkind.Invalid
	}
	return t.inst.Kind()
}

// Hash returns a hash of the handle identity.
// It does not traverse the structure of the type.
func (t Type[C]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, t.inst)
}

func (t Type[C]) String() string {
	if t.inst == nil {
		return "invalid"
	}
	return t.inst.String()
}
