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
	"iter"

	"github.com/gx-org/tiletype/api/options"
	"github.com/gx-org/tiletype/base/arena"
	gxiter "github.com/gx-org/tiletype/base/iter"
	"github.com/gx-org/tiletype/build/ir/irkind"
)

// Interner owns the canonical types of context C.
// Canonical instances are allocated in an arena and never freed
// before the interner itself is unreachable.
//
// An Interner is not safe for concurrent use: use one Interner per
// goroutine or context, guard it with a lock, or use SyncInterner.
type Interner[C any] struct {
	builder[C]

	arena *arena.Arena[Instance[C]]
	// table maps a structural hash to the canonical instances with that hash.
	table map[uint64][]*Instance[C]
	hash  func(Instance[C]) uint64
}

var _ Builder[struct{}] = (*Interner[struct{}])(nil)

// NewInterner returns the interner of context C.
//
// NewInterner is unchecked: at most one interner, including SyncInterner,
// may ever be created for a given context type C. Handles of two interners
// sharing a context have the same Go type but never compare equal, which
// silently breaks the guarantee that equal handles are equal types.
// Creating a second interner for the same context is undefined behavior.
func NewInterner[C any](opts ...options.InternerOption) (*Interner[C], error) {
	cfg, err := options.Process(opts)
	if err != nil {
		return nil, err
	}
	seed := maphash.MakeSeed()
	in := &Interner[C]{
		arena: arena.New[Instance[C]](cfg.ChunkSize),
		table: make(map[uint64][]*Instance[C], cfg.Capacity),
		hash: func(inst Instance[C]) uint64 {
			return inst.Hash(seed)
		},
	}
	in.seedScalars(in.Intern)
	return in, nil
}

// Intern returns the canonical handle of an instance.
// The instance is copied into the arena the first time its structure is seen.
// The zero Instance interns to the zero Type.
func (in *Interner[C]) Intern(inst Instance[C]) Type[C] {
	if inst.v == nil {
		return Type[C]{}
	}
	h := in.hash(inst)
	bucket := in.table[h]
	for _, canonical := range bucket {
		if canonical.Equal(inst) {
			return Type[C]{inst: canonical}
		}
	}
	canonical := in.arena.Alloc(inst)
	in.table[h] = append(bucket, canonical)
	return Type[C]{inst: canonical}
}

// Len returns the number of canonical types.
func (in *Interner[C]) Len() int {
	return in.arena.Len()
}

// All returns the canonical types in the order they have been interned.
func (in *Interner[C]) All() iter.Seq[Type[C]] {
	return gxiter.Map(in.arena.All(), handle[C])
}

// KindCounts returns the number of canonical types of each kind.
func (in *Interner[C]) KindCounts() map[irkind.Kind]int {
	return countKinds(in.All())
}

// Summary returns a one-line description of the content of the interner.
func (in *Interner[C]) Summary() string {
	return summary(in.KindCounts())
}

func handle[C any](inst *Instance[C]) Type[C] {
	return Type[C]{inst: inst}
}
