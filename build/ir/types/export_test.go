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

import "github.com/gx-org/tiletype/base/arena"

// NewCollidingInterner returns an interner where all instances have the same hash.
func NewCollidingInterner[C any]() *Interner[C] {
	in := &Interner[C]{
		arena: arena.New[Instance[C]](0),
		table: make(map[uint64][]*Instance[C]),
		hash:  func(Instance[C]) uint64 { return 0 },
	}
	in.seedScalars(in.Intern)
	return in
}

// NumBuckets returns the number of distinct hashes in the deduplication table.
func NumBuckets[C any](in *Interner[C]) int {
	return len(in.table)
}
