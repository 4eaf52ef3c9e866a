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
	"iter"
	"sync/atomic"

	"github.com/gx-org/tiletype/api/options"
	gxiter "github.com/gx-org/tiletype/base/iter"
	"github.com/gx-org/tiletype/base/sync"
	"github.com/gx-org/tiletype/build/ir/irkind"
)

// SyncInterner owns the canonical types of context C and is safe
// for concurrent use by multiple goroutines without additional locking.
//
// Canonical instances are allocated on the heap and kept alive by the
// deduplication table. Interning has a higher cost than with Interner:
// prefer Interner when types are built by a single goroutine.
type SyncInterner[C any] struct {
	builder[C]

	table sync.Map[tableKey[C], *Instance[C]]
	size  atomic.Int64
}

var _ Builder[struct{}] = (*SyncInterner[struct{}])(nil)

// NewSyncInterner returns the concurrent interner of context C.
//
// NewSyncInterner is unchecked and has the same precondition as NewInterner:
// at most one interner may ever be created for a given context type C.
func NewSyncInterner[C any](opts ...options.InternerOption) (*SyncInterner[C], error) {
	if _, err := options.Process(opts); err != nil {
		return nil, err
	}
	in := &SyncInterner[C]{}
	in.seedScalars(in.Intern)
	return in, nil
}

// Intern returns the canonical handle of an instance.
// If several goroutines intern structurally equal instances at the same time,
// exactly one instance becomes canonical and all of them get its handle.
// The zero Instance interns to the zero Type.
func (in *SyncInterner[C]) Intern(inst Instance[C]) Type[C] {
	if inst.v == nil {
		return Type[C]{}
	}
	key := inst.key()
	if canonical, ok := in.table.Load(key); ok {
		return Type[C]{inst: canonical}
	}
	// The candidate is complete before being published.
	// If another goroutine wins the race, the candidate is dropped unseen.
	candidate := new(Instance[C])
	*candidate = inst
	canonical, loaded := in.table.LoadOrStore(key, candidate)
	if !loaded {
		in.size.Add(1)
	}
	return Type[C]{inst: canonical}
}

// Len returns the number of canonical types.
func (in *SyncInterner[C]) Len() int {
	return int(in.size.Load())
}

// All returns the canonical types in an unspecified order.
func (in *SyncInterner[C]) All() iter.Seq[Type[C]] {
	return gxiter.Map(in.table.Values(), handle[C])
}

// KindCounts returns the number of canonical types of each kind.
func (in *SyncInterner[C]) KindCounts() map[irkind.Kind]int {
	return countKinds(in.All())
}

// Summary returns a one-line description of the content of the interner.
func (in *SyncInterner[C]) Summary() string {
	return summary(in.KindCounts())
}
