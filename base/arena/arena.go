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

// Package arena provides an append-only allocator with stable addresses.
package arena

import (
	"iter"

	gxiter "github.com/gx-org/tiletype/base/iter"
)

// DefaultChunkSize is the number of values in a chunk when no size is given.
const DefaultChunkSize = 256

// Arena allocates values of type T in fixed-size chunks.
// A chunk is never reallocated once created: the address
// returned by Alloc stays valid as long as the arena is reachable.
// There is no way to free a single value.
//
// An arena is not safe for concurrent use.
type Arena[T any] struct {
	chunkSize int
	chunks    [][]T
	n         int
}

// New returns a new arena allocating chunkSize values at a time.
// A non-positive chunkSize selects DefaultChunkSize.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// Alloc copies v into the arena and returns its permanent address.
func (a *Arena[T]) Alloc(v T) *T {
	last := len(a.chunks) - 1
	if last < 0 || len(a.chunks[last]) == cap(a.chunks[last]) {
		a.chunks = append(a.chunks, make([]T, 0, a.chunkSize))
		last++
	}
	// Appending within capacity does not move the chunk.
	chunk := append(a.chunks[last], v)
	a.chunks[last] = chunk
	a.n++
	return &chunk[len(chunk)-1]
}

// Len returns the number of values allocated in the arena.
func (a *Arena[T]) Len() int {
	return a.n
}

// NumChunks returns the number of chunks backing the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// All returns the addresses of all the allocated values in allocation order.
func (a *Arena[T]) All() iter.Seq[*T] {
	return gxiter.Pointers(a.chunks...)
}
