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

// Package options specifies options for type interners.
package options

import (
	"github.com/gx-org/tiletype/base/arena"
	"github.com/pkg/errors"
)

type (
	// InternerOption is an option given when an interner is created.
	InternerOption interface {
		internerOption()
	}

	// ArenaChunkSize sets the number of canonical types allocated
	// at once by the arena of a single-owner interner.
	// Ignored by the concurrent interner which allocates from the heap.
	ArenaChunkSize struct {
		Size int
	}

	// TableCapacity sets the initial capacity of the deduplication table.
	TableCapacity struct {
		Size int
	}

	// Config is the result of processing a list of options.
	Config struct {
		// ChunkSize is the number of values per arena chunk.
		ChunkSize int
		// Capacity is the initial number of entries of the deduplication table.
		Capacity int
	}
)

func (ArenaChunkSize) internerOption() {}

func (TableCapacity) internerOption() {}

// DefaultCapacity is the initial capacity of a deduplication table.
const DefaultCapacity = 64

// Process a list of options into a configuration.
// Options are applied in order: the last of each type wins.
func Process(opts []InternerOption) (Config, error) {
	cfg := Config{
		ChunkSize: arena.DefaultChunkSize,
		Capacity:  DefaultCapacity,
	}
	for _, option := range opts {
		switch optionT := option.(type) {
		case ArenaChunkSize:
			if optionT.Size <= 0 {
				return Config{}, errors.Errorf("arena chunk size %d is not positive", optionT.Size)
			}
			cfg.ChunkSize = optionT.Size
		case TableCapacity:
			if optionT.Size < 0 {
				return Config{}, errors.Errorf("table capacity %d is negative", optionT.Size)
			}
			cfg.Capacity = optionT.Size
		default:
			return Config{}, errors.Errorf("option of type %T not supported", optionT)
		}
	}
	return cfg, nil
}
