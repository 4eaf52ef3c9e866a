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
	"fmt"
	"iter"
	"slices"
	"strings"

	gxiter "github.com/gx-org/tiletype/base/iter"
	"github.com/gx-org/tiletype/base/stringseq"
	"github.com/gx-org/tiletype/build/ir/irkind"
	"golang.org/x/exp/maps"
)

// OfKind filters a sequence of types to keep only the types of a given kind.
func OfKind[C any](seq iter.Seq[Type[C]], kind irkind.Kind) iter.Seq[Type[C]] {
	return gxiter.Filter(seq, func(t Type[C]) bool {
		return t.Kind() == kind
	})
}

func countKinds[C any](seq iter.Seq[Type[C]]) map[irkind.Kind]int {
	counts := make(map[irkind.Kind]int)
	for t := range seq {
		counts[t.Kind()]++
	}
	return counts
}

func summary(counts map[irkind.Kind]int) string {
	if len(counts) == 0 {
		return "empty"
	}
	var s strings.Builder
	kinds := maps.Keys(counts)
	slices.Sort(kinds)
	stringseq.AppendFunc(&s, slices.Values(kinds), func(k irkind.Kind) string {
		return fmt.Sprintf("%s:%d", k, counts[k])
	}, " ")
	return s.String()
}
