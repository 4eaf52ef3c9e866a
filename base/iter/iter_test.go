// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package iter_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/tiletype/base/iter"
)

func TestPointers(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"d", "e"}
	var got []string
	for p := range iter.Pointers(a, b) {
		got = append(got, *p)
		*p += "!"
	}
	want := []string{"a", "b", "c", "d", "e"}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
	if a[0] != "a!" || b[1] != "e!" {
		t.Errorf("pointers do not address the slices: got %v and %v", a, b)
	}
}

func TestPointersStop(t *testing.T) {
	n := 0
	for range iter.Pointers([]int{0, 1}, []int{2, 3}) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d iterations but want 3", n)
	}
}

func isEven(n int) bool {
	return n%2 == 0
}

func TestFilter(t *testing.T) {
	got := slices.Collect(iter.Filter(slices.Values([]int{0, 1, 2, 3, 4, 5}), isEven))
	want := []int{0, 2, 4}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func TestMap(t *testing.T) {
	got := slices.Collect(iter.Map(slices.Values([]int{1, 2, 3}), func(x int) int { return x * x }))
	want := []int{1, 4, 9}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}
