// Copyright 2024 Google LLC
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

// Package iter provides common iterators.
package iter

import "iter"

// Pointers iterates over pointers to the elements of multiple slices.
// The pointers address the slices' backing arrays.
func Pointers[T any](slices ...[]T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, slice := range slices {
			for i := range slice {
				if !yield(&slice[i]) {
					return
				}
			}
		}
	}
}

// Map applies a function to every element of a sequence.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for el := range seq {
			if !yield(f(el)) {
				return
			}
		}
	}
}

// Filter iterates over the elements of a sequence
// and excludes elements for which the filter returns false.
func Filter[T any](seq iter.Seq[T], f func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for el := range seq {
			if !f(el) {
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}
