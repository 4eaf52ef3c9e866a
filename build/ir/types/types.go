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

// Package types canonicalizes the types of the tile intermediate representation.
//
// An interner owns exactly one canonical Instance per distinct structural type
// and hands out Type handles to it. Two handles are equal if and only if they
// refer to the same canonical Instance, so comparing types is a pointer
// comparison.
//
// Every handle-carrying type is parameterized by a context marker C.
// Handles of different contexts have distinct Go types and cannot be compared
// or mixed: the compiler rejects it. Callers declare one marker type per
// compilation context, for example:
//
//	type kernelCtx struct{}
//	in, err := types.NewInterner[kernelCtx]()
package types

import "github.com/pkg/errors"

// ErrInvalidStructure is wrapped by all errors reporting a type
// violating a structural invariant (rank mismatch, non-positive tile extent, ...).
var ErrInvalidStructure = errors.New("invalid type structure")

func structuralf(format string, a ...any) error {
	return errors.Wrapf(ErrInvalidStructure, format, a...)
}
