// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package boundary registers serialization boundaries and maps lexical scopes
// to the boundary construct that owns them.
package boundary

import (
	"go/token"
	"go/types"
)

// Entry describes a registered boundary: its display name (the suffix-named
// callee or handler field) and the source range of its closure.
type Entry struct {
	Name     string
	Pos, End token.Pos
}

// Registry maps the scope of every boundary closure in one file to the
// boundary construct that owns it. It is populated monotonically during the
// scan pass and lives for exactly one file analysis.
type Registry map[*types.Scope]Entry

// NewRegistry creates an empty per-file [Registry].
func NewRegistry() Registry {
	return make(Registry)
}

// Add registers a boundary scope.
func (r Registry) Add(scope *types.Scope, e Entry) {
	if scope != nil {
		r[scope] = e
	}
}

// Nearest walks from scope upward through parent links and returns the first
// registered boundary scope, if any.
func (r Registry) Nearest(scope *types.Scope) (*types.Scope, Entry, bool) {
	for s := scope; s != nil; s = s.Parent() {
		if e, ok := r[s]; ok {
			return s, e, true
		}
	}

	return nil, Entry{}, false
}
