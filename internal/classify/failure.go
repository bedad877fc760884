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

package classify

import (
	"go/types"
	"strings"
)

// Failure describes why a type cannot be captured across a boundary.
type Failure struct {
	// Type is the offending (sub)type.
	Type types.Type

	// Reason is a human-readable clause, e.g. "is a function, which is not serializable".
	Reason string

	// Path is the nested field chain from the captured variable to the
	// offending sub-value. Array elements and tuple slots add no segment.
	Path []string

	// Suggest indicates that a wrap-in-constructor rewrite applies: the
	// offending value is the captured identifier itself and has function type.
	Suggest bool
}

// Clause renders the failure as a message fragment for the captured variable
// name: either the dotted path to the offending sub-value or a generic "it".
func (f *Failure) Clause(name string) string {
	if len(f.Path) == 0 {
		return "it " + f.Reason
	}

	var path strings.Builder

	path.WriteByte('\'')   // ignore error
	path.WriteString(name) // ignore error

	for _, segment := range f.Path {
		path.WriteByte('.')       // ignore error
		path.WriteString(segment) // ignore error
	}
	path.WriteByte('\'') // ignore error

	return path.String() + " " + f.Reason
}
