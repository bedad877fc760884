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

// Package frame is a minimal stand-in for a framework that serializes
// closures for deferred execution.
package frame

// Ref is a serializable handle to a wrapped function.
type Ref struct{ id string }

// SerializableRef brands Ref as safe to capture.
func (Ref) SerializableRef() {}

// Invoke calls the wrapped function on the other side of the boundary.
func (Ref) Invoke(args ...any) {}

// EventHandler is a typed adapter accepted by handler fields.
type EventHandler func(name string)

// BindQ wraps a function into a serializable reference.
func BindQ(fn any) Ref { return Ref{} }

// UseTaskQ schedules fn to run after serialization.
func UseTaskQ(fn func()) {}

// RunQ schedules fn and returns its result.
func RunQ[T any](fn func() T) T {
	var zero T

	return zero
}
