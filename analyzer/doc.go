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

// Package analyzer implements the serialguard static analysis pass.
//
// # Overview
//
// Frameworks that serialize closures for deferred or remote execution mark
// the boundary with a naming convention: a call whose name ends in the
// boundary suffix (default "Q") receives a closure that runs on the other
// side of a serialization step, as does a closure bound to a suffix-named
// handler field of a composite literal. Every variable such a closure
// captures from an enclosing scope is serialized by value, so its static
// type must be guaranteed serializable.
//
// # Example
//
// Reported:
//
//	func Component() {
//	    print := func(msg string) { fmt.Println(msg) }
//	    task.UseTaskQ(func() {
//	        print("x") // 'print' is a function, not serializable
//	    })
//	}
//
// After applying serialguard's suggested fix:
//
//	func Component() {
//	    print := task.BindQ(func(msg string) { fmt.Println(msg) })
//	    task.UseTaskQ(func() {
//	        print.Invoke("x")
//	    })
//	}
//
// # Checks
//
// The analyzer performs three checks:
//
//   - capture: a reference crossing a boundary must have a serializable type
//   - mutation: assigning to a captured variable inside a boundary is always
//     reported, since writes to a by-value copy never leave the boundary
//   - handler: an identifier bound to a suffix-named handler field must be a
//     boundary reference, not a plain function
package analyzer
