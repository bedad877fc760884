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

package a

import (
	"fmt"

	"test/frame"
)

func mutatedCapture() {
	count := 0
	name := "bob"

	frame.UseTaskQ(func() {
		count++        // want `Variable 'count' is mutated inside boundary 'UseTaskQ'; captured variables are copied by value and writes never leave the boundary \(sg:mut\)`
		name = "alice" // want `Variable 'name' is mutated inside boundary 'UseTaskQ'; captured variables are copied by value and writes never leave the boundary \(sg:mut\)`
	})

	fmt.Println(count, name)
}

func mutatedFunction() {
	fn := func() {}

	frame.UseTaskQ(func() {
		fn = func() {} // want `Variable 'fn' is mutated inside boundary 'UseTaskQ'; captured variables are copied by value and writes never leave the boundary \(sg:mut\)` `Variable 'fn' is captured by boundary 'UseTaskQ' but it is a function, which is not serializable \(sg:cap\)`
	})

	fn()
}

func fieldWrite() {
	person := Person{Name: "bob"}

	frame.UseTaskQ(func() {
		person.Name = "alice"
	})

	fmt.Println(person)
}

func rangeMutation() {
	idx := 0
	val := ""
	words := []string{"a", "b"}

	frame.UseTaskQ(func() {
		for idx = range words { // want `Variable 'idx' is mutated inside boundary 'UseTaskQ'; captured variables are copied by value and writes never leave the boundary \(sg:mut\)`
			_ = idx
		}

		for _, val = range words { // want `Variable 'val' is mutated inside boundary 'UseTaskQ'; captured variables are copied by value and writes never leave the boundary \(sg:mut\)`
			_ = val
		}

		for i := range words {
			_ = i
		}
	})

	fmt.Println(idx, val)
}

func localMutation() {
	frame.UseTaskQ(func() {
		count := 0
		count++
		fmt.Println(count)
	})
}
