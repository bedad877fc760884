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
	"io"
	"time"

	"test/frame"
)

func capturedFunction() {
	print := func(msg string) { fmt.Println(msg) }

	frame.UseTaskQ(func() {
		print("hello") // want `Variable 'print' is captured by boundary 'UseTaskQ' but it is a function, which is not serializable \(sg:cap\)`
	})
}

func boundReference() {
	greet := frame.BindQ(func() { fmt.Println("hi") })

	frame.UseTaskQ(func() {
		greet.Invoke()
	})
}

var counter = 0

func packageLevel() {
	frame.UseTaskQ(func() {
		fmt.Println(counter)
	})
}

func nestedBoundaries() {
	x := 1

	frame.UseTaskQ(func() {
		y := x * 2

		frame.UseTaskQ(func() {
			fmt.Println(y)
		})
	})
}

func nestedFunction() {
	frame.UseTaskQ(func() {
		inner := func() {}

		frame.UseTaskQ(func() {
			inner() // want `Variable 'inner' is captured by boundary 'UseTaskQ' but it is a function, which is not serializable \(sg:cap\)`
		})
	})
}

func capturedChannel() {
	ch := make(chan int)

	frame.UseTaskQ(func() {
		<-ch // want `Variable 'ch' is captured by boundary 'UseTaskQ' but it is a channel, which can never be serialized \(sg:cap\)`
	})
}

func capturedInterface(r io.Reader) {
	frame.UseTaskQ(func() {
		_, _ = r.Read(nil) // want `Variable 'r' is captured by boundary 'UseTaskQ' but it has interface type 'io.Reader', which may or may not be serializable, narrow it to a concrete type \(sg:cap\)`
	})
}

func nestedField() {
	cfg := Config{Name: "x", Handler: func() {}}

	frame.UseTaskQ(func() {
		fmt.Println(cfg.Name) // want `Variable 'cfg' is captured by boundary 'UseTaskQ' but 'cfg.Handler' is a function, which is not serializable \(sg:cap\)`
	})
}

func capturedTime() {
	now := time.Now()

	frame.UseTaskQ(func() {
		fmt.Println(now)
	})
}

func capturedError(err error) {
	frame.UseTaskQ(func() {
		if err != nil {
			fmt.Println(err)
		}
	})
}

func genericBoundary() {
	fn := func() {}

	_ = frame.RunQ[int](func() int {
		fn() // want `Variable 'fn' is captured by boundary 'RunQ' but it is a function, which is not serializable \(sg:cap\)`

		return 0
	})
}

func suppressed() {
	fn := func() {}

	frame.UseTaskQ(func() {
		fn() //nolint:serialguard // runs in-process only
	})
}
