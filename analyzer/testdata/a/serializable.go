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

func capturedInstance() {
	b := box{n: 1}

	frame.UseTaskQ(func() {
		fmt.Println(b) // want `Variable 'b' is captured by boundary 'UseTaskQ' but it is an instance of type 'box' with unexported fields, which is not serializable, use a plain struct \(sg:cap\)`
	})
}

func optedOut() {
	var conn connection

	frame.UseTaskQ(func() {
		fmt.Println(conn)
	})
}

func selfSerializing() {
	s := stamp{sec: 1}

	frame.UseTaskQ(func() {
		fmt.Println(s)
	})
}

func capturedAny() {
	var payload any = 1

	frame.UseTaskQ(func() {
		fmt.Println(payload)
	})
}
