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

package suffix

// Card carries a handler field under the configured naming convention.
type Card struct {
	OnOpenAsync any
}

func runAsync(fn func()) { fn() }

func useQ(fn func()) { fn() }

func capture() {
	helper := func() {}

	runAsync(func() {
		helper() // want `Variable 'helper' is captured by boundary 'runAsync' but it is a function, which is not serializable \(sg:cap\)`
	})
}

func defaultSuffixIgnored() {
	helper := func() {}

	useQ(func() {
		helper()
	})
}

func plainHandler() {
	open := func() {}

	_ = Card{
		OnOpenAsync: open, // want `'open' is used as handler field 'OnOpenAsync' but is a plain function, not a serializable reference; wrap it in WrapAsync\(\) \(sg:hdl\)`
	}
}
