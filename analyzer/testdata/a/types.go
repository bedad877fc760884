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

// Person has only exported, serializable fields.
type Person struct {
	Name string
	Age  int
}

// Config mixes serializable state with a bare function field.
type Config struct {
	Name    string
	Handler func()
}

// Button carries a suffix-named handler field.
type Button struct {
	Label    string
	OnClickQ any
}

// box is an instance type with private state.
type box struct {
	n int
}

// connection opts out of serialization checks.
type connection struct {
	NoSerialize struct{}
	fd          int
}

// stamp keeps private state but serializes itself.
type stamp struct {
	sec int64
}

func (s stamp) MarshalJSON() ([]byte, error) { return []byte(`{}`), nil }
