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

// Package config holds the flag sets shared between the analyzer front end
// and the analysis stages.
package config

// Check represents the individual checks of the serialguard analyzer.
type Check uint8

const (
	// CaptureCheck enables classification of variables captured across boundaries.
	CaptureCheck Check = 1 << iota

	// MutationCheck enables detection of assignments to captured variables.
	MutationCheck

	// HandlerCheck enables validation of identifiers bound to handler fields.
	HandlerCheck
)

// Behavior represents behavioral options of the analyzer.
type Behavior uint8

const (
	// AllowAny admits values whose static type is the empty interface.
	AllowAny Behavior = 1 << iota

	// IncludeGenerated specifies whether to analyze generated files.
	IncludeGenerated
)
