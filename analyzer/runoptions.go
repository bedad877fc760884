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

package analyzer

import "fillmore-labs.com/serialguard/internal/config"

// Default naming conventions of the boundary framework.
const (
	// defaultSuffix marks boundary-creating calls and handler fields.
	defaultSuffix = "Q"

	// defaultWrapper is the boundary constructor used in suggestions.
	defaultWrapper = "BindQ"
)

// runOptions represent configuration options for the serialguard analyzer.
type runOptions struct {
	// checks represents the checks to be enabled.
	checks config.BitMask[config.Check]

	// behavior holds behavioral options.
	behavior config.BitMask[config.Behavior]

	// suffix is the boundary naming convention.
	suffix string

	// wrapper is the boundary constructor named in suggestions.
	wrapper string
}

// defaultRunOptions initializes a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		checks:   config.NewBitMask(config.CaptureCheck | config.MutationCheck | config.HandlerCheck),
		behavior: config.NewBitMask(config.AllowAny),
		suffix:   defaultSuffix,
		wrapper:  defaultWrapper,
	}
}
