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

package gclplugin

import serialguard "fillmore-labs.com/serialguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Capture enables serializability checks on captured variables.
	Capture *bool `json:"capture,omitzero"`
	// Mutation enables checks for mutation of captured variables.
	Mutation *bool `json:"mutation,omitzero"`
	// Handler enables checks for plain functions bound to handler fields.
	Handler *bool `json:"handler,omitzero"`
	// AllowAny accepts captures typed as the empty interface.
	AllowAny *bool `json:"allow-any,omitzero"`
	// Suffix sets the boundary naming suffix.
	Suffix *string `json:"suffix,omitzero"`
	// Wrapper sets the boundary constructor named in suggested fixes.
	Wrapper *string `json:"wrapper,omitzero"`
}

// Options converts [Settings] into a list of [serialguard.Option] for the serialguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []serialguard.Option {
	var opts []serialguard.Option

	opts = appendOption(opts, s.Capture, serialguard.WithCapture)
	opts = appendOption(opts, s.Mutation, serialguard.WithMutation)
	opts = appendOption(opts, s.Handler, serialguard.WithHandler)
	opts = appendOption(opts, s.AllowAny, serialguard.WithAllowAny)
	opts = appendOption(opts, s.Suffix, serialguard.WithSuffix)
	opts = appendOption(opts, s.Wrapper, serialguard.WithWrapper)

	return opts
}

// appendOption appends a non-nil setting to a [serialguard.Option] list.
func appendOption[T any](opts []serialguard.Option, value *T, constructor func(T) serialguard.Option) []serialguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
