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

import (
	"log/slog"

	"fillmore-labs.com/serialguard/internal/config"
)

// Option configures specific behavior of a [New] serialguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithCapture is an [Option] to configure whether capture checks are enabled.
func WithCapture(capture bool) Option { return captureOption{capture: capture} }

type captureOption struct{ capture bool }

func (o captureOption) apply(r *runOptions) {
	r.checks.Set(config.CaptureCheck, o.capture)
}

func (o captureOption) LogAttr() slog.Attr {
	return slog.Bool("capture", o.capture)
}

// WithMutation is an [Option] to configure whether mutation checks are enabled.
func WithMutation(mutation bool) Option { return mutationOption{mutation: mutation} }

type mutationOption struct{ mutation bool }

func (o mutationOption) apply(r *runOptions) {
	r.checks.Set(config.MutationCheck, o.mutation)
}

func (o mutationOption) LogAttr() slog.Attr {
	return slog.Bool("mutation", o.mutation)
}

// WithHandler is an [Option] to configure whether handler binding checks are enabled.
func WithHandler(handler bool) Option { return handlerOption{handler: handler} }

type handlerOption struct{ handler bool }

func (o handlerOption) apply(r *runOptions) {
	r.checks.Set(config.HandlerCheck, o.handler)
}

func (o handlerOption) LogAttr() slog.Attr {
	return slog.Bool("handler", o.handler)
}

// WithAllowAny is an [Option] to configure whether captures of the empty
// interface are accepted.
func WithAllowAny(allowAny bool) Option { return allowAnyOption{allowAny: allowAny} }

type allowAnyOption struct{ allowAny bool }

func (o allowAnyOption) apply(r *runOptions) {
	r.behavior.Set(config.AllowAny, o.allowAny)
}

func (o allowAnyOption) LogAttr() slog.Attr {
	return slog.Bool("allow-any", o.allowAny)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSuffix is an [Option] to configure the boundary naming suffix.
// An empty suffix is replaced by the default.
func WithSuffix(suffix string) Option { return suffixOption{suffix: suffix} }

type suffixOption struct{ suffix string }

func (o suffixOption) apply(r *runOptions) {
	if o.suffix == "" {
		r.suffix = defaultSuffix

		return
	}

	r.suffix = o.suffix
}

func (o suffixOption) LogAttr() slog.Attr {
	return slog.String("suffix", o.suffix)
}

// WithWrapper is an [Option] to configure the boundary constructor named in
// suggested fixes. An empty wrapper is replaced by the default.
func WithWrapper(wrapper string) Option { return wrapperOption{wrapper: wrapper} }

type wrapperOption struct{ wrapper string }

func (o wrapperOption) apply(r *runOptions) {
	if o.wrapper == "" {
		r.wrapper = defaultWrapper

		return
	}

	r.wrapper = o.wrapper
}

func (o wrapperOption) LogAttr() slog.Attr {
	return slog.String("wrapper", o.wrapper)
}
