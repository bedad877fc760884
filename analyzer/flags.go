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
	"flag"

	"fillmore-labs.com/serialguard/internal/config"
)

// registerFlags binds the run options to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(maskValue[config.Check]{mask: &r.checks, flag: config.CaptureCheck},
		"capture", "check captured variables for serializability")
	flags.Var(maskValue[config.Check]{mask: &r.checks, flag: config.MutationCheck},
		"mutation", "check for mutation of captured variables")
	flags.Var(maskValue[config.Check]{mask: &r.checks, flag: config.HandlerCheck},
		"handler", "check handler fields for plain functions")

	flags.Var(maskValue[config.Behavior]{mask: &r.behavior, flag: config.AllowAny},
		"allow-any", "accept captures typed as the empty interface")
	flags.Var(maskValue[config.Behavior]{mask: &r.behavior, flag: config.IncludeGenerated},
		"generated", "check generated files")

	flags.StringVar(&r.suffix, "suffix", r.suffix, "boundary naming suffix")
	flags.StringVar(&r.wrapper, "wrapper", r.wrapper, "boundary constructor named in suggested fixes")
}
