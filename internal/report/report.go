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

// Package report renders and emits the serialguard diagnostics.
package report

import (
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/serialguard/internal/astutil"
	"fillmore-labs.com/serialguard/internal/boundary"
	"fillmore-labs.com/serialguard/internal/walk"
)

// Findings aggregates the results of the scan and walk passes for one file.
type Findings struct {
	Misuses   []boundary.Misuse
	Crossings []walk.Crossing
}

// Process renders and emits all diagnostics for one file.
//
// This is the final phase of the pipeline. Every finding becomes a
// non-blocking report; nolint comments suppress individual lines.
func Process(p *analysis.Pass, currentFile astutil.CurrentFile, findings Findings, wrapper string) {
	for _, misuse := range findings.Misuses {
		reportMisuse(p, currentFile, misuse, wrapper)
	}

	for _, crossing := range findings.Crossings {
		reportCrossing(p, currentFile, crossing, wrapper)
	}
}

// reportMisuse emits a diagnostic for a plain function bound to a handler
// field, with a suggested rewrite of the full declaration.
func reportMisuse(p *analysis.Pass, currentFile astutil.CurrentFile, misuse boundary.Misuse, wrapper string) {
	if currentFile.NoLintComment(misuse.Ref.Pos()) {
		return
	}

	message := fmt.Sprintf(
		"'%s' is used as handler field '%s' but is a plain function, not a serializable reference; wrap it in %s() (sg:hdl)",
		misuse.Ref.Name, misuse.Key.Name, wrapper)

	diagnostic := analysis.Diagnostic{
		Pos:     misuse.Ref.Pos(),
		End:     misuse.Ref.End(),
		Message: message,
		Related: []analysis.RelatedInformation{{
			Pos:     misuse.Key.Pos(),
			End:     misuse.Key.End(),
			Message: fmt.Sprintf("Bound to this '%s' field", misuse.Key.Name),
		}},
	}

	if fix := wrapDeclaration(p, misuse.Ref, wrapper); fix != nil {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{*fix}
	}

	p.Report(diagnostic)
}

// reportCrossing emits the diagnostics for one crossing reference. A mutated,
// non-serializable capture reports twice.
func reportCrossing(p *analysis.Pass, currentFile astutil.CurrentFile, crossing walk.Crossing, wrapper string) {
	id := crossing.Ident
	if currentFile.NoLintComment(id.Pos()) {
		return
	}

	if crossing.Mutated {
		message := fmt.Sprintf(
			"Variable '%s' is mutated inside boundary '%s'; captured variables are copied by value and writes never leave the boundary (sg:mut)",
			id.Name, crossing.Boundary.Name)

		p.Report(analysis.Diagnostic{
			Pos:     id.Pos(),
			End:     id.End(),
			Message: message,
			Related: related(crossing.Boundary),
		})
	}

	if fail := crossing.Failure; fail != nil {
		message := fmt.Sprintf(
			"Variable '%s' is captured by boundary '%s' but %s (sg:cap)",
			id.Name, crossing.Boundary.Name, fail.Clause(id.Name))

		diagnostic := analysis.Diagnostic{
			Pos:     id.Pos(),
			End:     id.End(),
			Message: message,
			Related: related(crossing.Boundary),
		}

		if fail.Suggest {
			if fix := wrapDeclaration(p, id, wrapper); fix != nil {
				diagnostic.SuggestedFixes = []analysis.SuggestedFix{*fix}
			}
		}

		p.Report(diagnostic)
	}
}

func related(e boundary.Entry) []analysis.RelatedInformation {
	return []analysis.RelatedInformation{{
		Pos:     e.Pos,
		End:     e.End,
		Message: fmt.Sprintf("Captured by boundary '%s'", e.Name),
	}}
}
