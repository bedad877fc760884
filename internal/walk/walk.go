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

// Package walk detects variable references that cross from inside a
// serialization boundary to a declaration outside of it.
package walk

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/serialguard/internal/boundary"
	"fillmore-labs.com/serialguard/internal/classify"
	"fillmore-labs.com/serialguard/internal/config"
)

// Crossing describes a reference whose nearest enclosing boundary differs
// from its declaration's nearest enclosing boundary.
type Crossing struct {
	// Ident is the violating reference.
	Ident *ast.Ident

	// Var is the referenced variable.
	Var *types.Var

	// Boundary is the boundary owning the usage site.
	Boundary boundary.Entry

	// Mutated indicates the reference is an assignment target.
	Mutated bool

	// Failure is the classification result, nil when capturable.
	Failure *classify.Failure
}

// Walker detects crossing references. It runs strictly after the registration
// scan: the registry must be complete before any crossing check is valid.
type Walker struct {
	// Pass is the [analysis.Pass] for type information.
	Pass *analysis.Pass

	// Registry is the completed per-file boundary registry.
	Registry boundary.Registry

	// Checks selects the enabled checks.
	Checks config.BitMask[config.Check]

	// AllowAny admits captures whose static type is the empty interface.
	AllowAny bool
}

// File walks every identifier of the file and returns the detected crossings.
// A crossing can carry both a mutation and a classification failure; both are
// reported.
func (w Walker) File(file inspector.Cursor) []Crossing {
	var crossings []Crossing

	opts := classify.Options{AllowAny: w.AllowAny, Pkg: w.Pass.Pkg}
	pkgScope := w.Pass.Pkg.Scope()

	file.Inspect([]ast.Node{(*ast.Ident)(nil)}, func(c inspector.Cursor) bool {
		id, ok := c.Node().(*ast.Ident)
		if !ok {
			return true
		}

		v, ok := w.Pass.TypesInfo.Uses[id].(*types.Var)
		if !ok {
			return true // unresolved, or not a value binding; types and constants are erased at the boundary
		}

		declScope := v.Parent()
		if declScope == nil {
			return true // struct fields and other scope-less objects
		}

		if declScope == types.Universe || declScope == pkgScope {
			return true // top-level bindings are re-evaluated at call time, not captured
		}

		usageScope := declScope.Innermost(id.Pos())
		if usageScope == nil {
			return true
		}

		usageBoundary, entry, ok := w.Registry.Nearest(usageScope)
		if !ok {
			return true // not inside any boundary
		}

		declBoundary, _, _ := w.Registry.Nearest(declScope)
		if declBoundary == usageBoundary {
			return true // declared inside the same boundary that uses it
		}

		crossing := Crossing{Ident: id, Var: v, Boundary: entry}

		if w.Checks.Enabled(config.MutationCheck) {
			crossing.Mutated = isAssigned(c)
		}

		if w.Checks.Enabled(config.CaptureCheck) {
			crossing.Failure = classify.Check(v.Type(), opts)
		}

		if crossing.Mutated || crossing.Failure != nil {
			crossings = append(crossings, crossing)
		}

		return true
	})

	return crossings
}

// isAssigned reports whether the identifier is written to: the left-hand side
// of an assignment, the operand of ++/--, or a range clause variable. Captured
// bindings are serialized by value, so such writes are never observed across
// the boundary. Range idents reached here are always the `=` form; `:=`
// defines new bindings that never resolve through Uses.
func isAssigned(c inspector.Cursor) bool {
	switch kind, _ := c.ParentEdge(); kind {
	case edge.AssignStmt_Lhs, edge.IncDecStmt_X, edge.RangeStmt_Key, edge.RangeStmt_Value:
		return true

	default:
		return false
	}
}
