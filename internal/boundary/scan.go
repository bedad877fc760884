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

package boundary

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/serialguard/internal/classify"
)

// Scan is the boundary registration pass over a single file.
type Scan struct {
	// Pass is the [analysis.Pass] for type information.
	Pass *analysis.Pass

	// Suffix is the boundary naming convention, e.g. "Q" for UseTaskQ.
	Suffix string

	// Registry receives every registered boundary scope.
	Registry Registry

	// CheckHandlers enables validation of identifiers bound to handler fields.
	CheckHandlers bool
}

// Misuse records an identifier bound to a suffix-named handler field without
// being a boundary reference.
type Misuse struct {
	Key *ast.Ident // the handler field
	Ref *ast.Ident // the offending identifier
}

// File registers every boundary of the file and collects handler misuse
// findings. Boundaries are registered on node entry, before their interior
// is visited.
func (s Scan) File(file inspector.Cursor) []Misuse {
	var misuses []Misuse

	nodes := []ast.Node{
		// keep-sorted start
		(*ast.CallExpr)(nil),
		(*ast.CompositeLit)(nil),
		// keep-sorted end
	}

	file.Inspect(nodes, func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.CallExpr:
			s.handleCall(n)

		case *ast.CompositeLit:
			misuses = append(misuses, s.handleLiteral(n)...)
		}

		return true
	})

	return misuses
}

// handleCall registers the closure passed as first argument to a suffix-named call.
func (s Scan) handleCall(call *ast.CallExpr) {
	name, ok := s.boundaryName(call.Fun)
	if !ok || len(call.Args) == 0 {
		return
	}

	if lit, ok := ast.Unparen(call.Args[0]).(*ast.FuncLit); ok {
		s.register(lit, name)
	}
}

// handleLiteral inspects suffix-named key/value fields of a composite literal.
// A closure value becomes a boundary; a bare identifier must already be a
// boundary reference, otherwise it is a misuse.
func (s Scan) handleLiteral(lit *ast.CompositeLit) []Misuse {
	var misuses []Misuse

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}

		key, ok := kv.Key.(*ast.Ident)
		if !ok || !s.matchesSuffix(key.Name) || !s.fieldKey(key) {
			continue
		}

		switch value := ast.Unparen(kv.Value).(type) {
		case *ast.FuncLit:
			s.register(value, key.Name)

		case *ast.Ident:
			if s.CheckHandlers && s.plainFunction(value) {
				misuses = append(misuses, Misuse{Key: key, Ref: value})
			}
		}
	}

	return misuses
}

func (s Scan) register(lit *ast.FuncLit, name string) {
	scope, ok := s.Pass.TypesInfo.Scopes[lit.Type]
	if !ok {
		return // no scope information, skip
	}

	s.Registry.Add(scope, Entry{Name: name, Pos: lit.Pos(), End: lit.End()})
}

// boundaryName extracts the callee name when it carries the boundary suffix.
// Cross-package calls are spelled as selectors, so both forms match.
func (s Scan) boundaryName(fun ast.Expr) (string, bool) {
	var name string

	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		name = f.Name

	case *ast.SelectorExpr:
		name = f.Sel.Name

	case *ast.IndexExpr: // generic instantiation
		return s.boundaryName(f.X)

	case *ast.IndexListExpr:
		return s.boundaryName(f.X)

	default:
		return "", false
	}

	if !s.matchesSuffix(name) {
		return "", false
	}

	return name, true
}

// fieldKey reports whether the key identifier names a struct field. Map and
// array literals use suffix-named constants or variables as keys; those index
// values, they do not bind handlers.
func (s Scan) fieldKey(key *ast.Ident) bool {
	v, ok := s.Pass.TypesInfo.Uses[key].(*types.Var)

	return ok && v.IsField()
}

func (s Scan) matchesSuffix(name string) bool {
	return s.Suffix != "" && len(name) > len(s.Suffix) && strings.HasSuffix(name, s.Suffix)
}

// plainFunction reports whether the identifier has a bare function type
// rather than a boundary-reference brand or an allowed adapter type.
func (s Scan) plainFunction(id *ast.Ident) bool {
	t := s.Pass.TypesInfo.TypeOf(id)
	if t == nil || classify.Branded(t) {
		return false
	}

	if n, ok := types.Unalias(t).(*types.Named); ok && classify.AllowedAdapter(n) {
		return false
	}

	_, ok := t.Underlying().(*types.Signature)

	return ok
}
