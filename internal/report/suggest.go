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

package report

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/serialguard/internal/astutil"
)

// wrapDeclaration builds a suggested fix that rewrites the declaration of the
// referenced function inside the boundary constructor. The suggestion is
// synthesized textually from the original declaration source, with blank
// lines stripped and the body re-indented (no AST transformation).
//
// Returns nil whenever the declaration shape is unsupported; the diagnostic
// is still reported without a fix.
func wrapDeclaration(p *analysis.Pass, ref *ast.Ident, wrapper string) *analysis.SuggestedFix {
	obj := p.TypesInfo.ObjectOf(ref)
	if obj == nil || !obj.Pos().IsValid() {
		return nil
	}

	file := fileContaining(p, obj.Pos())
	if file == nil {
		return nil
	}

	src := astutil.NewCurrentFile(p, file)
	if !src.Valid() {
		return nil
	}

	decl := findDeclaration(file, obj.Pos())

	var newText string

	switch {
	case decl.assign != nil:
		value := src.Snippet(decl.value.Pos(), decl.value.End())
		if value == "" {
			return nil
		}

		newText = fmt.Sprintf("%s := %s(%s)", decl.name, wrapper, reindent(value))

	case decl.varDecl != nil:
		value := src.Snippet(decl.value.Pos(), decl.value.End())
		if value == "" {
			return nil
		}

		newText = fmt.Sprintf("var %s = %s(%s)", decl.name, wrapper, reindent(value))

	case decl.funcDecl != nil:
		fd := decl.funcDecl
		if fd.Recv != nil || fd.Body == nil {
			return nil // methods stay methods
		}

		// Drop the name between "func" and the parameter list.
		body := "func" + src.Snippet(fd.Type.Params.Pos(), fd.End())
		if body == "func" {
			return nil
		}

		newText = fmt.Sprintf("var %s = %s(%s)", decl.name, wrapper, reindent(body))

	default:
		return nil
	}

	return &analysis.SuggestedFix{
		Message: fmt.Sprintf("Wrap '%s' in %s()", decl.name, wrapper),
		TextEdits: []analysis.TextEdit{
			{Pos: decl.node.Pos(), End: decl.node.End(), NewText: []byte(newText)},
		},
	}
}

// fileContaining locates the syntax file of the pass covering pos.
func fileContaining(p *analysis.Pass, pos token.Pos) *ast.File {
	for _, file := range p.Files {
		if file.FileStart <= pos && pos < file.FileEnd {
			return file
		}
	}

	return nil
}

// declaration is the located declaration site of a function-valued binding.
// Exactly one of assign, varDecl and funcDecl is set.
type declaration struct {
	node     ast.Node
	name     string
	value    ast.Expr
	assign   *ast.AssignStmt
	varDecl  *ast.GenDecl
	funcDecl *ast.FuncDecl
}

// findDeclaration walks the file for the declaration whose defining
// identifier sits at pos. Only single-name, single-value forms qualify for a
// rewrite.
func findDeclaration(file *ast.File, pos token.Pos) declaration {
	var found declaration

	ast.Inspect(file, func(n ast.Node) bool {
		if n == nil || found.node != nil {
			return false
		}

		if pos < n.Pos() || n.End() <= pos {
			return false // prune subtrees not covering pos
		}

		switch n := n.(type) {
		case *ast.AssignStmt:
			if n.Tok != token.DEFINE || len(n.Lhs) != 1 || len(n.Rhs) != 1 {
				break
			}

			if id, ok := n.Lhs[0].(*ast.Ident); ok && id.Pos() == pos {
				found = declaration{node: n, name: id.Name, value: n.Rhs[0], assign: n}
			}

		case *ast.GenDecl:
			if n.Tok != token.VAR || len(n.Specs) != 1 {
				break
			}

			vspec, ok := n.Specs[0].(*ast.ValueSpec)
			if !ok || len(vspec.Names) != 1 || len(vspec.Values) != 1 {
				break
			}

			if vspec.Names[0].Pos() == pos {
				found = declaration{node: n, name: vspec.Names[0].Name, value: vspec.Values[0], varDecl: n}
			}

		case *ast.FuncDecl:
			if n.Name != nil && n.Name.Pos() == pos {
				found = declaration{node: n, name: n.Name.Name, funcDecl: n}
			}
		}

		return found.node == nil
	})

	return found
}

// reindent strips blank lines and re-indents every continuation line by two
// extra spaces, so the declaration reads naturally inside the wrapper call.
func reindent(s string) string {
	var b strings.Builder

	first := true

	for line := range strings.SplitSeq(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if first {
			first = false
		} else {
			b.WriteString("\n  ") // ignore error
		}

		b.WriteString(line) // ignore error
	}

	return b.String()
}
