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

package astutil

import (
	"go/ast"
	"go/token"
	"os"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// serialguard is the name of the linter.
const serialguard = "serialguard"

// CurrentFile holds per-file information for analysis: the parsed file, its
// position table and the raw source text used for suggestion slicing.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	src       []byte
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] for the given file of the pass.
func NewCurrentFile(p *analysis.Pass, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := p.Fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	src, err := readFile(p, handle.Name())
	if err != nil {
		src = nil // degrade: suggestions are skipped, diagnostics still fire
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, src, generated}
}

func readFile(p *analysis.Pass, filename string) ([]byte, error) {
	if p.ReadFile != nil {
		return p.ReadFile(filename)
	}

	return os.ReadFile(filename)
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Snippet returns the source text between pos and end, or "" when the
// source is unavailable.
func (c CurrentFile) Snippet(pos, end token.Pos) string {
	if c.src == nil || !pos.IsValid() || !end.IsValid() || pos > end {
		return ""
	}

	lo, hi := c.handle.Offset(pos), c.handle.Offset(end)
	if lo < 0 || hi > len(c.src) {
		return ""
	}

	return string(c.src[lo:hi])
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment checks if a line is followed by a //nolint:serialguard comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.line(comment.Pos()) != c.line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:serialguard` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == serialguard || l == "all" {
			return true
		}
	}

	return false
}
