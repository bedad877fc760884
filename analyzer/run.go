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
	"errors"
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/serialguard/internal/astutil"
	"fillmore-labs.com/serialguard/internal/boundary"
	"fillmore-labs.com/serialguard/internal/config"
	"fillmore-labs.com/serialguard/internal/report"
	"fillmore-labs.com/serialguard/internal/walk"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the serialguard pipeline.
//
// Analysis is per file: a fresh registry is built by the scan pass, then the
// walk pass detects crossings against the completed registry. The two passes
// never interleave; the walker depends on a fully populated registry.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("serialguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	root := in.Root()

	root.Inspect([]ast.Node{(*ast.File)(nil)}, func(c inspector.Cursor) bool {
		file, ok := c.Node().(*ast.File)
		if !ok {
			return false
		}

		currentFile := astutil.NewCurrentFile(p, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without file info", file.Name.Name)

			return false
		}

		if currentFile.Generated() && !r.behavior.Enabled(config.IncludeGenerated) {
			return false
		}

		// Pass 1: register every boundary of the file. Registration happens
		// on node entry, so each boundary is recorded before its interior.
		registry := boundary.NewRegistry()

		scan := boundary.Scan{
			Pass:          p,
			Suffix:        r.suffix,
			Registry:      registry,
			CheckHandlers: r.checks.Enabled(config.HandlerCheck),
		}

		misuses := scan.File(c)

		// Pass 2: detect crossing references against the completed registry.
		var crossings []walk.Crossing

		if len(registry) > 0 {
			w := walk.Walker{
				Pass:     p,
				Registry: registry,
				Checks:   r.checks,
				AllowAny: r.behavior.Enabled(config.AllowAny),
			}

			crossings = w.File(c)
		}

		// Pass 3: render diagnostics.
		report.Process(p, currentFile, report.Findings{Misuses: misuses, Crossings: crossings}, r.wrapper)

		return false
	})

	return nil, nil
}
