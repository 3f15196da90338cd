// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package run drives the constbytes pipeline for one package.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/constbytes/internal/astutil"
	"fillmore-labs.com/constbytes/internal/candidacy"
	"fillmore-labs.com/constbytes/internal/config"
	"fillmore-labs.com/constbytes/internal/decl"
	"fillmore-labs.com/constbytes/internal/report"
	"fillmore-labs.com/constbytes/internal/syntax"
	"fillmore-labs.com/constbytes/internal/usage"
	"fillmore-labs.com/constbytes/internal/verdict"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the constbytes analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("constbytes: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Bindings.Empty() {
		return nil, nil // nothing to check
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ConstBytes")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	findings := r.Analyze(ctx, p, in)

	report.ProcessFindings(ctx, p, in, findings, r.Behavior.Enabled(config.Explain))

	return nil, nil
}

// Analyze runs declaration scanning, usage classification and the verdict stage over all files of a package.
func (r *Options) Analyze(ctx context.Context, p *analysis.Pass, in *inspector.Inspector) []verdict.Finding {
	facts := syntax.New(p.TypesInfo, p.Pkg)
	scanner := decl.New(p, facts, r.Bindings, r.Behavior)
	us := usage.New(p, facts, scanner)

	files := make([]fileCursor, 0, len(p.Files))

	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		files = append(files, fileCursor{f, currentFile})
	}

	// The store is owned by this run and dropped after the verdict stage.
	st := candidacy.NewStore()

	// Stage 1: seed all fields and package-level variables, so that every use sees its declaration
	for _, f := range files {
		scanner.ScanFile(ctx, st, f.cursor, f.currentFile)
	}

	// Stage 2: classify all uses. Generated files are walked too, since they can modify bindings.
	for _, f := range files {
		us.TrackUsage(ctx, st, f.cursor, f.currentFile)
	}

	// Stage 3: decide
	policy := verdict.Policy{Strict: r.Behavior.Enabled(config.Strict)}

	return verdict.Evaluate(ctx, st, policy)
}

// fileCursor pairs a file's cursor with its file information.
type fileCursor struct {
	cursor      inspector.Cursor
	currentFile astutil.CurrentFile
}
