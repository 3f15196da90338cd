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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It handles the boilerplate of parsing, type-checking and wrapping Go source
// into an [analysis.Pass], so that the constbytes stages can be tested on
// small source files.
package testsource

import (
	"bytes"
	"cmp"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Source is a parsed and type-checked single file package.
type Source struct {
	Fset      *token.FileSet
	File      *ast.File
	Pkg       *types.Package
	Info      *types.Info
	Inspector *inspector.Inspector
}

// Load parses and type checks a complete Go source file.
func Load(tb testing.TB, src string) Source {
	tb.Helper()

	fset, f := Parse(tb, src)
	pkg, info := Check(tb, fset, f)

	return Source{
		Fset:      fset,
		File:      f,
		Pkg:       pkg,
		Info:      info,
		Inspector: inspector.New([]*ast.File{f}),
	}
}

// LoadFunc is like [Load], but wraps the source fragment in a function body
// `func _() { ... }` within a package `test`. This allows testing statement-level
// code without manually constructing the surrounding scaffolding.
func LoadFunc(tb testing.TB, src string) Source {
	tb.Helper()

	return Load(tb, wrapSource(src))
}

// Parse parses a Go source file into an AST.
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Pass creates an [analysis.Pass] for the source with the inspector result available.
// Reported diagnostics are appended to diagnostics.
func (s Source) Pass(diagnostics *[]analysis.Diagnostic) *analysis.Pass {
	return &analysis.Pass{
		Analyzer:   &analysis.Analyzer{Name: "test"},
		Fset:       s.Fset,
		Files:      []*ast.File{s.File},
		Pkg:        s.Pkg,
		TypesInfo:  s.Info,
		TypesSizes: types.SizesFor("gc", "amd64"),
		ResultOf:   map[*analysis.Analyzer]any{inspect.Analyzer: s.Inspector},
		Report:     func(d analysis.Diagnostic) { *diagnostics = append(*diagnostics, d) },
	}
}

// FileCursor returns the cursor of the source file.
func (s Source) FileCursor() inspector.Cursor {
	for c := range s.Inspector.Root().Children() {
		return c
	}

	return s.Inspector.Root()
}

// Lookup returns the object declared with the given name in the source.
// Package-level objects take precedence, otherwise the first declaration is returned.
func (s Source) Lookup(tb testing.TB, name string) types.Object {
	tb.Helper()

	if obj := s.Pkg.Scope().Lookup(name); obj != nil {
		return obj
	}

	objs := s.Objects(name)
	if len(objs) == 0 {
		tb.Fatalf("Can't find %s", name)
	}

	return objs[0]
}

// Objects returns all objects declared with the given name in source order.
func (s Source) Objects(name string) []types.Object {
	var objs []types.Object

	for id, obj := range s.Info.Defs {
		if obj != nil && id.Name == name {
			objs = append(objs, obj)
		}
	}

	slices.SortFunc(objs, func(a, b types.Object) int { return cmp.Compare(a.Pos(), b.Pos()) })

	return objs
}

func wrapSource(src string) string {
	const (
		header     = "package " + testpkg + "\n\nfunc _() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return srcFile.String()
}
