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

package usage

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/constbytes/internal/astutil"
	"fillmore-labs.com/constbytes/internal/candidacy"
)

// collector records usage events of one file into a candidacy store.
type collector struct {
	// Stage is the embedded configuration
	Stage

	// store receives the events.
	store *candidacy.Store

	// file is the file being walked.
	file astutil.CurrentFile
}

// inspect traverses a subtree in document order and classifies:
//   - Declarations of variables (var x, x :=, for x := range)
//   - Struct composite literals initializing fields
//   - Conversions between struct types
//   - Parameters and named results of functions
//   - References to variables and fields
func (c *collector) inspect(root inspector.Cursor) {
	nodes := []ast.Node{
		// keep-sorted start
		(*ast.AssignStmt)(nil),
		(*ast.CallExpr)(nil),
		(*ast.CompositeLit)(nil),
		(*ast.FuncType)(nil),
		(*ast.Ident)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.SelectorExpr)(nil),
		(*ast.ValueSpec)(nil),
		// keep-sorted end
	}

	root.Inspect(nodes, func(i inspector.Cursor) bool {
		switch n := i.Node().(type) {
		// keep-sorted start newline_separated=yes
		case *ast.AssignStmt:
			if n.Tok == token.DEFINE {
				c.handleShortDecl(n, i)
			}

		case *ast.CallExpr:
			c.handleConversion(n, i)

		case *ast.CompositeLit:
			c.handleCompositeLit(n, i)

		case *ast.FuncType:
			c.handleSignature(n, i)

		case *ast.Ident:
			if n.Name == "_" {
				break
			}

			c.handleIdent(n, i)

		case *ast.RangeStmt:
			if n.Tok == token.DEFINE {
				c.handleRangeDecl(n, i)
			}

		case *ast.SelectorExpr:
			c.handleSelector(n, i)

		case *ast.ValueSpec:
			c.handleValueSpec(n, i)

			// keep-sorted end
		}

		return true
	})
}
