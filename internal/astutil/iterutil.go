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

package astutil

import (
	"go/ast"
	"iter"
)

// NamedIdents yields the position and identifier of all non-blank identifiers in exprs.
// Expressions that are not identifiers are skipped.
func NamedIdents[E ast.Expr](exprs []E) iter.Seq2[int, *ast.Ident] {
	return func(yield func(int, *ast.Ident) bool) {
		for idx, expr := range exprs {
			id, ok := any(expr).(*ast.Ident)
			if !ok || id.Name == "_" {
				continue // blank identifier
			}

			if !yield(idx, id) {
				return
			}
		}
	}
}
