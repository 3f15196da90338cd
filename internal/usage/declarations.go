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
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/constbytes/internal/astutil"
	"fillmore-labs.com/constbytes/internal/candidacy"
	"fillmore-labs.com/constbytes/internal/usage/event"
)

// handleShortDecl processes short variable declarations (x := ...).
// Names reused from an outer declaration are references and handled by handleIdent.
func (c *collector) handleShortDecl(stmt *ast.AssignStmt, i inspector.Cursor) {
	for idx, id := range astutil.NamedIdents(stmt.Lhs) {
		v, ok := c.facts.Defined(id)
		if !ok {
			continue // reassignment, or symbolic variable in type switch
		}

		c.scanner.SeedVar(c.store, id, v, candidacy.Local, c.file)

		c.store.Record(v, c.initialization(i, edge.AssignStmt_Rhs, stmt.Rhs, len(stmt.Lhs), idx))
	}
}

// handleValueSpec processes var declarations (var x, y = ...), both package-level and local.
func (c *collector) handleValueSpec(spec *ast.ValueSpec, i inspector.Cursor) {
	for idx, id := range astutil.NamedIdents(spec.Names) {
		v, ok := c.facts.Defined(id)
		if !ok {
			continue // constant
		}

		if !c.facts.PackageLevel(v) {
			c.scanner.SeedVar(c.store, id, v, candidacy.Local, c.file)
		}

		if len(spec.Values) == 0 {
			site := astutil.NodeIndexOf(i.ChildAt(edge.ValueSpec_Names, idx))
			c.store.Record(v, event.Plain(event.DeclaredWithoutInitializer, site))

			continue
		}

		c.store.Record(v, c.initialization(i, edge.ValueSpec_Values, spec.Values, len(spec.Names), idx))
	}
}

// handleRangeDecl processes variables declared by a range clause (for k, v := range ...).
func (c *collector) handleRangeDecl(stmt *ast.RangeStmt, i inspector.Cursor) {
	for _, e := range [...]struct {
		expr ast.Expr
		kind edge.Kind
	}{
		{stmt.Key, edge.RangeStmt_Key},
		{stmt.Value, edge.RangeStmt_Value},
	} {
		id, ok := e.expr.(*ast.Ident)
		if !ok || id.Name == "_" {
			continue
		}

		v, ok := c.facts.Defined(id)
		if !ok {
			continue
		}

		c.scanner.SeedVar(c.store, id, v, candidacy.Local, c.file)

		site := astutil.NodeIndexOf(i.ChildAt(e.kind, -1))
		c.store.Record(v, event.Initialization(event.SourceRange, site))
	}
}

// handleSignature processes parameters and named results of function declarations and literals.
// Parameters receive arbitrary values from callers; results start out as nil.
func (c *collector) handleSignature(ft *ast.FuncType, i inspector.Cursor) {
	if kind, _ := i.ParentEdge(); kind != edge.FuncDecl_Type && kind != edge.FuncLit_Type {
		return // function type expression
	}

	if ft.Params != nil {
		c.seedFields(i.ChildAt(edge.FuncType_Params, -1), ft.Params, func(site astutil.NodeIndex) event.Event {
			return event.Initialization(event.SourceDynamic, site)
		})
	}

	if ft.Results != nil {
		c.seedFields(i.ChildAt(edge.FuncType_Results, -1), ft.Results, func(site astutil.NodeIndex) event.Event {
			return event.Plain(event.DeclaredWithoutInitializer, site)
		})
	}
}

// seedFields seeds the named variables of a parameter list and records their initial event.
func (c *collector) seedFields(list inspector.Cursor, fields *ast.FieldList, initial func(astutil.NodeIndex) event.Event) {
	for fi, f := range fields.List {
		for ni, id := range f.Names {
			if id.Name == "_" {
				continue
			}

			v, ok := c.facts.Defined(id)
			if !ok {
				continue
			}

			c.scanner.SeedVar(c.store, id, v, candidacy.Local, c.file)

			site := list.ChildAt(edge.FieldList_List, fi).ChildAt(edge.Field_Names, ni)
			c.store.Record(v, initial(astutil.NodeIndexOf(site)))
		}
	}
}

// handleCompositeLit records field initializations of struct composite literals.
// Omitted fields are not recorded.
func (c *collector) handleCompositeLit(lit *ast.CompositeLit, i inspector.Cursor) {
	str, ok := c.facts.Struct(lit)
	if !ok {
		return
	}

	for idx, elt := range lit.Elts {
		site := i.ChildAt(edge.CompositeLit_Elts, idx)

		field, value := idx, elt
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			key, ok := kv.Key.(*ast.Ident)
			if !ok {
				continue
			}

			field, value = fieldIndex(str, key.Name), kv.Value
			site = site.ChildAt(edge.KeyValueExpr_Value, -1)
		}

		if field < 0 || field >= str.NumFields() {
			continue
		}

		ev := event.Initialization(c.facts.Source(value), astutil.NodeIndexOf(site))
		for v := range c.fieldsOf(str, field) {
			c.store.Record(v, ev)
		}
	}
}

// initialization creates the initialization event for the idx-th of n declared names.
func (c *collector) initialization(i inspector.Cursor, values edge.Kind, rhs []ast.Expr, n, idx int) event.Event {
	if len(rhs) != n {
		// x, y := f()
		return event.Initialization(event.SourceMultiValue, astutil.NodeIndexOf(i))
	}

	site := astutil.NodeIndexOf(i.ChildAt(values, idx))

	return event.Initialization(c.facts.Source(rhs[idx]), site)
}

// fieldIndex returns the index of the field of str with the given name, or -1.
func fieldIndex(str *types.Struct, name string) int {
	for idx := range str.NumFields() {
		if str.Field(idx).Name() == name {
			return idx
		}
	}

	return -1
}

// fieldsOf yields the bindings the field at idx of str stands for.
//
// Fields of anonymous struct types spelled out again, like in
// m.header = struct{ tag []byte }{...}, stand for the fields of every
// identical payload type declared.
func (c *collector) fieldsOf(str *types.Struct, idx int) iter.Seq[*types.Var] {
	return func(yield func(*types.Var) bool) {
		v := str.Field(idx)
		if _, ok := c.store.Lookup(v); ok {
			yield(v)

			return
		}

		for shape := range c.store.Shapes(str) {
			if !yield(shape.Field(idx)) {
				return
			}
		}
	}
}
