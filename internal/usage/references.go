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
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/constbytes/internal/astutil"
	"fillmore-labs.com/constbytes/internal/syntax"
	"fillmore-labs.com/constbytes/internal/usage/event"
)

// handleIdent processes references to variables.
// Declaring identifiers are not references; field identifiers are handled by handleSelector.
func (c *collector) handleIdent(id *ast.Ident, i inspector.Cursor) {
	v, ok := c.facts.Variable(id)
	if !ok {
		return
	}

	c.record(v, i)
}

// handleSelector processes references to struct fields (x.f).
func (c *collector) handleSelector(sel *ast.SelectorExpr, i inspector.Cursor) {
	s, ok := c.facts.Selection(sel)
	if !ok {
		return
	}

	str, idx, ok := syntax.Selected(s)
	if !ok {
		if v, ok := s.Obj().(*types.Var); ok {
			c.record(v, i)
		}

		return
	}

	for v := range c.fieldsOf(str, idx) {
		c.record(v, i)
	}
}

// handleConversion processes conversions between distinct struct types (T(x) or (*T)(&x)).
// The result shares the arrays of the converted fields under other field objects,
// so the fields of the operand are consumed.
func (c *collector) handleConversion(call *ast.CallExpr, i inspector.Cursor) {
	if len(call.Args) != 1 || !c.facts.Conversion(call) {
		return
	}

	to, from := c.facts.Info().TypeOf(call), c.facts.Info().TypeOf(call.Args[0])
	if to == nil || from == nil || types.Identical(to, from) {
		return
	}

	if _, ok := syntax.StructOf(to); !ok {
		return
	}

	str, ok := syntax.StructOf(from)
	if !ok {
		return
	}

	c.consumeFields(str, event.Plain(event.Consume, astutil.NodeIndexOf(i.ChildAt(edge.CallExpr_Args, 0))))
}

// consumeFields records ev for every field of str, descending into anonymous struct fields.
func (c *collector) consumeFields(str *types.Struct, ev event.Event) {
	for idx := range str.NumFields() {
		for v := range c.fieldsOf(str, idx) {
			c.store.Record(v, ev)
		}

		t := str.Field(idx).Type()
		if p, ok := t.(*types.Pointer); ok {
			t = p.Elem()
		}

		if nested, ok := t.(*types.Struct); ok {
			c.consumeFields(nested, ev)
		}
	}
}

// record classifies a reference to v and records the event if v is tracked.
func (c *collector) record(v *types.Var, ref inspector.Cursor) {
	if e, ok := c.store.Lookup(v); !ok || e.Excluded() {
		return
	}

	c.store.Record(v, c.classify(ref))
}

// classify determines the usage event for a reference by its syntactic context.
//
// Parentheses and slicing are looked through, since x[i:j] shares the array of x.
// Taking the address is a borrow, never a consume.
func (c *collector) classify(ref inspector.Cursor) event.Event {
	site := astutil.NodeIndexOf(ref)

	for cur := ref; ; {
		kind, idx := cur.ParentEdge()
		parent := cur.Parent()

		switch kind {
		case edge.ParenExpr_X, edge.SliceExpr_X:
			cur = parent

			continue

		case edge.UnaryExpr_X:
			if parent.Node().(*ast.UnaryExpr).Op == token.AND {
				return event.Borrowing(event.Exclusive, site)
			}

		case edge.IndexExpr_X:
			return c.classifyElement(parent, site)

		case edge.AssignStmt_Lhs, edge.RangeStmt_Key, edge.RangeStmt_Value:
			return event.Plain(event.Mutate, site)

		case edge.RangeStmt_X:
			return event.Destructuring(event.ByReference, site)

		case edge.BinaryExpr_X, edge.BinaryExpr_Y:
			// x == nil
			return event.Borrowing(event.Shared, site)

		case edge.CallExpr_Args:
			return c.classifyArgument(parent.Node().(*ast.CallExpr), idx, site)
		}

		return event.Plain(event.Consume, site)
	}
}

// classifyElement determines the usage event for an element access x[i].
func (c *collector) classifyElement(elem inspector.Cursor, site astutil.NodeIndex) event.Event {
	for {
		switch kind, _ := elem.ParentEdge(); kind {
		case edge.ParenExpr_X:
			elem = elem.Parent()

			continue

		case edge.AssignStmt_Lhs, edge.IncDecStmt_X, edge.RangeStmt_Key, edge.RangeStmt_Value:
			return event.Plain(event.Mutate, site)

		case edge.UnaryExpr_X:
			if elem.Parent().Node().(*ast.UnaryExpr).Op == token.AND {
				return event.Borrowing(event.Exclusive, site)
			}
		}

		return event.Borrowing(event.Shared, site)
	}
}

// classifyArgument determines the usage event for the idx-th argument of a call.
//
// Only conversions to string and builtins with known effects are borrows;
// any other function may retain or modify its argument.
func (c *collector) classifyArgument(call *ast.CallExpr, idx int, site astutil.NodeIndex) event.Event {
	if c.facts.Conversion(call) {
		if c.facts.StringConversion(call) {
			return event.Borrowing(event.Shared, site)
		}

		return event.Plain(event.Consume, site)
	}

	name, ok := c.facts.Builtin(call)
	if !ok {
		return event.Plain(event.Consume, site)
	}

	switch name {
	case "len", "cap", "print", "println":
		return event.Borrowing(event.Shared, site)

	case "copy":
		if idx == 0 {
			return event.Plain(event.Mutate, site)
		}

		return event.Borrowing(event.Shared, site)

	case "clear":
		return event.Plain(event.Mutate, site)

	case "append":
		if idx > 0 && idx == len(call.Args)-1 && call.Ellipsis.IsValid() {
			// append(y, x...)
			return event.Borrowing(event.Shared, site)
		}
	}

	return event.Plain(event.Consume, site)
}
