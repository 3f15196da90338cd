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

// Package syntax answers type and constant questions about the syntax tree.
//
// [Facts] is a read-only side table over [types.Info], passed explicitly to the
// declaration scanner and the usage classifier.
package syntax

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/constbytes/internal/usage/event"
)

// Facts provides type, constant and visibility facts for one package.
type Facts struct {
	info  *types.Info
	scope *types.Scope
	owned types.Type
}

// New creates [Facts] for a type-checked package.
func New(info *types.Info, pkg *types.Package) Facts {
	return Facts{
		info:  info,
		scope: pkg.Scope(),
		owned: types.NewSlice(types.Typ[types.Byte]),
	}
}

// Info returns the underlying type information.
func (f Facts) Info() *types.Info {
	return f.info
}

// Tracked reports whether t is the owned byte buffer type []byte.
//
// Named types like json.RawMessage are not tracked, since they cannot be replaced by string.
func (f Facts) Tracked(t types.Type) bool {
	return t != nil && types.Identical(t, f.owned)
}

// Exported reports whether obj is visible outside of the package.
// Objects declared in function bodies are never exported.
func (f Facts) Exported(obj types.Object) bool {
	return obj.Exported() && obj.Parent() == f.scope
}

// PackageLevel reports whether v is a package-level variable.
func (f Facts) PackageLevel(v *types.Var) bool {
	return v.Parent() == f.scope
}

// Defined returns the variable declared by id.
func (f Facts) Defined(id *ast.Ident) (*types.Var, bool) {
	v, ok := f.info.Defs[id].(*types.Var)

	return v, ok
}

// Variable returns the non-field variable id refers to.
func (f Facts) Variable(id *ast.Ident) (*types.Var, bool) {
	v, ok := f.info.Uses[id].(*types.Var)
	if !ok || v.IsField() {
		return nil, false
	}

	return v, true
}

// Selection returns the field selection of sel.
func (f Facts) Selection(sel *ast.SelectorExpr) (*types.Selection, bool) {
	s, ok := f.info.Selections[sel]
	if !ok || s.Kind() != types.FieldVal {
		return nil, false
	}

	return s, true
}

// Struct returns the struct type constructed by a composite literal.
func (f Facts) Struct(lit *ast.CompositeLit) (*types.Struct, bool) {
	t := f.info.TypeOf(lit)
	if t == nil {
		return nil, false
	}

	// Elided literals in []*T{{...}} are recorded with the pointer type.
	return StructOf(t)
}

// StructOf returns the struct type underlying t or the type t points to.
func StructOf(t types.Type) (*types.Struct, bool) {
	if p, ok := t.Underlying().(*types.Pointer); ok {
		t = p.Elem()
	}

	s, ok := t.Underlying().(*types.Struct)

	return s, ok
}

// Selected returns the struct declaring the field of a field selection and the field's index in it.
// Promoted fields are resolved through the embedding path.
func Selected(s *types.Selection) (*types.Struct, int, bool) {
	path := s.Index()
	t := s.Recv()

	for _, idx := range path[:len(path)-1] {
		str, ok := StructOf(t)
		if !ok {
			return nil, 0, false
		}

		t = str.Field(idx).Type()
	}

	str, ok := StructOf(t)
	if !ok {
		return nil, 0, false
	}

	return str, path[len(path)-1], true
}

// StringConversion reports whether call converts its argument to a string type.
func (f Facts) StringConversion(call *ast.CallExpr) bool {
	tv, ok := f.info.Types[call.Fun]
	if !ok || !tv.IsType() {
		return false
	}

	b, ok := tv.Type.Underlying().(*types.Basic)

	return ok && b.Info()&types.IsString != 0
}

// Conversion reports whether call is a type conversion.
func (f Facts) Conversion(call *ast.CallExpr) bool {
	tv, ok := f.info.Types[call.Fun]

	return ok && tv.IsType()
}

// Builtin returns the name of the builtin function called, if any.
func (f Facts) Builtin(call *ast.CallExpr) (string, bool) {
	b, ok := typeutil.Callee(f.info, call).(*types.Builtin)
	if !ok {
		return "", false
	}

	return b.Name(), true
}

// Source classifies an initializer expression of a tracked binding.
//
// Conversions of constant expressions, nil and composite literals with only
// constant elements are static, everything else is dynamic.
func (f Facts) Source(expr ast.Expr) event.Source {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		if _, ok := f.info.Uses[e].(*types.Nil); ok {
			return event.SourceNil
		}

	case *ast.CallExpr:
		if len(e.Args) != 1 || e.Ellipsis.IsValid() || !f.Conversion(e) || !f.Tracked(f.info.TypeOf(e)) {
			break
		}

		switch tv := f.info.Types[e.Args[0]]; {
		case tv.Value != nil:
			return event.SourceConstant

		case tv.IsNil():
			// []byte(nil)
			return event.SourceNil
		}

	case *ast.CompositeLit:
		if !f.Tracked(f.info.TypeOf(e)) {
			break
		}

		for _, elt := range e.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				if !f.constant(kv.Key) || !f.constant(kv.Value) {
					return event.SourceDynamic
				}

				continue
			}

			if !f.constant(elt) {
				return event.SourceDynamic
			}
		}

		return event.SourceConstComposite
	}

	return event.SourceDynamic
}

// constant reports whether expr has a compile-time constant value.
func (f Facts) constant(expr ast.Expr) bool {
	tv, ok := f.info.Types[expr]

	return ok && tv.Value != nil
}
