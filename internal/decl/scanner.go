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

package decl

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/constbytes/internal/astutil"
	"fillmore-labs.com/constbytes/internal/candidacy"
	"fillmore-labs.com/constbytes/internal/config"
	"fillmore-labs.com/constbytes/internal/syntax"
)

// Scanner seeds the candidacy store from Go declarations.
type Scanner struct {
	// Pass is an embedded [analysis.Pass] for error reporting
	*analysis.Pass

	facts syntax.Facts

	// bindings selects the binding kinds to seed.
	bindings config.BitMask[config.Bindings]

	// includeGenerated keeps declarations in generated files tracked.
	includeGenerated bool
}

// New creates a [Scanner].
func New(p *analysis.Pass, facts syntax.Facts, bindings config.BitMask[config.Bindings], behavior config.BitMask[config.Behavior]) Scanner {
	return Scanner{
		Pass:             p,
		facts:            facts,
		bindings:         bindings,
		includeGenerated: behavior.Enabled(config.IncludeGenerated),
	}
}

// ScanFile seeds all struct fields and package-level variables declared in a file.
// Types declared in function bodies are included.
func (s Scanner) ScanFile(ctx context.Context, st *candidacy.Store, file inspector.Cursor, cf astutil.CurrentFile) {
	defer trace.StartRegion(ctx, "Declarations").End()

	if s.bindings.Enabled(config.FieldBindings) {
		for c := range file.Preorder((*ast.TypeSpec)(nil)) {
			s.scanType(st, c.Node().(*ast.TypeSpec), cf)
		}
	}

	if !s.bindings.Enabled(config.PackageVarBindings) {
		return
	}

	f, ok := file.Node().(*ast.File)
	if !ok {
		return
	}

	for _, d := range f.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}

		for _, spec := range gen.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for _, id := range astutil.NamedIdents(vspec.Names) {
				if v, ok := s.facts.Defined(id); ok {
					s.SeedVar(st, id, v, candidacy.PackageVar, cf)
				}
			}
		}
	}
}

// scanType seeds the fields of a struct type declaration.
func (s Scanner) scanType(st *candidacy.Store, spec *ast.TypeSpec, cf astutil.CurrentFile) {
	item, ok := s.ItemOf(spec)
	if !ok {
		return
	}

	if err := Scan(st, item); err != nil {
		astutil.InternalError(s.Pass, spec.Name, "%v", err)
	}

	for b := range item.Bindings() {
		if cf.Suppressed(b.Pos(), s.includeGenerated) {
			st.Exclude(b.Var)
		}
	}
}

// ItemOf describes a struct type declaration as an [Item].
// Type aliases and non-struct types are not items.
func (s Scanner) ItemOf(spec *ast.TypeSpec) (Item, bool) {
	str, ok := spec.Type.(*ast.StructType)
	if !ok || spec.Assign.IsValid() {
		return Item{}, false
	}

	tn, ok := s.facts.Info().Defs[spec.Name].(*types.TypeName)
	if !ok {
		return Item{}, false
	}

	item := Item{Name: spec.Name.Name, Public: s.facts.Exported(tn)}

	for f, id := range fields(str.Fields) {
		nested, ok := f.Type.(*ast.StructType)
		if !ok {
			if slot, ok := s.slotOf(f, id, true); ok {
				item.Slots = append(item.Slots, slot)
			}

			continue
		}

		p := Payload{Name: id.Name, Public: id.IsExported()}
		s.addPayload(&p, nested, true, f.Tag != nil && id.IsExported())
		item.Payloads = append(item.Payloads, p)
	}

	return item, true
}

// addPayload flattens the fields of a nested anonymous struct into slots of p.
// Visibility and reflection reachability are inherited from the enclosing fields;
// encoders do not descend into unexported fields.
func (s Scanner) addPayload(p *Payload, str *ast.StructType, public, reflected bool) {
	if t, ok := s.facts.Info().TypeOf(str).(*types.Struct); ok {
		p.Shapes = append(p.Shapes, t)
	}

	for f, id := range fields(str.Fields) {
		if nested, ok := f.Type.(*ast.StructType); ok {
			s.addPayload(p, nested, public && id.IsExported(), (reflected || f.Tag != nil) && id.IsExported())

			continue
		}

		if slot, ok := s.slotOf(f, id, public); ok {
			slot.Reflected = slot.Reflected || reflected
			p.Slots = append(p.Slots, slot)
		}
	}
}

// slotOf creates the slot for a named field.
func (s Scanner) slotOf(f *ast.Field, id *ast.Ident, public bool) (Slot, bool) {
	v, ok := s.facts.Defined(id)
	if !ok {
		return Slot{}, false
	}

	return Slot{
		Var:       v,
		Public:    public && id.IsExported(),
		Reflected: f.Tag != nil,
		Tracked:   s.facts.Tracked(v.Type()),
	}, true
}

// SeedVar seeds a package-level or local variable.
// Package-level variables are public when exported, locals are always private.
func (s Scanner) SeedVar(st *candidacy.Store, id *ast.Ident, v *types.Var, kind candidacy.Kind, cf astutil.CurrentFile) {
	if !s.enabled(kind) || !s.facts.Tracked(v.Type()) {
		return
	}

	public := kind == candidacy.PackageVar && s.facts.Exported(v)
	if err := st.Seed(candidacy.NewBinding(v, kind, ""), public); err != nil {
		astutil.InternalError(s.Pass, id, "Variable %s: %v", id.Name, err)
	}

	if cf.Suppressed(id.Pos(), s.includeGenerated) {
		st.Exclude(v)
	}
}

// enabled reports whether bindings of the given kind are checked.
func (s Scanner) enabled(kind candidacy.Kind) bool {
	switch kind {
	case candidacy.Field, candidacy.PayloadField:
		return s.bindings.Enabled(config.FieldBindings)

	case candidacy.PackageVar:
		return s.bindings.Enabled(config.PackageVarBindings)

	case candidacy.Local:
		return s.bindings.Enabled(config.LocalBindings)

	default:
		return false
	}
}

// fields yields all named, non-blank fields of a field list. Embedded fields are skipped.
func fields(list *ast.FieldList) iter.Seq2[*ast.Field, *ast.Ident] {
	return func(yield func(*ast.Field, *ast.Ident) bool) {
		if list == nil {
			return
		}

		for _, f := range list.List {
			for _, id := range astutil.NamedIdents(f.Names) {
				if !yield(f, id) {
					return
				}
			}
		}
	}
}
