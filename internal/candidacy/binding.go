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

package candidacy

import (
	"go/token"
	"go/types"
)

// Kind describes what a [Binding] is declared as.
type Kind uint8

const (
	// Field is a field of a declared struct type.
	Field Kind = iota

	// PayloadField is a field of an anonymous struct nested in a declared struct type.
	PayloadField

	// PackageVar is a package-level variable.
	PackageVar

	// Local is a variable declared in a function body.
	Local
)

// Binding is one declared storage location.
//
// Identity is the variable object, never the name: two bindings spelled the same
// but declared at different sites are distinct.
type Binding struct {
	// Var is the declared variable or field. For fields of generic types this is the origin field.
	Var *types.Var

	// Kind is the declaration kind.
	Kind Kind

	// Owner is the path of the enclosing type for fields, e.g. "config.limits". Empty otherwise.
	Owner string
}

// NewBinding creates a [Binding] for the origin of v.
func NewBinding(v *types.Var, kind Kind, owner string) Binding {
	return Binding{Var: v.Origin(), Kind: kind, Owner: owner}
}

// Name returns the declared name.
func (b Binding) Name() string {
	return b.Var.Name()
}

// Pos returns the position of the declaring identifier.
func (b Binding) Pos() token.Pos {
	return b.Var.Pos()
}
