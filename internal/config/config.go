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

package config

// Bindings selects the kinds of bindings that are checked.
type Bindings uint8

const (
	// FieldBindings enables checks of struct fields, including fields of nested anonymous structs.
	FieldBindings Bindings = 1 << iota

	// PackageVarBindings enables checks of package-level variables.
	PackageVarBindings

	// LocalBindings enables checks of variables declared in function bodies.
	LocalBindings
)

// Behavior represents behavioral options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to report declarations in generated files.
	IncludeGenerated Behavior = 1 << iota

	// Strict treats exclusive borrows (taking the address) as disqualifying.
	Strict

	// Explain reports the reason why tracked bindings are not candidates.
	Explain
)

// DefaultBindings returns the binding kinds checked by default.
func DefaultBindings() BitMask[Bindings] {
	return NewBitMask(FieldBindings, PackageVarBindings, LocalBindings)
}

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask[Behavior]()
}
