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

// Package analyzer implements the constbytes static analysis pass.
//
// # Overview
//
// ConstBytes finds []byte bindings (struct fields, package variables and
// local variables) that are only ever initialized from constant values and
// never modified, moved out or handed to code that could modify them.
// Such bindings can be declared as string, which is immutable and can
// share its backing storage.
//
// # Example
//
// Before:
//
//	type Greeter struct {
//	    prefix []byte
//	}
//
//	func NewGreeter() Greeter {
//	    return Greeter{prefix: []byte("hello, ")}
//	}
//
//	func (g Greeter) Len() int {
//	    return len(g.prefix)
//	}
//
// The field prefix is reported, since it is only initialized from a
// constant and only read:
//
//	type Greeter struct {
//	    prefix string
//	}
//
// # Visibility
//
// Bindings observable from outside the package are never reported: exported
// fields of exported types, exported package variables and exported fields
// carrying a struct tag, which makes them visible to reflection based encoders.
//
// # Suppression
//
// Declarations in generated files are skipped unless -generated is set.
// A //nolint:constbytes comment on the line of a declaration excludes it.
// Uses in suppressed or generated code are still considered, so that a
// modification there keeps a binding from being reported.
package analyzer
