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

package gclplugin

import constbytes "fillmore-labs.com/constbytes/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Fields enables checks of struct fields.
	Fields *bool `json:"fields,omitzero"`
	// Locals enables checks of local variables.
	Locals *bool `json:"locals,omitzero"`
	// Globals enables checks of package-level variables.
	Globals *bool `json:"globals,omitzero"`
	// Strict rejects bindings whose address is taken.
	Strict *bool `json:"strict,omitzero"`
	// Explain reports why tracked bindings are not candidates.
	Explain *bool `json:"explain,omitzero"`
}

// Options converts [Settings] into a list of [constbytes.Option] for the constbytes analyzer.
// Only explicitly set (non-nil) settings are applied.
func (s Settings) Options() []constbytes.Option {
	var opts []constbytes.Option

	opts = appendOption(opts, s.Fields, constbytes.WithFields)
	opts = appendOption(opts, s.Locals, constbytes.WithLocals)
	opts = appendOption(opts, s.Globals, constbytes.WithPackageVars)
	opts = appendOption(opts, s.Strict, constbytes.WithStrict)
	opts = appendOption(opts, s.Explain, constbytes.WithExplain)

	return opts
}

// appendOption appends a non-nil setting to a [constbytes.Option] list.
func appendOption[T any](opts []constbytes.Option, value *T, constructor func(T) constbytes.Option) []constbytes.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
