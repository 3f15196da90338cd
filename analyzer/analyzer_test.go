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

package analyzer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/constbytes/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "./a",
		},
		{
			name:    "Generated",
			dir:     "./generated",
			options: WithGenerated(true),
		},
		{
			name:    "Explain",
			dir:     "./explain",
			options: WithExplain(true),
		},
		{
			name:    "Strict",
			dir:     "./strict",
			options: Options{WithStrict(true), WithExplain(false)},
		},
		{
			name:    "FieldsOnly",
			dir:     "./fieldsonly",
			options: Options{WithLocals(false), WithPackageVars(false), nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)
			analysistest.Run(t, testdata, a, tt.dir)
		})
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New(WithStrict(true))

	for _, tc := range [...]struct {
		name string
		want string
	}{
		{"explain", "false"},
		{"fields", "true"},
		{"generated", "false"},
		{"globals", "true"},
		{"locals", "true"},
		{"strict", "true"},
	} {
		f := a.Flags.Lookup(tc.name)
		if f == nil {
			t.Errorf("Flag -%s not registered", tc.name)

			continue
		}

		if got := f.Value.String(); got != tc.want {
			t.Errorf("Flag -%s = %s, want %s", tc.name, got, tc.want)
		}
	}

	if err := a.Flags.Set("strict", "false"); err != nil {
		t.Fatalf("Can't set flag: %v", err)
	}

	if got := a.Flags.Lookup("strict").Value.String(); got != "false" {
		t.Errorf("Flag -strict = %s after reset, want false", got)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithFields(true), Options{WithStrict(true), nil}}

	const want = "[fields=true strict=true nil=<nil>]"
	if got := opts.LogValue().String(); got != want {
		t.Errorf("LogValue() = %q, want %q", got, want)
	}
}
