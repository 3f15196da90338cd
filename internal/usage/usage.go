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

// Package usage classifies every reference to a tracked binding into a usage event.
package usage

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/constbytes/internal/astutil"
	"fillmore-labs.com/constbytes/internal/candidacy"
	"fillmore-labs.com/constbytes/internal/decl"
	"fillmore-labs.com/constbytes/internal/syntax"
)

// Stage configures and runs the usage classification stage.
type Stage struct {
	*analysis.Pass

	facts syntax.Facts

	// scanner seeds local variables as their declarations are visited.
	scanner decl.Scanner
}

// New creates a usage [Stage].
func New(p *analysis.Pass, facts syntax.Facts, scanner decl.Scanner) Stage {
	return Stage{Pass: p, facts: facts, scanner: scanner}
}

// TrackUsage walks a file and records usage events for all bindings in the store.
//
// All declarations visible to the file, except locals, must have been seeded before.
// The store is only used for the duration of the call.
func (us Stage) TrackUsage(ctx context.Context, st *candidacy.Store, file inspector.Cursor, cf astutil.CurrentFile) {
	defer trace.StartRegion(ctx, "Usage").End()

	c := collector{Stage: us, store: st, file: cf}

	c.inspect(file)
}
