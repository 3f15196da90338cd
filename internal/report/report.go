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

// Package report turns verdicts into analysis diagnostics.
package report

import (
	"context"
	"fmt"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/constbytes/internal/candidacy"
	"fillmore-labs.com/constbytes/internal/usage/event"
	"fillmore-labs.com/constbytes/internal/verdict"
)

// Category is the diagnostic category of findings.
const Category = "constbytes"

// ProcessFindings reports a diagnostic for every candidate binding.
//
// With explain set, tracked bindings that are not candidates are reported
// together with the reason that disqualified them.
func ProcessFindings(ctx context.Context, p *analysis.Pass, in *inspector.Inspector, findings []verdict.Finding, explain bool) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		switch {
		case f.Verdict == verdict.Candidate:
			p.Report(candidateDiagnostic(in, f.Entry))

		case explain:
			p.Report(explainDiagnostic(f))
		}
	}
}

// candidateDiagnostic creates the diagnostic for a candidate binding.
// Related information points to the static initializations.
func candidateDiagnostic(in *inspector.Inspector, e *candidacy.Entry) analysis.Diagnostic {
	pos, end := bindingRange(e.Binding)

	var related []analysis.RelatedInformation

	for _, ev := range e.Evidence.Initializations {
		if ev.Kind != event.Initialize {
			continue
		}

		if n := ev.Site.Node(in); n != nil {
			related = append(related, analysis.RelatedInformation{
				Pos:     n.Pos(),
				End:     n.End(),
				Message: fmt.Sprintf("Initialized from %s value", ev.Source),
			})
		}
	}

	return analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: Category,
		Message: fmt.Sprintf("%s is only initialized from constants and never modified, consider using string (cb:%s)",
			describe(e.Binding), tag(e.Kind)),
		Related: related,
	}
}

// explainDiagnostic creates the diagnostic for a binding that is not a candidate.
func explainDiagnostic(f verdict.Finding) analysis.Diagnostic {
	pos, end := bindingRange(f.Binding)

	return analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: Category,
		Message:  fmt.Sprintf("%s is not a string candidate: %s (cb:%s)", describe(f.Binding), f.Reason, tag(f.Kind)),
	}
}

// bindingRange returns the range of the declaring identifier.
func bindingRange(b candidacy.Binding) (pos, end token.Pos) {
	pos = b.Pos()

	return pos, pos + token.Pos(len(b.Name()))
}

// describe names a binding for humans, e.g. "Field 'name' of 'config'".
func describe(b candidacy.Binding) string {
	switch b.Kind {
	case candidacy.Field, candidacy.PayloadField:
		return fmt.Sprintf("Field '%s' of '%s'", b.Name(), b.Owner)

	case candidacy.PackageVar:
		return fmt.Sprintf("Package variable '%s'", b.Name())

	default:
		return fmt.Sprintf("Variable '%s'", b.Name())
	}
}

// tag returns the short diagnostic tag for a binding kind.
func tag(kind candidacy.Kind) string {
	switch kind {
	case candidacy.Field:
		return "fld"

	case candidacy.PayloadField:
		return "pay"

	case candidacy.PackageVar:
		return "pkg"

	default:
		return "var"
	}
}
