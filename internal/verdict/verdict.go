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

// Package verdict folds the evidence of tracked bindings into candidacy decisions.
//
// A binding is a candidate for string when it has at least one initialization,
// every initialization is static, it is never modified after initialization and
// every other use only borrows it. The evidence collections are inspected as
// multisets; the order of events never influences the outcome.
package verdict

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/constbytes/internal/candidacy"
	"fillmore-labs.com/constbytes/internal/usage/event"
)

// Verdict is the final decision for one binding.
type Verdict uint8

const (
	// NotCandidate bindings must stay []byte.
	NotCandidate Verdict = iota

	// Candidate bindings could be declared as string.
	Candidate
)

// Reason names the condition that disqualified a binding.
type Reason uint8

//go:generate go tool stringer -type Reason -linecomment
const (
	ReasonNone                       Reason = iota // none
	ReasonExcluded                                 // externally observable
	ReasonUninitialized                            // never initialized
	ReasonDeclaredWithoutInitializer               // declared without initializer
	ReasonDynamicInitializer                       // initialized from a non-constant value
	ReasonMutated                                  // modified after initialization
	ReasonConsumed                                 // value moved out
	ReasonExclusiveBorrow                          // address taken
)

// Policy configures the disqualification boundary.
type Policy struct {
	// Strict disqualifies exclusive borrows, since the resulting pointer permits writes.
	Strict bool
}

// Judge decides the verdict for a store entry. Excluded entries are never candidates.
func Judge(e *candidacy.Entry, p Policy) (Verdict, Reason) {
	if e.Excluded() {
		return NotCandidate, ReasonExcluded
	}

	return Decide(e.Evidence, p)
}

// Decide folds one evidence record into a verdict.
//
// The conditions are checked in a fixed order, so the reported reason does not
// depend on the traversal order either.
func Decide(ev candidacy.Evidence, p Policy) (Verdict, Reason) {
	initialized := false

	for _, in := range ev.Initializations {
		if in.Kind == event.DeclaredWithoutInitializer {
			return NotCandidate, ReasonDeclaredWithoutInitializer
		}

		initialized = true
	}

	if !initialized {
		return NotCandidate, ReasonUninitialized
	}

	for _, in := range ev.Initializations {
		if !in.Source.Static() {
			return NotCandidate, ReasonDynamicInitializer
		}
	}

	if len(ev.Mutations) > 0 {
		return NotCandidate, ReasonMutated
	}

	exclusive := false

	for _, use := range ev.Uses {
		switch use.Kind {
		case event.Borrow:
			exclusive = exclusive || use.Borrow == event.Exclusive

		case event.PatternDestructure:
			if use.Mode == event.ByValue {
				return NotCandidate, ReasonConsumed
			}

		default:
			return NotCandidate, ReasonConsumed
		}
	}

	if p.Strict && exclusive {
		return NotCandidate, ReasonExclusiveBorrow
	}

	return Candidate, ReasonNone
}

// Finding is the verdict for one tracked binding.
type Finding struct {
	*candidacy.Entry
	Verdict Verdict
	Reason  Reason
}

// Evaluate decides all tracked entries of a finished store.
//
// It must only run after declaration scanning and usage classification of the
// whole package are complete. Excluded entries produce no findings.
func Evaluate(ctx context.Context, st *candidacy.Store, p Policy) []Finding {
	defer trace.StartRegion(ctx, "Verdict").End()

	var findings []Finding

	for e := range st.All() {
		if e.Excluded() {
			continue
		}

		v, r := Judge(e, p)
		findings = append(findings, Finding{Entry: e, Verdict: v, Reason: r})
	}

	return findings
}
