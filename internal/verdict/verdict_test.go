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

package verdict_test

import (
	"context"
	"go/types"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/constbytes/internal/candidacy"
	"fillmore-labs.com/constbytes/internal/usage/event"
	. "fillmore-labs.com/constbytes/internal/verdict"
)

var (
	constant  = event.Initialization(event.SourceConstant, 1)
	nilInit   = event.Initialization(event.SourceNil, 2)
	dynamic   = event.Initialization(event.SourceDynamic, 3)
	multi     = event.Initialization(event.SourceMultiValue, 4)
	undecl    = event.Plain(event.DeclaredWithoutInitializer, 5)
	mutate    = event.Plain(event.Mutate, 6)
	consume   = event.Plain(event.Consume, 7)
	shared    = event.Borrowing(event.Shared, 8)
	exclusive = event.Borrowing(event.Exclusive, 9)
	byRef     = event.Destructuring(event.ByReference, 10)
	byValue   = event.Destructuring(event.ByValue, 11)
)

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		evidence candidacy.Evidence
		policy   Policy
		want     Verdict
		reason   Reason
	}{
		{
			name:     "constant_only",
			evidence: candidacy.Evidence{Initializations: []event.Event{constant}},
			want:     Candidate,
		},
		{
			name: "borrowed",
			evidence: candidacy.Evidence{
				Initializations: []event.Event{constant, nilInit},
				Uses:            []event.Event{shared, byRef, exclusive},
			},
			want: Candidate,
		},
		{
			name:     "never_initialized",
			evidence: candidacy.Evidence{Uses: []event.Event{shared}},
			reason:   ReasonUninitialized,
		},
		{
			name: "declared_without_initializer",
			evidence: candidacy.Evidence{
				Initializations: []event.Event{constant, undecl},
				Mutations:       []event.Event{mutate},
			},
			reason: ReasonDeclaredWithoutInitializer,
		},
		{
			name:     "one_dynamic",
			evidence: candidacy.Evidence{Initializations: []event.Event{constant, dynamic, constant}},
			reason:   ReasonDynamicInitializer,
		},
		{
			name:     "multi_value",
			evidence: candidacy.Evidence{Initializations: []event.Event{multi}},
			reason:   ReasonDynamicInitializer,
		},
		{
			name: "mutated",
			evidence: candidacy.Evidence{
				Initializations: []event.Event{constant},
				Mutations:       []event.Event{mutate},
				Uses:            []event.Event{consume},
			},
			reason: ReasonMutated,
		},
		{
			name: "consumed",
			evidence: candidacy.Evidence{
				Initializations: []event.Event{constant},
				Uses:            []event.Event{shared, consume},
			},
			reason: ReasonConsumed,
		},
		{
			name: "destructured_by_value",
			evidence: candidacy.Evidence{
				Initializations: []event.Event{constant},
				Uses:            []event.Event{byValue},
			},
			reason: ReasonConsumed,
		},
		{
			name: "exclusive_strict",
			evidence: candidacy.Evidence{
				Initializations: []event.Event{constant},
				Uses:            []event.Event{exclusive, shared},
			},
			policy: Policy{Strict: true},
			reason: ReasonExclusiveBorrow,
		},
		{
			name: "shared_strict",
			evidence: candidacy.Evidence{
				Initializations: []event.Event{constant},
				Uses:            []event.Event{shared},
			},
			policy: Policy{Strict: true},
			want:   Candidate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, reason := Decide(tt.evidence, tt.policy)
			if got != tt.want || reason != tt.reason {
				t.Errorf("Decide() = %d, %s, want %d, %s", got, reason, tt.want, tt.reason)
			}
		})
	}
}

func TestDecideOrderIndependent(t *testing.T) {
	t.Parallel()

	evidences := []candidacy.Evidence{
		{
			Initializations: []event.Event{constant, dynamic, undecl},
			Mutations:       []event.Event{mutate},
			Uses:            []event.Event{shared, consume, exclusive},
		},
		{
			Initializations: []event.Event{constant, nilInit, multi},
			Uses:            []event.Event{byRef, byValue, shared},
		},
		{
			Initializations: []event.Event{constant, nilInit},
			Uses:            []event.Event{byRef, exclusive, shared},
		},
	}

	for _, policy := range [...]Policy{{Strict: false}, {Strict: true}} {
		for _, ev := range evidences {
			want, wantReason := Decide(ev, policy)

			for inits := range permutations(ev.Initializations) {
				for uses := range permutations(ev.Uses) {
					permuted := candidacy.Evidence{Initializations: inits, Mutations: ev.Mutations, Uses: uses}

					if got, reason := Decide(permuted, policy); got != want || reason != wantReason {
						t.Errorf("Decide(%v) = %d, %s, want %d, %s", permuted, got, reason, want, wantReason)
					}
				}
			}
		}
	}
}

// permutations yields all orderings of events.
func permutations(events []event.Event) func(yield func([]event.Event) bool) {
	return func(yield func([]event.Event) bool) {
		permute(events, 0, yield)
	}
}

func permute(events []event.Event, k int, yield func([]event.Event) bool) bool {
	if k >= len(events)-1 {
		return yield(append([]event.Event(nil), events...))
	}

	for i := k; i < len(events); i++ {
		p := append([]event.Event(nil), events...)
		p[k], p[i] = p[i], p[k]

		if !permute(p, k+1, yield) {
			return false
		}
	}

	return true
}

func TestJudgeExcluded(t *testing.T) {
	t.Parallel()

	e := &candidacy.Entry{
		Status:   candidacy.Excluded,
		Evidence: candidacy.Evidence{Initializations: []event.Event{constant}},
	}

	if got, reason := Judge(e, Policy{}); got != NotCandidate || reason != ReasonExcluded {
		t.Errorf("Judge() = %d, %s, want %d, %s", got, reason, NotCandidate, ReasonExcluded)
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	bytesType := types.NewSlice(types.Typ[types.Byte])
	candidate := types.NewVar(10, nil, "candidate", bytesType)
	mutated := types.NewVar(20, nil, "mutated", bytesType)
	public := types.NewVar(30, nil, "Public", bytesType)

	st := candidacy.NewStore()
	_ = st.Seed(candidacy.NewBinding(mutated, candidacy.Local, ""), false)
	_ = st.Seed(candidacy.NewBinding(candidate, candidacy.Local, ""), false)
	_ = st.Seed(candidacy.NewBinding(public, candidacy.PackageVar, ""), true)

	for _, v := range [...]*types.Var{candidate, mutated, public} {
		st.Record(v, constant)
		st.Record(v, shared)
	}

	st.Record(mutated, mutate)

	type result struct {
		Name    string
		Verdict Verdict
		Reason  Reason
	}

	var got []result
	for _, f := range Evaluate(context.Background(), st, Policy{}) {
		got = append(got, result{f.Name(), f.Verdict, f.Reason})
	}

	want := []result{
		{"candidate", Candidate, ReasonNone},
		{"mutated", NotCandidate, ReasonMutated},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
	}
}

func TestReasonString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason Reason
		want   string
	}{
		{ReasonNone, "none"},
		{ReasonExcluded, "externally observable"},
		{ReasonDynamicInitializer, "initialized from a non-constant value"},
		{ReasonExclusiveBorrow, "address taken"},
		{ReasonExclusiveBorrow + 1, "Reason(8)"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
