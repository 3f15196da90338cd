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
	"cmp"
	"errors"
	"go/types"
	"iter"
	"slices"

	"fillmore-labs.com/constbytes/internal/usage/event"
)

// ErrConflictingVisibility is returned when a binding is seeded twice with different visibility.
var ErrConflictingVisibility = errors.New("binding seeded with conflicting visibility")

// Status is the state of a store [Entry].
type Status uint8

const (
	// Tracked entries accumulate [Evidence].
	Tracked Status = iota

	// Excluded entries are or may become externally observable and carry no evidence.
	Excluded
)

// Evidence is the record of usage events observed for one tracked binding.
//
// The collections are append-only and are evaluated as multisets; their order
// is the traversal order and carries no meaning.
type Evidence struct {
	// Initializations holds [event.Initialize] and [event.DeclaredWithoutInitializer] events.
	Initializations []event.Event

	// Mutations holds [event.Mutate] events.
	Mutations []event.Event

	// Uses holds [event.Borrow], [event.Consume] and [event.PatternDestructure] events.
	Uses []event.Event
}

// add files an event into the collection for its kind.
func (e *Evidence) add(ev event.Event) {
	switch ev.Kind {
	case event.Initialize, event.DeclaredWithoutInitializer:
		e.Initializations = append(e.Initializations, ev)

	case event.Mutate:
		e.Mutations = append(e.Mutations, ev)

	case event.Consume, event.Borrow, event.PatternDestructure:
		e.Uses = append(e.Uses, ev)

	default:
		panic("unknown event kind " + ev.Kind.String())
	}
}

// Entry is the store state of one binding.
type Entry struct {
	Binding
	Status   Status
	Evidence Evidence
}

// Excluded reports whether the entry is excluded.
func (e *Entry) Excluded() bool {
	return e.Status == Excluded
}

// Store maps bindings to their candidacy state.
//
// A Store belongs to a single analysis run and must not be shared between goroutines.
type Store struct {
	entries map[*types.Var]*Entry

	// shapes are the anonymous struct types declaring tracked fields.
	shapes []*types.Struct
}

// NewStore creates an empty [Store].
func NewStore() *Store {
	return &Store{entries: make(map[*types.Var]*Entry)}
}

// Seed creates the entry for b on first sight of its declaration.
//
// Public bindings are seeded as [Excluded], private bindings as [Tracked].
// Seeding an existing entry is a no-op, except that a conflicting visibility
// leaves the entry excluded and returns [ErrConflictingVisibility].
func (s *Store) Seed(b Binding, public bool) error {
	e, ok := s.entries[b.Var]
	if !ok {
		e = &Entry{Binding: b, Status: Tracked}
		if public {
			e.Status = Excluded
		}

		s.entries[b.Var] = e

		return nil
	}

	if e.Excluded() == public {
		return nil
	}

	s.exclude(e)

	return ErrConflictingVisibility
}

// Exclude marks the binding of v as excluded and drops its evidence.
// It reports whether an entry for v exists.
func (s *Store) Exclude(v *types.Var) bool {
	e, ok := s.entries[v.Origin()]
	if !ok {
		return false
	}

	s.exclude(e)

	return true
}

func (s *Store) exclude(e *Entry) {
	e.Status = Excluded
	e.Evidence = Evidence{}
}

// Record appends ev to the evidence of the binding of v.
//
// It reports whether the event was recorded. Events for unknown or excluded bindings are ignored.
func (s *Store) Record(v *types.Var, ev event.Event) bool {
	e, ok := s.entries[v.Origin()]
	if !ok || e.Excluded() {
		return false
	}

	e.Evidence.add(ev)

	return true
}

// Lookup returns the entry for v.
func (s *Store) Lookup(v *types.Var) (*Entry, bool) {
	e, ok := s.entries[v.Origin()]

	return e, ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// All yields all entries ordered by declaration position.
func (s *Store) All() iter.Seq[*Entry] {
	entries := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b *Entry) int {
		return cmp.Or(cmp.Compare(a.Pos(), b.Pos()), cmp.Compare(a.Name(), b.Name()))
	})

	return slices.Values(entries)
}

// AddShape registers an anonymous struct type declaring payload fields.
func (s *Store) AddShape(t *types.Struct) {
	if slices.Contains(s.shapes, t) {
		return
	}

	s.shapes = append(s.shapes, t)
}

// Shapes yields the registered anonymous struct types identical to t.
//
// An anonymous struct type spelled out twice has distinct field objects, so
// fields of t stand for the fields at the same index of every shape yielded.
func (s *Store) Shapes(t *types.Struct) iter.Seq[*types.Struct] {
	return func(yield func(*types.Struct) bool) {
		for _, shape := range s.shapes {
			if shape == t || !types.Identical(shape, t) {
				continue
			}

			if !yield(shape) {
				return
			}
		}
	}
}
