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

// Package event defines the closed vocabulary of usage events recorded against bindings.
package event

import "fillmore-labs.com/constbytes/internal/astutil"

// Kind classifies a single program action against a binding.
type Kind uint8

//go:generate go tool stringer -type Kind,Source,BorrowKind,BindMode -linecomment
const (
	// Initialize indicates the binding receives its value at declaration or construction time.
	Initialize Kind = iota // initialize

	// Consume indicates the value leaves the binding: it is copied into another place, returned or passed on.
	Consume // consume

	// Borrow indicates the value is accessed without leaving the binding.
	Borrow // borrow

	// Mutate indicates a new value or new content is written into an existing binding.
	Mutate // mutate

	// PatternDestructure indicates the binding is taken apart by a range clause.
	PatternDestructure // destructure

	// DeclaredWithoutInitializer indicates the binding is declared without an initial value.
	DeclaredWithoutInitializer // uninitialized
)

// Source classifies the expression an [Initialize] event receives its value from.
type Source uint8

const (
	// SourceDynamic is any expression not known at compile time.
	SourceDynamic Source = iota // dynamic

	// SourceConstant is a conversion of a constant string expression.
	SourceConstant // constant

	// SourceNil is the predeclared nil.
	SourceNil // nil

	// SourceConstComposite is a composite literal with only constant elements.
	SourceConstComposite // composite

	// SourceMultiValue is one result of a multi-valued expression.
	SourceMultiValue // multi-value

	// SourceRange is a range clause iteration value.
	SourceRange // range
)

// Static reports whether the source is known at compile time.
func (s Source) Static() bool {
	switch s {
	case SourceConstant, SourceNil, SourceConstComposite:
		return true

	default:
		return false
	}
}

// BorrowKind distinguishes read-only access from access that permits writes.
type BorrowKind uint8

const (
	// Shared is a read-only access.
	Shared BorrowKind = iota // shared

	// Exclusive is an access that permits writes, like taking the address.
	Exclusive // exclusive
)

// BindMode is the binding mode of a destructuring pattern.
//
// Ranging over a byte slice copies single bytes out and never takes the buffer
// apart, with either := or =, so Go range clauses always bind [ByReference].
// A [ByValue] destructure counts as a consume.
type BindMode uint8

const (
	// ByReference binds without taking ownership of the destructured value.
	ByReference BindMode = iota // by-reference

	// ByValue binds by moving or copying the destructured value.
	ByValue // by-value
)

// Event is a classified program action against one binding.
//
// Only the fields relevant to Kind are set: Source for [Initialize],
// Borrow for [Borrow] and Mode for [PatternDestructure].
type Event struct {
	Kind   Kind
	Source Source
	Borrow BorrowKind
	Mode   BindMode

	// Site is the node the event was observed at.
	Site astutil.NodeIndex
}

// Initialization creates an [Initialize] event.
func Initialization(src Source, site astutil.NodeIndex) Event {
	return Event{Kind: Initialize, Source: src, Site: site}
}

// Borrowing creates a [Borrow] event.
func Borrowing(kind BorrowKind, site astutil.NodeIndex) Event {
	return Event{Kind: Borrow, Borrow: kind, Site: site}
}

// Destructuring creates a [PatternDestructure] event.
func Destructuring(mode BindMode, site astutil.NodeIndex) Event {
	return Event{Kind: PatternDestructure, Mode: mode, Site: site}
}

// Plain creates an event without further attributes, like [Consume] or [Mutate].
func Plain(kind Kind, site astutil.NodeIndex) Event {
	return Event{Kind: kind, Site: site}
}

// String returns a short description of the event, e.g. "borrow(shared)".
func (e Event) String() string {
	switch e.Kind {
	case Initialize:
		return e.Kind.String() + "(" + e.Source.String() + ")"

	case Borrow:
		return e.Kind.String() + "(" + e.Borrow.String() + ")"

	case PatternDestructure:
		return e.Kind.String() + "(" + e.Mode.String() + ")"

	default:
		return e.Kind.String()
	}
}
