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

// Package decl seeds the candidacy store from declarations.
//
// Struct types are described as an [Item]: the item's own slots and inline payloads
// (anonymous struct fields) with their slots. A slot is externally observable when the
// item, its payload and the slot itself are all public. Exported slots carrying a struct
// tag are observable through reflection-based encoders even in unexported items, as long
// as the path to them is exported.
package decl

import (
	"errors"
	"fmt"
	"go/types"
	"iter"

	"fillmore-labs.com/constbytes/internal/candidacy"
)

// Slot is a single storage slot of an item or payload.
type Slot struct {
	// Var is the declared field.
	Var *types.Var

	// Public is the visibility of the slot's own declaration.
	Public bool

	// Reflected marks slots addressed by reflection, like fields with struct tags.
	// Encoders skip unexported fields, so it only matters for public slots.
	Reflected bool

	// Tracked marks slots of the owned byte buffer type.
	Tracked bool
}

// Payload is an inline group of slots, like the fields of an anonymous struct field.
type Payload struct {
	Name   string
	Public bool
	Slots  []Slot

	// Shapes are the anonymous struct types of the payload, nested ones included.
	Shapes []*types.Struct
}

// Item is a declared type with its slots.
type Item struct {
	Name     string
	Public   bool
	Slots    []Slot
	Payloads []Payload
}

// Bindings yields every tracked slot of the item as a binding with its effective visibility.
func (it Item) Bindings() iter.Seq2[candidacy.Binding, bool] {
	return func(yield func(candidacy.Binding, bool) bool) {
		for _, s := range it.Slots {
			if !s.Tracked {
				continue
			}

			b := candidacy.NewBinding(s.Var, candidacy.Field, it.Name)
			if !yield(b, s.observable(it.Public, true)) {
				return
			}
		}

		for _, p := range it.Payloads {
			owner := it.Name + "." + p.Name

			for _, s := range p.Slots {
				if !s.Tracked {
					continue
				}

				b := candidacy.NewBinding(s.Var, candidacy.PayloadField, owner)
				if !yield(b, s.observable(it.Public, p.Public)) {
					return
				}
			}
		}
	}
}

// observable reports whether the slot is visible outside the package, given the
// visibility of its item and of the path from the item to the slot.
func (s Slot) observable(item, path bool) bool {
	return (item || s.Reflected) && path && s.Public
}

// Scan seeds the store with every tracked slot of item.
//
// Public slots are seeded as excluded, private slots as tracked. Bindings already
// present are left alone; a conflicting visibility is returned as an error.
func Scan(st *candidacy.Store, item Item) error {
	var errs []error

	for _, p := range item.Payloads {
		for _, shape := range p.Shapes {
			st.AddShape(shape)
		}
	}

	for b, public := range item.Bindings() {
		if err := st.Seed(b, public); err != nil {
			errs = append(errs, fmt.Errorf("field %s of %s: %w", b.Name(), b.Owner, err))
		}
	}

	return errors.Join(errs...)
}
