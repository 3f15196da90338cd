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

package a

// Exported fields of exported types are visible outside the package.
type Foo struct {
	Name []byte
}

func NewFoo() Foo {
	return Foo{Name: []byte("foo")}
}

type bar struct {
	name []byte // want "Field 'name' of 'bar' is only initialized from constants and never modified"
}

func newBar() *bar {
	return &bar{name: []byte("bar")}
}

func (b *bar) size() int {
	return len(b.name)
}

func (b *bar) text() string {
	return string(b.name)
}

func (b *bar) ref() *[]byte {
	return &b.name
}

type source struct {
	data []byte
}

type sink struct {
	buf []byte
}

func transfer() sink {
	s := source{data: []byte("payload")}

	return sink{buf: s.data}
}

type mixed struct {
	val []byte
}

func mixedValues(in []byte) []mixed {
	return []mixed{{val: []byte("a")}, {val: in}}
}

type pair struct {
	first, second []byte // want "Field 'first' of 'pair'" "Field 'second' of 'pair'"
}

func newPair() *pair {
	return &pair{[]byte{'a', 'b'}, nil}
}

func (p *pair) equal() bool {
	return string(p.first) == string(p.second)
}

type counter struct {
	digits []byte
}

func newCounter() counter {
	return counter{digits: []byte("0")}
}

func (c *counter) bump() {
	c.digits[0]++
}

type scratch struct {
	tmp []byte
}

func fill(src []byte) int {
	s := scratch{tmp: []byte("....")}

	return copy(s.tmp, src)
}

type blob []byte

type holder struct {
	b blob
}

func newHolder() holder {
	return holder{b: blob("named types are not tracked")}
}

type quiet struct {
	word []byte //nolint:constbytes
}

func newQuiet() quiet {
	return quiet{word: []byte("shh")}
}

func (q quiet) length() int {
	return len(q.word)
}
