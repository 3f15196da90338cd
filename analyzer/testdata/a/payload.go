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

type Message struct {
	Header struct {
		Magic []byte
		tag   []byte // want "Field 'tag' of 'Message.Header' is only initialized from constants"
	}
	body struct {
		data []byte
	}
	Meta struct {
		raw []byte `json:"raw"` // want "Field 'raw' of 'Message.Meta' is only initialized from constants"
		Raw []byte `json:"Raw"`
	}
}

func newMessage() Message {
	var m Message

	m.Header = struct {
		Magic []byte
		tag   []byte
	}{[]byte("CB"), []byte("v1")}

	m.body.data = []byte("x")

	m.Meta = struct {
		raw []byte `json:"raw"`
		Raw []byte `json:"Raw"`
	}{raw: []byte("{}"), Raw: []byte("{}")}

	return m
}

func (m *Message) version() string {
	return string(m.Header.tag)
}

func (m *Message) sizes() int {
	return len(m.body.data) + len(m.Meta.raw) + len(m.Meta.Raw)
}

type envelope struct {
	inner struct {
		kind []byte
	}
}

func newEnvelope() envelope {
	var e envelope

	e.inner = struct{ kind []byte }{kind: []byte("k")}

	return e
}

func (e envelope) reset(k []byte) envelope {
	alias := struct{ kind []byte }{kind: k}
	e.inner = alias

	return e
}
