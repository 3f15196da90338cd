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

package strict

type holder struct {
	b []byte
}

func newHolder() *holder {
	return &holder{b: []byte("x")}
}

func (h *holder) ptr() *[]byte {
	return &h.b
}

func (h *holder) size() int {
	return len(h.b)
}

type element struct {
	e []byte
}

func newElement() element {
	return element{e: []byte("e")}
}

func (el *element) first() *byte {
	return &el.e[0]
}

type reader struct {
	r []byte // want "Field 'r' of 'reader' is only initialized from constants"
}

func newReader() reader {
	return reader{r: []byte("r")}
}

func (rd reader) text() string {
	return string(rd.r)
}

func (rd reader) first() byte {
	return rd.r[0]
}
