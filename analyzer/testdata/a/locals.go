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

func locals() string {
	greeting := []byte("hi") // want "Variable 'greeting' is only initialized from constants"

	c := []byte("a")
	c = []byte("b")

	var d []byte
	d = []byte("x")

	var e = []byte("e")
	e[0] = 'f'

	for _, ch := range greeting {
		_ = ch
	}

	hush := []byte("quiet") //nolint:constbytes
	_ = len(hush)

	return string(greeting) + string(c) + string(d) + string(e)
}

func shadowing(in []byte) int {
	buf := []byte("outer") // want "Variable 'buf' is only initialized from constants"
	n := len(buf)

	{
		buf := in
		buf[0] = 0
		n += len(buf)
	}

	return n
}

func split() ([]byte, []byte) {
	return []byte("a"), []byte("b")
}

func multi() int {
	x, y := split()

	return len(x) + len(y)
}

func ranges() int {
	n := 0

	for _, line := range [][]byte{[]byte("a")} {
		n += len(line)
	}

	return n
}

func empty() bool {
	var none = []byte(nil) // want "Variable 'none' is only initialized from constants"

	return none == nil
}

func sliced() []byte {
	whole := []byte("abc")

	return whole[1:]
}

func cleared() {
	gone := []byte("abc")
	clear(gone)
}

func escapes(f func([]byte)) {
	arg := []byte("arg")
	f(arg)
}
