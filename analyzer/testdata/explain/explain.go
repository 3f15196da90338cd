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

package explain

type config struct {
	name   []byte // want "Field 'name' of 'config' is only initialized from constants"
	path   []byte // want "Field 'path' of 'config' is not a string candidate: initialized from a non-constant value"
	spare  []byte // want "Field 'spare' of 'config' is not a string candidate: never initialized"
	tagged []byte `json:"tagged"` // want "Field 'tagged' of 'config' is only initialized from constants"
	Tagged []byte `json:"Tagged"`
}

func load(p string) config {
	return config{name: []byte("n"), path: []byte(p), tagged: []byte("t"), Tagged: []byte("T")}
}

func (c config) sizes() int {
	return len(c.name) + len(c.path) + len(c.spare) + len(c.tagged) + len(c.Tagged)
}

func locals() []byte {
	a := []byte("a") // want "Variable 'a' is not a string candidate: value moved out"
	b := []byte("b") // want "Variable 'b' is not a string candidate: modified after initialization"
	b[0] = 'c'

	var z []byte // want "Variable 'z' is not a string candidate: declared without initializer"
	z = []byte("z")

	p := []byte("p") // want "Variable 'p' is only initialized from constants"
	q := &p

	_ = len(z) + len(*q) + len(b)

	return a
}

func checksum(data []byte) (sum []byte) { // want "Variable 'data' is not a string candidate: initialized from a non-constant value" "Variable 'sum' is not a string candidate: declared without initializer"
	sum = append(sum, byte(len(data)))

	return sum
}
