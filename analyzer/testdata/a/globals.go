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

var banner = []byte("constbytes") // want "Package variable 'banner' is only initialized from constants"

var Exported = []byte("exported")

var scratchpad []byte

var (
	table, other = []byte("a"), []byte("b") // want "Package variable 'table'"
)

func useGlobals() int {
	scratchpad = append(scratchpad, banner...)
	other[0] = 'c'

	return len(table) + len(Exported)
}
