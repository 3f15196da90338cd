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

package analyzer

import (
	"flag"
	"strconv"

	"fillmore-labs.com/constbytes/internal/config"
)

// NewBindingsValue returns a boolean [flag.Value] toggling a single binding kind.
func NewBindingsValue(flags *config.BitMask[config.Bindings], value config.Bindings) flag.Getter {
	return boolValue[config.Bindings, *config.BitMask[config.Bindings]]{flags: flags, value: value}
}

// NewBehaviorValue returns a boolean [flag.Value] toggling a single behavior.
func NewBehaviorValue(flags *config.BitMask[config.Behavior], value config.Behavior) flag.Getter {
	return boolValue[config.Behavior, *config.BitMask[config.Behavior]]{flags: flags, value: value}
}

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	return f.enabled()
}

// IsBoolFlag marks this as a boolean [flag.Value], so that "-flag" works without argument.
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// enabled is false for the zero value, which the flag package creates to detect defaults.
func (f boolValue[_, B]) enabled() bool {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}
