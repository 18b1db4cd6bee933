/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy

import (
	"reflect"

	"dirpx.dev/wirex/apis"
)

// NewNameRule creates an apis.Rule that keys a field by its own name.
func NewNameRule() apis.Rule {
	return nameRule{}
}

// nameRule is the zero-cost fast path: the field's declared name is the
// registry key, verbatim.
type nameRule struct{}

// Ensure nameRule implements apis.Rule.
var _ apis.Rule = nameRule{}

// TryKey returns the field's name as the lookup key.
func (nameRule) TryKey(f reflect.StructField, _ apis.Config) (string, bool) {
	if f.Name == "" {
		return "", false
	}
	return f.Name, true
}
