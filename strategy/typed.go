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
	uref "dirpx.dev/wirex/utils/reflect"
)

// NewTypeRule creates an apis.Rule that keys a field by the normalized
// simple name of its declared type.
func NewTypeRule() apis.Rule {
	return typeRule{}
}

// typeRule derives the key from the field's declared type via
// utils/reflect.SimpleName: pointers and containers are unwrapped to the
// nearest named type, so a field `svc *Service` keys as "Service".
type typeRule struct{}

// Ensure typeRule implements apis.Rule.
var _ apis.Rule = typeRule{}

// TryKey computes the declared type's simple name for the field.
// Fields of unnamed types (anonymous structs, bare funcs) fall through.
func (typeRule) TryKey(f reflect.StructField, cfg apis.Config) (string, bool) {
	name := uref.SimpleName(f.Type, cfg)
	if name == "" {
		return "", false
	}
	return name, true
}
