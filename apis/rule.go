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

package apis

import "reflect"

// Rule is a pluggable key-derivation step. A Resolver chains multiple
// rules in order (e.g., name -> declared type) and resolves a field
// against the registry with the first derived key that hits.
type Rule interface {
	// TryKey derives a registry key for field f according to cfg.
	// It returns (key, true) if the rule applies; otherwise ("", false)
	// to fall through to the next rule.
	TryKey(f reflect.StructField, cfg Config) (key string, handled bool)
}

// Resolver coordinates rules to resolve a registry match for a field.
// Typical chain for ByName: NameRule -> TypeRule; ByType uses TypeRule only.
type Resolver interface {
	// Resolve returns the first registered instance matched by the rule
	// chain for field f, or (nil, false) if no rule's key is registered.
	Resolve(f reflect.StructField, reg Registry, cfg Config) (any, bool)
}
