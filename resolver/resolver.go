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

package resolver

import (
	"reflect"

	"dirpx.dev/wirex/apis"
)

// New constructs an apis.Resolver that tries the given rules in order.
// Nil rules are ignored. A rule "resolves" only when its derived key is
// actually present in the registry; otherwise the chain falls through to
// the next rule. This is what gives ByName its by-type fallback: a name
// key that misses the registry hands the field to the type rule.
func New(rules ...apis.Rule) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Rule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			out = append(out, r)
		}
	}
	return chain{rules: out}
}

// chain is an immutable, order-preserving resolver over a set of rules.
type chain struct {
	rules []apis.Rule
}

// Resolve runs rules in order until one derives a key that is registered.
// Returns (nil, false) if no rule produced a registered key; absence of a
// match is not an error.
func (c chain) Resolve(f reflect.StructField, reg apis.Registry, cfg apis.Config) (any, bool) {
	if reg == nil {
		return nil, false
	}
	for _, r := range c.rules {
		key, ok := r.TryKey(f, cfg)
		if !ok {
			continue
		}
		if v, hit := reg.Lookup(key); hit {
			return v, true
		}
	}
	return nil, false
}
