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

package reflect

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/wirex/apis"
	"dirpx.dev/wirex/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping containers)
	// does not contain a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no derivable name")
)

// Normalize unwraps containers according to config (MaxUnwrap) and returns
// the nearest named inner type, or an error if none is found.
//
// Unwrapping policy:
//   - ptr/slice/array/chan -> Elem()
//   - map[K]V: a named V wins, then a named K; otherwise continue
//     unwrapping Elem().
//   - default: if t.Name() != "", return t; otherwise ErrReflectTypeNotNamed.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			et := t.Elem()
			if et != nil && et.Name() != "" {
				return et, nil
			}
			kt := t.Key()
			if kt != nil && kt.Name() != "" {
				return kt, nil
			}
			// Neither side named: keep unwrapping element.
			t = et

		default:
			// Named, return; anonymous -> error.
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// cacheKey ensures memoization respects the config knobs that affect
// key derivation.
type cacheKey struct {
	t         reflect.Type
	maxUnwrap int16
}

// simpleNameCache caches derived simple names by (type, config knobs).
var simpleNameCache sync.Map // key: cacheKey, val: string

// SimpleName derives the registry key for t: the bare name of the nearest
// named type, without package qualifier and with any generic instantiation
// parameters stripped. Returns "" when t contains no named type.
func SimpleName(t reflect.Type, cfg apis.Config) string {
	if t == nil {
		return ""
	}
	key := cacheKey{t: t, maxUnwrap: int16(cfg.MaxUnwrap)}
	if v, ok := simpleNameCache.Load(key); ok {
		return v.(string)
	}

	base, err := Normalize(t, cfg)
	if err != nil || base == nil {
		simpleNameCache.Store(key, "")
		return ""
	}

	name := stripTypeParams(base.Name())
	simpleNameCache.Store(key, name)
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
