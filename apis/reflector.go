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

// Reflector is the host-introspection capability consumed by the wiring
// engine and the registry: attribute enumeration across the embedding
// chain, visibility-bypassing mutation, and default construction.
// Keeping it behind an interface lets embedders swap in alternative
// implementations (code generation, explicit accessor registration)
// where unsafe field access is not acceptable.
type Reflector interface {
	// New constructs a fresh default instance of t and returns a pointer
	// to it, unwrapping one pointer level first so New(*T) and New(T) are
	// equivalent. Types that cannot yield a usable instance (nil,
	// interface, chan, func) fail with ErrNotConstructible.
	New(t reflect.Type) (any, error)

	// Levels flattens target's embedding chain into the addressable struct
	// values that declare fields: the concrete struct first, then each
	// embedded struct in declaration order, recursively, bounded by
	// maxDepth levels. Nil embedded pointers terminate their branch.
	// target must be a non-nil pointer to struct.
	Levels(target any, maxDepth int) ([]reflect.Value, error)

	// Fields returns the fields declared directly by struct type t,
	// in declaration order, excluding embedded ancestor links.
	Fields(t reflect.Type) []reflect.StructField

	// IsZero reports whether field f of the struct value owner currently
	// holds its zero value, regardless of the field's visibility.
	IsZero(owner reflect.Value, f reflect.StructField) bool

	// Assign stores v into field f of the struct value owner, bypassing
	// the field's visibility. owner must be addressable. An instance whose
	// runtime type is not assignable to the field's declared type fails
	// with ErrAssignment.
	Assign(owner reflect.Value, f reflect.StructField, v any) error
}
