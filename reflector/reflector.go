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

package reflector

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"dirpx.dev/wirex/apis"
	"dirpx.dev/wirex/config"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("wirex(reflector): nil reflect.Type provided")
	// ErrNotConstructible is returned when a type cannot yield a usable
	// default instance (interfaces, channels, funcs).
	ErrNotConstructible = errors.New("wirex(reflector): type cannot be default-constructed")
	// ErrNotPointer is returned when a wiring target is not a non-nil pointer.
	ErrNotPointer = errors.New("wirex(reflector): target must be a non-nil pointer")
	// ErrNotStruct is returned when a wiring target does not point to a struct.
	ErrNotStruct = errors.New("wirex(reflector): target must point to a struct")
	// ErrAssignment is returned when a resolved instance cannot be stored
	// into the target field.
	ErrAssignment = errors.New("wirex(reflector): instance not assignable to field")
)

// New constructs the stdlib-reflect implementation of apis.Reflector.
// It bypasses field visibility through unsafe addressing, which requires
// wiring targets to be addressable (pointers to structs).
func New() apis.Reflector {
	return reflector{}
}

// reflector is a stateless apis.Reflector backed by package reflect.
type reflector struct{}

// Ensure reflector implements apis.Reflector.
var _ apis.Reflector = reflector{}

// New constructs a fresh default instance of t and returns a pointer to it.
// A single pointer level is unwrapped first, so New(*T) and New(T) both
// yield a *T.
func (reflector) New(t reflect.Type) (any, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Invalid, reflect.Interface, reflect.Chan, reflect.Func:
		return nil, fmt.Errorf("%w: %s", ErrNotConstructible, t.Kind())
	}
	return reflect.New(t).Interface(), nil
}

// Levels flattens target's embedding chain into addressable struct values,
// depth-first in declaration order, bounded by maxDepth levels.
func (r reflector) Levels(target any, maxDepth int) ([]reflect.Value, error) {
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, ErrNotPointer
	}
	ev := rv.Elem()
	if ev.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got pointer to %s", ErrNotStruct, ev.Kind())
	}
	var out []reflect.Value
	r.collect(ev, maxDepth, &out)
	return out, nil
}

// collect appends v and then descends into its embedded struct fields.
// Nil embedded pointers terminate their branch.
func (r reflector) collect(v reflect.Value, depth int, out *[]reflect.Value) {
	if depth <= 0 {
		return
	}
	*out = append(*out, v)

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).Anonymous {
			continue
		}
		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Struct:
			r.collect(fv, depth-1, out)
		case reflect.Ptr:
			if !fv.IsNil() && fv.Elem().Kind() == reflect.Struct {
				r.collect(fv.Elem(), depth-1, out)
			}
		}
	}
}

// Fields returns the fields declared directly by struct type t, in
// declaration order. Embedded ancestor links are excluded; they are
// traversal edges, not wireable attributes.
func (reflector) Fields(t reflect.Type) []reflect.StructField {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	out := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			continue
		}
		out = append(out, f)
	}
	return out
}

// IsZero reports whether field f of owner holds its zero value.
// Works on unexported fields; reading does not require settability.
func (reflector) IsZero(owner reflect.Value, f reflect.StructField) bool {
	return owner.FieldByIndex(f.Index).IsZero()
}

// Assign stores v into field f of owner, bypassing visibility. owner must
// be addressable (obtained through Levels). Incompatible runtime types
// fail with ErrAssignment.
func (reflector) Assign(owner reflect.Value, f reflect.StructField, v any) error {
	fv := owner.FieldByIndex(f.Index)
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return fmt.Errorf("nil instance for field %q: %w", f.Name, ErrAssignment)
	}
	if !rv.Type().AssignableTo(fv.Type()) {
		return fmt.Errorf("%s into field %q of type %s: %w", rv.Type(), f.Name, fv.Type(), ErrAssignment)
	}
	if !fv.CanSet() {
		if !fv.CanAddr() {
			return fmt.Errorf("field %q is not addressable: %w", f.Name, ErrAssignment)
		}
		// Visibility bypass: re-derive a settable value at the field's address.
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}
	fv.Set(rv)
	return nil
}
