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

package registry

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/wirex/apis"
	uref "dirpx.dev/wirex/utils/reflect"
)

var (
	// ErrNotFound is returned when a direct lookup finds no entry.
	ErrNotFound = errors.New("wirex(registry): no entry registered under key")
	// ErrTypeMismatch is returned when a typed lookup finds an entry whose
	// instance is incompatible with the requested type.
	ErrTypeMismatch = errors.New("wirex(registry): registered instance incompatible with requested type")
	// ErrInstantiation is returned when default construction of a
	// registered type failed or is disallowed.
	ErrInstantiation = errors.New("wirex(registry): type could not be instantiated")
	// ErrUnnamedType is returned when no registration key can be derived
	// from an instance or type descriptor.
	ErrUnnamedType = errors.New("wirex(registry): no key derivable for unnamed type")
)

// New constructs a Registry that derives type-based keys according to cfg
// and default-constructs types through refl.
//
// The returned Registry performs no locking; per the wiring contract it is
// single-writer, single-reader state and concurrent use must be serialized
// by the caller.
func New(cfg apis.Config, refl apis.Reflector) apis.Registry {
	return &registry{cfg: cfg, refl: refl, m: make(map[string]apis.Entry)}
}

// registry is a plain-map Registry implementation.
type registry struct {
	// cfg is the configuration used for key derivation.
	cfg apis.Config
	// refl provides default construction for RegisterType.
	refl apis.Reflector
	// m maps key to registered entry. Last registration wins.
	m map[string]apis.Entry
}

// Register inserts or replaces the entry for key, flagged as needing wiring.
func (r *registry) Register(key string, instance any) {
	r.put(key, instance, true)
}

// RegisterPrewired inserts or replaces the entry for key, flagged as
// already wired.
func (r *registry) RegisterPrewired(key string, instance any) {
	r.put(key, instance, false)
}

func (r *registry) put(key string, instance any, needsWiring bool) {
	r.m[key] = apis.Entry{Key: key, Instance: instance, NeedsWiring: needsWiring}
}

// RegisterInstance registers instance under a derived key: the Keyer fast
// path when implemented, otherwise the normalized simple name of the
// instance's runtime type.
func (r *registry) RegisterInstance(instance any) (string, error) {
	if k, ok := instance.(apis.Keyer); ok {
		key := k.WireKey()
		r.put(key, instance, true)
		return key, nil
	}
	return r.RegisterInstanceAs(reflect.TypeOf(instance), instance)
}

// RegisterInstanceAs registers instance under the key derived from t,
// which need not be the instance's own type.
func (r *registry) RegisterInstanceAs(t reflect.Type, instance any) (string, error) {
	key := uref.SimpleName(t, r.cfg)
	if key == "" {
		return "", fmt.Errorf("%w: %v", ErrUnnamedType, t)
	}
	r.put(key, instance, true)
	return key, nil
}

// RegisterType default-constructs a new instance of t and registers it
// under the normalized simple name of t.
func (r *registry) RegisterType(t reflect.Type) (string, error) {
	key := uref.SimpleName(t, r.cfg)
	if key == "" {
		return "", fmt.Errorf("%w: %v", ErrUnnamedType, t)
	}
	if err := r.RegisterTypeAs(key, t); err != nil {
		return "", err
	}
	return key, nil
}

// RegisterTypeAs default-constructs a new instance of t and registers it
// under key.
func (r *registry) RegisterTypeAs(key string, t reflect.Type) error {
	instance, err := r.refl.New(t)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInstantiation, err)
	}
	r.put(key, instance, true)
	return nil
}

// Get returns the instance registered under key.
func (r *registry) Get(key string) (any, error) {
	e, ok := r.m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return e.Instance, nil
}

// GetType returns the instance registered under the normalized simple name
// of t, checked for assignability to t.
func (r *registry) GetType(t reflect.Type) (any, error) {
	key := uref.SimpleName(t, r.cfg)
	if key == "" {
		return nil, fmt.Errorf("%w: %v", ErrUnnamedType, t)
	}
	instance, err := r.Get(key)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		// A registered nil satisfies any requested reference type.
		return nil, nil
	}
	if it := reflect.TypeOf(instance); !it.AssignableTo(t) {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, it, t)
	}
	return instance, nil
}

// Lookup is the non-erroring probe used during wiring.
func (r *registry) Lookup(key string) (any, bool) {
	e, ok := r.m[key]
	if !ok {
		return nil, false
	}
	return e.Instance, true
}

// Entries returns a snapshot for diagnostics and bulk wiring
// (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, len(r.m))
	for _, e := range r.m {
		entries = append(entries, e)
	}
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	return len(r.m)
}

// Reset drops all entries.
func (r *registry) Reset() {
	r.m = make(map[string]apis.Entry)
}

// As returns the entry registered under T's normalized simple name,
// typed as T. It fails with ErrNotFound when absent and ErrTypeMismatch
// when the stored instance is not a T.
func As[T any](r apis.Registry) (T, error) {
	var zero T
	v, err := r.GetType(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	tv, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: have %T", ErrTypeMismatch, v)
	}
	return tv, nil
}
