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

// Registry is the store of wireable instances, keyed by string.
// Keys are unique; re-registration under an existing key silently replaces
// the prior entry. The Registry never copies or clones the instances it
// holds; ownership is shared with the caller for the Registry's lifetime.
//
// A Registry performs no internal locking. It is a single-writer,
// single-reader structure; concurrent use must be serialized by the caller.
type Registry interface {
	// Register inserts or replaces the entry for key, flagged as needing
	// wiring. Overwriting is legal and silent.
	Register(key string, instance any)

	// RegisterPrewired inserts or replaces the entry for key, flagged as
	// already wired so that bulk wiring skips it.
	RegisterPrewired(key string, instance any)

	// RegisterInstance registers instance under a key derived from the
	// instance itself: its Keyer fast path when implemented, otherwise the
	// normalized simple name of its runtime type. Returns the derived key.
	RegisterInstance(instance any) (string, error)

	// RegisterInstanceAs registers instance under a key derived from the
	// explicitly supplied type descriptor t, which need not be the
	// instance's own type. Returns the derived key.
	RegisterInstanceAs(t reflect.Type, instance any) (string, error)

	// RegisterType default-constructs a new instance of t and registers it
	// under the normalized simple name of t. Fails with ErrInstantiation
	// when t cannot be default-constructed. Returns the derived key.
	RegisterType(t reflect.Type) (string, error)

	// RegisterTypeAs default-constructs a new instance of t and registers
	// it under key.
	RegisterTypeAs(key string, t reflect.Type) error

	// Get returns the instance registered under key, or ErrNotFound.
	Get(key string) (any, error)

	// GetType returns the instance registered under the normalized simple
	// name of t. Fails with ErrNotFound when absent and ErrTypeMismatch
	// when the stored instance is not assignable to t.
	GetType(t reflect.Type) (any, error)

	// Lookup is the non-erroring probe used during wiring: absence of a
	// match is not a failure there.
	Lookup(key string) (any, bool)

	// Entries returns a snapshot for diagnostics and bulk wiring
	// (order is unspecified).
	Entries() []Entry

	// Count returns the number of registered entries.
	Count() int

	// Reset drops all entries.
	Reset()
}

// Entry is a single registered unit in a Registry snapshot.
type Entry struct {
	// Key is the registration key.
	Key string
	// Instance is the registered object reference.
	Instance any
	// NeedsWiring reports whether bulk wiring should process the entry.
	NeedsWiring bool
}
