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

package wirex

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/wirex/apis"
	"dirpx.dev/wirex/builder"
	"dirpx.dev/wirex/config"
	"dirpx.dev/wirex/registry"
)

// init initializes the global snapshot with default cfg, registry and wirer.
func init() {
	st.Store(fresh(config.DefaultConfig(), nil, builder.New()))
}

var (
	// ErrNilReflector is returned when a builder returns a nil reflector.
	ErrNilReflector = errors.New("wirex: builder returned nil reflector")
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("wirex: builder returned nil registry")
	// ErrNilWirer is returned when a builder returns a nil wirer.
	ErrNilWirer = errors.New("wirex: builder returned nil wirer")
)

// Register inserts or replaces the entry for key in the global registry,
// flagged as needing wiring.
// This is a convenience wrapper around the global registry.
func Register(key string, instance any) {
	st.Load().reg.Register(key, instance)
}

// RegisterPrewired inserts or replaces the entry for key in the global
// registry, flagged as already wired so that FinishRegistration skips it.
// This is a convenience wrapper around the global registry.
func RegisterPrewired(key string, instance any) {
	st.Load().reg.RegisterPrewired(key, instance)
}

// RegisterInstance registers instance in the global registry under a key
// derived from the instance itself (Keyer fast path, else the normalized
// simple type name). Returns the derived key.
// This is a convenience wrapper around the global registry.
func RegisterInstance(instance any) (string, error) {
	return st.Load().reg.RegisterInstance(instance)
}

// RegisterInstanceAs registers instance in the global registry under a key
// derived from the explicitly supplied type descriptor t.
// This is a convenience wrapper around the global registry.
func RegisterInstanceAs(t reflect.Type, instance any) (string, error) {
	return st.Load().reg.RegisterInstanceAs(t, instance)
}

// RegisterType default-constructs a new instance of t and registers it in
// the global registry under the normalized simple name of t.
// This is a convenience wrapper around the global registry.
func RegisterType(t reflect.Type) (string, error) {
	return st.Load().reg.RegisterType(t)
}

// RegisterTypeAs default-constructs a new instance of t and registers it
// in the global registry under key.
// This is a convenience wrapper around the global registry.
func RegisterTypeAs(key string, t reflect.Type) error {
	return st.Load().reg.RegisterTypeAs(key, t)
}

// Get returns the instance registered under key in the global registry.
// This is a convenience wrapper around the global registry.
func Get(key string) (any, error) {
	return st.Load().reg.Get(key)
}

// GetAs returns the instance registered under T's normalized simple name
// in the global registry, typed as T.
// This is a convenience wrapper around the global registry.
func GetAs[T any]() (T, error) {
	return registry.As[T](st.Load().reg)
}

// Autowire wires target from the global registry using strategy s.
// This is a convenience wrapper around the global wirer.
func Autowire(target any, s apis.Strategy) error {
	return st.Load().wir.Autowire(target, s)
}

// FinishRegistration wires every entry of the global registry that is
// flagged as needing wiring, using the ByName strategy.
// This is a convenience wrapper around the global wirer.
func FinishRegistration() error {
	return st.Load().wir.FinishRegistration()
}

// Config returns the global wirex configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global wirex configuration to cfg.
// The global registry is rebuilt under the new configuration with its
// entries carried over; the wirer is rebuilt on top.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(derive(old, cfg, old.ext, old.bld, nil, nil))
}

// Registry returns the global wirex registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry swaps the global registry for reg and rebuilds the wirer on
// top of it. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(derive(old, old.cfg, old.ext, old.bld, reg, nil))
}

// Wirer returns the global wirex wirer.
func Wirer() apis.Wirer {
	return st.Load().wir
}

// SetWirer swaps the global wirer for w, leaving every other layer
// untouched. A nil w is ignored.
func SetWirer(w apis.Wirer) {
	if w == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{
		cfg:  old.cfg,
		ext:  old.ext,
		refl: old.refl,
		reg:  old.reg,
		wir:  w,
		bld:  old.bld,
	})
}

// Reflector returns the global wirex reflector.
func Reflector() apis.Reflector {
	return st.Load().refl
}

// Builder returns the global wirex builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global wirex builder to b and rebuilds all layers
// through it, carrying registry entries over. A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(derive(old, old.cfg, old.ext, b, nil, nil))
}

// SetExt replaces the extension config and rebuilds the layers via the
// builder. The extension payload is opaque to wirex itself; it is passed
// down to the builder so out-of-tree builders can carry extra policy.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(derive(old, old.cfg, ext, old.bld, nil, nil))
}

// ExtAs returns the global wirex extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// SetAll explicitly sets all global state components in one shot.
//
// A nil cfg keeps the current configuration; nil reg/wir/bld are rebuilt
// or kept as for the individual setters; ext is always replaced. This is
// mainly used by tests to get a deterministic snapshot between cases.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, wir apis.Wirer, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	st.Store(derive(old, ncfg, ext, nbld, reg, wir))
}

// Reset drops the process-wide snapshot and re-creates the default one:
// default configuration, default builder, empty registry. This is the
// explicit reset operation for repeatable runs and test isolation.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(fresh(config.DefaultConfig(), nil, builder.New()))
}

// fresh builds a brand-new snapshot with an empty registry.
func fresh(cfg apis.Config, ext any, bld apis.Builder) *state {
	refl := bld.BuildReflector(cfg, ext)
	if refl == nil {
		panic(ErrNilReflector)
	}
	reg := bld.BuildRegistry(cfg, refl, nil, ext)
	if reg == nil {
		panic(ErrNilRegistry)
	}
	wir := bld.BuildWirer(cfg, reg, refl, ext)
	if wir == nil {
		panic(ErrNilWirer)
	}
	return &state{cfg: cfg, ext: ext, refl: refl, reg: reg, wir: wir, bld: bld}
}

// derive builds the next snapshot from old. A nil reg is rebuilt through
// the builder with the old registry's entries carried over; a nil wir is
// rebuilt on top of the resulting registry.
func derive(old *state, cfg apis.Config, ext any, bld apis.Builder, reg apis.Registry, wir apis.Wirer) *state {
	refl := bld.BuildReflector(cfg, ext)
	if refl == nil {
		panic(ErrNilReflector)
	}
	if reg == nil {
		reg = bld.BuildRegistry(cfg, refl, old.reg, ext)
	}
	if reg == nil {
		panic(ErrNilRegistry)
	}
	if wir == nil {
		wir = bld.BuildWirer(cfg, reg, refl, ext)
	}
	if wir == nil {
		panic(ErrNilWirer)
	}
	return &state{cfg: cfg, ext: ext, refl: refl, reg: reg, wir: wir, bld: bld}
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global wirex state.
var st atomic.Pointer[state]

// state is the global wirex state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
//
// Note that only snapshot replacement is synchronized: the registry held
// by a snapshot is itself single-threaded state, per its contract.
type state struct {
	// cfg is the global wirex configuration.
	cfg apis.Config
	// ext is the global wirex extension configuration.
	ext any
	// refl is the global introspection capability.
	refl apis.Reflector
	// reg is the global registry.
	reg apis.Registry
	// wir is the global wirer.
	wir apis.Wirer
	// bld is the global builder.
	bld apis.Builder
}
