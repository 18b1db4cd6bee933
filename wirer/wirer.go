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

package wirer

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/multierr"

	"dirpx.dev/wirex/apis"
	"dirpx.dev/wirex/resolver"
	"dirpx.dev/wirex/strategy"
	wiring "dirpx.dev/wirex/wxapi/wiring/strategy"
)

// ErrUnknownStrategy is returned when Autowire is invoked with a strategy
// value outside the defined enum.
var ErrUnknownStrategy = errors.New("wirex(wirer): unknown wiring strategy")

// New constructs a Wirer over reg and refl. The rule chains are fixed at
// construction: ByName resolves name-then-type, ByType resolves type only.
func New(cfg apis.Config, reg apis.Registry, refl apis.Reflector) apis.Wirer {
	return &wirer{
		cfg:    cfg,
		reg:    reg,
		refl:   refl,
		byName: resolver.New(strategy.NewNameRule(), strategy.NewTypeRule()),
		byType: resolver.New(strategy.NewTypeRule()),
	}
}

// wirer is the engine that populates unset fields from the registry.
type wirer struct {
	cfg  apis.Config
	reg  apis.Registry
	refl apis.Reflector
	// byName and byType are the prebuilt rule chains per strategy.
	byName apis.Resolver
	byType apis.Resolver
}

// Ensure wirer implements apis.Wirer.
var _ apis.Wirer = (*wirer)(nil)

// Autowire wires target according to s. Fields are visited once per
// declaring level of the embedding chain, in declaration order; fields
// that are already set, and fields with no registered match, are left
// untouched. An incompatible match aborts the remaining fields of target
// and propagates the assignment failure.
func (w *wirer) Autowire(target any, s apis.Strategy) error {
	var res apis.Resolver
	switch s {
	case wiring.ByName:
		res = w.byName
	case wiring.ByType:
		res = w.byType
	case wiring.None:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}

	levels, err := w.refl.Levels(target, w.cfg.MaxDepth)
	if err != nil {
		return err
	}
	for _, lvl := range levels {
		for _, f := range w.refl.Fields(lvl.Type()) {
			if !w.refl.IsZero(lvl, f) {
				// Already populated by the caller; leave it alone.
				continue
			}
			v, ok := res.Resolve(f, w.reg, w.cfg)
			if !ok {
				continue
			}
			if err := w.refl.Assign(lvl, f, v); err != nil {
				return fmt.Errorf("wirex(wirer): wiring %s.%s: %w", lvl.Type().Name(), f.Name, err)
			}
		}
	}
	return nil
}

// FinishRegistration wires every entry flagged as needing wiring, using
// ByName, in a single pass over the registry snapshot. Entries that are
// not pointers to structs cannot be wired in place and are skipped. Entry
// order is unspecified; there are no retries and no cycle resolution.
//
// By default failing entries do not stop the pass; their errors are
// accumulated and returned together. Config.StopOnFirstError switches to
// abort-on-first.
func (w *wirer) FinishRegistration() error {
	var errs error
	for _, e := range w.reg.Entries() {
		if !e.NeedsWiring {
			continue
		}
		if !wireable(e.Instance) {
			continue
		}
		if err := w.Autowire(e.Instance, wiring.ByName); err != nil {
			err = fmt.Errorf("wirex(wirer): entry %q: %w", e.Key, err)
			if w.cfg.StopOnFirstError {
				return err
			}
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// wireable reports whether an entry's instance can be wired in place,
// i.e. is a non-nil pointer to struct.
func wireable(instance any) bool {
	rv := reflect.ValueOf(instance)
	return rv.IsValid() && rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
}
