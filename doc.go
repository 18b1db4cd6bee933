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

// Package wirex provides a minimal instance registry with automatic
// field wiring.
//
// wirex is responsible for two things: holding named object instances
// (the registry) and populating the unset fields of those instances from
// other registered instances (the wirer). A field matches an entry either
// by its own name or by the simple name of its declared type.
//
// # Design
//
// The core of wirex is split into small, contract-driven components:
//
//   - Registry: a key -> entry store. Each entry carries the instance
//     reference and a NeedsWiring flag. Keys are unique; the last
//     registration under a key wins, silently. Instances are never
//     copied — the registry shares references with the caller.
//
//   - Wirer: the engine that walks a target struct's fields, including
//     the fields declared by embedded ancestor structs, and assigns
//     matching registry entries into the ones that are still unset.
//     Resolution is a rule chain: the ByName strategy tries the field
//     name first and falls back to the declared type name; ByType uses
//     the type name only.
//
//   - Reflector: the host-introspection capability consumed by both.
//     It enumerates declared fields per embedding level, bypasses field
//     visibility on assignment, and default-constructs registered types.
//     It is an interface so embedders can substitute safer mechanisms
//     where unsafe field access is unacceptable.
//
//   - Builder: a pluggable factory that composes Reflector, Registry and
//     Wirer for a given Config, carrying entries over from a previous
//     registry when layers are rebuilt.
//
// # Usage
//
// Explicit composition:
//
//	cfg := config.DefaultConfig()
//	refl := reflector.New()
//	reg := registry.New(cfg, refl)
//	wir := wirer.New(cfg, reg, refl)
//
//	reg.Register("svc", &Service{})
//	reg.Register("B", &Consumer{}) // has a field `svc *Service`
//	err := wir.FinishRegistration()
//
// Or through the process-wide singleton:
//
//	wirex.Register("svc", &Service{})
//	wirex.Register("B", &Consumer{})
//	err := wirex.FinishRegistration()
//	svc, err := wirex.GetAs[*Service]()
//
// Passing an explicit registry through the API is the preferred style;
// the singleton is a convenience for small programs and tests.
//
// # Wiring semantics
//
// Autowire visits each declaring level of the target's embedding chain
// independently, in declaration order. A field is touched only when it is
// currently zero; absence of a registry match is not an error. A match
// whose runtime type is incompatible with the field fails with an
// assignment error that aborts the remaining wiring of that target.
//
// FinishRegistration makes a single ByName pass over every entry flagged
// as needing wiring, in unspecified order, with no retries and no cycle
// resolution. By default it continues past failing entries and returns
// the accumulated errors; Config.StopOnFirstError switches to abort-on-first.
//
// # Concurrency model
//
// Reads of the global snapshot (Registry, Wirer, Config) are wait-free:
// they load the current state atomically. Writers (SetConfig, SetBuilder,
// SetRegistry, SetAll, Reset) take a short build mutex, assemble a
// brand-new state and publish it via an atomic pointer swap.
//
// The registry itself, however, is deliberately unlocked: registration
// and wiring are single-threaded operations, and concurrent use of one
// registry must be serialized by the caller.
//
// # Scope
//
// wirex is intentionally small. It does not detect dependency cycles,
// manage lifecycles beyond the NeedsWiring flag, compose multiple
// registries, or load configuration. Diagnostics are the caller's
// responsibility; the registry's Entries snapshot is the introspection
// surface.
package wirex
