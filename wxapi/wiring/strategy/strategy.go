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

package strategy

import (
	"fmt"
	"strings"
)

// Strategy controls how the wiring engine derives registry lookup keys
// for the fields of an instance.
//
// # Overview
//
// Strategy is a small enumerated type that selects the key-derivation
// policy applied to each field during autowiring. It governs whether the
// field's own name, the field's declared type name, or both are consulted
// when searching the registry for a match.
//
// Strategy is intentionally minimal: it does not define which fields are
// eligible for wiring, how keys are normalized, or what happens on a
// type-incompatible match. Those aspects are governed by the wiring
// engine and its configuration.
//
// # Values
//
//   - ByName — field name first, declared type name as fallback.
//   - ByType — declared type name only.
//   - None   — wiring disabled (no keys are derived).
//
// # Contract
//
//   - The wiring engine MUST treat Strategy as a stable, public API;
//     adding new values is allowed, but existing values MUST NOT change
//     their semantics in breaking ways.
//   - Strategy values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
type Strategy int

const (
	// ByName derives the lookup key from the field's own name, falling
	// back to the declared type name when no entry exists under the
	// field name.
	//
	// # Semantics
	//
	// For a field `svc *Service`, the engine first probes the registry
	// under "svc"; when that key is absent it probes under "Service".
	// The fallback applies per field, not per instance: each field makes
	// its own two-step attempt.
	//
	// ByName is the strategy used by bulk wiring (FinishRegistration).
	ByName Strategy = iota

	// ByType derives the lookup key exclusively from the field's declared
	// type name; the field name is never consulted.
	//
	// # Semantics
	//
	// For a field `svc *Service`, the engine probes the registry under
	// "Service" only. Two fields of the same declared type therefore
	// resolve to the same entry regardless of their names.
	ByType

	// None disables key derivation entirely.
	//
	// # Semantics
	//
	// Under None no registry probes are made and no fields are mutated.
	// None is primarily the zero-ish sentinel returned by Parse failures
	// and a way for callers to express "leave this instance alone" in
	// configuration.
	None
)

// String returns a human-readable representation of the Strategy value.
//
// For all defined enum values, the returned strings are stable tokens
// ("ByName", "ByType", "None") suitable for logs, configuration dumps,
// and diagnostics. For unknown or out-of-range values, String returns a
// diagnostic form "Unknown(<n>)" and MUST NOT panic, so that corrupted
// values can still be surfaced safely.
func (s Strategy) String() string {
	switch s {
	case ByName:
		return "ByName"
	case ByType:
		return "ByType"
	case None:
		return "None"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Parse parses a textual representation of a Strategy.
//
// Parse accepts the canonical tokens produced by Strategy.String for
// known values, matched case-insensitively and with surrounding
// whitespace trimmed. Any other input results in a non-nil error; in the
// error case the returned Strategy is None and MUST NOT be relied upon.
// Parse MUST NOT panic for any input.
//
// Parse is suitable for configuration values, environment variables and
// other human-authored inputs. For hard-coded values that are expected
// to be valid, callers MAY prefer MustParse for brevity.
func Parse(s string) (Strategy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return None, fmt.Errorf("wiring: empty strategy")
	}

	switch strings.ToUpper(trimmed) {
	case "BYNAME":
		return ByName, nil
	case "BYTYPE":
		return ByType, nil
	case "NONE":
		return None, nil
	default:
		return None, fmt.Errorf("wiring: unknown strategy %q", s)
	}
}

// MustParse is like Parse but panics on invalid input. It is intended for
// hard-coded strategy tokens in initialization code.
func MustParse(s string) Strategy {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
