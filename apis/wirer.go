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

import (
	wiring "dirpx.dev/wirex/wxapi/wiring/strategy"
)

// Strategy selects how the wiring engine derives registry keys for a field.
// See wxapi/wiring/strategy for the enum values and semantics.
type Strategy = wiring.Strategy

// Wirer populates the unset fields of struct instances from a Registry.
type Wirer interface {
	// Autowire wires target, which must be a non-nil pointer to struct.
	// Fields declared by the concrete type and by every embedded ancestor
	// type are visited once per declaring level, in declaration order.
	// Fields that are already set, and fields for which no registry entry
	// matches, are left untouched. An incompatible match fails with
	// ErrAssignment and aborts the remaining wiring of target.
	Autowire(target any, s Strategy) error

	// FinishRegistration wires every registry entry flagged as needing
	// wiring, using the ByName strategy, in a single pass over the entries
	// (order unspecified, no retries). The failure policy is governed by
	// Config.StopOnFirstError.
	FinishRegistration() error
}
