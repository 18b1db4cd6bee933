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

package common

// Keyer identifies wireable instances by a stable registration key.
//
// # Overview
//
// Keyer is the primary, zero-reflection fast path for deriving the key
// under which an instance is registered. When a value passed to
// RegisterInstance implements Keyer, the registry MUST prefer this
// interface and MUST NOT fall back to type-name derivation for that
// value.
//
// Semantically, Keyer is a type-level contract: WireKey describes the
// *kind* of instance, not a particular one. The returned key is expected
// to be independent of instance state and to remain stable across program
// executions, deployments, and process restarts, as long as the
// underlying wiring layout does not change.
//
// # Performance
//
// Implementations are intended to be extremely cheap:
//
//   - SHOULD be constant-time and amortized O(1).
//   - SHOULD avoid heap allocations on the hot path.
//   - MUST NOT perform blocking operations or I/O.
//
// # Usage
//
// Typical usage is to pin a registration key that differs from the
// type's own name, for example to match a field name used throughout an
// application:
//
//	type PaymentGateway struct {
//	    // ...
//	}
//
//	func (*PaymentGateway) WireKey() string {
//	    return "gateway"
//	}
//
//	reg.RegisterInstance(&PaymentGateway{}) // registered under "gateway"
//
// # Key guidelines
//
// In general, the WireKey value is expected to be:
//
//   - Stable across program executions (MUST).
//   - Unique within the application's wiring namespace (SHOULD).
//   - Short and human-readable (SHOULD).
type Keyer interface {
	// WireKey returns the canonical registration key for this instance.
	//
	// # Contract
	//
	//   - The returned key MUST be non-empty.
	//   - The returned key MUST be deterministic for a given concrete type.
	//   - The returned key MUST NOT depend on mutable instance state.
	//   - The implementation MUST NOT perform blocking operations, system
	//     calls, or I/O; returning a string literal is RECOMMENDED.
	WireKey() string
}

// KeyerFunc adapts a plain function to the Keyer interface.
//
// # Overview
//
// KeyerFunc is a convenience adapter that allows standalone functions with
// signature `func() string` to satisfy the Keyer interface. This is useful
// when the registration key is naturally expressed as a function (for
// example, when keying behavior is passed around as a dependency) rather
// than as a method on the instance type itself.
//
// Using KeyerFunc does not change the semantics of Keyer: the function is
// still expected to return a stable, type-level key that does not depend
// on mutable instance state.
//
// # Usage
//
//	func gatewayWireKey() string { return "gateway" }
//
//	var k Keyer = KeyerFunc(gatewayWireKey)
//	key := k.WireKey() // "gateway"
type KeyerFunc func() string

// WireKey implements Keyer for KeyerFunc.
//
// Calling WireKey on a KeyerFunc is equivalent to invoking the underlying
// function value directly. All contractual requirements of Keyer apply to
// the wrapped function.
func (f KeyerFunc) WireKey() string {
	return f()
}
