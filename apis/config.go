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

// Config carries read-only wiring knobs that influence key derivation and
// traversal. It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// MaxDepth limits how many embedding levels the wiring engine walks
	// when flattening a struct's ancestor chain. Acts as a safety guard
	// against self-referential embedded pointers.
	MaxDepth int

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// when deriving a type-based registry key.
	MaxUnwrap int

	// StopOnFirstError controls the bulk-wiring failure policy. If true,
	// FinishRegistration aborts on the first entry that fails to wire;
	// otherwise it keeps going and returns the accumulated failures.
	StopOnFirstError bool
}
