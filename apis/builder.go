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

// Builder composes Reflector, Registry and Wirer from a Config.
// Implementations may migrate entries from previous instances (prev), or ignore them.
type Builder interface {
	// BuildReflector constructs the introspection capability for Config.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildReflector(cfg Config, ext any) Reflector

	// BuildRegistry constructs a Registry for Config. May migrate entries from prev.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildRegistry(cfg Config, refl Reflector, prev Registry, ext any) Registry

	// BuildWirer constructs a Wirer over Registry and Reflector for Config.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildWirer(cfg Config, reg Registry, refl Reflector, ext any) Wirer
}
