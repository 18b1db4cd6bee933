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

package builder

import (
	"dirpx.dev/wirex/apis"
	"dirpx.dev/wirex/reflector"
	"dirpx.dev/wirex/registry"
	"dirpx.dev/wirex/wirer"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildReflector builds and returns the stdlib-reflect introspection
// capability. The configuration and extension context are not consulted.
func (b *builder) BuildReflector(_ apis.Config, _ any) apis.Reflector {
	return reflector.New()
}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its entries are carried over into the new registry, preserving
// each entry's NeedsWiring flag.
func (b *builder) BuildRegistry(cfg apis.Config, refl apis.Reflector, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg, refl)
	if prev != nil {
		for _, e := range prev.Entries() {
			if e.NeedsWiring {
				nreg.Register(e.Key, e.Instance)
			} else {
				nreg.RegisterPrewired(e.Key, e.Instance)
			}
		}
	}
	return nreg
}

// BuildWirer builds and returns a new apis.Wirer over the provided registry
// and reflector.
func (b *builder) BuildWirer(cfg apis.Config, reg apis.Registry, refl apis.Reflector, _ any) apis.Wirer {
	return wirer.New(cfg, reg, refl)
}
