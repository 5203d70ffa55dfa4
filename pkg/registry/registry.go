// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package registry

import (
	"regexp"
	"strings"

	"github.com/tetcoin/desub-go/pkg/types"
)

// TypeDetective is the capability the extrinsic decoder consults: it
// never sees a catalogue or override directly, only this two-operation
// surface (4.7). Any chain-specific PolkadotTypes value satisfies it.
type TypeDetective interface {
	Get(module, ty string, spec int, chain string) (types.TypeMarker, bool)
	Resolve(module string, ty types.TypeMarker) (types.TypeMarker, bool)
}

// PolkadotTypes is the registry root (3): a base catalogue plus the two
// override indices layered on top of it. Constructed once at startup and
// shared read-only thereafter (5) — nothing here mutates post-construction.
type PolkadotTypes struct {
	Mods      Modules
	Overrides Overrides
}

var typePointerPrefix = regexp.MustCompile(`^(?:T::|<T as [^>]+>::)`)

// Get resolves (module, ty, spec, chain) to a TypeMarker following the
// precedence order in 4.6: module override, then chain+spec override,
// then the base catalogue. Module and chain names are matched
// case-insensitively.
func (p PolkadotTypes) Get(module, ty string, spec int, chain string) (types.TypeMarker, bool) {
	module = strings.ToLower(module)
	chain = strings.ToLower(chain)

	if marker, ok := p.CheckOverrides(module, ty, spec, chain); ok {
		return marker, true
	}

	mod, ok := p.Mods.Modules[module]
	if !ok {
		return types.TypeMarker{}, false
	}

	marker, ok := mod.Types[ty]
	return marker, ok
}

// CheckOverrides applies only the override layers (module-scoped, then
// chain+spec-scoped), without falling back to the base catalogue. Exposed
// separately because override precedence is itself a testable property
// (invariant 4): a module override wins regardless of (spec, chain).
func (p PolkadotTypes) CheckOverrides(module, ty string, spec int, chain string) (types.TypeMarker, bool) {
	if modTypes := p.Overrides.GetModuleTypes(module); modTypes != nil {
		if marker, ok := modTypes[ty]; ok {
			return marker, true
		}
	}

	if chainTypes := p.Overrides.GetChainTypes(chain, spec); chainTypes != nil {
		if marker, ok := chainTypes[ty]; ok {
			return marker, true
		}
	}

	return types.TypeMarker{}, false
}

// Resolve follows exactly one TypePointer hop within module's base
// catalogue types (4.6, invariant 3): non-TypePointer markers always miss.
// A known symbolic prefix (e.g. "T::", "<T as Trait>::") is stripped
// before lookup.
func (p PolkadotTypes) Resolve(module string, ty types.TypeMarker) (types.TypeMarker, bool) {
	if !ty.IsTypePointer() {
		return types.TypeMarker{}, false
	}

	name := typePointerPrefix.ReplaceAllString(ty.Name, "")

	mod, ok := p.Mods.Modules[strings.ToLower(module)]
	if !ok {
		return types.TypeMarker{}, false
	}

	marker, ok := mod.Types[name]
	return marker, ok
}
