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
	"fmt"
	"io"
	"strings"

	"github.com/tetcoin/desub-go/pkg/types"
)

// ChainSpecRange is one (min, max) spec-version window a chain override
// applies to. Both ends are inclusive; a nil bound is open (±∞), per 4.6
// and the "minmax" catalogue file convention (6).
type ChainSpecRange struct {
	Min   *int
	Max   *int
	Types map[string]types.TypeMarker
}

// Contains reports whether spec falls within this inclusive range.
func (r ChainSpecRange) Contains(spec int) bool {
	if r.Min != nil && spec < *r.Min {
		return false
	}
	if r.Max != nil && spec > *r.Max {
		return false
	}
	return true
}

// Overrides holds the two override indices described in 4.6: a flat
// module-scoped map, and a per-chain ordered list of spec-range-scoped
// maps. Chain names are stored lowercased; lookups lowercase their query
// to match.
type Overrides struct {
	ModuleTypes map[string]map[string]types.TypeMarker
	ChainTypes  map[string][]ChainSpecRange
}

// GetModuleTypes returns the module-scoped override map for module, if
// any.
func (o Overrides) GetModuleTypes(module string) map[string]types.TypeMarker {
	return o.ModuleTypes[module]
}

// GetChainTypes returns the type map of whichever range in chain's
// override list contains spec, if any.
func (o Overrides) GetChainTypes(chain string, spec int) map[string]types.TypeMarker {
	for _, r := range o.ChainTypes[strings.ToLower(chain)] {
		if r.Contains(spec) {
			return r.Types
		}
	}

	return nil
}

// ParseOverrides parses an overrides document (6): a JSON object with two
// top-level keys, "modules" (module name -> type name -> type definition)
// and "chains" (chain name -> array of {minmax: [min, max], types: {...}}).
func ParseOverrides(r io.Reader) (Overrides, error) {
	doc, err := parseJSONDocument(r)
	if err != nil {
		return Overrides{}, fmt.Errorf("parsing overrides: %w", err)
	}

	if doc.kind != jsonObject {
		return Overrides{}, fmt.Errorf("overrides root must be an object")
	}

	out := Overrides{
		ModuleTypes: make(map[string]map[string]types.TypeMarker),
		ChainTypes:  make(map[string][]ChainSpecRange),
	}

	if modulesNode, ok := doc.objVals["modules"]; ok {
		if modulesNode.kind != jsonObject {
			return Overrides{}, fmt.Errorf(`"modules" must be an object`)
		}

		for _, modName := range modulesNode.objKeys {
			tyNode := modulesNode.objVals[modName]
			if tyNode.kind != jsonObject {
				return Overrides{}, fmt.Errorf("module override %q must map to an object", modName)
			}

			typeMap := make(map[string]types.TypeMarker)
			for _, tyName := range tyNode.objKeys {
				marker, err := parseTypeDef(tyNode.objVals[tyName])
				if err != nil {
					return Overrides{}, fmt.Errorf("module override %q type %q: %w", modName, tyName, err)
				}
				typeMap[tyName] = marker
			}

			out.ModuleTypes[modName] = typeMap
		}
	}

	if chainsNode, ok := doc.objVals["chains"]; ok {
		if chainsNode.kind != jsonObject {
			return Overrides{}, fmt.Errorf(`"chains" must be an object`)
		}

		for _, chainName := range chainsNode.objKeys {
			rangesNode := chainsNode.objVals[chainName]
			if rangesNode.kind != jsonArray {
				return Overrides{}, fmt.Errorf("chain override %q must be an array", chainName)
			}

			ranges := make([]ChainSpecRange, 0, len(rangesNode.arr))

			for _, rangeNode := range rangesNode.arr {
				cr, err := parseChainSpecRange(rangeNode)
				if err != nil {
					return Overrides{}, fmt.Errorf("chain override %q: %w", chainName, err)
				}
				ranges = append(ranges, cr)
			}

			if err := validateNoOverlap(ranges); err != nil {
				return Overrides{}, fmt.Errorf("chain override %q: %w", chainName, err)
			}

			out.ChainTypes[strings.ToLower(chainName)] = ranges
		}
	}

	return out, nil
}

func parseChainSpecRange(node *jsonNode) (ChainSpecRange, error) {
	if node.kind != jsonObject {
		return ChainSpecRange{}, fmt.Errorf("range entry must be an object")
	}

	minmaxNode, ok := node.objVals["minmax"]
	if !ok || minmaxNode.kind != jsonArray || len(minmaxNode.arr) != 2 {
		return ChainSpecRange{}, fmt.Errorf(`range entry must have a two-element "minmax" array`)
	}

	cr := ChainSpecRange{Types: make(map[string]types.TypeMarker)}

	minBound, err := parseOpenBound(minmaxNode.arr[0])
	if err != nil {
		return ChainSpecRange{}, err
	}
	cr.Min = minBound

	maxBound, err := parseOpenBound(minmaxNode.arr[1])
	if err != nil {
		return ChainSpecRange{}, err
	}
	cr.Max = maxBound

	typesNode, ok := node.objVals["types"]
	if !ok || typesNode.kind != jsonObject {
		return ChainSpecRange{}, fmt.Errorf(`range entry must have a "types" object`)
	}

	for _, tyName := range typesNode.objKeys {
		marker, err := parseTypeDef(typesNode.objVals[tyName])
		if err != nil {
			return ChainSpecRange{}, fmt.Errorf("type %q: %w", tyName, err)
		}
		cr.Types[tyName] = marker
	}

	return cr, nil
}

func parseOpenBound(node *jsonNode) (*int, error) {
	if node.kind == jsonNull {
		return nil, nil
	}

	if node.kind != jsonNumber {
		return nil, fmt.Errorf("bound must be a number or null")
	}

	var n int
	if _, err := fmt.Sscanf(node.str, "%d", &n); err != nil {
		return nil, fmt.Errorf("parsing bound %q: %w", node.str, err)
	}

	return &n, nil
}

// validateNoOverlap enforces invariant 5: chain-override ranges for one
// chain must not overlap. Open bounds are treated as ±∞.
func validateNoOverlap(ranges []ChainSpecRange) error {
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if rangesOverlap(ranges[i], ranges[j]) {
				return fmt.Errorf("overlapping spec ranges at indices %d and %d", i, j)
			}
		}
	}

	return nil
}

func rangesOverlap(a, b ChainSpecRange) bool {
	aMin, aMax := boundOrInf(a.Min, false), boundOrInf(a.Max, true)
	bMin, bMax := boundOrInf(b.Min, false), boundOrInf(b.Max, true)

	return aMin <= bMax && bMin <= aMax
}

func boundOrInf(b *int, upper bool) int {
	if b != nil {
		return *b
	}

	if upper {
		return int(^uint(0) >> 1)
	}

	return -int(^uint(0)>>1) - 1
}
