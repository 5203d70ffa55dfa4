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

// Package registry implements the type-definition catalogue, its
// module/chain-scoped overrides, and the query façade the extrinsic
// decoder uses to resolve a (module, type name, spec version, chain)
// tuple to a concrete types.TypeMarker (4.5-4.7).
package registry

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tetcoin/desub-go/pkg/types"
)

// ModuleTypes is one module's type-name -> TypeMarker map.
type ModuleTypes struct {
	Types map[string]types.TypeMarker
}

// Modules is the parsed base catalogue: module name -> its type map.
type Modules struct {
	Modules map[string]ModuleTypes
}

// ParseCatalogue parses a declarative catalogue document (4.5): a JSON
// object mapping module name to an object mapping type name to a type
// definition.
func ParseCatalogue(r io.Reader) (Modules, error) {
	doc, err := parseJSONDocument(r)
	if err != nil {
		return Modules{}, fmt.Errorf("parsing catalogue: %w", err)
	}

	if doc.kind != jsonObject {
		return Modules{}, fmt.Errorf("catalogue root must be an object")
	}

	mods := Modules{Modules: make(map[string]ModuleTypes)}

	for _, modName := range doc.objKeys {
		modNode := doc.objVals[modName]
		if modNode.kind != jsonObject {
			return Modules{}, fmt.Errorf("module %q must map to an object", modName)
		}

		mt := ModuleTypes{Types: make(map[string]types.TypeMarker)}

		for _, tyName := range modNode.objKeys {
			marker, err := parseTypeDef(modNode.objVals[tyName])
			if err != nil {
				return Modules{}, fmt.Errorf("module %q type %q: %w", modName, tyName, err)
			}

			mt.Types[tyName] = marker
		}

		mods.Modules[modName] = mt
	}

	return mods, nil
}

// parseTypeDef implements the 4.5 grammar over an already-parsed JSON
// node: primitive/pointer strings, compound-type strings (Vec<T>,
// Option<T>, [T; N], (A, B, C)), struct objects, and enum arrays.
func parseTypeDef(node *jsonNode) (types.TypeMarker, error) {
	switch node.kind {
	case jsonNull:
		return types.Null(), nil

	case jsonString:
		return parseTypeString(strings.TrimSpace(node.str))

	case jsonObject:
		fields := make([]types.StructField, 0, len(node.objKeys))

		seen := make(map[string]bool, len(node.objKeys))
		for _, name := range node.objKeys {
			if seen[name] {
				return types.TypeMarker{}, fmt.Errorf("duplicate struct field %q", name)
			}
			seen[name] = true

			fieldType, err := parseTypeDef(node.objVals[name])
			if err != nil {
				return types.TypeMarker{}, err
			}

			fields = append(fields, types.StructField{Name: name, Type: fieldType})
		}

		return types.Struct(fields...), nil

	case jsonArray:
		return parseEnumArray(node)

	default:
		return types.TypeMarker{}, fmt.Errorf("unsupported type definition shape")
	}
}

// parseEnumArray handles the array form of a type definition: each
// element is either a bare variant name (unit variant) or a single-key
// {name: fields} object (struct-carrying variant).
func parseEnumArray(node *jsonNode) (types.TypeMarker, error) {
	variants := make([]types.EnumVariant, 0, len(node.arr))

	seen := make(map[string]bool, len(node.arr))

	for _, elem := range node.arr {
		switch elem.kind {
		case jsonString:
			name := strings.TrimSpace(elem.str)
			if seen[name] {
				return types.TypeMarker{}, fmt.Errorf("duplicate enum variant %q", name)
			}
			seen[name] = true

			variants = append(variants, types.EnumVariant{Name: name, Type: types.Null()})

		case jsonObject:
			if len(elem.objKeys) != 1 {
				return types.TypeMarker{}, fmt.Errorf("enum variant object must have exactly one key")
			}

			name := elem.objKeys[0]
			if seen[name] {
				return types.TypeMarker{}, fmt.Errorf("duplicate enum variant %q", name)
			}
			seen[name] = true

			ty, err := parseTypeDef(elem.objVals[name])
			if err != nil {
				return types.TypeMarker{}, err
			}

			variants = append(variants, types.EnumVariant{Name: name, Type: ty})

		default:
			return types.TypeMarker{}, fmt.Errorf("unsupported enum variant shape")
		}
	}

	return types.Enum(variants...), nil
}

// parseTypeString parses the compound-type grammar strings and bare
// identifiers described in 4.5. Generics are parsed by bracket balancing,
// not tokenization.
func parseTypeString(s string) (types.TypeMarker, error) {
	switch {
	case s == "null":
		return types.Null(), nil

	case strings.HasPrefix(s, "Vec<") && strings.HasSuffix(s, ">"):
		inner, err := parseTypeString(strings.TrimSpace(s[len("Vec<") : len(s)-1]))
		if err != nil {
			return types.TypeMarker{}, err
		}
		return types.Vec(inner), nil

	case strings.HasPrefix(s, "Option<") && strings.HasSuffix(s, ">"):
		inner, err := parseTypeString(strings.TrimSpace(s[len("Option<") : len(s)-1]))
		if err != nil {
			return types.TypeMarker{}, err
		}
		return types.Option(inner), nil

	case strings.HasPrefix(s, "Compact<") && strings.HasSuffix(s, ">"):
		inner, err := parseTypeString(strings.TrimSpace(s[len("Compact<") : len(s)-1]))
		if err != nil {
			return types.TypeMarker{}, err
		}
		return types.Compact(inner), nil

	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		body := s[1 : len(s)-1]

		idx := strings.LastIndex(body, ";")
		if idx == -1 {
			return types.TypeMarker{}, fmt.Errorf("malformed fixed array %q: missing ';'", s)
		}

		inner, err := parseTypeString(strings.TrimSpace(body[:idx]))
		if err != nil {
			return types.TypeMarker{}, err
		}

		length, err := strconv.ParseUint(strings.TrimSpace(body[idx+1:]), 10, 32)
		if err != nil {
			return types.TypeMarker{}, fmt.Errorf("malformed fixed array length in %q: %w", s, err)
		}

		return types.FixedArray(inner, uint32(length)), nil

	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		parts, err := splitBalanced(s[1 : len(s)-1])
		if err != nil {
			return types.TypeMarker{}, err
		}

		elements := make([]types.TypeMarker, len(parts))
		for i, p := range parts {
			el, err := parseTypeString(strings.TrimSpace(p))
			if err != nil {
				return types.TypeMarker{}, err
			}
			elements[i] = el
		}

		return types.Tuple(elements...), nil

	case types.Primitives[s]:
		return types.Primitive(s), nil

	default:
		return types.TypePointer(s), nil
	}
}

// splitBalanced splits a comma-separated list, respecting nested
// <...>, [...] and (...) so "Vec<(A,B)>,C" splits into two elements, not
// three.
func splitBalanced(s string) ([]string, error) {
	var parts []string

	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '[', '(':
			depth++
		case '>', ']', ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced brackets in %q", s)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets in %q", s)
	}

	parts = append(parts, s[start:])

	return parts, nil
}
