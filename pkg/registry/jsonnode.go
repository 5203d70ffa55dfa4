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
	"encoding/json"
	"fmt"
	"io"
)

// jsonNodeKind distinguishes the shapes a catalogue or overrides document
// can take at any given position.
type jsonNodeKind uint8

const (
	jsonObject jsonNodeKind = iota
	jsonArray
	jsonString
	jsonNumber
	jsonNull
)

// jsonNode is a minimal JSON tree that preserves object key order, which
// encoding/json's map[string]interface{} decoding does not. Struct field
// order is significant in a TypeMarker (4.5), so the catalogue parser
// walks tokens directly instead of unmarshaling into maps.
type jsonNode struct {
	kind    jsonNodeKind
	objKeys []string
	objVals map[string]*jsonNode
	arr     []*jsonNode
	str     string
}

// parseJSONDocument parses an entire JSON document into an order-preserving
// tree.
func parseJSONDocument(r io.Reader) (*jsonNode, error) {
	dec := json.NewDecoder(r)

	node, err := parseJSONValue(dec)
	if err != nil {
		return nil, err
	}

	return node, nil
}

func parseJSONValue(dec *json.Decoder) (*jsonNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return parseJSONValueFromToken(dec, tok)
}

func parseJSONValueFromToken(dec *json.Decoder, tok json.Token) (*jsonNode, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return parseJSONObject(dec)
		case '[':
			return parseJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v)
		}
	case string:
		return &jsonNode{kind: jsonString, str: v}, nil
	case float64:
		return &jsonNode{kind: jsonNumber, str: fmt.Sprintf("%v", v)}, nil
	case nil:
		return &jsonNode{kind: jsonNull}, nil
	case bool:
		return &jsonNode{kind: jsonString, str: fmt.Sprintf("%v", v)}, nil
	default:
		return nil, fmt.Errorf("unsupported json token %T", tok)
	}
}

func parseJSONObject(dec *json.Decoder) (*jsonNode, error) {
	node := &jsonNode{kind: jsonObject, objVals: make(map[string]*jsonNode)}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %T", keyTok)
		}

		val, err := parseJSONValue(dec)
		if err != nil {
			return nil, err
		}

		node.objKeys = append(node.objKeys, key)
		node.objVals[key] = val
	}

	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return node, nil
}

func parseJSONArray(dec *json.Decoder) (*jsonNode, error) {
	node := &jsonNode{kind: jsonArray}

	for dec.More() {
		val, err := parseJSONValue(dec)
		if err != nil {
			return nil, err
		}

		node.arr = append(node.arr, val)
	}

	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return node, nil
}
