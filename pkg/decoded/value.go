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

// Package decoded holds the decoded-value model: the concrete value tree
// produced by walking SCALE bytes against a resolved types.TypeMarker, and
// the GenericCall/GenericExtrinsic wrappers downstream tools serialize.
// This package owns only the tree and its JSON rendering — walking raw
// bytes against a TypeMarker is the extrinsic decoder's job (out of
// scope, see SPEC_FULL.md's component table).
package decoded

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind mirrors types.Kind but over concrete leaves instead of type
// descriptions.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindPrimitive
	KindOption
	KindComposite // Vec, FixedArray, Tuple, Struct all render as a JSON array of their elements
)

// DecodedValue is the value tree produced by walking SCALE bytes against
// a resolved TypeMarker. Its JSON rendering is intentionally lossy
// relative to TypeMarker: primitives render as bare scalars, an Option
// unwraps its Some value (None renders as JSON null), and every composite
// shape (Vec, FixedArray, Tuple, Struct) renders as a plain JSON array —
// matching the reference decoder's wire-friendly rendering rather than
// round-tripping the type grammar.
type DecodedValue struct {
	Kind ValueKind

	// KindPrimitive: the scalar value as produced by the SCALE decode
	// (e.g. a json.Number-compatible value, bool, or string).
	Scalar interface{}

	// KindOption: nil when None, otherwise the wrapped value.
	Some *DecodedValue

	// KindComposite: ordered child values.
	Elements []DecodedValue
}

// Null is the Null/unit DecodedValue.
func Null() DecodedValue { return DecodedValue{Kind: KindNull} }

// Primitive wraps a concrete scalar leaf.
func Primitive(v interface{}) DecodedValue { return DecodedValue{Kind: KindPrimitive, Scalar: v} }

// None is the absent-Option DecodedValue.
func None() DecodedValue { return DecodedValue{Kind: KindOption, Some: nil} }

// Some wraps a present-Option DecodedValue.
func Some(v DecodedValue) DecodedValue { return DecodedValue{Kind: KindOption, Some: &v} }

// Composite wraps an ordered sequence of child values (Vec, FixedArray,
// Tuple, or Struct — JSON rendering does not distinguish them).
func Composite(elements ...DecodedValue) DecodedValue {
	return DecodedValue{Kind: KindComposite, Elements: elements}
}

// MarshalJSON implements the reference decoder's lossy rendering.
func (v DecodedValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindPrimitive:
		return json.Marshal(v.Scalar)
	case KindOption:
		if v.Some == nil {
			return []byte("null"), nil
		}
		return json.Marshal(*v.Some)
	case KindComposite:
		return json.Marshal(v.Elements)
	default:
		return nil, fmt.Errorf("decoded value has unknown kind %d", v.Kind)
	}
}

// NamedArg pairs an argument name with its decoded value, preserving
// declaration order the way a JSON object would not once re-marshaled
// through a Go map.
type NamedArg struct {
	Name string
	Arg  DecodedValue
}

// MarshalJSON renders {"name": ..., "arg": ...}.
func (a NamedArg) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"name":`)

	name, err := json.Marshal(a.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(name)

	buf.WriteString(`,"arg":`)

	arg, err := json.Marshal(a.Arg)
	if err != nil {
		return nil, err
	}
	buf.Write(arg)

	buf.WriteString(`}`)

	return buf.Bytes(), nil
}

// GenericCall is a decoded dispatchable call: its owning module, its
// name, and its named arguments in declaration order.
type GenericCall struct {
	Module string
	Name   string
	Args   []NamedArg
}

// MarshalJSON renders {"name":...,"module":...,"args":[...]}, matching
// the field order the reference JSON fixture expects.
func (c GenericCall) MarshalJSON() ([]byte, error) {
	type wire struct {
		Name   string     `json:"name"`
		Module string     `json:"module"`
		Args   []NamedArg `json:"args"`
	}

	return json.Marshal(wire{Name: c.Name, Module: c.Module, Args: c.Args})
}

// GenericExtrinsic is the top-level decoded extrinsic: an optional
// signature and the call it dispatches.
type GenericExtrinsic struct {
	Signature *DecodedValue
	Call      GenericCall
}

// MarshalJSON renders {"signature":...,"call":...}; signature renders as
// JSON null when absent.
func (e GenericExtrinsic) MarshalJSON() ([]byte, error) {
	type wire struct {
		Signature *DecodedValue `json:"signature"`
		Call      GenericCall   `json:"call"`
	}

	return json.Marshal(wire{Signature: e.Signature, Call: e.Call})
}
