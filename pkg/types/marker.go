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

// Package types defines the recursive structural-type grammar ("type
// marker") used throughout the metadata decoder and type registry.  A
// TypeMarker describes the shape of a SCALE-encoded value without
// describing how to read it off the wire; the extrinsic/event decoder
// pairs a TypeMarker with raw bytes to produce a concrete value.
package types

import "fmt"

// Kind identifies which variant of the type grammar a TypeMarker holds.
type Kind uint8

// The closed set of TypeMarker variants.  Order has no semantic meaning
// here (unlike Enum variant order, which is a discriminant).
const (
	KindNull Kind = iota
	KindPrimitive
	KindVec
	KindFixedArray
	KindTuple
	KindStruct
	KindEnum
	KindOption
	KindCompact
	KindTypePointer
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindPrimitive:
		return "Primitive"
	case KindVec:
		return "Vec"
	case KindFixedArray:
		return "FixedArray"
	case KindTuple:
		return "Tuple"
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindOption:
		return "Option"
	case KindCompact:
		return "Compact"
	case KindTypePointer:
		return "TypePointer"
	default:
		return "Unknown"
	}
}

// Primitives is the closed set of named primitive types a catalogue entry may
// resolve to directly. Anything outside this set is a TypePointer.
var Primitives = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true,
	"bool": true, "String": true, "Bytes": true,
}

// StructField is one named field of a Struct TypeMarker. Field order is
// significant for SCALE decoding purposes even though it carries no
// discriminant semantics (unlike EnumVariant order).
type StructField struct {
	Name string
	Type TypeMarker
}

// EnumVariant is one named arm of an Enum TypeMarker. Variant order IS
// significant: it is the on-wire discriminant.
type EnumVariant struct {
	Name string
	Type TypeMarker
}

// TypeMarker is the recursive tagged-value grammar describing all
// representable types: primitives, compacts, options, vectors, fixed
// arrays, tuples, structs, enums, unit, and unresolved type pointers.
//
// This is modelled as a single struct with a discriminant (Kind) and a
// sparse set of variant-specific fields, rather than as an interface with
// one implementation per variant: TypeMarker trees are built directly off
// parsed JSON (see pkg/registry/catalogue.go) and compared/serialized as
// values, which a flat struct makes straightforward.
type TypeMarker struct {
	Kind Kind

	// Primitive, TypePointer
	Name string

	// Vec, FixedArray, Option, Compact: the element type
	Inner *TypeMarker

	// FixedArray: the array length
	Length uint32

	// Tuple: ordered element types
	Elements []TypeMarker

	// Struct: ordered, uniquely-named fields
	Fields []StructField

	// Enum: ordered, uniquely-named variants (order is the discriminant)
	Variants []EnumVariant
}

// Null constructs the unit TypeMarker.
func Null() TypeMarker { return TypeMarker{Kind: KindNull} }

// Primitive constructs a named primitive TypeMarker. Panics if name is not
// in the closed primitive set — use TypePointer for anything else.
func Primitive(name string) TypeMarker {
	if !Primitives[name] {
		panic(fmt.Sprintf("not a primitive: %q", name))
	}

	return TypeMarker{Kind: KindPrimitive, Name: name}
}

// Vec constructs a Vec(inner) TypeMarker.
func Vec(inner TypeMarker) TypeMarker {
	return TypeMarker{Kind: KindVec, Inner: &inner}
}

// FixedArray constructs a [inner; length] TypeMarker.
func FixedArray(inner TypeMarker, length uint32) TypeMarker {
	return TypeMarker{Kind: KindFixedArray, Inner: &inner, Length: length}
}

// Tuple constructs a Tuple(elements) TypeMarker.
func Tuple(elements ...TypeMarker) TypeMarker {
	return TypeMarker{Kind: KindTuple, Elements: elements}
}

// Struct constructs a Struct(fields) TypeMarker. Field names within one
// struct must be unique; this is not validated here (see catalogue.go,
// which is the one production path that constructs Structs from untrusted
// input).
func Struct(fields ...StructField) TypeMarker {
	return TypeMarker{Kind: KindStruct, Fields: fields}
}

// Enum constructs an Enum(variants) TypeMarker. Variant order is the
// on-wire discriminant; variant names within one enum must be unique.
func Enum(variants ...EnumVariant) TypeMarker {
	return TypeMarker{Kind: KindEnum, Variants: variants}
}

// Option constructs an Option(inner) TypeMarker.
func Option(inner TypeMarker) TypeMarker {
	return TypeMarker{Kind: KindOption, Inner: &inner}
}

// Compact constructs a Compact(inner) TypeMarker.
func Compact(inner TypeMarker) TypeMarker {
	return TypeMarker{Kind: KindCompact, Inner: &inner}
}

// TypePointer constructs an unresolved symbolic reference into the
// registry.
func TypePointer(name string) TypeMarker {
	return TypeMarker{Kind: KindTypePointer, Name: name}
}

// IsTypePointer reports whether this marker is an unresolved TypePointer —
// the only variant the registry resolver will follow a hop through.
func (t TypeMarker) IsTypePointer() bool { return t.Kind == KindTypePointer }

// String renders a TypeMarker as a short human-readable grammar string,
// primarily for debugging and log messages.
func (t TypeMarker) String() string {
	switch t.Kind {
	case KindNull:
		return "()"
	case KindPrimitive, KindTypePointer:
		return t.Name
	case KindVec:
		return fmt.Sprintf("Vec<%s>", t.Inner.String())
	case KindFixedArray:
		return fmt.Sprintf("[%s; %d]", t.Inner.String(), t.Length)
	case KindTuple:
		return joinTypes(t.Elements)
	case KindStruct:
		s := "{"
		for i, f := range t.Fields {
			if i > 0 {
				s += ", "
			}
			s += f.Name + ": " + f.Type.String()
		}
		return s + "}"
	case KindEnum:
		s := "Enum{"
		for i, v := range t.Variants {
			if i > 0 {
				s += ", "
			}
			s += v.Name + "(" + v.Type.String() + ")"
		}
		return s + "}"
	case KindOption:
		return fmt.Sprintf("Option<%s>", t.Inner.String())
	case KindCompact:
		return fmt.Sprintf("Compact<%s>", t.Inner.String())
	default:
		return "?"
	}
}

func joinTypes(elements []TypeMarker) string {
	s := "("
	for i, e := range elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}
