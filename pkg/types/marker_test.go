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
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitivePanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() { Primitive("NotAPrimitive") })
}

func TestOnlyTypePointerIsUnresolved(t *testing.T) {
	tests := []struct {
		name   string
		marker TypeMarker
		want   bool
	}{
		{"null", Null(), false},
		{"primitive", Primitive("u32"), false},
		{"vec", Vec(Primitive("u8")), false},
		{"fixed array", FixedArray(Primitive("u8"), 32), false},
		{"tuple", Tuple(Primitive("u8"), Primitive("u16")), false},
		{"struct", Struct(StructField{Name: "a", Type: Primitive("u8")}), false},
		{"enum", Enum(EnumVariant{Name: "A", Type: Null()}), false},
		{"option", Option(Primitive("u8")), false},
		{"compact", Compact(Primitive("u128")), false},
		{"type pointer", TypePointer("Balance"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.marker.IsTypePointer())
		})
	}
}

func TestStringRendersNestedGrammar(t *testing.T) {
	marker := Struct(
		StructField{Name: "id", Type: TypePointer("LockIdentifier")},
		StructField{Name: "amount", Type: Compact(TypePointer("Balance"))},
		StructField{Name: "until", Type: Option(Primitive("u32"))},
	)

	assert.Equal(t, "{id: LockIdentifier, amount: Compact<Balance>, until: Option<u32>}", marker.String())
}

func TestVecOfTupleRenders(t *testing.T) {
	marker := Vec(Tuple(Primitive("String"), Primitive("u128")))
	assert.Equal(t, "Vec<(String, u128)>", marker.String())
}
