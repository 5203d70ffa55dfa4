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

// Package dialect holds one raw wire-format struct per supported metadata
// version (V7 through V11). Each dialect shares roughly 70% of its shape
// with its neighbours but differs in awkward, version-specific ways, so
// each gets its own tagged struct and its own SCALE field layout rather
// than a shared generic — see SPEC_FULL.md §4.1 / §9.
//
// Normalization into the canonical metadata.Metadata model lives in the
// parent metadata package, which imports this one; this package has no
// knowledge of the canonical model and does not decide call/event
// indices, only carries what the wire gave it.
package dialect

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/scale"
)

// Text and Bytes are SCALE string/byte-sequence aliases, named to match
// the wire vocabulary used throughout the Substrate metadata format.
type Text = string
type Bytes = []byte

// FunctionArgumentMetadata is one named, typed argument of a dispatchable
// call, as declared in the metadata (not as it appears in an encoded
// extrinsic — the registry resolves "Type" to a concrete TypeMarker).
type FunctionArgumentMetadata struct {
	Name Text
	Type Text
}

// FunctionMetadata describes one dispatchable call within a module, in
// declaration order.
type FunctionMetadata struct {
	Name          Text
	Args          []FunctionArgumentMetadata
	Documentation []Text
}

// EventMetadata describes one event variant within a module, in
// declaration order. Args carries the raw, not-yet-parsed EventArg
// strings (e.g. "Vec<(AccountId, Balance)>"); see metadata.ParseEventArg.
type EventMetadata struct {
	Name          Text
	Args          []Text
	Documentation []Text
}

// ModuleConstantMetadata describes a compile-time constant exposed by a
// module. The canonical model does not currently surface constants; they
// are decoded here so the dialect's bytes are fully consumed, and
// otherwise ignored by normalization.
type ModuleConstantMetadata struct {
	Name          Text
	Type          Text
	Value         Bytes
	Documentation []Text
}

// ErrorMetadata describes one declared dispatch error, introduced at V8.
type ErrorMetadata struct {
	Name          Text
	Documentation []Text
}

// StorageFunctionModifier governs the default-value semantics of a
// missing storage key: Optional entries decode absence as None, Default
// entries decode absence as the entry's declared default value. Stable
// across all supported dialects.
type StorageFunctionModifier struct {
	IsOptional bool
	IsDefault  bool
}

// Decode implements scale.Decodeable.
func (m *StorageFunctionModifier) Decode(decoder scale.Decoder) error {
	var t uint8
	if err := decoder.Decode(&t); err != nil {
		return err
	}

	switch t {
	case 0:
		m.IsOptional = true
	case 1:
		m.IsDefault = true
	default:
		return fmt.Errorf("unexpected storage modifier %d", t)
	}

	return nil
}

// Encode implements scale.Encodeable.
func (m StorageFunctionModifier) Encode(encoder scale.Encoder) error {
	switch {
	case m.IsOptional:
		return encoder.PushByte(0)
	case m.IsDefault:
		return encoder.PushByte(1)
	default:
		return fmt.Errorf("storage modifier has neither Optional nor Default set")
	}
}
