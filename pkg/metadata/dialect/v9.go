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
package dialect

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/scale"
)

// RuntimeMetadataV9 is the raw tree produced by decoding a V9
// RuntimeMetadata payload. V9 adds DoubleMap storage entries; hashers are
// still the V7/V8 four-variant set (concatenating hashers arrive at V10).
type RuntimeMetadataV9 struct {
	Modules []ModuleMetadataV9
}

// DecodeV9 decodes a V9 RuntimeMetadata payload.
func DecodeV9(decoder scale.Decoder) (*RuntimeMetadataV9, error) {
	var m RuntimeMetadataV9
	if err := decoder.Decode(&m.Modules); err != nil {
		return nil, err
	}

	return &m, nil
}

// ModuleMetadataV9 describes one module under the V9 dialect.
type ModuleMetadataV9 struct {
	Index      uint8
	Name       Text
	HasStorage bool
	Storage    StorageMetadataV9
	HasCalls   bool
	Calls      []FunctionMetadata
	HasEvents  bool
	Events     []EventMetadata
	Constants  []ModuleConstantMetadata
	Errors     []ErrorMetadata
}

// Decode implements scale.Decodeable.
func (m *ModuleMetadataV9) Decode(decoder scale.Decoder) error {
	if err := decoder.Decode(&m.Index); err != nil {
		return err
	}

	if err := decoder.Decode(&m.Name); err != nil {
		return err
	}

	if err := decoder.Decode(&m.HasStorage); err != nil {
		return err
	}

	if m.HasStorage {
		if err := decoder.Decode(&m.Storage); err != nil {
			return err
		}
	}

	if err := decoder.Decode(&m.HasCalls); err != nil {
		return err
	}

	if m.HasCalls {
		if err := decoder.Decode(&m.Calls); err != nil {
			return err
		}
	}

	if err := decoder.Decode(&m.HasEvents); err != nil {
		return err
	}

	if m.HasEvents {
		if err := decoder.Decode(&m.Events); err != nil {
			return err
		}
	}

	if err := decoder.Decode(&m.Constants); err != nil {
		return err
	}

	return decoder.Decode(&m.Errors)
}

// Encode implements scale.Encodeable.
func (m ModuleMetadataV9) Encode(encoder scale.Encoder) error {
	if err := encoder.Encode(m.Index); err != nil {
		return err
	}

	if err := encoder.Encode(m.Name); err != nil {
		return err
	}

	if err := encoder.Encode(m.HasStorage); err != nil {
		return err
	}

	if m.HasStorage {
		if err := encoder.Encode(m.Storage); err != nil {
			return err
		}
	}

	if err := encoder.Encode(m.HasCalls); err != nil {
		return err
	}

	if m.HasCalls {
		if err := encoder.Encode(m.Calls); err != nil {
			return err
		}
	}

	if err := encoder.Encode(m.HasEvents); err != nil {
		return err
	}

	if m.HasEvents {
		if err := encoder.Encode(m.Events); err != nil {
			return err
		}
	}

	if err := encoder.Encode(m.Constants); err != nil {
		return err
	}

	return encoder.Encode(m.Errors)
}

// StorageMetadataV9 is the storage section of one module.
type StorageMetadataV9 struct {
	Prefix Text
	Items  []StorageFunctionMetadataV9
}

// StorageFunctionMetadataV9 describes one storage entry.
type StorageFunctionMetadataV9 struct {
	Name          Text
	Modifier      StorageFunctionModifier
	Type          StorageFunctionTypeV9
	Fallback      Bytes
	Documentation []Text
}

// StorageFunctionTypeV9 is the V9 storage entry shape: Plain, Map or
// DoubleMap.
type StorageFunctionTypeV9 struct {
	IsType      bool
	AsType      Text // 0
	IsMap       bool
	AsMap       MapTypeV9 // 1
	IsDoubleMap bool
	AsDoubleMap DoubleMapTypeV9 // 2
}

// Decode implements scale.Decodeable.
func (s *StorageFunctionTypeV9) Decode(decoder scale.Decoder) error {
	var t uint8
	if err := decoder.Decode(&t); err != nil {
		return err
	}

	switch t {
	case 0:
		s.IsType = true
		return decoder.Decode(&s.AsType)
	case 1:
		s.IsMap = true
		return decoder.Decode(&s.AsMap)
	case 2:
		s.IsDoubleMap = true
		return decoder.Decode(&s.AsDoubleMap)
	default:
		return fmt.Errorf("received unexpected v9 storage function type %v", t)
	}
}

// Encode implements scale.Encodeable.
func (s StorageFunctionTypeV9) Encode(encoder scale.Encoder) error {
	switch {
	case s.IsType:
		if err := encoder.PushByte(0); err != nil {
			return err
		}
		return encoder.Encode(s.AsType)
	case s.IsMap:
		if err := encoder.PushByte(1); err != nil {
			return err
		}
		return encoder.Encode(s.AsMap)
	case s.IsDoubleMap:
		if err := encoder.PushByte(2); err != nil {
			return err
		}
		return encoder.Encode(s.AsDoubleMap)
	default:
		return fmt.Errorf("v9 storage function type has no variant set")
	}
}

// MapTypeV9 describes a single-key storage map under the V9 dialect.
type MapTypeV9 struct {
	Hasher StorageHasherV7
	Key    Text
	Value  Text
	// Linked marks a linked map (doubly-linked-list enumeration support).
	// Not surfaced on the canonical model, but it is on the wire and must
	// be decoded or every field after it desyncs.
	Linked bool
}

// DoubleMapTypeV9 describes a two-key storage map. Each key carries its own
// hasher on the wire: Hasher for Key1 and Key2Hasher for Key2.
type DoubleMapTypeV9 struct {
	Hasher     StorageHasherV7
	Key1       Text
	Key2       Text
	Value      Text
	Key2Hasher StorageHasherV7
}
