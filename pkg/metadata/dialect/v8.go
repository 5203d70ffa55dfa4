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

// RuntimeMetadataV8 is the raw tree produced by decoding a V8
// RuntimeMetadata payload. V8 introduces module-level error descriptions
// and an explicit module index; storage entries are still Plain or Map
// only (DoubleMap arrives at V9) and hashers are still the V7 set
// (concatenating hashers arrive at V10).
type RuntimeMetadataV8 struct {
	Modules []ModuleMetadataV8
}

// DecodeV8 decodes a V8 RuntimeMetadata payload.
func DecodeV8(decoder scale.Decoder) (*RuntimeMetadataV8, error) {
	var m RuntimeMetadataV8
	if err := decoder.Decode(&m.Modules); err != nil {
		return nil, err
	}

	return &m, nil
}

// ModuleMetadataV8 describes one module under the V8 dialect.
type ModuleMetadataV8 struct {
	Index      uint8
	Name       Text
	HasStorage bool
	Storage    StorageMetadataV8
	HasCalls   bool
	Calls      []FunctionMetadata
	HasEvents  bool
	Events     []EventMetadata
	Constants  []ModuleConstantMetadata
	Errors     []ErrorMetadata
}

// Decode implements scale.Decodeable.
func (m *ModuleMetadataV8) Decode(decoder scale.Decoder) error {
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
func (m ModuleMetadataV8) Encode(encoder scale.Encoder) error {
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

// StorageMetadataV8 is the storage section of one module.
type StorageMetadataV8 struct {
	Prefix Text
	Items  []StorageFunctionMetadataV8
}

// StorageFunctionMetadataV8 describes one storage entry.
type StorageFunctionMetadataV8 struct {
	Name          Text
	Modifier      StorageFunctionModifier
	Type          StorageFunctionTypeV8
	Fallback      Bytes
	Documentation []Text
}

// StorageFunctionTypeV8 is the V8 storage entry shape: Plain or Map.
type StorageFunctionTypeV8 struct {
	IsType bool
	AsType Text // 0
	IsMap  bool
	AsMap  MapTypeV8 // 1
}

// Decode implements scale.Decodeable.
func (s *StorageFunctionTypeV8) Decode(decoder scale.Decoder) error {
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
	default:
		return fmt.Errorf("received unexpected v8 storage function type %v", t)
	}
}

// Encode implements scale.Encodeable.
func (s StorageFunctionTypeV8) Encode(encoder scale.Encoder) error {
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
	default:
		return fmt.Errorf("v8 storage function type has neither Type nor Map set")
	}
}

// MapTypeV8 describes a single-key storage map under the V8 dialect.
type MapTypeV8 struct {
	Hasher StorageHasherV7
	Key    Text
	Value  Text
	// Linked marks a linked map (doubly-linked-list enumeration support).
	// Not surfaced on the canonical model, but it is on the wire and must
	// be decoded or every field after it desyncs.
	Linked bool
}
