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

// RuntimeMetadataV7 is the raw tree produced by decoding a V7
// RuntimeMetadata payload. V7 predates explicit module indices (a
// module's index is its position in this list) and predates
// module-level error descriptions and double-map storage.
//
// Like every other dialect it is decoded through its own entry point,
// DecodeV7, rather than a path shared with other versions. DecodeV7 reads
// the payload with the same scale.Decoder rules as the later dialects; it
// applies no separate compact-length framing.
type RuntimeMetadataV7 struct {
	Modules []ModuleMetadataV7
}

// DecodeV7 decodes a V7 RuntimeMetadata payload (the bytes following the
// magic prefix and version byte).
func DecodeV7(decoder scale.Decoder) (*RuntimeMetadataV7, error) {
	var m RuntimeMetadataV7
	if err := decoder.Decode(&m.Modules); err != nil {
		return nil, err
	}

	return &m, nil
}

// ModuleMetadataV7 describes one module (pallet) under the V7 dialect.
type ModuleMetadataV7 struct {
	Name       Text
	HasStorage bool
	Storage    StorageMetadataV7
	HasCalls   bool
	Calls      []FunctionMetadata
	HasEvents  bool
	Events     []EventMetadata
	Constants  []ModuleConstantMetadata
}

// Decode implements scale.Decodeable.
func (m *ModuleMetadataV7) Decode(decoder scale.Decoder) error {
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

	return decoder.Decode(&m.Constants)
}

// Encode implements scale.Encodeable.
func (m ModuleMetadataV7) Encode(encoder scale.Encoder) error {
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

	return encoder.Encode(m.Constants)
}

// StorageMetadataV7 is the storage section of one module.
type StorageMetadataV7 struct {
	Prefix Text
	Items  []StorageFunctionMetadataV7
}

// StorageFunctionMetadataV7 describes one storage entry.
type StorageFunctionMetadataV7 struct {
	Name          Text
	Modifier      StorageFunctionModifier
	Type          StorageFunctionTypeV7
	Fallback      Bytes
	Documentation []Text
}

// StorageFunctionTypeV7 is the V7 storage entry shape: Plain or Map.
// DoubleMap does not exist until V9.
type StorageFunctionTypeV7 struct {
	IsType bool
	AsType Text // 0
	IsMap  bool
	AsMap  MapTypeV7 // 1
}

// Decode implements scale.Decodeable.
func (s *StorageFunctionTypeV7) Decode(decoder scale.Decoder) error {
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
		return fmt.Errorf("received unexpected v7 storage function type %v", t)
	}
}

// Encode implements scale.Encodeable.
func (s StorageFunctionTypeV7) Encode(encoder scale.Encoder) error {
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
		return fmt.Errorf("v7 storage function type has neither Type nor Map set")
	}
}

// MapTypeV7 describes a single-key storage map under the V7 dialect.
type MapTypeV7 struct {
	Hasher StorageHasherV7
	Key    Text
	Value  Text
	// Linked marks a linked map (doubly-linked-list enumeration support).
	// Not surfaced on the canonical model, but it is on the wire and must
	// be decoded or every field after it desyncs.
	Linked bool
}

// StorageHasherV7 is the closed set of hashers available pre-V10: no
// concatenating variants.
type StorageHasherV7 struct {
	IsBlake2_128 bool // 0
	IsBlake2_256 bool // 1
	IsTwox128    bool // 2
	IsTwox256    bool // 3
}

// Decode implements scale.Decodeable.
func (s *StorageHasherV7) Decode(decoder scale.Decoder) error {
	var t uint8
	if err := decoder.Decode(&t); err != nil {
		return err
	}

	switch t {
	case 0:
		s.IsBlake2_128 = true
	case 1:
		s.IsBlake2_256 = true
	case 2:
		s.IsTwox128 = true
	case 3:
		s.IsTwox256 = true
	default:
		return fmt.Errorf("received unexpected v7 storage hasher %v", t)
	}

	return nil
}

// Encode implements scale.Encodeable.
func (s StorageHasherV7) Encode(encoder scale.Encoder) error {
	var t uint8

	switch {
	case s.IsBlake2_128:
		t = 0
	case s.IsBlake2_256:
		t = 1
	case s.IsTwox128:
		t = 2
	case s.IsTwox256:
		t = 3
	default:
		return fmt.Errorf("v7 storage hasher has no variant set")
	}

	return encoder.PushByte(t)
}
