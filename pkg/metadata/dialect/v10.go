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

// RuntimeMetadataV10 is the raw tree produced by decoding a V10
// RuntimeMetadata payload. V10 widens the hasher enum to six variants by
// adding Blake2_128Concat and Twox64Concat, which append the original key
// bytes after the digest so map iteration can recover the key.
type RuntimeMetadataV10 struct {
	Modules []ModuleMetadataV10
}

// DecodeV10 decodes a V10 RuntimeMetadata payload.
func DecodeV10(decoder scale.Decoder) (*RuntimeMetadataV10, error) {
	var m RuntimeMetadataV10
	if err := decoder.Decode(&m.Modules); err != nil {
		return nil, err
	}

	return &m, nil
}

// ModuleMetadataV10 describes one module under the V10 dialect.
type ModuleMetadataV10 struct {
	Index      uint8
	Name       Text
	HasStorage bool
	Storage    StorageMetadataV10
	HasCalls   bool
	Calls      []FunctionMetadata
	HasEvents  bool
	Events     []EventMetadata
	Constants  []ModuleConstantMetadata
	Errors     []ErrorMetadata
}

// Decode implements scale.Decodeable.
func (m *ModuleMetadataV10) Decode(decoder scale.Decoder) error {
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
func (m ModuleMetadataV10) Encode(encoder scale.Encoder) error {
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

// StorageMetadataV10 is the storage section of one module.
type StorageMetadataV10 struct {
	Prefix Text
	Items  []StorageFunctionMetadataV10
}

// StorageFunctionMetadataV10 describes one storage entry.
type StorageFunctionMetadataV10 struct {
	Name          Text
	Modifier      StorageFunctionModifier
	Type          StorageFunctionTypeV10
	Fallback      Bytes
	Documentation []Text
}

// StorageFunctionTypeV10 is the V10 storage entry shape: Plain, Map or
// DoubleMap.
type StorageFunctionTypeV10 struct {
	IsType      bool
	AsType      Text // 0
	IsMap       bool
	AsMap       MapTypeV10 // 1
	IsDoubleMap bool
	AsDoubleMap DoubleMapTypeV10 // 2
}

// Decode implements scale.Decodeable.
func (s *StorageFunctionTypeV10) Decode(decoder scale.Decoder) error {
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
		return fmt.Errorf("received unexpected v10 storage function type %v", t)
	}
}

// Encode implements scale.Encodeable.
func (s StorageFunctionTypeV10) Encode(encoder scale.Encoder) error {
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
		return fmt.Errorf("v10 storage function type has no variant set")
	}
}

// MapTypeV10 describes a single-key storage map under the V10 dialect.
type MapTypeV10 struct {
	Hasher StorageHasherV10
	Key    Text
	Value  Text
	// Linked marks a linked map (doubly-linked-list enumeration support).
	// Not surfaced on the canonical model, but it is on the wire and must
	// be decoded or every field after it desyncs.
	Linked bool
}

// DoubleMapTypeV10 describes a two-key storage map under the V10 dialect.
type DoubleMapTypeV10 struct {
	Hasher     StorageHasherV10
	Key1       Text
	Key2       Text
	Value      Text
	Key2Hasher StorageHasherV10
}

// StorageHasherV10 widens StorageHasherV7 with the two concatenating
// variants: Blake2_128Concat and Twox64Concat append the original key
// after the digest, which is what lets a client recover an iterated
// storage key's un-hashed suffix. See pkg/hashing for the digest
// computation and SPEC_FULL.md §9 for the deliberate correction of the
// historical non-concatenating bug in those two variants.
type StorageHasherV10 struct {
	IsBlake2_128       bool // 0
	IsBlake2_256       bool // 1
	IsBlake2_128Concat bool // 2
	IsTwox128          bool // 3
	IsTwox256          bool // 4
	IsTwox64Concat     bool // 5
}

// Decode implements scale.Decodeable.
func (s *StorageHasherV10) Decode(decoder scale.Decoder) error {
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
		s.IsBlake2_128Concat = true
	case 3:
		s.IsTwox128 = true
	case 4:
		s.IsTwox256 = true
	case 5:
		s.IsTwox64Concat = true
	default:
		return fmt.Errorf("received unexpected v10 storage hasher %v", t)
	}

	return nil
}

// Encode implements scale.Encodeable.
func (s StorageHasherV10) Encode(encoder scale.Encoder) error {
	var t uint8

	switch {
	case s.IsBlake2_128:
		t = 0
	case s.IsBlake2_256:
		t = 1
	case s.IsBlake2_128Concat:
		t = 2
	case s.IsTwox128:
		t = 3
	case s.IsTwox256:
		t = 4
	case s.IsTwox64Concat:
		t = 5
	default:
		return fmt.Errorf("v10 storage hasher has no variant set")
	}

	return encoder.PushByte(t)
}
