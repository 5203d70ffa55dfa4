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

// RuntimeMetadataV11 is the raw tree produced by decoding a V11
// RuntimeMetadata payload. V11 adds a seventh hasher variant (Identity,
// used for keys that are already safe to expose unhashed) and appends an
// ExtrinsicV11 trailer after the module list describing the runtime's
// signed-extension set.
type RuntimeMetadataV11 struct {
	Modules   []ModuleMetadataV11
	Extrinsic ExtrinsicV11
}

// DecodeV11 decodes a V11 RuntimeMetadata payload.
func DecodeV11(decoder scale.Decoder) (*RuntimeMetadataV11, error) {
	var m RuntimeMetadataV11
	if err := decoder.Decode(&m.Modules); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&m.Extrinsic); err != nil {
		return nil, err
	}

	return &m, nil
}

// ExtrinsicV11 carries the signed-extension names the runtime expects an
// extrinsic's signature payload to include, in the order they must be
// applied. The canonical model does not currently interpret these (see
// DESIGN.md); they are decoded so the trailer's bytes are consumed.
type ExtrinsicV11 struct {
	Version          uint8
	SignedExtensions []Text
}

// Decode implements scale.Decodeable.
func (e *ExtrinsicV11) Decode(decoder scale.Decoder) error {
	if err := decoder.Decode(&e.Version); err != nil {
		return err
	}

	return decoder.Decode(&e.SignedExtensions)
}

// Encode implements scale.Encodeable.
func (e ExtrinsicV11) Encode(encoder scale.Encoder) error {
	if err := encoder.Encode(e.Version); err != nil {
		return err
	}

	return encoder.Encode(e.SignedExtensions)
}

// ModuleMetadataV11 describes one module under the V11 dialect.
type ModuleMetadataV11 struct {
	Index      uint8
	Name       Text
	HasStorage bool
	Storage    StorageMetadataV11
	HasCalls   bool
	Calls      []FunctionMetadata
	HasEvents  bool
	Events     []EventMetadata
	Constants  []ModuleConstantMetadata
	Errors     []ErrorMetadata
}

// Decode implements scale.Decodeable.
func (m *ModuleMetadataV11) Decode(decoder scale.Decoder) error {
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
func (m ModuleMetadataV11) Encode(encoder scale.Encoder) error {
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

// StorageMetadataV11 is the storage section of one module.
type StorageMetadataV11 struct {
	Prefix Text
	Items  []StorageFunctionMetadataV11
}

// StorageFunctionMetadataV11 describes one storage entry.
type StorageFunctionMetadataV11 struct {
	Name          Text
	Modifier      StorageFunctionModifier
	Type          StorageFunctionTypeV11
	Fallback      Bytes
	Documentation []Text
}

// StorageFunctionTypeV11 is the V11 storage entry shape: Plain, Map or
// DoubleMap.
type StorageFunctionTypeV11 struct {
	IsType      bool
	AsType      Text // 0
	IsMap       bool
	AsMap       MapTypeV11 // 1
	IsDoubleMap bool
	AsDoubleMap DoubleMapTypeV11 // 2
}

// Decode implements scale.Decodeable.
func (s *StorageFunctionTypeV11) Decode(decoder scale.Decoder) error {
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
		return fmt.Errorf("received unexpected v11 storage function type %v", t)
	}
}

// Encode implements scale.Encodeable.
func (s StorageFunctionTypeV11) Encode(encoder scale.Encoder) error {
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
		return fmt.Errorf("v11 storage function type has no variant set")
	}
}

// MapTypeV11 describes a single-key storage map under the V11 dialect.
type MapTypeV11 struct {
	Hasher StorageHasherV11
	Key    Text
	Value  Text
	// Linked marks a linked map (doubly-linked-list enumeration support).
	// Not surfaced on the canonical model, but it is on the wire and must
	// be decoded or every field after it desyncs.
	Linked bool
}

// DoubleMapTypeV11 describes a two-key storage map under the V11 dialect.
type DoubleMapTypeV11 struct {
	Hasher     StorageHasherV11
	Key1       Text
	Key2       Text
	Value      Text
	Key2Hasher StorageHasherV11
}

// StorageHasherV11 is the final, seven-variant hasher enum: V10's six
// variants plus Identity, which performs no hashing at all and returns
// the key bytes unchanged.
type StorageHasherV11 struct {
	IsBlake2_128       bool // 0
	IsBlake2_256       bool // 1
	IsBlake2_128Concat bool // 2
	IsTwox128          bool // 3
	IsTwox256          bool // 4
	IsTwox64Concat     bool // 5
	IsIdentity         bool // 6
}

// Decode implements scale.Decodeable.
func (s *StorageHasherV11) Decode(decoder scale.Decoder) error {
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
	case 6:
		s.IsIdentity = true
	default:
		return fmt.Errorf("received unexpected v11 storage hasher %v", t)
	}

	return nil
}

// Encode implements scale.Encodeable.
func (s StorageHasherV11) Encode(encoder scale.Encoder) error {
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
	case s.IsIdentity:
		t = 6
	default:
		return fmt.Errorf("v11 storage hasher has no variant set")
	}

	return encoder.PushByte(t)
}
