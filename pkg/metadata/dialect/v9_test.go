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
	"bytes"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStorageFunctionTypeV9MapGoldenBytesConsumeLinkedField hand-builds the
// wire bytes for a Map variant instead of round-tripping through this
// package's own Encode, so a struct missing a trailing wire field (and
// therefore failing to consume its byte) desyncs and fails here instead of
// passing silently, the way a self-encoded round trip would.
func TestStorageFunctionTypeV9MapGoldenBytesConsumeLinkedField(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteByte(1) // StorageFunctionTypeV9 tag: Map
	raw.WriteByte(0) // StorageHasherV7 tag: Blake2_128
	raw.WriteByte(byte(len("K") << 2))
	raw.WriteString("K")
	raw.WriteByte(byte(len("V") << 2))
	raw.WriteString("V")
	raw.WriteByte(1) // Linked = true

	var decoded StorageFunctionTypeV9
	require.NoError(t, scale.NewDecoder(&raw).Decode(&decoded))

	assert.True(t, decoded.IsMap)
	assert.True(t, decoded.AsMap.Hasher.IsBlake2_128)
	assert.Equal(t, "K", decoded.AsMap.Key)
	assert.Equal(t, "V", decoded.AsMap.Value)
	assert.True(t, decoded.AsMap.Linked)
	assert.Equal(t, 0, raw.Len())
}

func TestStorageFunctionTypeV9DoubleMapRoundTrip(t *testing.T) {
	ft := StorageFunctionTypeV9{
		IsDoubleMap: true,
		AsDoubleMap: DoubleMapTypeV9{
			Hasher:     StorageHasherV7{IsBlake2_128: true},
			Key1:       "AccountId",
			Key2:       "AccountId",
			Value:      "Balance",
			Key2Hasher: StorageHasherV7{IsBlake2_128: true},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, scale.NewEncoder(&buf).Encode(ft))

	var decoded StorageFunctionTypeV9
	require.NoError(t, scale.NewDecoder(&buf).Decode(&decoded))

	assert.True(t, decoded.IsDoubleMap)
	assert.Equal(t, "AccountId", decoded.AsDoubleMap.Key1)
	assert.Equal(t, "Balance", decoded.AsDoubleMap.Value)
}

func TestModuleMetadataV9CarriesExplicitIndexAndErrors(t *testing.T) {
	mod := ModuleMetadataV9{
		Index: 3,
		Name:  "Balances",
		Errors: []ErrorMetadata{
			{Name: "InsufficientBalance", Documentation: []Text{"Balance too low to send value"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, scale.NewEncoder(&buf).Encode(mod))

	var decoded ModuleMetadataV9
	require.NoError(t, scale.NewDecoder(&buf).Decode(&decoded))

	assert.Equal(t, uint8(3), decoded.Index)
	require.Len(t, decoded.Errors, 1)
	assert.Equal(t, "InsufficientBalance", decoded.Errors[0].Name)
}
