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

func TestModuleMetadataV7RoundTrip(t *testing.T) {
	mod := ModuleMetadataV7{
		Name:       "Timestamp",
		HasStorage: true,
		Storage: StorageMetadataV7{
			Prefix: "Timestamp",
			Items: []StorageFunctionMetadataV7{
				{
					Name:     "Now",
					Modifier: StorageFunctionModifier{IsDefault: true},
					Type:     StorageFunctionTypeV7{IsType: true, AsType: "Moment"},
					Fallback: []byte{0, 0, 0, 0, 0, 0, 0, 0},
				},
			},
		},
		HasCalls: true,
		Calls: []FunctionMetadata{
			{Name: "set", Args: []FunctionArgumentMetadata{{Name: "now", Type: "Compact<Moment>"}}},
		},
		HasEvents: false,
	}

	var buf bytes.Buffer
	require.NoError(t, scale.NewEncoder(&buf).Encode(mod))

	var decoded ModuleMetadataV7
	require.NoError(t, scale.NewDecoder(&buf).Decode(&decoded))

	assert.Equal(t, mod.Name, decoded.Name)
	assert.Equal(t, mod.HasStorage, decoded.HasStorage)
	assert.Equal(t, mod.Storage.Prefix, decoded.Storage.Prefix)
	assert.Equal(t, mod.Storage.Items[0].Type.AsType, decoded.Storage.Items[0].Type.AsType)
	assert.Equal(t, mod.Calls[0].Name, decoded.Calls[0].Name)
}

func TestStorageHasherV7RejectsOutOfRangeTag(t *testing.T) {
	var h StorageHasherV7
	err := h.Decode(scale.NewDecoder(bytes.NewReader([]byte{9})))
	assert.Error(t, err)
}

// TestStorageFunctionTypeV7MapGoldenBytesConsumeLinkedField hand-builds the
// wire bytes for a Map variant instead of round-tripping through this
// package's own Encode, so a struct missing a trailing wire field (and
// therefore failing to consume its byte) desyncs and fails here instead of
// passing silently, the way a self-encoded round trip would.
func TestStorageFunctionTypeV7MapGoldenBytesConsumeLinkedField(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteByte(1) // StorageFunctionTypeV7 tag: Map
	raw.WriteByte(1) // StorageHasherV7 tag: Blake2_256
	raw.WriteByte(byte(len("K") << 2))
	raw.WriteString("K")
	raw.WriteByte(byte(len("V") << 2))
	raw.WriteString("V")
	raw.WriteByte(1) // Linked = true

	var decoded StorageFunctionTypeV7
	require.NoError(t, scale.NewDecoder(&raw).Decode(&decoded))

	assert.True(t, decoded.IsMap)
	assert.True(t, decoded.AsMap.Hasher.IsBlake2_256)
	assert.Equal(t, "K", decoded.AsMap.Key)
	assert.Equal(t, "V", decoded.AsMap.Value)
	assert.True(t, decoded.AsMap.Linked)
	assert.Equal(t, 0, raw.Len())
}

func TestStorageFunctionTypeV7MapVariant(t *testing.T) {
	ft := StorageFunctionTypeV7{
		IsMap: true,
		AsMap: MapTypeV7{
			Hasher: StorageHasherV7{IsBlake2_256: true},
			Key:    "AccountId",
			Value:  "Balance",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, scale.NewEncoder(&buf).Encode(ft))

	var decoded StorageFunctionTypeV7
	require.NoError(t, scale.NewDecoder(&buf).Decode(&decoded))

	assert.True(t, decoded.IsMap)
	assert.True(t, decoded.AsMap.Hasher.IsBlake2_256)
	assert.Equal(t, "AccountId", decoded.AsMap.Key)
}
