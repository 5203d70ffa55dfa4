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

// TestStorageFunctionTypeV8MapGoldenBytesConsumeLinkedField hand-builds the
// wire bytes for a Map variant instead of round-tripping through this
// package's own Encode, so a struct missing a trailing wire field (and
// therefore failing to consume its byte) desyncs and fails here instead of
// passing silently, the way a self-encoded round trip would.
func TestStorageFunctionTypeV8MapGoldenBytesConsumeLinkedField(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteByte(1) // StorageFunctionTypeV8 tag: Map
	raw.WriteByte(0) // StorageHasherV7 tag: Blake2_128
	raw.WriteByte(byte(len("K") << 2))
	raw.WriteString("K")
	raw.WriteByte(byte(len("V") << 2))
	raw.WriteString("V")
	raw.WriteByte(1) // Linked = true

	var decoded StorageFunctionTypeV8
	require.NoError(t, scale.NewDecoder(&raw).Decode(&decoded))

	assert.True(t, decoded.IsMap)
	assert.True(t, decoded.AsMap.Hasher.IsBlake2_128)
	assert.Equal(t, "K", decoded.AsMap.Key)
	assert.Equal(t, "V", decoded.AsMap.Value)
	assert.True(t, decoded.AsMap.Linked)
	assert.Equal(t, 0, raw.Len())
}

func TestModuleMetadataV8RoundTrip(t *testing.T) {
	mod := ModuleMetadataV8{
		Index: 2,
		Name:  "Balances",
		Errors: []ErrorMetadata{
			{Name: "InsufficientBalance"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, scale.NewEncoder(&buf).Encode(mod))

	var decoded ModuleMetadataV8
	require.NoError(t, scale.NewDecoder(&buf).Decode(&decoded))

	assert.Equal(t, mod.Index, decoded.Index)
	assert.Equal(t, mod.Name, decoded.Name)
	require.Len(t, decoded.Errors, 1)
	assert.Equal(t, "InsufficientBalance", decoded.Errors[0].Name)
}
