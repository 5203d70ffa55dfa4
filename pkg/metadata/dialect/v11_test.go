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

func TestRuntimeMetadataV11ConsumesExtrinsicTrailer(t *testing.T) {
	meta := RuntimeMetadataV11{
		Modules: []ModuleMetadataV11{
			{Index: 0, Name: "System"},
		},
		Extrinsic: ExtrinsicV11{
			Version:          4,
			SignedExtensions: []Text{"CheckVersion", "CheckGenesis", "CheckEra"},
		},
	}

	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)
	require.NoError(t, enc.Encode(meta.Modules))
	require.NoError(t, enc.Encode(meta.Extrinsic))

	decoded, err := DecodeV11(scale.NewDecoder(&buf))
	require.NoError(t, err)

	assert.Equal(t, uint8(4), decoded.Extrinsic.Version)
	assert.Equal(t, []Text{"CheckVersion", "CheckGenesis", "CheckEra"}, decoded.Extrinsic.SignedExtensions)
	require.Len(t, decoded.Modules, 1)
	assert.Equal(t, "System", decoded.Modules[0].Name)
}

// TestStorageFunctionTypeV11MapGoldenBytesConsumeLinkedField hand-builds the
// wire bytes for a Map variant instead of round-tripping through this
// package's own Encode, so a struct missing a trailing wire field (and
// therefore failing to consume its byte) desyncs and fails here instead of
// passing silently, the way a self-encoded round trip would.
func TestStorageFunctionTypeV11MapGoldenBytesConsumeLinkedField(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteByte(1) // StorageFunctionTypeV11 tag: Map
	raw.WriteByte(6) // StorageHasherV11 tag: Identity
	raw.WriteByte(byte(len("K") << 2))
	raw.WriteString("K")
	raw.WriteByte(byte(len("V") << 2))
	raw.WriteString("V")
	raw.WriteByte(1) // Linked = true

	var decoded StorageFunctionTypeV11
	require.NoError(t, scale.NewDecoder(&raw).Decode(&decoded))

	assert.True(t, decoded.IsMap)
	assert.True(t, decoded.AsMap.Hasher.IsIdentity)
	assert.Equal(t, "K", decoded.AsMap.Key)
	assert.Equal(t, "V", decoded.AsMap.Value)
	assert.True(t, decoded.AsMap.Linked)
	assert.Equal(t, 0, raw.Len())
}

func TestStorageHasherV11IdentityVariant(t *testing.T) {
	var h StorageHasherV11
	require.NoError(t, h.Decode(scale.NewDecoder(bytes.NewReader([]byte{6}))))
	assert.True(t, h.IsIdentity)

	var buf bytes.Buffer
	require.NoError(t, scale.NewEncoder(&buf).Encode(h))
	assert.Equal(t, []byte{6}, buf.Bytes())
}
