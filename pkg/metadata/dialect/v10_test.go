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

func TestStorageHasherV10HasSixVariants(t *testing.T) {
	tests := []struct {
		tag  uint8
		want func(StorageHasherV10) bool
	}{
		{0, func(h StorageHasherV10) bool { return h.IsBlake2_128 }},
		{1, func(h StorageHasherV10) bool { return h.IsBlake2_256 }},
		{2, func(h StorageHasherV10) bool { return h.IsBlake2_128Concat }},
		{3, func(h StorageHasherV10) bool { return h.IsTwox128 }},
		{4, func(h StorageHasherV10) bool { return h.IsTwox256 }},
		{5, func(h StorageHasherV10) bool { return h.IsTwox64Concat }},
	}

	for _, tt := range tests {
		var h StorageHasherV10
		require.NoError(t, h.Decode(scale.NewDecoder(bytes.NewReader([]byte{tt.tag}))))
		assert.True(t, tt.want(h))
	}
}

func TestStorageHasherV10RejectsV11OnlyIdentityTag(t *testing.T) {
	var h StorageHasherV10
	err := h.Decode(scale.NewDecoder(bytes.NewReader([]byte{6})))
	assert.Error(t, err)
}

// TestStorageFunctionTypeV10MapGoldenBytesConsumeLinkedField hand-builds the
// wire bytes for a Map variant instead of round-tripping through this
// package's own Encode, so a struct missing a trailing wire field (and
// therefore failing to consume its byte) desyncs and fails here instead of
// passing silently, the way a self-encoded round trip would.
func TestStorageFunctionTypeV10MapGoldenBytesConsumeLinkedField(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteByte(1) // StorageFunctionTypeV10 tag: Map
	raw.WriteByte(2) // StorageHasherV10 tag: Blake2_128Concat
	raw.WriteByte(byte(len("K") << 2))
	raw.WriteString("K")
	raw.WriteByte(byte(len("V") << 2))
	raw.WriteString("V")
	raw.WriteByte(1) // Linked = true

	var decoded StorageFunctionTypeV10
	require.NoError(t, scale.NewDecoder(&raw).Decode(&decoded))

	assert.True(t, decoded.IsMap)
	assert.True(t, decoded.AsMap.Hasher.IsBlake2_128Concat)
	assert.Equal(t, "K", decoded.AsMap.Key)
	assert.Equal(t, "V", decoded.AsMap.Value)
	assert.True(t, decoded.AsMap.Linked)
	assert.Equal(t, 0, raw.Len())
}
