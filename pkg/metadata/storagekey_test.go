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
package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetcoin/desub-go/pkg/codec"
)

func TestPlainStorageKeyRejectsNonPlainEntry(t *testing.T) {
	s := StorageMetadata{Kind: StorageMap}
	_, err := s.PlainStorageKey(0)
	require.Error(t, err)
}

func TestMapStorageKeyUsesDeclaredHasherAndAppendsKeyForConcatVariants(t *testing.T) {
	s := StorageMetadata{
		Prefix: "Balances FreeBalance",
		Kind:   StorageMap,
		Map:    StorageMapMetadata{Hasher: "Blake2_128Concat", Key: "AccountId", Value: "Balance"},
	}

	key, err := s.MapStorageKey(uint32(42))
	require.NoError(t, err)
	assert.Greater(t, len(key), 16, "concat variant must append the encoded key after the 16-byte digest")

	encodedKey, err := codec.Encode(uint32(42))
	require.NoError(t, err)
	assert.Equal(t, encodedKey, key[16:], "the suffix must be the bare encoded key, not prefix||key")
}

func TestMapStorageKeyRejectsUnknownHasher(t *testing.T) {
	s := StorageMetadata{
		Kind: StorageMap,
		Map:  StorageMapMetadata{Hasher: "NotAHasher"},
	}

	_, err := s.MapStorageKey(uint32(1))
	require.Error(t, err)
}

func TestDoubleMapStorageKeyConcatenatesBothSegments(t *testing.T) {
	s := StorageMetadata{
		Prefix: "Staking Bonded",
		Kind:   StorageDoubleMap,
		DoubleMap: StorageDoubleMapMetadata{
			Hasher:     "Blake2_128",
			Key1:       "AccountId",
			Key2:       "AccountId",
			Value:      "AccountId",
			Key2Hasher: "Blake2_128",
		},
	}

	key, err := s.DoubleMapStorageKey(uint32(1), uint32(2))
	require.NoError(t, err)
	assert.Len(t, key, 32)
}
