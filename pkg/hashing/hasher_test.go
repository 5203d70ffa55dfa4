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
package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestWidths(t *testing.T) {
	data := []byte("system:Account")

	tests := []struct {
		name   string
		hasher Hasher
		width  int
	}{
		{"Blake2_128", Blake2_128, 16},
		{"Blake2_256", Blake2_256, 32},
		{"Twox128", Twox128, 16},
		{"Twox256", Twox256, 32},
		{"Identity", Identity, len(data)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.hasher.Hash(data)
			require.NoError(t, err)
			assert.Len(t, out, tt.width)
		})
	}
}

func TestConcatVariantsAppendOriginalKey(t *testing.T) {
	data := []byte("balances:BalanceLock")

	blake, err := Blake2_128Concat.Hash(data)
	require.NoError(t, err)
	assert.Len(t, blake, 16+len(data))
	assert.Equal(t, data, blake[16:])

	twox, err := Twox64Concat.Hash(data)
	require.NoError(t, err)
	assert.Len(t, twox, 8+len(data))
	assert.Equal(t, data, twox[8:])
}

func TestConcatDigestPrefixMatchesNonConcatDigest(t *testing.T) {
	data := []byte("identical-input")

	plain, err := Blake2_128.Hash(data)
	require.NoError(t, err)

	concat, err := Blake2_128Concat.Hash(data)
	require.NoError(t, err)

	assert.Equal(t, plain, concat[:16])
}

func TestIdentityReturnsInputUnchanged(t *testing.T) {
	data := []byte("staking:Bonded")

	out, err := Identity.Hash(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestUnknownHasherErrors(t *testing.T) {
	_, err := Hasher(99).Hash([]byte("x"))
	assert.Error(t, err)
}

func TestHashKeyedAppendsOnlyKeyNotFullData(t *testing.T) {
	prefix := []byte("balances:Account")
	key := []byte("AccountId(5GrwvaE...)")
	data := append(append([]byte{}, prefix...), key...)

	blake, err := Blake2_128Concat.HashKeyed(data, key)
	require.NoError(t, err)
	assert.Len(t, blake, 16+len(key))
	assert.Equal(t, key, blake[16:])

	digestOnly, err := Blake2_128.Hash(data)
	require.NoError(t, err)
	assert.Equal(t, digestOnly, blake[:16])

	twox, err := Twox64Concat.HashKeyed(data, key)
	require.NoError(t, err)
	assert.Len(t, twox, 8+len(key))
	assert.Equal(t, key, twox[8:])
}

func TestStringNames(t *testing.T) {
	assert.Equal(t, "Blake2_128", Blake2_128.String())
	assert.Equal(t, "Twox64Concat", Twox64Concat.String())
}
