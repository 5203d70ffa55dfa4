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
	"github.com/tetcoin/desub-go/pkg/codec"
	"github.com/tetcoin/desub-go/pkg/hashing"
)

// PlainStorageKey derives the key for a Plain storage entry: just the
// hashed prefix, with no key material to mix in.
func (s *StorageMetadata) PlainStorageKey(hasher hashing.Hasher) ([]byte, error) {
	if s.Kind != StoragePlain {
		return nil, &Error{Kind: StorageTypeError, Detail: "not a Plain storage entry"}
	}

	return hasher.Hash([]byte(s.Prefix))
}

// MapStorageKey derives the key for a Map storage entry (4.4): concatenate
// prefix bytes with the SCALE encoding of the key value, then apply the
// map's declared hasher.
func (s *StorageMetadata) MapStorageKey(key interface{}) ([]byte, error) {
	if s.Kind != StorageMap {
		return nil, &Error{Kind: StorageTypeError, Detail: "not a Map storage entry"}
	}

	h, err := hasherByName(s.Map.Hasher)
	if err != nil {
		return nil, err
	}

	return hashStorageKey(s.Prefix, key, h)
}

// DoubleMapStorageKey derives the key for a DoubleMap storage entry: the
// first segment is the first declared hasher applied to the prefix followed
// by the SCALE-encoded key1 (as in MapStorageKey), the second is the second
// declared hasher applied to the SCALE-encoded key2 alone, and the two are
// concatenated in that order (4.4). The prefix is not hashed separately.
func (s *StorageMetadata) DoubleMapStorageKey(key1, key2 interface{}) ([]byte, error) {
	if s.Kind != StorageDoubleMap {
		return nil, &Error{Kind: StorageTypeError, Detail: "not a DoubleMap storage entry"}
	}

	h1, err := hasherByName(s.DoubleMap.Hasher)
	if err != nil {
		return nil, err
	}

	h2, err := hasherByName(s.DoubleMap.Key2Hasher)
	if err != nil {
		return nil, err
	}

	first, err := hashStorageKey(s.Prefix, key1, h1)
	if err != nil {
		return nil, err
	}

	encodedKey2, err := codec.Encode(key2)
	if err != nil {
		return nil, &Error{Kind: Codec, Detail: "encoding second double-map key", Cause: err}
	}

	second, err := h2.Hash(encodedKey2)
	if err != nil {
		return nil, &Error{Kind: Codec, Detail: "hashing second double-map key", Cause: err}
	}

	return append(first, second...), nil
}

func hashStorageKey(prefix string, key interface{}, h hashing.Hasher) ([]byte, error) {
	encodedKey, err := codec.Encode(key)
	if err != nil {
		return nil, &Error{Kind: Codec, Detail: "encoding storage key", Cause: err}
	}

	data := append([]byte(prefix), encodedKey...)

	// Hash over prefix||encodedKey, but the *Concat variants must append
	// only encodedKey afterward, not the prefix (4.4).
	digest, err := h.HashKeyed(data, encodedKey)
	if err != nil {
		return nil, &Error{Kind: Codec, Detail: "hashing storage key", Cause: err}
	}

	return digest, nil
}

func hasherByName(name string) (hashing.Hasher, error) {
	switch name {
	case "Blake2_128":
		return hashing.Blake2_128, nil
	case "Blake2_256":
		return hashing.Blake2_256, nil
	case "Blake2_128Concat":
		return hashing.Blake2_128Concat, nil
	case "Twox128":
		return hashing.Twox128, nil
	case "Twox256":
		return hashing.Twox256, nil
	case "Twox64Concat":
		return hashing.Twox64Concat, nil
	case "Identity":
		return hashing.Identity, nil
	default:
		return 0, &Error{Kind: StorageTypeError, Detail: "unknown hasher " + name}
	}
}
