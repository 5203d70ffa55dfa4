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

// Package hashing maps a named storage hashing scheme to its byte
// transform. The cryptographic primitives themselves (Blake2, Twox) are
// treated as pure byte-in/byte-out functions supplied by the ecosystem;
// this package owns only the mapping from hasher name to transform and
// the "Concat" append semantics.
package hashing

import (
	"fmt"
	"hash"

	"github.com/centrifuge/go-substrate-rpc-client/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Hasher identifies a storage-key hashing scheme. Hasher values up to
// Twox256 are available from V7 onward; Blake2_128Concat and
// Twox64Concat were introduced in V10; Identity was introduced in V11
// (see metadata/dialect).
type Hasher uint8

// The closed set of storage hashers.
const (
	Blake2_128 Hasher = iota
	Blake2_256
	Blake2_128Concat
	Twox128
	Twox256
	Twox64Concat
	Identity
)

func (h Hasher) String() string {
	switch h {
	case Blake2_128:
		return "Blake2_128"
	case Blake2_256:
		return "Blake2_256"
	case Blake2_128Concat:
		return "Blake2_128Concat"
	case Twox128:
		return "Twox128"
	case Twox256:
		return "Twox256"
	case Twox64Concat:
		return "Twox64Concat"
	case Identity:
		return "Identity"
	default:
		return fmt.Sprintf("Hasher(%d)", uint8(h))
	}
}

// Hash applies this hasher to data, returning the resulting storage-key
// bytes. The *Concat variants append data itself after the digest, so
// this is only correct when data already IS the key material (e.g. a
// bare key, or a prefix with no key component). Callers hashing
// prefix||scale_encode(key) together must use HashKeyed instead, so only
// the key — not the prefix — gets appended.
func (h Hasher) Hash(data []byte) ([]byte, error) {
	return h.HashKeyed(data, data)
}

// HashKeyed applies this hasher to data (typically prefix||scale_encode(key)),
// returning the resulting storage-key bytes. For the *Concat variants,
// key (not data) is appended after the digest — the semantics the
// hasher's name implies, and the behavior the Substrate network itself
// relies on for range iteration over a map's keys. The reference desub
// sources instead returned the bare digest for these two variants
// (effectively treating them the same as their non-concatenating
// counterparts); that is a bug in the reference, not a contract to
// preserve, so it is not reproduced here.
func (h Hasher) HashKeyed(data, key []byte) ([]byte, error) {
	switch h {
	case Blake2_128:
		return blake2Sum(data, 16)
	case Blake2_256:
		return blake2Sum(data, 32)
	case Blake2_128Concat:
		digest, err := blake2Sum(data, 16)
		if err != nil {
			return nil, err
		}
		return append(digest, key...), nil
	case Twox128:
		return twoxSum(xxhash.New128(nil), data), nil
	case Twox256:
		return twoxSum(xxhash.New256(nil), data), nil
	case Twox64Concat:
		digest := twoxSum(xxhash.New64(nil), data)
		return append(digest, key...), nil
	case Identity:
		return data, nil
	default:
		return nil, fmt.Errorf("unknown storage hasher %d", uint8(h))
	}
}

func blake2Sum(data []byte, size int) ([]byte, error) {
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, err
	}

	if _, err := h.Write(data); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// twoxSum writes data into an xxhash-family hash.Hash obtained from the
// ecosystem xxhash package and returns its digest.
func twoxSum(h hash.Hash, data []byte) []byte {
	_, _ = h.Write(data)
	return h.Sum(nil)
}
