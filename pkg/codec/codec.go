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

// Package codec is a thin adapter over the SCALE codec. Encoding/decoding
// of primitive integers, compact integers, sequences, options and enums is
// a black box here — supplied by the ecosystem scale package — this
// package only adds the byte-slice/reader conveniences the rest of the
// decoder needs and the "read the magic prefix" framing helper shared by
// every metadata dialect.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/centrifuge/go-substrate-rpc-client/scale"
)

// MetaReserved is the fixed magic sentinel ("meta") that prefixes every
// RuntimeMetadataPrefixed blob.
const MetaReserved uint32 = 0x6174656d // "meta" little-endian

// Encode SCALE-encodes v.
func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer

	enc := scale.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decode SCALE-decodes from r into dest.
func Decode(r io.Reader, dest interface{}) error {
	return scale.NewDecoder(r).Decode(dest)
}

// DecodeBytes SCALE-decodes b into dest.
func DecodeBytes(b []byte, dest interface{}) error {
	return scale.NewDecoder(bytes.NewReader(b)).Decode(dest)
}

// SplitPrefix reads the four-byte little-endian magic prefix and the
// one-byte version discriminant from the front of a RuntimeMetadataPrefixed
// blob, returning the version byte and the remaining (dialect-specific)
// bytes. It does not itself validate the magic value — callers compare it
// against MetaReserved, since "bad magic" and "bad version" are
// distinguishable error conditions at the decoder boundary.
func SplitPrefix(data []byte) (magic uint32, version byte, rest []byte, err error) {
	if len(data) < 5 {
		return 0, 0, nil, fmt.Errorf("metadata blob too short: %d bytes", len(data))
	}

	magic = binary.LittleEndian.Uint32(data[0:4])
	version = data[4]
	rest = data[5:]

	return magic, version, rest, nil
}
