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
	"bytes"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/centrifuge/go-substrate-rpc-client/scale"

	"github.com/tetcoin/desub-go/pkg/codec"
	"github.com/tetcoin/desub-go/pkg/metadata/dialect"
)

// Decode is the top-level entry point (4.1): it strips the magic prefix
// and version byte off a RuntimeMetadataPrefixed blob, dispatches to the
// matching dialect decoder, and normalizes the result into the canonical
// Metadata model. Versions 0x07 through 0x0B (7-11) are supported; any
// other version, or a magic mismatch, is a fatal decoding error.
func Decode(data []byte) (*Metadata, error) {
	magic, version, rest, err := codec.SplitPrefix(data)
	if err != nil {
		return nil, &Error{Kind: Codec, Detail: "reading prefix", Cause: err}
	}

	if magic != codec.MetaReserved {
		return nil, &Error{Kind: InvalidPrefix, Detail: fmt.Sprintf("got 0x%08x", magic)}
	}

	log.WithField("version", version).Debug("decoding runtime metadata")

	decoder := scale.NewDecoder(bytes.NewReader(rest))

	switch version {
	case 7:
		raw, err := dialect.DecodeV7(decoder)
		if err != nil {
			return nil, &Error{Kind: Codec, Detail: "decoding v7 dialect", Cause: err}
		}
		return normalizeV7(raw)
	case 8:
		raw, err := dialect.DecodeV8(decoder)
		if err != nil {
			return nil, &Error{Kind: Codec, Detail: "decoding v8 dialect", Cause: err}
		}
		return normalizeV8(raw)
	case 9:
		raw, err := dialect.DecodeV9(decoder)
		if err != nil {
			return nil, &Error{Kind: Codec, Detail: "decoding v9 dialect", Cause: err}
		}
		return normalizeV9(raw)
	case 10:
		raw, err := dialect.DecodeV10(decoder)
		if err != nil {
			return nil, &Error{Kind: Codec, Detail: "decoding v10 dialect", Cause: err}
		}
		return normalizeV10(raw)
	case 11:
		raw, err := dialect.DecodeV11(decoder)
		if err != nil {
			return nil, &Error{Kind: Codec, Detail: "decoding v11 dialect", Cause: err}
		}
		return normalizeV11(raw)
	default:
		return nil, &Error{Kind: InvalidVersion, Detail: fmt.Sprintf("0x%02x", version)}
	}
}
