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
package registry

import (
	"bytes"
	_ "embed"
	"fmt"
)

// defaultDefinitions and defaultOverrides are a reconstructed Polkadot
// type catalogue and chain-override set. No production catalogue JSON
// survived retrieval alongside this package's source; these fixtures
// exist to make PolkadotTypes usable out of the box and are sized to
// exercise the registry's override precedence, open-ended spec ranges,
// and single-hop TypePointer resolution (4.5-4.7) rather than to be a
// complete Polkadot runtime catalogue.
//
//go:embed testdata/definitions.json
var defaultDefinitions []byte

//go:embed testdata/overrides.json
var defaultOverrides []byte

// DefaultPolkadotTypes parses the embedded default catalogue and
// overrides into a ready-to-use PolkadotTypes, mirroring
// PolkadotTypes::new() in the reference sources.
func DefaultPolkadotTypes() (PolkadotTypes, error) {
	mods, err := ParseCatalogue(bytes.NewReader(defaultDefinitions))
	if err != nil {
		return PolkadotTypes{}, fmt.Errorf("parsing default definitions: %w", err)
	}

	overrides, err := ParseOverrides(bytes.NewReader(defaultOverrides))
	if err != nil {
		return PolkadotTypes{}, fmt.Errorf("parsing default overrides: %w", err)
	}

	return PolkadotTypes{Mods: mods, Overrides: overrides}, nil
}
