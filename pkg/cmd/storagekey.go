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
package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tetcoin/desub-go/pkg/hashing"
	"github.com/tetcoin/desub-go/pkg/metadata"
)

// storageKeyCmd represents the storage-key command
var storageKeyCmd = &cobra.Command{
	Use:   "storage-key [flags] metadata_file module storage",
	Short: "Derive a storage key for a decoded module's storage entry.",
	Long: `Decode a RuntimeMetadataPrefixed blob, look up module.storage within
it, and derive the storage key for that entry (4.4): the Twox128 hash of
the entry's prefix for a Plain entry; for a Map entry, the entry's declared
hasher applied to the prefix followed by the SCALE-encoded --key; for a
DoubleMap entry, that same first segment followed by the second declared
hasher applied to the SCALE-encoded --key2 alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		configureLogging(cmd)

		data, err := readInputFile(args[0])
		if err != nil {
			fail(err)
		}

		meta, err := metadata.Decode(data)
		if err != nil {
			fail(err)
		}

		mod, err := meta.Module(args[1])
		if err != nil {
			fail(err)
		}

		entry, err := mod.StorageEntry(args[2])
		if err != nil {
			fail(err)
		}

		key, err := deriveStorageKey(cmd, &entry)
		if err != nil {
			fail(err)
		}

		fmt.Println("0x" + hex.EncodeToString(key))
	},
}

func deriveStorageKey(cmd *cobra.Command, entry *metadata.StorageMetadata) ([]byte, error) {
	switch entry.Kind {
	case metadata.StoragePlain:
		return entry.PlainStorageKey(hashing.Twox128)
	case metadata.StorageMap:
		return entry.MapStorageKey(GetString(cmd, "key"))
	case metadata.StorageDoubleMap:
		return entry.DoubleMapStorageKey(GetString(cmd, "key"), GetString(cmd, "key2"))
	default:
		return nil, fmt.Errorf("unrecognised storage kind %d", entry.Kind)
	}
}

func init() {
	rootCmd.AddCommand(storageKeyCmd)
	storageKeyCmd.Flags().String("key", "", "first (or only) map key, SCALE-encoded as a string")
	storageKeyCmd.Flags().String("key2", "", "second map key for a DoubleMap entry, SCALE-encoded as a string")
}
