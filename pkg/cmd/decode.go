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
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tetcoin/desub-go/pkg/metadata"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [flags] metadata_file",
	Short: "Decode a RuntimeMetadataPrefixed blob into its canonical module/call/storage listing.",
	Long: `Decode a RuntimeMetadataPrefixed blob (versions 7 through 11) and print
the modules it declares, one per line, along with their calls and storage
entries (events are not listed). Pass "-" to read the blob from stdin. The blob may
optionally be given as a hex string via --hex instead of a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		configureLogging(cmd)

		data, err := readMetadataBlob(cmd, args[0])
		if err != nil {
			fail(err)
		}

		meta, err := metadata.Decode(data)
		if err != nil {
			fail(err)
		}

		printMetadataSummary(meta)
	},
}

func readMetadataBlob(cmd *cobra.Command, arg string) ([]byte, error) {
	if hexStr := GetString(cmd, "hex"); hexStr != "" {
		return hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	}

	return readInputFile(arg)
}

func printMetadataSummary(meta *metadata.Metadata) {
	fmt.Printf("metadata version: %d\n", meta.Version)

	names := make([]string, 0, len(meta.Modules))
	for name := range meta.Modules {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		mod := meta.Modules[name]
		fmt.Printf("module %s (index %d)\n", mod.Name, mod.Index)

		for _, call := range mod.CallIndex {
			fmt.Printf("  call %s\n", call)
		}

		storageNames := make([]string, 0, len(mod.Storage))
		for s := range mod.Storage {
			storageNames = append(storageNames, s)
		}

		sort.Strings(storageNames)

		for _, s := range storageNames {
			fmt.Printf("  storage %s\n", s)
		}
	}
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().String("hex", "", "decode a hex-encoded blob instead of reading a file")
}
