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

// Package cmd implements the desub command-line tool: a thin cobra shell
// over the metadata, registry and decoded packages for decoding runtime
// metadata blobs, querying the type registry and deriving storage keys
// from a terminal or a script.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "desub",
	Short: "A decoder for Substrate runtime metadata.",
	Long: `desub decodes versioned Substrate runtime metadata blobs into a
canonical model, queries the Polkadot type registry, and derives storage
keys from module and storage names.`,
	Run: func(cmd *cobra.Command, args []string) {
		if Version == "" {
			fmt.Println("desub (development build)")
			return
		}

		fmt.Printf("desub %s\n", Version)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose (debug-level) logging")
	rootCmd.PersistentFlags().String("chain", "kusama", "chain name used to resolve type-registry overrides")
	rootCmd.PersistentFlags().Int("spec", 0, "runtime spec version used to resolve type-registry overrides")

	cobra.OnInitialize(func() {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	})
}
