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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tetcoin/desub-go/pkg/registry"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup [flags] module type",
	Short: "Resolve a (module, type) pair against the Polkadot type registry.",
	Long: `Resolve a (module, type) pair against the embedded default type
catalogue, applying module and chain+spec override precedence (--chain and
--spec, or the persistent flags of the same name). When the resolved
marker is itself a TypePointer, pass --resolve to follow one more hop into
the module's base catalogue.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		configureLogging(cmd)

		module, ty := args[0], args[1]
		chain := GetString(cmd, "chain")
		spec := GetInt(cmd, "spec")

		pt, err := registry.DefaultPolkadotTypes()
		if err != nil {
			fail(err)
		}

		marker, ok := pt.Get(module, ty, spec, chain)
		if !ok {
			fail(fmt.Errorf("no type registered for %s::%s", module, ty))
		}

		fmt.Println(marker.String())

		if GetFlag(cmd, "resolve") {
			resolved, ok := pt.Resolve(module, marker)
			if !ok {
				fail(fmt.Errorf("%s does not resolve to a further catalogue entry", marker.String()))
			}

			fmt.Println(resolved.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Bool("resolve", false, "follow one TypePointer hop past the initial lookup")
}
