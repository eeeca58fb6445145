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

	"github.com/consensys/go-ripple/pkg/numeric"
	"github.com/consensys/go-ripple/pkg/util/termio"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// typesCmd lists every numeric type the simulator understands.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available numeric types.",
	Run: func(cmd *cobra.Command, args []string) {
		tbl := termio.NewTablePrinter(5)
		tbl.AnsiEscapes(term.IsTerminal(int(os.Stdout.Fd())))
		tbl.AppendRow("type", "width", "signed", "min", "max")
		//
		for _, ty := range numeric.DefaultRegistry().Types() {
			width := "unbounded"
			if !ty.Unbounded() {
				width = fmt.Sprintf("%d", ty.BitWidth())
			}
			//
			min, max := ty.Range()
			tbl.AppendRow(ty.Name(), width, fmt.Sprintf("%t", ty.Signed()), min.String(), max.String())
		}
		//
		tbl.Print(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
