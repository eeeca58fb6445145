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
	"strings"

	"github.com/consensys/go-ripple/pkg/adder"
	"github.com/consensys/go-ripple/pkg/numeric"
	"github.com/consensys/go-ripple/pkg/timeline"
	"github.com/consensys/go-ripple/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// simulateCmd runs one addition through the gate-level simulator and prints
// its event timeline.
var simulateCmd = &cobra.Command{
	Use:   "simulate [flags] type lhs rhs",
	Short: "Simulate a ripple-carry addition and print its gate timeline.",
	Long: `Simulate a ripple-carry addition and print its gate timeline.
	The type determines bit width, signedness and overflow rules; use
	"go-ripple types" to list the available types.  Operands are decimal.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		ty, err := numeric.LookupType(args[0])
		if err != nil {
			log.Errorln(err)
			os.Exit(2)
		}
		//
		lhs, rhs := parseOperand(args[1]), parseOperand(args[2])
		//
		result, err := adder.Simulate(lhs, rhs, ty)
		if err != nil {
			log.Errorln(err)
			os.Exit(2)
		}
		//
		log.Debugf("simulated %s + %s over %d bits", lhs, rhs, result.Width())
		//
		events := timeline.Build(result)
		//
		if GetFlag(cmd, "json") {
			writeJson(result, events)
			return
		}
		//
		printSummary(result)
		//
		if !GetFlag(cmd, "quiet") {
			printTimeline(events)
		}
	},
}

func printSummary(result *adder.AdditionResult) {
	fmt.Printf("%s: %s + %s = %s\n", result.Type.Name(), result.Lhs, result.Rhs, result.Result)
	fmt.Printf("bits: %s\n", adder.BitString(result.ResultBits))
	fmt.Printf("overflow: %s\n", overflowString(result))
}

func printTimeline(events timeline.Timeline) {
	tbl := termio.NewTablePrinter(6)
	tbl.AnsiEscapes(term.IsTerminal(int(os.Stdout.Fd())))
	tbl.AppendRow("tick", "bit", "gate", "kind", "inputs", "out")
	//
	for _, ev := range events.Events() {
		var inputs []string
		for _, in := range ev.Gate.Inputs {
			inputs = append(inputs, fmt.Sprintf("%s=%d", in.Label, in.Value))
		}
		//
		tbl.AppendRow(
			fmt.Sprintf("%d", ev.Tick),
			fmt.Sprintf("%d", ev.BitIndex),
			ev.Gate.Name,
			ev.Gate.Kind.String(),
			strings.Join(inputs, " "),
			fmt.Sprintf("%d", ev.Gate.Output))
		// Highlight active outputs.
		if ev.Gate.Output == 1 {
			tbl.SetEscape(5, tbl.Height()-1, termio.YellowEscape)
		}
	}
	//
	tbl.SetMaxWidth(4, 40)
	tbl.Print(os.Stdout)
}

func overflowString(result *adder.AdditionResult) string {
	var kinds []string
	//
	if result.RangeOverflow {
		kinds = append(kinds, "range")
	}
	//
	if result.CarryOverflow {
		kinds = append(kinds, "carry")
	}
	//
	if result.SignedOverflow {
		kinds = append(kinds, "signed")
	}
	//
	if len(kinds) == 0 {
		return "none"
	}
	//
	return strings.Join(kinds, "+")
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().Bool("json", false, "emit the result and timeline as JSON")
	simulateCmd.Flags().BoolP("quiet", "q", false, "suppress the timeline table")
}
