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
package termio

import (
	"fmt"
	"io"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs an empty table with the given number of columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil, nil, true}
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// them as, otherwise, a lot of visible escape characters get printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// AppendRow adds a row to the bottom of this table, updating column widths as
// needed.
func (p *TablePrinter) AppendRow(vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
}

// SetEscape sets the colour to use when printing the contents of a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape string) {
	p.escapes[row][col] = escape
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetMaxWidth puts an upper bound on the width of a given column.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) {
	for i := 0; i < len(p.rows); i++ {
		row := p.rows[i]
		escapes := p.escapes[i]
		//
		for j, col := range row {
			jth := col
			jthWidth := p.widths[j]
			jthEscape := escapes[j]
			// Print colour (if applicable)
			if p.enableEscapes && jthEscape != "" {
				fmt.Fprint(out, jthEscape)
			}
			// Print data, truncating anything overly wide
			if uint(len(col)) > jthWidth {
				jth = col[0 : jthWidth-2]
				fmt.Fprintf(out, " %*s..", jthWidth-2, jth)
			} else {
				fmt.Fprintf(out, " %*s", jthWidth, jth)
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && jthEscape != "" {
				fmt.Fprint(out, ResetEscape)
			}
		}
		//
		fmt.Fprintln(out)
	}
}

// ANSI escapes usable with TablePrinter.SetEscape.
const (
	// ResetEscape cancels any active colour.
	ResetEscape = "\033[0m"
	// BoldEscape renders a cell in bold.
	BoldEscape = "\033[1m"
	// YellowEscape renders a cell in yellow (active signals).
	YellowEscape = "\033[33m"
	// RedEscape renders a cell in red (overflow).
	RedEscape = "\033[31m"
)
