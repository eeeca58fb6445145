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
package adder

import "fmt"

// Bit represents a single binary signal level (0 or 1).
type Bit uint8

// Xor computes the exclusive-or of two bits.
func (b Bit) Xor(o Bit) Bit { return b ^ o }

// And computes the conjunction of two bits.
func (b Bit) And(o Bit) Bit { return b & o }

// Or computes the disjunction of two bits.
func (b Bit) Or(o Bit) Bit { return b | o }

// GateKind identifies the logical function of a gate.  This is a closed set;
// the semantics of each kind are resolved by the simulator when it evaluates
// the gate, never by dispatch on the gate itself.
type GateKind uint8

const (
	// XOR is the exclusive-or gate.
	XOR GateKind = iota
	// AND is the conjunction gate.
	AND
	// OR is the disjunction gate.
	OR
	// OUTPUT is a synthetic kind used only for the terminal carry event of a
	// timeline; it never occurs within an adder step.
	OUTPUT
)

func (k GateKind) String() string {
	switch k {
	case XOR:
		return "XOR"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case OUTPUT:
		return "OUTPUT"
	}
	//
	return fmt.Sprintf("GateKind(%d)", k)
}

// Signal is a named input wire of a gate, recording exactly the level the gate
// consumed.
type Signal struct {
	// Wire label (e.g. "A", "CarryIn").
	Label string
	// Level consumed by the gate.
	Value Bit
}

// GateState is an immutable record of one gate's evaluation at one bit
// position: which gate, what it read on each input, and what it drove on its
// output.  Five such records are produced per bit position, fully determined
// by the two operand bits and the incoming carry.
type GateState struct {
	// Identifier, unique within a bit slice (encodes bit index and role).
	Name string
	// Logical function of the gate.
	Kind GateKind
	// Inputs consumed, in wire order.
	Inputs []Signal
	// Level driven on the output wire.
	Output Bit
}

// Input returns the level consumed on the named input wire, or false if the
// gate has no such wire.
func (g *GateState) Input(label string) (Bit, bool) {
	for _, in := range g.Inputs {
		if in.Label == label {
			return in.Value, true
		}
	}
	//
	return 0, false
}

func (g *GateState) String() string {
	return fmt.Sprintf("%s(%s)=%d", g.Name, g.Kind, g.Output)
}
