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

// Package adder simulates a ripple-carry binary adder at the level of
// individual logic gates.  Rather than just computing a sum, Simulate records
// every gate evaluation along the carry chain so that the addition can be
// replayed step by step.
package adder

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-ripple/pkg/numeric"
)

// AdderStep records the complete evaluation of one full-adder cell: the bit
// position, the carry it received, the five gate evaluations within the cell,
// and the sum / carry it produced.  Steps are produced in strictly ascending
// bit order and never mutated afterwards.
type AdderStep struct {
	// Bit position, with zero as least significant.
	BitIndex uint
	// Carry received from the previous cell (zero for bit zero).
	CarryIn Bit
	// Gate evaluations in the fixed order AxorB, SUM, CARRY_GEN, CARRY_PROP,
	// CARRY_OUT.
	Gates []GateState
	// Sum bit produced, equal to A ^ B ^ CarryIn.
	SumBit Bit
	// Carry handed to the next cell, equal to (A & B) | ((A ^ B) & CarryIn).
	CarryOut Bit
}

// AdditionResult is the outcome of one simulated addition, including all
// metadata needed to replay it.  It is a pure value: read-only once returned
// and owned entirely by the caller.
type AdditionResult struct {
	// Numeric type governing width, normalisation and overflow rules.
	Type numeric.Type
	// Raw operands as supplied by the caller.
	Lhs, Rhs *big.Int
	// Final integer result after domain normalisation.
	Result *big.Int
	// Indicates whether any overflow condition fired.
	Overflow bool
	// Raw sum fell outside the declared range of the type.
	RangeOverflow bool
	// Final carry left the top bit of an unsigned type.
	CarryOverflow bool
	// Carry into and out of the sign bit disagreed (signed types).
	SignedOverflow bool
	// Full-adder evaluations in ascending bit order, one per bit of width.
	Steps []AdderStep
	// Result bit vector, little-endian.  Exactly the simulated width for fixed
	// types; one bit longer for unbounded types whose final carry is set.
	ResultBits *bitset.BitSet
	// Carry emitted by the most significant cell.
	FinalCarry Bit
}

// Width returns the number of bit positions simulated.
func (r *AdditionResult) Width() uint {
	return uint(len(r.Steps))
}

// Simulate runs lhs + rhs through a ripple-carry adder for the given type,
// recording every gate evaluation along the way.  For fixed-width types both
// operands must lie within the declared range; unbounded types accept any
// operands and simulate over a dynamically chosen width.  The function is
// pure: it shares no state across calls and may be invoked concurrently.
func Simulate(lhs *big.Int, rhs *big.Int, ty numeric.Type) (*AdditionResult, error) {
	if !ty.Unbounded() {
		if !ty.Contains(lhs) {
			return nil, &OperandRangeError{LeftOperand, new(big.Int).Set(lhs), ty}
		}
		//
		if !ty.Contains(rhs) {
			return nil, &OperandRangeError{RightOperand, new(big.Int).Set(rhs), ty}
		}
	}
	// Raw mathematical sum, independent of any bit width.
	rawSum := new(big.Int).Add(lhs, rhs)
	// Determine simulation width and operand encodings.  Fixed types normalise
	// before encoding; unbounded types encode the raw value directly since no
	// modulus applies.
	var width uint
	//
	var lhsNorm, rhsNorm *big.Int
	//
	if ty.Unbounded() {
		width = ty.BitWidthFor(lhs, rhs, rawSum)
		lhsNorm, rhsNorm = lhs, rhs
	} else {
		width = ty.BitWidth()
		lhsNorm, rhsNorm = ty.Normalize(lhs), ty.Normalize(rhs)
	}
	//
	var (
		lhsBits = EncodeBits(lhsNorm, width)
		rhsBits = EncodeBits(rhsNorm, width)
		sumBits = bitset.New(width)
		steps   = make([]AdderStep, width)
		carry   Bit
	)
	// Ripple across all bit positions, least significant first.
	for i := uint(0); i < width; i++ {
		steps[i] = rippleStep(i, bitAt(lhsBits, i), bitAt(rhsBits, i), carry)
		sumBits.SetTo(i, steps[i].SumBit == 1)
		carry = steps[i].CarryOut
	}
	//
	result := &AdditionResult{
		Type:       ty,
		Lhs:        new(big.Int).Set(lhs),
		Rhs:        new(big.Int).Set(rhs),
		Steps:      steps,
		ResultBits: sumBits,
		FinalCarry: carry,
	}
	//
	if ty.Unbounded() {
		// Exact result; overflow cannot occur.  A set final carry is appended
		// to the displayed vector as one extra most-significant bit, purely as
		// a visualisation aid.
		result.Result = rawSum
		//
		if carry == 1 {
			extended := bitset.New(width + 1)
			for i := uint(0); i < width; i++ {
				extended.SetTo(i, sumBits.Test(i))
			}

			extended.Set(width)
			result.ResultBits = extended
		}
	} else {
		// Authoritative result vector is the unsigned encoding of the raw sum
		// modulo 2^width.  This must agree with the rippled vector; any
		// divergence is an implementation bug surfaced by tests.
		result.Result = ty.Normalize(rawSum)
		result.ResultBits = EncodeBits(rawSum, width)
		result.RangeOverflow = !ty.Contains(rawSum)
		result.CarryOverflow = !ty.Signed() && carry == 1
		result.SignedOverflow = ty.Signed() && steps[width-1].CarryIn != steps[width-1].CarryOut
		result.Overflow = result.RangeOverflow || result.CarryOverflow || result.SignedOverflow
	}
	//
	return result, nil
}

// rippleStep evaluates one full-adder cell, decomposed into its five gates.
// Each gate records exactly the levels it consumed, for later inspection.
func rippleStep(index uint, a Bit, b Bit, carryIn Bit) AdderStep {
	var (
		xorAb       = a.Xor(b)
		sumBit      = xorAb.Xor(carryIn)
		andAb       = a.And(b)
		andXorCarry = xorAb.And(carryIn)
		carryOut    = andAb.Or(andXorCarry)
	)
	//
	gates := []GateState{
		{
			Name:   fmt.Sprintf("A%d_XOR_B%d", index, index),
			Kind:   XOR,
			Inputs: []Signal{{"A", a}, {"B", b}},
			Output: xorAb,
		},
		{
			Name:   fmt.Sprintf("SUM%d", index),
			Kind:   XOR,
			Inputs: []Signal{{"XOR", xorAb}, {"CarryIn", carryIn}},
			Output: sumBit,
		},
		{
			Name:   fmt.Sprintf("CARRY_GEN%d", index),
			Kind:   AND,
			Inputs: []Signal{{"A", a}, {"B", b}},
			Output: andAb,
		},
		{
			Name:   fmt.Sprintf("CARRY_PROP%d", index),
			Kind:   AND,
			Inputs: []Signal{{"A_xor_B", xorAb}, {"CarryIn", carryIn}},
			Output: andXorCarry,
		},
		{
			Name:   fmt.Sprintf("CARRY_OUT%d", index),
			Kind:   OR,
			Inputs: []Signal{{"Gen", andAb}, {"Prop", andXorCarry}},
			Output: carryOut,
		},
	}
	//
	return AdderStep{
		BitIndex: index,
		CarryIn:  carryIn,
		Gates:    gates,
		SumBit:   sumBit,
		CarryOut: carryOut,
	}
}

// Operand distinguishes the two operand positions of an addition.
type Operand uint8

const (
	// LeftOperand is the first operand.
	LeftOperand Operand = iota
	// RightOperand is the second operand.
	RightOperand
)

func (o Operand) String() string {
	if o == LeftOperand {
		return "left"
	}
	//
	return "right"
}

// OperandRangeError signals that an operand lies outside the declared range of
// a fixed-width type.  Retrying with the same inputs cannot succeed, hence it
// is always surfaced directly to the caller.
type OperandRangeError struct {
	// Which operand violated the range.
	Operand Operand
	// Offending value.
	Value *big.Int
	// Type whose range was violated.
	Type numeric.Type
}

func (e *OperandRangeError) Error() string {
	min, max := e.Type.Range()
	return fmt.Sprintf("%s operand %s does not fit into %s (range %s..%s)",
		e.Operand, e.Value, e.Type.Name(), min, max)
}
