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
package numeric

import (
	"fmt"
	"math/big"
)

// Type describes a hardware-like integer domain: a display name, a bit width
// (or unbounded) and a signedness flag.  Types are immutable values; all
// instances are constructed once into a Registry and never mutated.
type Type struct {
	// Display name, which acts as a unique key within a registry.
	name string
	// Width in bits, where zero indicates an unbounded type.
	bits uint
	// Indicates whether values are interpreted using two's complement.
	signed bool
}

// NewFixedType constructs a fixed-width type of the given (non-zero) width.
func NewFixedType(name string, bits uint, signed bool) Type {
	if bits == 0 {
		panic("fixed-width type requires non-zero width")
	}

	return Type{name, bits, signed}
}

// NewUnboundedType constructs an unbounded (arbitrary precision) type.
// Signedness remains meaningful for bit-vector sign interpretation, but no
// range clamp ever applies.
func NewUnboundedType(name string, signed bool) Type {
	return Type{name, 0, signed}
}

// Name returns the display name of this type.
func (t Type) Name() string {
	return t.name
}

// BitWidth returns the declared width of this type, or zero for unbounded
// types.
func (t Type) BitWidth() uint {
	return t.bits
}

// Signed indicates whether values of this type are interpreted using two's
// complement.
func (t Type) Signed() bool {
	return t.signed
}

// Unbounded indicates whether this type places no limit on the magnitude of
// its values.
func (t Type) Unbounded() bool {
	return t.bits == 0
}

// Range returns the inclusive (min, max) bounds for this type.  For fixed
// widths these are the exact two's complement bounds.  Unbounded types have no
// semantic limit; the ±2^63 values returned for them are an engineering
// sentinel wide enough not to trigger range checks in practice, and must never
// be used to clamp or reject a value.
func (t Type) Range() (*big.Int, *big.Int) {
	var min, max big.Int
	//
	switch {
	case t.Unbounded():
		min.Lsh(one, 63)
		min.Neg(&min)
		max.Lsh(one, 63)
		max.Sub(&max, one)
	case t.signed:
		min.Lsh(one, t.bits-1)
		min.Neg(&min)
		max.Lsh(one, t.bits-1)
		max.Sub(&max, one)
	default:
		max.Lsh(one, t.bits)
		max.Sub(&max, one)
	}
	//
	return &min, &max
}

// Contains checks whether a given value lies within the declared range of this
// type.  Unbounded types contain every value.
func (t Type) Contains(value *big.Int) bool {
	if t.Unbounded() {
		return true
	}
	//
	min, max := t.Range()
	//
	return min.Cmp(value) <= 0 && value.Cmp(max) <= 0
}

// Normalize reduces a value modulo 2^bits and, for signed types, reinterprets
// the top bit as a sign using two's complement rules.  For unbounded types
// this is the identity.
func (t Type) Normalize(value *big.Int) *big.Int {
	if t.Unbounded() {
		return new(big.Int).Set(value)
	}
	// Reduce modulo 2^bits, yielding a non-negative residue.
	modulus := new(big.Int).Lsh(one, t.bits)
	reduced := new(big.Int).Mod(value, modulus)
	// Reinterpret top bit as sign.
	if t.signed && reduced.Bit(int(t.bits-1)) == 1 {
		reduced.Sub(reduced, modulus)
	}
	//
	return reduced
}

// Encode validates that a value lies within the range of this type and returns
// its unsigned bit pattern (i.e. the two's complement residue in [0, 2^bits)).
// For unbounded types the value is returned unchanged.
func (t Type) Encode(value *big.Int) (*big.Int, error) {
	if t.Unbounded() {
		return new(big.Int).Set(value), nil
	}
	//
	if !t.Contains(value) {
		return nil, &RangeError{t, new(big.Int).Set(value)}
	}
	//
	modulus := new(big.Int).Lsh(one, t.bits)
	//
	return new(big.Int).Mod(value, modulus), nil
}

// BitWidthFor determines how many bits are needed to represent all given
// values.  Fixed types always report their declared width.  Unbounded types
// report the bit length of the largest magnitude plus one (the extra bit
// reserves room for sign / carry visualisation), with a floor of one bit.
func (t Type) BitWidthFor(values ...*big.Int) uint {
	if !t.Unbounded() {
		return t.bits
	}
	//
	var maxAbs uint
	//
	for _, v := range values {
		n := uint(new(big.Int).Abs(v).BitLen())
		maxAbs = max(maxAbs, n)
	}
	//
	return max(maxAbs+1, 1)
}

func (t Type) String() string {
	return t.name
}

// RangeError signals that a value cannot be encoded because it falls outside
// the declared range of a fixed-width type.
type RangeError struct {
	// Type whose range was violated.
	Type Type
	// Offending value.
	Value *big.Int
}

func (e *RangeError) Error() string {
	min, max := e.Type.Range()
	return fmt.Sprintf("value %s does not fit into %s (range %s..%s)", e.Value, e.Type.Name(), min, max)
}

var one = big.NewInt(1)
