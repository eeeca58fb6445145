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

import (
	"math/big"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// EncodeBits converts an integer into a little-endian bit vector of the given
// width using two's complement semantics, i.e. the vector holds value mod
// 2^width with index 0 as the least significant bit.
func EncodeBits(value *big.Int, width uint) *bitset.BitSet {
	var (
		bits    = bitset.New(width)
		modulus = new(big.Int).Lsh(big.NewInt(1), width)
		residue = new(big.Int).Mod(value, modulus)
	)
	//
	for i := uint(0); i < width; i++ {
		bits.SetTo(i, residue.Bit(int(i)) == 1)
	}
	//
	return bits
}

// DecodeBits converts a little-endian bit vector back into an integer, with
// the most significant bit carrying negative weight when signed.
func DecodeBits(bits *bitset.BitSet, signed bool) *big.Int {
	var (
		width = bits.Len()
		value = big.NewInt(0)
	)
	//
	for i := uint(0); i < width; i++ {
		if bits.Test(i) {
			value.SetBit(value, int(i), 1)
		}
	}
	// Negative number: subtract 2^width to interpret as signed.
	if signed && width > 0 && bits.Test(width-1) {
		modulus := new(big.Int).Lsh(big.NewInt(1), width)
		value.Sub(value, modulus)
	}
	//
	return value
}

// BitString renders a little-endian bit vector in conventional reading order
// (most significant bit first).
func BitString(bits *bitset.BitSet) string {
	var builder strings.Builder
	//
	for i := bits.Len(); i > 0; i-- {
		if bits.Test(i - 1) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	//
	return builder.String()
}

func bitAt(bits *bitset.BitSet, index uint) Bit {
	if bits.Test(index) {
		return 1
	}
	//
	return 0
}
