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
	"testing"
)

func Test_Bits_00(t *testing.T) {
	check_BitString(t, 18, 6, "010010")
}

func Test_Bits_01(t *testing.T) {
	// Two's complement of -1 is all ones.
	check_BitString(t, -1, 8, "11111111")
}

func Test_Bits_02(t *testing.T) {
	check_BitString(t, -128, 8, "10000000")
}

func Test_Bits_03(t *testing.T) {
	// Signed decoding gives the most significant bit negative weight.
	bits := EncodeBits(big.NewInt(-42), 16)
	//
	if v := DecodeBits(bits, true); v.Int64() != -42 {
		t.Errorf("expected -42, got %s", v)
	}
	//
	if v := DecodeBits(bits, false); v.Int64() != 65536-42 {
		t.Errorf("expected %d, got %s", 65536-42, v)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_BitString(t *testing.T, value int64, width uint, expected string) {
	actual := BitString(EncodeBits(big.NewInt(value), width))
	//
	if actual != expected {
		t.Errorf("encoding %d over %d bits: expected %s, got %s", value, width, expected, actual)
	}
}
