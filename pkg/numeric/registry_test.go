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
	"errors"
	"strings"
	"testing"
)

func Test_Registry_00(t *testing.T) {
	check_Lookup(t, "int32_t", "int32_t", 32, true)
}

func Test_Registry_01(t *testing.T) {
	// Aliases resolve to the same underlying type.
	check_Lookup(t, "int32", "int32_t", 32, true)
	check_Lookup(t, "uint8", "uint8_t", 8, false)
	check_Lookup(t, "ulong", "unsigned long", 64, false)
	check_Lookup(t, "python-int", "int", 0, true)
}

func Test_Registry_02(t *testing.T) {
	// Lookup ignores case and surrounding whitespace.
	check_Lookup(t, "INT8_T", "int8_t", 8, true)
	check_Lookup(t, " uint16_t ", "uint16_t", 16, false)
	check_Lookup(t, "Size_T", "size_t", 64, false)
}

func Test_Registry_03(t *testing.T) {
	// Unknown names fail with an error enumerating every registered name.
	var (
		unknownErr *UnknownTypeError
		registry   = NewRegistry()
		_, err     = registry.Lookup("int9_t")
	)
	//
	if err == nil {
		t.Fatal("expected lookup of int9_t to fail")
	}
	//
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	//
	if unknownErr.Name != "int9_t" {
		t.Errorf("expected offending name int9_t, got %s", unknownErr.Name)
	}
	//
	for _, name := range registry.Names() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error message missing registered name %q: %s", name, err)
		}
	}
}

func Test_Registry_04(t *testing.T) {
	// Thirteen distinct types behind twenty-three names.
	registry := NewRegistry()
	//
	if n := len(registry.Types()); n != 13 {
		t.Errorf("expected 13 distinct types, got %d", n)
	}
	//
	if n := len(registry.Names()); n != 23 {
		t.Errorf("expected 23 registered names, got %d", n)
	}
}

func Test_Registry_05(t *testing.T) {
	// The unbounded type never clamps, but still carries signedness.
	ty, err := LookupType("int")
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !ty.Unbounded() || !ty.Signed() {
		t.Errorf("expected int to be unbounded and signed")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Lookup(t *testing.T, name string, expName string, expBits uint, expSigned bool) {
	ty, err := LookupType(name)
	//
	if err != nil {
		t.Fatalf("lookup of %q failed: %v", name, err)
	}
	//
	if ty.Name() != expName {
		t.Errorf("lookup of %q: expected name %s, got %s", name, expName, ty.Name())
	}
	//
	if ty.BitWidth() != expBits {
		t.Errorf("lookup of %q: expected width %d, got %d", name, expBits, ty.BitWidth())
	}
	//
	if ty.Signed() != expSigned {
		t.Errorf("lookup of %q: expected signed %t", name, expSigned)
	}
}
