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
package timeline

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/consensys/go-ripple/pkg/adder"
	"github.com/consensys/go-ripple/pkg/numeric"
)

func Test_Timeline_00(t *testing.T) {
	// No final carry: exactly five events per step.
	check_Timeline(t, "int32_t", 13, 5)
}

func Test_Timeline_01(t *testing.T) {
	// Final carry appends exactly one synthetic event.
	check_Timeline(t, "uint8_t", 255, 1)
}

func Test_Timeline_02(t *testing.T) {
	check_Timeline(t, "int8_t", 127, 1)
	check_Timeline(t, "int8_t", -1, -1)
	check_Timeline(t, "int", -1, -1)
	check_Timeline(t, "int", 0, 0)
	check_Timeline(t, "uint64_t", 1, 1)
}

func Test_Timeline_03(t *testing.T) {
	// The terminal event shows the carry wire stabilising: OUTPUT kind, most
	// significant bit index, and a back-reference to the last step.
	var (
		result = simulate(t, "uint8_t", 255, 1)
		events = Build(result)
		last   = events.Event(events.Len() - 1)
	)
	//
	if last.Gate.Kind != adder.OUTPUT || last.Gate.Name != "FINAL_CARRY" {
		t.Fatalf("expected terminal FINAL_CARRY event, got %s", last.Gate.Name)
	}
	//
	if last.BitIndex != 7 {
		t.Errorf("expected terminal event on bit 7, got %d", last.BitIndex)
	}
	//
	if last.Gate.Output != 1 {
		t.Errorf("expected terminal output 1")
	}
	//
	if in, ok := last.Gate.Input("CarryOut"); !ok || in != 1 {
		t.Errorf("expected CarryOut input 1")
	}
	//
	if last.Step.IsEmpty() || last.Step.Unwrap() != &result.Steps[7] {
		t.Errorf("expected back-reference to the last step")
	}
}

func Test_Timeline_04(t *testing.T) {
	// A timeline without final carry has no synthetic event.
	events := Build(simulate(t, "int32_t", 13, 5))
	//
	for _, ev := range events.Events() {
		if ev.Gate.Kind == adder.OUTPUT {
			t.Errorf("unexpected OUTPUT event at tick %d", ev.Tick)
		}
	}
}

func Test_Timeline_05(t *testing.T) {
	// Timelines are re-iterable and randomly indexable, yielding identical
	// events every time.
	events := Build(simulate(t, "int16_t", 1234, 4321))
	//
	first := make([]Event, 0, events.Len())
	first = append(first, events.Events()...)
	//
	if !reflect.DeepEqual(first, events.Events()) {
		t.Errorf("re-iteration yielded different events")
	}
	//
	for i := uint(0); i < events.Len(); i++ {
		if !reflect.DeepEqual(events.Event(i), first[i]) {
			t.Errorf("random access diverges at tick %d", i)
		}
	}
}

func Test_Timeline_06(t *testing.T) {
	// Building twice from the same result is deterministic.
	result := simulate(t, "uint32_t", 99999, 1)
	//
	if !reflect.DeepEqual(Build(result), Build(result)) {
		t.Errorf("expected identical timelines")
	}
}

func Test_Timeline_07(t *testing.T) {
	event := Build(simulate(t, "int8_t", 1, 2)).Event(0)
	//
	if event.Label() != "bit 0: XOR" {
		t.Errorf("unexpected label %q", event.Label())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func simulate(t *testing.T, name string, lhs int64, rhs int64) *adder.AdditionResult {
	ty, err := numeric.LookupType(name)
	if err != nil {
		t.Fatal(err)
	}
	//
	result, err := adder.Simulate(big.NewInt(lhs), big.NewInt(rhs), ty)
	if err != nil {
		t.Fatal(err)
	}
	//
	return result
}

// check_Timeline verifies the structural timeline properties: length is five
// events per step plus one for a final carry, ticks are zero-based and
// gap-free, gates appear in simulator order, and every event references its
// owning step.
func check_Timeline(t *testing.T, name string, lhs int64, rhs int64) {
	var (
		result = simulate(t, name, lhs, rhs)
		events = Build(result)
		n      = uint(5 * len(result.Steps))
	)
	//
	if result.FinalCarry == 1 {
		n++
	}
	//
	if events.Len() != n {
		t.Fatalf("expected %d events, got %d", n, events.Len())
	}
	//
	for i, ev := range events.Events() {
		if ev.Tick != uint(i) {
			t.Errorf("event %d: tick %d out of sequence", i, ev.Tick)
		}
		// All but a terminal event mirror the owning step exactly.
		if i < 5*len(result.Steps) {
			step := &result.Steps[i/5]
			//
			if ev.Step.IsEmpty() || ev.Step.Unwrap() != step {
				t.Errorf("event %d: wrong owning step", i)
			}
			//
			if ev.BitIndex != step.BitIndex {
				t.Errorf("event %d: wrong bit index %d", i, ev.BitIndex)
			}
			//
			if !reflect.DeepEqual(ev.Gate, step.Gates[i%5]) {
				t.Errorf("event %d: gate out of order", i)
			}
		}
	}
}
