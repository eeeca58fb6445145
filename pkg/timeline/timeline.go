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

// Package timeline flattens an addition result into a linear, replayable
// sequence of gate events.  A presentation layer replays the sequence at
// whatever cadence it chooses; the timeline itself knows nothing of wall-clock
// time.
package timeline

import (
	"fmt"

	"github.com/consensys/go-ripple/pkg/adder"
	"github.com/consensys/go-ripple/pkg/util"
)

// Event is one unit of replayable gate activity: a single gate evaluation
// stamped with a strictly increasing tick.
type Event struct {
	// Tick index, zero-based and gap-free across the timeline.
	Tick uint
	// Bit position the gate belongs to.
	BitIndex uint
	// Gate evaluation this event represents.
	Gate adder.GateState
	// Owning adder step.  Empty only for a terminal carry event of a
	// simulation with zero steps.
	Step util.Option[*adder.AdderStep]
}

// Label returns a short human-readable description of this event.
func (e Event) Label() string {
	return fmt.Sprintf("bit %d: %s", e.BitIndex, e.Gate.Kind)
}

// Timeline is an immutable, fully materialised sequence of gate events.  It is
// safely re-iterable, randomly indexable, and a pure deterministic function of
// the addition result it was built from.
type Timeline struct {
	events []Event
}

// Build linearises an addition result into its gate-event timeline.  Steps are
// visited in ascending bit order and, within each step, gates in the fixed
// order the simulator recorded them.  When the addition left a final carry, a
// single synthetic OUTPUT event is appended to show the carry wire
// stabilising.
func Build(result *adder.AdditionResult) Timeline {
	var (
		events = make([]Event, 0, 5*len(result.Steps)+1)
		tick   = uint(0)
	)
	//
	for i := range result.Steps {
		step := &result.Steps[i]
		//
		for _, gate := range step.Gates {
			events = append(events, Event{
				Tick:     tick,
				BitIndex: step.BitIndex,
				Gate:     gate,
				Step:     util.Some(step),
			})
			tick++
		}
	}
	//
	if result.FinalCarry == 1 {
		events = append(events, finalCarryEvent(result, tick))
	}
	//
	return Timeline{events}
}

// Len returns the number of events in this timeline.
func (t Timeline) Len() uint {
	return uint(len(t.events))
}

// Event returns the event at the given tick.
func (t Timeline) Event(tick uint) Event {
	return t.events[tick]
}

// Events returns the underlying event sequence, which must be treated as
// read-only.
func (t Timeline) Events() []Event {
	return t.events
}

func finalCarryEvent(result *adder.AdditionResult, tick uint) Event {
	var (
		bitIndex uint
		step     = util.None[*adder.AdderStep]()
	)
	//
	if n := len(result.Steps); n > 0 {
		last := &result.Steps[n-1]
		bitIndex = last.BitIndex
		step = util.Some(last)
	}
	//
	return Event{
		Tick:     tick,
		BitIndex: bitIndex,
		Gate: adder.GateState{
			Name:   "FINAL_CARRY",
			Kind:   adder.OUTPUT,
			Inputs: []adder.Signal{{Label: "CarryOut", Value: result.FinalCarry}},
			Output: result.FinalCarry,
		},
		Step: step,
	}
}
