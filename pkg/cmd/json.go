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

	"github.com/consensys/go-ripple/pkg/adder"
	"github.com/consensys/go-ripple/pkg/timeline"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
)

// JSON shadow types for the machine-readable output of "simulate --json".
// Bit vectors are rendered little-endian, matching the in-memory layout.

type jsonSignal struct {
	Label string `json:"label"`
	Value uint8  `json:"value"`
}

type jsonGate struct {
	Name   string       `json:"name"`
	Kind   string       `json:"kind"`
	Inputs []jsonSignal `json:"inputs"`
	Output uint8        `json:"output"`
}

type jsonEvent struct {
	Tick     uint     `json:"tick"`
	BitIndex uint     `json:"bit"`
	Gate     jsonGate `json:"gate"`
}

type jsonResult struct {
	Type       string      `json:"type"`
	Lhs        string      `json:"lhs"`
	Rhs        string      `json:"rhs"`
	Result     string      `json:"result"`
	Overflow   bool        `json:"overflow"`
	ResultBits []uint8     `json:"result_bits"`
	FinalCarry uint8       `json:"final_carry"`
	Events     []jsonEvent `json:"events"`
}

func writeJson(result *adder.AdditionResult, events timeline.Timeline) {
	payload := jsonResult{
		Type:       result.Type.Name(),
		Lhs:        result.Lhs.String(),
		Rhs:        result.Rhs.String(),
		Result:     result.Result.String(),
		Overflow:   result.Overflow,
		FinalCarry: uint8(result.FinalCarry),
	}
	//
	for i := uint(0); i < result.ResultBits.Len(); i++ {
		var bit uint8
		if result.ResultBits.Test(i) {
			bit = 1
		}

		payload.ResultBits = append(payload.ResultBits, bit)
	}
	//
	for _, ev := range events.Events() {
		payload.Events = append(payload.Events, jsonEvent{ev.Tick, ev.BitIndex, toJsonGate(ev.Gate)})
	}
	//
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Errorln(err)
		os.Exit(2)
	}
	//
	fmt.Println(string(bytes))
}

func toJsonGate(gate adder.GateState) jsonGate {
	inputs := make([]jsonSignal, len(gate.Inputs))
	//
	for i, in := range gate.Inputs {
		inputs[i] = jsonSignal{in.Label, uint8(in.Value)}
	}
	//
	return jsonGate{gate.Name, gate.Kind.String(), inputs, uint8(gate.Output)}
}
