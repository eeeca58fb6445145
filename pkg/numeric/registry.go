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
	"sort"
	"strings"
)

// Registry maps (case-insensitive) names and aliases to numeric types.  A
// registry is populated once during construction and read-only thereafter,
// hence safe for concurrent use.
type Registry struct {
	types map[string]Type
}

// NewRegistry constructs a registry holding the standard set of hardware-like
// integer types, along with the common aliases for each.
func NewRegistry() *Registry {
	r := &Registry{make(map[string]Type)}
	//
	r.unbounded("int", true, "python-int")
	r.fixed("int8_t", 8, true, "int8")
	r.fixed("int16_t", 16, true, "int16")
	r.fixed("int32_t", 32, true, "int32")
	r.fixed("int64_t", 64, true, "int64")
	r.fixed("uint8_t", 8, false, "uint8")
	r.fixed("uint16_t", 16, false, "uint16")
	r.fixed("uint32_t", 32, false, "uint32")
	r.fixed("uint64_t", 64, false, "uint64")
	r.fixed("size_t", 64, false)
	r.fixed("uint", 32, false)
	r.fixed("long", 64, true)
	r.fixed("unsigned long", 64, false, "ulong")
	//
	return r
}

// Lookup a type by name or alias, ignoring case and surrounding whitespace.
// Returns an UnknownTypeError (listing every registered name) when no such
// type exists.
func (r *Registry) Lookup(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	//
	if t, ok := r.types[key]; ok {
		return t, nil
	}
	//
	return Type{}, &UnknownTypeError{name, r.Names()}
}

// Names returns every registered name and alias in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	//
	for name := range r.types {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	return names
}

// Types returns the distinct types held in this registry, sorted by name.
func (r *Registry) Types() []Type {
	var (
		seen  = make(map[string]bool)
		types []Type
	)
	//
	for _, name := range r.Names() {
		t := r.types[name]
		if !seen[t.Name()] {
			seen[t.Name()] = true

			types = append(types, t)
		}
	}
	//
	return types
}

func (r *Registry) fixed(name string, bits uint, signed bool, aliases ...string) {
	r.add(NewFixedType(name, bits, signed), aliases)
}

func (r *Registry) unbounded(name string, signed bool, aliases ...string) {
	r.add(NewUnboundedType(name, signed), aliases)
}

func (r *Registry) add(t Type, aliases []string) {
	r.types[t.Name()] = t
	//
	for _, alias := range aliases {
		r.types[alias] = t
	}
}

// UnknownTypeError signals a lookup for a type name which is not registered.
// Its message enumerates all registered names so that a caller can
// self-correct.
type UnknownTypeError struct {
	// Requested name.
	Name string
	// All registered names and aliases.
	Known []string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown numeric type %q (known types: %s)", e.Name, strings.Join(e.Known, ", "))
}

// defaultRegistry is constructed once at process start and never mutated.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide read-only registry of standard
// types.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// LookupType looks up a type in the default registry.
func LookupType(name string) (Type, error) {
	return defaultRegistry.Lookup(name)
}
