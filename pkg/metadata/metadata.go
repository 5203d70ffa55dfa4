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

// Package metadata holds the canonical, version-independent model of a
// chain's runtime metadata, and the top-level Decode entry point that
// turns a raw SCALE blob (any supported dialect) into it. Dialect-specific
// detail lives in the sibling dialect package; this package only sees the
// normalized shape.
package metadata

import "strconv"

// StorageKind distinguishes the three storage entry shapes a module can
// declare.
type StorageKind uint8

const (
	StoragePlain StorageKind = iota
	StorageMap
	StorageDoubleMap
)

// StorageMetadata describes one storage entry within a module.
type StorageMetadata struct {
	Prefix        string
	Modifier      StorageFunctionModifier
	Kind          StorageKind
	PlainType     string // valid when Kind == StoragePlain
	Map           StorageMapMetadata
	DoubleMap     StorageDoubleMapMetadata
	Fallback      []byte
	Documentation []string
}

// StorageFunctionModifier governs default-value semantics for a missing
// storage key.
type StorageFunctionModifier struct {
	IsOptional bool
	IsDefault  bool
}

// StorageMapMetadata describes a single-key storage map.
type StorageMapMetadata struct {
	Hasher string
	Key    string
	Value  string
}

// StorageDoubleMapMetadata describes a two-key storage map.
type StorageDoubleMapMetadata struct {
	Hasher     string
	Key1       string
	Key2       string
	Value      string
	Key2Hasher string
}

// FunctionArgumentMetadata is one named, typed argument of a dispatchable
// call as declared in the metadata.
type FunctionArgumentMetadata struct {
	Name string
	Type string
}

// FunctionMetadata describes one dispatchable call, in declaration order.
type FunctionMetadata struct {
	Name          string
	Args          []FunctionArgumentMetadata
	Documentation []string
}

// ModuleEventMetadata describes one event variant within a module.
type ModuleEventMetadata struct {
	Name          string
	Args          []EventArg
	Documentation []string
}

// ErrorMetadata describes one declared dispatch error (V8+; empty on
// modules decoded from a V7 payload).
type ErrorMetadata struct {
	Name          string
	Documentation []string
}

// ModuleMetadata is the canonical, per-module view shared by every
// dialect once normalized.
type ModuleMetadata struct {
	Index   uint8
	Name    string
	Storage map[string]StorageMetadata
	// CallIndex preserves declaration order: CallIndex[i] is the call
	// name dispatched by selector byte i.
	CallIndex []string
	// CallSelector is the inverse of CallIndex: call name -> selector
	// byte (its position in declaration order).
	CallSelector map[string]uint8
	Calls        map[string]FunctionMetadata
	// Events is keyed by declaration-order event index, assigned
	// independently of CallIndex.
	Events map[uint8]ModuleEventMetadata
	Errors []ErrorMetadata
}

// Metadata is the canonical, version-independent model produced by
// normalizing any supported dialect's raw tree. It is constructed once
// from a byte blob and is safe to share read-only across goroutines
// thereafter — nothing here mutates post-construction.
type Metadata struct {
	Version uint8
	Modules map[string]ModuleMetadata
	// ModuleIndex maps a module's runtime index to its name, used to
	// resolve the first byte of an encoded call.
	ModuleIndex map[uint8]string
	// ModulesByEventIndex maps the event-declaring counter (4.2) to a
	// module name, used to resolve the first byte of an encoded event.
	ModulesByEventIndex map[uint8]string
}

// Module looks up a module by name, returning ModuleNotFound on a miss.
func (m *Metadata) Module(name string) (ModuleMetadata, error) {
	mod, ok := m.Modules[name]
	if !ok {
		return ModuleMetadata{}, &Error{Kind: ModuleNotFound, Detail: name}
	}

	return mod, nil
}

// ModuleByIndex resolves a call's leading module-index byte to the
// module that owns it.
func (m *Metadata) ModuleByIndex(index uint8) (ModuleMetadata, error) {
	name, ok := m.ModuleIndex[index]
	if !ok {
		return ModuleMetadata{}, &Error{Kind: ModuleNotFound, Detail: "index " + strconv.Itoa(int(index))}
	}

	return m.Module(name)
}

// ModuleByEventIndex resolves an encoded event's leading module-index
// byte (assigned over only the event-declaring modules, per 4.2) to the
// module that emitted it.
func (m *Metadata) ModuleByEventIndex(index uint8) (ModuleMetadata, error) {
	name, ok := m.ModulesByEventIndex[index]
	if !ok {
		return ModuleMetadata{}, &Error{Kind: ModuleNotFound, Detail: "event index " + strconv.Itoa(int(index))}
	}

	return m.Module(name)
}

// Call looks up a call by name within the module, returning its
// one-byte dispatch selector.
func (mod *ModuleMetadata) Call(name string) (FunctionMetadata, uint8, error) {
	fn, ok := mod.Calls[name]
	if !ok {
		return FunctionMetadata{}, 0, &Error{Kind: CallNotFound, Detail: name}
	}

	return fn, mod.CallSelector[name], nil
}

// CallBySelector resolves a call's one-byte dispatch selector to its
// declared name and metadata.
func (mod *ModuleMetadata) CallBySelector(selector uint8) (FunctionMetadata, error) {
	if int(selector) >= len(mod.CallIndex) {
		return FunctionMetadata{}, &Error{Kind: CallNotFound, Detail: "selector " + strconv.Itoa(int(selector))}
	}

	name := mod.CallIndex[selector]
	return mod.Calls[name], nil
}

// Event looks up an event by its declaration-order index.
func (mod *ModuleMetadata) Event(index uint8) (ModuleEventMetadata, error) {
	ev, ok := mod.Events[index]
	if !ok {
		return ModuleEventMetadata{}, &Error{Kind: EventNotFound, Detail: strconv.Itoa(int(index))}
	}

	return ev, nil
}

// StorageEntry looks up a storage entry by name.
func (mod *ModuleMetadata) StorageEntry(name string) (StorageMetadata, error) {
	s, ok := mod.Storage[name]
	if !ok {
		return StorageMetadata{}, &Error{Kind: StorageNotFound, Detail: name}
	}

	return s, nil
}
