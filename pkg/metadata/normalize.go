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
package metadata

import (
	log "github.com/sirupsen/logrus"

	"github.com/tetcoin/desub-go/pkg/metadata/dialect"
)

// normalizeV7 builds the canonical Metadata from a V7 raw tree. V7 has no
// explicit module index, so a module's index is its position in the
// decoded list (4.2).
func normalizeV7(raw *dialect.RuntimeMetadataV7) (*Metadata, error) {
	m := newMetadata(7)

	eventCounter := uint8(0)

	for i, mod := range raw.Modules {
		index := uint8(i)

		canon, err := normalizeModuleCommon(
			index, mod.Name, mod.HasStorage, mod.Storage.Prefix, storageItemsV7(mod.Storage.Items),
			mod.HasCalls, mod.Calls, mod.HasEvents, mod.Events, nil,
		)
		if err != nil {
			return nil, err
		}

		m.Modules[mod.Name] = *canon
		m.ModuleIndex[index] = mod.Name

		if mod.HasEvents && len(mod.Events) > 0 {
			m.ModulesByEventIndex[eventCounter] = mod.Name
			eventCounter++
		}
	}

	return m, nil
}

func normalizeV8(raw *dialect.RuntimeMetadataV8) (*Metadata, error) {
	m := newMetadata(8)

	eventCounter := uint8(0)

	for _, mod := range raw.Modules {
		canon, err := normalizeModuleCommon(
			mod.Index, mod.Name, mod.HasStorage, mod.Storage.Prefix, storageItemsV8(mod.Storage.Items),
			mod.HasCalls, mod.Calls, mod.HasEvents, mod.Events, errorsOf(mod.Errors),
		)
		if err != nil {
			return nil, err
		}

		m.Modules[mod.Name] = *canon
		m.ModuleIndex[mod.Index] = mod.Name

		if mod.HasEvents && len(mod.Events) > 0 {
			m.ModulesByEventIndex[eventCounter] = mod.Name
			eventCounter++
		}
	}

	return m, nil
}

func normalizeV9(raw *dialect.RuntimeMetadataV9) (*Metadata, error) {
	m := newMetadata(9)

	eventCounter := uint8(0)

	for _, mod := range raw.Modules {
		canon, err := normalizeModuleCommon(
			mod.Index, mod.Name, mod.HasStorage, mod.Storage.Prefix, storageItemsV9(mod.Storage.Items),
			mod.HasCalls, mod.Calls, mod.HasEvents, mod.Events, errorsOf(mod.Errors),
		)
		if err != nil {
			return nil, err
		}

		m.Modules[mod.Name] = *canon
		m.ModuleIndex[mod.Index] = mod.Name

		if mod.HasEvents && len(mod.Events) > 0 {
			m.ModulesByEventIndex[eventCounter] = mod.Name
			eventCounter++
		}
	}

	return m, nil
}

func normalizeV10(raw *dialect.RuntimeMetadataV10) (*Metadata, error) {
	m := newMetadata(10)

	eventCounter := uint8(0)

	for _, mod := range raw.Modules {
		canon, err := normalizeModuleCommon(
			mod.Index, mod.Name, mod.HasStorage, mod.Storage.Prefix, storageItemsV10(mod.Storage.Items),
			mod.HasCalls, mod.Calls, mod.HasEvents, mod.Events, errorsOf(mod.Errors),
		)
		if err != nil {
			return nil, err
		}

		m.Modules[mod.Name] = *canon
		m.ModuleIndex[mod.Index] = mod.Name

		if mod.HasEvents && len(mod.Events) > 0 {
			m.ModulesByEventIndex[eventCounter] = mod.Name
			eventCounter++
		}
	}

	return m, nil
}

// normalizeV11 builds the canonical Metadata from a V11 raw tree. The
// trailing ExtrinsicV11 signed-extensions list is consumed by the
// dialect decoder but is intentionally not surfaced on Metadata yet (see
// DESIGN.md's open-question decisions); it is logged at debug level so it
// is not silently lost.
func normalizeV11(raw *dialect.RuntimeMetadataV11) (*Metadata, error) {
	m := newMetadata(11)

	eventCounter := uint8(0)

	for _, mod := range raw.Modules {
		canon, err := normalizeModuleCommon(
			mod.Index, mod.Name, mod.HasStorage, mod.Storage.Prefix, storageItemsV11(mod.Storage.Items),
			mod.HasCalls, mod.Calls, mod.HasEvents, mod.Events, errorsOf(mod.Errors),
		)
		if err != nil {
			return nil, err
		}

		m.Modules[mod.Name] = *canon
		m.ModuleIndex[mod.Index] = mod.Name

		if mod.HasEvents && len(mod.Events) > 0 {
			m.ModulesByEventIndex[eventCounter] = mod.Name
			eventCounter++
		}
	}

	log.WithFields(log.Fields{
		"version":          raw.Extrinsic.Version,
		"signedExtensions": len(raw.Extrinsic.SignedExtensions),
	}).Debug("dropped v11 extrinsic trailer during normalization")

	return m, nil
}

func newMetadata(version uint8) *Metadata {
	return &Metadata{
		Version:             version,
		Modules:             make(map[string]ModuleMetadata),
		ModuleIndex:         make(map[uint8]string),
		ModulesByEventIndex: make(map[uint8]string),
	}
}

// rawStorageItem is the shape every dialect's storage item reduces to
// before hasher/kind-specific handling, letting normalizeModuleCommon
// stay dialect-agnostic.
type rawStorageItem struct {
	Name          string
	Modifier      dialect.StorageFunctionModifier
	Fallback      []byte
	Documentation []string
	toCanonical   func() (StorageKind, string, StorageMapMetadata, StorageDoubleMapMetadata, error)
}

func storageItemsV7(items []dialect.StorageFunctionMetadataV7) []rawStorageItem {
	out := make([]rawStorageItem, len(items))

	for i, it := range items {
		it := it
		out[i] = rawStorageItem{
			Name:          it.Name,
			Modifier:      it.Modifier,
			Fallback:      it.Fallback,
			Documentation: it.Documentation,
			toCanonical: func() (StorageKind, string, StorageMapMetadata, StorageDoubleMapMetadata, error) {
				switch {
				case it.Type.IsType:
					return StoragePlain, it.Type.AsType, StorageMapMetadata{}, StorageDoubleMapMetadata{}, nil
				case it.Type.IsMap:
					return StorageMap, "", StorageMapMetadata{
						Hasher: hasherNameV7(it.Type.AsMap.Hasher),
						Key:    it.Type.AsMap.Key,
						Value:  it.Type.AsMap.Value,
					}, StorageDoubleMapMetadata{}, nil
				default:
					return 0, "", StorageMapMetadata{}, StorageDoubleMapMetadata{}, &Error{Kind: ExpectedDecoded, Detail: it.Name}
				}
			},
		}
	}

	return out
}

func storageItemsV8(items []dialect.StorageFunctionMetadataV8) []rawStorageItem {
	out := make([]rawStorageItem, len(items))

	for i, it := range items {
		it := it
		out[i] = rawStorageItem{
			Name:          it.Name,
			Modifier:      it.Modifier,
			Fallback:      it.Fallback,
			Documentation: it.Documentation,
			toCanonical: func() (StorageKind, string, StorageMapMetadata, StorageDoubleMapMetadata, error) {
				switch {
				case it.Type.IsType:
					return StoragePlain, it.Type.AsType, StorageMapMetadata{}, StorageDoubleMapMetadata{}, nil
				case it.Type.IsMap:
					return StorageMap, "", StorageMapMetadata{
						Hasher: hasherNameV7(it.Type.AsMap.Hasher),
						Key:    it.Type.AsMap.Key,
						Value:  it.Type.AsMap.Value,
					}, StorageDoubleMapMetadata{}, nil
				default:
					return 0, "", StorageMapMetadata{}, StorageDoubleMapMetadata{}, &Error{Kind: ExpectedDecoded, Detail: it.Name}
				}
			},
		}
	}

	return out
}

func storageItemsV9(items []dialect.StorageFunctionMetadataV9) []rawStorageItem {
	out := make([]rawStorageItem, len(items))

	for i, it := range items {
		it := it
		out[i] = rawStorageItem{
			Name:          it.Name,
			Modifier:      it.Modifier,
			Fallback:      it.Fallback,
			Documentation: it.Documentation,
			toCanonical: func() (StorageKind, string, StorageMapMetadata, StorageDoubleMapMetadata, error) {
				switch {
				case it.Type.IsType:
					return StoragePlain, it.Type.AsType, StorageMapMetadata{}, StorageDoubleMapMetadata{}, nil
				case it.Type.IsMap:
					return StorageMap, "", StorageMapMetadata{
						Hasher: hasherNameV7(it.Type.AsMap.Hasher),
						Key:    it.Type.AsMap.Key,
						Value:  it.Type.AsMap.Value,
					}, StorageDoubleMapMetadata{}, nil
				case it.Type.IsDoubleMap:
					return StorageDoubleMap, "", StorageMapMetadata{}, StorageDoubleMapMetadata{
						Hasher:     hasherNameV7(it.Type.AsDoubleMap.Hasher),
						Key1:       it.Type.AsDoubleMap.Key1,
						Key2:       it.Type.AsDoubleMap.Key2,
						Value:      it.Type.AsDoubleMap.Value,
						Key2Hasher: hasherNameV7(it.Type.AsDoubleMap.Key2Hasher),
					}, nil
				default:
					return 0, "", StorageMapMetadata{}, StorageDoubleMapMetadata{}, &Error{Kind: ExpectedDecoded, Detail: it.Name}
				}
			},
		}
	}

	return out
}

func storageItemsV10(items []dialect.StorageFunctionMetadataV10) []rawStorageItem {
	out := make([]rawStorageItem, len(items))

	for i, it := range items {
		it := it
		out[i] = rawStorageItem{
			Name:          it.Name,
			Modifier:      it.Modifier,
			Fallback:      it.Fallback,
			Documentation: it.Documentation,
			toCanonical: func() (StorageKind, string, StorageMapMetadata, StorageDoubleMapMetadata, error) {
				switch {
				case it.Type.IsType:
					return StoragePlain, it.Type.AsType, StorageMapMetadata{}, StorageDoubleMapMetadata{}, nil
				case it.Type.IsMap:
					return StorageMap, "", StorageMapMetadata{
						Hasher: hasherNameV10(it.Type.AsMap.Hasher),
						Key:    it.Type.AsMap.Key,
						Value:  it.Type.AsMap.Value,
					}, StorageDoubleMapMetadata{}, nil
				case it.Type.IsDoubleMap:
					return StorageDoubleMap, "", StorageMapMetadata{}, StorageDoubleMapMetadata{
						Hasher:     hasherNameV10(it.Type.AsDoubleMap.Hasher),
						Key1:       it.Type.AsDoubleMap.Key1,
						Key2:       it.Type.AsDoubleMap.Key2,
						Value:      it.Type.AsDoubleMap.Value,
						Key2Hasher: hasherNameV10(it.Type.AsDoubleMap.Key2Hasher),
					}, nil
				default:
					return 0, "", StorageMapMetadata{}, StorageDoubleMapMetadata{}, &Error{Kind: ExpectedDecoded, Detail: it.Name}
				}
			},
		}
	}

	return out
}

func storageItemsV11(items []dialect.StorageFunctionMetadataV11) []rawStorageItem {
	out := make([]rawStorageItem, len(items))

	for i, it := range items {
		it := it
		out[i] = rawStorageItem{
			Name:          it.Name,
			Modifier:      it.Modifier,
			Fallback:      it.Fallback,
			Documentation: it.Documentation,
			toCanonical: func() (StorageKind, string, StorageMapMetadata, StorageDoubleMapMetadata, error) {
				switch {
				case it.Type.IsType:
					return StoragePlain, it.Type.AsType, StorageMapMetadata{}, StorageDoubleMapMetadata{}, nil
				case it.Type.IsMap:
					return StorageMap, "", StorageMapMetadata{
						Hasher: hasherNameV11(it.Type.AsMap.Hasher),
						Key:    it.Type.AsMap.Key,
						Value:  it.Type.AsMap.Value,
					}, StorageDoubleMapMetadata{}, nil
				case it.Type.IsDoubleMap:
					return StorageDoubleMap, "", StorageMapMetadata{}, StorageDoubleMapMetadata{
						Hasher:     hasherNameV11(it.Type.AsDoubleMap.Hasher),
						Key1:       it.Type.AsDoubleMap.Key1,
						Key2:       it.Type.AsDoubleMap.Key2,
						Value:      it.Type.AsDoubleMap.Value,
						Key2Hasher: hasherNameV11(it.Type.AsDoubleMap.Key2Hasher),
					}, nil
				default:
					return 0, "", StorageMapMetadata{}, StorageDoubleMapMetadata{}, &Error{Kind: ExpectedDecoded, Detail: it.Name}
				}
			},
		}
	}

	return out
}

func hasherNameV7(h dialect.StorageHasherV7) string {
	switch {
	case h.IsBlake2_128:
		return "Blake2_128"
	case h.IsBlake2_256:
		return "Blake2_256"
	case h.IsTwox128:
		return "Twox128"
	case h.IsTwox256:
		return "Twox256"
	default:
		return ""
	}
}

func hasherNameV10(h dialect.StorageHasherV10) string {
	switch {
	case h.IsBlake2_128:
		return "Blake2_128"
	case h.IsBlake2_256:
		return "Blake2_256"
	case h.IsBlake2_128Concat:
		return "Blake2_128Concat"
	case h.IsTwox128:
		return "Twox128"
	case h.IsTwox256:
		return "Twox256"
	case h.IsTwox64Concat:
		return "Twox64Concat"
	default:
		return ""
	}
}

func hasherNameV11(h dialect.StorageHasherV11) string {
	switch {
	case h.IsBlake2_128:
		return "Blake2_128"
	case h.IsBlake2_256:
		return "Blake2_256"
	case h.IsBlake2_128Concat:
		return "Blake2_128Concat"
	case h.IsTwox128:
		return "Twox128"
	case h.IsTwox256:
		return "Twox256"
	case h.IsTwox64Concat:
		return "Twox64Concat"
	case h.IsIdentity:
		return "Identity"
	default:
		return ""
	}
}

func errorsOf(raw []dialect.ErrorMetadata) []ErrorMetadata {
	out := make([]ErrorMetadata, len(raw))
	for i, e := range raw {
		out[i] = ErrorMetadata{Name: e.Name, Documentation: e.Documentation}
	}

	return out
}

// normalizeModuleCommon builds a canonical ModuleMetadata from the parts
// every dialect decomposes to once its hasher/storage-kind specifics are
// resolved by the caller. This is the single place that assigns call
// selectors and parses event args, so every dialect gets identical
// semantics for 4.2's call/event rules.
func normalizeModuleCommon(
	index uint8,
	name string,
	hasStorage bool,
	storagePrefix string,
	storageItems []rawStorageItem,
	hasCalls bool,
	calls []dialect.FunctionMetadata,
	hasEvents bool,
	events []dialect.EventMetadata,
	errs []ErrorMetadata,
) (*ModuleMetadata, error) {
	mod := &ModuleMetadata{
		Index:        index,
		Name:         name,
		Storage:      make(map[string]StorageMetadata),
		CallIndex:    nil,
		CallSelector: make(map[string]uint8),
		Calls:        make(map[string]FunctionMetadata),
		Events:       make(map[uint8]ModuleEventMetadata),
		Errors:       errs,
	}

	if hasStorage {
		for _, it := range storageItems {
			kind, plainType, mapMeta, doubleMapMeta, err := it.toCanonical()
			if err != nil {
				return nil, err
			}

			mod.Storage[it.Name] = StorageMetadata{
				// The wire-declared module prefix only disambiguates
				// modules, not storage entries within one module — each
				// entry's own name is appended so two entries in the
				// same module never derive the same key (4.4).
				Prefix: storagePrefix + it.Name,
				Modifier: StorageFunctionModifier{
					IsOptional: it.Modifier.IsOptional,
					IsDefault:  it.Modifier.IsDefault,
				},
				Kind:          kind,
				PlainType:     plainType,
				Map:           mapMeta,
				DoubleMap:     doubleMapMeta,
				Fallback:      it.Fallback,
				Documentation: it.Documentation,
			}
		}
	}

	if hasCalls {
		mod.CallIndex = make([]string, len(calls))

		for i, c := range calls {
			selector := uint8(i)

			args := make([]FunctionArgumentMetadata, len(c.Args))
			for j, a := range c.Args {
				args[j] = FunctionArgumentMetadata{Name: a.Name, Type: a.Type}
			}

			mod.CallIndex[i] = c.Name
			mod.CallSelector[c.Name] = selector
			mod.Calls[c.Name] = FunctionMetadata{
				Name:          c.Name,
				Args:          args,
				Documentation: c.Documentation,
			}
		}
	}

	if hasEvents {
		for i, e := range events {
			parsedArgs := make([]EventArg, 0, len(e.Args))

			for _, raw := range e.Args {
				parsed, err := ParseEventArg(raw)
				if err != nil {
					return nil, err
				}
				parsedArgs = append(parsedArgs, parsed)
			}

			mod.Events[uint8(i)] = ModuleEventMetadata{
				Name:          e.Name,
				Args:          parsedArgs,
				Documentation: e.Documentation,
			}
		}
	}

	return mod, nil
}
