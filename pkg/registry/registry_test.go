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
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetcoin/desub-go/pkg/types"
)

func TestGetDispatchErrorEnum(t *testing.T) {
	pt, err := DefaultPolkadotTypes()
	require.NoError(t, err)

	marker, ok := pt.Get("system", "DispatchError", 1040, "kusama")
	require.True(t, ok)

	want := types.Enum(
		types.EnumVariant{Name: "Other", Type: types.Null()},
		types.EnumVariant{Name: "CannotLookup", Type: types.Null()},
		types.EnumVariant{Name: "BadOrigin", Type: types.Null()},
		types.EnumVariant{Name: "Module", Type: types.TypePointer("DispatchErrorModule")},
	)

	assert.Equal(t, want, marker)
}

func TestGetBalanceLockPre1019Shape(t *testing.T) {
	pt, err := DefaultPolkadotTypes()
	require.NoError(t, err)

	want := types.Struct(
		types.StructField{Name: "id", Type: types.TypePointer("LockIdentifier")},
		types.StructField{Name: "amount", Type: types.TypePointer("Balance")},
		types.StructField{Name: "until", Type: types.TypePointer("BlockNumber")},
		types.StructField{Name: "reasons", Type: types.TypePointer("WithdrawReasons")},
	)

	for _, spec := range []int{1000, 1018} {
		marker, ok := pt.Get("balances", "BalanceLock", spec, "kusama")
		require.True(t, ok)
		assert.Equal(t, want, marker, "spec %d", spec)
	}
}

func TestGetBalanceLockChainOverrideAppliesFrom1019(t *testing.T) {
	pt, err := DefaultPolkadotTypes()
	require.NoError(t, err)

	marker, ok := pt.Get("balances", "BalanceLock", 1031, "kusama")
	require.True(t, ok)
	assert.Equal(t, types.TypePointer("BalanceLockTo212"), marker)
}

func TestGetBalanceLockChainOverrideIsOpenEnded(t *testing.T) {
	pt, err := DefaultPolkadotTypes()
	require.NoError(t, err)

	marker, ok := pt.Get("balances", "BalanceLock", 9999, "kusama")
	require.True(t, ok)
	assert.Equal(t, types.TypePointer("BalanceLockTo212"), marker)
}

func TestResolveBalanceLockTo212(t *testing.T) {
	pt, err := DefaultPolkadotTypes()
	require.NoError(t, err)

	resolved, ok := pt.Resolve("balances", types.TypePointer("BalanceLockTo212"))
	require.True(t, ok)

	want := types.Struct(
		types.StructField{Name: "id", Type: types.TypePointer("LockIdentifier")},
		types.StructField{Name: "amount", Type: types.TypePointer("Balance")},
		types.StructField{Name: "until", Type: types.TypePointer("BlockNumber")},
		types.StructField{Name: "reasons", Type: types.TypePointer("WithdrawReasons")},
	)
	assert.Equal(t, want, resolved)
}

func TestResolveMissesOnNonTypePointer(t *testing.T) {
	pt, err := DefaultPolkadotTypes()
	require.NoError(t, err)

	_, ok := pt.Resolve("balances", types.Primitive("u32"))
	assert.False(t, ok)
}

func TestModuleOverrideWinsRegardlessOfChainOrSpec(t *testing.T) {
	overrides := Overrides{
		ModuleTypes: map[string]map[string]types.TypeMarker{
			"balances": {"BalanceLock": types.TypePointer("Forced")},
		},
		ChainTypes: map[string][]ChainSpecRange{},
	}

	pt := PolkadotTypes{
		Mods: Modules{Modules: map[string]ModuleTypes{
			"balances": {Types: map[string]types.TypeMarker{"BalanceLock": types.Primitive("u32")}},
		}},
		Overrides: overrides,
	}

	marker, ok := pt.Get("balances", "BalanceLock", 1, "anychain")
	require.True(t, ok)
	assert.Equal(t, types.TypePointer("Forced"), marker)
}

func TestChainOverrideRangesMustNotOverlap(t *testing.T) {
	ranges := []ChainSpecRange{
		{Min: intPtr(100), Max: intPtr(200)},
		{Min: intPtr(150), Max: intPtr(250)},
	}

	err := validateNoOverlap(ranges)
	assert.Error(t, err)
}

func TestChainOverrideRangesAllowAdjacentNonOverlapping(t *testing.T) {
	ranges := []ChainSpecRange{
		{Min: intPtr(100), Max: intPtr(199)},
		{Min: intPtr(200), Max: intPtr(299)},
	}

	assert.NoError(t, validateNoOverlap(ranges))
}

func intPtr(i int) *int { return &i }
